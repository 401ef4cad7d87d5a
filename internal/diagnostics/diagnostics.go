// Package diagnostics implements the three error kinds of spec section 7:
// SyntaxError, SemanticError (with several variants) and CodegenError.
package diagnostics

import (
	"fmt"

	"github.com/triangle-lang/trianglec/internal/token"
)

// Phase identifies which pipeline stage raised a diagnostic.
type Phase string

const (
	PhaseParser  Phase = "parser"
	PhaseChecker Phase = "checker"
	PhaseCodegen Phase = "codegen"
)

// Code is a stable identifier for a diagnostic's template and kind.
type Code string

const (
	// Syntax errors (fatal, abort parsing).
	CodeUnexpectedToken Code = "P001"

	// Semantic errors (collected, statement is the recovery boundary).
	CodeTypeError                Code = "A001"
	CodeArityMismatch            Code = "A002"
	CodeUndeclaredUse            Code = "A003"
	CodeDuplicateRecordField     Code = "A004"
	CodeFunctionResult           Code = "A005"
	CodeDuplicateDeclaration     Code = "A006"
	CodeTypeMismatch             Code = "A007"

	// Codegen errors (fatal).
	CodeNestingTooDeep Code = "C001"
)

var templates = map[Code]string{
	CodeUnexpectedToken:      "unexpected token %q: expected %s",
	CodeTypeError:            "type error: got %s, expected %s",
	CodeArityMismatch:        "arity mismatch: %s expects %d argument(s), got %d",
	CodeUndeclaredUse:        "undeclared identifier %q",
	CodeDuplicateRecordField: "duplicate record field %q",
	CodeFunctionResult:       "function %q may not be used as a value",
	CodeDuplicateDeclaration: "%q is already declared in this scope",
	CodeTypeMismatch:         "%s",
	CodeNestingTooDeep:       "scope nesting exceeds the maximum display depth",
}

// Error is the single diagnostic type shared by all three error kinds;
// which kind it represents follows from Phase and Code.
type Error struct {
	Code  Code
	Phase Phase
	Pos   token.Position
	Args  []interface{}
}

func (e *Error) Error() string {
	template, ok := templates[e.Code]
	if !ok {
		template = string(e.Code)
	}
	msg := fmt.Sprintf(template, e.Args...)
	if e.Pos.Line > 0 {
		return fmt.Sprintf("%d:%d: [%s] %s", e.Pos.Line, e.Pos.Column, e.Code, msg)
	}
	return fmt.Sprintf("[%s] %s", e.Code, msg)
}

// New builds a diagnostic Error for a given phase, code and position.
func New(phase Phase, code Code, pos token.Position, args ...interface{}) *Error {
	return &Error{Code: code, Phase: phase, Pos: pos, Args: args}
}

// SyntaxError reports the parser's single, fatal syntax error.
func SyntaxError(offending token.Token, expected string) error {
	return New(PhaseParser, CodeUnexpectedToken, offending.Pos(), offending.Text, expected)
}

// TypeError reports a mismatch between an actual and expected type.
func TypeError(pos token.Position, got, expected string) *Error {
	return New(PhaseChecker, CodeTypeError, pos, got, expected)
}

// ArityMismatch reports a call-site argument-count mismatch.
func ArityMismatch(pos token.Position, name string, expected, got int) *Error {
	return New(PhaseChecker, CodeArityMismatch, pos, name, expected, got)
}

// UndeclaredUse reports a reference to a name with no binder in scope.
func UndeclaredUse(pos token.Position, name string) *Error {
	return New(PhaseChecker, CodeUndeclaredUse, pos, name)
}

// DuplicateRecordTypeField reports two fields of one record type sharing a name.
func DuplicateRecordTypeField(pos token.Position, name string) *Error {
	return New(PhaseChecker, CodeDuplicateRecordField, pos, name)
}

// FunctionResult reports a Func-typed expression used where a value is required.
func FunctionResult(pos token.Position, name string) *Error {
	return New(PhaseChecker, CodeFunctionResult, pos, name)
}

// DuplicateDeclaration reports a name re-declared in the same scope.
func DuplicateDeclaration(pos token.Position, name string) *Error {
	return New(PhaseChecker, CodeDuplicateDeclaration, pos, name)
}

// GenericTypeError wraps a free-form type-checking message.
func GenericTypeError(pos token.Position, msg string) *Error {
	return New(PhaseChecker, CodeTypeMismatch, pos, msg)
}

// CodegenError reports the one fatal codegen condition: nesting too deep.
func CodegenError(pos token.Position) error {
	return New(PhaseCodegen, CodeNestingTooDeep, pos)
}

// List accumulates SemanticErrors across statement recovery boundaries
// (spec section 4.3's error policy).
type List struct {
	errs []*Error
}

// Add appends a diagnostic.
func (l *List) Add(e *Error) {
	if e != nil {
		l.errs = append(l.errs, e)
	}
}

// AddAll appends every diagnostic in errs.
func (l *List) AddAll(errs []*Error) {
	l.errs = append(l.errs, errs...)
}

// Errors returns the accumulated diagnostics in the order they were added.
func (l *List) Errors() []*Error {
	return l.errs
}

// Empty reports whether no diagnostics have been collected.
func (l *List) Empty() bool {
	return len(l.errs) == 0
}
