// Package checker implements the semantic analyzer / type checker of spec
// section 4.3: a single pass over the AST that resolves names, canonicalizes
// record types, annotates every typeable node with its resolved type, and
// collects errors with per-statement recovery.
package checker

import (
	"github.com/triangle-lang/trianglec/internal/ast"
	"github.com/triangle-lang/trianglec/internal/diagnostics"
	"github.com/triangle-lang/trianglec/internal/symbols"
	"github.com/triangle-lang/trianglec/internal/types"
)

// Checker walks a parsed program, maintaining two parallel scoped tables:
// terms (value/callable names) and types (type names), both seeded with the
// standard environment.
type Checker struct {
	terms *symbols.Table
	types *symbols.Table
	errs  diagnostics.List
}

// New creates a Checker with the standard environment already bound.
func New() *Checker {
	c := &Checker{terms: symbols.New(), types: symbols.New()}
	installStandardEnvironment(c.terms, c.types)
	return c
}

// Check type-checks prog and returns every collected diagnostic; an empty
// result means the program is well-typed and ready for code generation.
func (c *Checker) Check(prog *ast.Program) []*diagnostics.Error {
	c.checkStatement(prog.Root)
	return c.errs.Errors()
}

// checkStatement dispatches on statement kind. Each call site in a sequence
// (StatementBlock, parseStatementSequence's caller) is itself a recovery
// boundary: an error recorded while checking one statement does not prevent
// the next statement from being checked (spec section 4.3's error policy).
func (c *Checker) checkStatement(s ast.Statement) {
	switch st := s.(type) {
	case *ast.StatementBlock:
		for _, sub := range st.Statements {
			c.checkStatement(sub)
		}
	case *ast.LetStatement:
		c.terms.EnterScope(nil)
		c.types.EnterScope(nil)
		defer func() {
			c.types.ExitScope()
			c.terms.ExitScope()
		}()
		c.bindDeclarations(st.Decls)
		c.checkStatement(st.Body)
	case *ast.IfStatement:
		c.checkCondition(st.Cond)
		if st.Consequent != nil {
			c.checkStatement(st.Consequent)
		}
		if st.Alternative != nil {
			c.checkStatement(st.Alternative)
		}
	case *ast.WhileStatement:
		c.checkCondition(st.Cond)
		c.checkStatement(st.Body)
	case *ast.LoopWhileStatement:
		c.checkStatement(st.LoopBody)
		c.checkCondition(st.Cond)
		c.checkStatement(st.DoBody)
	case *ast.RepeatWhileStatement:
		c.checkStatement(st.Body)
		c.checkCondition(st.Cond)
	case *ast.RepeatUntilStatement:
		c.checkStatement(st.Body)
		c.checkCondition(st.Cond)
	case *ast.AssignStatement:
		targetType, targetOK := c.resolveIdentifier(st.Target)
		valueType, valueOK := c.infer(st.Value)
		if targetOK && valueOK && !types.BaseType(targetType).Equal(types.BaseType(valueType)) {
			c.errs.Add(diagnostics.TypeError(st.Value.Pos(), valueType.String(), targetType.String()))
		}
	case *ast.ExpressionStatement:
		c.infer(st.Expr)
	case *ast.NoopStatement:
		// nothing to check
	}
}

// checkCondition type-checks e and reports an error unless its base type is
// Boolean (spec section 4.3's condition-type rule, shared by if/while/
// loop-while/repeat-while/repeat-until).
func (c *Checker) checkCondition(e ast.Expression) bool {
	t, ok := c.infer(e)
	if !ok {
		return false
	}
	if !types.BaseType(t).Equal(types.Bool) {
		c.errs.Add(diagnostics.TypeError(e.Pos(), t.String(), types.Bool.String()))
		return false
	}
	return true
}

// infer type-checks e, records its resolved type on the node, and enforces
// the value-returned-as-function prohibition (spec section 4.3): a Func base
// type may never be the result of a general expression.
func (c *Checker) infer(e ast.Expression) (types.Type, bool) {
	t, ok := c.inferRaw(e)
	if !ok {
		return nil, false
	}
	e.SetResolvedType(t)
	if types.IsFunc(t) {
		c.errs.Add(diagnostics.FunctionResult(e.Pos(), exprLabel(e)))
		return t, false
	}
	return t, true
}

// exprLabel renders a best-effort name for a FunctionResult diagnostic.
func exprLabel(e ast.Expression) string {
	if ie, ok := e.(*ast.IdentifierExpr); ok {
		return ie.Root().Name
	}
	return "expression"
}

// resolveIdentifier type-checks an Identifier chain (Basic/RecordAccess/
// ArraySubscript), annotating each node along the way.
func (c *Checker) resolveIdentifier(id ast.Identifier) (types.Type, bool) {
	switch n := id.(type) {
	case *ast.Basic:
		v, ok := c.terms.Lookup(n.Name)
		if !ok {
			c.errs.Add(diagnostics.UndeclaredUse(n.Pos(), n.Name))
			return nil, false
		}
		ty := v.(types.Type)
		n.SetResolvedType(ty)
		return ty, true

	case *ast.ArraySubscript:
		arrType, ok := c.resolveIdentifier(n.Array)
		if !ok {
			return nil, false
		}
		subType, ok := c.infer(n.Subscript)
		if !ok {
			return nil, false
		}
		arr, isArray := types.BaseType(arrType).(types.Array)
		if !isArray {
			c.errs.Add(diagnostics.TypeError(n.Array.Pos(), arrType.String(), "array"))
			return nil, false
		}
		if !types.BaseType(subType).Equal(types.Int) {
			c.errs.Add(diagnostics.TypeError(n.Subscript.Pos(), subType.String(), types.Int.String()))
			return nil, false
		}
		var result types.Type = arr.Element
		if types.IsRef(arrType) {
			result = types.RefOf{Inner: arr.Element}
		}
		n.SetResolvedType(result)
		return result, true

	case *ast.RecordAccess:
		recType, ok := c.resolveIdentifier(n.Record)
		if !ok {
			return nil, false
		}
		rec, isRecord := types.BaseType(recType).(types.Record)
		if !isRecord {
			c.errs.Add(diagnostics.TypeError(n.Record.Pos(), recType.String(), "record"))
			return nil, false
		}
		// The field identifier is typechecked in a temporary scope
		// populated with the record's fields (spec section 4.3).
		c.terms.EnterScope(nil)
		for _, f := range rec.Fields {
			c.terms.Add(f.Name, f.Type)
		}
		fieldType, found := c.terms.Lookup(n.Field)
		c.terms.ExitScope()
		if !found {
			c.errs.Add(diagnostics.UndeclaredUse(n.Pos(), n.Field))
			return nil, false
		}
		ft := fieldType.(types.Type)
		n.SetResolvedType(ft)
		return ft, true
	}
	return nil, false
}
