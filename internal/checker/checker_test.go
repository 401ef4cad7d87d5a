package checker

import (
	"testing"

	"github.com/triangle-lang/trianglec/internal/ast"
	"github.com/triangle-lang/trianglec/internal/lexer"
	"github.com/triangle-lang/trianglec/internal/parser"
	"github.com/triangle-lang/trianglec/internal/types"
)

func mustParse(t *testing.T, src string) *ast.Program {
	t.Helper()
	prog, err := parser.ParseProgram(lexer.New(src))
	if err != nil {
		t.Fatalf("unexpected parse error for %q: %v", src, err)
	}
	return prog
}

func checkSrc(t *testing.T, src string) []string {
	t.Helper()
	prog := mustParse(t, src)
	errs := New().Check(prog)
	msgs := make([]string, len(errs))
	for i, e := range errs {
		msgs[i] = e.Error()
	}
	return msgs
}

func TestWellTypedProgramsProduceNoErrors(t *testing.T) {
	cases := []string{
		"begin put('A'); puteol() end",
		"let var n : Integer in begin getint(var n); putint(n*2); puteol() end",
		"let func f(n : Integer) : Integer is if n = 0 then 1 else n * f(n - 1) in putint(f(5))",
		"let type R is record b: Integer, a: Char end; var r : R in begin r.a := 'X'; r.b := 7; put(r.a); putint(r.b) end",
		"let var a : array 3 of Integer; var i : Integer in begin i := 1; a[i] := 42; putint(a[1]) end",
		"let proc swap(var x : Integer, var y : Integer) is let var t : Integer in begin t := x; x := y; y := t end; var a : Integer; var b : Integer in begin a := 1; b := 2; swap(var a, var b); putint(a); putint(b) end",
	}
	for _, src := range cases {
		if errs := checkSrc(t, src); len(errs) != 0 {
			t.Errorf("expected no errors for %q, got %v", src, errs)
		}
	}
}

func TestIfConditionMustBeBoolean(t *testing.T) {
	if errs := checkSrc(t, "if 1 then putint(1) else"); len(errs) == 0 {
		t.Fatalf("expected a type error for a non-Boolean if-condition")
	}
}

func TestUndeclaredIdentifierIsReported(t *testing.T) {
	if errs := checkSrc(t, "putint(missing)"); len(errs) == 0 {
		t.Fatalf("expected an undeclared-identifier error")
	}
}

func TestEmptyArrayLiteralIsRejected(t *testing.T) {
	if errs := checkSrc(t, "let var x : Integer in x := 1"); len(errs) != 0 {
		t.Fatalf("sanity check failed: %v", errs)
	}
	if errs := checkSrc(t, "let var x : array 1 of Integer in begin putint(1); x := [] end"); len(errs) == 0 {
		t.Fatalf("expected an error for an empty array literal")
	}
}

func TestArityMismatchIsReported(t *testing.T) {
	if errs := checkSrc(t, "begin putint(1, 2) end"); len(errs) == 0 {
		t.Fatalf("expected an arity-mismatch error")
	}
}

func TestRecordFieldsCanonicalizeAscending(t *testing.T) {
	prog := mustParse(t, "let type R is record b: Integer, a: Char end in putint(1)")
	New().Check(prog)
	letStmt := prog.Root.(*ast.LetStatement)
	typeDecl := letStmt.Decls[0].(*ast.TypeDecl)
	rec, ok := typeDecl.ResolvedType.(types.Record)
	if !ok {
		t.Fatalf("expected a resolved Record, got %T", typeDecl.ResolvedType)
	}
	if len(rec.Fields) != 2 || rec.Fields[0].Name != "a" || rec.Fields[1].Name != "b" {
		t.Fatalf("expected fields sorted ascending [a, b], got %+v", rec.Fields)
	}
}

func TestFunctionValueCannotBeUsedAsExpression(t *testing.T) {
	// putint is bound to a Func type; using it as a bare value is the
	// value-returned-as-function prohibition (spec section 4.3).
	if errs := checkSrc(t, "let var f : Integer in begin f := 1; f := putint end"); len(errs) == 0 {
		t.Fatalf("expected a function-result error")
	}
}

func TestSecondStatementStillCheckedAfterFirstFails(t *testing.T) {
	errs := checkSrc(t, "begin putint(nope); putint(alsonope) end")
	if len(errs) != 2 {
		t.Fatalf("expected both undeclared-identifier errors to be collected, got %v", errs)
	}
}
