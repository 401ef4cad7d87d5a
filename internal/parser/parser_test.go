package parser

import (
	"testing"

	"github.com/triangle-lang/trianglec/internal/ast"
	"github.com/triangle-lang/trianglec/internal/lexer"
)

func parse(t *testing.T, src string) *ast.Program {
	t.Helper()
	prog, err := ParseProgram(lexer.New(src))
	if err != nil {
		t.Fatalf("unexpected parse error for %q: %v", src, err)
	}
	return prog
}

func TestBinaryOperatorsAreRightAssociative(t *testing.T) {
	// a + b + c must parse as a + (b + c), the flagged Open Question
	// behavior (spec.md section 9).
	prog := parse(t, "a + b + c")
	stmt, ok := prog.Root.(*ast.ExpressionStatement)
	if !ok {
		t.Fatalf("expected ExpressionStatement, got %T", prog.Root)
	}
	outer, ok := stmt.Expr.(*ast.BinaryOp)
	if !ok {
		t.Fatalf("expected outer BinaryOp, got %T", stmt.Expr)
	}
	if _, ok := outer.Left.(*ast.IdentifierExpr); !ok {
		t.Fatalf("expected left operand to be a plain identifier, got %T", outer.Left)
	}
	inner, ok := outer.Right.(*ast.BinaryOp)
	if !ok {
		t.Fatalf("expected right operand to be a nested BinaryOp (b + c), got %T", outer.Right)
	}
	if inner.Op != "+" || outer.Op != "+" {
		t.Fatalf("expected both operators to be '+', got outer=%s inner=%s", outer.Op, inner.Op)
	}
}

func TestIfThenElseWithNoAlternativeParses(t *testing.T) {
	prog := parse(t, "if true then putint(1) else")
	stmt, ok := prog.Root.(*ast.IfStatement)
	if !ok {
		t.Fatalf("expected IfStatement, got %T", prog.Root)
	}
	if stmt.Consequent == nil {
		t.Fatalf("expected a consequent")
	}
	if stmt.Alternative != nil {
		t.Fatalf("expected a nil (no-op) alternative, got %T", stmt.Alternative)
	}
}

func TestCallOnQualifiedIdentifierIsRejected(t *testing.T) {
	_, err := ParseProgram(lexer.New("r.f(1)"))
	if err == nil {
		t.Fatalf("expected a syntax error for calling a qualified identifier")
	}
}

func TestEmptyArrayLiteralParses(t *testing.T) {
	prog := parse(t, "x := []")
	stmt, ok := prog.Root.(*ast.AssignStatement)
	if !ok {
		t.Fatalf("expected AssignStatement, got %T", prog.Root)
	}
	lit, ok := stmt.Value.(*ast.LitArray)
	if !ok {
		t.Fatalf("expected LitArray, got %T", stmt.Value)
	}
	if len(lit.Elements) != 0 {
		t.Fatalf("expected zero elements, got %d", len(lit.Elements))
	}
}

func TestRecordLiteralAndAccessParse(t *testing.T) {
	prog := parse(t, "r.a := {a is 1, b is 'x'}")
	stmt, ok := prog.Root.(*ast.AssignStatement)
	if !ok {
		t.Fatalf("expected AssignStatement, got %T", prog.Root)
	}
	access, ok := stmt.Target.(*ast.RecordAccess)
	if !ok {
		t.Fatalf("expected RecordAccess target, got %T", stmt.Target)
	}
	if access.Field != "a" {
		t.Fatalf("expected field 'a', got %s", access.Field)
	}
	lit, ok := stmt.Value.(*ast.LitRecord)
	if !ok {
		t.Fatalf("expected LitRecord, got %T", stmt.Value)
	}
	if len(lit.Fields) != 2 {
		t.Fatalf("expected 2 fields, got %d", len(lit.Fields))
	}
}

func TestFuncArgumentVsCallDisambiguation(t *testing.T) {
	prog := parse(t, "apply(f, 3)")
	stmt := prog.Root.(*ast.ExpressionStatement)
	call, ok := stmt.Expr.(*ast.FunCall)
	if !ok {
		t.Fatalf("expected FunCall, got %T", stmt.Expr)
	}
	if len(call.Args) != 2 {
		t.Fatalf("expected 2 args, got %d", len(call.Args))
	}
	if _, ok := call.Args[0].(*ast.FuncArgument); !ok {
		t.Fatalf("expected first argument to be a FuncArgument, got %T", call.Args[0])
	}
}

func TestLoopWhileStatementParses(t *testing.T) {
	prog := parse(t, "loop x := x + 1 while x < 10 do putint(x)")
	stmt, ok := prog.Root.(*ast.LoopWhileStatement)
	if !ok {
		t.Fatalf("expected LoopWhileStatement, got %T", prog.Root)
	}
	if stmt.LoopBody == nil || stmt.Cond == nil || stmt.DoBody == nil {
		t.Fatalf("expected all three parts of loop-while to be populated")
	}
}

func TestVarArgumentParses(t *testing.T) {
	prog := parse(t, "swap(var a, var b)")
	stmt := prog.Root.(*ast.ExpressionStatement)
	call := stmt.Expr.(*ast.FunCall)
	if _, ok := call.Args[0].(*ast.VarArgument); !ok {
		t.Fatalf("expected VarArgument, got %T", call.Args[0])
	}
}
