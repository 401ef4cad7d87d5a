package ast

import (
	"testing"

	"github.com/triangle-lang/trianglec/internal/token"
	"github.com/triangle-lang/trianglec/internal/types"
)

func TestIdentifierRootReturnsInnermostBasic(t *testing.T) {
	pos := token.Position{Line: 1, Column: 1}
	base := NewBasic(pos, "r")
	access := NewRecordAccess(pos, base, "field")
	sub := NewArraySubscript(pos, access, NewLitInt(pos, 0))

	if sub.Root() != base {
		t.Fatalf("Root() did not return the innermost Basic identifier")
	}
}

func TestResolvedTypeSlotStartsNilAndIsSettable(t *testing.T) {
	pos := token.Position{Line: 2, Column: 3}
	lit := NewLitInt(pos, 42)
	if lit.ResolvedType() != nil {
		t.Fatalf("expected nil resolved type before checking")
	}
	lit.SetResolvedType(types.Int)
	if !lit.ResolvedType().Equal(types.Int) {
		t.Fatalf("resolved type was not retained after SetResolvedType")
	}
}

func TestIfStatementAllowsAbsentBranches(t *testing.T) {
	pos := token.Position{Line: 1, Column: 1}
	stmt := NewIfStatement(pos, NewLitBool(pos, true), nil, nil)
	if stmt.Consequent != nil || stmt.Alternative != nil {
		t.Fatalf("expected both branches to remain nil when omitted")
	}
}
