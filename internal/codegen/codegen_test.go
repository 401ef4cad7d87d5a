package codegen

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/triangle-lang/trianglec/internal/ast"
	"github.com/triangle-lang/trianglec/internal/token"
	"github.com/triangle-lang/trianglec/internal/types"
)

// TestLoadArgumentDereferencesAnAlreadyReferenceVarArgument locks in the fix
// for forwarding a var parameter (itself a RefOf) into a nested call's var
// argument: the runtime location computed for the outer identifier must be
// dereferenced once, so the address actually pushed is that of the
// referenced value, not of the reference slot holding it (spec section
// 4.4's runtimeLocation "dereferencing" parameter).
func TestLoadArgumentDereferencesAnAlreadyReferenceVarArgument(t *testing.T) {
	g := newGenerator(DefaultOptions())

	// A var parameter "z" of declared type Integer: bound with resolved
	// type RefOf{Int}, exactly as the checker's resolveParam stamps it.
	g.vars.Add("z", VarBinding{Offset: -1, Level: 0})
	id := ast.NewBasic(token.Position{}, "z")
	id.SetResolvedType(types.RefOf{Inner: types.Int})

	arg := ast.NewVarArgument(token.Position{}, id)
	require.NoError(t, g.loadArgument(arg, nil))

	require.Equal(t, []Instr{
		{Op: LOADA, R: RegLB, D: -1},
		{Op: LOADI, N: 1},
	}, g.instrs)
}
