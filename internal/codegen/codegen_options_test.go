package codegen_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/triangle-lang/trianglec/internal/ast"
	"github.com/triangle-lang/trianglec/internal/checker"
	"github.com/triangle-lang/trianglec/internal/codegen"
	"github.com/triangle-lang/trianglec/internal/lexer"
	"github.com/triangle-lang/trianglec/internal/parser"
)

func mustCheckedProgram(t *testing.T, source string) *ast.Program {
	t.Helper()
	prog, err := parser.ParseProgram(lexer.New(source))
	require.NoError(t, err)
	errs := checker.New().Check(prog)
	require.Empty(t, errs)
	return prog
}

// TestEmitHelperBlockFalseDropsTheHelperRoutine confirms EmitHelperBlock is
// actually wired: with it off, a program using the compiler-generated `|`
// helper fails to generate (the callable is never installed), where the
// same program compiles fine with the default options.
func TestEmitHelperBlockFalseDropsTheHelperRoutine(t *testing.T) {
	prog := mustCheckedProgram(t, "putint(|(0 - 3))")

	_, err := codegen.Generate(prog, codegen.DefaultOptions())
	require.NoError(t, err)

	_, err = codegen.Generate(prog, codegen.Options{EmitHelperBlock: false})
	require.Error(t, err)
}

// TestMaxDisplayDepthIsEnforced confirms a configured max_nesting_depth
// actually tightens codegen's depth ceiling rather than being ignored: a
// doubly-nested function whose innermost body reaches two levels out to a
// global compiles under the default ceiling but fails once the configured
// ceiling is pinned below that depth.
func TestMaxDisplayDepthIsEnforced(t *testing.T) {
	source := `let var g : Integer;
		func outer(n : Integer) : Integer is
			let func inner(m : Integer) : Integer is n + m + g
			in inner(n)
	in begin g := 1; putint(outer(5)) end`
	prog := mustCheckedProgram(t, source)

	_, err := codegen.Generate(prog, codegen.DefaultOptions())
	require.NoError(t, err)

	_, err = codegen.Generate(prog, codegen.Options{MaxDisplayDepth: 0, EmitHelperBlock: true})
	require.NoError(t, err, "zero means the default ceiling, not zero depth")

	_, err = codegen.Generate(prog, codegen.Options{MaxDisplayDepth: 1, EmitHelperBlock: true})
	require.Error(t, err, "inner's reference to the global g crosses two levels, past the configured ceiling of one")
}
