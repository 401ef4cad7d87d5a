package backend_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/triangle-lang/trianglec/internal/backend"
	"github.com/triangle-lang/trianglec/internal/codegen"
)

func TestResolveStripsLabelsAndPatchesJumps(t *testing.T) {
	start := codegen.Label(0)
	end := codegen.Label(1)

	instrs := []codegen.Instr{
		{Op: codegen.LABEL, Label: start},
		{Op: codegen.LOADL, D: 1},
		{Op: codegen.JUMPIF_LABEL, N: codegen.FalseRep, Label: end},
		{Op: codegen.JUMP_LABEL, Label: start},
		{Op: codegen.LABEL, Label: end},
		{Op: codegen.HALT},
	}

	resolved, err := backend.Resolve(instrs)
	require.NoError(t, err)
	require.Equal(t, []backend.Resolved{
		{Op: codegen.LOADL, D: 1},
		{Op: codegen.JUMPIF, N: codegen.FalseRep, D: 3},
		{Op: codegen.JUMP, D: 0},
		{Op: codegen.HALT},
	}, resolved)
}

func TestResolveRejectsUnknownLabel(t *testing.T) {
	instrs := []codegen.Instr{
		{Op: codegen.JUMP_LABEL, Label: codegen.Label(99)},
	}
	_, err := backend.Resolve(instrs)
	require.Error(t, err)
}

func TestResolveRewritesCallAndLoadaLabels(t *testing.T) {
	target := codegen.Label(5)
	instrs := []codegen.Instr{
		{Op: codegen.CALL_LABEL, R: codegen.RegSB, Label: target},
		{Op: codegen.LOADA_LABEL, R: codegen.RegLB, Label: target},
		{Op: codegen.LABEL, Label: target},
		{Op: codegen.RETURN, N: 1, D: 1},
	}

	resolved, err := backend.Resolve(instrs)
	require.NoError(t, err)
	require.Equal(t, []backend.Resolved{
		{Op: codegen.CALL, R: codegen.RegSB, D: 2},
		{Op: codegen.LOADA, R: codegen.RegLB, D: 2},
		{Op: codegen.RETURN, N: 1, D: 1},
	}, resolved)
}
