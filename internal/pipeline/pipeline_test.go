package pipeline_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/triangle-lang/trianglec/internal/lexer"
	"github.com/triangle-lang/trianglec/internal/pipeline"
)

func TestStandardPipelineCompilesAWellTypedProgram(t *testing.T) {
	source := `let var x : Integer in x := 1`
	ctx := pipeline.NewContext("in-memory", source, lexer.New(source))

	out := pipeline.Standard().Run(ctx)

	require.False(t, out.Failed(), "unexpected errors: %v", out.Errors)
	require.NotEmpty(t, out.Instrs)
	require.NotEmpty(t, out.Resolved)
	require.NotEmpty(t, out.Object)
	require.NotEqual(t, out.SessionID.String(), "")
}

func TestStandardPipelineStopsAtTheFirstFailingStage(t *testing.T) {
	source := `let var x : Integer in x := true`
	ctx := pipeline.NewContext("in-memory", source, lexer.New(source))

	out := pipeline.Standard().Run(ctx)

	require.True(t, out.Failed())
	require.Nil(t, out.Instrs)
	require.Nil(t, out.Object)
}
