package testsupport_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/triangle-lang/trianglec/internal/lexer"
	"github.com/triangle-lang/trianglec/internal/pipeline"
	"github.com/triangle-lang/trianglec/internal/testsupport"
)

func TestGoldenScenariosCompileCleanly(t *testing.T) {
	scenarios, err := testsupport.Scenarios()
	require.NoError(t, err)
	require.Len(t, scenarios, 7)

	for _, sc := range scenarios {
		sc := sc
		t.Run(sc.Name, func(t *testing.T) {
			ctx := pipeline.NewContext(sc.Name, sc.Source, lexer.New(sc.Source))
			result := pipeline.Standard().Run(ctx)

			require.Falsef(t, result.Failed(), "unexpected errors for %s: %v", sc.Name, result.Errors)
			require.NotEmpty(t, result.Instrs)
			require.NotEmpty(t, result.Resolved)
			require.NotEmpty(t, result.Object)
			require.Zero(t, len(result.Object)%16, "object file must be a whole number of 16-byte records")
		})
	}
}

func TestGoldenScenariosHaveDescriptions(t *testing.T) {
	scenarios, err := testsupport.Scenarios()
	require.NoError(t, err)
	for _, sc := range scenarios {
		require.NotEmptyf(t, sc.Description, "scenario %s is missing a description comment", sc.Name)
	}
}
