package objectfile_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/triangle-lang/trianglec/internal/backend"
	"github.com/triangle-lang/trianglec/internal/codegen"
	"github.com/triangle-lang/trianglec/internal/objectfile"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	instrs := []backend.Resolved{
		{Op: codegen.LOADL, D: 42},
		{Op: codegen.LOAD, N: 1, R: codegen.RegL2, D: -3},
		{Op: codegen.CALL_PRIM, D: int(codegen.PrimADD)},
		{Op: codegen.JUMPIF, N: codegen.FalseRep, D: 7},
		{Op: codegen.CALL, R: codegen.RegSB, D: 0},
		{Op: codegen.RETURN, N: 1, D: 3},
		{Op: codegen.HALT},
	}

	data, err := objectfile.Encode(instrs)
	require.NoError(t, err)
	require.Len(t, data, len(instrs)*objectfile.RecordSize)

	decoded, err := objectfile.Decode(data)
	require.NoError(t, err)
	require.Equal(t, instrs, decoded)
}

func TestEncodeDecodeRoundTripEmpty(t *testing.T) {
	data, err := objectfile.Encode(nil)
	require.NoError(t, err)
	require.Empty(t, data)

	decoded, err := objectfile.Decode(data)
	require.NoError(t, err)
	require.Empty(t, decoded)
}

func TestDecodeRejectsTruncatedInput(t *testing.T) {
	_, err := objectfile.Decode(make([]byte, objectfile.RecordSize-1))
	require.Error(t, err)
}
