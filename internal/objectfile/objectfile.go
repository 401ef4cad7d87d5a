// Package objectfile encodes a backend.Resolved instruction stream to the
// fixed binary layout TAM object files use and decodes it back (spec.md
// section 4.5, section 6): each instruction is a 16-byte record of four
// big-endian 32-bit words (op, r, n, d).
package objectfile

import (
	"fmt"

	"github.com/funvibe/funbit/pkg/funbit"

	"github.com/triangle-lang/trianglec/internal/backend"
	"github.com/triangle-lang/trianglec/internal/codegen"
)

// RecordSize is the fixed width, in bytes, of one encoded instruction.
const RecordSize = 16

// Encode serializes instrs into the fixed-width record format, one 16-byte
// record per instruction in order.
func Encode(instrs []backend.Resolved) ([]byte, error) {
	builder := funbit.NewBuilder()
	for _, in := range instrs {
		funbit.AddInteger(builder, int(in.Op), funbit.WithSize(32), funbit.WithEndianness("big"))
		funbit.AddInteger(builder, int(in.R), funbit.WithSize(32), funbit.WithEndianness("big"))
		// N and D can be negative (e.g. a parameter's stack offset), unlike
		// Op/R which are always non-negative enum ordinals.
		funbit.AddInteger(builder, in.N, funbit.WithSize(32), funbit.WithEndianness("big"), funbit.WithSigned(true))
		funbit.AddInteger(builder, in.D, funbit.WithSize(32), funbit.WithEndianness("big"), funbit.WithSigned(true))
	}

	bits, err := funbit.Build(builder)
	if err != nil {
		return nil, fmt.Errorf("objectfile: encode: %w", err)
	}
	return bits.ToBytes(), nil
}

// Decode parses data back into its instruction stream. It returns an error
// if data's length is not a whole number of RecordSize-byte records.
func Decode(data []byte) ([]backend.Resolved, error) {
	if len(data)%RecordSize != 0 {
		return nil, fmt.Errorf("objectfile: decode: length %d is not a multiple of %d", len(data), RecordSize)
	}
	count := len(data) / RecordSize

	bits := funbit.NewBitStringFromBytes(data)
	matcher := funbit.NewMatcher()

	ops := make([]int, count)
	rs := make([]int, count)
	ns := make([]int, count)
	ds := make([]int, count)
	for i := 0; i < count; i++ {
		funbit.Integer(matcher, &ops[i], funbit.WithSize(32), funbit.WithEndianness("big"))
		funbit.Integer(matcher, &rs[i], funbit.WithSize(32), funbit.WithEndianness("big"))
		funbit.Integer(matcher, &ns[i], funbit.WithSize(32), funbit.WithEndianness("big"), funbit.WithSigned(true))
		funbit.Integer(matcher, &ds[i], funbit.WithSize(32), funbit.WithEndianness("big"), funbit.WithSigned(true))
	}

	if _, err := funbit.Match(matcher, bits); err != nil {
		return nil, fmt.Errorf("objectfile: decode: %w", err)
	}

	out := make([]backend.Resolved, count)
	for i := range out {
		out[i] = backend.Resolved{
			Op: codegen.Op(ops[i]),
			R:  codegen.Register(rs[i]),
			N:  ns[i],
			D:  ds[i],
		}
	}
	return out, nil
}
