// Package backend resolves the symbolic labels a codegen.Instr stream
// carries into the plain integer operands TAM's four real fields (op,
// register, n, d) need, in the two passes spec.md section 4.5 describes.
package backend

import (
	"fmt"

	"github.com/triangle-lang/trianglec/internal/codegen"
)

// Resolved is one fully backpatched TAM instruction: op, register, n, d.
// Unlike codegen.Instr it carries no Label field — every jump/call target
// has already been rewritten to a code offset.
type Resolved struct {
	Op codegen.Op
	R  codegen.Register
	N  int
	D  int
}

// Resolve runs both backpatching passes over instrs (spec section 4.5):
// pass 1 computes each LABEL's code offset by counting how many LABEL
// pseudo-instructions precede it; pass 2 strips LABELs and rewrites every
// *_LABEL pseudo-op into its real counterpart with the resolved offset.
func Resolve(instrs []codegen.Instr) ([]Resolved, error) {
	offsets := computeLabelOffsets(instrs)

	out := make([]Resolved, 0, len(instrs))
	for _, in := range instrs {
		switch in.Op {
		case codegen.LABEL:
			continue

		case codegen.JUMP_LABEL:
			target, err := resolveLabel(offsets, in.Label)
			if err != nil {
				return nil, err
			}
			out = append(out, Resolved{Op: codegen.JUMP, D: target})

		case codegen.JUMPIF_LABEL:
			target, err := resolveLabel(offsets, in.Label)
			if err != nil {
				return nil, err
			}
			out = append(out, Resolved{Op: codegen.JUMPIF, N: in.N, D: target})

		case codegen.CALL_LABEL:
			target, err := resolveLabel(offsets, in.Label)
			if err != nil {
				return nil, err
			}
			out = append(out, Resolved{Op: codegen.CALL, R: in.R, D: target})

		case codegen.LOADA_LABEL:
			target, err := resolveLabel(offsets, in.Label)
			if err != nil {
				return nil, err
			}
			out = append(out, Resolved{Op: codegen.LOADA, R: in.R, D: target})

		default:
			out = append(out, Resolved{Op: in.Op, R: in.R, N: in.N, D: in.D})
		}
	}
	return out, nil
}

// computeLabelOffsets maps each LABEL's id to the code offset it names: its
// position in the output stream once every LABEL pseudo-instruction ahead of
// it (including itself) has been stripped.
func computeLabelOffsets(instrs []codegen.Instr) map[codegen.Label]int {
	offsets := make(map[codegen.Label]int)
	offset := 0
	for _, in := range instrs {
		if in.Op == codegen.LABEL {
			offsets[in.Label] = offset
			continue
		}
		offset++
	}
	return offsets
}

func resolveLabel(offsets map[codegen.Label]int, l codegen.Label) (int, error) {
	offset, ok := offsets[l]
	if !ok {
		return 0, fmt.Errorf("backend: unresolved label %d", l)
	}
	return offset, nil
}
