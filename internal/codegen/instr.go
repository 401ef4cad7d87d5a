// Package codegen lowers a type-checked Triangle AST to a flat list of TAM
// pseudo-instructions with symbolic labels (spec section 4.4). The backend
// package resolves labels to code offsets in a second pass.
package codegen

// Op is a pseudo-instruction opcode. The first block is the real TAM
// instruction set; the LABEL/*_LABEL block are codegen-only markers that
// the backend resolves and strips.
type Op int

const (
	LOAD Op = iota
	LOADA
	LOADI
	LOADL
	STORE
	STOREI
	PUSH
	POP
	JUMP
	JUMPIF
	CALL
	CALLI
	CALL_PRIM
	RETURN
	HALT

	// Pseudo-ops resolved by internal/backend.
	LABEL
	JUMP_LABEL
	JUMPIF_LABEL
	CALL_LABEL
	LOADA_LABEL
)

// Register names the TAM register file: a fixed bank (code base, primitive
// base, stack base, heap base) plus the display (LB, L1..L6), one per static
// nesting level up to the maximum depth of 6 (spec section 4.4).
type Register int

const (
	RegLB Register = iota
	RegL1
	RegL2
	RegL3
	RegL4
	RegL5
	RegL6
	RegCB
	RegPB
	RegSB
	RegHB
)

// MaxDisplayDepth is the deepest static nesting level codegen can address:
// the architectural ceiling, one display register per level (spec section
// 4.4: "Depth above 6 is a hard error at codegen"). A triangle.yaml's
// max_nesting_depth can only tighten this, never loosen it — there is no
// register beyond L6 to loosen it into.
const MaxDisplayDepth = 6

// displayRegister maps a static-nesting depth (0 = the current routine's own
// frame) to its display register, rejecting anything beyond limit (itself
// never allowed past MaxDisplayDepth). RegLB..RegL6 are declared in depth
// order so the mapping is a direct cast.
func displayRegister(depth, limit int) (Register, bool) {
	if depth < 0 || depth > limit {
		return 0, false
	}
	return Register(depth), true
}

// LinkDataSize is the fixed word count of an activation record's link data:
// static link, dynamic link, return address (spec section 4.4, GLOSSARY).
const LinkDataSize = 3

// Boolean representations used by LOADL for LitBool (spec section 4.4).
const (
	FalseRep = 0
	TrueRep  = 1
)

// Primitive is the ordinal of a built-in TAM routine, addressed via the
// primitive-base register (spec section 4.4).
type Primitive int

const (
	PrimID Primitive = iota
	PrimSUCC
	PrimPRED
	PrimNEG
	PrimADD
	PrimSUB
	PrimMULT
	PrimDIV
	PrimMOD
	PrimLT
	PrimLE
	PrimGT
	PrimGE
	PrimEQ
	PrimNE
	PrimAND
	PrimOR
	PrimNOT
	PrimGET
	PrimPUT
	PrimGETEOL
	PrimPUTEOL
	PrimGETINT
	PrimPUTINT
	PrimEOL
	PrimEOF
	PrimNEW
	PrimDISPOSE
)

// Label is a symbolic jump/call target, nominal and compared by identity
// (spec section 9's "Label identity" design note).
type Label int

// labelAllocator issues monotonically increasing label ids, shared between
// the compiler-generated helper block and the user-code generator so helper
// ids occupy the low range and user ids start at the first free id after
// them (spec section 4.4).
type labelAllocator struct{ next int }

func (a *labelAllocator) new() Label {
	l := Label(a.next)
	a.next++
	return l
}

// Instr is one pseudo-instruction. Which fields are meaningful depends on
// Op:
//   - LOAD/STORE(size, r, d): N=size, R=r, D=d
//   - LOADA(r, d): R=r, D=d
//   - LOADI/STOREI(size): N=size
//   - LOADL(value): D=value
//   - PUSH(n)/POP(keep, below): N=n, or N=keep D=below
//   - JUMP(d): D=target code offset (post-backpatch)
//   - JUMPIF(condVal, d): N=condVal, D=target
//   - CALL(r, d): R=staticLinkRegister, D=target
//   - CALL_PRIM(p): D=int(p)
//   - CALLI: no operands
//   - RETURN(resultSize, argsSize): N=resultSize, D=argsSize
//   - LABEL: Label=this label's own id (definition site)
//   - JUMP_LABEL: Label=target
//   - JUMPIF_LABEL(condVal, label): N=condVal, Label=target
//   - CALL_LABEL(staticLinkRegister, label): R=staticLinkRegister, Label=target
//   - LOADA_LABEL(label): R=RegCB, Label=target (loads the label's code address as data)
type Instr struct {
	Op    Op
	R     Register
	N     int
	D     int
	Label Label
}
