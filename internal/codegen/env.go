package codegen

import "github.com/triangle-lang/trianglec/internal/symbols"

// installOperators binds every standard-environment operator and primitive
// builtin as a Callable in the codegen callables table (spec section 6).
// Unlike the checker's terms table, this table is never consulted for type
// information — codegen trusts the checker already validated arity and
// operand types, so names are bound directly to the primitive that
// implements them.
func installOperators(callables *symbols.Table) {
	prim := func(p Primitive) Callable { return PrimitiveCallable{Primitive: p} }

	callables.Add("+", prim(PrimADD))
	callables.Add("*", prim(PrimMULT))
	callables.Add("/", prim(PrimDIV))
	callables.Add("//", prim(PrimMOD))
	callables.Add("-", overload{Binary: prim(PrimSUB), Unary: prim(PrimNEG)})

	callables.Add("<", prim(PrimLT))
	callables.Add("<=", prim(PrimLE))
	callables.Add(">", prim(PrimGT))
	callables.Add(">=", prim(PrimGE))

	callables.Add("\\/", prim(PrimOR))
	callables.Add("/\\", prim(PrimAND))
	callables.Add("\\", overload{Unary: prim(PrimNOT)})

	// `=` / `\=` are handled specially in generateCall (an extra size word
	// is pushed ahead of the primitive call), so no table entry is needed.

	callables.Add("get", prim(PrimGET))
	callables.Add("put", prim(PrimPUT))
	callables.Add("geteol", prim(PrimGETEOL))
	callables.Add("puteol", prim(PrimPUTEOL))
	callables.Add("getint", prim(PrimGETINT))
	callables.Add("putint", prim(PrimPUTINT))
	callables.Add("eol", prim(PrimEOL))
	callables.Add("eof", prim(PrimEOF))

	// chr/ord are handled specially in generateCall (no-ops); no entry here.

	callables.Add("new", prim(PrimNEW))
	callables.Add("dispose", prim(PrimDISPOSE))

	callables.Add("id", prim(PrimID))
	callables.Add("succ", prim(PrimSUCC))
	callables.Add("pred", prim(PrimPRED))
	callables.Add("neg", prim(PrimNEG))
}

// helper is a compiler-generated out-of-line routine whose label is reserved
// up front (so it can be bound as a callable before user code is generated)
// but whose body is emitted only after the user code and its trailing HALT
// (spec section 4.4's program epilogue).
type helper struct {
	build func(g *Generator) error
}

// installHelpers reserves helper label ids (starting from 0, ahead of any
// user-code label) and binds each helper's name as a StaticCallable so user
// code can call it, returning the deferred instruction builders.
func (g *Generator) installHelpers() []helper {
	absLabel := g.newLabel()
	positiveLabel := g.newLabel()
	endLabel := g.newLabel()
	g.callables.Add("|", StaticCallable{Label: absLabel, Level: 0})

	return []helper{
		{build: func(g *Generator) error {
			return g.emitAbsHelper(absLabel, positiveLabel, endLabel)
		}},
	}
}

// emitAbsHelper realizes the unary `|` absolute-value builtin: its single
// Integer parameter sits at offset -1 relative to LB (spec section 4.4's
// reverse-order parameter layout for a one-word argument).
func (g *Generator) emitAbsHelper(self, positive, end Label) error {
	g.emit(Instr{Op: LABEL, Label: self})
	g.emit(Instr{Op: LOAD, N: 1, R: RegLB, D: -1})
	g.emit(Instr{Op: LOADL, D: 0})
	g.emit(Instr{Op: CALL_PRIM, D: int(PrimLT)})
	g.emit(Instr{Op: JUMPIF_LABEL, N: FalseRep, Label: positive})
	g.emit(Instr{Op: LOAD, N: 1, R: RegLB, D: -1})
	g.emit(Instr{Op: CALL_PRIM, D: int(PrimNEG)})
	g.emit(Instr{Op: JUMP_LABEL, Label: end})
	g.emit(Instr{Op: LABEL, Label: positive})
	g.emit(Instr{Op: LOAD, N: 1, R: RegLB, D: -1})
	g.emit(Instr{Op: LABEL, Label: end})
	g.emit(Instr{Op: RETURN, N: 1, D: 1})
	return nil
}
