package codegen

import (
	"github.com/triangle-lang/trianglec/internal/ast"
	"github.com/triangle-lang/trianglec/internal/diagnostics"
	"github.com/triangle-lang/trianglec/internal/types"
)

// runtimeLocation emits the address of id onto the stack (spec section
// 4.4's runtimeLocation(id, dereferencing)). When dereferencing is true and
// id's resolved type is itself a reference, one extra indirection is
// performed so the computed address is that of the referenced value, not of
// the reference slot.
func (g *Generator) runtimeLocation(id ast.Identifier, dereferencing bool) error {
	switch n := id.(type) {
	case *ast.Basic:
		v, _ := g.vars.Lookup(n.Name)
		vb := v.(VarBinding)
		reg, err := g.depthOf(n.Pos(), vb.Level)
		if err != nil {
			return err
		}
		g.emit(Instr{Op: LOADA, R: reg, D: vb.Offset})
		if dereferencing && types.IsRef(n.ResolvedType()) {
			g.emit(Instr{Op: LOADI, N: 1})
		}
		return nil

	case *ast.ArraySubscript:
		if err := g.runtimeLocation(n.Array, dereferencing); err != nil {
			return err
		}
		if err := g.generateExpression(n.Subscript); err != nil {
			return err
		}
		arr := types.BaseType(n.Array.ResolvedType()).(types.Array)
		g.emit(Instr{Op: LOADL, D: arr.Element.Footprint()})
		g.emit(Instr{Op: CALL_PRIM, D: int(PrimMULT)})
		g.emit(Instr{Op: CALL_PRIM, D: int(PrimADD)})
		return nil

	case *ast.RecordAccess:
		if err := g.runtimeLocation(n.Record, dereferencing); err != nil {
			return err
		}
		rec := types.BaseType(n.Record.ResolvedType()).(types.Record)
		offset, _ := rec.FieldOffset(n.Field)
		if offset != 0 {
			g.emit(Instr{Op: LOADL, D: offset})
			g.emit(Instr{Op: CALL_PRIM, D: int(PrimADD)})
		}
		return nil
	}
	return diagnostics.CodegenError(id.Pos())
}

// fetch loads id's value (size words) onto the stack: a single LOAD for a
// non-reference Basic identifier, otherwise a computed address plus LOADI
// (spec section 4.4's fetch/store symmetry).
func (g *Generator) fetch(id ast.Identifier, size int) error {
	if b, ok := id.(*ast.Basic); ok && !types.IsRef(b.ResolvedType()) {
		v, _ := g.vars.Lookup(b.Name)
		vb := v.(VarBinding)
		reg, err := g.depthOf(b.Pos(), vb.Level)
		if err != nil {
			return err
		}
		g.emit(Instr{Op: LOAD, N: size, R: reg, D: vb.Offset})
		return nil
	}
	if err := g.runtimeLocation(id, true); err != nil {
		return err
	}
	g.emit(Instr{Op: LOADI, N: size})
	return nil
}

// store writes size words already on top of the stack into id's runtime
// location: a single STORE for a non-reference Basic identifier, otherwise a
// computed address plus STOREI. The caller must have already pushed the
// value (spec section 4.4's AssignStatement: "emit RHS, then emit a store").
func (g *Generator) store(id ast.Identifier, size int) error {
	if b, ok := id.(*ast.Basic); ok && !types.IsRef(b.ResolvedType()) {
		v, _ := g.vars.Lookup(b.Name)
		vb := v.(VarBinding)
		reg, err := g.depthOf(b.Pos(), vb.Level)
		if err != nil {
			return err
		}
		g.emit(Instr{Op: STORE, N: size, R: reg, D: vb.Offset})
		return nil
	}
	if err := g.runtimeLocation(id, true); err != nil {
		return err
	}
	g.emit(Instr{Op: STOREI, N: size})
	return nil
}
