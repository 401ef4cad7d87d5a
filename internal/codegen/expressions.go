package codegen

import (
	"github.com/triangle-lang/trianglec/internal/ast"
	"github.com/triangle-lang/trianglec/internal/diagnostics"
	"github.com/triangle-lang/trianglec/internal/token"
	"github.com/triangle-lang/trianglec/internal/types"
)

// generateExpression lowers e, leaving exactly e.ResolvedType().Footprint()
// words on top of the stack (spec section 4.4).
func (g *Generator) generateExpression(e ast.Expression) error {
	switch n := e.(type) {
	case *ast.LitBool:
		rep := FalseRep
		if n.Value {
			rep = TrueRep
		}
		g.emit(Instr{Op: LOADL, D: rep})
		return nil

	case *ast.LitInt:
		g.emit(Instr{Op: LOADL, D: n.Value})
		return nil

	case *ast.LitChar:
		g.emit(Instr{Op: LOADL, D: int(n.Value)})
		return nil

	case *ast.LitArray:
		for _, el := range n.Elements {
			if err := g.generateExpression(el); err != nil {
				return err
			}
		}
		return nil

	case *ast.LitRecord:
		// Field values are emitted in the canonical (name-sorted) order of
		// the literal's resolved record type, which is its storage order;
		// the literal's own Fields keep their source order.
		rec := n.ResolvedType().(types.Record)
		for _, rf := range rec.Fields {
			for _, f := range n.Fields {
				if f.Name != rf.Name {
					continue
				}
				if err := g.generateExpression(f.Value); err != nil {
					return err
				}
			}
		}
		return nil

	case *ast.IdentifierExpr:
		return g.fetch(n.Identifier, n.ResolvedType().Footprint())

	case *ast.UnaryOp:
		return g.generateCall(n.Op, []ast.Argument{ast.NewExpressionArgument(n.Operand)}, n.Pos())

	case *ast.BinaryOp:
		return g.generateCall(n.Op, []ast.Argument{
			ast.NewExpressionArgument(n.Left),
			ast.NewExpressionArgument(n.Right),
		}, n.Pos())

	case *ast.IfExpression:
		return g.generateIfExpression(n)

	case *ast.LetExpression:
		return g.generateLetExpression(n)

	case *ast.FunCall:
		return g.generateCall(n.Name, n.Args, n.Pos())

	case *ast.SequenceExpression:
		if err := g.generateStatementErr(n.Stmt); err != nil {
			return err
		}
		return g.generateExpression(n.Expr)
	}
	return diagnostics.CodegenError(e.Pos())
}

func (g *Generator) generateIfExpression(n *ast.IfExpression) error {
	elseLabel := g.newLabel()
	endLabel := g.newLabel()

	if err := g.generateExpression(n.Cond); err != nil {
		return err
	}
	g.emit(Instr{Op: JUMPIF_LABEL, N: FalseRep, Label: elseLabel})
	if err := g.generateExpression(n.Then); err != nil {
		return err
	}
	g.emit(Instr{Op: JUMP_LABEL, Label: endLabel})
	g.emit(Instr{Op: LABEL, Label: elseLabel})
	if err := g.generateExpression(n.Else); err != nil {
		return err
	}
	g.emit(Instr{Op: LABEL, Label: endLabel})
	return nil
}

// generateLetExpression lowers `let D in E`: D's bindings live in a scope
// that shares the enclosing routine's activation record (same Level, only
// growing its stack), and the bound words are popped back down to just
// E's result after E is evaluated (spec section 4.4's LetExpression POP
// with keep=resultSize).
func (g *Generator) generateLetExpression(n *ast.LetExpression) error {
	base := g.vars.ScopeLocalAux().(int)
	g.vars.EnterScope(base)
	g.callables.EnterScope(nil)
	defer g.vars.ExitScope()
	defer g.callables.ExitScope()

	if err := g.allocateDeclarations(n.Decls); err != nil {
		return err
	}
	allocated := g.vars.ScopeLocalAux().(int) - base

	if err := g.generateExpression(n.Body); err != nil {
		return err
	}
	if allocated > 0 {
		g.emit(Instr{Op: POP, N: n.Body.ResolvedType().Footprint(), D: allocated})
	}
	return nil
}

// generateCall emits the code for name(args), the shared mechanism behind
// FunCall, UnaryOp, and BinaryOp lowering (spec section 4.4: "BinaryOp /
// UnaryOp / FunCall — emit a call").
func (g *Generator) generateCall(name string, args []ast.Argument, pos token.Position) error {
	switch name {
	case "=", "\\=":
		return g.generateEqualityCall(name, args, pos)
	case "chr", "ord":
		// Identity encoding between Char and Int: the argument is already
		// the correct runtime representation, so no call is emitted.
		return g.loadArgument(args[0], nil)
	}

	raw, ok := g.callables.Lookup(name)
	if !ok {
		return diagnostics.CodegenError(pos)
	}
	var callable Callable
	if ov, ok := raw.(overload); ok {
		if len(args) == 1 {
			callable = ov.Unary
		} else {
			callable = ov.Binary
		}
	} else {
		callable = raw.(Callable)
	}

	for _, a := range args {
		if err := g.loadArgument(a, nil); err != nil {
			return err
		}
	}
	return g.emitCall(callable, pos)
}

// generateEqualityCall handles `=`/`\=`, which aren't bound in the callables
// table: an extra LOADL of the first operand's base-type footprint precedes
// the CALL_PRIM so the primitive knows how many words to compare (spec
// section 4.4).
func (g *Generator) generateEqualityCall(name string, args []ast.Argument, pos token.Position) error {
	for _, a := range args {
		if err := g.loadArgument(a, nil); err != nil {
			return err
		}
	}
	size := 1
	if ea, ok := args[0].(*ast.ExpressionArgument); ok {
		size = types.BaseType(ea.Expr.ResolvedType()).Footprint()
	}
	g.emit(Instr{Op: LOADL, D: size})
	prim := PrimEQ
	if name == "\\=" {
		prim = PrimNE
	}
	g.emit(Instr{Op: CALL_PRIM, D: int(prim)})
	return nil
}

func (g *Generator) emitCall(callable Callable, pos token.Position) error {
	switch c := callable.(type) {
	case PrimitiveCallable:
		g.emit(Instr{Op: CALL_PRIM, D: int(c.Primitive)})
		return nil
	case StaticCallable:
		reg, err := g.staticLinkRegister(pos, c.Level)
		if err != nil {
			return err
		}
		g.emit(Instr{Op: CALL_LABEL, R: reg, Label: c.Label})
		return nil
	case DynamicCallable:
		reg, err := g.depthOf(pos, c.Level)
		if err != nil {
			return err
		}
		g.emit(Instr{Op: LOAD, N: 2, R: reg, D: c.Offset})
		g.emit(Instr{Op: CALLI})
		return nil
	}
	return diagnostics.CodegenError(pos)
}

// staticLinkRegister finds the display register holding the frame address
// that must become the callee's static link: the frame of the routine
// lexically enclosing the callee, i.e. the frame at calleeLevel-1. Level-0
// (global) callees have no enclosing frame; SB is used by convention.
func (g *Generator) staticLinkRegister(pos token.Position, calleeLevel int) (Register, error) {
	if calleeLevel == 0 {
		return RegSB, nil
	}
	return g.depthOf(pos, calleeLevel-1)
}

// loadArgument pushes one call argument per its kind (spec section 4.4's
// "Argument loading"): a plain expression's value, an address for `var`
// arguments, or a two-word closure for a bare callable name.
func (g *Generator) loadArgument(arg ast.Argument, _ ast.Parameter) error {
	switch a := arg.(type) {
	case *ast.ExpressionArgument:
		return g.generateExpression(a.Expr)
	case *ast.VarArgument:
		return g.runtimeLocation(a.Identifier, true)
	case *ast.FuncArgument:
		return g.loadClosure(a.Name, a.Pos())
	}
	return diagnostics.CodegenError(arg.Pos())
}

// loadClosure pushes the two-word {staticLink, codeAddr} representation of
// a callable passed by name as a func/proc argument (spec section 4.4).
func (g *Generator) loadClosure(name string, pos token.Position) error {
	raw, ok := g.callables.Lookup(name)
	if !ok {
		return diagnostics.CodegenError(pos)
	}
	switch c := raw.(type) {
	case StaticCallable:
		reg, err := g.staticLinkRegister(pos, c.Level)
		if err != nil {
			return err
		}
		g.emit(Instr{Op: LOADA, R: reg, D: 0})
		g.emit(Instr{Op: LOADA_LABEL, R: RegCB, Label: c.Label})
		return nil
	case DynamicCallable:
		reg, err := g.depthOf(pos, c.Level)
		if err != nil {
			return err
		}
		g.emit(Instr{Op: LOAD, N: 2, R: reg, D: c.Offset})
		return nil
	}
	return diagnostics.CodegenError(pos)
}
