package codegen

import (
	"github.com/triangle-lang/trianglec/internal/ast"
	"github.com/triangle-lang/trianglec/internal/diagnostics"
)

// generateStatementErr lowers s, leaving the stack exactly as it found it
// (spec section 4.4: statements are stack-neutral).
func (g *Generator) generateStatementErr(s ast.Statement) error {
	switch n := s.(type) {
	case *ast.StatementBlock:
		for _, stmt := range n.Statements {
			if err := g.generateStatementErr(stmt); err != nil {
				return err
			}
		}
		return nil

	case *ast.LetStatement:
		return g.generateLetStatement(n)

	case *ast.IfStatement:
		return g.generateIfStatement(n)

	case *ast.WhileStatement:
		return g.generateWhileStatement(n)

	case *ast.LoopWhileStatement:
		return g.generateLoopWhileStatement(n)

	case *ast.RepeatWhileStatement:
		return g.generateRepeatWhileStatement(n)

	case *ast.RepeatUntilStatement:
		return g.generateRepeatUntilStatement(n)

	case *ast.AssignStatement:
		if err := g.generateExpression(n.Value); err != nil {
			return err
		}
		return g.store(n.Target, n.Value.ResolvedType().Footprint())

	case *ast.ExpressionStatement:
		if err := g.generateExpression(n.Expr); err != nil {
			return err
		}
		if size := n.Expr.ResolvedType().Footprint(); size > 0 {
			g.emit(Instr{Op: POP, N: 0, D: size})
		}
		return nil

	case *ast.NoopStatement:
		return nil
	}
	return diagnostics.CodegenError(s.Pos())
}

func (g *Generator) generateIfStatement(n *ast.IfStatement) error {
	if err := g.generateExpression(n.Cond); err != nil {
		return err
	}

	if n.Alternative == nil {
		endLabel := g.newLabel()
		g.emit(Instr{Op: JUMPIF_LABEL, N: FalseRep, Label: endLabel})
		if n.Consequent != nil {
			if err := g.generateStatementErr(n.Consequent); err != nil {
				return err
			}
		}
		g.emit(Instr{Op: LABEL, Label: endLabel})
		return nil
	}

	elseLabel := g.newLabel()
	endLabel := g.newLabel()
	g.emit(Instr{Op: JUMPIF_LABEL, N: FalseRep, Label: elseLabel})
	if n.Consequent != nil {
		if err := g.generateStatementErr(n.Consequent); err != nil {
			return err
		}
	}
	g.emit(Instr{Op: JUMP_LABEL, Label: endLabel})
	g.emit(Instr{Op: LABEL, Label: elseLabel})
	if err := g.generateStatementErr(n.Alternative); err != nil {
		return err
	}
	g.emit(Instr{Op: LABEL, Label: endLabel})
	return nil
}

func (g *Generator) generateWhileStatement(n *ast.WhileStatement) error {
	startLabel := g.newLabel()
	endLabel := g.newLabel()

	g.emit(Instr{Op: LABEL, Label: startLabel})
	if err := g.generateExpression(n.Cond); err != nil {
		return err
	}
	g.emit(Instr{Op: JUMPIF_LABEL, N: FalseRep, Label: endLabel})
	if err := g.generateStatementErr(n.Body); err != nil {
		return err
	}
	g.emit(Instr{Op: JUMP_LABEL, Label: startLabel})
	g.emit(Instr{Op: LABEL, Label: endLabel})
	return nil
}

// generateLoopWhileStatement lowers `loop S1 while E do S2`: S1 runs
// unconditionally every iteration, then E gates whether S2 runs and the loop
// repeats (spec section 4.1).
func (g *Generator) generateLoopWhileStatement(n *ast.LoopWhileStatement) error {
	startLabel := g.newLabel()
	endLabel := g.newLabel()

	g.emit(Instr{Op: LABEL, Label: startLabel})
	if err := g.generateStatementErr(n.LoopBody); err != nil {
		return err
	}
	if err := g.generateExpression(n.Cond); err != nil {
		return err
	}
	g.emit(Instr{Op: JUMPIF_LABEL, N: FalseRep, Label: endLabel})
	if err := g.generateStatementErr(n.DoBody); err != nil {
		return err
	}
	g.emit(Instr{Op: JUMP_LABEL, Label: startLabel})
	g.emit(Instr{Op: LABEL, Label: endLabel})
	return nil
}

func (g *Generator) generateRepeatWhileStatement(n *ast.RepeatWhileStatement) error {
	startLabel := g.newLabel()

	g.emit(Instr{Op: LABEL, Label: startLabel})
	if err := g.generateStatementErr(n.Body); err != nil {
		return err
	}
	if err := g.generateExpression(n.Cond); err != nil {
		return err
	}
	g.emit(Instr{Op: JUMPIF_LABEL, N: TrueRep, Label: startLabel})
	return nil
}

func (g *Generator) generateRepeatUntilStatement(n *ast.RepeatUntilStatement) error {
	startLabel := g.newLabel()

	g.emit(Instr{Op: LABEL, Label: startLabel})
	if err := g.generateStatementErr(n.Body); err != nil {
		return err
	}
	if err := g.generateExpression(n.Cond); err != nil {
		return err
	}
	g.emit(Instr{Op: JUMPIF_LABEL, N: FalseRep, Label: startLabel})
	return nil
}

// generateLetStatement lowers `let D in S`: D's bindings share the enclosing
// routine's activation record (same Level, only growing its stack), and are
// popped back off entirely once S completes (spec section 4.4's
// LetStatement POP with keep=0).
func (g *Generator) generateLetStatement(n *ast.LetStatement) error {
	base := g.vars.ScopeLocalAux().(int)
	g.vars.EnterScope(base)
	g.callables.EnterScope(nil)
	defer g.vars.ExitScope()
	defer g.callables.ExitScope()

	if err := g.allocateDeclarations(n.Decls); err != nil {
		return err
	}
	allocated := g.vars.ScopeLocalAux().(int) - base

	if err := g.generateStatementErr(n.Body); err != nil {
		return err
	}
	if allocated > 0 {
		g.emit(Instr{Op: POP, N: 0, D: allocated})
	}
	return nil
}
