package codegen

import (
	"github.com/triangle-lang/trianglec/internal/ast"
	"github.com/triangle-lang/trianglec/internal/diagnostics"
)

// allocateDeclarations lowers one let-block's declaration list in order,
// threading the enclosing scope's running stack-offset counter (the vars
// table's scope-local aux slot) through each one (spec section 4.4).
func (g *Generator) allocateDeclarations(decls []ast.Declaration) error {
	for _, d := range decls {
		if err := g.allocateDeclaration(d); err != nil {
			return err
		}
	}
	return nil
}

func (g *Generator) allocateDeclaration(d ast.Declaration) error {
	switch n := d.(type) {
	case *ast.ConstDecl:
		if err := g.generateExpression(n.Value); err != nil {
			return err
		}
		g.bindVar(n.Name, n.Value.ResolvedType().Footprint())
		return nil

	case *ast.VarDecl:
		size := n.DeclaredType.Footprint()
		if size > 0 {
			g.emit(Instr{Op: PUSH, N: size})
		}
		g.bindVar(n.Name, size)
		return nil

	case *ast.TypeDecl:
		// Pure compile-time aliasing; the checker has already resolved every
		// use to its underlying runtime type, so there is nothing to emit.
		return nil

	case *ast.ProcDecl:
		return g.allocateProcDecl(n)

	case *ast.FuncDecl:
		return g.allocateFuncDecl(n)
	}
	return diagnostics.CodegenError(d.Pos())
}

// bindVar binds name at the current scope's running offset and advances it
// by size words.
func (g *Generator) bindVar(name string, size int) {
	base := g.vars.ScopeLocalAux().(int)
	g.vars.Add(name, VarBinding{Offset: base, Level: g.level})
	g.vars.SetScopeLocalAux(base + size)
}

func (g *Generator) allocateProcDecl(n *ast.ProcDecl) error {
	bodyLabel := g.newLabel()
	newLevel := g.level + 1

	// Bound before the body is lowered so recursive calls resolve.
	g.callables.Add(n.Name, StaticCallable{Label: bodyLabel, Level: newLevel})

	afterLabel := g.newLabel()
	g.emit(Instr{Op: JUMP_LABEL, Label: afterLabel})
	g.emit(Instr{Op: LABEL, Label: bodyLabel})

	if err := g.withRoutineFrame(newLevel, n.Params, func() error {
		return g.generateStatementErr(n.Body)
	}); err != nil {
		return err
	}
	g.emit(Instr{Op: RETURN, N: 0, D: paramsFootprint(n.Params)})
	g.emit(Instr{Op: LABEL, Label: afterLabel})
	return nil
}

func (g *Generator) allocateFuncDecl(n *ast.FuncDecl) error {
	bodyLabel := g.newLabel()
	newLevel := g.level + 1

	g.callables.Add(n.Name, StaticCallable{Label: bodyLabel, Level: newLevel})

	afterLabel := g.newLabel()
	g.emit(Instr{Op: JUMP_LABEL, Label: afterLabel})
	g.emit(Instr{Op: LABEL, Label: bodyLabel})

	if err := g.withRoutineFrame(newLevel, n.Params, func() error {
		return g.generateExpression(n.Body)
	}); err != nil {
		return err
	}
	g.emit(Instr{Op: RETURN, N: n.ResolvedReturn.Footprint(), D: paramsFootprint(n.Params)})
	g.emit(Instr{Op: LABEL, Label: afterLabel})
	return nil
}

// withRoutineFrame enters a fresh activation record at newLevel, binds
// params at negative offsets laid out in reverse order (the last declared
// parameter closest to the frame, per spec section 8's boundary case), runs
// body, then restores the previous level and scopes.
func (g *Generator) withRoutineFrame(newLevel int, params []ast.Parameter, body func() error) error {
	prevLevel := g.level
	g.level = newLevel
	g.vars.EnterScope(LinkDataSize)
	g.callables.EnterScope(nil)
	defer func() {
		g.callables.ExitScope()
		g.vars.ExitScope()
		g.level = prevLevel
	}()

	offset := 0
	for i := len(params) - 1; i >= 0; i-- {
		offset -= paramFootprint(params[i])
		g.bindParam(params[i], offset, newLevel)
	}
	return body()
}

func (g *Generator) bindParam(p ast.Parameter, offset, level int) {
	switch pt := p.(type) {
	case *ast.ValueParam:
		g.vars.Add(pt.Name, VarBinding{Offset: offset, Level: level})
	case *ast.VarParam:
		g.vars.Add(pt.Name, VarBinding{Offset: offset, Level: level})
	case *ast.FuncParam:
		g.callables.Add(pt.Name, DynamicCallable{Offset: offset, Level: level})
	}
}

func paramFootprint(p ast.Parameter) int {
	switch pt := p.(type) {
	case *ast.ValueParam:
		return pt.ResolvedType.Footprint()
	case *ast.VarParam:
		return pt.ResolvedType.Footprint()
	case *ast.FuncParam:
		return 2
	}
	return 0
}

func paramsFootprint(params []ast.Parameter) int {
	total := 0
	for _, p := range params {
		total += paramFootprint(p)
	}
	return total
}
