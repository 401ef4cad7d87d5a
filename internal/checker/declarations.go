package checker

import (
	"github.com/triangle-lang/trianglec/internal/ast"
	"github.com/triangle-lang/trianglec/internal/diagnostics"
	"github.com/triangle-lang/trianglec/internal/types"
)

// bindDeclarations binds decls into the Checker's current scope, in order,
// per spec section 4.3's declaration-binding rules. The caller is
// responsible for entering and exiting the enclosing scope. Every
// declaration is attempted even if an earlier one failed, to surface as
// many diagnostics as possible.
func (c *Checker) bindDeclarations(decls []ast.Declaration) {
	for _, d := range decls {
		c.bindDeclaration(d)
	}
}

func (c *Checker) bindDeclaration(d ast.Declaration) {
	switch decl := d.(type) {
	case *ast.ConstDecl:
		t, ok := c.infer(decl.Value)
		if !ok {
			return
		}
		c.terms.Add(decl.Name, types.BaseType(t))

	case *ast.VarDecl:
		t, ok := c.resolveTypeSig(decl.TypeSig)
		if !ok {
			return
		}
		decl.DeclaredType = t
		c.terms.Add(decl.Name, t)

	case *ast.TypeDecl:
		t, ok := c.resolveTypeSig(decl.TypeSig)
		if !ok {
			return
		}
		decl.ResolvedType = t
		c.types.Add(decl.Name, t)

	case *ast.FuncDecl:
		c.bindFuncDecl(decl)

	case *ast.ProcDecl:
		c.bindProcDecl(decl)
	}
}

func (c *Checker) bindFuncDecl(decl *ast.FuncDecl) {
	paramTypes, paramsOK := c.resolveParams(decl.Params)
	var retType types.Type = types.Void
	retOK := true
	if decl.ReturnSig != nil {
		retType, retOK = c.resolveTypeSig(decl.ReturnSig)
	}
	if !paramsOK || !retOK {
		return
	}
	decl.ResolvedReturn = retType

	funcType := types.Func{Params: paramTypes, Return: retType}
	// Bind before checking the body so the function can call itself
	// (spec section 4.3: "bind the function before typechecking its
	// body, to allow recursion").
	c.terms.Add(decl.Name, funcType)

	c.terms.EnterScope(nil)
	c.types.EnterScope(nil)
	c.bindParams(decl.Params)
	bodyType, bodyOK := c.infer(decl.Body)
	c.types.ExitScope()
	c.terms.ExitScope()

	if bodyOK && !types.BaseType(bodyType).Equal(retType) {
		c.errs.Add(diagnostics.TypeError(decl.Body.Pos(), bodyType.String(), retType.String()))
	}
}

func (c *Checker) bindProcDecl(decl *ast.ProcDecl) {
	paramTypes, paramsOK := c.resolveParams(decl.Params)
	if !paramsOK {
		return
	}
	procType := types.Func{Params: paramTypes, Return: types.Void}
	c.terms.Add(decl.Name, procType)

	c.terms.EnterScope(nil)
	c.types.EnterScope(nil)
	c.bindParams(decl.Params)
	c.checkStatement(decl.Body)
	c.types.ExitScope()
	c.terms.ExitScope()
}

// resolveParams resolves every parameter's declared type signature without
// binding it into any scope (used to build a Func signature before the
// function's own body scope exists).
func (c *Checker) resolveParams(params []ast.Parameter) ([]types.Type, bool) {
	result := make([]types.Type, 0, len(params))
	ok := true
	for _, p := range params {
		t, paramOK := c.resolveParam(p)
		if !paramOK {
			ok = false
			continue
		}
		result = append(result, t)
	}
	return result, ok
}

// bindParams adds each already-resolved parameter to the terms table of the
// (already entered) body scope.
func (c *Checker) bindParams(params []ast.Parameter) {
	for _, p := range params {
		switch pt := p.(type) {
		case *ast.ValueParam:
			c.terms.Add(pt.Name, pt.ResolvedType)
		case *ast.VarParam:
			c.terms.Add(pt.Name, pt.ResolvedType)
		case *ast.FuncParam:
			c.terms.Add(pt.Name, pt.ResolvedType)
		}
	}
}

// resolveParam resolves one parameter's type signature into its declared
// runtime type: value parameters keep T, var parameters become RefOf(T),
// func/proc parameters become a Func signature built from their own nested
// parameter list (spec section 4.3).
func (c *Checker) resolveParam(p ast.Parameter) (types.Type, bool) {
	switch pt := p.(type) {
	case *ast.ValueParam:
		t, ok := c.resolveTypeSig(pt.TypeSig)
		if !ok {
			return nil, false
		}
		pt.ResolvedType = t
		return t, true

	case *ast.VarParam:
		t, ok := c.resolveTypeSig(pt.TypeSig)
		if !ok {
			return nil, false
		}
		ref := types.RefOf{Inner: t}
		pt.ResolvedType = ref
		return ref, true

	case *ast.FuncParam:
		paramTypes, ok := c.resolveParams(pt.Params)
		if !ok {
			return nil, false
		}
		var ret types.Type = types.Void
		if pt.ReturnSig != nil {
			r, retOK := c.resolveTypeSig(pt.ReturnSig)
			if !retOK {
				return nil, false
			}
			ret = r
		}
		ft := types.Func{Params: paramTypes, Return: ret}
		pt.ResolvedType = ft
		return ft, true
	}
	return nil, false
}

// resolveTypeSig resolves an unresolved TypeSig to its canonical Type (spec
// section 4.3's "Resolution of type signatures").
func (c *Checker) resolveTypeSig(sig ast.TypeSig) (types.Type, bool) {
	switch s := sig.(type) {
	case *ast.BasicTypeSig:
		v, ok := c.types.Lookup(s.Name)
		if !ok {
			c.errs.Add(diagnostics.UndeclaredUse(s.Pos(), s.Name))
			return nil, false
		}
		return v.(types.Type), true

	case *ast.ArrayTypeSig:
		elem, ok := c.resolveTypeSig(s.Element)
		if !ok {
			return nil, false
		}
		return types.Array{Size: s.Size, Element: elem}, true

	case *ast.RecordTypeSig:
		seen := make(map[string]bool, len(s.Fields))
		fields := make([]types.Field, 0, len(s.Fields))
		for _, f := range s.Fields {
			if seen[f.Name] {
				c.errs.Add(diagnostics.DuplicateRecordTypeField(f.Pos(), f.Name))
				return nil, false
			}
			seen[f.Name] = true
			ft, ok := c.resolveTypeSig(f.Type)
			if !ok {
				return nil, false
			}
			fields = append(fields, types.Field{Name: f.Name, Type: ft})
		}
		return types.NewRecord(fields), true

	case *ast.VoidTypeSig:
		return types.Void, true
	}
	return nil, false
}
