package checker

import (
	"github.com/triangle-lang/trianglec/internal/ast"
	"github.com/triangle-lang/trianglec/internal/diagnostics"
	"github.com/triangle-lang/trianglec/internal/types"
)

// inferRaw computes e's type without yet applying the function-result
// prohibition; infer wraps this and is what the rest of the checker calls.
func (c *Checker) inferRaw(e ast.Expression) (types.Type, bool) {
	switch n := e.(type) {
	case *ast.LitBool:
		return types.Bool, true
	case *ast.LitInt:
		return types.Int, true
	case *ast.LitChar:
		return types.Char, true
	case *ast.LitArray:
		return c.inferLitArray(n)
	case *ast.LitRecord:
		return c.inferLitRecord(n)
	case *ast.IdentifierExpr:
		return c.resolveIdentifier(n.Identifier)
	case *ast.UnaryOp:
		return c.inferUnaryOp(n)
	case *ast.BinaryOp:
		return c.inferBinaryOp(n)
	case *ast.IfExpression:
		return c.inferIfExpression(n)
	case *ast.LetExpression:
		return c.inferLetExpression(n)
	case *ast.FunCall:
		return c.inferFunCall(n)
	case *ast.SequenceExpression:
		c.checkStatement(n.Stmt)
		return c.infer(n.Expr)
	}
	return nil, false
}

// inferLitArray requires a nonempty list of elements sharing one base type
// (spec sections 4.3 and 8: empty array literals are a semantic error).
func (c *Checker) inferLitArray(n *ast.LitArray) (types.Type, bool) {
	if len(n.Elements) == 0 {
		c.errs.Add(diagnostics.GenericTypeError(n.Pos(), "array literal must have at least one element"))
		return nil, false
	}
	first, ok := c.infer(n.Elements[0])
	if !ok {
		return nil, false
	}
	elemType := types.BaseType(first)
	for _, el := range n.Elements[1:] {
		t, ok := c.infer(el)
		if !ok {
			return nil, false
		}
		if !types.BaseType(t).Equal(elemType) {
			c.errs.Add(diagnostics.TypeError(el.Pos(), t.String(), elemType.String()))
			return nil, false
		}
	}
	return types.Array{Size: len(n.Elements), Element: elemType}, true
}

// inferLitRecord requires a nonempty field list with no duplicate names
// (spec section 8: empty record literals are a semantic error); the built
// record relies on later canonicalization by types.NewRecord.
func (c *Checker) inferLitRecord(n *ast.LitRecord) (types.Type, bool) {
	if len(n.Fields) == 0 {
		c.errs.Add(diagnostics.GenericTypeError(n.Pos(), "record literal must have at least one field"))
		return nil, false
	}
	seen := make(map[string]bool, len(n.Fields))
	fields := make([]types.Field, 0, len(n.Fields))
	for _, fv := range n.Fields {
		if seen[fv.Name] {
			c.errs.Add(diagnostics.DuplicateRecordTypeField(n.Pos(), fv.Name))
			return nil, false
		}
		seen[fv.Name] = true
		t, ok := c.infer(fv.Value)
		if !ok {
			return nil, false
		}
		fields = append(fields, types.Field{Name: fv.Name, Type: types.BaseType(t)})
	}
	return types.NewRecord(fields), true
}

func (c *Checker) inferUnaryOp(n *ast.UnaryOp) (types.Type, bool) {
	operand, ok := c.infer(n.Operand)
	if !ok {
		return nil, false
	}
	sig, ok := lookupOperator(c.terms, n.Op, 1)
	if !ok {
		c.errs.Add(diagnostics.UndeclaredUse(n.Pos(), n.Op))
		return nil, false
	}
	if !types.BaseType(operand).Equal(sig.Params[0]) {
		c.errs.Add(diagnostics.TypeError(n.Operand.Pos(), operand.String(), sig.Params[0].String()))
		return nil, false
	}
	return sig.Return, true
}

// inferBinaryOp implements spec section 4.3's binary-op rule, including the
// `=`/`\=` polymorphism special case and the Open Question behavior flagged
// in spec section 9: the right operand's type is compared against the
// operator's FIRST parameter type, not its second. This mirrors a bug in
// the original source and is preserved deliberately, not fixed.
func (c *Checker) inferBinaryOp(n *ast.BinaryOp) (types.Type, bool) {
	left, leftOK := c.infer(n.Left)
	right, rightOK := c.infer(n.Right)
	if !leftOK || !rightOK {
		return nil, false
	}

	if n.Op == "=" || n.Op == "\\=" {
		if !types.BaseType(left).Equal(types.BaseType(right)) {
			c.errs.Add(diagnostics.TypeError(n.Right.Pos(), right.String(), left.String()))
			return nil, false
		}
		return types.Bool, true
	}

	sig, ok := lookupOperator(c.terms, n.Op, 2)
	if !ok {
		c.errs.Add(diagnostics.UndeclaredUse(n.Pos(), n.Op))
		return nil, false
	}
	if !types.BaseType(left).Equal(sig.Params[0]) {
		c.errs.Add(diagnostics.TypeError(n.Left.Pos(), left.String(), sig.Params[0].String()))
		return nil, false
	}
	if !types.BaseType(right).Equal(sig.Params[0]) {
		c.errs.Add(diagnostics.TypeError(n.Right.Pos(), right.String(), sig.Params[0].String()))
		return nil, false
	}
	return sig.Return, true
}

func (c *Checker) inferIfExpression(n *ast.IfExpression) (types.Type, bool) {
	c.checkCondition(n.Cond)
	thenType, thenOK := c.infer(n.Then)
	elseType, elseOK := c.infer(n.Else)
	if !thenOK || !elseOK {
		return nil, false
	}
	if !types.BaseType(thenType).Equal(types.BaseType(elseType)) {
		c.errs.Add(diagnostics.TypeError(n.Else.Pos(), elseType.String(), thenType.String()))
		return nil, false
	}
	return types.BaseType(thenType), true
}

func (c *Checker) inferLetExpression(n *ast.LetExpression) (types.Type, bool) {
	c.terms.EnterScope(nil)
	c.types.EnterScope(nil)
	defer func() {
		c.types.ExitScope()
		c.terms.ExitScope()
	}()
	c.bindDeclarations(n.Decls)
	return c.infer(n.Body)
}

func (c *Checker) inferFunCall(n *ast.FunCall) (types.Type, bool) {
	v, ok := c.terms.Lookup(n.Name)
	if !ok {
		c.errs.Add(diagnostics.UndeclaredUse(n.Pos(), n.Name))
		return nil, false
	}
	sig, ok := v.(types.Func)
	if !ok {
		c.errs.Add(diagnostics.GenericTypeError(n.Pos(), n.Name+" is not callable"))
		return nil, false
	}
	if len(sig.Params) != len(n.Args) {
		c.errs.Add(diagnostics.ArityMismatch(n.Pos(), n.Name, len(sig.Params), len(n.Args)))
		return nil, false
	}
	for i, arg := range n.Args {
		// The parser cannot tell a bare value name from a bare callable
		// name; a FuncArgument naming a non-callable term is rewritten into
		// an ordinary value argument.
		if fa, isFuncArg := arg.(*ast.FuncArgument); isFuncArg {
			if v, found := c.terms.Lookup(fa.Name); found {
				if t, isType := v.(types.Type); isType && !types.IsFunc(t) {
					arg = ast.NewExpressionArgument(ast.NewIdentifierExpr(ast.NewBasic(fa.Pos(), fa.Name)))
					n.Args[i] = arg
				}
			}
		}
		argBase, ok := c.inferArgument(arg)
		if !ok {
			return nil, false
		}
		paramBase := types.BaseType(sig.Params[i])
		if !argBase.Equal(paramBase) {
			c.errs.Add(diagnostics.TypeError(arg.Pos(), argBase.String(), paramBase.String()))
			return nil, false
		}
	}
	return sig.Return, true
}

func (c *Checker) inferArgument(arg ast.Argument) (types.Type, bool) {
	switch a := arg.(type) {
	case *ast.ExpressionArgument:
		t, ok := c.infer(a.Expr)
		if !ok {
			return nil, false
		}
		return types.BaseType(t), true
	case *ast.VarArgument:
		t, ok := c.resolveIdentifier(a.Identifier)
		if !ok {
			return nil, false
		}
		return types.BaseType(t), true
	case *ast.FuncArgument:
		v, ok := c.terms.Lookup(a.Name)
		if !ok {
			c.errs.Add(diagnostics.UndeclaredUse(a.Pos(), a.Name))
			return nil, false
		}
		ft, ok := v.(types.Func)
		if !ok {
			c.errs.Add(diagnostics.GenericTypeError(a.Pos(), a.Name+" is not callable"))
			return nil, false
		}
		return ft, true
	}
	return nil, false
}
