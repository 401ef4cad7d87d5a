package ast

import (
	"github.com/triangle-lang/trianglec/internal/token"
	"github.com/triangle-lang/trianglec/internal/types"
)

// Declaration is the sum Const | Var | Type | Proc | Func (spec section 3).
type Declaration interface {
	Node
	declarationNode()
}

type ConstDecl struct {
	posNode
	Name  string
	Value Expression
}

// VarDecl's DeclaredType is filled in by the checker from TypeSig.
type VarDecl struct {
	posNode
	Name         string
	TypeSig      TypeSig
	DeclaredType types.Type
}

type TypeDecl struct {
	posNode
	Name         string
	TypeSig      TypeSig
	ResolvedType types.Type
}

type ProcDecl struct {
	posNode
	Name   string
	Params []Parameter
	Body   Statement
}

type FuncDecl struct {
	posNode
	Name          string
	Params        []Parameter
	ReturnSig     TypeSig
	ResolvedReturn types.Type
	Body          Expression
}

func (*ConstDecl) declarationNode() {}
func (*VarDecl) declarationNode()   {}
func (*TypeDecl) declarationNode()  {}
func (*ProcDecl) declarationNode()  {}
func (*FuncDecl) declarationNode()  {}

func NewConstDecl(pos token.Position, name string, value Expression) *ConstDecl {
	return &ConstDecl{posNode{pos}, name, value}
}

func NewVarDecl(pos token.Position, name string, sig TypeSig) *VarDecl {
	return &VarDecl{posNode: posNode{pos}, Name: name, TypeSig: sig}
}

func NewTypeDecl(pos token.Position, name string, sig TypeSig) *TypeDecl {
	return &TypeDecl{posNode: posNode{pos}, Name: name, TypeSig: sig}
}

func NewProcDecl(pos token.Position, name string, params []Parameter, body Statement) *ProcDecl {
	return &ProcDecl{posNode: posNode{pos}, Name: name, Params: params, Body: body}
}

func NewFuncDecl(pos token.Position, name string, params []Parameter, returnSig TypeSig, body Expression) *FuncDecl {
	return &FuncDecl{posNode: posNode{pos}, Name: name, Params: params, ReturnSig: returnSig, Body: body}
}

// Parameter is the sum Value | Var | Func (the last also covers proc
// params, whose declared return is types.Void).
type Parameter interface {
	Node
	ParamName() string
	parameterNode()
}

type ValueParam struct {
	posNode
	Name         string
	TypeSig      TypeSig
	ResolvedType types.Type
}

type VarParam struct {
	posNode
	Name         string
	TypeSig      TypeSig
	ResolvedType types.Type
}

// FuncParam covers both `func name(Params) : T` and `proc name(Params)`
// (the latter with ReturnSig == nil, resolving to types.Void).
type FuncParam struct {
	posNode
	Name           string
	Params         []Parameter
	ReturnSig      TypeSig
	ResolvedType   types.Type
}

func (p *ValueParam) ParamName() string { return p.Name }
func (p *VarParam) ParamName() string   { return p.Name }
func (p *FuncParam) ParamName() string  { return p.Name }

func (*ValueParam) parameterNode() {}
func (*VarParam) parameterNode()   {}
func (*FuncParam) parameterNode()  {}

func NewValueParam(pos token.Position, name string, sig TypeSig) *ValueParam {
	return &ValueParam{posNode: posNode{pos}, Name: name, TypeSig: sig}
}

func NewVarParam(pos token.Position, name string, sig TypeSig) *VarParam {
	return &VarParam{posNode: posNode{pos}, Name: name, TypeSig: sig}
}

func NewFuncParam(pos token.Position, name string, params []Parameter, returnSig TypeSig) *FuncParam {
	return &FuncParam{posNode: posNode{pos}, Name: name, Params: params, ReturnSig: returnSig}
}

// Argument is the sum Expression | VarArgument | FuncArgument passed at a
// call site (spec section 3).
type Argument interface {
	Node
	argumentNode()
}

// ExpressionArgument wraps a plain value argument.
type ExpressionArgument struct {
	Expr Expression
}

// VarArgument is `var identifier`, passing an address.
type VarArgument struct {
	posNode
	Identifier Identifier
}

// FuncArgument is a bare callable name passed as a func/proc parameter.
type FuncArgument struct {
	posNode
	Name string
}

func (a *ExpressionArgument) Pos() token.Position { return a.Expr.Pos() }

func (*ExpressionArgument) argumentNode() {}
func (*VarArgument) argumentNode()        {}
func (*FuncArgument) argumentNode()        {}

func NewExpressionArgument(expr Expression) *ExpressionArgument {
	return &ExpressionArgument{Expr: expr}
}

func NewVarArgument(pos token.Position, id Identifier) *VarArgument {
	return &VarArgument{posNode{pos}, id}
}

func NewFuncArgument(pos token.Position, name string) *FuncArgument {
	return &FuncArgument{posNode{pos}, name}
}
