// Package ast defines the Triangle abstract syntax tree produced by the
// parser, annotated by the checker, and consumed by the IR generator
// (spec section 3).
package ast

import (
	"github.com/triangle-lang/trianglec/internal/token"
	"github.com/triangle-lang/trianglec/internal/types"
)

// Node is implemented by every AST node that carries a source position.
type Node interface {
	Pos() token.Position
}

// Typeable is implemented by every expression-shaped node that carries a
// mutable resolved-type slot, filled in by the checker and read by codegen.
type Typeable interface {
	Node
	ResolvedType() types.Type
	SetResolvedType(types.Type)
}

// typedNode is embedded by every expression node to provide the mutable
// type slot required by Typeable, without requiring every constructor to
// wire it up by hand.
type typedNode struct {
	position token.Position
	resolved types.Type
}

func (t *typedNode) Pos() token.Position          { return t.position }
func (t *typedNode) ResolvedType() types.Type     { return t.resolved }
func (t *typedNode) SetResolvedType(ty types.Type) { t.resolved = ty }

// posNode is embedded by nodes that carry a position but no type slot
// (statements, declarations, parameters, type signatures).
type posNode struct {
	position token.Position
}

func (p *posNode) Pos() token.Position { return p.position }
