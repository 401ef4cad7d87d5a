package ast

import "github.com/triangle-lang/trianglec/internal/token"

// Identifier is the sum Basic | RecordAccess | ArraySubscript built by the
// identifier grammar `name ('.' name | '[' E ']')*` (spec section 4.1).
// It is itself Typeable since it doubles as an expression.
type Identifier interface {
	Typeable
	// Root returns the innermost Basic identifier of the chain.
	Root() *Basic
	identifierNode()
}

// Basic is a bare name reference; the leaf of every Identifier chain.
type Basic struct {
	typedNode
	Name string
}

func (b *Basic) Root() *Basic     { return b }
func (b *Basic) identifierNode()  {}

// RecordAccess is `record . field`.
type RecordAccess struct {
	typedNode
	Record Identifier
	Field  string
}

func (r *RecordAccess) Root() *Basic    { return r.Record.Root() }
func (r *RecordAccess) identifierNode() {}

// ArraySubscript is `array [ subscript ]`.
type ArraySubscript struct {
	typedNode
	Array      Identifier
	Subscript  Expression
}

func (a *ArraySubscript) Root() *Basic    { return a.Array.Root() }
func (a *ArraySubscript) identifierNode() {}

func NewBasic(pos token.Position, name string) *Basic {
	return &Basic{typedNode: typedNode{position: pos}, Name: name}
}

func NewRecordAccess(pos token.Position, record Identifier, field string) *RecordAccess {
	return &RecordAccess{typedNode: typedNode{position: pos}, Record: record, Field: field}
}

func NewArraySubscript(pos token.Position, array Identifier, subscript Expression) *ArraySubscript {
	return &ArraySubscript{typedNode: typedNode{position: pos}, Array: array, Subscript: subscript}
}
