package ast

import "github.com/triangle-lang/trianglec/internal/token"

// TypeSig is the unresolved type signature the parser produces verbatim
// from source (spec section 3): Basic, Array, Record or Void.
type TypeSig interface {
	Node
}

// BasicTypeSig names a type by identifier (e.g. "Integer", or a
// user-declared record/array alias).
type BasicTypeSig struct {
	posNode
	Name string
}

// ArrayTypeSig is `array INT of T`.
type ArrayTypeSig struct {
	posNode
	Size    int
	Element TypeSig
}

// FieldTypeSig is one `name : T` entry of a record type signature.
type FieldTypeSig struct {
	posNode
	Name string
	Type TypeSig
}

// RecordTypeSig is `record FieldType (, FieldType)* end`.
type RecordTypeSig struct {
	posNode
	Fields []FieldTypeSig
}

// VoidTypeSig denotes the absence of a return type (procs).
type VoidTypeSig struct {
	posNode
}

func NewBasicTypeSig(pos token.Position, name string) *BasicTypeSig {
	return &BasicTypeSig{posNode: posNode{pos}, Name: name}
}

func NewArrayTypeSig(pos token.Position, size int, element TypeSig) *ArrayTypeSig {
	return &ArrayTypeSig{posNode: posNode{pos}, Size: size, Element: element}
}

func NewFieldTypeSig(pos token.Position, name string, typ TypeSig) FieldTypeSig {
	return FieldTypeSig{posNode: posNode{pos}, Name: name, Type: typ}
}

func NewRecordTypeSig(pos token.Position, fields []FieldTypeSig) *RecordTypeSig {
	return &RecordTypeSig{posNode: posNode{pos}, Fields: fields}
}

func NewVoidTypeSig(pos token.Position) *VoidTypeSig {
	return &VoidTypeSig{posNode: posNode{pos}}
}
