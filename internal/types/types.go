// Package types implements the resolved Type sum of spec section 3: the
// primitive scalars, Array, Record (with canonicalization), Func and RefOf.
package types

import (
	"sort"
	"strconv"
)

// Type is the sum of resolved type variants. Every implementation supplies
// its machine word footprint and a structural equality check.
type Type interface {
	// Footprint is the type's size in TAM machine words.
	Footprint() int
	// Equal reports structural equality against another Type.
	Equal(Type) bool
	String() string
}

// Primitive scalars.
type (
	IntType  struct{}
	CharType struct{}
	BoolType struct{}
	VoidType struct{}
)

func (IntType) Footprint() int  { return 1 }
func (CharType) Footprint() int { return 1 }
func (BoolType) Footprint() int { return 1 }
func (VoidType) Footprint() int { return 0 }

func (IntType) String() string  { return "Integer" }
func (CharType) String() string { return "Char" }
func (BoolType) String() string { return "Boolean" }
func (VoidType) String() string { return "Void" }

func (IntType) Equal(o Type) bool  { _, ok := o.(IntType); return ok }
func (CharType) Equal(o Type) bool { _, ok := o.(CharType); return ok }
func (BoolType) Equal(o Type) bool { _, ok := o.(BoolType); return ok }
func (VoidType) Equal(o Type) bool { _, ok := o.(VoidType); return ok }

// Int, Char, Bool and Void are the canonical singleton instances; use them
// rather than constructing zero-value structs so equality checks read
// uniformly across the checker and codegen.
var (
	Int  = IntType{}
	Char = CharType{}
	Bool = BoolType{}
	Void = VoidType{}
)

// Array is a fixed-size homogeneous array type.
type Array struct {
	Size    int
	Element Type
}

func (a Array) Footprint() int { return a.Size * a.Element.Footprint() }
func (a Array) String() string {
	return "array " + strconv.Itoa(a.Size) + " of " + a.Element.String()
}
func (a Array) Equal(o Type) bool {
	oa, ok := o.(Array)
	return ok && a.Size == oa.Size && a.Element.Equal(oa.Element)
}

// Field is one (name, Type) pair of a Record.
type Field struct {
	Name string
	Type Type
}

// Record is a canonical-form record type: fields sorted ascending by name.
// Two Records are equal iff their sorted field lists are equal (spec §3).
type Record struct {
	Fields []Field
}

// NewRecord builds a Record in canonical form from an arbitrary field order.
// The caller must have already rejected duplicate names.
func NewRecord(fields []Field) Record {
	sorted := make([]Field, len(fields))
	copy(sorted, fields)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })
	return Record{Fields: sorted}
}

func (r Record) Footprint() int {
	total := 0
	for _, f := range r.Fields {
		total += f.Type.Footprint()
	}
	return total
}

func (r Record) String() string {
	s := "record "
	for i, f := range r.Fields {
		if i > 0 {
			s += ", "
		}
		s += f.Name + ": " + f.Type.String()
	}
	return s + " end"
}

func (r Record) Equal(o Type) bool {
	or, ok := o.(Record)
	if !ok || len(r.Fields) != len(or.Fields) {
		return false
	}
	// Both sides are already canonical (sorted), so a positional
	// comparison is sufficient — this is the canonicalization invariant.
	for i := range r.Fields {
		if r.Fields[i].Name != or.Fields[i].Name || !r.Fields[i].Type.Equal(or.Fields[i].Type) {
			return false
		}
	}
	return true
}

// FieldOffset returns the byte (word) offset of the named field within the
// record, summing the footprints of all preceding fields in canonical
// order, and whether the field exists.
func (r Record) FieldOffset(name string) (int, bool) {
	offset := 0
	for _, f := range r.Fields {
		if f.Name == name {
			return offset, true
		}
		offset += f.Type.Footprint()
	}
	return 0, false
}

// FieldType returns the named field's Type.
func (r Record) FieldType(name string) (Type, bool) {
	for _, f := range r.Fields {
		if f.Name == name {
			return f.Type, true
		}
	}
	return nil, false
}

// Func is a callable signature. It is never stored on the stack as a value
// — only usable in the term scope (spec §3's value-returned-as-function
// prohibition enforces this in the checker).
type Func struct {
	Params []Type
	Return Type
}

func (f Func) Footprint() int { return 0 }
func (f Func) String() string {
	s := "func("
	for i, p := range f.Params {
		if i > 0 {
			s += ", "
		}
		s += p.String()
	}
	return s + "): " + f.Return.String()
}

func (f Func) Equal(o Type) bool {
	of, ok := o.(Func)
	if !ok || len(f.Params) != len(of.Params) || !f.Return.Equal(of.Return) {
		return false
	}
	for i := range f.Params {
		if !f.Params[i].Equal(of.Params[i]) {
			return false
		}
	}
	return true
}

// RefOf is a reference (one address word) to a value of Inner. Arises from
// var parameters.
type RefOf struct {
	Inner Type
}

func (RefOf) Footprint() int { return 1 }
func (r RefOf) String() string { return "ref " + r.Inner.String() }
func (r RefOf) Equal(o Type) bool {
	or, ok := o.(RefOf)
	return ok && r.Inner.Equal(or.Inner)
}

// BaseType strips one reference layer, returning t unchanged if it is not
// a RefOf.
func BaseType(t Type) Type {
	if r, ok := t.(RefOf); ok {
		return r.Inner
	}
	return t
}

// IsRef reports whether t is a RefOf.
func IsRef(t Type) bool {
	_, ok := t.(RefOf)
	return ok
}

// IsFunc reports whether t's base type is Func — used to enforce the
// value-returned-as-function prohibition.
func IsFunc(t Type) bool {
	_, ok := BaseType(t).(Func)
	return ok
}
