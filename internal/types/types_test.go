package types

import "testing"

func TestRecordCanonicalizationSortsFields(t *testing.T) {
	r := NewRecord([]Field{
		{Name: "b", Type: Int},
		{Name: "a", Type: Char},
	})
	if r.Fields[0].Name != "a" || r.Fields[1].Name != "b" {
		t.Fatalf("expected canonical order a,b; got %v", r.Fields)
	}
}

func TestCanonicalizingAlreadyCanonicalIsIdentity(t *testing.T) {
	r := NewRecord([]Field{{Name: "a", Type: Char}, {Name: "b", Type: Int}})
	again := NewRecord(r.Fields)
	if !r.Equal(again) {
		t.Fatalf("re-canonicalizing changed the record: %v vs %v", r, again)
	}
}

func TestRecordFootprintSumsFields(t *testing.T) {
	r := NewRecord([]Field{
		{Name: "a", Type: Array{Size: 3, Element: Int}},
		{Name: "b", Type: Char},
	})
	if got, want := r.Footprint(), 4; got != want {
		t.Fatalf("footprint = %d, want %d", got, want)
	}
}

func TestFieldOffsetSumsPrecedingFootprints(t *testing.T) {
	r := NewRecord([]Field{{Name: "a", Type: Char}, {Name: "b", Type: Int}})
	off, ok := r.FieldOffset("b")
	if !ok || off != 1 {
		t.Fatalf("offset of b = (%d,%v), want (1,true)", off, ok)
	}
}

func TestBaseTypeStripsOneReference(t *testing.T) {
	ref := RefOf{Inner: Int}
	if got := BaseType(ref); !got.Equal(Int) {
		t.Fatalf("BaseType(RefOf(Int)) = %v, want Int", got)
	}
	if got := BaseType(Int); !got.Equal(Int) {
		t.Fatalf("BaseType(Int) = %v, want Int", got)
	}
}

func TestRecordEqualityIgnoresInputOrder(t *testing.T) {
	r1 := NewRecord([]Field{{Name: "x", Type: Int}, {Name: "y", Type: Bool}})
	r2 := NewRecord([]Field{{Name: "y", Type: Bool}, {Name: "x", Type: Int}})
	if !r1.Equal(r2) {
		t.Fatalf("records with same fields in different declared order should be equal")
	}
}

func TestIsFuncDetectsFunctionBaseType(t *testing.T) {
	f := Func{Params: []Type{Int}, Return: Bool}
	if !IsFunc(f) {
		t.Fatalf("IsFunc(Func) = false, want true")
	}
	if IsFunc(Int) {
		t.Fatalf("IsFunc(Int) = true, want false")
	}
}
