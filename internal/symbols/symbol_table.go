// Package symbols implements the scoped lookup table shared by the checker
// and the IR generator (spec section 4.2): a stack of scope frames, each
// frame holding name-to-value bindings plus one scope-local auxiliary slot,
// with depth-indexed lookup so a caller can tell how many enclosing scopes
// were crossed to find a name.
package symbols

// frame is one lexical scope: its own bindings plus a single auxiliary
// value a caller can stash against the scope itself (the checker leaves it
// nil; the IR generator uses it for the scope's running stack offset).
type frame struct {
	entries map[string]any
	aux     any
}

func newFrame(aux any) *frame {
	return &frame{entries: make(map[string]any), aux: aux}
}

// Table is a stack of frames, frame 0 being the global scope.
type Table struct {
	frames []*frame
}

// New creates a Table with a single global scope already open.
func New() *Table {
	return &Table{frames: []*frame{newFrame(nil)}}
}

func (t *Table) top() *frame {
	return t.frames[len(t.frames)-1]
}

// EnterScope pushes a fresh, empty scope with the given initial auxiliary
// value (spec section 4.2's enterScope(initialAux)).
func (t *Table) EnterScope(initialAux any) {
	t.frames = append(t.frames, newFrame(initialAux))
}

// ExitScope pops the innermost scope. It panics if called with only the
// global scope remaining, which would be a bug in the caller.
func (t *Table) ExitScope() {
	if len(t.frames) == 1 {
		panic("symbols: cannot exit the global scope")
	}
	t.frames = t.frames[:len(t.frames)-1]
}

// Add binds name to value in the innermost scope, shadowing any binding of
// the same name in an enclosing scope.
func (t *Table) Add(name string, value any) {
	t.top().entries[name] = value
}

// Lookup searches from the innermost scope outward and reports whether name
// is bound anywhere in the table.
func (t *Table) Lookup(name string) (any, bool) {
	v, _, ok := t.LookupWithDepth(name)
	return v, ok
}

// LookupWithDepth is Lookup plus the number of enclosing scopes crossed to
// find the binding: 0 means the innermost scope, 1 means one scope out, and
// so on. depth is meaningless when ok is false.
func (t *Table) LookupWithDepth(name string) (value any, depth int, ok bool) {
	for i := len(t.frames) - 1; i >= 0; i-- {
		if v, found := t.frames[i].entries[name]; found {
			return v, len(t.frames) - 1 - i, true
		}
	}
	return nil, 0, false
}

// ScopeLocalAux returns the auxiliary value attached to the innermost scope.
func (t *Table) ScopeLocalAux() any {
	return t.top().aux
}

// SetScopeLocalAux attaches an auxiliary value to the innermost scope.
func (t *Table) SetScopeLocalAux(v any) {
	t.top().aux = v
}

// Depth returns the number of scopes currently open, 1 for the global scope
// alone.
func (t *Table) Depth() int {
	return len(t.frames)
}
