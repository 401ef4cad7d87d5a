package checker

import (
	"github.com/triangle-lang/trianglec/internal/symbols"
	"github.com/triangle-lang/trianglec/internal/types"
)

// opEntry holds the unary and/or binary signature of an operator name that
// can appear in both arities (spec section 6 lists `-` and `\` this way:
// `-` is both infix subtract and prefix negate; `\` is prefix-only boolean
// negation, modeled with Unary alone). Plain single-arity operators and
// named built-ins are stored directly as a types.Func instead.
type opEntry struct {
	Unary  *types.Func
	Binary *types.Func
}

func binaryFunc(l, r, ret types.Type) types.Func {
	return types.Func{Params: []types.Type{l, r}, Return: ret}
}

func unaryFunc(p, ret types.Type) types.Func {
	return types.Func{Params: []types.Type{p}, Return: ret}
}

// installStandardEnvironment seeds terms and types with spec section 6's
// standard environment: primitive types, arithmetic/relational/logical
// operators, I/O primitives, conversions, allocation, convenience functions
// and the user-defined `|` helper.
func installStandardEnvironment(terms, typeTable *symbols.Table) {
	typeTable.Add("Integer", types.Int)
	typeTable.Add("Char", types.Char)
	typeTable.Add("Boolean", types.Bool)

	arith := binaryFunc(types.Int, types.Int, types.Int)
	terms.Add("+", arith)
	terms.Add("*", arith)
	terms.Add("/", arith)
	terms.Add("//", arith)
	terms.Add("-", opEntry{
		Binary: &types.Func{Params: []types.Type{types.Int, types.Int}, Return: types.Int},
		Unary:  &types.Func{Params: []types.Type{types.Int}, Return: types.Int},
	})

	rel := binaryFunc(types.Int, types.Int, types.Bool)
	terms.Add("<", rel)
	terms.Add("<=", rel)
	terms.Add(">", rel)
	terms.Add(">=", rel)

	logic := binaryFunc(types.Bool, types.Bool, types.Bool)
	terms.Add("\\/", logic)
	terms.Add("/\\", logic)
	terms.Add("\\", opEntry{
		Unary: &types.Func{Params: []types.Type{types.Bool}, Return: types.Bool},
	})

	// `=` and `\=` are polymorphic on base types; BinaryOp special-cases
	// them rather than consulting a fixed signature (spec section 4.3).

	terms.Add("get", unaryFunc(types.RefOf{Inner: types.Char}, types.Void))
	terms.Add("put", unaryFunc(types.Char, types.Void))
	terms.Add("geteol", types.Func{Return: types.Void})
	terms.Add("puteol", types.Func{Return: types.Void})
	terms.Add("getint", unaryFunc(types.RefOf{Inner: types.Int}, types.Void))
	terms.Add("putint", unaryFunc(types.Int, types.Void))
	terms.Add("eol", types.Func{Return: types.Bool})
	terms.Add("eof", types.Func{Return: types.Bool})

	terms.Add("chr", unaryFunc(types.Int, types.Char))
	terms.Add("ord", unaryFunc(types.Char, types.Int))

	// Allocation primitives operate on an Integer handle; Triangle's type
	// system has no general pointer type to model a heap reference more
	// precisely (spec section 3 defines no Pointer type).
	terms.Add("new", unaryFunc(types.RefOf{Inner: types.Int}, types.Void))
	terms.Add("dispose", unaryFunc(types.RefOf{Inner: types.Int}, types.Void))

	terms.Add("id", unaryFunc(types.Int, types.Int))
	terms.Add("succ", unaryFunc(types.Int, types.Int))
	terms.Add("pred", unaryFunc(types.Int, types.Int))
	terms.Add("neg", unaryFunc(types.Int, types.Int))

	// The compiler-generated `|` helper (spec section 4.4's prologue
	// block) is exposed to source as a unary operator.
	terms.Add("|", unaryFunc(types.Int, types.Int))
}

// lookupOperator resolves name to the Func signature matching the given
// arity, handling both plain Func entries and arity-overloaded opEntry
// entries.
func lookupOperator(terms *symbols.Table, name string, arity int) (types.Func, bool) {
	v, ok := terms.Lookup(name)
	if !ok {
		return types.Func{}, false
	}
	switch sig := v.(type) {
	case types.Func:
		if len(sig.Params) == arity {
			return sig, true
		}
		return types.Func{}, false
	case opEntry:
		if arity == 1 && sig.Unary != nil {
			return *sig.Unary, true
		}
		if arity == 2 && sig.Binary != nil {
			return *sig.Binary, true
		}
		return types.Func{}, false
	}
	return types.Func{}, false
}
