package codegen

// VarBinding is a variable's codegen payload in the variables symbol table:
// its stack offset within its frame and the static nesting level at which it
// was declared (spec section 4.4: "name -> stack-offset within its scope").
type VarBinding struct {
	Offset int
	Level  int
}

// Callable is the sum StaticCallable | DynamicCallable | PrimitiveCallable,
// the callables symbol table's payload (spec section 4.4).
type Callable interface {
	callableNode()
}

// StaticCallable is a known code address: a user-defined proc/func.
type StaticCallable struct {
	Label Label
	Level int
}

// DynamicCallable is a two-word closure {staticLink, codeAddr} sitting at
// Offset within its frame at Level — used for func/proc parameters.
type DynamicCallable struct {
	Offset int
	Level  int
}

// PrimitiveCallable is a built-in routine addressed via the primitive-base
// register.
type PrimitiveCallable struct {
	Primitive Primitive
}

func (StaticCallable) callableNode()    {}
func (DynamicCallable) callableNode()   {}
func (PrimitiveCallable) callableNode() {}

// overload wraps an operator name that is bound to a different Callable
// depending on call-site arity: "-" (binary subtract / unary negate) and
// "\" (unary logical-not only, but stored uniformly with this wrapper for
// lookup symmetry).
type overload struct {
	Unary, Binary Callable
}
