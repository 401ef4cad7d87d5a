package codegen

import (
	"github.com/triangle-lang/trianglec/internal/ast"
	"github.com/triangle-lang/trianglec/internal/diagnostics"
	"github.com/triangle-lang/trianglec/internal/symbols"
	"github.com/triangle-lang/trianglec/internal/token"
)

// Options configures a Generate run, threaded in from a project's
// triangle.yaml (internal/config) so the knobs it documents are actually
// live rather than merely parsed.
type Options struct {
	// MaxDisplayDepth caps the static nesting depth codegen can address.
	// Zero (or anything above MaxDisplayDepth) falls back to
	// MaxDisplayDepth, the architectural ceiling.
	MaxDisplayDepth int
	// EmitHelperBlock controls whether compiler-generated helper routines
	// (currently just `|`) are installed and emitted. false restricts a
	// program to only what it wrote itself.
	EmitHelperBlock bool
}

// DefaultOptions is the options value used when a caller has no
// triangle.yaml override: the full display depth, helper block included.
func DefaultOptions() Options {
	return Options{MaxDisplayDepth: MaxDisplayDepth, EmitHelperBlock: true}
}

func (o Options) effectiveMaxDepth() int {
	if o.MaxDisplayDepth <= 0 || o.MaxDisplayDepth > MaxDisplayDepth {
		return MaxDisplayDepth
	}
	return o.MaxDisplayDepth
}

// Generator lowers a type-checked *ast.Program into a flat pseudo-instruction
// stream (spec section 4.4). It assumes the program has already passed the
// checker with zero errors; no type errors are re-validated here.
type Generator struct {
	vars      *symbols.Table // payload: VarBinding
	callables *symbols.Table // payload: Callable (or overload)
	labels    labelAllocator
	level     int // current static nesting level; 0 at the top level
	instrs    []Instr
	maxDepth  int // effective display-depth ceiling (Options.effectiveMaxDepth)
}

func newGenerator(opts Options) *Generator {
	g := &Generator{vars: symbols.New(), callables: symbols.New(), maxDepth: opts.effectiveMaxDepth()}
	// The top-level program is not wrapped in a CALL/RETURN frame (spec
	// section 4.4), so its scope starts at offset 0, not LinkDataSize.
	g.vars.SetScopeLocalAux(0)
	installOperators(g.callables)
	return g
}

// Generate lowers prog to its final pseudo-instruction stream: user code,
// HALT, then the compiler-generated helper block (spec section 4.4's
// program prologue/epilogue), honoring opts. It returns a CodegenError
// (fatal, per spec section 7) if any identifier's static nesting depth
// exceeds the effective display depth.
func Generate(prog *ast.Program, opts Options) ([]Instr, error) {
	g := newGenerator(opts)

	var helpers []helper
	if opts.EmitHelperBlock {
		helpers = g.installHelpers()
	}

	if err := g.generateStatementErr(prog.Root); err != nil {
		return nil, err
	}
	g.emit(Instr{Op: HALT})

	for _, h := range helpers {
		if err := h.build(g); err != nil {
			return nil, err
		}
	}
	return g.instrs, nil
}

func (g *Generator) emit(i Instr) { g.instrs = append(g.instrs, i) }

func (g *Generator) newLabel() Label { return g.labels.new() }

// depthOf reports the display register for an entity declared at declLevel,
// or a CodegenError (spec section 7, fatal) if the resulting depth exceeds
// g's effective display depth.
func (g *Generator) depthOf(pos token.Position, declLevel int) (Register, error) {
	depth := g.level - declLevel
	reg, ok := displayRegister(depth, g.maxDepth)
	if !ok {
		return 0, diagnostics.CodegenError(pos)
	}
	return reg, nil
}
