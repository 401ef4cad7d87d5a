package pipeline

import (
	"github.com/triangle-lang/trianglec/internal/backend"
	"github.com/triangle-lang/trianglec/internal/checker"
	"github.com/triangle-lang/trianglec/internal/codegen"
	"github.com/triangle-lang/trianglec/internal/objectfile"
	"github.com/triangle-lang/trianglec/internal/parser"
)

// ParseStage runs the syntax-error-fatal parser (spec section 4.1). It is a
// no-op if a prior stage already recorded an error.
type ParseStage struct{}

func (ParseStage) Process(ctx *Context) *Context {
	if ctx.Failed() || ctx.Tokens == nil {
		return ctx
	}
	prog, err := parser.ParseProgram(ctx.Tokens)
	if err != nil {
		ctx.addError(err)
		return ctx
	}
	ctx.AstRoot = prog
	return ctx
}

// CheckStage runs the semantic analyzer, collecting every error rather than
// stopping at the first one (spec section 4.3/7).
type CheckStage struct{}

func (CheckStage) Process(ctx *Context) *Context {
	if ctx.Failed() || ctx.AstRoot == nil {
		return ctx
	}
	for _, err := range checker.New().Check(ctx.AstRoot) {
		ctx.addError(err)
	}
	return ctx
}

// CodegenStage lowers the checked AST to a pseudo-instruction stream (spec
// section 4.4). It does not run if an earlier stage already failed, since
// codegen assumes a well-typed program.
type CodegenStage struct{}

func (CodegenStage) Process(ctx *Context) *Context {
	if ctx.Failed() || ctx.AstRoot == nil {
		return ctx
	}
	instrs, err := codegen.Generate(ctx.AstRoot, ctx.CodegenOptions)
	if err != nil {
		ctx.addError(err)
		return ctx
	}
	ctx.Instrs = instrs
	return ctx
}

// BackendStage resolves symbolic labels into code offsets (spec section
// 4.5).
type BackendStage struct{}

func (BackendStage) Process(ctx *Context) *Context {
	if ctx.Failed() || ctx.Instrs == nil {
		return ctx
	}
	resolved, err := backend.Resolve(ctx.Instrs)
	if err != nil {
		ctx.addError(err)
		return ctx
	}
	ctx.Resolved = resolved
	return ctx
}

// ObjectFileStage serializes the resolved instruction stream to the fixed
// binary record format (spec section 4.5/6).
type ObjectFileStage struct{}

func (ObjectFileStage) Process(ctx *Context) *Context {
	if ctx.Failed() || ctx.Resolved == nil {
		return ctx
	}
	data, err := objectfile.Encode(ctx.Resolved)
	if err != nil {
		ctx.addError(err)
		return ctx
	}
	ctx.Object = data
	return ctx
}

// Standard is the ordinary compile pipeline: parse, check, generate,
// backpatch, encode.
func Standard() *Pipeline {
	return New(ParseStage{}, CheckStage{}, CodegenStage{}, BackendStage{}, ObjectFileStage{})
}
