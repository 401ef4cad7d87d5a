// Package pipeline wires the compiler's stages — parse, check, generate,
// backpatch, encode — into a single ordered run over a shared context,
// adapted from the teacher's internal/pipeline package.
package pipeline

import (
	"github.com/google/uuid"

	"github.com/triangle-lang/trianglec/internal/ast"
	"github.com/triangle-lang/trianglec/internal/backend"
	"github.com/triangle-lang/trianglec/internal/codegen"
	"github.com/triangle-lang/trianglec/internal/parser"
)

// Context holds all the data passed between pipeline stages.
type Context struct {
	// SessionID identifies one compilation run, useful for correlating log
	// lines and cache entries across stages.
	SessionID uuid.UUID

	SourceCode string
	FilePath   string

	// Tokens is consumed once, by the Parse stage.
	Tokens parser.TokenSource

	AstRoot *ast.Program

	Errors []error

	// CodegenOptions configures the Codegen stage; a caller with a
	// triangle.yaml project config overrides this after NewContext to carry
	// its max_nesting_depth/emit_helper_block settings through.
	CodegenOptions codegen.Options

	Instrs   []codegen.Instr
	Resolved []backend.Resolved
	Object   []byte
}

// NewContext creates a Context over source, stamping a fresh session id and
// defaulting CodegenOptions to codegen.DefaultOptions().
func NewContext(filePath, source string, tokens parser.TokenSource) *Context {
	return &Context{
		SessionID:      uuid.New(),
		SourceCode:     source,
		FilePath:       filePath,
		Tokens:         tokens,
		CodegenOptions: codegen.DefaultOptions(),
	}
}

// Failed reports whether any stage recorded an error.
func (c *Context) Failed() bool { return len(c.Errors) > 0 }

// addError appends one diagnostic, matching the teacher's accumulate-and-
// continue recovery policy across stages.
func (c *Context) addError(err error) {
	if err != nil {
		c.Errors = append(c.Errors, err)
	}
}
