// Package parser implements the hand-written recursive-descent parser of
// spec section 4.1: one-token lookahead, a non-recovering syntax-error
// policy, and the statement/expression/identifier grammars it specifies.
package parser

import (
	"github.com/triangle-lang/trianglec/internal/ast"
	"github.com/triangle-lang/trianglec/internal/diagnostics"
	"github.com/triangle-lang/trianglec/internal/token"
)

// TokenSource is the external C1 collaborator (spec section 6): anything
// that can yield the next Token.
type TokenSource interface {
	NextToken() token.Token
}

// Parser is a one-token-lookahead recursive-descent parser over a
// TokenSource.
type Parser struct {
	source    TokenSource
	nextToken token.Token
}

// syntaxError is the internal panic value used to unwind to ParseProgram
// on the first syntax error, matching the "non-recovering" failure mode
// of spec section 4.1/7.
type syntaxError struct {
	err error
}

// New creates a Parser and primes the lookahead token.
func New(source TokenSource) *Parser {
	p := &Parser{source: source}
	p.advance()
	return p
}

func (p *Parser) advance() {
	p.nextToken = p.source.NextToken()
}

// shift asserts nextToken.Kind == expected, returns its source position,
// and advances. Any mismatch raises a syntax error carrying the offending
// token and the expected kind.
func (p *Parser) shift(expected token.Kind) token.Position {
	if p.nextToken.Kind != expected {
		p.fail(expected.String())
	}
	pos := p.nextToken.Pos()
	p.advance()
	return pos
}

// shiftAny advances unconditionally and returns the position of the
// consumed token (used when the caller has already checked its kind).
func (p *Parser) shiftAny() token.Position {
	pos := p.nextToken.Pos()
	p.advance()
	return pos
}

func (p *Parser) fail(expected string) {
	panic(syntaxError{err: diagnostics.SyntaxError(p.nextToken, expected)})
}

func (p *Parser) is(k token.Kind) bool {
	return p.nextToken.Kind == k
}

func (p *Parser) isAny(kinds ...token.Kind) bool {
	for _, k := range kinds {
		if p.nextToken.Kind == k {
			return true
		}
	}
	return false
}

// ParseProgram parses the whole token stream as a single top-level
// statement and returns the resulting AST, or the first syntax error.
func ParseProgram(source TokenSource) (prog *ast.Program, err error) {
	p := New(source)
	defer func() {
		if r := recover(); r != nil {
			se, ok := r.(syntaxError)
			if !ok {
				panic(r)
			}
			err = se.err
		}
	}()
	root := p.parseStatement()
	p.shift(token.EOF)
	return ast.NewProgram(root), nil
}
