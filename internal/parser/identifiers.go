package parser

import (
	"github.com/triangle-lang/trianglec/internal/ast"
	"github.com/triangle-lang/trianglec/internal/token"
)

// parseIdentifier parses the identifier grammar
// `name ('.' name | '[' E ']')*`, building a left-associative chain of
// RecordAccess/ArraySubscript whose leaves are Basic (spec section 4.1).
func (p *Parser) parseIdentifier() ast.Identifier {
	pos := p.nextToken.Pos()
	name := p.nextToken.Text
	p.shift(token.Identifier)
	var id ast.Identifier = ast.NewBasic(pos, name)

	for {
		switch {
		case p.is(token.Dot):
			p.shiftAny()
			fieldPos := p.nextToken.Pos()
			field := p.nextToken.Text
			p.shift(token.Identifier)
			id = ast.NewRecordAccess(fieldPos, id, field)
		case p.is(token.LBracket):
			p.shiftAny()
			sub := p.parseExpression()
			p.shift(token.RBracket)
			id = ast.NewArraySubscript(pos, id, sub)
		default:
			return id
		}
	}
}
