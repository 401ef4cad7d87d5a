package parser

import (
	"strconv"

	"github.com/triangle-lang/trianglec/internal/ast"
	"github.com/triangle-lang/trianglec/internal/token"
)

// parseDeclarationSequence parses semicolon-separated declarations
// following DECL's first set (spec section 4.1).
func (p *Parser) parseDeclarationSequence() []ast.Declaration {
	var decls []ast.Declaration
	decls = append(decls, p.parseDeclaration())
	for p.is(token.Semicolon) {
		p.shiftAny()
		if !isDeclStart(p.nextToken.Kind) {
			break
		}
		decls = append(decls, p.parseDeclaration())
	}
	return decls
}

func (p *Parser) parseDeclaration() ast.Declaration {
	switch {
	case p.is(token.Const):
		return p.parseConstDecl()
	case p.is(token.Var):
		return p.parseVarDecl()
	case p.is(token.Type):
		return p.parseTypeDecl()
	case p.is(token.Proc):
		return p.parseProcDecl()
	case p.is(token.Func):
		return p.parseFuncDecl()
	default:
		p.fail("declaration")
		return nil
	}
}

func (p *Parser) parseConstDecl() ast.Declaration {
	pos := p.shift(token.Const)
	name := p.nextToken.Text
	p.shift(token.Identifier)
	p.shift(token.Is)
	value := p.parseExpression()
	return ast.NewConstDecl(pos, name, value)
}

func (p *Parser) parseVarDecl() ast.Declaration {
	pos := p.shift(token.Var)
	name := p.nextToken.Text
	p.shift(token.Identifier)
	p.shift(token.Colon)
	sig := p.parseTypeSig()
	return ast.NewVarDecl(pos, name, sig)
}

func (p *Parser) parseTypeDecl() ast.Declaration {
	pos := p.shift(token.Type)
	name := p.nextToken.Text
	p.shift(token.Identifier)
	p.shift(token.Is)
	sig := p.parseTypeSig()
	return ast.NewTypeDecl(pos, name, sig)
}

func (p *Parser) parseProcDecl() ast.Declaration {
	pos := p.shift(token.Proc)
	name := p.nextToken.Text
	p.shift(token.Identifier)
	params := p.parseParameterList()
	p.shift(token.Is)
	body := p.parseStatement()
	return ast.NewProcDecl(pos, name, params, body)
}

func (p *Parser) parseFuncDecl() ast.Declaration {
	pos := p.shift(token.Func)
	name := p.nextToken.Text
	p.shift(token.Identifier)
	params := p.parseParameterList()
	p.shift(token.Colon)
	retSig := p.parseTypeSig()
	p.shift(token.Is)
	body := p.parseExpression()
	return ast.NewFuncDecl(pos, name, params, retSig, body)
}

// parseParameterList parses the comma-separated parameter list within
// `( ... )` (spec section 4.1's Parameter grammar).
func (p *Parser) parseParameterList() []ast.Parameter {
	p.shift(token.LParen)
	var params []ast.Parameter
	if !p.is(token.RParen) {
		params = append(params, p.parseParameter())
		for p.is(token.Comma) {
			p.shiftAny()
			params = append(params, p.parseParameter())
		}
	}
	p.shift(token.RParen)
	return params
}

func (p *Parser) parseParameter() ast.Parameter {
	pos := p.nextToken.Pos()
	switch {
	case p.is(token.Var):
		p.shiftAny()
		name := p.nextToken.Text
		p.shift(token.Identifier)
		p.shift(token.Colon)
		sig := p.parseTypeSig()
		return ast.NewVarParam(pos, name, sig)
	case p.is(token.Proc):
		p.shiftAny()
		name := p.nextToken.Text
		p.shift(token.Identifier)
		params := p.parseParameterList()
		return ast.NewFuncParam(pos, name, params, nil)
	case p.is(token.Func):
		p.shiftAny()
		name := p.nextToken.Text
		p.shift(token.Identifier)
		params := p.parseParameterList()
		p.shift(token.Colon)
		retSig := p.parseTypeSig()
		return ast.NewFuncParam(pos, name, params, retSig)
	default:
		name := p.nextToken.Text
		p.shift(token.Identifier)
		p.shift(token.Colon)
		sig := p.parseTypeSig()
		return ast.NewValueParam(pos, name, sig)
	}
}

// parseTypeSig parses `Name | array INT of T | record ... end`.
func (p *Parser) parseTypeSig() ast.TypeSig {
	pos := p.nextToken.Pos()
	switch {
	case p.is(token.Array):
		p.shiftAny()
		sizeText := p.nextToken.Text
		p.shift(token.IntLiteral)
		size, _ := strconv.Atoi(sizeText)
		p.shift(token.Of)
		elem := p.parseTypeSig()
		return ast.NewArrayTypeSig(pos, size, elem)
	case p.is(token.Record):
		p.shiftAny()
		var fields []ast.FieldTypeSig
		if !p.is(token.End) {
			fields = append(fields, p.parseFieldTypeSig())
			for p.is(token.Comma) {
				p.shiftAny()
				fields = append(fields, p.parseFieldTypeSig())
			}
		}
		p.shift(token.End)
		return ast.NewRecordTypeSig(pos, fields)
	default:
		name := p.nextToken.Text
		p.shift(token.Identifier)
		return ast.NewBasicTypeSig(pos, name)
	}
}

func (p *Parser) parseFieldTypeSig() ast.FieldTypeSig {
	pos := p.nextToken.Pos()
	name := p.nextToken.Text
	p.shift(token.Identifier)
	p.shift(token.Colon)
	sig := p.parseTypeSig()
	return ast.NewFieldTypeSig(pos, name, sig)
}
