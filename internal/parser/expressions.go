package parser

import (
	"strconv"

	"github.com/triangle-lang/trianglec/internal/ast"
	"github.com/triangle-lang/trianglec/internal/token"
)

// parseExpression parses a primary followed by an optional single trailing
// operator. Because the right operand of a binary/unary trailing operator
// is itself a full recursive parseExpression, a chain like `a + b + c`
// parses as `a + (b + c)` — all binary operators are right-associative
// with equal precedence (spec section 4.1's "unprecedenced" design; this
// shape must be preserved exactly, per the flagged Open Question in
// spec section 9).
func (p *Parser) parseExpression() ast.Expression {
	left := p.parsePrimary()
	return p.parseTrailingOperator(left)
}

// parseTrailingOperator consumes an operator that may follow an already
// parsed expression, deciding infix vs. postfix unary by whether another
// expression-first token follows (spec section 4.1).
func (p *Parser) parseTrailingOperator(left ast.Expression) ast.Expression {
	if !p.is(token.Operator) {
		return left
	}
	pos := p.nextToken.Pos()
	op := p.nextToken.Text
	p.shiftAny()
	if isExprStart(p.nextToken.Kind) {
		right := p.parseExpression()
		return ast.NewBinaryOp(pos, op, left, right)
	}
	return ast.NewUnaryOp(pos, op, left)
}

func (p *Parser) parsePrimary() ast.Expression {
	pos := p.nextToken.Pos()

	switch {
	case p.is(token.IntLiteral):
		text := p.nextToken.Text
		p.shiftAny()
		n, _ := strconv.Atoi(text)
		return ast.NewLitInt(pos, n)
	case p.is(token.CharLiteral):
		text := p.nextToken.Text
		p.shiftAny()
		var r rune
		if len(text) > 0 {
			r = []rune(text)[0]
		}
		return ast.NewLitChar(pos, r)
	case p.is(token.True):
		p.shiftAny()
		return ast.NewLitBool(pos, true)
	case p.is(token.False):
		p.shiftAny()
		return ast.NewLitBool(pos, false)
	case p.is(token.LBracket):
		return p.parseArrayLiteral()
	case p.is(token.LBrace):
		return p.parseRecordLiteral()
	case p.is(token.LParen):
		p.shiftAny()
		e := p.parseExpression()
		p.shift(token.RParen)
		return e
	case p.is(token.Let):
		return p.parseLetExpression()
	case p.is(token.If):
		return p.parseIfExpression()
	case p.is(token.After):
		return p.parseSequenceExpression()
	case p.is(token.Operator):
		op := p.nextToken.Text
		p.shiftAny()
		operand := p.parseExpression()
		return ast.NewUnaryOp(pos, op, operand)
	case p.is(token.Identifier):
		return p.parseIdentifierPrimary()
	default:
		p.fail("expression")
		return nil
	}
}

// parseArrayLiteral parses `[elems]`, possibly empty.
func (p *Parser) parseArrayLiteral() ast.Expression {
	pos := p.shift(token.LBracket)
	var elems []ast.Expression
	if !p.is(token.RBracket) {
		elems = append(elems, p.parseExpression())
		for p.is(token.Comma) {
			p.shiftAny()
			elems = append(elems, p.parseExpression())
		}
	}
	p.shift(token.RBracket)
	return ast.NewLitArray(pos, elems)
}

// parseRecordLiteral parses `{field is E, ...}`.
func (p *Parser) parseRecordLiteral() ast.Expression {
	pos := p.shift(token.LBrace)
	var fields []ast.RecordFieldValue
	for {
		name := p.nextToken.Text
		p.shift(token.Identifier)
		p.shift(token.Is)
		value := p.parseExpression()
		fields = append(fields, ast.RecordFieldValue{Name: name, Value: value})
		if !p.is(token.Comma) {
			break
		}
		p.shiftAny()
	}
	p.shift(token.RBrace)
	return ast.NewLitRecord(pos, fields)
}

func (p *Parser) parseLetExpression() ast.Expression {
	pos := p.shift(token.Let)
	decls := p.parseDeclarationSequence()
	p.shift(token.In)
	body := p.parseExpression()
	return ast.NewLetExpression(pos, decls, body)
}

func (p *Parser) parseIfExpression() ast.Expression {
	pos := p.shift(token.If)
	cond := p.parseExpression()
	p.shift(token.Then)
	thenExpr := p.parseExpression()
	p.shift(token.Else)
	elseExpr := p.parseExpression()
	return ast.NewIfExpression(pos, cond, thenExpr, elseExpr)
}

// parseSequenceExpression parses `after Stmt return E`.
func (p *Parser) parseSequenceExpression() ast.Expression {
	pos := p.shift(token.After)
	stmt := p.parseStatement()
	p.shift(token.Return)
	expr := p.parseExpression()
	return ast.NewSequenceExpression(pos, stmt, expr)
}

// parseIdentifierPrimary parses an identifier chain, turning it into a
// FunCall when a simple (Basic) identifier is immediately followed by '(',
// and rejecting a call on a qualified identifier (spec section 4.1's
// call/identifier ambiguity rule).
func (p *Parser) parseIdentifierPrimary() ast.Expression {
	pos := p.nextToken.Pos()
	id := p.parseIdentifier()
	if p.is(token.LParen) {
		basic, ok := id.(*ast.Basic)
		if !ok {
			p.fail("identifier (qualified identifiers cannot be called)")
		}
		return p.finishCall(pos, basic.Name)
	}
	return ast.NewIdentifierExpr(id)
}

// finishCallOrPlainIdentifier is used by the identifier-led statement
// dispatch once it has already confirmed `(` follows.
func (p *Parser) finishCallOrPlainIdentifier(pos token.Position, id ast.Identifier) ast.Expression {
	basic, ok := id.(*ast.Basic)
	if !ok {
		p.fail("identifier (qualified identifiers cannot be called)")
	}
	return p.finishCall(pos, basic.Name)
}

// finishCall parses `( args )` given that `name` has already been read.
func (p *Parser) finishCall(pos token.Position, name string) ast.Expression {
	p.shift(token.LParen)
	var args []ast.Argument
	if !p.is(token.RParen) {
		args = append(args, p.parseArgument())
		for p.is(token.Comma) {
			p.shiftAny()
			args = append(args, p.parseArgument())
		}
	}
	p.shift(token.RParen)
	return ast.NewFunCall(pos, name, args)
}

// parseArgument disambiguates Expression | VarArgument | FuncArgument; see
// DESIGN.md "Argument-kind disambiguation" for the rule.
func (p *Parser) parseArgument() ast.Argument {
	if p.is(token.Var) {
		pos := p.shiftAny()
		id := p.parseIdentifier()
		return ast.NewVarArgument(pos, id)
	}

	if p.is(token.Identifier) {
		pos := p.nextToken.Pos()
		id := p.parseIdentifier()
		if p.is(token.LParen) {
			return ast.NewExpressionArgument(p.finishCallOrPlainIdentifier(pos, id))
		}
		if basic, ok := id.(*ast.Basic); ok && !p.is(token.Operator) {
			return ast.NewFuncArgument(pos, basic.Name)
		}
		expr := ast.Expression(ast.NewIdentifierExpr(id))
		return ast.NewExpressionArgument(p.parseTrailingOperator(expr))
	}

	return ast.NewExpressionArgument(p.parseExpression())
}
