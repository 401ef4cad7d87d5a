package parser

import (
	"github.com/triangle-lang/trianglec/internal/ast"
	"github.com/triangle-lang/trianglec/internal/token"
)

// parseStatement dispatches on the leading token per spec section 4.1.
func (p *Parser) parseStatement() ast.Statement {
	pos := p.nextToken.Pos()

	switch {
	case p.is(token.Begin):
		return p.parseBlock()
	case p.is(token.Let):
		return p.parseLetStatement()
	case p.is(token.If):
		return p.parseIfStatement()
	case p.is(token.While):
		return p.parseWhileStatement()
	case p.is(token.Loop):
		return p.parseLoopWhileStatement()
	case p.is(token.Repeat):
		return p.parseRepeatStatement()
	case p.is(token.Identifier):
		return p.parseIdentifierLedStatement()
	case isExprStart(p.nextToken.Kind):
		expr := p.parseExpression()
		return ast.NewExpressionStatement(pos, expr)
	default:
		p.fail("statement")
		return nil
	}
}

// parseBlock parses `begin Seq end`.
func (p *Parser) parseBlock() ast.Statement {
	pos := p.shift(token.Begin)
	stmts := p.parseStatementSequence()
	p.shift(token.End)
	return ast.NewStatementBlock(pos, stmts)
}

// parseStatementSequence parses semicolon-separated statements. A trailing
// semicolon is tolerated: after ';' a statement is attempted only if the
// next token is in STMT.
func (p *Parser) parseStatementSequence() []ast.Statement {
	var stmts []ast.Statement
	stmts = append(stmts, p.parseStatement())
	for p.is(token.Semicolon) {
		p.shiftAny()
		if !isStmtStart(p.nextToken.Kind) {
			break
		}
		stmts = append(stmts, p.parseStatement())
	}
	return stmts
}

func (p *Parser) parseLetStatement() ast.Statement {
	pos := p.shift(token.Let)
	decls := p.parseDeclarationSequence()
	p.shift(token.In)
	body := p.parseStatement()
	return ast.NewLetStatement(pos, decls, body)
}

// parseIfStatement parses `if E then [Stmt] else [Stmt]`; both branches are
// optional.
func (p *Parser) parseIfStatement() ast.Statement {
	pos := p.shift(token.If)
	cond := p.parseExpression()
	p.shift(token.Then)

	var consequent, alternative ast.Statement
	if !p.is(token.Else) {
		consequent = p.parseStatement()
	}
	p.shift(token.Else)
	if isStmtStart(p.nextToken.Kind) {
		alternative = p.parseStatement()
	}
	return ast.NewIfStatement(pos, cond, consequent, alternative)
}

func (p *Parser) parseWhileStatement() ast.Statement {
	pos := p.shift(token.While)
	cond := p.parseExpression()
	p.shift(token.Do)
	body := p.parseStatement()
	return ast.NewWhileStatement(pos, cond, body)
}

// parseLoopWhileStatement parses `loop Stmt while E do Stmt`.
func (p *Parser) parseLoopWhileStatement() ast.Statement {
	pos := p.shift(token.Loop)
	loopBody := p.parseStatement()
	p.shift(token.While)
	cond := p.parseExpression()
	p.shift(token.Do)
	doBody := p.parseStatement()
	return ast.NewLoopWhileStatement(pos, loopBody, cond, doBody)
}

// parseRepeatStatement parses `repeat Stmt while E` / `repeat Stmt until E`,
// disambiguated by the keyword following the body.
func (p *Parser) parseRepeatStatement() ast.Statement {
	pos := p.shift(token.Repeat)
	body := p.parseStatement()
	if p.is(token.While) {
		p.shiftAny()
		cond := p.parseExpression()
		return ast.NewRepeatWhileStatement(pos, body, cond)
	}
	p.shift(token.Until)
	cond := p.parseExpression()
	return ast.NewRepeatUntilStatement(pos, body, cond)
}

// parseIdentifierLedStatement handles `id := E`, `id op [E]`, `id(args)`,
// and bare identifier expression statements.
func (p *Parser) parseIdentifierLedStatement() ast.Statement {
	pos := p.nextToken.Pos()
	id := p.parseIdentifier()

	switch {
	case p.is(token.Becomes):
		p.shiftAny()
		value := p.parseExpression()
		return ast.NewAssignStatement(pos, id, value)
	case p.is(token.Operator):
		expr := p.parseTrailingOperator(ast.NewIdentifierExpr(id))
		return ast.NewExpressionStatement(pos, expr)
	case p.is(token.LParen):
		expr := p.finishCallOrPlainIdentifier(pos, id)
		return ast.NewExpressionStatement(pos, expr)
	default:
		return ast.NewExpressionStatement(pos, ast.NewIdentifierExpr(id))
	}
}
