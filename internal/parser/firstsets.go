package parser

import "github.com/triangle-lang/trianglec/internal/token"

// First sets used as lookahead filters for optional continuations (spec
// section 4.1). They are not grammar productions — they decide whether an
// optional construct is present.

func isDeclStart(k token.Kind) bool {
	switch k {
	case token.Const, token.Var, token.Proc, token.Func, token.Type:
		return true
	}
	return false
}

func isExprStart(k token.Kind) bool {
	switch k {
	case token.IntLiteral, token.CharLiteral, token.LBracket, token.LBrace,
		token.LParen, token.Let, token.If, token.Identifier, token.Operator,
		token.False, token.True, token.After:
		return true
	}
	return false
}

func isStmtStart(k token.Kind) bool {
	if isExprStart(k) {
		return true
	}
	switch k {
	case token.Begin, token.Let, token.If, token.While, token.Loop,
		token.Repeat, token.Identifier:
		return true
	}
	return false
}
