package parser

import (
	"github.com/akashmaji946/mochi/ast"
	"github.com/akashmaji946/mochi/diag"
	"github.com/akashmaji946/mochi/token"
)

// parseStatement dispatches on the current token's kind, the same
// single-switch statement-level dispatch Go-Mix's parser.go uses, adapted to
// this language's statement set.
func (p *Parser) parseStatement() ast.Statement {
	switch p.cur.Kind {
	case token.LET, token.CONST, token.VAR:
		return p.parseDeclareStatement()
	case token.RETURN:
		return p.parseReturnStatement()
	case token.DEFER:
		return p.parseDeferStatement()
	case token.LBRACE:
		return p.parseBlockStatement()
	default:
		return p.parseExpressionStatement()
	}
}

func declareKindOf(kind token.Kind) ast.DeclareKind {
	switch kind {
	case token.CONST:
		return ast.DeclareConst
	case token.VAR:
		return ast.DeclareVar
	default:
		return ast.DeclareLet
	}
}

// parseDeclareStatement handles `let|const|var name [: Type] [= value];`.
// A missing `=` with no terminating `;` either is reported as an
// UnexpectedToken error rather than silently accepted.
func (p *Parser) parseDeclareStatement() ast.Statement {
	stmt := &ast.DeclareStatement{Token: p.cur, Kind: declareKindOf(p.cur.Kind)}

	if !p.expectPeek(token.IDENT) {
		return nil
	}
	stmt.Name = &ast.Identifier{Token: p.cur, Name: p.cur.Literal}

	if p.peekIs(token.COLON) {
		p.advance()
		if !p.expectPeek(token.IDENT) {
			return nil
		}
		stmt.Type = &ast.Identifier{Token: p.cur, Name: p.cur.Literal}
	}

	if p.peekIs(token.ASSIGN) {
		p.advance()
		p.advance()
		stmt.Value = p.parseExpression(LOWEST)
	} else if !p.peekIs(token.SEMICOLON) && !p.peekIs(token.EOF) {
		p.errorUnexpected(p.peek, token.ASSIGN)
		return nil
	}

	if p.peekIs(token.SEMICOLON) {
		p.advance()
	}

	return stmt
}

// parseReturnStatement handles `return [value];`.
func (p *Parser) parseReturnStatement() ast.Statement {
	stmt := &ast.ReturnStatement{Token: p.cur}

	if !p.peekIs(token.SEMICOLON) && !p.peekIs(token.RBRACE) && !p.peekIs(token.EOF) {
		p.advance()
		stmt.Value = p.parseExpression(LOWEST)
	}

	if p.peekIs(token.SEMICOLON) {
		p.advance()
	}

	return stmt
}

// parseDeferStatement handles `defer expr;`.
func (p *Parser) parseDeferStatement() ast.Statement {
	stmt := &ast.DeferStatement{Token: p.cur}
	p.advance()
	stmt.Expression = p.parseExpression(LOWEST)

	if p.peekIs(token.SEMICOLON) {
		p.advance()
	}

	return stmt
}

// parseBlockStatement handles `{ stmt* }`. An EOF before the closing brace
// is a DelimiterMismatch, not a silent truncation.
func (p *Parser) parseBlockStatement() *ast.BlockStatement {
	block := &ast.BlockStatement{Token: p.cur}
	p.advance()

	for !p.curIs(token.RBRACE) && !p.curIs(token.EOF) {
		stmt := p.parseStatement()
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
		p.advance()
	}

	if p.curIs(token.EOF) {
		p.errorDelimiterMismatch(p.cur, token.RBRACE)
	}

	return block
}

func (p *Parser) parseExpressionStatement() ast.Statement {
	stmt := &ast.ExpressionStatement{Token: p.cur}
	stmt.Expression = p.parseExpression(LOWEST)

	if p.peekIs(token.SEMICOLON) {
		p.advance()
	}

	return stmt
}

// parseIfExpression handles `if [(] condition [)] { consequence } [else { alternative }]`.
// Parentheses around the condition are accepted but flagged as an
// UnnecessaryParentheses warning rather than rejected; empty branches and
// branches whose condition is a literal true/false are flagged too.
func (p *Parser) parseIfExpression() ast.Expression {
	expr := &ast.IfExpression{Token: p.cur}

	parenTok := p.peek
	hasParens := p.peekIs(token.LPAREN)
	if hasParens {
		p.advance()
	}
	p.advance()

	expr.Condition = p.parseExpression(LOWEST)
	if expr.Condition == nil {
		p.errorMissingIfCondition(expr.Token)
	}

	if hasParens {
		if !p.expectPeek(token.RPAREN) {
			return nil
		}
		p.warn(diag.UnnecessaryParentheses, parenTok, "unnecessary parentheses around `if` condition")
	}

	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	expr.Consequence = p.parseBlockStatement()
	consequenceEmpty := len(expr.Consequence.Statements) == 0

	hasAlternative := false
	alternativeEmpty := false
	if p.peekIs(token.ELSE) {
		p.advance()
		if !p.expectPeek(token.LBRACE) {
			return nil
		}
		expr.Alternative = p.parseBlockStatement()
		hasAlternative = true
		alternativeEmpty = len(expr.Alternative.Statements) == 0
	}

	switch {
	case consequenceEmpty && (!hasAlternative || alternativeEmpty):
		p.warn(diag.EmptyIfExpression, expr.Token, "`if` expression has no effect; consider removing it")
	case consequenceEmpty:
		p.warn(diag.EmptyIfConsequenceBranch, expr.Token, "empty `if` consequence; consider inverting the condition")
	case hasAlternative && alternativeEmpty:
		p.warn(diag.EmptyIfAlternativeBranch, expr.Token, "empty `else` branch; consider removing it")
	}

	if lit, ok := expr.Condition.(*ast.BooleanLiteral); ok {
		if lit.Value {
			p.warn(diag.PredictableIfBranch, expr.Token, "condition is always `true`; the consequence branch always runs")
		} else {
			p.warn(diag.PredictableIfBranch, expr.Token, "condition is always `false`; the alternative branch always runs (or `null` if there is none)")
		}
	}

	return expr
}

// parseFunctionLiteral handles `fn [name](params) [-> Type] { body }`.
func (p *Parser) parseFunctionLiteral() ast.Expression {
	fn := &ast.FunctionLiteral{Token: p.cur}

	if p.peekIs(token.IDENT) {
		p.advance()
		fn.Name = p.cur.Literal
	}

	if !p.expectPeek(token.LPAREN) {
		return nil
	}
	fn.Parameters = p.parseFunctionParameters()

	if p.peekIs(token.ARROW) {
		p.advance()
		if !p.peekIs(token.IDENT) {
			p.errorMissingReturnType(p.peek)
			return nil
		}
		p.advance()
		fn.ReturnType = &ast.Identifier{Token: p.cur, Name: p.cur.Literal}
	}

	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	fn.Body = p.parseBlockStatement()

	if len(fn.Body.Statements) == 0 {
		p.warn(diag.EmptyFunction, fn.Token, "function body is empty")
	}

	return fn
}

func (p *Parser) parseFunctionParameters() []*ast.TypedIdentifier {
	params := []*ast.TypedIdentifier{}

	if p.peekIs(token.RPAREN) {
		p.advance()
		return params
	}

	p.advance()
	params = append(params, p.parseOneParameter())

	for p.peekIs(token.COMMA) {
		p.advance()
		p.advance()
		params = append(params, p.parseOneParameter())
	}

	if !p.expectPeek(token.RPAREN) {
		return params
	}
	return params
}

func (p *Parser) parseOneParameter() *ast.TypedIdentifier {
	param := &ast.TypedIdentifier{Identifier: &ast.Identifier{Token: p.cur, Name: p.cur.Literal}}

	if p.peekIs(token.COLON) {
		p.advance()
		if p.expectPeek(token.IDENT) {
			param.Type = &ast.Identifier{Token: p.cur, Name: p.cur.Literal}
		}
	}

	return param
}
