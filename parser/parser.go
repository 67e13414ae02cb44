// Package parser implements a Pratt (operator-precedence) parser over the
// token stream lexer produces. It mirrors the shape of Go-Mix's own parser
// (_examples/akashmaji946-go-mix/parser/parser.go): two tokens of lookahead
// (Cur/Peek), prefix/infix function tables keyed by token kind, and an
// error list the parser accumulates into rather than aborting on first
// failure. Unlike Go-Mix, which also threads a constant-folding environment
// through parsing, this parser does no evaluation of its own — parsing and
// evaluation stay fully separate passes.
package parser

import (
	"strconv"

	"github.com/akashmaji946/mochi/ast"
	"github.com/akashmaji946/mochi/diag"
	"github.com/akashmaji946/mochi/lexer"
	"github.com/akashmaji946/mochi/token"
)

// Precedence levels, lowest to highest, per the operator ladder:
// LOWEST < RANGE < OR < AND < EQUALS < LESSGREATER < BITWISE < SUM <
// PRODUCT < EXPONENT < PREFIX < CALL.
const (
	_ int = iota
	LOWEST
	RANGEPREC
	OR
	AND
	EQUALS
	LESSGREATER
	BITWISE
	SUM
	PRODUCT
	EXPONENT
	PREFIX
	CALL
)

var precedences = map[token.Kind]int{
	token.RANGE:  RANGEPREC,
	token.IRANGE: RANGEPREC,
	token.OR:     OR,
	token.AND:    AND,
	token.EQ:     EQUALS,
	token.NEQ:    EQUALS,
	token.LT:     LESSGREATER,
	token.GT:     LESSGREATER,
	token.LTE:    LESSGREATER,
	token.GTE:    LESSGREATER,
	token.LSHIFT: BITWISE,
	token.RSHIFT: BITWISE,
	token.PLUS:   SUM,
	token.MINUS:  SUM,

	token.ASTERISK:     PRODUCT,
	token.FORWARDSLASH: PRODUCT,
	token.PERCENT:      PRODUCT,

	token.EXPONENT:  EXPONENT,
	token.DASTERISK: EXPONENT,

	token.LPAREN: CALL,
}

type prefixParseFn func() ast.Expression
type infixParseFn func(ast.Expression) ast.Expression

// Parser converts a token stream into an *ast.Program, collecting structured
// diagnostics along the way instead of stopping at the first problem.
type Parser struct {
	lex *lexer.Lexer

	cur  token.Token
	peek token.Token

	prefixFns map[token.Kind]prefixParseFn
	infixFns  map[token.Kind]infixParseFn

	Errors   []*diag.ParserError
	Warnings []*diag.ParserWarning
}

// New creates a Parser over lex and primes the two-token lookahead.
func New(lex *lexer.Lexer) *Parser {
	p := &Parser{lex: lex}

	p.prefixFns = make(map[token.Kind]prefixParseFn)
	p.registerPrefix(token.IDENT, p.parseIdentifier)
	p.registerPrefix(token.INT, p.parseIntegerLiteral)
	p.registerPrefix(token.STRING, p.parseStringLiteral)
	p.registerPrefix(token.TRUE, p.parseBooleanLiteral)
	p.registerPrefix(token.FALSE, p.parseBooleanLiteral)
	p.registerPrefix(token.NULL, p.parseNullLiteral)
	p.registerPrefix(token.LPAREN, p.parseGroupedExpression)
	p.registerPrefix(token.IF, p.parseIfExpression)
	p.registerPrefix(token.FUN, p.parseFunctionLiteral)
	p.registerPrefix(token.BANG, p.parsePrefixExpression)
	p.registerPrefix(token.MINUS, p.parsePrefixExpression)
	p.registerPrefix(token.INCR, p.parsePrefixExpression)
	p.registerPrefix(token.DECR, p.parsePrefixExpression)
	p.registerPrefix(token.RANGE, p.parsePrefixExpression)
	p.registerPrefix(token.IRANGE, p.parsePrefixExpression)

	p.infixFns = make(map[token.Kind]infixParseFn)
	for _, kind := range []token.Kind{
		token.PLUS, token.MINUS, token.ASTERISK, token.FORWARDSLASH, token.PERCENT,
		token.EXPONENT, token.DASTERISK,
		token.EQ, token.NEQ, token.LT, token.GT, token.LTE, token.GTE,
		token.AND, token.OR,
		token.LSHIFT, token.RSHIFT,
		token.RANGE, token.IRANGE,
	} {
		p.registerInfix(kind, p.parseInfixExpression)
	}
	p.registerInfix(token.LPAREN, p.parseCallExpression)

	p.advance()
	p.advance()
	return p
}

func (p *Parser) registerPrefix(kind token.Kind, fn prefixParseFn) { p.prefixFns[kind] = fn }
func (p *Parser) registerInfix(kind token.Kind, fn infixParseFn)   { p.infixFns[kind] = fn }

func (p *Parser) advance() {
	p.cur = p.peek
	p.peek = p.lex.Scan()
}

func (p *Parser) curIs(kind token.Kind) bool  { return p.cur.Kind == kind }
func (p *Parser) peekIs(kind token.Kind) bool { return p.peek.Kind == kind }

// expectPeek checks the peek token's kind; if it matches, it advances past
// it and returns true. Otherwise it records an UnexpectedToken error and
// returns false without advancing: the unexpected token stays in peek.
func (p *Parser) expectPeek(kind token.Kind) bool {
	if p.peekIs(kind) {
		p.advance()
		return true
	}
	p.errorUnexpected(p.peek, kind)
	return false
}

func (p *Parser) peekPrecedence() int {
	if pr, ok := precedences[p.peek.Kind]; ok {
		return pr
	}
	return LOWEST
}

func (p *Parser) curPrecedence() int {
	if pr, ok := precedences[p.cur.Kind]; ok {
		return pr
	}
	return LOWEST
}

func (p *Parser) errorUnexpected(tok token.Token, expected ...token.Kind) {
	p.Errors = append(p.Errors, &diag.ParserError{
		Code:     diag.UnexpectedToken,
		Token:    tok,
		Message:  "unexpected token " + string(tok.Kind),
		Expected: expected,
	})
}

func (p *Parser) errorNoPrefix(tok token.Token) {
	p.Errors = append(p.Errors, &diag.ParserError{
		Code:    diag.UnknownPrefixToken,
		Token:   tok,
		Message: "unknown prefix token " + string(tok.Kind),
	})
}

func (p *Parser) errorMissingIfCondition(tok token.Token) {
	p.Errors = append(p.Errors, &diag.ParserError{
		Code:    diag.MissingIfCondition,
		Token:   tok,
		Message: "the `if` expression is missing a condition",
	})
}

func (p *Parser) errorDelimiterMismatch(tok token.Token, expected token.Kind) {
	p.Errors = append(p.Errors, &diag.ParserError{
		Code:     diag.DelimiterMismatch,
		Token:    tok,
		Message:  "missing `" + string(expected) + "`",
		Expected: []token.Kind{expected},
	})
}

func (p *Parser) errorMissingReturnType(tok token.Token) {
	p.Errors = append(p.Errors, &diag.ParserError{
		Code:    diag.MissingFnReturnType,
		Token:   tok,
		Message: "the function is missing a return type",
	})
}

func (p *Parser) warn(code diag.ParserWarningCode, tok token.Token, message string) {
	p.Warnings = append(p.Warnings, &diag.ParserWarning{Code: code, Token: tok, Message: message})
}

// ParseProgram parses the entire token stream into an *ast.Program. It
// always returns a non-nil program; check p.Errors to see whether parsing
// was clean. Error recovery is statement-granular: after a failed statement,
// the parser advances until the source line changes (or EOF) so one bad
// line never poisons the rest of the file.
func (p *Parser) ParseProgram() *ast.Program {
	program := &ast.Program{Statements: []ast.Statement{}}

	for !p.curIs(token.EOF) {
		startLine := p.cur.Line
		errsBefore := len(p.Errors)

		stmt := p.parseStatement()

		if stmt != nil && len(p.Errors) == errsBefore {
			program.Statements = append(program.Statements, stmt)
			p.advance()
			continue
		}

		for p.cur.Line == startLine && !p.curIs(token.EOF) {
			p.advance()
		}
	}

	return program
}

func (p *Parser) parseExpression(precedence int) ast.Expression {
	prefix, ok := p.prefixFns[p.cur.Kind]
	if !ok {
		p.errorNoPrefix(p.cur)
		return nil
	}
	left := prefix()

	for !p.peekIs(token.SEMICOLON) && precedence < p.peekPrecedence() {
		infix, ok := p.infixFns[p.peek.Kind]
		if !ok {
			return left
		}
		p.advance()
		left = infix(left)
	}

	return left
}

func (p *Parser) parseIntegerLiteral() ast.Expression {
	lit := &ast.IntegerLiteral{Token: p.cur}
	v, err := strconv.ParseInt(p.cur.Literal, 10, 64)
	if err != nil {
		p.Errors = append(p.Errors, &diag.ParserError{
			Code:    diag.UnknownParserError,
			Token:   p.cur,
			Message: "could not parse " + p.cur.Literal + " as an integer",
		})
		return nil
	}
	lit.Value = v
	return lit
}

func (p *Parser) parseIdentifier() ast.Expression {
	return &ast.Identifier{Token: p.cur, Name: p.cur.Literal}
}

func (p *Parser) parseStringLiteral() ast.Expression {
	return &ast.StringLiteral{Token: p.cur, Content: p.cur.Literal}
}

func (p *Parser) parseBooleanLiteral() ast.Expression {
	return &ast.BooleanLiteral{Token: p.cur, Value: p.curIs(token.TRUE)}
}

func (p *Parser) parseNullLiteral() ast.Expression {
	return &ast.NullLiteral{Token: p.cur}
}

// parseGroupedExpression handles `( expr )`. The parentheses themselves are
// not retained in the AST: a grouped expression is indistinguishable from
// its inner expression once parsed, which is what makes "unnecessary
// parentheses" purely a style warning rather than a structural difference.
func (p *Parser) parseGroupedExpression() ast.Expression {
	p.advance()
	exp := p.parseExpression(LOWEST)
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	return exp
}

func (p *Parser) parsePrefixExpression() ast.Expression {
	tok := p.cur
	operator := p.cur.Literal
	p.advance()
	right := p.parseExpression(PREFIX)
	return &ast.PrefixExpression{Token: tok, Operator: operator, Right: right}
}

func (p *Parser) parseInfixExpression(left ast.Expression) ast.Expression {
	tok := p.cur
	operator := p.cur.Literal
	precedence := p.curPrecedence()
	p.advance()
	right := p.parseExpression(precedence)
	return &ast.InfixExpression{Token: tok, Left: left, Operator: operator, Right: right}
}

func (p *Parser) parseCallExpression(callee ast.Expression) ast.Expression {
	exp := &ast.CallExpression{Token: p.cur, Callee: callee}
	exp.Arguments = p.parseCallArguments()
	return exp
}

func (p *Parser) parseCallArguments() []ast.Expression {
	args := []ast.Expression{}

	if p.peekIs(token.RPAREN) {
		p.advance()
		return args
	}

	p.advance()
	args = append(args, p.parseExpression(LOWEST))

	for p.peekIs(token.COMMA) {
		p.advance()
		p.advance()
		args = append(args, p.parseExpression(LOWEST))
	}

	if !p.expectPeek(token.RPAREN) {
		return args
	}
	return args
}
