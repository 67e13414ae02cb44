package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/mochi/token"
)

// expected is a minimal projection of token.Token for assertions: kind and
// literal only, the same pair Go-Mix's own lexer tests compare.
type expected struct {
	kind    token.Kind
	literal string
}

func scanAll(src string) []token.Token {
	lex := New(src, "")
	var toks []token.Token
	for {
		tok := lex.Scan()
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return toks
}

func assertTokens(t *testing.T, src string, want []expected) {
	t.Helper()
	got := scanAll(src)
	assert.Equal(t, len(want)+1, len(got), "token count mismatch for %q", src)
	for i, w := range want {
		assert.Equal(t, w.kind, got[i].Kind, "kind mismatch at index %d for %q", i, src)
		assert.Equal(t, w.literal, got[i].Literal, "literal mismatch at index %d for %q", i, src)
	}
	assert.Equal(t, token.EOF, got[len(got)-1].Kind)
}

func TestScan_IntegersAndArithmetic(t *testing.T) {
	assertTokens(t, ` 123 + 2   31 - 12 `, []expected{
		{token.INT, "123"},
		{token.PLUS, "+"},
		{token.INT, "2"},
		{token.INT, "31"},
		{token.MINUS, "-"},
		{token.INT, "12"},
	})
}

func TestScan_Delimiters(t *testing.T) {
	assertTokens(t, ` { } + ( )  abc - a12 `, []expected{
		{token.LBRACE, "{"},
		{token.RBRACE, "}"},
		{token.PLUS, "+"},
		{token.LPAREN, "("},
		{token.RPAREN, ")"},
		{token.IDENT, "abc"},
		{token.MINUS, "-"},
		{token.IDENT, "a12"},
	})
}

func TestScan_CompoundVsSingleOperators(t *testing.T) {
	// Every compound operator must win over its single-character prefix:
	// == vs =, != vs !, <= vs <, >= vs >, && vs &, || vs |, ++ vs +, -- vs -,
	// << vs <, >> vs >, -> vs -, :: vs :, ** vs *, .. vs ., ..= vs ...
	assertTokens(t, `== = != ! <= < >= > && & || | ++ + -- - << < >> > -> - :: : ** * .. . ..= `, []expected{
		{token.EQ, "=="},
		{token.ASSIGN, "="},
		{token.NEQ, "!="},
		{token.BANG, "!"},
		{token.LTE, "<="},
		{token.LT, "<"},
		{token.GTE, ">="},
		{token.GT, ">"},
		{token.AND, "&&"},
		{token.AMPERSAND, "&"},
		{token.OR, "||"},
		{token.PIPE, "|"},
		{token.INCR, "++"},
		{token.PLUS, "+"},
		{token.DECR, "--"},
		{token.MINUS, "-"},
		{token.LSHIFT, "<<"},
		{token.LT, "<"},
		{token.RSHIFT, ">>"},
		{token.GT, ">"},
		{token.ARROW, "->"},
		{token.MINUS, "-"},
		{token.SCOPE, "::"},
		{token.COLON, ":"},
		{token.DASTERISK, "**"},
		{token.ASTERISK, "*"},
		{token.RANGE, ".."},
		{token.DOT, "."},
		{token.IRANGE, "..="},
	})
}

func TestScan_CommentsAreSkipped(t *testing.T) {
	assertTokens(t, "1 // a line comment\n+ 2 /* a block\ncomment */ - 3", []expected{
		{token.INT, "1"},
		{token.PLUS, "+"},
		{token.INT, "2"},
		{token.MINUS, "-"},
		{token.INT, "3"},
	})
}

func TestScan_Strings(t *testing.T) {
	assertTokens(t, `"This is a long string  " nowAnIdentifier_234 "12"`, []expected{
		{token.STRING, "This is a long string  "},
		{token.IDENT, "nowAnIdentifier_234"},
		{token.STRING, "12"},
	})
}

func TestScan_UnterminatedString(t *testing.T) {
	got := scanAll(`"unterminated`)
	assert.Equal(t, token.ILLEGAL, got[0].Kind)
	assert.Equal(t, token.EOF, got[1].Kind)
}

func TestScan_KeywordsAndIdentifiers(t *testing.T) {
	assertTokens(t, `fn let const var if else true false null return defer notakeyword`, []expected{
		{token.FUN, "fn"},
		{token.LET, "let"},
		{token.CONST, "const"},
		{token.VAR, "var"},
		{token.IF, "if"},
		{token.ELSE, "else"},
		{token.TRUE, "true"},
		{token.FALSE, "false"},
		{token.NULL, "null"},
		{token.RETURN, "return"},
		{token.DEFER, "defer"},
		{token.IDENT, "notakeyword"},
	})
}

func TestScan_FunctionSnippet(t *testing.T) {
	src := `
	let add = fn(x: int, y: int) -> int {
		return x + y;
	}
	`
	assertTokens(t, src, []expected{
		{token.LET, "let"},
		{token.IDENT, "add"},
		{token.ASSIGN, "="},
		{token.FUN, "fn"},
		{token.LPAREN, "("},
		{token.IDENT, "x"},
		{token.COLON, ":"},
		{token.IDENT, "int"},
		{token.COMMA, ","},
		{token.IDENT, "y"},
		{token.COLON, ":"},
		{token.IDENT, "int"},
		{token.RPAREN, ")"},
		{token.ARROW, "->"},
		{token.IDENT, "int"},
		{token.LBRACE, "{"},
		{token.RETURN, "return"},
		{token.IDENT, "x"},
		{token.PLUS, "+"},
		{token.IDENT, "y"},
		{token.SEMICOLON, ";"},
		{token.RBRACE, "}"},
	})
}

func TestScan_LineAndColumnTracking(t *testing.T) {
	lex := New("abc\ndef", "")
	first := lex.Scan()
	assert.Equal(t, 1, first.Line)
	assert.Equal(t, 1, first.Column)

	second := lex.Scan()
	assert.Equal(t, 2, second.Line)
	assert.Equal(t, 1, second.Column)
}

func TestScan_EOFIsIdempotent(t *testing.T) {
	lex := New("1", "")
	lex.Scan()
	first := lex.Scan()
	second := lex.Scan()
	assert.Equal(t, token.EOF, first.Kind)
	assert.Equal(t, token.EOF, second.Kind)
}
