package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/mochi/ast"
	"github.com/akashmaji946/mochi/diag"
	"github.com/akashmaji946/mochi/lexer"
)

func parseSource(t *testing.T, src string) (*ast.Program, *Parser) {
	t.Helper()
	lex := lexer.New(src, "")
	p := New(lex)
	program := p.ParseProgram()
	assert.NotNil(t, program)
	return program, p
}

func TestParseProgram_OneIntegerExpression(t *testing.T) {
	program, p := parseSource(t, `12`)
	assert.Empty(t, p.Errors)
	assert.Equal(t, 1, len(program.Statements))

	stmt, ok := program.Statements[0].(*ast.ExpressionStatement)
	assert.True(t, ok)
	lit, ok := stmt.Expression.(*ast.IntegerLiteral)
	assert.True(t, ok)
	assert.Equal(t, int64(12), lit.Value)
}

func TestParseProgram_PrecedenceRoundTrip(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"-a * b", "((-a) * b)"},
		{"!-a", "(!(-a))"},
		{"a + b + c", "((a + b) + c)"},
		{"a + b - c", "((a + b) - c)"},
		{"a * b * c", "((a * b) * c)"},
		{"a * b / c", "((a * b) / c)"},
		{"a + b / c", "(a + (b / c))"},
		{"a + b * c + d / e - f", "(((a + (b * c)) + (d / e)) - f)"},
		{"5 > 4 == 3 < 4", "((5 > 4) == (3 < 4))"},
		{"5 < 4 != 3 > 4", "((5 < 4) != (3 > 4))"},
		{"3 + 4 * 5 == 3 * 1 + 4 * 5", "((3 + (4 * 5)) == ((3 * 1) + (4 * 5)))"},
		{"true && false || true", "((true && false) || true)"},
		{"a + (b + c) + d", "((a + (b + c)) + d)"},
		{"(5 + 5) * 2", "((5 + 5) * 2)"},
		{"2 / (5 + 5)", "(2 / (5 + 5))"},
		{"-(5 + 5)", "(-(5 + 5))"},
		{"!(true == true)", "(!(true == true))"},
		{"2 ** 3 ** 2", "((2 ** 3) ** 2)"},
		{"a + add(b * c) + d", "((a + add((b * c))) + d)"},
		{"add(a, b, 1, 2 * 3, 4 + 5, add(6, 7 * 8))", "add(a, b, 1, (2 * 3), (4 + 5), add(6, (7 * 8)))"},
	}

	for _, tt := range tests {
		program, p := parseSource(t, tt.input)
		assert.Empty(t, p.Errors, "unexpected parse errors for %q", tt.input)
		assert.Equal(t, tt.expected, program.String(), "round-trip mismatch for %q", tt.input)
	}
}

func TestParseProgram_DeclareStatement(t *testing.T) {
	program, p := parseSource(t, `let x: int = 5;`)
	assert.Empty(t, p.Errors)
	assert.Equal(t, 1, len(program.Statements))

	decl, ok := program.Statements[0].(*ast.DeclareStatement)
	assert.True(t, ok)
	assert.Equal(t, ast.DeclareLet, decl.Kind)
	assert.Equal(t, "x", decl.Name.Name)
	assert.NotNil(t, decl.Type)
	assert.Equal(t, "int", decl.Type.Name)
	lit, ok := decl.Value.(*ast.IntegerLiteral)
	assert.True(t, ok)
	assert.Equal(t, int64(5), lit.Value)
}

func TestParseProgram_IfElseExpression(t *testing.T) {
	program, p := parseSource(t, `if (x < y) { x } else { y }`)
	assert.Empty(t, p.Errors)
	assert.Equal(t, 1, len(program.Statements))

	stmt := program.Statements[0].(*ast.ExpressionStatement)
	ifExp, ok := stmt.Expression.(*ast.IfExpression)
	assert.True(t, ok)
	assert.Equal(t, 1, len(ifExp.Consequence.Statements))
	assert.NotNil(t, ifExp.Alternative)
}

func TestParseProgram_FunctionLiteralWithReturnType(t *testing.T) {
	program, p := parseSource(t, `fn(x: int, y: int) -> int { x + y }`)
	assert.Empty(t, p.Errors)

	stmt := program.Statements[0].(*ast.ExpressionStatement)
	fn, ok := stmt.Expression.(*ast.FunctionLiteral)
	assert.True(t, ok)
	assert.Equal(t, 2, len(fn.Parameters))
	assert.NotNil(t, fn.ReturnType)
	assert.Equal(t, "int", fn.ReturnType.Name)
}

func TestParseProgram_MissingFnReturnType(t *testing.T) {
	_, p := parseSource(t, `fn(x) -> { x }`)
	assert.NotEmpty(t, p.Errors)
	assert.Equal(t, diag.MissingFnReturnType, p.Errors[0].Code)
}

func TestParseProgram_MissingFnReturnTypeNotReportedWhenAbsent(t *testing.T) {
	_, p := parseSource(t, `fn(x) { x }`)
	assert.Empty(t, p.Errors)
}

func TestParseProgram_ErrorRecoveryIsolatesBadLine(t *testing.T) {
	src := "let a = 5;\n)\nlet b = 10;"
	program, p := parseSource(t, src)
	assert.NotEmpty(t, p.Errors)

	var names []string
	for _, s := range program.Statements {
		if d, ok := s.(*ast.DeclareStatement); ok {
			names = append(names, d.Name.Name)
		}
	}
	assert.Contains(t, names, "a")
	assert.Contains(t, names, "b")
}

func TestParseProgram_UnnecessaryParenthesesWarning(t *testing.T) {
	_, p := parseSource(t, `if (x) { x }`)
	assert.NotEmpty(t, p.Warnings)
	found := false
	for _, w := range p.Warnings {
		if w.Code == diag.UnnecessaryParentheses {
			found = true
		}
	}
	assert.True(t, found)
}

func TestParseProgram_PredictableIfBranchWarning(t *testing.T) {
	_, p := parseSource(t, `if true { 1 } else { 2 }`)
	found := false
	for _, w := range p.Warnings {
		if w.Code == diag.PredictableIfBranch {
			found = true
		}
	}
	assert.True(t, found)
}
