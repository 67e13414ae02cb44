// Package diag renders parser errors, parser warnings, and runtime errors the
// way the original interpreter did: a colored "error[Ennnnn]" or
// "warning[Wnnnnn]" tag with the message, then a "-->" location line. Render
// does not include a line of source context or a caret underline;
// RenderWithSource appends both to a rendered header when the caller
// supplies the source line. Go-Mix's own evaluator
// builds its error strings with CreateError (eval/evaluator.go), which tags a
// message with "[line:col]"; this package keeps that "a diagnostic carries
// enough to format itself" shape but adds the numeric-code-and-caret
// rendering the Rust source used (log/error/parser.rs, log/warning/mod.rs),
// colored with fatih/color instead of the `colored` crate.
package diag

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/akashmaji946/mochi/token"
)

// ParserErrorCode discriminates the kinds of error the parser can report.
// Values match the numeric family the original source assigned its
// ParserErrorCode variants, offset into the E01xxx band.
type ParserErrorCode int

const (
	UnexpectedToken ParserErrorCode = 1000 + iota
	UnknownPrefixToken
	MissingIfCondition
	DelimiterMismatch
	MissingFnReturnType
	UnknownParserError
)

// ParserWarningCode discriminates the kinds of warning the parser can report,
// in the W02xxx band.
type ParserWarningCode int

const (
	UnnecessaryParentheses ParserWarningCode = 2000 + iota
	EmptyIfExpression
	EmptyIfConsequenceBranch
	EmptyIfAlternativeBranch
	PredictableIfBranch
	EmptyFunction
)

// RuntimeErrorCode discriminates the kinds of error the evaluator can report,
// in the E03xxx band.
type RuntimeErrorCode int

const (
	IdentifierNotFound RuntimeErrorCode = 3000 + iota
	InvalidOperation
	UnknownInfixOperator
	TypeMismatch
	OverflowError
	DivisionByZero
	IndexOutOfRange
	FunctionNotFound
)

// ParserError is a single parser diagnostic: a code, the token where it was
// raised, a human-readable message, and the extra context (expected token
// kinds, a mismatched delimiter) some codes carry.
type ParserError struct {
	Code     ParserErrorCode
	Token    token.Token
	Message  string
	Expected []token.Kind // populated for UnexpectedToken / DelimiterMismatch
}

func (pe *ParserError) Error() string { return pe.Render(false) }

// Render formats the diagnostic. When color is false, ANSI escapes are
// suppressed, which the --no-color flag relies on. The Expected kinds are not
// included in the output.
func (pe *ParserError) Render(useColor bool) string {
	return render(fmt.Sprintf("error[E%05d]", int(pe.Code)), color.FgRed, pe.Message, pe.Token, useColor)
}

// ParserWarning is a non-fatal parser diagnostic: unnecessary parentheses,
// an empty if-branch, and similar stylistic observations that do not stop
// parsing.
type ParserWarning struct {
	Code    ParserWarningCode
	Token   token.Token
	Message string
}

func (pw *ParserWarning) Render(useColor bool) string {
	return render(fmt.Sprintf("warning[W%05d]", int(pw.Code)), color.FgYellow, pw.Message, pw.Token, useColor)
}

// RuntimeError is an evaluator diagnostic. It has no Go error-interface
// implementation: runtime errors propagate as object.Error values, not Go
// errors, per the evaluator's sentinel-propagation design.
type RuntimeError struct {
	Code    RuntimeErrorCode
	Token   token.Token
	Message string
}

func (re *RuntimeError) Render(useColor bool) string {
	return render(fmt.Sprintf("runtime_error[E%05d]", int(re.Code)), color.FgRed, re.Message, re.Token, useColor)
}

// render builds the shared "tag: message\n  --> location\n" shape every
// diagnostic kind uses. It has no access to the source text, so it emits
// neither a source-context line nor a caret underline (see RenderWithSource).
func render(tag string, tagColor color.Attribute, message string, tok token.Token, useColor bool) string {
	c := color.New(tagColor)
	arrow := color.New(color.FgBlue)
	c.DisableColor()
	arrow.DisableColor()
	if useColor {
		c.EnableColor()
		arrow.EnableColor()
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s\n", c.Sprint(tag), message)
	fmt.Fprintf(&b, "  %s %s\n", arrow.Sprint("-->"), tok.Location())
	return b.String()
}

// RenderWithSource appends a source-context line and a caret underline to a
// rendered diagnostic header, the way the original's error types do when a
// context line is available.
func RenderWithSource(header string, sourceLine string, tok token.Token, useColor bool) string {
	arrow := color.New(color.FgBlue)
	underline := color.New(color.FgRed)
	arrow.DisableColor()
	underline.DisableColor()
	if useColor {
		arrow.EnableColor()
		underline.EnableColor()
	}

	var b strings.Builder
	b.WriteString(header)
	fmt.Fprintf(&b, "    %s\n", arrow.Sprint("|"))
	fmt.Fprintf(&b, "%3d %s\t%s\n", tok.Line, arrow.Sprint("|"), sourceLine)
	col := tok.Column - 1
	if col < 0 {
		col = 0
	}
	caretLen := len(tok.Literal)
	if caretLen == 0 {
		caretLen = 1
	}
	fmt.Fprintf(&b, "    %s\t%s%s\n", arrow.Sprint("|"), strings.Repeat(" ", col), underline.Sprint(strings.Repeat("^", caretLen)))
	return b.String()
}
