package eval

import (
	"fmt"

	"github.com/akashmaji946/mochi/diag"
	"github.com/akashmaji946/mochi/object"
	"github.com/akashmaji946/mochi/token"
)

// Aliases onto diag's runtime error codes, so call sites in this package
// read as the taxonomy names spec.md lists rather than the diag package's
// exported names.
const (
	IdentifierNotFound   = diag.IdentifierNotFound
	InvalidOp            = diag.InvalidOperation
	UnknownInfixOperator = diag.UnknownInfixOperator
	TypeMismatch         = diag.TypeMismatch
	Overflow             = diag.OverflowError
	DivByZero            = diag.DivisionByZero
	IndexOutOfRange      = diag.IndexOutOfRange
	FunctionNotFound     = diag.FunctionNotFound
)

// newErrorMsg builds an *object.Error with no source position, used where
// the evaluator has no token in hand (e.g. a synthesized operand).
func newErrorMsg(code diag.RuntimeErrorCode, format string, a ...interface{}) *object.Error {
	return &object.Error{Message: fmt.Sprintf("runtime_error[E%05d]: %s", int(code), fmt.Sprintf(format, a...))}
}

// newErrorAt builds an *object.Error whose message is prefixed with the
// triggering token's location, the same "[line:col] message" shape Go-Mix's
// CreateError produces (eval/evaluator.go), plus the numeric code the
// original source's RuntimeErrorCode::id() rendered.
func newErrorAt(code diag.RuntimeErrorCode, tok token.Token, format string, a ...interface{}) *object.Error {
	msg := fmt.Sprintf(format, a...)
	return &object.Error{Message: fmt.Sprintf("runtime_error[E%05d]: [%s] %s", int(code), tok.Location(), msg)}
}
