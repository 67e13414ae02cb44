// Package eval implements the tree-walking evaluator: Eval(node, env) walks
// the AST produced by package parser and returns an object.Object, using a
// type switch over concrete ast.Node variants the way Go-Mix's own
// evaluator dispatches in practice
// (_examples/akashmaji946-go-mix/eval/evaluator_expressions.go), rather than
// the parallel NodeVisitor/Accept machinery Go-Mix also carries but its
// evaluator never actually calls through.
package eval

import (
	"math"

	"github.com/akashmaji946/mochi/ast"
	"github.com/akashmaji946/mochi/environment"
	"github.com/akashmaji946/mochi/object"
)

// Eval evaluates node in env and returns the resulting object.Object. It
// never panics on a well-formed AST: invalid operations surface as
// *object.Error values, not Go errors or host panics.
func Eval(node ast.Node, env *environment.Environment) object.Object {
	switch n := node.(type) {

	case *ast.Program:
		return evalProgram(n, env)

	case *ast.ExpressionStatement:
		return Eval(n.Expression, env)

	case *ast.BlockStatement:
		return evalBlockStatement(n, env)

	case *ast.DeclareStatement:
		return evalDeclareStatement(n, env)

	case *ast.ReturnStatement:
		var val object.Object = object.NULL
		if n.Value != nil {
			val = Eval(n.Value, env)
			if object.IsError(val) {
				return val
			}
		}
		return &object.Return{Value: val}

	case *ast.DeferStatement:
		// Deferred execution at block-exit time is out of scope: a `defer`
		// statement evaluates its expression immediately, once, in place.
		return Eval(n.Expression, env)

	case *ast.IntegerLiteral:
		return &object.Integer{Value: n.Value}

	case *ast.BooleanLiteral:
		return object.NativeBool(n.Value)

	case *ast.NullLiteral:
		return object.NULL

	case *ast.StringLiteral:
		return &object.String{Value: n.Content}

	case *ast.Identifier:
		return evalIdentifier(n, env)

	case *ast.PrefixExpression:
		right := Eval(n.Right, env)
		if object.IsError(right) {
			return right
		}
		return evalPrefixExpression(n.Operator, right)

	case *ast.InfixExpression:
		left := Eval(n.Left, env)
		if object.IsError(left) {
			return left
		}
		right := Eval(n.Right, env)
		if object.IsError(right) {
			return right
		}
		return evalInfixExpression(n.Operator, left, right)

	case *ast.IfExpression:
		return evalIfExpression(n, env)

	case *ast.FunctionLiteral:
		return &object.Function{Name: n.Name, Parameters: n.Parameters, Body: n.Body, Env: env}

	case *ast.CallExpression:
		return evalCallExpression(n, env)

	default:
		return newErrorMsg(InvalidOp, "unsupported AST node")
	}
}

// evalProgram evaluates the top-level statement list with program
// semantics: a Return unwraps to its inner value and stops the program;
// an Error stops it too.
func evalProgram(program *ast.Program, env *environment.Environment) object.Object {
	var result object.Object = object.NULL

	for _, stmt := range program.Statements {
		result = Eval(stmt, env)

		switch result := result.(type) {
		case *object.Return:
			return result.Value
		case *object.Error:
			return result
		}
	}

	return result
}

// evalBlockStatement evaluates a statement list with block semantics: both
// Return and Error short-circuit the block, but Return is passed up still
// wrapped so an enclosing function call or the program's own evaluation
// can unwrap it exactly once.
func evalBlockStatement(block *ast.BlockStatement, env *environment.Environment) object.Object {
	var result object.Object = object.NULL

	for _, stmt := range block.Statements {
		result = Eval(stmt, env)

		if result != nil {
			kind := result.Type()
			if kind == object.ReturnType || kind == object.ErrorType {
				return result
			}
		}
	}

	return result
}

// evalDeclareStatement binds name to the evaluated value (or Null for a
// declaration with no initializer) in the current frame. It yields Null,
// never the bound value wrapped in a Return sentinel — the original
// interpreter's DeclareStatement evaluation did wrap its result in Return,
// which leaked through program-level unwrapping; this is fixed here.
func evalDeclareStatement(stmt *ast.DeclareStatement, env *environment.Environment) object.Object {
	var val object.Object = object.NULL
	if stmt.Value != nil {
		val = Eval(stmt.Value, env)
		if object.IsError(val) {
			return val
		}
	}
	env.Set(stmt.Name.Name, val)
	return object.NULL
}

func evalIdentifier(node *ast.Identifier, env *environment.Environment) object.Object {
	if val, ok := env.Get(node.Name); ok {
		return val
	}
	return newErrorAt(IdentifierNotFound, node.Token, "identifier not found: %s", node.Name)
}

func evalIfExpression(ie *ast.IfExpression, env *environment.Environment) object.Object {
	cond := Eval(ie.Condition, env)
	if object.IsError(cond) {
		return cond
	}

	if object.IsTruthy(cond) {
		return Eval(ie.Consequence, env)
	} else if ie.Alternative != nil {
		return Eval(ie.Alternative, env)
	}
	return object.NULL
}

func evalCallExpression(ce *ast.CallExpression, env *environment.Environment) object.Object {
	callee := Eval(ce.Callee, env)
	if object.IsError(callee) {
		return callee
	}

	fn, ok := callee.(*object.Function)
	if !ok {
		return newErrorAt(FunctionNotFound, ce.Token, "not a function: %s", callee.Type())
	}

	args := make([]object.Object, 0, len(ce.Arguments))
	for _, a := range ce.Arguments {
		val := Eval(a, env)
		if object.IsError(val) {
			return val
		}
		args = append(args, val)
	}

	if len(args) != len(fn.Parameters) {
		return newErrorAt(FunctionNotFound, ce.Token, "wrong number of arguments: expected %d, got %d", len(fn.Parameters), len(args))
	}

	fnEnv, ok := fn.Env.(*environment.Environment)
	if !ok {
		return newErrorAt(FunctionNotFound, ce.Token, "function has no usable closure environment")
	}
	callEnv := environment.NewEnclosed(fnEnv)
	for i, param := range fn.Parameters {
		callEnv.Set(param.Identifier.Name, args[i])
	}

	result := Eval(fn.Body, callEnv)
	if ret, ok := result.(*object.Return); ok {
		return ret.Value
	}
	return result
}

// evalPrefixExpression dispatches a unary operator to its operand's type.
func evalPrefixExpression(operator string, right object.Object) object.Object {
	switch operator {
	case "!":
		return evalBangOperator(right)
	case "-":
		return evalMinusOperator(right)
	case "++":
		return evalStepOperator(right, 1)
	case "--":
		return evalStepOperator(right, -1)
	case "..":
		return evalPrefixRangeOperator(right, false)
	case "..=":
		return evalPrefixRangeOperator(right, true)
	default:
		return newErrorMsg(InvalidOp, "unknown prefix operator: %s", operator)
	}
}

// evalBangOperator: Boolean negates, Integer is true iff zero, Null is
// true, anything else is an error.
func evalBangOperator(right object.Object) object.Object {
	switch v := right.(type) {
	case *object.Boolean:
		return object.NativeBool(!v.Value)
	case *object.Integer:
		return object.NativeBool(v.Value == 0)
	case *object.Null:
		return object.TRUE
	default:
		return newErrorMsg(InvalidOp, "invalid operation: !%s", right.Type())
	}
}

// evalMinusOperator: Integer negates (no wraparound). `-null` is an
// InvalidOperation error — the original interpreter returned a truthy value
// here, which spec review flagged as a bug; this implementation reports the
// error instead.
func evalMinusOperator(right object.Object) object.Object {
	switch v := right.(type) {
	case *object.Integer:
		if v.Value == math.MinInt64 {
			return newErrorMsg(Overflow, "integer overflow negating %d", v.Value)
		}
		return &object.Integer{Value: -v.Value}
	default:
		return newErrorMsg(InvalidOp, "invalid operation: -%s", right.Type())
	}
}

func evalStepOperator(right object.Object, delta int64) object.Object {
	v, ok := right.(*object.Integer)
	if !ok {
		return newErrorMsg(InvalidOp, "invalid operation: step on %s", right.Type())
	}
	if delta > 0 && v.Value == math.MaxInt64 {
		return newErrorMsg(Overflow, "integer overflow incrementing %d", v.Value)
	}
	if delta < 0 && v.Value == math.MinInt64 {
		return newErrorMsg(Overflow, "integer overflow decrementing %d", v.Value)
	}
	return &object.Integer{Value: v.Value + delta}
}

// evalPrefixRangeOperator handles prefix `..n` / `..=n`, which coerce to the
// infix form `0..n` / `0..=n`: the count `n - 0` or `n - 0 + 1`.
func evalPrefixRangeOperator(right object.Object, inclusive bool) object.Object {
	v, ok := right.(*object.Integer)
	if !ok {
		return newErrorMsg(InvalidOp, "invalid operation: range on %s", right.Type())
	}
	if inclusive {
		return &object.Integer{Value: v.Value + 1}
	}
	return &object.Integer{Value: v.Value}
}
