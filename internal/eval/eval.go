// Package eval implements Paint's tree-walking evaluator: a depth-first
// walk of the AST that mutates an [env.Environment] and produces one
// [value.RuntimeVal] per statement.
package eval

import (
	"go.paintlang.dev/paint/internal/ast"
	"go.paintlang.dev/paint/internal/env"
	"go.paintlang.dev/paint/internal/errs"
	"go.paintlang.dev/paint/internal/value"
)

// Evaluator walks an [ast.Program] against a single [env.Environment].
type Evaluator struct {
	env      *env.Environment
	reporter *errs.Reporter
}

// New returns a new [Evaluator] operating on environment, reporting fatal
// errors through reporter.
func New(environment *env.Environment, reporter *errs.Reporter) *Evaluator {
	return &Evaluator{env: environment, reporter: reporter}
}

// EvalProgram evaluates program to completion and returns its result: the
// value of the last statement, or the unwrapped value of the first 'return'
// encountered at the top level.
func (e *Evaluator) EvalProgram(program ast.Program) value.RuntimeVal {
	return e.evalProgram(program.Stmts)
}

// evalProgram evaluates a statement sequence as a call frame: declarations
// persist in the environment after it returns (no scope restoration), and
// a 'return' value short-circuits and is unwrapped immediately. This is
// used for the top-level program and for user function bodies, which share
// exactly this evaluation procedure.
func (e *Evaluator) evalProgram(stmts []ast.Stmt) value.RuntimeVal {
	var result value.RuntimeVal = value.Null{}

	for _, stmt := range stmts {
		result = e.evalStmt(stmt)

		if ret, ok := result.(value.Return); ok {
			return ret.Value
		}
	}

	return result
}

// evalBody evaluates a block's statements (the body of an if/elif/else
// clause, a for-loop, or a while-loop), restoring the environment to its
// pre-block size on exit. Unlike [Evaluator.evalProgram], a 'return' value
// is passed upward still wrapped, so it keeps propagating through nested
// blocks until it reaches the enclosing call frame.
func (e *Evaluator) evalBody(stmts []ast.Stmt) value.RuntimeVal {
	size := e.env.Size()

	var result value.RuntimeVal = value.Null{}

	for _, stmt := range stmts {
		result = e.evalStmt(stmt)

		if isReturn(result) {
			break
		}
	}

	e.env.RestoreScope(size)

	return result
}

// evalStmt dispatches a statement to its evaluation. Concrete statement
// kinds are handled explicitly; anything else is an [ast.Expr], which is
// also a valid statement per the grammar.
func (e *Evaluator) evalStmt(stmt ast.Stmt) value.RuntimeVal {
	switch node := stmt.(type) {
	case ast.VarDeclaration:
		return e.evalVarDeclaration(node)
	case ast.VarAssignment:
		return e.evalVarAssignment(node)
	case ast.FunctionDeclaration:
		return e.evalFunctionDeclaration(node)
	case ast.ConditionalBlock:
		return e.evalConditionalBlock(node)
	case ast.ForLoop:
		return e.evalForLoop(node)
	case ast.WhileLoop:
		return e.evalWhileLoop(node)
	case ast.Expr:
		return e.evalExpr(node)
	default:
		e.reporter.Reportf(stmt.Start(), "Cannot evaluate statement of kind %s", stmt.Kind())
		panic("unreachable: Reportf never returns")
	}
}

// isReturn reports whether val is the propagating result of a 'return'.
func isReturn(val value.RuntimeVal) bool {
	_, ok := val.(value.Return)
	return ok
}

// kindName returns the name of val's dynamic runtime kind, for error
// messages that cite both operand types.
func kindName(val value.RuntimeVal) string {
	switch val.(type) {
	case value.Int:
		return "Int"
	case value.Float:
		return "Float"
	case value.String:
		return "String"
	case value.Bool:
		return "Bool"
	case value.Null:
		return "Null"
	case value.Function:
		return "Function"
	case value.NativeFunction:
		return "NativeFunction"
	default:
		return "Unknown"
	}
}

// bindExpr prepares expr for storage as an environment binding.
//
// An [ast.ObjectLiteral] is kept exactly as written, unevaluated: member
// access needs to walk its static property list, not the side-effecting
// result of evaluating it. Everything else is evaluated immediately and
// wrapped in an [ast.Value], so that a self-referential assignment like
// `n = n + 1` overwrites the old value instead of recursing into itself the
// next time n is looked up.
func (e *Evaluator) bindExpr(expr ast.Expr) ast.Expr {
	if expr == nil {
		return ast.NullLiteral{}
	}

	if obj, ok := expr.(ast.ObjectLiteral); ok {
		return obj
	}

	return ast.Value{Token: expr.Start(), V: e.evalExpr(expr)}
}
