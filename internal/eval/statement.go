package eval

import (
	"go.paintlang.dev/paint/internal/ast"
	"go.paintlang.dev/paint/internal/value"
)

func (e *Evaluator) evalVarDeclaration(decl ast.VarDeclaration) value.RuntimeVal {
	bound := e.bindExpr(decl.Expr)

	if err := e.env.Declare(decl.Identifier.Name, bound, decl.Constant); err != nil {
		e.reporter.Report(decl.Identifier.Token, err.Error())
	}

	return value.Null{}
}

func (e *Evaluator) evalVarAssignment(assign ast.VarAssignment) value.RuntimeVal {
	bound := e.bindExpr(assign.Expr)

	if err := e.env.Assign(assign.Identifier.Name, bound); err != nil {
		e.reporter.Report(assign.Identifier.Token, err.Error())
	}

	return value.Null{}
}

// evalFunctionDeclaration binds decl.Name to a Function closing over the
// environment active right now. Function bindings are constant: a function
// cannot be reassigned once declared.
func (e *Evaluator) evalFunctionDeclaration(decl ast.FunctionDeclaration) value.RuntimeVal {
	fn := value.Function{Decl: decl, Env: e.env}
	bound := ast.Value{Token: decl.Name.Token, V: fn}

	if err := e.env.Declare(decl.Name.Name, bound, true); err != nil {
		e.reporter.Report(decl.Name.Token, err.Error())
	}

	return value.Null{}
}

// evalConditionalBlock runs the first clause whose Condition is true (or
// the trailing else clause, which has a nil Condition), and Null if no
// clause matches.
func (e *Evaluator) evalConditionalBlock(block ast.ConditionalBlock) value.RuntimeVal {
	for _, clause := range block.Stmts {
		if clause.Condition != nil && !e.truthy(clause.Condition) {
			continue
		}

		return e.evalBody(clause.Body)
	}

	return value.Null{}
}

// evalForLoop runs a C-style counting loop.
//
// Per the open question of what happens to the loop variable afterwards: if
// Variable's name was already bound before the loop, the loop reuses that
// binding via Assign, so it keeps whatever value the loop left it at once
// the loop exits (no new stack entry was ever added); otherwise the
// loop-introduced binding is removed entirely via RestoreScope, so it does
// not survive past the loop.
func (e *Evaluator) evalForLoop(loop ast.ForLoop) value.RuntimeVal {
	name := loop.Variable.Identifier.Name

	_, preExisting := e.env.Lookup(name)
	size := e.env.Size()

	bound := e.bindExpr(loop.Variable.Expr)

	if preExisting {
		if err := e.env.Assign(name, bound); err != nil {
			e.reporter.Report(loop.Variable.Identifier.Token, err.Error())
		}
	} else if err := e.env.Declare(name, bound, false); err != nil {
		e.reporter.Report(loop.Variable.Identifier.Token, err.Error())
	}

	var result value.RuntimeVal = value.Null{}

	for e.truthy(loop.Condition) {
		bodyResult := e.evalBody(loop.Body)
		if isReturn(bodyResult) {
			result = bodyResult
			break
		}

		e.evalStmt(loop.Counter)
	}

	if !preExisting {
		e.env.RestoreScope(size)
	}

	return result
}

func (e *Evaluator) evalWhileLoop(loop ast.WhileLoop) value.RuntimeVal {
	for e.truthy(loop.Condition) {
		result := e.evalBody(loop.Body)
		if isReturn(result) {
			return result
		}
	}

	return value.Null{}
}
