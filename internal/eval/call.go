package eval

import (
	"go.paintlang.dev/paint/internal/ast"
	"go.paintlang.dev/paint/internal/token"
	"go.paintlang.dev/paint/internal/value"
)

// evalCallExpr evaluates every argument, resolves the callee, and invokes
// it: a [value.NativeFunction] directly, a [value.Function] via
// [Evaluator.callFunction].
func (e *Evaluator) evalCallExpr(call ast.CallExpr) value.RuntimeVal {
	ident, ok := call.Caller.(ast.Identifier)
	if !ok {
		e.reporter.Report(call.Caller.Start(), "Call target must be an identifier")
	}

	callee := e.evalIdentifier(ident)

	args := make([]value.RuntimeVal, len(call.Args))

	for i, argStmt := range call.Args {
		argExpr, ok := argStmt.(ast.Expr)
		if !ok {
			e.reporter.Report(argStmt.Start(), "Call argument must be an expression")
		}

		args[i] = e.evalExpr(argExpr)
	}

	switch fn := callee.(type) {
	case value.NativeFunction:
		result, err := fn.Call(args)
		if err != nil {
			e.reporter.Report(ident.Token, err.Error())
		}

		return result
	case value.Function:
		return e.callFunction(ident.Token, fn, args)
	default:
		e.reporter.Reportf(ident.Token, "%q is not callable", ident.Name)
		panic("unreachable: Reportf never returns")
	}
}

// callFunction binds args to fn's parameters inside its closure environment
// and evaluates its body as a call frame (see [Evaluator.evalProgram]).
//
// A parameter name already bound in the closure environment is assigned
// rather than declared, so a function already called once (and so already
// holding bindings for its own parameter names) can be called again without
// "already declared" errors.
func (e *Evaluator) callFunction(tok token.Token, fn value.Function, args []value.RuntimeVal) value.RuntimeVal {
	params := fn.Decl.Params
	if len(args) != len(params) {
		e.reporter.Reportf(tok, "Expected %d arguments, got %d", len(params), len(args))
	}

	for i, param := range params {
		argVal := ast.Value{Token: param.Token, V: args[i]}

		if _, ok := fn.Env.Lookup(param.Name); ok {
			if err := fn.Env.Assign(param.Name, argVal); err != nil {
				e.reporter.Report(param.Token, err.Error())
			}
		} else if err := fn.Env.Declare(param.Name, argVal, false); err != nil {
			e.reporter.Report(param.Token, err.Error())
		}
	}

	callEval := &Evaluator{env: fn.Env, reporter: e.reporter}

	return callEval.evalProgram(fn.Decl.Body)
}

// evalMemberExpr resolves a '.'-chain. It looks up the head identifier's
// raw bound expression directly (not through [Evaluator.evalIdentifier],
// which would trigger the side-effecting ObjectLiteral evaluation instead
// of exposing its static shape) and walks the chain by matching property
// names.
func (e *Evaluator) evalMemberExpr(m ast.MemberExpr) value.RuntimeVal {
	expr, err := e.env.Search(m.Object.Name)
	if err != nil {
		e.reporter.Report(m.Object.Token, err.Error())
	}

	return e.resolveMember(expr, m.Member, m.Object.Token)
}

// resolveMember descends one level of a '.'-chain: obj must be the static
// [ast.ObjectLiteral] bound at this point in the chain, and member is
// either the terminal [ast.Identifier] or the nested [ast.MemberExpr]
// continuing it.
func (e *Evaluator) resolveMember(obj ast.Expr, member ast.Expr, tok token.Token) value.RuntimeVal {
	objLit, ok := obj.(ast.ObjectLiteral)
	if !ok {
		e.reporter.Report(tok, "Member access on a non-object value")
	}

	switch m := member.(type) {
	case ast.Identifier:
		prop, ok := findProperty(objLit, m.Name)
		if !ok {
			e.reporter.Reportf(m.Token, "Unresolved member %q", m.Name)
		}

		if prop.Value == nil {
			// Shorthand: re-look-up the key in the environment.
			return e.evalIdentifier(m)
		}

		return e.evalExpr(prop.Value)
	case ast.MemberExpr:
		prop, ok := findProperty(objLit, m.Object.Name)
		if !ok {
			e.reporter.Reportf(m.Object.Token, "Unresolved member %q", m.Object.Name)
		}

		return e.resolveMember(prop.Value, m.Member, m.Object.Token)
	default:
		e.reporter.Report(tok, "Invalid member expression")
		panic("unreachable: Reportf never returns")
	}
}

func findProperty(obj ast.ObjectLiteral, name string) (ast.Property, bool) {
	for _, p := range obj.Properties {
		if p.Key.Name == name {
			return p, true
		}
	}

	return ast.Property{}, false
}
