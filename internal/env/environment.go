// Package env implements Paint's Environment: an ordered stack of variable
// bindings, not a map-per-scope chain.
//
// Block scoping is modelled by pushing bindings onto a single flat list and
// truncating it back to a remembered depth on block exit, rather than by
// nesting one environment inside another. A name may only appear once
// anywhere in the currently-visible stack; there is no shadowing, only
// sequential scope restoration. This is a deliberate, simpler alternative
// to a nested-map-per-scope environment, and must not be "improved" into
// one.
//
// Each binding stores an [ast.Expr] rather than a runtime value, and
// looking up an identifier evaluates whatever is bound to it. The evaluator
// binds an [ast.ObjectLiteral] unevaluated, so member-expression resolution
// can still inspect its AST shape, and wraps every other computed value
// (including a closure or native function) in an [ast.Value].
package env

import (
	"fmt"

	"go.paintlang.dev/paint/internal/ast"
)

// binding is a single entry in the scope stack.
type binding struct {
	name     string
	expr     ast.Expr
	constant bool
}

// Environment is Paint's scope stack.
type Environment struct {
	bindings []binding
}

// New returns a new, empty [Environment].
func New() *Environment {
	return &Environment{}
}

// Declare appends a new binding. It fails if name is already declared
// anywhere in the currently-visible stack.
func (e *Environment) Declare(name string, expr ast.Expr, constant bool) error {
	if _, ok := e.indexOf(name); ok {
		return fmt.Errorf("variable %q already declared", name)
	}

	e.bindings = append(e.bindings, binding{name: name, expr: expr, constant: constant})

	return nil
}

// Assign overwrites the bound expression of the last binding with the given
// name. It fails if no such binding exists, or if it was declared constant.
func (e *Environment) Assign(name string, expr ast.Expr) error {
	idx, ok := e.indexOf(name)
	if !ok {
		return fmt.Errorf("cannot assign to undeclared variable %q", name)
	}

	if e.bindings[idx].constant {
		return fmt.Errorf("cannot reassign constant variable %q", name)
	}

	e.bindings[idx].expr = expr

	return nil
}

// Lookup returns the expression bound to name, if any.
func (e *Environment) Lookup(name string) (ast.Expr, bool) {
	idx, ok := e.indexOf(name)
	if !ok {
		return nil, false
	}

	return e.bindings[idx].expr, true
}

// Search is [Environment.Lookup], but fails loudly when name is undeclared.
func (e *Environment) Search(name string) (ast.Expr, error) {
	expr, ok := e.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("undeclared variable %q", name)
	}

	return expr, nil
}

// Size returns the current stack depth, for saving and later restoring a
// block's scope.
func (e *Environment) Size() int {
	return len(e.bindings)
}

// RestoreScope truncates the stack back to its first n entries, discarding
// everything declared since the matching [Environment.Size] call.
func (e *Environment) RestoreScope(n int) {
	e.bindings = e.bindings[:n]
}

// indexOf searches the stack from the end. Names are unique across the
// whole stack (no shadowing), so there is at most one match regardless of
// search direction; searching backwards just reads slightly more naturally
// next to RestoreScope's truncation from the end.
func (e *Environment) indexOf(name string) (int, bool) {
	for i := len(e.bindings) - 1; i >= 0; i-- {
		if e.bindings[i].name == name {
			return i, true
		}
	}

	return 0, false
}
