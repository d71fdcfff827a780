package env_test

import (
	"testing"

	"go.followtheprocess.codes/test"
	"go.paintlang.dev/paint/internal/ast"
	"go.paintlang.dev/paint/internal/env"
	"go.paintlang.dev/paint/internal/token"
)

func intLit(n int64) ast.Expr {
	return ast.IntLiteral{Token: token.New(token.Int, 1), Value: n}
}

func TestDeclareAndLookup(t *testing.T) {
	e := env.New()

	err := e.Declare("x", intLit(1), false)
	test.Ok(t, err)

	got, ok := e.Lookup("x")
	test.True(t, ok)
	test.Equal(t, got, intLit(1))
}

func TestDeclareRejectsDuplicate(t *testing.T) {
	e := env.New()

	test.Ok(t, e.Declare("x", intLit(1), false))

	err := e.Declare("x", intLit(2), false)
	test.Err(t, err)
}

func TestAssignRejectsConst(t *testing.T) {
	e := env.New()

	test.Ok(t, e.Declare("c", intLit(5), true))

	err := e.Assign("c", intLit(6))
	test.Err(t, err)
}

func TestAssignRejectsUndeclared(t *testing.T) {
	e := env.New()

	err := e.Assign("nope", intLit(1))
	test.Err(t, err)
}

func TestAssignOverwritesExpr(t *testing.T) {
	e := env.New()

	test.Ok(t, e.Declare("x", intLit(1), false))
	test.Ok(t, e.Assign("x", intLit(2)))

	got, ok := e.Lookup("x")
	test.True(t, ok)
	test.Equal(t, got, intLit(2))
}

func TestSearchFailsOnUndeclared(t *testing.T) {
	e := env.New()

	_, err := e.Search("nope")
	test.Err(t, err)
}

func TestRestoreScopeTruncates(t *testing.T) {
	e := env.New()

	before := e.Size()

	test.Ok(t, e.Declare("a", intLit(1), false))
	test.Ok(t, e.Declare("b", intLit(2), false))

	e.RestoreScope(before)

	test.Equal(t, e.Size(), before)

	_, ok := e.Lookup("a")
	test.True(t, !ok)
}
