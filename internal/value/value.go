// Package value implements Paint's runtime value types: the tagged union of
// values the evaluator produces from walking the AST.
package value

import (
	"strconv"

	"go.paintlang.dev/paint/internal/ast"
	"go.paintlang.dev/paint/internal/env"
	"go.paintlang.dev/paint/internal/token"
)

// RuntimeVal is the closed set of values the evaluator can produce.
type RuntimeVal interface {
	// Token returns the canonical token representation of the value, used
	// for string conversion and by [print] and boolean comparisons, which
	// compare and print raw token text rather than the Go value directly.
	Token() token.Token

	valueNode() // Prevents accidental misuse as another node type.
}

// Null is the absence of a value.
type Null struct{}

func (Null) Token() token.Token { return token.New(token.Null, 0) }
func (Null) valueNode()         {}

// Int is an integer runtime value.
type Int struct {
	Value int64
}

func (i Int) Token() token.Token {
	return token.NewRaw(token.Int, 0, strconv.FormatInt(i.Value, 10))
}
func (Int) valueNode() {}

// Float is a floating point runtime value.
type Float struct {
	Value float64
}

func (f Float) Token() token.Token {
	return token.NewRaw(token.Float, 0, strconv.FormatFloat(f.Value, 'f', 6, 64))
}
func (Float) valueNode() {}

// String is a string runtime value.
type String struct {
	Value string
}

func (s String) Token() token.Token {
	return token.NewRaw(token.String, 0, s.Value)
}
func (String) valueNode() {}

// Bool is a boolean runtime value. Its token's raw value is always exactly
// "true" or "false", the string boolean comparisons key off.
type Bool struct {
	Value bool
}

func (b Bool) Token() token.Token {
	raw := "false"
	if b.Value {
		raw = "true"
	}

	return token.NewRaw(token.True, 0, raw)
}
func (Bool) valueNode() {}

// Return wraps the value of a 'return' statement, short-circuiting the
// enclosing program/body loop when produced.
type Return struct {
	Value RuntimeVal
}

func (r Return) Token() token.Token {
	return r.Value.Token()
}
func (Return) valueNode() {}

// NativeFunction is a built-in whose implementation is Go code, e.g. print.
type NativeFunction struct {
	Name string
	Call func(args []RuntimeVal) (RuntimeVal, error)
}

func (n NativeFunction) Token() token.Token {
	return token.NewRaw(token.Identifier, 0, n.Name)
}
func (NativeFunction) valueNode() {}

// Function is a user-defined callable bundled with the environment it
// closed over at the point of declaration.
type Function struct {
	Decl ast.FunctionDeclaration
	Env  *env.Environment
}

func (f Function) Token() token.Token {
	return f.Decl.Name.Token
}
func (Function) valueNode() {}
