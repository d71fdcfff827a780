// Package ast defines the abstract syntax tree produced by the parser and
// walked by the evaluator.
//
// Expr and Stmt are closed sum types, following the same technique as the
// teacher's own syntax tree: an interface with an unexported marker method
// that only this package's concrete types can implement, so a type switch
// over either one is guaranteed exhaustive by construction rather than by
// convention. Every Expr also satisfies Stmt, mirroring the grammar's rule
// that any expression is a valid statement.
package ast

import "go.paintlang.dev/paint/internal/token"

// Node is the common interface implemented by every AST node.
type Node interface {
	// Start returns the first token associated with the node, for citing
	// in diagnostics.
	Start() token.Token

	// Kind returns the kind of node this is.
	Kind() Kind
}

// Expr is an expression node.
type Expr interface {
	Node
	exprNode() // Prevents accidental misuse as another node type.
}

// Stmt is a statement node.
type Stmt interface {
	Node
	stmtNode() // Prevents accidental misuse as another node type.
}

// Program is the root of the AST: the full sequence of top-level statements
// parsed from a source file.
type Program struct {
	Stmts []Stmt
}

// Start returns the first token in the program, or [token.EOF] if it is empty.
func (p Program) Start() token.Token {
	if len(p.Stmts) == 0 {
		return token.New(token.EOF, 1)
	}

	return p.Stmts[0].Start()
}

// Kind returns [KindProgram].
func (p Program) Kind() Kind {
	return KindProgram
}
