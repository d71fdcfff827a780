package ast

import "go.paintlang.dev/paint/internal/token"

// Identifier is a named reference to a binding in the environment.
type Identifier struct {
	Token token.Token
	Name  string
}

func (i Identifier) Start() token.Token { return i.Token }
func (i Identifier) Kind() Kind         { return KindIdentifier }
func (i Identifier) exprNode()          {}
func (i Identifier) stmtNode()          {}

// IntLiteral is an integer literal expression.
type IntLiteral struct {
	Token token.Token
	Value int64
}

func (n IntLiteral) Start() token.Token { return n.Token }
func (n IntLiteral) Kind() Kind         { return KindIntLiteral }
func (n IntLiteral) exprNode()          {}
func (n IntLiteral) stmtNode()          {}

// FloatLiteral is a floating point literal expression.
type FloatLiteral struct {
	Token token.Token
	Value float64
}

func (n FloatLiteral) Start() token.Token { return n.Token }
func (n FloatLiteral) Kind() Kind         { return KindFloatLiteral }
func (n FloatLiteral) exprNode()          {}
func (n FloatLiteral) stmtNode()          {}

// StringLiteral is a quoted string literal expression.
type StringLiteral struct {
	Token token.Token
	Value string
}

func (n StringLiteral) Start() token.Token { return n.Token }
func (n StringLiteral) Kind() Kind         { return KindStringLiteral }
func (n StringLiteral) exprNode()          {}
func (n StringLiteral) stmtNode()          {}

// BoolLiteral is a boolean literal expression. Its token's raw value is
// always normalised to the string "true" or "false".
type BoolLiteral struct {
	Token token.Token
	Value bool
}

func (n BoolLiteral) Start() token.Token { return n.Token }
func (n BoolLiteral) Kind() Kind         { return KindBoolLiteral }
func (n BoolLiteral) exprNode()          {}
func (n BoolLiteral) stmtNode()          {}

// NullLiteral is the 'null' literal expression.
type NullLiteral struct {
	Token token.Token
}

func (n NullLiteral) Start() token.Token { return n.Token }
func (n NullLiteral) Kind() Kind         { return KindNullLiteral }
func (n NullLiteral) exprNode()          {}
func (n NullLiteral) stmtNode()          {}

// BinaryExpr is an arithmetic or string-concatenation expression: lhs and
// rhs joined by Operand, one of '+', '-', '*', '/', '%'.
type BinaryExpr struct {
	LHS     Expr
	RHS     Expr
	Operand token.Token
}

func (n BinaryExpr) Start() token.Token { return n.LHS.Start() }
func (n BinaryExpr) Kind() Kind         { return KindBinaryExpr }
func (n BinaryExpr) exprNode()          {}
func (n BinaryExpr) stmtNode()          {}

// BoolExpr is a comparison or logical expression: lhs and rhs joined by
// Operand, one of '==', '!=', '>', '<', '>=', '<=', '&&', '||'.
type BoolExpr struct {
	LHS     Expr
	RHS     Expr
	Operand token.Token
}

func (n BoolExpr) Start() token.Token { return n.LHS.Start() }
func (n BoolExpr) Kind() Kind         { return KindBoolExpr }
func (n BoolExpr) exprNode()          {}
func (n BoolExpr) stmtNode()          {}

// Property is a single key/value pair inside an [ObjectLiteral]. Value is
// nil for a shorthand property, which re-uses an existing binding with the
// same name as Key at evaluation time.
type Property struct {
	Key   Identifier
	Value Expr
}

// ObjectLiteral is a brace-delimited set of properties. Evaluating one
// declares each property as a binding in the current environment.
type ObjectLiteral struct {
	Token      token.Token
	Properties []Property
}

func (n ObjectLiteral) Start() token.Token { return n.Token }
func (n ObjectLiteral) Kind() Kind         { return KindObjectLiteral }
func (n ObjectLiteral) exprNode()          {}
func (n ObjectLiteral) stmtNode()          {}

// CallExpr invokes Caller with Args. Args holds [Stmt] per the grammar's
// uniform argument-list machinery, but every element is in practice an
// [Expr] (every Expr also satisfies Stmt).
type CallExpr struct {
	Caller Expr
	Args   []Stmt
}

func (n CallExpr) Start() token.Token { return n.Caller.Start() }
func (n CallExpr) Kind() Kind         { return KindCallExpr }
func (n CallExpr) exprNode()          {}
func (n CallExpr) stmtNode()          {}

// MemberExpr is a '.'-chain access, e.g. `o.a.b`. Object is always an
// identifier; Member is either the terminal [Identifier] or a nested
// [MemberExpr] continuing the chain.
type MemberExpr struct {
	Object Identifier
	Member Expr
}

func (n MemberExpr) Start() token.Token { return n.Object.Start() }
func (n MemberExpr) Kind() Kind         { return KindMemberExpr }
func (n MemberExpr) exprNode()          {}
func (n MemberExpr) stmtNode()          {}

// Increment is a postfix '++' or '--' applied to Identifier.
type Increment struct {
	Identifier Identifier
	Operand    token.Token
}

func (n Increment) Start() token.Token { return n.Identifier.Start() }
func (n Increment) Kind() Kind         { return KindIncrement }
func (n Increment) exprNode()          {}
func (n Increment) stmtNode()          {}

// ReturnExpr wraps the expression following a 'return' keyword.
type ReturnExpr struct {
	Token token.Token
	Expr  Expr
}

func (n ReturnExpr) Start() token.Token { return n.Token }
func (n ReturnExpr) Kind() Kind         { return KindReturnExpr }
func (n ReturnExpr) exprNode()          {}
func (n ReturnExpr) stmtNode()          {}

// Value wraps an already-computed payload in the Expr slot of an
// environment binding. V holds a runtime value (defined in this module's
// value package), kept as `any` here to avoid an import cycle between ast
// and value. This is the Go-idiomatic stand-in for the original design's
// trick of making RuntimeVal itself an Expr variant: it lets the evaluator
// store a closure, a native function, or any value computed during
// recursion in the same environment slot an ordinary expression occupies.
type Value struct {
	Token token.Token
	V     any
}

func (n Value) Start() token.Token { return n.Token }
func (n Value) Kind() Kind         { return KindValue }
func (n Value) exprNode()          {}
func (n Value) stmtNode()          {}
