package ast

import "go.paintlang.dev/paint/internal/token"

// VarDeclaration binds Identifier to the value of Expr. Expr is nil for a
// bare `let x;` declaration. Constant declarations without an initializer
// are rejected by the parser, never reach here with a nil Expr.
type VarDeclaration struct {
	Identifier Identifier
	Expr       Expr
	Constant   bool
}

func (n VarDeclaration) Start() token.Token { return n.Identifier.Start() }
func (n VarDeclaration) Kind() Kind         { return KindVarDeclaration }
func (n VarDeclaration) stmtNode()          {}

// VarAssignment overwrites an existing binding's value. The parser also
// synthesises one of these as the first clause of a [ForLoop].
type VarAssignment struct {
	Identifier Identifier
	Expr       Expr
}

func (n VarAssignment) Start() token.Token { return n.Identifier.Start() }
func (n VarAssignment) Kind() Kind         { return KindVarAssignment }
func (n VarAssignment) stmtNode()          {}

// FunctionDeclaration binds Name to a callable with Params and Body.
// Evaluating one constructs a Function runtime value that closes over the
// environment active at the point of declaration.
type FunctionDeclaration struct {
	Name   Identifier
	Params []Identifier
	Body   []Stmt
}

func (n FunctionDeclaration) Start() token.Token { return n.Name.Start() }
func (n FunctionDeclaration) Kind() Kind         { return KindFunctionDeclaration }
func (n FunctionDeclaration) stmtNode()          {}

// ConditionalStmt is a single arm of a [ConditionalBlock]: an 'if' or 'elif'
// clause with a Condition, or the trailing 'else' clause with none.
//
// Condition is typed as the general Expr, not BoolExpr: the grammar's
// bool-expr production can reduce to a bare additive result when no
// comparison operator is present (e.g. `if (flag)` where flag already holds
// a boolean), so the parser cannot always construct a BoolExpr node here.
// The evaluator enforces at runtime that Condition evaluates to a Bool.
type ConditionalStmt struct {
	Condition Expr
	Body      []Stmt
	ClauseOf  ClauseKind
}

// ConditionalBlock is an 'if' / zero-or-more 'elif' / optional 'else' chain.
// Only the last Stmts entry may have a nil Condition.
type ConditionalBlock struct {
	Token token.Token
	Stmts []ConditionalStmt
}

func (n ConditionalBlock) Start() token.Token { return n.Token }
func (n ConditionalBlock) Kind() Kind         { return KindConditionalBlock }
func (n ConditionalBlock) stmtNode()          {}

// ForLoop is a C-style counting loop: Variable is assigned once before the
// first test of Condition, Body runs once per iteration, and Counter runs
// after each iteration before Condition is re-tested.
type ForLoop struct {
	Token     token.Token
	Variable  VarAssignment
	Condition Expr
	Counter   Stmt
	Body      []Stmt
}

func (n ForLoop) Start() token.Token { return n.Token }
func (n ForLoop) Kind() Kind         { return KindForLoop }
func (n ForLoop) stmtNode()          {}

// WhileLoop runs Body while Condition evaluates true.
type WhileLoop struct {
	Token     token.Token
	Condition Expr
	Body      []Stmt
}

func (n WhileLoop) Start() token.Token { return n.Token }
func (n WhileLoop) Kind() Kind         { return KindWhileLoop }
func (n WhileLoop) stmtNode()          {}
