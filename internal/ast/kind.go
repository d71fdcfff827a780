package ast

// Kind is the kind of an AST node, as reported by [Node.Kind] and cited in
// evaluator diagnostics. Nodes have no Kind field, so AST dumps do not
// include it.
type Kind int

// AST node kinds.
const (
	KindInvalid Kind = iota
	KindProgram

	// Expressions.
	KindIdentifier
	KindIntLiteral
	KindFloatLiteral
	KindStringLiteral
	KindBoolLiteral
	KindNullLiteral
	KindBinaryExpr
	KindBoolExpr
	KindObjectLiteral
	KindCallExpr
	KindMemberExpr
	KindIncrement
	KindReturnExpr
	KindValue

	// Statements.
	KindVarDeclaration
	KindVarAssignment
	KindFunctionDeclaration
	KindConditionalBlock
	KindForLoop
	KindWhileLoop
)

var kindNames = map[Kind]string{
	KindInvalid:             "Invalid",
	KindProgram:             "Program",
	KindIdentifier:          "Identifier",
	KindIntLiteral:          "IntLiteral",
	KindFloatLiteral:        "FloatLiteral",
	KindStringLiteral:       "StringLiteral",
	KindBoolLiteral:         "BoolLiteral",
	KindNullLiteral:         "NullLiteral",
	KindBinaryExpr:          "BinaryExpr",
	KindBoolExpr:            "BoolExpr",
	KindObjectLiteral:       "ObjectLiteral",
	KindCallExpr:            "CallExpr",
	KindMemberExpr:          "MemberExpr",
	KindIncrement:           "Increment",
	KindReturnExpr:          "ReturnExpr",
	KindValue:               "Value",
	KindVarDeclaration:      "VarDeclaration",
	KindVarAssignment:       "VarAssignment",
	KindFunctionDeclaration: "FunctionDeclaration",
	KindConditionalBlock:    "ConditionalBlock",
	KindForLoop:             "ForLoop",
	KindWhileLoop:           "WhileLoop",
}

// String implements [fmt.Stringer] for [Kind].
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}

	return "Invalid"
}

// MarshalText implements [encoding.TextMarshaler] for [Kind] so an encoded
// Kind renders as its name rather than its raw int value.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// ClauseKind distinguishes the arms of a [ConditionalBlock].
type ClauseKind int

const (
	ClauseIf ClauseKind = iota
	ClauseElif
	ClauseElse
)

var clauseKindNames = map[ClauseKind]string{
	ClauseIf:   "If",
	ClauseElif: "Elif",
	ClauseElse: "Else",
}

// String implements [fmt.Stringer] for [ClauseKind].
func (k ClauseKind) String() string {
	if name, ok := clauseKindNames[k]; ok {
		return name
	}

	return "Invalid"
}

// MarshalText implements [encoding.TextMarshaler] for [ClauseKind].
func (k ClauseKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}
