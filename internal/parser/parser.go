// Package parser implements Paint's recursive-descent parser, turning a
// token stream into an [ast.Program].
//
// There is no error recovery and no partial-AST fault tolerance: the first
// malformed construct reports through the shared [errs.Reporter] and
// terminates the process, matching the single fatal-diagnostic-channel
// design used throughout this interpreter.
package parser

import (
	"strconv"

	"go.paintlang.dev/paint/internal/ast"
	"go.paintlang.dev/paint/internal/errs"
	"go.paintlang.dev/paint/internal/token"
)

// Parser parses a fixed token stream into an [ast.Program].
type Parser struct {
	reporter *errs.Reporter
	tokens   []token.Token
	pos      int
}

// New returns a new [Parser] over tokens, reporting fatal errors through
// reporter. tokens must end with exactly one [token.EOF], as produced by
// [internal/lexer.Lexer.Tokenize].
func New(tokens []token.Token, reporter *errs.Reporter) *Parser {
	return &Parser{reporter: reporter, tokens: tokens}
}

// Parse parses the entire token stream into a [ast.Program].
func (p *Parser) Parse() ast.Program {
	var stmts []ast.Stmt

	for !p.current().Is(token.EOF) {
		stmts = append(stmts, p.parseStatement())
	}

	return ast.Program{Stmts: stmts}
}

// current returns the token under the cursor.
func (p *Parser) current() token.Token {
	return p.peek(0)
}

// peek looks n tokens ahead of the cursor, clamping to the bounds of the
// stream. Negative n is allowed, to cite a previously consumed token in a
// diagnostic.
func (p *Parser) peek(n int) token.Token {
	idx := p.pos + n

	switch {
	case idx < 0:
		idx = 0
	case idx >= len(p.tokens):
		idx = len(p.tokens) - 1
	}

	return p.tokens[idx]
}

// pop returns the current token and advances the cursor, unless already at
// the final (EOF) token.
func (p *Parser) pop() token.Token {
	tok := p.current()

	if p.pos < len(p.tokens)-1 {
		p.pos++
	}

	return tok
}

// expect pops the current token if it is of kind, otherwise reports a fatal
// diagnostic citing msg.
func (p *Parser) expect(kind token.Kind, msg string) token.Token {
	if !p.current().Is(kind) {
		p.reporter.Report(p.current(), msg)
	}

	return p.pop()
}

// adjacentAt reports whether the tokens at offset and offset+1 from the
// cursor are a and b respectively, the adjacency test the grammar uses to
// recognise compound operators without the lexer ever merging them.
func (p *Parser) adjacentAt(offset int, a, b token.Kind) bool {
	return p.peek(offset).Is(a) && p.peek(offset+1).Is(b)
}

// isAdjacent is [Parser.adjacentAt] from the current token.
func (p *Parser) isAdjacent(a, b token.Kind) bool {
	return p.adjacentAt(0, a, b)
}

// synthesize consumes the two adjacent tokens forming a compound operator
// and returns a new token of kind at their shared line.
func (p *Parser) synthesize(kind token.Kind) token.Token {
	line := p.current().Line

	p.pop()
	p.pop()

	return token.New(kind, line)
}

// parseStatement dispatches on the current token's kind.
func (p *Parser) parseStatement() ast.Stmt {
	switch p.current().Kind {
	case token.Let, token.Const:
		return p.parseVarDeclaration()
	case token.Fn:
		return p.parseFunctionDeclaration()
	case token.If:
		return p.parseConditionalBlock()
	case token.For:
		return p.parseForLoop()
	case token.While:
		return p.parseWhileLoop()
	default:
		return p.parseAssignmentExpr()
	}
}

// parseBody parses a brace-delimited statement list.
func (p *Parser) parseBody() []ast.Stmt {
	p.expect(token.LBrace, "Expected '{' to start block")

	var stmts []ast.Stmt
	for !p.current().Is(token.RBrace) && !p.current().Is(token.EOF) {
		stmts = append(stmts, p.parseStatement())
	}

	p.expect(token.RBrace, "Expected '}' to close block")

	return stmts
}

// parseVarDeclaration parses `(let|const) IDENT ('=' object-expr)? ';'?`.
func (p *Parser) parseVarDeclaration() ast.Stmt {
	keywordTok := p.pop()
	constant := keywordTok.Kind == token.Const

	identTok := p.expect(token.Identifier, "Expected identifier after 'let'/'const'")
	ident := ast.Identifier{Token: identTok, Name: identTok.Raw}

	var expr ast.Expr

	switch {
	case p.current().Is(token.Assign):
		p.pop()
		expr = p.parseObjectExpr()
	case constant:
		p.reporter.Report(identTok, "Const declaration requires an initializer")
	}

	if p.current().Is(token.Semicolon) {
		p.pop()
	}

	return ast.VarDeclaration{Identifier: ident, Expr: expr, Constant: constant}
}

// parseFunctionDeclaration parses `fn IDENT '(' (IDENT (',' IDENT)*)? ')' body`.
func (p *Parser) parseFunctionDeclaration() ast.Stmt {
	p.pop() // 'fn'

	nameTok := p.expect(token.Identifier, "Expected function name after 'fn'")
	name := ast.Identifier{Token: nameTok, Name: nameTok.Raw}

	p.expect(token.LParen, "Expected '(' after function name")

	var params []ast.Identifier

	for !p.current().Is(token.RParen) {
		argExpr := p.parseObjectExpr()

		ident, ok := argExpr.(ast.Identifier)
		if !ok {
			p.reporter.Report(argExpr.Start(), "Function parameters must be of type Identifier")
		}

		params = append(params, ident)

		if p.current().Is(token.Comma) {
			p.pop()
		}
	}

	p.pop() // ')'

	body := p.parseBody()

	return ast.FunctionDeclaration{Name: name, Params: params, Body: body}
}

// parseConditionalBlock parses an 'if' / 'elif'* / 'else'? chain into one
// [ast.ConditionalBlock].
func (p *Parser) parseConditionalBlock() ast.Stmt {
	tok := p.current()

	clauses := []ast.ConditionalStmt{p.parseConditionalClause(ast.ClauseIf)}

	for p.current().Is(token.Elif) {
		clauses = append(clauses, p.parseConditionalClause(ast.ClauseElif))
	}

	if p.current().Is(token.Else) {
		p.pop()
		body := p.parseBody()
		clauses = append(clauses, ast.ConditionalStmt{Body: body, ClauseOf: ast.ClauseElse})
	}

	return ast.ConditionalBlock{Token: tok, Stmts: clauses}
}

// parseConditionalClause parses a single `'if'|'elif' '(' bool-expr ')' body`.
func (p *Parser) parseConditionalClause(kind ast.ClauseKind) ast.ConditionalStmt {
	p.pop() // 'if' / 'elif'

	p.expect(token.LParen, "Expected '(' after 'if'/'elif'")
	cond := p.parseBoolExpr()
	p.expect(token.RParen, "Expected ')' after condition")

	body := p.parseBody()

	return ast.ConditionalStmt{Condition: cond, Body: body, ClauseOf: kind}
}

// parseForLoop parses `for '(' assignment-expr ',' bool-expr ',' expr ')' body`.
func (p *Parser) parseForLoop() ast.Stmt {
	tok := p.pop() // 'for'

	p.expect(token.LParen, "Expected '(' after 'for'")

	initStmt := p.parseAssignmentExpr()

	variable, ok := initStmt.(ast.VarAssignment)
	if !ok {
		p.reporter.Report(tok, "For-loop initializer must be an assignment")
	}

	p.expect(token.Comma, "Expected ',' after for-loop initializer")
	cond := p.parseBoolExpr()
	p.expect(token.Comma, "Expected ',' after for-loop condition")

	counter, ok := p.parseAdditive().(ast.Stmt)
	if !ok {
		p.reporter.Report(tok, "For-loop counter must be an expression")
	}

	p.expect(token.RParen, "Expected ')' to close for-loop header")

	body := p.parseBody()

	return ast.ForLoop{Token: tok, Variable: variable, Condition: cond, Counter: counter, Body: body}
}

// parseWhileLoop parses `while '(' bool-expr ')' body`.
func (p *Parser) parseWhileLoop() ast.Stmt {
	tok := p.pop() // 'while'

	p.expect(token.LParen, "Expected '(' after 'while'")
	cond := p.parseBoolExpr()
	p.expect(token.RParen, "Expected ')' after while condition")

	body := p.parseBody()

	return ast.WhileLoop{Token: tok, Condition: cond, Body: body}
}

// parseAssignmentExpr parses an object expression, reinterpreting it as a
// [ast.VarAssignment] if it turns out to be an identifier followed by '='.
func (p *Parser) parseAssignmentExpr() ast.Stmt {
	expr := p.parseObjectExpr()

	if ident, ok := expr.(ast.Identifier); ok && p.current().Is(token.Assign) {
		p.pop()

		rhs := p.parseObjectExpr()

		if p.current().Is(token.Semicolon) {
			p.pop()
		}

		return ast.VarAssignment{Identifier: ident, Expr: rhs}
	}

	if p.current().Is(token.Semicolon) {
		p.pop()
	}

	return expr.(ast.Stmt)
}

// parseObjectExpr parses a brace-delimited property list, or falls through
// to a boolean expression.
func (p *Parser) parseObjectExpr() ast.Expr {
	if !p.current().Is(token.LBrace) {
		return p.parseBoolExpr()
	}

	tok := p.pop() // '{'

	var props []ast.Property

	for !p.current().Is(token.RBrace) {
		keyTok := p.expect(token.Identifier, "Expected identifier as object property key")
		key := ast.Identifier{Token: keyTok, Name: keyTok.Raw}

		var value ast.Expr
		if p.current().Is(token.Assign) {
			p.pop()
			value = p.parseObjectExpr()
		}

		props = append(props, ast.Property{Key: key, Value: value})

		if p.current().Is(token.Comma) {
			p.pop()
		}
	}

	p.pop() // '}'

	return ast.ObjectLiteral{Token: tok, Properties: props}
}

// parseBoolExpr parses a comparison and/or logical expression, recognising
// each compound operator class at most once per side, then nesting '&&'/'||'
// right-associatively.
func (p *Parser) parseBoolExpr() ast.Expr {
	lhs := p.parseAdditive()

	switch {
	case p.isAdjacent(token.Greater, token.Assign):
		op := p.synthesize(token.GreaterEqual)
		lhs = ast.BoolExpr{LHS: lhs, RHS: p.parseAdditive(), Operand: op}
	case p.isAdjacent(token.Less, token.Assign):
		op := p.synthesize(token.LessEqual)
		lhs = ast.BoolExpr{LHS: lhs, RHS: p.parseAdditive(), Operand: op}
	case p.isAdjacent(token.Assign, token.Assign):
		op := p.synthesize(token.Equal)
		lhs = ast.BoolExpr{LHS: lhs, RHS: p.parseAdditive(), Operand: op}
	case p.isAdjacent(token.Bang, token.Assign):
		op := p.synthesize(token.NotEqual)
		lhs = ast.BoolExpr{LHS: lhs, RHS: p.parseAdditive(), Operand: op}
	case p.current().Is(token.Greater, token.Less):
		op := p.pop()
		lhs = ast.BoolExpr{LHS: lhs, RHS: p.parseAdditive(), Operand: op}
	}

	switch {
	case p.isAdjacent(token.Amp, token.Amp):
		op := p.synthesize(token.And)
		lhs = ast.BoolExpr{LHS: lhs, RHS: p.parseBoolExpr(), Operand: op}
	case p.isAdjacent(token.Pipe, token.Pipe):
		op := p.synthesize(token.Or)
		lhs = ast.BoolExpr{LHS: lhs, RHS: p.parseBoolExpr(), Operand: op}
	}

	return lhs
}

// parseAdditive parses a left-associative '+'/'-' chain, or a postfix
// '++'/'--' on a bare identifier.
func (p *Parser) parseAdditive() ast.Expr {
	if p.current().Is(token.Identifier) &&
		(p.adjacentAt(1, token.Plus, token.Plus) || p.adjacentAt(1, token.Minus, token.Minus)) {
		identTok := p.pop()
		ident := ast.Identifier{Token: identTok, Name: identTok.Raw}

		kind := token.Decrement
		if p.current().Is(token.Plus) {
			kind = token.Increment
		}

		return ast.Increment{Identifier: ident, Operand: p.synthesize(kind)}
	}

	lhs := p.parseMultiplicative()

	for p.current().Is(token.Plus, token.Minus) {
		op := p.pop()
		lhs = ast.BinaryExpr{LHS: lhs, RHS: p.parseMultiplicative(), Operand: op}
	}

	return lhs
}

// parseMultiplicative parses '*'/'/'/'%', recursing for the RHS: a
// documented, deliberate right-associative quirk rather than the usual
// left-associative grouping.
func (p *Parser) parseMultiplicative() ast.Expr {
	lhs := p.parseCallMember()

	if p.current().Is(token.Star, token.Slash, token.Percent) {
		op := p.pop()
		return ast.BinaryExpr{LHS: lhs, RHS: p.parseMultiplicative(), Operand: op}
	}

	return lhs
}

// parseCallMember parses a member expression, then zero or more chained
// call argument lists.
func (p *Parser) parseCallMember() ast.Expr {
	expr := p.parseMember()

	for p.current().Is(token.LParen) {
		expr = ast.CallExpr{Caller: expr, Args: p.parseArgs()}
	}

	return expr
}

// parseArgs parses a parenthesized, comma-separated argument list.
func (p *Parser) parseArgs() []ast.Stmt {
	p.expect(token.LParen, "Expected '(' to start argument list")

	var args []ast.Stmt

	for !p.current().Is(token.RParen) {
		args = append(args, p.parseObjectExpr().(ast.Stmt))

		if p.current().Is(token.Comma) {
			p.pop()
		}
	}

	p.expect(token.RParen, "Expected ')' to close argument list")

	return args
}

// parseMember parses a primary expression, then an optional '.'-chain.
// The left-hand side of '.' must already be an identifier.
func (p *Parser) parseMember() ast.Expr {
	expr := p.parsePrimary()

	if p.current().Is(token.Dot) {
		ident, ok := expr.(ast.Identifier)
		if !ok {
			p.reporter.Report(p.current(), "Dot operator must be used on an identifier.")
		}

		p.pop() // '.'

		return ast.MemberExpr{Object: ident, Member: p.parseMember()}
	}

	return expr
}

// parsePrimary parses the innermost grammar production: literals,
// identifiers, parenthesized groupings, unary '!', and 'return'.
func (p *Parser) parsePrimary() ast.Expr {
	tok := p.current()

	switch tok.Kind {
	case token.Identifier:
		p.pop()
		return ast.Identifier{Token: tok, Name: tok.Raw}
	case token.Int:
		p.pop()

		val, err := strconv.ParseInt(tok.Raw, 10, 64)
		if err != nil {
			p.reporter.Reportf(tok, "Invalid integer literal %q", tok.Raw)
		}

		return ast.IntLiteral{Token: tok, Value: val}
	case token.Float:
		p.pop()

		val, err := strconv.ParseFloat(tok.Raw, 64)
		if err != nil {
			p.reporter.Reportf(tok, "Invalid float literal %q", tok.Raw)
		}

		return ast.FloatLiteral{Token: tok, Value: val}
	case token.String:
		p.pop()
		return ast.StringLiteral{Token: tok, Value: tok.Raw}
	case token.True, token.False:
		p.pop()
		return ast.BoolLiteral{Token: tok, Value: tok.Kind == token.True}
	case token.Null:
		p.pop()
		return ast.NullLiteral{Token: tok}
	case token.LParen:
		p.pop()
		expr := p.parseBoolExpr()
		p.expect(token.RParen, "Expected ')' to close grouping")

		return expr
	case token.Bang:
		p.pop()

		operand := p.parsePrimary()
		trueTok := token.NewRaw(token.True, tok.Line, "true")

		return ast.BoolExpr{
			LHS:     operand,
			RHS:     ast.BoolLiteral{Token: trueTok, Value: true},
			Operand: token.New(token.NotEqual, tok.Line),
		}
	case token.Return:
		p.pop()
		return ast.ReturnExpr{Token: tok, Expr: p.parseObjectExpr()}
	default:
		p.reporter.Reportf(tok, "Unexpected token %s", tok.Kind)
		panic("unreachable: Reportf never returns")
	}
}
