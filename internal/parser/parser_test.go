package parser_test

import (
	"bytes"
	"testing"

	"go.followtheprocess.codes/test"
	"go.paintlang.dev/paint/internal/ast"
	"go.paintlang.dev/paint/internal/errs"
	"go.paintlang.dev/paint/internal/lexer"
	"go.paintlang.dev/paint/internal/parser"
)

// parse lexes and parses src, failing the test if either stage reports a
// fatal diagnostic.
func parse(t *testing.T, src string) ast.Program {
	t.Helper()

	var buf bytes.Buffer

	reporter := errs.New(&buf)

	var program ast.Program

	func() {
		defer func() {
			if _, reported := errs.Recover(); reported {
				t.Fatalf("unexpected fatal diagnostic: %s", buf.String())
			}
		}()

		tokens := lexer.New(src, reporter).Tokenize()
		program = parser.New(tokens, reporter).Parse()
	}()

	return program
}

func TestVarDeclaration(t *testing.T) {
	program := parse(t, "let x = 5;")

	test.Equal(t, len(program.Stmts), 1)

	decl, ok := program.Stmts[0].(ast.VarDeclaration)
	test.True(t, ok)
	test.Equal(t, decl.Identifier.Name, "x")
	test.True(t, !decl.Constant)

	lit, ok := decl.Expr.(ast.IntLiteral)
	test.True(t, ok)
	test.Equal(t, lit.Value, int64(5))
}

func TestBareLetDeclarationPermitted(t *testing.T) {
	program := parse(t, "let x;")

	decl, ok := program.Stmts[0].(ast.VarDeclaration)
	test.True(t, ok)
	test.True(t, decl.Expr == nil)
}

func TestConstWithoutInitializerIsFatal(t *testing.T) {
	var buf bytes.Buffer
	reporter := errs.New(&buf)

	reported := func() (reported bool) {
		defer func() {
			_, reported = errs.Recover()
		}()

		tokens := lexer.New("const c;", reporter).Tokenize()
		parser.New(tokens, reporter).Parse()

		return false
	}()

	test.True(t, reported)
}

func TestRightAssociativeMultiplicative(t *testing.T) {
	// 10 / 2 / 5 parses as 10 / (2 / 5), a documented parser quirk.
	program := parse(t, "10 / 2 / 5;")

	outer, ok := program.Stmts[0].(ast.BinaryExpr)
	test.True(t, ok)
	test.Equal(t, outer.Operand.Kind.String(), "Slash")

	lhs, ok := outer.LHS.(ast.IntLiteral)
	test.True(t, ok)
	test.Equal(t, lhs.Value, int64(10))

	inner, ok := outer.RHS.(ast.BinaryExpr)
	test.True(t, ok)

	innerLHS, ok := inner.LHS.(ast.IntLiteral)
	test.True(t, ok)
	test.Equal(t, innerLHS.Value, int64(2))
}

func TestBooleanComparisonSynthesisesCompoundToken(t *testing.T) {
	program := parse(t, "a >= b;")

	expr, ok := program.Stmts[0].(ast.BoolExpr)
	test.True(t, ok)
	test.Equal(t, expr.Operand.Kind.String(), "GreaterEqual")
}

func TestLogicalAndNestsRightAssociatively(t *testing.T) {
	program := parse(t, "a && b && c;")

	outer, ok := program.Stmts[0].(ast.BoolExpr)
	test.True(t, ok)
	test.Equal(t, outer.Operand.Kind.String(), "And")

	_, ok = outer.RHS.(ast.BoolExpr)
	test.True(t, ok)
}

func TestIncrement(t *testing.T) {
	program := parse(t, "i++;")

	inc, ok := program.Stmts[0].(ast.Increment)
	test.True(t, ok)
	test.Equal(t, inc.Identifier.Name, "i")
	test.Equal(t, inc.Operand.Kind.String(), "Increment")
}

func TestUnaryNotSynthesisesBoolExpr(t *testing.T) {
	program := parse(t, "!flag;")

	expr, ok := program.Stmts[0].(ast.BoolExpr)
	test.True(t, ok)
	test.Equal(t, expr.Operand.Kind.String(), "NotEqual")

	rhs, ok := expr.RHS.(ast.BoolLiteral)
	test.True(t, ok)
	test.True(t, rhs.Value)
}

func TestMemberExprChain(t *testing.T) {
	program := parse(t, "o.a.b;")

	member, ok := program.Stmts[0].(ast.MemberExpr)
	test.True(t, ok)
	test.Equal(t, member.Object.Name, "o")

	inner, ok := member.Member.(ast.MemberExpr)
	test.True(t, ok)
	test.Equal(t, inner.Object.Name, "a")

	leaf, ok := inner.Member.(ast.Identifier)
	test.True(t, ok)
	test.Equal(t, leaf.Name, "b")
}

func TestDotOnNonIdentifierIsFatal(t *testing.T) {
	var buf bytes.Buffer
	reporter := errs.New(&buf)

	reported := func() (reported bool) {
		defer func() {
			_, reported = errs.Recover()
		}()

		tokens := lexer.New("5.a;", reporter).Tokenize()
		parser.New(tokens, reporter).Parse()

		return false
	}()

	test.True(t, reported)
}

func TestObjectLiteralWithShorthandProperty(t *testing.T) {
	program := parse(t, "let o = { a, b = 2 };")

	decl := program.Stmts[0].(ast.VarDeclaration)
	obj, ok := decl.Expr.(ast.ObjectLiteral)
	test.True(t, ok)
	test.Equal(t, len(obj.Properties), 2)

	test.Equal(t, obj.Properties[0].Key.Name, "a")
	test.True(t, obj.Properties[0].Value == nil)

	test.Equal(t, obj.Properties[1].Key.Name, "b")
	test.True(t, obj.Properties[1].Value != nil)
}

func TestFunctionDeclaration(t *testing.T) {
	program := parse(t, "fn add(a, b) { return a + b; }")

	fn, ok := program.Stmts[0].(ast.FunctionDeclaration)
	test.True(t, ok)
	test.Equal(t, fn.Name.Name, "add")
	test.Equal(t, len(fn.Params), 2)
	test.Equal(t, fn.Params[0].Name, "a")
	test.Equal(t, len(fn.Body), 1)

	_, ok = fn.Body[0].(ast.ReturnExpr)
	test.True(t, ok)
}

func TestNonIdentifierFunctionParamIsFatal(t *testing.T) {
	var buf bytes.Buffer
	reporter := errs.New(&buf)

	reported := func() (reported bool) {
		defer func() {
			_, reported = errs.Recover()
		}()

		tokens := lexer.New("fn f(1) { }", reporter).Tokenize()
		parser.New(tokens, reporter).Parse()

		return false
	}()

	test.True(t, reported)
}

func TestConditionalBlockWithElifAndElse(t *testing.T) {
	program := parse(t, "if (a == 1) { } elif (a == 2) { } else { }")

	block, ok := program.Stmts[0].(ast.ConditionalBlock)
	test.True(t, ok)
	test.Equal(t, len(block.Stmts), 3)

	test.Equal(t, block.Stmts[0].ClauseOf, ast.ClauseIf)
	test.Equal(t, block.Stmts[1].ClauseOf, ast.ClauseElif)
	test.Equal(t, block.Stmts[2].ClauseOf, ast.ClauseElse)
	test.True(t, block.Stmts[2].Condition == nil)
}

func TestForLoop(t *testing.T) {
	program := parse(t, "for (i = 0, i < 10, i++) { }")

	loop, ok := program.Stmts[0].(ast.ForLoop)
	test.True(t, ok)
	test.Equal(t, loop.Variable.Identifier.Name, "i")

	_, ok = loop.Counter.(ast.Increment)
	test.True(t, ok)
}

func TestWhileLoop(t *testing.T) {
	program := parse(t, "while (running) { }")

	loop, ok := program.Stmts[0].(ast.WhileLoop)
	test.True(t, ok)
	test.True(t, loop.Condition != nil)
}

func TestCallExpr(t *testing.T) {
	program := parse(t, "print(1, 2);")

	call, ok := program.Stmts[0].(ast.CallExpr)
	test.True(t, ok)
	test.Equal(t, len(call.Args), 2)

	caller, ok := call.Caller.(ast.Identifier)
	test.True(t, ok)
	test.Equal(t, caller.Name, "print")
}

func TestChainedCallExpr(t *testing.T) {
	program := parse(t, "f()();")

	outer, ok := program.Stmts[0].(ast.CallExpr)
	test.True(t, ok)

	_, ok = outer.Caller.(ast.CallExpr)
	test.True(t, ok)
}
