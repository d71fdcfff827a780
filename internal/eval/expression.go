package eval

import (
	"strconv"

	"go.paintlang.dev/paint/internal/ast"
	"go.paintlang.dev/paint/internal/token"
	"go.paintlang.dev/paint/internal/value"
)

// evalExpr dispatches an expression to its evaluation, producing the
// [value.RuntimeVal] it evaluates to.
func (e *Evaluator) evalExpr(expr ast.Expr) value.RuntimeVal {
	switch node := expr.(type) {
	case ast.Value:
		rv, ok := node.V.(value.RuntimeVal)
		if !ok {
			e.reporter.Report(node.Token, "Malformed value binding")
		}

		return rv
	case ast.IntLiteral:
		return value.Int{Value: node.Value}
	case ast.FloatLiteral:
		return value.Float{Value: node.Value}
	case ast.StringLiteral:
		return value.String{Value: node.Value}
	case ast.BoolLiteral:
		return value.Bool{Value: node.Value}
	case ast.NullLiteral:
		return value.Null{}
	case ast.Identifier:
		return e.evalIdentifier(node)
	case ast.BinaryExpr:
		return e.evalBinaryExpr(node)
	case ast.BoolExpr:
		return e.evalBoolExpr(node)
	case ast.ObjectLiteral:
		return e.evalObjectLiteral(node)
	case ast.CallExpr:
		return e.evalCallExpr(node)
	case ast.MemberExpr:
		return e.evalMemberExpr(node)
	case ast.Increment:
		return e.evalIncrement(node)
	case ast.ReturnExpr:
		return value.Return{Value: e.evalExpr(node.Expr)}
	default:
		e.reporter.Reportf(expr.Start(), "Cannot evaluate expression of kind %s", expr.Kind())
		panic("unreachable: Reportf never returns")
	}
}

// evalIdentifier looks up name's bound expression and recursively evaluates
// it. Note this re-runs whatever syntax is bound: for an [ast.ObjectLiteral]
// binding that means re-declaring its properties (see
// [Evaluator.evalObjectLiteral]), not producing a structured object value —
// member access bypasses this path precisely to avoid that (see
// [Evaluator.evalMemberExpr]).
func (e *Evaluator) evalIdentifier(ident ast.Identifier) value.RuntimeVal {
	expr, err := e.env.Search(ident.Name)
	if err != nil {
		e.reporter.Report(ident.Token, err.Error())
	}

	return e.evalExpr(expr)
}

// evalObjectLiteral declares each property as a binding in the current
// environment. A shorthand property (nil Value) requires a binding with the
// same name to already exist. Always evaluates to Null.
func (e *Evaluator) evalObjectLiteral(obj ast.ObjectLiteral) value.RuntimeVal {
	for _, prop := range obj.Properties {
		if prop.Value == nil {
			if _, err := e.env.Search(prop.Key.Name); err != nil {
				e.reporter.Reportf(prop.Key.Token, "Shorthand property %q has no existing binding", prop.Key.Name)
			}

			continue
		}

		if err := e.env.Declare(prop.Key.Name, prop.Value, false); err != nil {
			e.reporter.Report(prop.Key.Token, err.Error())
		}
	}

	return value.Null{}
}

// evalBinaryExpr evaluates an arithmetic or string-concatenation expression.
// A Null operand is replaced by the other side. Numeric operands widen to
// Float if either side is a Float, otherwise the result is Int. String
// operands only support '+', for concatenation.
func (e *Evaluator) evalBinaryExpr(b ast.BinaryExpr) value.RuntimeVal {
	lhs := e.evalExpr(b.LHS)
	rhs := e.evalExpr(b.RHS)

	if _, ok := lhs.(value.Null); ok {
		return rhs
	}

	if _, ok := rhs.(value.Null); ok {
		return lhs
	}

	if isNumeric(lhs) && isNumeric(rhs) {
		return e.evalArithmetic(b.Operand, lhs, rhs)
	}

	lStr, lIsStr := lhs.(value.String)
	rStr, rIsStr := rhs.(value.String)

	if lIsStr && rIsStr && b.Operand.Kind == token.Plus {
		return value.String{Value: lStr.Value + rStr.Value}
	}

	e.reporter.Reportf(b.Operand, "Invalid operands to binary expression: %s and %s", kindName(lhs), kindName(rhs))
	panic("unreachable: Reportf never returns")
}

func isNumeric(v value.RuntimeVal) bool {
	switch v.(type) {
	case value.Int, value.Float:
		return true
	default:
		return false
	}
}

// evalArithmetic applies op to two numeric operands: if both are Int the
// result is Int, otherwise both sides widen to Float.
func (e *Evaluator) evalArithmetic(op token.Token, lhs, rhs value.RuntimeVal) value.RuntimeVal {
	lInt, lIsInt := lhs.(value.Int)
	rInt, rIsInt := rhs.(value.Int)

	if lIsInt && rIsInt {
		return e.evalIntArithmetic(op, lInt.Value, rInt.Value)
	}

	return e.evalFloatArithmetic(op, asFloat(lhs), asFloat(rhs))
}

func asFloat(v value.RuntimeVal) float64 {
	switch n := v.(type) {
	case value.Int:
		return float64(n.Value)
	case value.Float:
		return n.Value
	default:
		return 0
	}
}

func (e *Evaluator) evalIntArithmetic(op token.Token, l, r int64) value.RuntimeVal {
	switch op.Kind {
	case token.Plus:
		return value.Int{Value: l + r}
	case token.Minus:
		return value.Int{Value: l - r}
	case token.Star:
		return value.Int{Value: l * r}
	case token.Slash:
		if r == 0 {
			e.reporter.Report(op, "Division by zero")
		}

		return value.Int{Value: l / r}
	case token.Percent:
		if r == 0 {
			e.reporter.Report(op, "Modulo by zero")
		}

		return value.Int{Value: l % r}
	default:
		e.reporter.Reportf(op, "Invalid binary operator %s", op.Kind)
		panic("unreachable: Reportf never returns")
	}
}

func (e *Evaluator) evalFloatArithmetic(op token.Token, l, r float64) value.RuntimeVal {
	switch op.Kind {
	case token.Plus:
		return value.Float{Value: l + r}
	case token.Minus:
		return value.Float{Value: l - r}
	case token.Star:
		return value.Float{Value: l * r}
	case token.Slash:
		if r == 0 {
			e.reporter.Report(op, "Division by zero")
		}

		return value.Float{Value: l / r}
	case token.Percent:
		// Modulo casts both operands to int before taking the remainder.
		li, ri := int64(l), int64(r)
		if ri == 0 {
			e.reporter.Report(op, "Modulo by zero")
		}

		return value.Float{Value: float64(li % ri)}
	default:
		e.reporter.Reportf(op, "Invalid binary operator %s", op.Kind)
		panic("unreachable: Reportf never returns")
	}
}

// evalBoolExpr evaluates a comparison or logical expression. Equality
// compares the raw token text of both sides; ordering comparisons parse
// both sides as integers; logical operators require both sides to be Bool.
func (e *Evaluator) evalBoolExpr(b ast.BoolExpr) value.RuntimeVal {
	lhs := e.evalExpr(b.LHS)
	rhs := e.evalExpr(b.RHS)

	switch b.Operand.Kind {
	case token.Equal:
		return value.Bool{Value: lhs.Token().Text() == rhs.Token().Text()}
	case token.NotEqual:
		return value.Bool{Value: lhs.Token().Text() != rhs.Token().Text()}
	case token.Greater, token.Less, token.GreaterEqual, token.LessEqual:
		l := e.intOperand(b.Operand, lhs)
		r := e.intOperand(b.Operand, rhs)

		return value.Bool{Value: compareInt(b.Operand.Kind, l, r)}
	case token.And, token.Or:
		lBool, lok := lhs.(value.Bool)
		rBool, rok := rhs.(value.Bool)

		if !lok || !rok {
			e.reporter.Reportf(b.Operand, "Logical operands must be boolean, got %s and %s", kindName(lhs), kindName(rhs))
		}

		if b.Operand.Kind == token.And {
			return value.Bool{Value: lBool.Value && rBool.Value}
		}

		return value.Bool{Value: lBool.Value || rBool.Value}
	default:
		e.reporter.Reportf(b.Operand, "Invalid boolean operator %s", b.Operand.Kind)
		panic("unreachable: Reportf never returns")
	}
}

func (e *Evaluator) intOperand(tok token.Token, v value.RuntimeVal) int64 {
	n, err := strconv.ParseInt(v.Token().Text(), 10, 64)
	if err != nil {
		e.reporter.Reportf(tok, "Comparison operand must be an integer, got %q", v.Token().Text())
	}

	return n
}

func compareInt(kind token.Kind, l, r int64) bool {
	switch kind {
	case token.Greater:
		return l > r
	case token.Less:
		return l < r
	case token.GreaterEqual:
		return l >= r
	case token.LessEqual:
		return l <= r
	default:
		return false
	}
}

// evalIncrement synthesises `identifier OP 1`, evaluates it, and assigns the
// result back to identifier.
func (e *Evaluator) evalIncrement(inc ast.Increment) value.RuntimeVal {
	opKind := token.Plus
	if inc.Operand.Kind == token.Decrement {
		opKind = token.Minus
	}

	synthesized := ast.BinaryExpr{
		LHS:     inc.Identifier,
		RHS:     ast.IntLiteral{Token: token.NewRaw(token.Int, inc.Operand.Line, "1"), Value: 1},
		Operand: token.New(opKind, inc.Operand.Line),
	}

	result := e.evalExpr(synthesized)

	if err := e.env.Assign(inc.Identifier.Name, ast.Value{Token: inc.Identifier.Token, V: result}); err != nil {
		e.reporter.Report(inc.Identifier.Token, err.Error())
	}

	return result
}

// truthy evaluates cond and requires it to be a Bool.
func (e *Evaluator) truthy(cond ast.Expr) bool {
	val := e.evalExpr(cond)

	b, ok := val.(value.Bool)
	if !ok {
		e.reporter.Reportf(cond.Start(), "Condition must evaluate to a boolean, got %s", kindName(val))
	}

	return b.Value
}
