package value_test

import (
	"testing"

	"go.followtheprocess.codes/test"
	"go.paintlang.dev/paint/internal/ast"
	"go.paintlang.dev/paint/internal/env"
	"go.paintlang.dev/paint/internal/token"
	"go.paintlang.dev/paint/internal/value"
)

func TestTokenRepresentations(t *testing.T) {
	tests := []struct {
		val  value.RuntimeVal
		name string
		want string
		kind token.Kind
	}{
		{name: "int", val: value.Int{Value: 42}, want: "42", kind: token.Int},
		{name: "float", val: value.Float{Value: 3.0}, want: "3.000000", kind: token.Float},
		{name: "string", val: value.String{Value: "hi"}, want: "hi", kind: token.String},
		{name: "bool true", val: value.Bool{Value: true}, want: "true", kind: token.True},
		{name: "bool false", val: value.Bool{Value: false}, want: "false", kind: token.True},
		{name: "null", val: value.Null{}, want: "", kind: token.Null},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok := tt.val.Token()
			test.Equal(t, tok.Kind, tt.kind)
			test.Equal(t, tok.Text(), orSymbol(tt.want, tok))
		})
	}
}

// orSymbol returns want if non-empty, otherwise the token's own symbol
// fallback, since Null carries no raw text.
func orSymbol(want string, tok token.Token) string {
	if want == "" {
		return tok.Kind.Symbol()
	}

	return want
}

func TestReturnUnwrapsInnerToken(t *testing.T) {
	ret := value.Return{Value: value.Int{Value: 7}}
	test.Equal(t, ret.Token().Text(), "7")
}

func TestNativeFunctionToken(t *testing.T) {
	fn := value.NativeFunction{Name: "print"}
	test.Equal(t, fn.Token().Text(), "print")
}

func TestFunctionTokenIsItsName(t *testing.T) {
	nameTok := token.NewRaw(token.Identifier, 1, "add")

	fn := value.Function{
		Decl: ast.FunctionDeclaration{Name: ast.Identifier{Token: nameTok, Name: "add"}},
		Env:  env.New(),
	}

	test.Equal(t, fn.Token(), nameTok)
}
