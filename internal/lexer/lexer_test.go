package lexer_test

import (
	"bytes"
	"slices"
	"testing"

	"go.followtheprocess.codes/test"

	"go.paintlang.dev/paint/internal/errs"
	"go.paintlang.dev/paint/internal/lexer"
	"go.paintlang.dev/paint/internal/token"
)

func TestBasics(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []token.Token
	}{
		{
			name: "empty",
			src:  "",
			want: []token.Token{
				{Kind: token.EOF, Line: 1},
			},
		},
		{
			name: "hash comment",
			src:  "# a comment\n",
			want: []token.Token{
				{Kind: token.EOF, Line: 2},
			},
		},
		{
			name: "keyword vs identifier",
			src:  "let letter",
			want: []token.Token{
				{Kind: token.Let, Line: 1},
				{Kind: token.Identifier, Line: 1, Raw: "letter"},
				{Kind: token.EOF, Line: 1},
			},
		},
		{
			name: "underscore identifier",
			src:  "my_var",
			want: []token.Token{
				{Kind: token.Identifier, Line: 1, Raw: "my_var"},
				{Kind: token.EOF, Line: 1},
			},
		},
		{
			name: "int literal",
			src:  "42",
			want: []token.Token{
				{Kind: token.Int, Line: 1, Raw: "42"},
				{Kind: token.EOF, Line: 1},
			},
		},
		{
			name: "float literal",
			src:  "3.14",
			want: []token.Token{
				{Kind: token.Float, Line: 1, Raw: "3.14"},
				{Kind: token.EOF, Line: 1},
			},
		},
		{
			name: "trailing dot is not a float",
			src:  "3.",
			want: []token.Token{
				{Kind: token.Int, Line: 1, Raw: "3"},
				{Kind: token.Dot, Line: 1},
				{Kind: token.EOF, Line: 1},
			},
		},
		{
			name: "string literal",
			src:  `"hello world"`,
			want: []token.Token{
				{Kind: token.String, Line: 1, Raw: "hello world"},
				{Kind: token.EOF, Line: 1},
			},
		},
		{
			name: "single character symbols",
			src:  "(){}[]+-*/%=!><&|,:;.",
			want: []token.Token{
				{Kind: token.LParen, Line: 1},
				{Kind: token.RParen, Line: 1},
				{Kind: token.LBrace, Line: 1},
				{Kind: token.RBrace, Line: 1},
				{Kind: token.LBracket, Line: 1},
				{Kind: token.RBracket, Line: 1},
				{Kind: token.Plus, Line: 1},
				{Kind: token.Minus, Line: 1},
				{Kind: token.Star, Line: 1},
				{Kind: token.Slash, Line: 1},
				{Kind: token.Percent, Line: 1},
				{Kind: token.Assign, Line: 1},
				{Kind: token.Bang, Line: 1},
				{Kind: token.Greater, Line: 1},
				{Kind: token.Less, Line: 1},
				{Kind: token.Amp, Line: 1},
				{Kind: token.Pipe, Line: 1},
				{Kind: token.Comma, Line: 1},
				{Kind: token.Colon, Line: 1},
				{Kind: token.Semicolon, Line: 1},
				{Kind: token.Dot, Line: 1},
				{Kind: token.EOF, Line: 1},
			},
		},
		{
			name: "line tracking across newlines",
			src:  "let a = 1;\nlet b = 2;\n",
			want: []token.Token{
				{Kind: token.Let, Line: 1},
				{Kind: token.Identifier, Line: 1, Raw: "a"},
				{Kind: token.Assign, Line: 1},
				{Kind: token.Int, Line: 1, Raw: "1"},
				{Kind: token.Semicolon, Line: 1},
				{Kind: token.Let, Line: 2},
				{Kind: token.Identifier, Line: 2, Raw: "b"},
				{Kind: token.Assign, Line: 2},
				{Kind: token.Int, Line: 2, Raw: "2"},
				{Kind: token.Semicolon, Line: 2},
				{Kind: token.EOF, Line: 3},
			},
		},
		{
			name: "the boolean and null literals are keywords, not identifiers",
			src:  "true false null",
			want: []token.Token{
				{Kind: token.True, Line: 1, Raw: "true"},
				{Kind: token.False, Line: 1, Raw: "false"},
				{Kind: token.Null, Line: 1},
				{Kind: token.EOF, Line: 1},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reporter := errs.New(&bytes.Buffer{})
			tokens := lexer.New(tt.src, reporter).Tokenize()

			test.True(
				t,
				slices.EqualFunc(tokens, tt.want, func(a, b token.Token) bool {
					return a.Kind == b.Kind && a.Line == b.Line && a.Raw == b.Raw
				}),
				test.Context("got %v, want %v", tokens, tt.want),
			)
		})
	}
}

func TestEveryTokenStreamEndsInExactlyOneEOF(t *testing.T) {
	srcs := []string{
		"",
		"let x = 1;",
		"# just a comment\n",
		`fn add(a, b) { return a + b; }`,
	}

	for _, src := range srcs {
		reporter := errs.New(&bytes.Buffer{})
		tokens := lexer.New(src, reporter).Tokenize()

		test.True(t, len(tokens) > 0)
		test.Equal(t, tokens[len(tokens)-1].Kind, token.EOF)

		count := 0
		for _, tok := range tokens {
			if tok.Kind == token.EOF {
				count++
			}
		}

		test.Equal(t, count, 1)
	}
}

func TestUnterminatedStringIsFatal(t *testing.T) {
	stderr := &bytes.Buffer{}
	reporter := errs.New(stderr)

	fatal := false

	func() {
		defer func() {
			if _, reported := errs.Recover(); reported {
				fatal = true
			}
		}()

		lexer.New(`"never closed`, reporter).Tokenize()
	}()

	test.True(t, fatal)
}

func TestInvalidCharacterIsFatal(t *testing.T) {
	stderr := &bytes.Buffer{}
	reporter := errs.New(stderr)

	fatal := false

	func() {
		defer func() {
			if _, reported := errs.Recover(); reported {
				fatal = true
			}
		}()

		lexer.New("@", reporter).Tokenize()
	}()

	test.True(t, fatal)
}
