package eval

import (
	"fmt"
	"io"

	"go.paintlang.dev/paint/internal/ast"
	"go.paintlang.dev/paint/internal/env"
	"go.paintlang.dev/paint/internal/token"
	"go.paintlang.dev/paint/internal/value"
)

// NewRootEnvironment returns a fresh [env.Environment] with the built-in
// print function pre-declared, writing to out.
func NewRootEnvironment(out io.Writer) *env.Environment {
	root := env.New()

	tok := token.NewRaw(token.Identifier, 0, "print")
	native := value.NativeFunction{Name: "print", Call: printCall(out)}

	if err := root.Declare("print", ast.Value{Token: tok, V: native}, true); err != nil {
		// Declaring into a brand new Environment can never fail.
		panic(err)
	}

	return root
}

// printCall prints each argument's token text consecutively, skipping Null
// arguments, followed by a single newline. It always returns Null.
func printCall(out io.Writer) func(args []value.RuntimeVal) (value.RuntimeVal, error) {
	return func(args []value.RuntimeVal) (value.RuntimeVal, error) {
		for _, arg := range args {
			if _, ok := arg.(value.Null); ok {
				continue
			}

			fmt.Fprint(out, arg.Token().Text())
		}

		fmt.Fprintln(out)

		return value.Null{}, nil
	}
}
