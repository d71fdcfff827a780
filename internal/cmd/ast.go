package cmd

import (
	"context"
	"fmt"

	"go.followtheprocess.codes/cli"

	"go.paintlang.dev/paint/internal/paint"
)

// ast returns the ast devtool subcommand.
func ast(ctx context.Context) func() (*cli.Command, error) {
	return func() (*cli.Command, error) {
		var format string

		return cli.New(
			"ast",
			cli.Short("Lex and parse a file and dump its AST"),
			cli.RequiredArg("file", "Path to the .paint file to parse"),
			cli.Flag(&format, "format", 'f', "json", "Output format: json, toml, or yaml"),
			cli.Run(func(cmd *cli.Command, args []string) error {
				app := paint.New(false, cmd.Stdout(), cmd.Stderr())
				if code := app.AST(cmd.Arg("file"), format); code != 0 {
					return fmt.Errorf("ast exited with code %d", code)
				}
				return nil
			}),
		)
	}
}
