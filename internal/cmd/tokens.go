package cmd

import (
	"context"
	"fmt"

	"go.followtheprocess.codes/cli"

	"go.paintlang.dev/paint/internal/paint"
)

// tokens returns the tokens devtool subcommand.
func tokens(ctx context.Context) func() (*cli.Command, error) {
	return func() (*cli.Command, error) {
		var format string

		return cli.New(
			"tokens",
			cli.Short("Lex a file and dump its token stream"),
			cli.RequiredArg("file", "Path to the .paint file to lex"),
			cli.Flag(&format, "format", 'f', "json", "Output format: json, toml, or yaml"),
			cli.Run(func(cmd *cli.Command, args []string) error {
				app := paint.New(false, cmd.Stdout(), cmd.Stderr())
				if code := app.Tokens(cmd.Arg("file"), format); code != 0 {
					return fmt.Errorf("tokens exited with code %d", code)
				}
				return nil
			}),
		)
	}
}
