// Package cmd implements Paint's CLI.
package cmd

import (
	"context"
	"fmt"

	"go.followtheprocess.codes/cli"

	"go.paintlang.dev/paint/internal/paint"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

// Build builds and returns the Paint CLI.
func Build(ctx context.Context) (*cli.Command, error) {
	var debug bool

	return cli.New(
		"paint",
		cli.Short("A tree-walking interpreter for the Paint language"),
		cli.Version(version),
		cli.Commit(commit),
		cli.BuildDate(date),
		cli.Example("Run a Paint program", "paint ./demo.paint"),
		cli.Example("Dump a file's token stream as JSON", "paint tokens ./demo.paint"),
		cli.Example("Dump a file's AST as YAML", "paint ast ./demo.paint --format yaml"),
		cli.Example("Check every .paint file in a directory for syntax errors", "paint check ./examples"),
		cli.RequiredArg("file", "Path to the .paint file to run"),
		cli.Flag(&debug, "debug", 'd', false, "Enable debug logging"),
		cli.SubCommands(tokens(ctx), ast(ctx), check(ctx)),
		cli.Run(func(cmd *cli.Command, args []string) error {
			app := paint.New(debug, cmd.Stdout(), cmd.Stderr())
			if code := app.Run(cmd.Arg("file")); code != 0 {
				return fmt.Errorf("paint exited with code %d", code)
			}
			return nil
		}),
	)
}
