package cmd

import (
	"context"
	"fmt"

	"go.followtheprocess.codes/cli"

	"go.paintlang.dev/paint/internal/paint"
)

const checkLong = `
The path argument may be a directory or a file.

If it is the name of a .paint file, then this file alone is checked
for validity.

If it is a directory, this directory is scanned recursively for all
files with the '.paint' extension and any matching files will be validated.

If no path is given, a .paint file is picked interactively from the
current directory.
`

// check returns the check devtool subcommand.
func check(ctx context.Context) func() (*cli.Command, error) {
	return func() (*cli.Command, error) {
		var debug bool

		return cli.New(
			"check",
			cli.Short("Check .paint files for syntax errors"),
			cli.Long(checkLong),
			cli.OptionalArg("path", "Path to check, may be directory or file", ""),
			cli.Flag(&debug, "debug", 'd', false, "Enable debug logging"),
			cli.Run(func(cmd *cli.Command, args []string) error {
				app := paint.New(debug, cmd.Stdout(), cmd.Stderr())
				if code := app.Check(ctx, cmd.Arg("path")); code != 0 {
					return fmt.Errorf("check exited with code %d", code)
				}
				return nil
			}),
		)
	}
}
