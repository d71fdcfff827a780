// Command paint is the entrypoint to the Paint interpreter CLI.
package main

import (
	"context"
	"fmt"
	"os"

	"go.paintlang.dev/paint/internal/cmd"
)

func main() {
	command, err := cmd.Build(context.Background())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := command.Execute(); err != nil {
		os.Exit(1)
	}
}
