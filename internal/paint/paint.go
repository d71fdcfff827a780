// Package paint implements the Paint interpreter program: the CLI in
// package cmd is simply the entrypoint to exported functions and methods
// in this package.
package paint

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"go.followtheprocess.codes/log"
	"go.paintlang.dev/paint/internal/errs"
	"go.paintlang.dev/paint/internal/eval"
	"go.paintlang.dev/paint/internal/lexer"
	"go.paintlang.dev/paint/internal/parser"
)

// Paint represents the Paint program.
type Paint struct {
	stdout io.Writer   // Program output, including print(), is written here.
	stderr io.Writer   // Diagnostics and logs are written here, except Check's per-file syntax diagnostics, which go to os.Stderr.
	logger *log.Logger // Ambient Debug-level tracing, silent at the default level.
}

// New returns a new [Paint].
func New(debug bool, stdout, stderr io.Writer) Paint {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	logger := log.New(stderr, log.WithLevel(log.Level(level)))

	return Paint{stdout: stdout, stderr: stderr, logger: logger}
}

// Run lexes, parses, and evaluates the file at path. It is the entire
// behaviour of the bare `paint <file>` invocation.
func (p Paint) Run(path string) (exitCode int) {
	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(p.stderr, "could not read %s: %s\n", path, err)
		return 1
	}

	reporter := errs.New(p.stderr)

	defer func() {
		if code, reported := errs.Recover(); reported {
			exitCode = code
		}
	}()

	p.logger.Debug("lexing", slog.String("file", path))
	tokens := lexer.New(string(src), reporter).Tokenize()

	p.logger.Debug("parsing", slog.String("file", path), slog.Int("tokens", len(tokens)))
	program := parser.New(tokens, reporter).Parse()

	p.logger.Debug("evaluating", slog.String("file", path), slog.Int("statements", len(program.Stmts)))
	root := eval.NewRootEnvironment(p.stdout)
	eval.New(root, reporter).EvalProgram(program)

	return 0
}
