package paint

import (
	"fmt"
	"os"

	"go.paintlang.dev/paint/internal/errs"
	"go.paintlang.dev/paint/internal/format"
	"go.paintlang.dev/paint/internal/lexer"
	"go.paintlang.dev/paint/internal/parser"
)

// Tokens lexes the file at path and dumps its token stream via the named
// format exporter ("json", "toml", or "yaml").
func (p Paint) Tokens(path, formatName string) (exitCode int) {
	exporter, ok := format.Lookup(formatName)
	if !ok {
		fmt.Fprintf(p.stderr, "unknown format %q\n", formatName)
		return 1
	}

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

	tokens := lexer.New(string(src), reporter).Tokenize()

	if err := exporter.Export(p.stdout, tokens); err != nil {
		fmt.Fprintf(p.stderr, "could not export tokens: %s\n", err)
		return 1
	}

	return 0
}

// AST lexes and parses the file at path and dumps the resulting Program via
// the named format exporter ("json", "toml", or "yaml").
func (p Paint) AST(path, formatName string) (exitCode int) {
	exporter, ok := format.Lookup(formatName)
	if !ok {
		fmt.Fprintf(p.stderr, "unknown format %q\n", formatName)
		return 1
	}

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

	tokens := lexer.New(string(src), reporter).Tokenize()
	program := parser.New(tokens, reporter).Parse()

	if err := exporter.Export(p.stdout, program); err != nil {
		fmt.Fprintf(p.stderr, "could not export AST: %s\n", err)
		return 1
	}

	return 0
}
