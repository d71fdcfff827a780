package paint

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh"
	"go.followtheprocess.codes/msg"
	"golang.org/x/sync/errgroup"

	"go.paintlang.dev/paint/internal/errs"
	"go.paintlang.dev/paint/internal/lexer"
	"go.paintlang.dev/paint/internal/parser"
)

// Check lexes and parses every .paint file under path (or, if path is
// empty, interactively prompts the user to pick one from the current
// directory), reporting syntax errors without evaluating anything and
// without stopping at the first failure.
func (p Paint) Check(ctx context.Context, path string) (exitCode int) {
	if path == "" {
		picked, err := p.pickFile()
		if err != nil {
			fmt.Fprintf(p.stderr, "could not pick a file: %s\n", err)
			return 1
		}
		path = picked
	}

	info, err := os.Stat(path)
	if err != nil {
		fmt.Fprintf(p.stderr, "could not get info for %s: %s\n", path, err)
		return 1
	}

	var paths []string
	if info.IsDir() {
		err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if filepath.Ext(p) == ".paint" {
				paths = append(paths, p)
			}
			return nil
		})
		if err != nil {
			fmt.Fprintf(p.stderr, "could not walk %s: %s\n", path, err)
			return 1
		}
	} else {
		paths = []string{path}
	}

	group, _ := errgroup.WithContext(ctx)
	for _, file := range paths {
		group.Go(func() error {
			return checkFile(file)
		})
	}

	if err := group.Wait(); err != nil {
		fmt.Fprintln(p.stderr, err)
		return 1
	}

	for _, file := range paths {
		msg.Fsuccess(p.stdout, "%s is valid", file)
	}

	return 0
}

// checkFile runs a lex+parse check on a single file using its own,
// independent reporter: a failure here never touches another file's state.
func checkFile(path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("could not read %s: %w", path, err)
	}

	reporter := errs.New(os.Stderr)

	var reportErr error
	func() {
		defer func() {
			if code, reported := errs.Recover(); reported {
				reportErr = fmt.Errorf("%s: invalid syntax (exit %d)", path, code)
			}
		}()

		tokens := lexer.New(string(src), reporter).Tokenize()
		parser.New(tokens, reporter).Parse()
	}()

	return reportErr
}

// pickFile interactively prompts the user to choose a .paint file from the
// current directory, exactly as zap's root command offers interactive
// picking when invoked with no arguments.
func (p Paint) pickFile() (string, error) {
	var candidates []string
	err := filepath.WalkDir(".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if filepath.Ext(path) == ".paint" {
			candidates = append(candidates, path)
		}
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("could not search for .paint files: %w", err)
	}

	if len(candidates) == 0 {
		return "", fmt.Errorf("no .paint files found in the current directory")
	}

	options := make([]huh.Option[string], 0, len(candidates))
	for _, candidate := range candidates {
		options = append(options, huh.NewOption(candidate, candidate))
	}

	var selected string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Pick a .paint file").
				Options(options...).
				Value(&selected),
		),
	)

	if err := form.Run(); err != nil {
		return "", err
	}

	return selected, nil
}
