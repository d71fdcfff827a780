// Package errs implements Paint's single fatal diagnostic channel.
//
// Every subsystem — lexer, parser, evaluator — funnels fatal conditions
// through a [Reporter]. There is exactly one channel: a fatal report that
// terminates the process, no recoverable errors and no try/catch structure.
// [Reporter.Report] never returns to its caller; it panics with a sentinel
// value that only [Recover] knows how to unwrap, which lets the CLI
// entrypoint turn it into a clean process exit while keeping the reporting
// logic itself trivially testable (tests can recover the same sentinel).
package errs

import (
	"fmt"
	"io"
	"strings"

	"go.followtheprocess.codes/hue"
	"go.paintlang.dev/paint/internal/token"
)

// header and body styles for the diagnostic banner. Disabled automatically
// by hue when Out isn't a terminal (e.g. output captured by tests or
// redirected to a file), so the literal diagnostic text is never altered.
const (
	headerStyle = hue.Red | hue.Bold
	lineStyle   = hue.BrightBlack
)

// fatal is the sentinel panic value used to unwind to the CLI entrypoint
// after a diagnostic has been written. Exit carries the process exit code.
type fatal struct {
	Exit int
}

// Reporter reports fatal diagnostics, citing the offending token's line by
// reconstructing it from the token stream.
type Reporter struct {
	Out    io.Writer     // Destination for diagnostic output, typically stderr.
	Tokens []token.Token // Token stream used to reconstruct offending lines.
}

// New returns a new [Reporter] writing to out.
//
// Tokens may be extended after construction (the lexer appends to it as it
// scans) — Report always reads the current value at the time it is called.
func New(out io.Writer) *Reporter {
	return &Reporter{Out: out}
}

// Report writes a fatal diagnostic citing tok and unwinds the call stack via
// panic. Callers should treat a call to Report as never returning; the CLI
// entrypoint is the only place that recovers the resulting panic (see
// [Recover]).
func (r *Reporter) Report(tok token.Token, msg string) {
	line := r.reconstructLine(tok.Line)

	fmt.Fprintf(r.Out, "%s\n", headerStyle.Text(fmt.Sprintf("Error on line: %d", tok.Line)))
	fmt.Fprintf(r.Out, "%s\n\n", lineStyle.Text(fmt.Sprintf("%d | %s", tok.Line, line)))
	fmt.Fprintf(r.Out, "%s\n", msg)

	panic(fatal{Exit: 1})
}

// Reportf calls [Reporter.Report] with a formatted message.
func (r *Reporter) Reportf(tok token.Token, format string, a ...any) {
	r.Report(tok, fmt.Sprintf(format, a...))
}

// reconstructLine rebuilds the source text of line n by joining, in order,
// the printable text of every token recorded against that line.
func (r *Reporter) reconstructLine(n int) string {
	var parts []string

	for _, tok := range r.Tokens {
		if tok.Line == n {
			parts = append(parts, tok.Text())
		}

		if tok.Line > n {
			break
		}
	}

	return strings.Join(parts, " ")
}

// Recover converts a panic raised by [Reporter.Report] into an exit code.
//
// It must be called from a deferred function in the CLI entrypoint. If the
// recovered value isn't one of ours, it is re-panicked so genuine bugs
// still crash loudly instead of being silently swallowed.
func Recover() (code int, reported bool) {
	r := recover()
	if r == nil {
		return 0, false
	}

	f, ok := r.(fatal)
	if !ok {
		panic(r)
	}

	return f.Exit, true
}
