// Package format renders Paint's token stream and AST dumps into external,
// machine-readable formats for the `tokens` and `ast` devtool subcommands.
package format

import "io"

// Exporter is the interface defining a mechanism for exporting a dump
// (a token stream or an AST [ast.Program]) into an external format.
//
// Grounded on the teacher's own Exporter, which exports a spec.File rather
// than a token stream or AST — data is typed any here since Paint's two
// dump subcommands export different shapes through the same mechanism.
type Exporter interface {
	// Export exports data into an external format, written to w.
	Export(w io.Writer, data any) error
}

// Lookup returns the [Exporter] named by format ("json", "toml", or
// "yaml"), and false if format names none of these.
func Lookup(format string) (Exporter, bool) {
	switch format {
	case "json":
		return JSONExporter{}, true
	case "toml":
		return TOMLExporter{}, true
	case "yaml":
		return YAMLExporter{}, true
	default:
		return nil, false
	}
}
