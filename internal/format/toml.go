package format

import (
	"io"

	"github.com/BurntSushi/toml"
)

// TOMLExporter is an [Exporter] that renders a dump as a TOML document.
type TOMLExporter struct{}

// Export implements [Exporter] for [TOMLExporter].
func (t TOMLExporter) Export(w io.Writer, data any) error {
	encoder := toml.NewEncoder(w)
	encoder.Indent = ""

	return encoder.Encode(data)
}
