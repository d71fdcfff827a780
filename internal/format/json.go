package format

import (
	"encoding/json"
	"io"
)

// JSONExporter is an [Exporter] that renders a dump as a JSON document.
type JSONExporter struct{}

// Export implements [Exporter] for [JSONExporter].
func (j JSONExporter) Export(w io.Writer, data any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	return encoder.Encode(data)
}
