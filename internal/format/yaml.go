package format

import (
	"io"

	"go.yaml.in/yaml/v4"
)

const yamlIndent = 2

// YAMLExporter is an [Exporter] that renders a dump as a YAML document.
type YAMLExporter struct{}

// Export implements [Exporter] for [YAMLExporter].
func (y YAMLExporter) Export(w io.Writer, data any) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(yamlIndent)

	return encoder.Encode(data)
}
