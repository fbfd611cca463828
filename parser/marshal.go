package parser

import (
	"bytes"
	"fmt"

	json "github.com/goccy/go-json"
	"go.yaml.in/yaml/v4"
)

// MarshalDocument marshals a document tree to bytes in the specified format.
//
// JSON output uses 2-space indentation with HTML escaping disabled, so
// non-ASCII characters pass through unescaped. YAML output uses the default
// yaml/v4 encoding. An unknown format marshals as JSON.
func MarshalDocument(data any, format SourceFormat) ([]byte, error) {
	if format == SourceFormatYAML {
		out, err := yaml.Marshal(data)
		if err != nil {
			return nil, fmt.Errorf("parser: failed to marshal YAML: %w", err)
		}
		return out, nil
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		return nil, fmt.Errorf("parser: failed to marshal JSON: %w", err)
	}
	return buf.Bytes(), nil
}
