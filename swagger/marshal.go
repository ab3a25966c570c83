package swagger

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/erraggy/apidocswagger/oaserrors"
	"go.yaml.in/yaml/v4"
)

// Format is an output serialization format.
type Format string

const (
	// FormatJSON is indented JSON, the default.
	FormatJSON Format = "json"
	// FormatYAML is YAML.
	FormatYAML Format = "yaml"
)

// ParseFormat maps a flag value to a Format. The empty string is JSON.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "", "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", &oaserrors.ConfigError{Option: "format", Value: s, Message: "must be json or yaml"}
	}
}

// Marshal serializes doc in the requested format.
func Marshal(doc *Document, format Format) ([]byte, error) {
	if doc == nil {
		return nil, fmt.Errorf("swagger: nil document")
	}
	switch format {
	case FormatYAML:
		return yaml.Marshal(doc)
	case FormatJSON, "":
		return MarshalJSONIndent(doc)
	default:
		return nil, fmt.Errorf("swagger: unsupported format %q", format)
	}
}

// MarshalJSONIndent encodes doc as two-space indented JSON without HTML
// escaping, terminated by a newline.
func MarshalJSONIndent(doc *Document) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
