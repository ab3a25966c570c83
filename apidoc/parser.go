package apidoc

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/erraggy/apidocswagger/internal/options"
	"github.com/erraggy/apidocswagger/oaserrors"
	"go.yaml.in/yaml/v4"
)

// SourceFormat is the serialization format of an input document.
type SourceFormat string

const (
	// SourceFormatJSON indicates the input was JSON.
	SourceFormatJSON SourceFormat = "json"
	// SourceFormatYAML indicates the input was YAML.
	SourceFormatYAML SourceFormat = "yaml"
	// SourceFormatUnknown indicates the format could not be determined.
	SourceFormatUnknown SourceFormat = "unknown"
)

// ParseResult contains the decoded endpoints and information about the source.
type ParseResult struct {
	// Endpoints in source order
	Endpoints []Endpoint
	// SourcePath is the file path, or a caller-supplied name for readers and bytes
	SourcePath string
	// SourceFormat is the detected format
	SourceFormat SourceFormat
	// SourceSize is the input size in bytes
	SourceSize int64
	// LoadTime is the time spent reading and decoding
	LoadTime time.Duration
}

// Option is a function that configures a parse operation
type Option func(*parseConfig) error

type parseConfig struct {
	// Input source (exactly one must be set)
	filePath *string
	reader   io.Reader
	bytes    []byte

	sourceName *string
	logger     Logger
}

// ParseWithOptions decodes apiDoc endpoint data using functional options.
//
// Example:
//
//	result, err := apidoc.ParseWithOptions(
//	    apidoc.WithFilePath("doc/api_data.json"),
//	)
func ParseWithOptions(opts ...Option) (*ParseResult, error) {
	cfg := &parseConfig{logger: NopLogger{}}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, fmt.Errorf("apidoc: invalid options: %w", err)
		}
	}
	if err := options.ValidateSingleInputSource(
		"apidoc: must specify an input source (use WithFilePath, WithReader, or WithBytes)",
		"apidoc: must specify exactly one input source",
		cfg.filePath != nil, cfg.reader != nil, cfg.bytes != nil,
	); err != nil {
		return nil, err
	}

	start := time.Now()
	var (
		data       []byte
		sourcePath string
		format     = SourceFormatUnknown
	)
	switch {
	case cfg.filePath != nil:
		sourcePath = *cfg.filePath
		raw, err := os.ReadFile(sourcePath)
		if err != nil {
			return nil, &oaserrors.ParseError{Path: sourcePath, Message: "reading file", Cause: err}
		}
		data = raw
		format = detectFormatFromPath(sourcePath)
	case cfg.reader != nil:
		sourcePath = "ReaderInput.json"
		raw, err := io.ReadAll(cfg.reader)
		if err != nil {
			return nil, &oaserrors.ParseError{Path: sourcePath, Message: "reading input", Cause: err}
		}
		data = raw
	default:
		sourcePath = "ByteInput.json"
		data = cfg.bytes
	}
	if cfg.sourceName != nil {
		sourcePath = *cfg.sourceName
	}
	if format == SourceFormatUnknown {
		format = detectFormatFromContent(data)
	}

	endpoints, err := decodeEndpoints(data)
	if err != nil {
		return nil, &oaserrors.ParseError{Path: sourcePath, Message: "decoding endpoints", Cause: err}
	}

	result := &ParseResult{
		Endpoints:    endpoints,
		SourcePath:   sourcePath,
		SourceFormat: format,
		SourceSize:   int64(len(data)),
		LoadTime:     time.Since(start),
	}
	cfg.logger.Debug("decoded apidoc endpoints",
		"source", sourcePath, "format", string(format), "endpoints", len(endpoints))
	return result, nil
}

// decodeEndpoints accepts either the bare api_data.json array or an object
// wrapping it under "api".
func decodeEndpoints(data []byte) ([]Endpoint, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, err
	}
	if root.Kind == 0 || len(root.Content) == 0 {
		return nil, fmt.Errorf("empty document")
	}
	node := root.Content[0]
	if node.Kind == yaml.MappingNode {
		var wrapped *yaml.Node
		for i := 0; i+1 < len(node.Content); i += 2 {
			if node.Content[i].Value == "api" {
				wrapped = node.Content[i+1]
				break
			}
		}
		if wrapped == nil {
			return nil, fmt.Errorf("expected an array of endpoints or an object with an \"api\" array")
		}
		node = wrapped
	}
	if node.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("expected an array of endpoints at line %d", node.Line)
	}

	endpoints := make([]Endpoint, 0, len(node.Content))
	if err := node.Decode(&endpoints); err != nil {
		return nil, err
	}
	return endpoints, nil
}

// WithFilePath specifies a file path as the input source
func WithFilePath(path string) Option {
	return func(cfg *parseConfig) error {
		cfg.filePath = &path
		return nil
	}
}

// WithReader specifies an io.Reader as the input source
func WithReader(r io.Reader) Option {
	return func(cfg *parseConfig) error {
		if r == nil {
			return &oaserrors.ConfigError{Option: "reader", Message: "reader cannot be nil"}
		}
		cfg.reader = r
		return nil
	}
}

// WithBytes specifies a byte slice as the input source
func WithBytes(data []byte) Option {
	return func(cfg *parseConfig) error {
		if data == nil {
			return &oaserrors.ConfigError{Option: "bytes", Message: "bytes cannot be nil"}
		}
		cfg.bytes = data
		return nil
	}
}

// WithSourceName overrides ParseResult.SourcePath, useful for reader and
// byte inputs.
func WithSourceName(name string) Option {
	return func(cfg *parseConfig) error {
		cfg.sourceName = &name
		return nil
	}
}

// WithLogger sets the logger. A nil logger keeps the NopLogger default.
func WithLogger(l Logger) Option {
	return func(cfg *parseConfig) error {
		if l != nil {
			cfg.logger = l
		}
		return nil
	}
}

// ParseProject decodes api_project.json content.
func ParseProject(data []byte) (*Project, error) {
	var p Project
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, &oaserrors.ParseError{Path: "project", Message: "decoding project metadata", Cause: err}
	}
	return &p, nil
}

// LoadProject reads and decodes an api_project.json file.
func LoadProject(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &oaserrors.ParseError{Path: path, Message: "reading project file", Cause: err}
	}
	p, err := ParseProject(data)
	if err != nil {
		var perr *oaserrors.ParseError
		if errors.As(err, &perr) {
			perr.Path = path
		}
		return nil, err
	}
	return p, nil
}

// FormatBytes formats a byte count into a human-readable string using binary units (KiB, MiB, etc.)
func FormatBytes(size int64) string {
	if size < 0 {
		return fmt.Sprintf("%d B", size)
	}

	const unit = 1024
	if size < unit {
		return fmt.Sprintf("%d B", size)
	}

	div, exp := int64(unit), 0
	for n := size / unit; n >= unit && exp < 5; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(size)/float64(div), "KMGTPE"[exp])
}

func detectFormatFromPath(path string) SourceFormat {
	switch filepath.Ext(path) {
	case ".json":
		return SourceFormatJSON
	case ".yaml", ".yml":
		return SourceFormatYAML
	default:
		return SourceFormatUnknown
	}
}

// detectFormatFromContent treats input starting with '{' or '[' as JSON.
func detectFormatFromContent(data []byte) SourceFormat {
	trimmed := bytes.TrimLeft(data, " \t\n\r")
	if len(trimmed) == 0 {
		return SourceFormatUnknown
	}
	if trimmed[0] == '{' || trimmed[0] == '[' {
		return SourceFormatJSON
	}
	return SourceFormatYAML
}
