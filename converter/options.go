package converter

import (
	"fmt"
	"io"

	"github.com/erraggy/apidocswagger/apidoc"
	"github.com/erraggy/apidocswagger/internal/options"
	"github.com/erraggy/apidocswagger/oaserrors"
)

// Option is a function that configures a conversion operation
type Option func(*convertConfig) error

// convertConfig holds configuration for a conversion operation
type convertConfig struct {
	// Input source (exactly one must be set)
	endpoints    []apidoc.Endpoint
	hasEndpoints bool
	filePath     *string
	reader       io.Reader
	bytes        []byte

	project     *apidoc.Project
	projectFile *string

	operationIDs bool
	normalize    bool
	host         string
	basePath     string
	schemes      []string
	logger       apidoc.Logger
	includeInfo  bool
	strictMode   bool
}

// ConvertWithOptions converts apiDoc endpoints using functional options.
//
// Example:
//
//	result, err := converter.ConvertWithOptions(
//	    converter.WithFilePath("doc/api_data.json"),
//	    converter.WithProjectFile("doc/api_project.json"),
//	)
func ConvertWithOptions(opts ...Option) (*ConversionResult, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("converter: invalid options: %w", err)
	}

	c := &Converter{
		StrictMode:             cfg.strictMode,
		IncludeInfo:            cfg.includeInfo,
		OperationIDs:           cfg.operationIDs,
		NormalizePathTemplates: cfg.normalize,
		Project:                cfg.project,
		Host:                   cfg.host,
		BasePath:               cfg.basePath,
		Schemes:                cfg.schemes,
		Logger:                 cfg.logger,
	}

	if cfg.projectFile != nil {
		p, err := apidoc.LoadProject(*cfg.projectFile)
		if err != nil {
			return nil, fmt.Errorf("converter: %w", err)
		}
		c.Project = p
	}

	if cfg.hasEndpoints {
		return c.ConvertEndpoints(cfg.endpoints)
	}

	var source apidoc.Option
	switch {
	case cfg.filePath != nil:
		source = apidoc.WithFilePath(*cfg.filePath)
	case cfg.reader != nil:
		source = apidoc.WithReader(cfg.reader)
	default:
		source = apidoc.WithBytes(cfg.bytes)
	}
	parsed, err := apidoc.ParseWithOptions(source, apidoc.WithLogger(cfg.logger))
	if err != nil {
		return nil, fmt.Errorf("converter: %w", err)
	}
	result, err := c.ConvertEndpoints(parsed.Endpoints)
	if result != nil {
		result.SourcePath = parsed.SourcePath
	}
	return result, err
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*convertConfig, error) {
	cfg := &convertConfig{
		includeInfo: true,
		logger:      apidoc.NopLogger{},
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if err := options.ValidateSingleInputSource(
		"must specify an input source (use WithEndpoints, WithFilePath, WithReader, or WithBytes)",
		"must specify exactly one input source",
		cfg.hasEndpoints, cfg.filePath != nil, cfg.reader != nil, cfg.bytes != nil,
	); err != nil {
		return nil, err
	}

	if cfg.project != nil && cfg.projectFile != nil {
		return nil, &oaserrors.ConfigError{
			Option:  "project",
			Message: "WithProject and WithProjectFile are mutually exclusive",
		}
	}

	return cfg, nil
}

// WithEndpoints specifies already-decoded endpoints as the input source
func WithEndpoints(endpoints []apidoc.Endpoint) Option {
	return func(cfg *convertConfig) error {
		cfg.endpoints = endpoints
		cfg.hasEndpoints = true
		return nil
	}
}

// WithFilePath specifies an api_data.json file as the input source
func WithFilePath(path string) Option {
	return func(cfg *convertConfig) error {
		cfg.filePath = &path
		return nil
	}
}

// WithReader specifies an io.Reader as the input source
func WithReader(r io.Reader) Option {
	return func(cfg *convertConfig) error {
		if r == nil {
			return &oaserrors.ConfigError{Option: "reader", Message: "reader cannot be nil"}
		}
		cfg.reader = r
		return nil
	}
}

// WithBytes specifies raw api_data.json content as the input source
func WithBytes(data []byte) Option {
	return func(cfg *convertConfig) error {
		if data == nil {
			return &oaserrors.ConfigError{Option: "bytes", Message: "bytes cannot be nil"}
		}
		cfg.bytes = data
		return nil
	}
}

// WithProject sets the project metadata used for the info block
func WithProject(p apidoc.Project) Option {
	return func(cfg *convertConfig) error {
		cfg.project = &p
		return nil
	}
}

// WithProjectFile loads the project metadata from an api_project.json file
func WithProjectFile(path string) Option {
	return func(cfg *convertConfig) error {
		cfg.projectFile = &path
		return nil
	}
}

// WithOperationIDs emits each endpoint name as the operationId
// Default: false
func WithOperationIDs(enabled bool) Option {
	return func(cfg *convertConfig) error {
		cfg.operationIDs = enabled
		return nil
	}
}

// WithNormalizePathTemplates rewrites ":name" placeholders as "{name}" in
// path keys
// Default: false
func WithNormalizePathTemplates(enabled bool) Option {
	return func(cfg *convertConfig) error {
		cfg.normalize = enabled
		return nil
	}
}

// WithHost sets the document host
func WithHost(host string) Option {
	return func(cfg *convertConfig) error {
		cfg.host = host
		return nil
	}
}

// WithBasePath sets the document basePath. It must start with "/".
func WithBasePath(basePath string) Option {
	return func(cfg *convertConfig) error {
		if basePath != "" && basePath[0] != '/' {
			return &oaserrors.ConfigError{Option: "basePath", Value: basePath, Message: "must start with /"}
		}
		cfg.basePath = basePath
		return nil
	}
}

// WithSchemes sets the document schemes (http, https, ws, wss)
func WithSchemes(schemes ...string) Option {
	return func(cfg *convertConfig) error {
		for _, s := range schemes {
			switch s {
			case "http", "https", "ws", "wss":
			default:
				return &oaserrors.ConfigError{Option: "schemes", Value: s, Message: "must be one of http, https, ws, wss"}
			}
		}
		cfg.schemes = schemes
		return nil
	}
}

// WithLogger sets the logger. A nil logger keeps the NopLogger default.
func WithLogger(l apidoc.Logger) Option {
	return func(cfg *convertConfig) error {
		if l != nil {
			cfg.logger = l
		}
		return nil
	}
}

// WithIncludeInfo enables or disables informational messages
// Default: true
func WithIncludeInfo(enabled bool) Option {
	return func(cfg *convertConfig) error {
		cfg.includeInfo = enabled
		return nil
	}
}

// WithStrictMode makes any warning fail the conversion
// Default: false
func WithStrictMode(enabled bool) Option {
	return func(cfg *convertConfig) error {
		cfg.strictMode = enabled
		return nil
	}
}
