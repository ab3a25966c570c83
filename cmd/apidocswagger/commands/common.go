// Package commands provides CLI command handlers for apidocswagger.
package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/erraggy/apidocswagger"
	"github.com/erraggy/apidocswagger/internal/cliutil"
	"github.com/erraggy/apidocswagger/internal/pathutil"
	"go.yaml.in/yaml/v4"
)

// Output format constants
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// StdinFilePath is the special file path used to indicate reading from stdin.
const StdinFilePath = "-"

// ProjectFileName is the apiDoc project metadata file looked up next to the
// endpoint file.
const ProjectFileName = "api_project.json"

// ValidateOutputFormat validates a report format and returns an error if invalid.
func ValidateOutputFormat(format string) error {
	if format != FormatText && format != FormatJSON && format != FormatYAML {
		return fmt.Errorf("invalid format '%s'. Valid formats: %s, %s, %s", format, FormatText, FormatJSON, FormatYAML)
	}
	return nil
}

// OutputStructured writes data in the specified format (json or yaml) to w.
func OutputStructured(w io.Writer, data any, format string) error {
	var out []byte
	var err error

	switch format {
	case FormatJSON:
		out, err = json.MarshalIndent(data, "", "  ")
	case FormatYAML:
		out, err = yaml.Marshal(data)
	default:
		return fmt.Errorf("invalid format for structured output: %s", format)
	}
	if err != nil {
		return fmt.Errorf("marshaling to %s: %w", format, err)
	}

	cliutil.Writef(w, "%s\n", out)
	return nil
}

// ValidateOutputPath checks that outputPath does not overwrite any input.
func ValidateOutputPath(outputPath string, inputPaths []string) error {
	absOutputPath, err := filepath.Abs(outputPath)
	if err != nil {
		return fmt.Errorf("invalid output path: %w", err)
	}

	for _, inputPath := range inputPaths {
		if inputPath == "" || inputPath == StdinFilePath {
			continue
		}
		absInputPath, err := filepath.Abs(inputPath)
		if err != nil {
			return fmt.Errorf("invalid input path %s: %w", inputPath, err)
		}
		if absOutputPath == absInputPath {
			return fmt.Errorf("output file %s would overwrite input file %s", outputPath, inputPath)
		}
	}
	return nil
}

// WriteOutput writes data to path after sanitizing it, or to stdout when
// path is empty. It returns the path actually written.
func WriteOutput(path string, data []byte, stdout io.Writer) (string, error) {
	if path == "" {
		if _, err := stdout.Write(data); err != nil {
			return "", fmt.Errorf("writing document to stdout: %w", err)
		}
		return "", nil
	}
	clean, err := pathutil.SanitizeOutputPath(path)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(clean, data, 0o600); err != nil {
		return "", fmt.Errorf("writing output file: %w", err)
	}
	return clean, nil
}

// FormatSpecPath returns a display-friendly path for an input.
// Returns "<stdin>" if the path is StdinFilePath, otherwise returns the path as-is.
func FormatSpecPath(specPath string) string {
	if specPath == StdinFilePath {
		return "<stdin>"
	}
	return specPath
}

// DiscoverProjectFile returns the api_project.json next to inputPath, or ""
// when there is none or the input is stdin.
func DiscoverProjectFile(inputPath string) string {
	if inputPath == "" || inputPath == StdinFilePath {
		return ""
	}
	candidate := filepath.Join(filepath.Dir(inputPath), ProjectFileName)
	if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
		return candidate
	}
	return ""
}

// NewLogger returns a text slog logger on w. Verbose enables debug output;
// otherwise only warnings and errors are shown.
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// OutputHeader writes the common report header.
func OutputHeader(w io.Writer, title, inputPath string) {
	cliutil.Writef(w, "%s\n", title)
	for range title {
		cliutil.Writef(w, "=")
	}
	cliutil.Writef(w, "\n\n")
	cliutil.Writef(w, "apidocswagger version: %s\n", apidocswagger.Version())
	cliutil.Writef(w, "Input: %s\n", FormatSpecPath(inputPath))
}
