package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestValidateOutputFormat(t *testing.T) {
	tests := []struct {
		name    string
		format  string
		wantErr bool
	}{
		{"valid text", FormatText, false},
		{"valid json", FormatJSON, false},
		{"valid yaml", FormatYAML, false},
		{"invalid format", "xml", true},
		{"empty format", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputFormat(tt.format)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOutputFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
			}
		})
	}
}

func TestOutputStructured(t *testing.T) {
	data := map[string]string{"key": "value"}

	var buf bytes.Buffer
	if err := OutputStructured(&buf, data, FormatJSON); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `"key": "value"`) {
		t.Errorf("unexpected JSON output: %s", buf.String())
	}

	buf.Reset()
	if err := OutputStructured(&buf, data, FormatYAML); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "key: value") {
		t.Errorf("unexpected YAML output: %s", buf.String())
	}

	if err := OutputStructured(&buf, data, FormatText); err == nil {
		t.Error("expected error for text format")
	}
}

func TestValidateOutputPath(t *testing.T) {
	if err := ValidateOutputPath("out.json", []string{"in.json", StdinFilePath, ""}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := ValidateOutputPath("in.json", []string{"./in.json"}); err == nil {
		t.Error("expected error when output overwrites input")
	}
}

func TestWriteOutput(t *testing.T) {
	var stdout bytes.Buffer
	written, err := WriteOutput("", []byte("doc"), &stdout)
	if err != nil || written != "" || stdout.String() != "doc" {
		t.Errorf("stdout write: written=%q err=%v out=%q", written, err, stdout.String())
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "out.json")
	written, err = WriteOutput(path, []byte("doc"), &stdout)
	if err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(written)
	if err != nil || string(data) != "doc" {
		t.Errorf("file write: %v %q", err, data)
	}

	if _, err := WriteOutput(dir, []byte("doc"), &stdout); err == nil {
		t.Error("expected error when output is a directory")
	}
}

func TestFormatSpecPath(t *testing.T) {
	if got := FormatSpecPath(StdinFilePath); got != "<stdin>" {
		t.Errorf("FormatSpecPath(-) = %q", got)
	}
	if got := FormatSpecPath("a.json"); got != "a.json" {
		t.Errorf("FormatSpecPath(a.json) = %q", got)
	}
}

func TestDiscoverProjectFile(t *testing.T) {
	if got := DiscoverProjectFile(testDataFile); filepath.Base(got) != ProjectFileName {
		t.Errorf("expected sibling project file, got %q", got)
	}
	if got := DiscoverProjectFile(StdinFilePath); got != "" {
		t.Errorf("expected no project for stdin, got %q", got)
	}
	if got := DiscoverProjectFile(filepath.Join(t.TempDir(), "api_data.json")); got != "" {
		t.Errorf("expected no project in empty dir, got %q", got)
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	NewLogger(&buf, false).Debug("hidden")
	if buf.Len() != 0 {
		t.Error("debug output should be hidden without verbose")
	}
	NewLogger(&buf, true).Debug("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Error("debug output should be shown with verbose")
	}
}
