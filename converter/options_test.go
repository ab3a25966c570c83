package converter

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/erraggy/apidocswagger/apidoc"
	"github.com/erraggy/apidocswagger/oaserrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertWithOptions_Sources(t *testing.T) {
	data, err := os.ReadFile("testdata/api_data.json")
	require.NoError(t, err)

	tests := []struct {
		name       string
		opt        Option
		wantSource string
	}{
		{"file", WithFilePath("testdata/api_data.json"), "testdata/api_data.json"},
		{"bytes", WithBytes(data), "ByteInput.json"},
		{"reader", WithReader(strings.NewReader(string(data))), "ReaderInput.json"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ConvertWithOptions(tt.opt)
			require.NoError(t, err)
			assert.Equal(t, tt.wantSource, result.SourcePath)
			assert.Equal(t, 3, result.Stats.Operations)
		})
	}

	result, err := ConvertWithOptions(WithEndpoints(nil))
	require.NoError(t, err)
	assert.Empty(t, result.SourcePath)
	assert.Equal(t, 0, result.Stats.Operations)
}

func TestConvertWithOptions_ProjectFile(t *testing.T) {
	result, err := ConvertWithOptions(
		WithFilePath("testdata/api_data.json"),
		WithProjectFile("testdata/api_project.json"),
		WithOperationIDs(true),
		WithHost("flags.example.com"),
		WithBasePath("/api"),
		WithSchemes("https", "http"),
	)
	require.NoError(t, err)

	doc := result.Document
	assert.Equal(t, "features", doc.Info.Title)
	assert.Equal(t, "2.1.0", doc.Info.Version)
	assert.Equal(t, "Feature flags", doc.Info.Description)
	require.NotNil(t, doc.Info.Contact)
	assert.Equal(t, "flags@example.com", doc.Info.Contact.Email)
	assert.Equal(t, "flags.example.com", doc.Host)
	assert.Equal(t, "/api", doc.BasePath)
	assert.Equal(t, []string{"https", "http"}, doc.Schemes)
	assert.Equal(t, "GetFeatures", operation(t, doc, "/features", "get").OperationID)
}

func TestConvertWithOptions_ProjectValue(t *testing.T) {
	result, err := ConvertWithOptions(
		WithEndpoints([]apidoc.Endpoint{{Type: "get", URL: "/a/:id", Name: "A"}}),
		WithProject(apidoc.Project{Name: "n", Version: "1"}),
		WithNormalizePathTemplates(true),
	)
	require.NoError(t, err)
	assert.Equal(t, "n", result.Document.Info.Title)
	assert.Equal(t, []string{"/a/{id}"}, result.Document.Paths.Keys())
}

func TestConvertWithOptions_StrictMode(t *testing.T) {
	result, err := ConvertWithOptions(
		WithEndpoints([]apidoc.Endpoint{{Type: "post", URL: "/a", Name: "A"}}),
		WithStrictMode(true),
	)
	require.Error(t, err)
	assert.True(t, errors.Is(err, oaserrors.ErrConversion))
	assert.NotNil(t, result)
}

func TestConvertWithOptions_ConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
	}{
		{"no source", nil},
		{"two sources", []Option{WithFilePath("a.json"), WithBytes([]byte("[]"))}},
		{"nil reader", []Option{WithReader(nil)}},
		{"nil bytes", []Option{WithBytes(nil)}},
		{"bad scheme", []Option{WithEndpoints(nil), WithSchemes("ftp")}},
		{"relative base path", []Option{WithEndpoints(nil), WithBasePath("v1")}},
		{"two projects", []Option{WithEndpoints(nil), WithProject(apidoc.Project{}), WithProjectFile("p.json")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ConvertWithOptions(tt.opts...)
			require.Error(t, err)
			assert.True(t, errors.Is(err, oaserrors.ErrConfig), err.Error())
		})
	}
}

func TestConvertWithOptions_InputErrors(t *testing.T) {
	_, err := ConvertWithOptions(WithFilePath(filepath.Join(t.TempDir(), "missing.json")))
	require.Error(t, err)
	assert.True(t, errors.Is(err, oaserrors.ErrParse))

	_, err = ConvertWithOptions(WithEndpoints(nil), WithProjectFile(filepath.Join(t.TempDir(), "missing.json")))
	require.Error(t, err)
	assert.True(t, errors.Is(err, oaserrors.ErrParse))

	_, err = ConvertWithOptions(WithBytes([]byte(`[{"type":"get","url":"/a","parameter":{"fields":{"Parameter":[{"field":"x"}]}}}]`)))
	require.Error(t, err)
	assert.True(t, errors.Is(err, oaserrors.ErrValidation))
}

func TestConvertWithOptions_IncludeInfo(t *testing.T) {
	result, err := ConvertWithOptions(WithFilePath("testdata/api_data.json"), WithIncludeInfo(false))
	require.NoError(t, err)
	assert.Equal(t, 0, result.InfoCount)
	for _, issue := range result.Issues {
		assert.NotEqual(t, SeverityInfo, issue.Severity)
	}
}
