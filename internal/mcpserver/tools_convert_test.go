package mcpserver

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertTool_FileInput(t *testing.T) {
	input := convertInput{
		Endpoints: endpointsInput{File: testEndpointsFile},
		Project:   projectInput{File: "../../converter/testdata/api_project.json"},
	}
	res, output, err := handleConvert(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.Nil(t, res)

	assert.False(t, output.Success, "dropped path parameters are warnings")
	assert.Equal(t, convertStats{Paths: 2, Operations: 3, Definitions: 4, Properties: 6}, output.Stats)
	assert.Equal(t, 2, output.WarningCount)
	assert.Equal(t, 1, output.InfoCount)
	assert.Equal(t, 3, output.Returned)
	assert.Contains(t, output.Document, `"swagger": "2.0"`)
	assert.Contains(t, output.Document, `"title": "features"`)
	assert.Nil(t, output.Valid)
}

func TestConvertTool_InlineYAML(t *testing.T) {
	input := convertInput{
		Endpoints: endpointsInput{Content: pingEndpoints},
		Format:    "yaml",
	}
	_, output, err := handleConvert(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)

	assert.True(t, output.Success)
	assert.Contains(t, output.Document, "swagger:")
	assert.Contains(t, output.Document, "/ping:")
}

func TestConvertTool_Options(t *testing.T) {
	opIDs := true
	normalize := true
	input := convertInput{
		Endpoints:      endpointsInput{Content: `[{"type": "get", "url": "/users/:id", "name": "GetUser", "group": "User"}]`},
		OperationIDs:   &opIDs,
		NormalizePaths: &normalize,
		Host:           "api.example.com",
		BasePath:       "/v1",
		Schemes:        []string{"https"},
	}
	_, output, err := handleConvert(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)

	assert.Contains(t, output.Document, `"/users/{id}"`)
	assert.Contains(t, output.Document, `"operationId": "GetUser"`)
	assert.Contains(t, output.Document, `"host": "api.example.com"`)
	assert.Contains(t, output.Document, `"basePath": "/v1"`)
}

func TestConvertTool_Strict(t *testing.T) {
	strict := true
	input := convertInput{
		Endpoints: endpointsInput{File: testEndpointsFile},
		Strict:    &strict,
	}
	res, _, err := handleConvert(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.True(t, res.IsError)
}

func TestConvertTool_Validate(t *testing.T) {
	input := convertInput{
		Endpoints: endpointsInput{Content: pingEndpoints},
		Project:   projectInput{Content: `{"name": "health", "version": "1.0.0"}`},
		Validate:  true,
	}
	_, output, err := handleConvert(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.NotNil(t, output.Valid)
}

func TestConvertTool_OutputFile(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "swagger.json")
	input := convertInput{
		Endpoints: endpointsInput{Content: pingEndpoints},
		Output:    outPath,
	}
	_, output, err := handleConvert(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)

	assert.Equal(t, outPath, output.WrittenTo)
	assert.Empty(t, output.Document)
	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "/ping")
}

func TestConvertTool_Pagination(t *testing.T) {
	input := convertInput{
		Endpoints: endpointsInput{File: testEndpointsFile},
		Offset:    1,
		Limit:     1,
	}
	_, output, err := handleConvert(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	assert.Equal(t, 1, output.Returned)
	assert.Equal(t, 2, output.WarningCount)
}

func TestConvertTool_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input convertInput
	}{
		{"missing endpoints", convertInput{}},
		{"bad format", convertInput{Endpoints: endpointsInput{Content: pingEndpoints}, Format: "xml"}},
		{"bad base path", convertInput{Endpoints: endpointsInput{Content: pingEndpoints}, BasePath: "v1"}},
		{"bad scheme", convertInput{Endpoints: endpointsInput{Content: pingEndpoints}, Schemes: []string{"ftp"}}},
		{"missing type", convertInput{Endpoints: endpointsInput{Content: `[{"url": "/a", "name": "A"}]`}}},
		{"bad project", convertInput{Endpoints: endpointsInput{Content: pingEndpoints}, Project: projectInput{Content: "[: nope"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, _, err := handleConvert(context.Background(), &mcp.CallToolRequest{}, tt.input)
			require.NoError(t, err)
			require.NotNil(t, res)
			assert.True(t, res.IsError)
		})
	}
}
