package mcpserver

import (
	"context"
	"fmt"
	"os"

	"github.com/erraggy/apidocswagger/validator"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// documentInput is a Swagger 2.0 document given as a file or inline content.
type documentInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to a Swagger 2.0 document on disk"`
	Content string `json:"content,omitempty" jsonschema:"Inline Swagger 2.0 document (JSON or YAML)"`
}

func (in documentInput) load() ([]byte, error) {
	if (in.File == "") == (in.Content == "") {
		return nil, fmt.Errorf("exactly one of file or content must be provided")
	}
	if in.File != "" {
		return os.ReadFile(in.File)
	}
	if err := checkInlineSize(in.Content); err != nil {
		return nil, err
	}
	return []byte(in.Content), nil
}

type validateInput struct {
	Document documentInput `json:"document"         jsonschema:"The Swagger 2.0 document to validate"`
	Offset   int           `json:"offset,omitempty" jsonschema:"Skip the first N errors (for pagination)"`
	Limit    int           `json:"limit,omitempty"  jsonschema:"Maximum number of errors to return (default 100)"`
}

type validateIssue struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

type validateOutput struct {
	Valid      bool            `json:"valid"`
	ErrorCount int             `json:"error_count"`
	Returned   int             `json:"returned"`
	Errors     []validateIssue `json:"errors,omitempty"`
}

func handleValidate(ctx context.Context, _ *mcp.CallToolRequest, input validateInput) (*mcp.CallToolResult, validateOutput, error) {
	data, err := input.Document.load()
	if err != nil {
		return errResult(err), validateOutput{}, nil
	}

	result, err := validator.ValidateBytes(ctx, data)
	if err != nil {
		return errResult(err), validateOutput{}, nil
	}

	output := validateOutput{
		Valid:      result.Valid,
		ErrorCount: result.ErrorCount,
	}
	page := paginate(result.Issues, input.Offset, input.Limit)
	output.Errors = makeSlice[validateIssue](len(page))
	for _, e := range page {
		output.Errors = append(output.Errors, validateIssue{Path: e.Path, Message: e.Message})
	}
	output.Returned = len(output.Errors)

	return nil, output, nil
}
