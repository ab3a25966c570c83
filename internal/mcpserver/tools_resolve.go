package mcpserver

import (
	"context"
	"fmt"

	"github.com/erraggy/apidocswagger/apidoc"
	"github.com/erraggy/apidocswagger/converter"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type resolveInput struct {
	Field string `json:"field"          jsonschema:"apiDoc field name, e.g. user.address.city"`
	Type  string `json:"type,omitempty" jsonschema:"apiDoc declared type, e.g. String[]"`
}

type resolveOutput struct {
	Property   string `json:"property"`
	Definition string `json:"definition,omitempty"`
	Nested     bool   `json:"nested"`
	Type       string `json:"type,omitempty"`
	Array      bool   `json:"array"`
	ItemType   string `json:"item_type,omitempty"`
	Ref        string `json:"ref,omitempty"`
}

func handleResolveField(_ context.Context, _ *mcp.CallToolRequest, input resolveInput) (*mcp.CallToolResult, resolveOutput, error) {
	if input.Field == "" {
		return errResult(fmt.Errorf("field is required")), resolveOutput{}, nil
	}

	property, definition := converter.ResolveNestedName(input.Field)
	output := resolveOutput{
		Property:   property,
		Definition: definition,
		Nested:     definition != "",
	}

	if input.Type != "" {
		schema := converter.PropertySchema(apidoc.Field{Field: input.Field, Type: input.Type})
		output.Type = schema.Type
		output.Ref = schema.Ref
		if schema.Items != nil {
			output.Array = true
			output.ItemType = schema.Items.Type
		}
	}

	return nil, output, nil
}
