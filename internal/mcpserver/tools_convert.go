package mcpserver

import (
	"context"
	"fmt"
	"os"

	"github.com/erraggy/apidocswagger/converter"
	"github.com/erraggy/apidocswagger/internal/issues"
	"github.com/erraggy/apidocswagger/internal/pathutil"
	"github.com/erraggy/apidocswagger/swagger"
	"github.com/erraggy/apidocswagger/validator"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type convertInput struct {
	Endpoints      endpointsInput `json:"endpoints"                 jsonschema:"The apiDoc endpoint array to convert"`
	Project        projectInput   `json:"project,omitempty"         jsonschema:"Optional api_project.json used for the info block"`
	Format         string         `json:"format,omitempty"          jsonschema:"Output format: json (default) or yaml"`
	OperationIDs   *bool          `json:"operation_ids,omitempty"   jsonschema:"Emit endpoint names as operationId"`
	NormalizePaths *bool          `json:"normalize_paths,omitempty" jsonschema:"Rewrite :name placeholders as {name} in path keys"`
	Host           string         `json:"host,omitempty"            jsonschema:"Document host"`
	BasePath       string         `json:"base_path,omitempty"       jsonschema:"Document basePath, must start with /"`
	Schemes        []string       `json:"schemes,omitempty"         jsonschema:"Document schemes (http\\, https\\, ws\\, wss)"`
	Strict         *bool          `json:"strict,omitempty"          jsonschema:"Fail the conversion when any warning is raised"`
	Validate       bool           `json:"validate,omitempty"        jsonschema:"Also validate the produced document"`
	Output         string         `json:"output,omitempty"          jsonschema:"File path to write the document. If omitted the document is returned inline."`
	Offset         int            `json:"offset,omitempty"          jsonschema:"Skip the first N issues (for pagination)"`
	Limit          int            `json:"limit,omitempty"           jsonschema:"Maximum number of issues to return (default 100)"`
}

type convertIssue struct {
	Severity string `json:"severity"`
	Path     string `json:"path"`
	Message  string `json:"message"`
	Context  string `json:"context,omitempty"`
}

type convertStats struct {
	Paths       int `json:"paths"`
	Operations  int `json:"operations"`
	Definitions int `json:"definitions"`
	Properties  int `json:"properties"`
}

type convertOutput struct {
	Success      bool           `json:"success"`
	Valid        *bool          `json:"valid,omitempty"`
	Stats        convertStats   `json:"stats"`
	InfoCount    int            `json:"info_count"`
	WarningCount int            `json:"warning_count"`
	ErrorCount   int            `json:"error_count"`
	Returned     int            `json:"returned"`
	Issues       []convertIssue `json:"issues,omitempty"`
	WrittenTo    string         `json:"written_to,omitempty"`
	Document     string         `json:"document,omitempty"`
}

func handleConvert(ctx context.Context, _ *mcp.CallToolRequest, input convertInput) (*mcp.CallToolResult, convertOutput, error) {
	format, err := swagger.ParseFormat(input.Format)
	if err != nil {
		return errResult(err), convertOutput{}, nil
	}

	opts, err := buildConverterOptions(input)
	if err != nil {
		return errResult(err), convertOutput{}, nil
	}

	result, err := converter.ConvertWithOptions(opts...)
	if err != nil {
		return errResult(err), convertOutput{}, nil
	}

	output := convertOutput{
		Success: result.Success,
		Stats: convertStats{
			Paths:       result.Stats.Paths,
			Operations:  result.Stats.Operations,
			Definitions: result.Stats.Definitions,
			Properties:  result.Stats.Properties,
		},
		InfoCount:    result.InfoCount,
		WarningCount: result.WarningCount,
	}

	all := result.Issues
	if input.Validate {
		vr, err := validator.Validate(ctx, result.Document)
		if err != nil {
			return errResult(err), convertOutput{}, nil
		}
		output.Valid = &vr.Valid
		output.ErrorCount = vr.ErrorCount
		all = append(append([]issues.Issue(nil), all...), vr.Issues...)
	}

	page := paginate(all, input.Offset, input.Limit)
	output.Issues = makeSlice[convertIssue](len(page))
	for _, issue := range page {
		output.Issues = append(output.Issues, convertIssue{
			Severity: issue.Severity.String(),
			Path:     issue.Path,
			Message:  issue.Message,
			Context:  issue.Context,
		})
	}
	output.Returned = len(output.Issues)

	data, err := swagger.Marshal(result.Document, format)
	if err != nil {
		return errResult(err), convertOutput{}, nil
	}

	if input.Output != "" {
		path, err := pathutil.SanitizeOutputPath(input.Output)
		if err != nil {
			return errResult(err), convertOutput{}, nil
		}
		if err := os.WriteFile(path, data, 0o600); err != nil {
			return errResult(fmt.Errorf("failed to write output file: %w", err)), convertOutput{}, nil
		}
		output.WrittenTo = path
	} else {
		output.Document = string(data)
	}

	return nil, output, nil
}

// buildConverterOptions translates the MCP input into converter options,
// applying the server defaults for omitted flags.
func buildConverterOptions(input convertInput) ([]converter.Option, error) {
	parsed, err := input.Endpoints.resolve()
	if err != nil {
		return nil, err
	}
	project, err := input.Project.resolve()
	if err != nil {
		return nil, err
	}

	operationIDs := cfg.OperationIDs
	if input.OperationIDs != nil {
		operationIDs = *input.OperationIDs
	}
	normalize := cfg.NormalizePathTemplates
	if input.NormalizePaths != nil {
		normalize = *input.NormalizePaths
	}
	strict := cfg.Strict
	if input.Strict != nil {
		strict = *input.Strict
	}

	opts := []converter.Option{
		converter.WithEndpoints(parsed.Endpoints),
		converter.WithOperationIDs(operationIDs),
		converter.WithNormalizePathTemplates(normalize),
		converter.WithStrictMode(strict),
		converter.WithHost(input.Host),
		converter.WithBasePath(input.BasePath),
		converter.WithSchemes(input.Schemes...),
	}
	if project != nil {
		opts = append(opts, converter.WithProject(*project))
	}
	return opts, nil
}
