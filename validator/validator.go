package validator

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/erraggy/apidocswagger/internal/issues"
	"github.com/erraggy/apidocswagger/internal/severity"
	"github.com/erraggy/apidocswagger/oaserrors"
	"github.com/erraggy/apidocswagger/swagger"
	"github.com/getkin/kin-openapi/openapi2"
	"github.com/getkin/kin-openapi/openapi2conv"
	"github.com/getkin/kin-openapi/openapi3"
	"go.yaml.in/yaml/v4"
)

// SeverityError indicates a finding that makes the document invalid
const SeverityError = severity.SeverityError

// ValidationIssue represents a single validation finding
type ValidationIssue = issues.Issue

// Result contains the findings for one document
type Result struct {
	// Valid is true if no errors were found
	Valid bool
	// Issues contains all findings in document order: info, paths, definitions
	Issues []ValidationIssue
	// ErrorCount is the total number of errors
	ErrorCount int
	// Document is the up-converted OpenAPI 3 document, nil if up-conversion failed
	Document *openapi3.T
}

// Validate checks doc. The returned error is non-nil only when doc cannot be
// loaded at all; findings are reported in the Result.
func Validate(ctx context.Context, doc *swagger.Document) (*Result, error) {
	if doc == nil {
		return nil, &oaserrors.ConfigError{Option: "document", Message: "document cannot be nil"}
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, &oaserrors.ConversionError{Message: "encoding document", Cause: err}
	}
	var order []string
	if doc.Paths != nil {
		order = doc.Paths.Keys()
	}
	return validateJSON(ctx, data, order)
}

// ValidateBytes checks a serialized Swagger 2.0 document, JSON or YAML.
// Paths are checked in sorted order.
func ValidateBytes(ctx context.Context, data []byte) (*Result, error) {
	var generic any
	if err := yaml.Unmarshal(data, &generic); err != nil {
		return nil, &oaserrors.ParseError{Message: "decoding document", Cause: err}
	}
	generic = stringKeys(generic)
	if _, ok := generic.(map[string]any); !ok {
		return nil, &oaserrors.ParseError{Message: "document root must be an object"}
	}
	jsonData, err := json.Marshal(generic)
	if err != nil {
		return nil, &oaserrors.ParseError{Message: "re-encoding document as JSON", Cause: err}
	}
	return validateJSON(ctx, jsonData, nil)
}

func validateJSON(ctx context.Context, data []byte, order []string) (*Result, error) {
	var doc2 openapi2.T
	if err := json.Unmarshal(data, &doc2); err != nil {
		return nil, &oaserrors.ParseError{Message: "loading Swagger 2.0 document", Cause: err}
	}
	if order == nil {
		order = make([]string, 0, len(doc2.Paths))
		for key := range doc2.Paths {
			order = append(order, key)
		}
		sort.Strings(order)
	}

	result := &Result{Issues: make([]ValidationIssue, 0)}
	doc3, err := openapi2conv.ToV3(&doc2)
	if err != nil {
		result.addError("document", "cannot resolve document: "+err.Error())
		result.finish()
		return result, nil
	}
	result.Document = doc3

	if doc3.Info == nil {
		result.addError("info", "info is required")
	} else if err := doc3.Info.Validate(ctx); err != nil {
		result.addError("info", err.Error())
	}

	for _, key := range order {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		item, ok := doc3.Paths[key]
		if !ok {
			continue
		}
		if err := (openapi3.Paths{key: item}).Validate(ctx); err != nil {
			result.addError(issues.FormatPath("paths", key), err.Error())
		}
	}

	if doc3.Components != nil {
		names := make([]string, 0, len(doc3.Components.Schemas))
		for name := range doc3.Components.Schemas {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			if err := doc3.Components.Schemas[name].Validate(ctx); err != nil {
				result.addError(issues.FormatPath("definitions", name), err.Error())
			}
		}
	}

	result.finish()
	return result, nil
}

// stringKeys converts YAML mappings with non-string keys, such as unquoted
// response codes, into JSON-compatible maps.
func stringKeys(v any) any {
	switch val := v.(type) {
	case map[string]any:
		for k, child := range val {
			val[k] = stringKeys(child)
		}
		return val
	case map[any]any:
		out := make(map[string]any, len(val))
		for k, child := range val {
			out[fmt.Sprint(k)] = stringKeys(child)
		}
		return out
	case []any:
		for i, child := range val {
			val[i] = stringKeys(child)
		}
		return val
	default:
		return v
	}
}

func (r *Result) addError(path, message string) {
	r.Issues = append(r.Issues, ValidationIssue{
		Path:     path,
		Message:  message,
		Severity: SeverityError,
	})
}

func (r *Result) finish() {
	r.ErrorCount = 0
	for _, issue := range r.Issues {
		if issue.Severity == SeverityError {
			r.ErrorCount++
		}
	}
	r.Valid = r.ErrorCount == 0
}
