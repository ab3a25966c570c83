// Package issues provides a unified issue type for conversion and validation problems.
package issues

import (
	"fmt"

	"github.com/erraggy/apidocswagger/internal/severity"
)

// Issue represents a single problem found while building or validating a
// Swagger document.
type Issue struct {
	// Path is the dotted path to the problematic node (e.g., "paths./features.post.parameters")
	Path string
	// Message is a human-readable description of the issue
	Message string
	// Severity indicates the severity level of the issue
	Severity severity.Severity
	// Field is the specific field name that has the issue
	Field string
	// Value is the problematic value (optional)
	Value any
	// Context provides additional information about the issue (optional)
	Context string
	// Endpoint identifies the apiDoc endpoint the issue came from. Nil when not applicable.
	Endpoint *EndpointContext
}

// EndpointContext identifies the apiDoc endpoint an issue relates to.
type EndpointContext struct {
	// Method is the normalized HTTP verb (get, post, ...)
	Method string
	// URL is the endpoint URL template as declared
	URL string
	// Name is the apiDoc endpoint name (@apiName)
	Name string
}

// String returns a formatted string representation of the endpoint context.
func (c EndpointContext) String() string {
	if c.Name != "" {
		return fmt.Sprintf("(%s %s, name: %s)", c.Method, c.URL, c.Name)
	}
	return fmt.Sprintf("(%s %s)", c.Method, c.URL)
}

// String returns a formatted string representation of the issue.
// Uses different symbols based on severity level:
// - "✗" for Error severity
// - "⚠" for Warning severity
// - "ℹ" for Info severity
func (i Issue) String() string {
	var symbol string
	switch i.Severity {
	case severity.SeverityError:
		symbol = "✗"
	case severity.SeverityWarning:
		symbol = "⚠"
	case severity.SeverityInfo:
		symbol = "ℹ"
	default:
		symbol = "?"
	}

	pathWithContext := i.Path
	if i.Endpoint != nil {
		pathWithContext = fmt.Sprintf("%s %s", i.Path, i.Endpoint.String())
	}

	result := fmt.Sprintf("%s %s: %s", symbol, pathWithContext, i.Message)
	if i.Context != "" {
		result += fmt.Sprintf("\n    Context: %s", i.Context)
	}
	return result
}
