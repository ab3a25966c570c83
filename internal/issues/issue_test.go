package issues

import (
	"testing"

	"github.com/erraggy/apidocswagger/internal/severity"
	"github.com/stretchr/testify/assert"
)

func TestIssueString(t *testing.T) {
	tests := []struct {
		name        string
		issue       Issue
		contains    []string
		notContains []string
	}{
		{
			name: "error severity",
			issue: Issue{
				Path:     "definitions.GetUser",
				Message:  "unsupported type",
				Severity: severity.SeverityError,
			},
			contains:    []string{"✗", "definitions.GetUser", "unsupported type"},
			notContains: []string{"Context:"},
		},
		{
			name: "warning with endpoint",
			issue: Issue{
				Path:     "paths./features.post.parameters",
				Message:  "dropped path parameter foo.bar",
				Severity: severity.SeverityWarning,
				Endpoint: &EndpointContext{Method: "post", URL: "/features", Name: "PostFeature"},
			},
			contains: []string{"⚠", "(post /features, name: PostFeature)", "foo.bar"},
		},
		{
			name: "info with context",
			issue: Issue{
				Path:     "definitions.user",
				Message:  "definition merged",
				Severity: severity.SeverityInfo,
				Context:  "declared by 2 endpoints",
			},
			contains: []string{"ℹ", "Context: declared by 2 endpoints"},
		},
		{
			name:     "unknown severity",
			issue:    Issue{Path: "x", Message: "y", Severity: severity.Severity(42)},
			contains: []string{"? x: y"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := tt.issue.String()
			for _, c := range tt.contains {
				assert.Contains(t, s, c)
			}
			for _, c := range tt.notContains {
				assert.NotContains(t, s, c)
			}
		})
	}
}

func TestEndpointContextWithoutName(t *testing.T) {
	ctx := EndpointContext{Method: "get", URL: "/user/:id"}
	assert.Equal(t, "(get /user/:id)", ctx.String())
}

func TestFormatPath(t *testing.T) {
	assert.Equal(t, "", FormatPath())
	assert.Equal(t, "paths", FormatPath("paths"))
	assert.Equal(t, "paths./user/:id.get", FormatPath("paths", "/user/:id", "get"))
}
