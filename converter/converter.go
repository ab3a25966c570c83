package converter

import (
	"fmt"
	"strings"

	"github.com/erraggy/apidocswagger/apidoc"
	"github.com/erraggy/apidocswagger/internal/issues"
	"github.com/erraggy/apidocswagger/internal/pathutil"
	"github.com/erraggy/apidocswagger/internal/severity"
	"github.com/erraggy/apidocswagger/internal/stringutil"
	"github.com/erraggy/apidocswagger/oaserrors"
	"github.com/erraggy/apidocswagger/swagger"
)

// Severity indicates the severity level of a conversion issue
type Severity = severity.Severity

const (
	// SeverityInfo indicates informational messages about conversion choices
	SeverityInfo = severity.SeverityInfo
	// SeverityWarning indicates best-effort output that should be reviewed
	SeverityWarning = severity.SeverityWarning
)

// ConversionIssue represents a single non-fatal conversion finding
type ConversionIssue = issues.Issue

// Stats summarizes the size of a converted document.
type Stats struct {
	Paths       int
	Operations  int
	Definitions int
	Properties  int
}

// ConversionResult contains the results of converting apiDoc endpoints
type ConversionResult struct {
	// Document is the generated Swagger 2.0 document
	Document *swagger.Document
	// SourcePath is the input file or source name, empty for in-memory endpoints
	SourcePath string
	// Issues contains all conversion issues in the order they were raised
	Issues []ConversionIssue
	// InfoCount is the total number of info messages
	InfoCount int
	// WarningCount is the total number of warnings
	WarningCount int
	// Stats summarizes the generated document
	Stats Stats
	// Success is true if conversion completed without warnings
	Success bool
}

// HasWarnings returns true if there are any warnings
func (r *ConversionResult) HasWarnings() bool {
	return r.WarningCount > 0
}

// Converter turns apiDoc endpoint lists into Swagger 2.0 documents.
// A Converter only holds configuration and may be shared between goroutines.
type Converter struct {
	// StrictMode causes conversion to fail when any warning is raised
	StrictMode bool
	// IncludeInfo determines whether to include informational messages
	IncludeInfo bool
	// OperationIDs emits the apiDoc endpoint name as operationId
	OperationIDs bool
	// NormalizePathTemplates rewrites ":id" placeholders as "{id}" in path keys
	NormalizePathTemplates bool
	// Project supplies the info block. Nil leaves title and version empty.
	Project *apidoc.Project
	// Host, BasePath and Schemes fill the matching root fields
	Host     string
	BasePath string
	Schemes  []string
	// Logger receives debug and info output. Nil discards it.
	Logger apidoc.Logger
}

// New creates a new Converter instance with default settings
func New() *Converter {
	return &Converter{
		IncludeInfo: true,
		Logger:      apidoc.NopLogger{},
	}
}

// Convert is a convenience function that converts an api_data.json file
// with default settings.
//
// Example:
//
//	result, err := converter.Convert("doc/api_data.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
func Convert(path string) (*ConversionResult, error) {
	return New().ConvertFile(path)
}

// ConvertFile parses the endpoints at path and converts them.
func (c *Converter) ConvertFile(path string) (*ConversionResult, error) {
	parsed, err := apidoc.ParseWithOptions(apidoc.WithFilePath(path), apidoc.WithLogger(c.logger()))
	if err != nil {
		return nil, fmt.Errorf("converter: %w", err)
	}
	result, err := c.ConvertEndpoints(parsed.Endpoints)
	if result != nil {
		result.SourcePath = parsed.SourcePath
	}
	return result, err
}

// ConvertEndpoints builds one Swagger document from endpoints.
//
// Every field declaration is checked before anything is built; a missing
// field name or type aborts the build with an *oaserrors.ValidationError.
// Each call uses its own Registry, so repeated calls on the same input give
// identical documents.
func (c *Converter) ConvertEndpoints(endpoints []apidoc.Endpoint) (*ConversionResult, error) {
	if err := validateEndpoints(endpoints); err != nil {
		return nil, err
	}

	log := c.logger()
	result := &ConversionResult{Issues: make([]ConversionIssue, 0)}
	b := &build{
		c:        c,
		registry: NewRegistry(log),
		result:   result,
	}

	doc := swagger.NewDocument(c.info(result))
	doc.Host = c.Host
	doc.BasePath = c.BasePath
	if len(c.Schemes) > 0 {
		doc.Schemes = append([]string(nil), c.Schemes...)
	}

	for _, group := range c.groupByPath(endpoints) {
		item := make(swagger.PathItem, len(group.endpoints))
		for _, e := range group.endpoints {
			method := e.Method()
			if _, dup := item[method]; dup {
				b.addIssue(issues.Issue{
					Path:     issues.FormatPath("paths", group.key, method),
					Message:  fmt.Sprintf("operation %q replaces an earlier operation on the same path and verb", e.Name),
					Severity: SeverityWarning,
					Endpoint: &issues.EndpointContext{Method: method, URL: e.URL, Name: e.Name},
				})
			}
			item[method] = b.assembleOperation(e, group.key)
		}
		doc.Paths.Set(group.key, item)
		result.Stats.Operations += len(item)
	}

	doc.Definitions = b.registry.Definitions()
	for _, s := range b.registry.shared() {
		b.addIssue(issues.Issue{
			Path:     issues.FormatPath("definitions", s.name),
			Message:  fmt.Sprintf("definition is shared by %d endpoints", len(s.owners)),
			Severity: SeverityInfo,
			Context:  strings.Join(s.owners, ", "),
		})
		log.Debug("definition merged", "name", s.name, "endpoints", len(s.owners))
	}

	result.Document = doc
	result.Stats.Paths = doc.Paths.Len()
	result.Stats.Definitions = len(doc.Definitions)
	for _, def := range doc.Definitions {
		result.Stats.Properties += len(def.Properties)
	}

	c.updateCounts(result)
	result.Success = result.WarningCount == 0

	log.Info("conversion complete",
		"paths", result.Stats.Paths,
		"operations", result.Stats.Operations,
		"definitions", result.Stats.Definitions,
		"warnings", result.WarningCount)

	if !c.IncludeInfo {
		filtered := make([]ConversionIssue, 0, len(result.Issues))
		for _, issue := range result.Issues {
			if issue.Severity != SeverityInfo {
				filtered = append(filtered, issue)
			}
		}
		result.Issues = filtered
		result.InfoCount = 0
	}

	if c.StrictMode && result.WarningCount > 0 {
		return result, &oaserrors.ConversionError{
			Message: fmt.Sprintf("conversion failed in strict mode: %d warning(s)", result.WarningCount),
		}
	}

	return result, nil
}

type pathGroup struct {
	key       string
	endpoints []apidoc.Endpoint
}

// groupByPath groups endpoints by path key in order of first appearance.
func (c *Converter) groupByPath(endpoints []apidoc.Endpoint) []pathGroup {
	var groups []pathGroup
	index := make(map[string]int)
	for _, e := range endpoints {
		key := e.URL
		if c.NormalizePathTemplates {
			key = pathutil.NormalizeTemplate(key)
		}
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, pathGroup{key: key})
		}
		groups[i].endpoints = append(groups[i].endpoints, e)
	}
	return groups
}

// info builds the info block from the project metadata.
func (c *Converter) info(result *ConversionResult) *swagger.Info {
	if c.Project == nil {
		return &swagger.Info{}
	}
	p := c.Project
	info := &swagger.Info{
		Title:       p.DisplayTitle(),
		Version:     p.Version,
		Description: stringutil.StripTags(p.Description),
	}
	if !p.Author.IsZero() {
		info.Contact = &swagger.Contact{Name: p.Author.Name, Email: p.Author.Email}
		if p.Author.Email != "" && !stringutil.IsValidEmail(p.Author.Email) {
			result.Issues = append(result.Issues, ConversionIssue{
				Path:     "info.contact.email",
				Message:  fmt.Sprintf("contact email %q is not a valid email address", p.Author.Email),
				Severity: SeverityWarning,
				Field:    "email",
				Value:    p.Author.Email,
			})
		}
	}
	return info
}

// updateCounts updates the issue counts in the result
func (c *Converter) updateCounts(result *ConversionResult) {
	result.InfoCount = 0
	result.WarningCount = 0
	for _, issue := range result.Issues {
		switch issue.Severity {
		case SeverityInfo:
			result.InfoCount++
		case SeverityWarning:
			result.WarningCount++
		}
	}
}

func (c *Converter) logger() apidoc.Logger {
	if c.Logger == nil {
		return apidoc.NopLogger{}
	}
	return c.Logger
}
