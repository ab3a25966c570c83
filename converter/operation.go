package converter

import (
	"fmt"

	"github.com/erraggy/apidocswagger/apidoc"
	"github.com/erraggy/apidocswagger/internal/issues"
	"github.com/erraggy/apidocswagger/internal/pathutil"
	"github.com/erraggy/apidocswagger/internal/stringutil"
	"github.com/erraggy/apidocswagger/swagger"
)

// successDescription is the description of every generated 200 response.
const successDescription = "successful operation"

type verbKind int

const (
	verbBodiless verbKind = iota
	verbBody
	verbUnknown
)

func classifyVerb(method string) verbKind {
	switch method {
	case "post", "put", "patch":
		return verbBody
	case "get", "delete", "head", "options":
		return verbBodiless
	default:
		return verbUnknown
	}
}

// build carries the state of one ConvertEndpoints call.
type build struct {
	c        *Converter
	registry *Registry
	result   *ConversionResult
}

// assembleOperation builds the operation for e, registering the definitions
// of its parameter and success blocks first.
func (b *build) assembleOperation(e apidoc.Endpoint, pathKey string) *swagger.Operation {
	method := e.Method()
	ctx := &issues.EndpointContext{Method: method, URL: e.URL, Name: e.Name}
	opPath := issues.FormatPath("paths", pathKey, method)

	paramTop := buildBlockDefinitions(b.registry, e.ParameterFields(), e.Name)
	var successTop TopLevel
	if e.HasSuccessBlock() {
		successTop = buildBlockDefinitions(b.registry, e.SuccessFields(), e.Name)
	}

	declared := e.ParameterFields()
	params := pathParameters(declared)
	keys := pathutil.PathKeys(e.URL)
	b.checkPlaceholders(declared, keys, opPath, ctx)

	kind := classifyVerb(method)
	if kind == verbUnknown {
		b.addIssue(issues.Issue{
			Path:     opPath,
			Message:  fmt.Sprintf("unknown HTTP verb %q treated as having no request body", e.Type),
			Severity: SeverityWarning,
			Field:    "type",
			Value:    e.Type,
			Endpoint: ctx,
		})
	}

	if kind == verbBody {
		var dropped []string
		params, dropped = filterPathParameters(params, keys)
		for _, name := range dropped {
			b.addIssue(issues.Issue{
				Path:     issues.FormatPath(opPath, "parameters"),
				Message:  fmt.Sprintf("parameter %q is not a URL placeholder and is only described by the body schema", name),
				Severity: SeverityWarning,
				Field:    "name",
				Value:    name,
				Endpoint: ctx,
			})
		}

		params = append(params, &swagger.Parameter{
			Name:        "body",
			In:          swagger.InBody,
			Required:    len(declared) > 0,
			Description: stringutil.StripTags(e.Description),
			Schema:      swagger.RefSchema(paramTop.Ref),
		})
		if !b.registry.Has(paramTop.Ref) {
			b.addIssue(issues.Issue{
				Path:     issues.FormatPath(opPath, "parameters", "body", "schema"),
				Message:  fmt.Sprintf("body schema references definition %q which no field declares", paramTop.Ref),
				Severity: SeverityWarning,
				Field:    "$ref",
				Value:    pathutil.DefinitionRef(paramTop.Ref),
				Endpoint: ctx,
			})
		}
	}

	op := &swagger.Operation{
		Tags:       []string{e.Group},
		Summary:    stringutil.StripTags(e.Description),
		Consumes:   []string{swagger.MediaTypeJSON},
		Produces:   []string{swagger.MediaTypeJSON},
		Parameters: params,
	}
	if b.c.OperationIDs {
		op.OperationID = e.Name
	}
	if e.HasSuccessBlock() {
		op.Responses = map[string]*swagger.Response{
			"200": {
				Description: successDescription,
				Schema: &swagger.Schema{
					Type:  successTop.Type,
					Items: swagger.RefSchema(successTop.Ref),
				},
			},
		}
	}
	return op
}

// checkPlaceholders warns about URL placeholders no parameter declares.
func (b *build) checkPlaceholders(declared []apidoc.Field, keys []string, opPath string, ctx *issues.EndpointContext) {
	if len(keys) == 0 {
		return
	}
	names := make(map[string]struct{}, len(declared))
	for _, f := range declared {
		names[f.Field] = struct{}{}
	}
	for _, k := range keys {
		if _, ok := names[k]; ok {
			continue
		}
		b.addIssue(issues.Issue{
			Path:     issues.FormatPath(opPath, "parameters"),
			Message:  fmt.Sprintf("URL placeholder %q has no declared parameter", k),
			Severity: SeverityWarning,
			Field:    "url",
			Value:    k,
			Endpoint: ctx,
		})
	}
}

func (b *build) addIssue(issue issues.Issue) {
	b.result.Issues = append(b.result.Issues, issue)
}
