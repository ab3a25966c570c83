package swagger

import "github.com/erraggy/apidocswagger/internal/pathutil"

// Version is the only Swagger version produced.
const Version = "2.0"

// MediaTypeJSON is the consumes and produces entry of every operation.
const MediaTypeJSON = "application/json"

// Parameter locations used by the converter.
const (
	InPath     = "path"
	InFormData = "formData"
	InBody     = "body"
)

// Document is a Swagger 2.0 root document.
type Document struct {
	Swagger     string                 `yaml:"swagger" json:"swagger"`
	Info        *Info                  `yaml:"info" json:"info"`
	Host        string                 `yaml:"host,omitempty" json:"host,omitempty"`
	BasePath    string                 `yaml:"basePath,omitempty" json:"basePath,omitempty"`
	Schemes     []string               `yaml:"schemes,omitempty" json:"schemes,omitempty"`
	Paths       *Paths                 `yaml:"paths" json:"paths"`
	Definitions map[string]*Definition `yaml:"definitions" json:"definitions"`
}

// NewDocument returns an empty 2.0 document with initialized paths and
// definitions.
func NewDocument(info *Info) *Document {
	if info == nil {
		info = &Info{}
	}
	return &Document{
		Swagger:     Version,
		Info:        info,
		Paths:       NewPaths(),
		Definitions: make(map[string]*Definition),
	}
}

// Info is the document metadata.
type Info struct {
	Title       string   `yaml:"title" json:"title"`
	Version     string   `yaml:"version" json:"version"`
	Description string   `yaml:"description,omitempty" json:"description,omitempty"`
	Contact     *Contact `yaml:"contact,omitempty" json:"contact,omitempty"`
}

// Contact is the API contact information.
type Contact struct {
	Name  string `yaml:"name,omitempty" json:"name,omitempty"`
	URL   string `yaml:"url,omitempty" json:"url,omitempty"`
	Email string `yaml:"email,omitempty" json:"email,omitempty"`
}

// PathItem maps a lowercase HTTP method to its operation.
type PathItem map[string]*Operation

// Operation describes a single API operation on a path.
type Operation struct {
	Tags        []string             `yaml:"tags" json:"tags"`
	Summary     string               `yaml:"summary" json:"summary"`
	OperationID string               `yaml:"operationId,omitempty" json:"operationId,omitempty"`
	Consumes    []string             `yaml:"consumes" json:"consumes"`
	Produces    []string             `yaml:"produces" json:"produces"`
	Parameters  []*Parameter         `yaml:"parameters" json:"parameters"`
	Responses   map[string]*Response `yaml:"responses,omitempty" json:"responses,omitempty"`
}

// BodyParameter returns the "in: body" parameter, or nil.
func (o *Operation) BodyParameter() *Parameter {
	for _, p := range o.Parameters {
		if p.In == InBody {
			return p
		}
	}
	return nil
}

// Parameter is an operation parameter. Body parameters carry a Schema,
// all others a Type.
type Parameter struct {
	Name        string  `yaml:"name" json:"name"`
	In          string  `yaml:"in" json:"in"`
	Required    bool    `yaml:"required" json:"required"`
	Type        string  `yaml:"type,omitempty" json:"type,omitempty"`
	Description string  `yaml:"description" json:"description"`
	Schema      *Schema `yaml:"schema,omitempty" json:"schema,omitempty"`
}

// Response is an operation response.
type Response struct {
	Description string  `yaml:"description" json:"description"`
	Schema      *Schema `yaml:"schema,omitempty" json:"schema,omitempty"`
}

// Schema is the schema of a body parameter or response. An empty Type means
// the block declared no root shape.
type Schema struct {
	Type  string  `yaml:"type,omitempty" json:"type,omitempty"`
	Ref   string  `yaml:"$ref,omitempty" json:"$ref,omitempty"`
	Items *Schema `yaml:"items,omitempty" json:"items,omitempty"`
}

// RefSchema returns a schema that only references the named definition.
func RefSchema(name string) *Schema {
	return &Schema{Ref: pathutil.DefinitionRef(name)}
}

// Definition is a reusable object schema. Properties and Required only grow.
type Definition struct {
	Properties map[string]*Property `yaml:"properties" json:"properties"`
	Required   []string             `yaml:"required" json:"required"`
}

// NewDefinition returns a definition with no properties and an empty,
// non-nil required list.
func NewDefinition() *Definition {
	return &Definition{
		Properties: make(map[string]*Property),
		Required:   []string{},
	}
}

// IsRequired reports whether name is in the required list.
func (d *Definition) IsRequired(name string) bool {
	for _, r := range d.Required {
		if r == name {
			return true
		}
	}
	return false
}

// Property is the schema of one definition property.
type Property struct {
	Type        string `yaml:"type" json:"type"`
	Description string `yaml:"description" json:"description"`
	Ref         string `yaml:"$ref,omitempty" json:"$ref,omitempty"`
	Items       *Items `yaml:"items,omitempty" json:"items,omitempty"`
}

// Items is the element type of an array property.
type Items struct {
	Type string `yaml:"type" json:"type"`
}
