package apidoc

import (
	"strings"

	"go.yaml.in/yaml/v4"
)

// Default group names apiDoc assigns to @apiParam and @apiSuccess fields.
const (
	GroupParameter  = "Parameter"
	GroupSuccess200 = "Success 200"
)

// Endpoint is one documented HTTP verb and URL, as emitted by apiDoc.
type Endpoint struct {
	Type        string   `yaml:"type" json:"type"` // HTTP verb; apiDoc allows "del" for delete
	URL         string   `yaml:"url" json:"url"`
	Title       string   `yaml:"title,omitempty" json:"title,omitempty"`
	Name        string   `yaml:"name" json:"name"`
	Group       string   `yaml:"group" json:"group"`
	Description string   `yaml:"description,omitempty" json:"description,omitempty"`
	Version     string   `yaml:"version,omitempty" json:"version,omitempty"`
	Parameter   *Section `yaml:"parameter,omitempty" json:"parameter,omitempty"`
	Success     *Section `yaml:"success,omitempty" json:"success,omitempty"`
	Error       *Section `yaml:"error,omitempty" json:"error,omitempty"`
	Filename    string   `yaml:"filename,omitempty" json:"filename,omitempty"`
}

// Section holds the fields of one endpoint section, keyed by group name.
type Section struct {
	Fields   map[string][]Field `yaml:"fields,omitempty" json:"fields,omitempty"`
	Examples []Example          `yaml:"examples,omitempty" json:"examples,omitempty"`
}

// Example is a titled code sample attached to a section.
type Example struct {
	Title   string `yaml:"title" json:"title"`
	Content string `yaml:"content" json:"content"`
	Type    string `yaml:"type,omitempty" json:"type,omitempty"`
}

// Field is a single flat, dot-qualified field declaration.
type Field struct {
	Group         string   `yaml:"group" json:"group"`
	Type          string   `yaml:"type" json:"type"` // scalar name, "Object", "Array", or "T[]"
	Field         string   `yaml:"field" json:"field"`
	Optional      bool     `yaml:"optional" json:"optional"`
	Description   string   `yaml:"description,omitempty" json:"description,omitempty"`
	DefaultValue  string   `yaml:"defaultValue,omitempty" json:"defaultValue,omitempty"`
	Size          string   `yaml:"size,omitempty" json:"size,omitempty"`
	AllowedValues []string `yaml:"allowedValues,omitempty" json:"allowedValues,omitempty"`
}

// Method returns the lowercase HTTP verb with apiDoc's "del" spelled "delete".
func (e Endpoint) Method() string {
	m := strings.ToLower(e.Type)
	if m == "del" {
		return "delete"
	}
	return m
}

// ParameterFields returns the fields of the default parameter group.
func (e Endpoint) ParameterFields() []Field {
	if e.Parameter == nil {
		return nil
	}
	return e.Parameter.Fields[GroupParameter]
}

// SuccessFields returns the fields of the "Success 200" group.
func (e Endpoint) SuccessFields() []Field {
	if e.Success == nil {
		return nil
	}
	return e.Success.Fields[GroupSuccess200]
}

// HasSuccessBlock reports whether the endpoint declared a success section.
// Only then does the converter attach a 200 response.
func (e Endpoint) HasSuccessBlock() bool {
	return e.Success != nil && e.Success.Fields != nil
}

// Project is the apiDoc project metadata (api_project.json).
type Project struct {
	Name        string `yaml:"name" json:"name"`
	Title       string `yaml:"title,omitempty" json:"title,omitempty"`
	Version     string `yaml:"version" json:"version"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	URL         string `yaml:"url,omitempty" json:"url,omitempty"`
	Author      Author `yaml:"author,omitempty" json:"author,omitempty"`
}

// DisplayTitle returns the title, falling back to the project name.
func (p Project) DisplayTitle() string {
	if p.Title != "" {
		return p.Title
	}
	return p.Name
}

// Author is the project author. apiDoc copies it from package.json, where it
// is either a "Name <email>" string or a {name, email} object.
type Author struct {
	Name  string `yaml:"name,omitempty" json:"name,omitempty"`
	Email string `yaml:"email,omitempty" json:"email,omitempty"`
}

// IsZero reports whether no author was declared.
func (a Author) IsZero() bool {
	return a.Name == "" && a.Email == ""
}

// UnmarshalYAML accepts both the string and the mapping form.
func (a *Author) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		*a = ParseAuthor(value.Value)
		return nil
	}
	type plain Author
	var p plain
	if err := value.Decode(&p); err != nil {
		return err
	}
	*a = Author(p)
	return nil
}

// ParseAuthor splits a package.json author string. "Jane <jane@example.com>"
// yields both parts. A string without angle brackets is kept whole as the
// email, which is where the original project metadata lands in Swagger.
func ParseAuthor(s string) Author {
	s = strings.TrimSpace(s)
	open := strings.IndexByte(s, '<')
	closing := strings.LastIndexByte(s, '>')
	if open >= 0 && closing > open {
		return Author{
			Name:  strings.TrimSpace(s[:open]),
			Email: strings.TrimSpace(s[open+1 : closing]),
		}
	}
	return Author{Email: s}
}
