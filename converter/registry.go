package converter

import (
	"sort"
	"strings"

	"github.com/erraggy/apidocswagger/apidoc"
	"github.com/erraggy/apidocswagger/internal/naming"
	"github.com/erraggy/apidocswagger/internal/pathutil"
	"github.com/erraggy/apidocswagger/internal/stringutil"
	"github.com/erraggy/apidocswagger/swagger"
)

// Declared type names with special meaning.
const (
	typeObject  = "Object"
	typeArray   = "Array"
	typeFile    = "file"
	arraySuffix = "[]"
)

// Registry accumulates named definitions for a single document build.
// Properties and required names are only ever added; a property declared
// again under the same name replaces the earlier schema.
//
// A Registry is not safe for concurrent use and must not be shared between
// builds.
type Registry struct {
	defs   map[string]*swagger.Definition
	owners map[string][]string
	logger apidoc.Logger
}

// NewRegistry returns an empty registry. A nil logger discards output.
func NewRegistry(logger apidoc.Logger) *Registry {
	if logger == nil {
		logger = apidoc.NopLogger{}
	}
	return &Registry{
		defs:   make(map[string]*swagger.Definition),
		owners: make(map[string][]string),
		logger: logger,
	}
}

// Ensure returns the definition for name, creating an empty one if absent.
func (r *Registry) Ensure(name string) *swagger.Definition {
	if def, ok := r.defs[name]; ok {
		return def
	}
	def := swagger.NewDefinition()
	r.defs[name] = def
	r.logger.Debug("definition created", "name", name)
	return def
}

// ApplyField stores the schema derived from f as objectName.propertyName and
// marks the property required unless f is optional.
func (r *Registry) ApplyField(objectName, propertyName string, f apidoc.Field) {
	def := r.Ensure(objectName)
	def.Properties[propertyName] = propertySchema(f)
	if !f.Optional && !def.IsRequired(propertyName) {
		def.Required = append(def.Required, propertyName)
	}
}

// Has reports whether a definition named name exists.
func (r *Registry) Has(name string) bool {
	_, ok := r.defs[name]
	return ok
}

// Len returns the number of definitions.
func (r *Registry) Len() int {
	return len(r.defs)
}

// Definitions returns the accumulated definitions. The map is owned by the
// registry.
func (r *Registry) Definitions() map[string]*swagger.Definition {
	return r.defs
}

// track records that endpoint contributed to the named definition.
func (r *Registry) track(name, endpoint string) {
	for _, o := range r.owners[name] {
		if o == endpoint {
			return
		}
	}
	r.owners[name] = append(r.owners[name], endpoint)
}

// shared returns the definitions built from more than one endpoint, sorted
// by name, with their contributors in first-seen order.
func (r *Registry) shared() []sharedDefinition {
	var out []sharedDefinition
	for name, owners := range r.owners {
		if len(owners) > 1 {
			out = append(out, sharedDefinition{name: name, owners: owners})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].name < out[j].name })
	return out
}

type sharedDefinition struct {
	name   string
	owners []string
}

// PropertySchema returns the property schema a field declaration produces:
// an object reference, an array of scalars, or a scalar.
func PropertySchema(f apidoc.Field) *swagger.Property {
	return propertySchema(f)
}

func propertySchema(f apidoc.Field) *swagger.Property {
	desc := stringutil.StripTags(f.Description)
	switch {
	case f.Type == typeObject:
		return &swagger.Property{
			Type:        naming.LowerType(f.Type),
			Description: desc,
			Ref:         pathutil.DefinitionRef(f.Field),
		}
	case isArrayType(f.Type):
		return &swagger.Property{
			Type:        "array",
			Description: desc,
			Items:       &swagger.Items{Type: strings.TrimSuffix(f.Type, arraySuffix)},
		}
	default:
		return &swagger.Property{
			Type:        naming.LowerType(f.Type),
			Description: desc,
		}
	}
}

// isArrayType reports whether the first "[]" in t is its suffix, so
// "String[]" is an array and "String[][]" is not.
func isArrayType(t string) bool {
	i := strings.Index(t, arraySuffix)
	return i >= 0 && i == len(t)-len(arraySuffix)
}
