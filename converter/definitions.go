package converter

import (
	"github.com/erraggy/apidocswagger/apidoc"
)

// TopLevel is the schema a parameter or success block resolves to as a
// whole: the definition it references and the shape of the block.
type TopLevel struct {
	// Ref is the referenced definition name.
	Ref string
	// Type is "object", "array", the first row's declared type, or "" when
	// the block is empty.
	Type string
}

// resolvedField is a field declaration with its owning object resolved.
// An empty property marks a row that only declares the block's root shape.
type resolvedField struct {
	field    apidoc.Field
	object   string
	property string
}

func resolveField(f apidoc.Field, defaultName string) resolvedField {
	property, object := ResolveNestedName(f.Field)
	if object == "" {
		object = defaultName
	}
	return resolvedField{field: f, object: object, property: property}
}

// buildBlockDefinitions registers the definitions declared by one block and
// returns its top-level schema. defaultName is the endpoint name and owns
// every undotted field.
func buildBlockDefinitions(reg *Registry, fields []apidoc.Field, defaultName string) TopLevel {
	if len(fields) == 0 {
		return TopLevel{Ref: defaultName}
	}

	rows := make([]resolvedField, len(fields))
	var top TopLevel
	top, rows[0] = classifyRoot(fields[0], defaultName)
	for i, f := range fields[1:] {
		rows[i+1] = resolveField(f, defaultName)
	}
	populate(reg, rows, defaultName)
	return top
}

// classifyRoot decides the block's root shape from its first row. An Object
// or Array row names the root definition itself and declares no property.
func classifyRoot(first apidoc.Field, defaultName string) (TopLevel, resolvedField) {
	row := resolveField(first, defaultName)
	top := TopLevel{Type: first.Type}
	switch first.Type {
	case typeObject:
		row.object, row.property = row.property, ""
		top.Type = "object"
	case typeArray:
		row.object, row.property = row.property, ""
		top.Type = "array"
	}
	top.Ref = row.object
	return top, row
}

func populate(reg *Registry, rows []resolvedField, owner string) {
	for _, row := range rows {
		reg.Ensure(row.object)
		reg.track(row.object, owner)
		if row.property != "" {
			reg.ApplyField(row.object, row.property, row.field)
		}
	}
}
