package converter

import "strings"

// ResolveNestedName splits a dot-qualified field declaration into the name
// of the property and the flat name of the object that owns it.
//
//	ResolveNestedName("user.address.city") // "city", "user.address"
//	ResolveNestedName("id")                // "id", ""
//
// The object name is a flat identifier: "a.b" always names the same
// definition, however it was reached.
func ResolveNestedName(field string) (propertyName, objectName string) {
	i := strings.LastIndexByte(field, '.')
	if i < 0 {
		return field, ""
	}
	return field[i+1:], field[:i]
}
