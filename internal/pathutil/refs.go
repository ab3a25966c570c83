package pathutil

import "strings"

// RefPrefixDefinitions is the Swagger 2.0 prefix for reusable schemas.
const RefPrefixDefinitions = "#/definitions/"

// DefinitionRef builds "#/definitions/{name}".
func DefinitionRef(name string) string {
	return RefPrefixDefinitions + name
}

// DefinitionName strips the "#/definitions/" prefix from ref.
// It reports false when ref does not point into definitions.
func DefinitionName(ref string) (string, bool) {
	return strings.CutPrefix(ref, RefPrefixDefinitions)
}
