package naming

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// LowerType lowercases a declared apiDoc type name.
// Uses golang.org/x/text/cases so non-ASCII type names fold correctly.
// A Caser is stateful, so one is created per call.
func LowerType(s string) string {
	if s == "" {
		return ""
	}
	return cases.Lower(language.Und).String(s)
}
