package pathutil

import (
	"regexp"
	"strings"
)

// PathParamRegex matches path template parameters like {paramName}.
// It captures the parameter name inside the braces.
var PathParamRegex = regexp.MustCompile(`\{([^}]+)\}`)

// ColonParamRegex matches express-style parameters like :paramName.
// It captures the parameter name after the colon.
var ColonParamRegex = regexp.MustCompile(`:([A-Za-z0-9_]+)`)

// PathKeys returns the placeholder names declared in a URL template, in the
// order they appear. Both ":name" and "{name}" forms are recognized.
// Duplicates are reported once.
func PathKeys(url string) []string {
	type match struct {
		pos  int
		name string
	}
	var found []match
	for _, re := range []*regexp.Regexp{ColonParamRegex, PathParamRegex} {
		for _, loc := range re.FindAllStringSubmatchIndex(url, -1) {
			found = append(found, match{pos: loc[0], name: url[loc[2]:loc[3]]})
		}
	}

	// Insertion sort: templates hold a handful of placeholders at most.
	for i := 1; i < len(found); i++ {
		for j := i; j > 0 && found[j].pos < found[j-1].pos; j-- {
			found[j], found[j-1] = found[j-1], found[j]
		}
	}

	keys := make([]string, 0, len(found))
	seen := make(map[string]struct{}, len(found))
	for _, m := range found {
		if _, dup := seen[m.name]; dup {
			continue
		}
		seen[m.name] = struct{}{}
		keys = append(keys, m.name)
	}
	return keys
}

// NormalizeTemplate rewrites ":name" placeholders as "{name}" so the URL
// uses Swagger path templating. Brace placeholders are left untouched.
func NormalizeTemplate(url string) string {
	if !strings.Contains(url, ":") {
		return url
	}
	return ColonParamRegex.ReplaceAllString(url, "{$1}")
}
