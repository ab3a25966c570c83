package issues

import "strings"

// FormatPath joins segments into a dotted location such as
// "paths./user/:id.put.parameters". Segments may themselves contain dots.
func FormatPath(segments ...string) string {
	return strings.Join(segments, ".")
}
