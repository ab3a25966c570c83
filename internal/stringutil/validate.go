// Package stringutil provides text helpers for apiDoc descriptions and
// project metadata.
package stringutil

import (
	"regexp"
	"strings"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// tagRegex matches opening, closing and self-closing HTML tags.
var tagRegex = regexp.MustCompile(`<[^>]+>`)

// IsValidEmail checks if s is a valid email address.
func IsValidEmail(s string) bool {
	return emailRegex.MatchString(s)
}

// StripTags removes HTML markup from an apiDoc description and trims the
// surrounding whitespace. apiDoc renders descriptions as HTML ("<p>...</p>").
func StripTags(s string) string {
	if s == "" {
		return ""
	}
	return strings.TrimSpace(tagRegex.ReplaceAllString(s, ""))
}
