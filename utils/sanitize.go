package utils

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var sanitizer = bluemonday.StrictPolicy()

// PlainText strips every HTML tag from input and trims surrounding whitespace.
// Entities escaped by the policy are decoded again so plain text reads unchanged.
func PlainText(input string) string {
	return strings.TrimSpace(html.UnescapeString(sanitizer.Sanitize(input)))
}

// HasText reports whether input still carries visible text once markup is removed.
// Callers store input as given; this only rejects blank or markup-only values.
func HasText(input string) bool {
	return PlainText(input) != ""
}
