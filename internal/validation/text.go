package validation

import (
	"strings"
	"unicode"
)

// NormalizeText trims text and collapses runs of whitespace, including
// control characters, into single spaces
func NormalizeText(text string) string {
	var result strings.Builder
	for _, r := range text {
		if unicode.IsControl(r) {
			r = ' '
		}
		result.WriteRune(r)
	}

	return strings.Join(strings.Fields(result.String()), " ")
}
