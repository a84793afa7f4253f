// Package strcase maps Go field names to the snake_case keys used in
// validation error payloads.
package strcase

import (
	"strings"
	"unicode"
)

// ToLowerSnake converts a field name to snake_case. Acronym runs stay
// together, so SheetID becomes sheet_id and CSVFile becomes csv_file.
func ToLowerSnake(s string) string {
	if s == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s))

	runes := []rune(s)

	for i := range runes {
		r := runes[i]

		if i > 0 && unicode.IsUpper(r) {
			prev := runes[i-1]
			var next rune
			if i+1 < len(runes) {
				next = runes[i+1]
			}

			// A boundary is a lower/digit before an upper, or the last
			// upper of an acronym followed by a lower.
			if unicode.IsLower(prev) || unicode.IsDigit(prev) {
				b.WriteRune('_')
			} else if unicode.IsUpper(prev) && next != 0 && unicode.IsLower(next) {
				b.WriteRune('_')
			}
		}

		b.WriteRune(unicode.ToLower(r))
	}

	return b.String()
}
