package sanitizer

import (
	"strings"
	"unicode"
)

// Trim removes leading and trailing whitespace from a string.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// NormalizeWhitespace trims the string and collapses every internal run of
// whitespace to a single space.
func NormalizeWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// NameCase converts a string to name casing: the first letter of each word
// uppercased, the rest lowercased. Word boundaries are whitespace, hyphens
// and apostrophes, so "mary-jane o'BRIEN" becomes "Mary-Jane O'Brien".
func NameCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	startOfWord := true
	for _, r := range s {
		switch {
		case unicode.IsSpace(r) || r == '-' || r == '\'':
			b.WriteRune(r)
			startOfWord = true
		case startOfWord:
			b.WriteRune(unicode.ToUpper(r))
			startOfWord = false
		default:
			b.WriteRune(unicode.ToLower(r))
		}
	}

	return b.String()
}
