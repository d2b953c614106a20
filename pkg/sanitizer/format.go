package sanitizer

import (
	"regexp"
)

// Pre-compiled for reuse across calls
var nonDigitRegex = regexp.MustCompile(`\D`)

// ExtractDigits removes every non-digit character, turning formatted phone
// or social security number input such as "(555) 123-4567" or "123-45-6789"
// into a bare digit string. An input with no digits yields "".
func ExtractDigits(s string) string {
	return nonDigitRegex.ReplaceAllString(s, "")
}
