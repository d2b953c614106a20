package validator

import (
	"regexp"
)

// Numeric string regex - ASCII digits only
var digitsRegex = regexp.MustCompile(`^[0-9]+$`)

// Digits validates that a string is non-empty and consists entirely of ASCII
// decimal digits, i.e. the text parses completely as a non-negative integer
// with no leftover characters.
func Digits(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return digitsRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:   field,
			Message: "must contain only digits",
		},
	}
}
