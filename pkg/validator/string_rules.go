package validator

import (
	"fmt"
)

// NonEmpty validates that a string has at least one character. Whitespace is
// not trimmed: a blank string is non-empty. Callers wanting blank values
// rejected should trim before validating.
func NonEmpty(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return value != ""
		},
		Error: ValidationError{
			Field:   field,
			Message: "field is required",
		},
	}
}

// ExactLen validates that a string is exactly the given number of bytes long.
func ExactLen(field, value string, exact int) Rule {
	return Rule{
		Check: func() bool {
			return len(value) == exact
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be exactly %d characters long", exact),
		},
	}
}
