// Package validator provides a small, composable rule engine for field-level
// validation of plain values.
//
// Every exported validation function constructs a Rule: a boolean Check
// paired with the ValidationError to report when the check fails. Rules are
// evaluated with Apply, which aggregates failures into a ValidationErrors
// slice satisfying the error interface, so a single error return can carry
// several field-specific problems.
//
// # Architecture
//
// Each source file groups a family of rules (string_rules.go,
// format_rules.go). Rules hold no state beyond the values they close over;
// the package is stateless, allocation-light, and goroutine-safe. Checks
// never modify the values they inspect — validation classifies, it does not
// normalize.
//
// # Usage
//
//	err := validator.Apply(
//	    validator.NonEmpty("first_name", firstName),
//	    validator.ExactLen("phone_number", phone, 10),
//	    validator.Digits("phone_number", phone),
//	)
//	if err != nil {
//	    if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	        // inspect per-field messages
//	    }
//	}
//
// ValidationErrors works with errors.As, and Has, Get, and Fields give
// access to individual field failures.
package validator
