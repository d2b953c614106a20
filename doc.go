// Package personkit provides staged, compile-time-checked construction of
// Person records.
//
// A person moves through exactly two stages. It starts as a Draft, which is
// freely constructible and editable field by field, and becomes a Valid
// person only by passing through the validation gate. There is no other way
// to obtain a Valid value and no way back: the stage distinction is carried
// by two distinct types, so code holding a Valid person can rely on its field
// rules without re-checking them.
//
// All operations are pure value transformations. Editors take a value
// receiver and return a new draft, leaving the original untouched; nothing
// in the package performs I/O, holds shared state, or requires
// synchronization.
//
// Basic Usage:
//
//	draft := personkit.New().
//		WithFirstName("Jane").
//		WithLastName("Doe").
//		WithSocialSecurityNumber("1234567890").
//		WithMaritalStatus(personkit.Married).
//		WithPhoneNumber("5551234567")
//
//	person, ok := draft.Validate()
//	if !ok {
//		// the draft violates at least one field rule
//	}
//	_ = person.FirstName() // "Jane"
//
// Editors accept any value, including invalid intermediate states such as a
// three-character phone number; rules are applied only at the gate. Validate
// reports a binary outcome. When callers need to know which fields failed,
// Check returns a validator.ValidationErrors listing every violation:
//
//	if err := draft.Check(); err != nil {
//		for _, field := range validator.ExtractValidationErrors(err).Fields() {
//			// render a per-field message
//		}
//	}
//
// Input cleanup such as trimming or stripping phone punctuation is
// deliberately not part of validation; see pkg/sanitizer for opt-in helpers
// to apply before editing.
package personkit
