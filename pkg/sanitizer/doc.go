// Package sanitizer provides small, pure helpers for cleaning user input
// before it is placed into a draft record.
//
// The helpers are deliberately separate from validation: editing accepts any
// value and validation never rewrites one, so any normalization — trimming a
// name, stripping punctuation from a phone number — is an explicit step the
// caller takes before editing. Every function is a total transformation on
// its input and returns a new value; nothing here can fail or reject.
//
// The higher-order Apply and Compose helpers build sanitization pipelines:
//
//	cleanPhone := sanitizer.Compose(
//	    sanitizer.Trim,
//	    sanitizer.ExtractDigits,
//	)
//
//	digits := cleanPhone(" (555) 123-4567 ") // "5551234567"
//
// The package is stateless and depends only on the standard library.
package sanitizer
