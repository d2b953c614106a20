package personkit

import (
	"github.com/dmitrymomot/personkit/pkg/validator"
)

// Field rule constants. Both number fields use the ten-character
// fully-numeric text form.
const (
	ssnLength   = 10
	phoneLength = 10
)

// Field names used in validation errors.
const (
	FieldFirstName            = "first_name"
	FieldLastName             = "last_name"
	FieldSocialSecurityNumber = "social_security_number"
	FieldPhoneNumber          = "phone_number"
)

// fields is the record carried by every person value regardless of stage.
// It is a plain value: copying it is copying the person.
type fields struct {
	firstName     string
	lastName      string
	ssn           string
	maritalStatus MaritalStatus
	phoneNumber   string
}

func (f fields) FirstName() string { return f.firstName }

func (f fields) LastName() string { return f.lastName }

func (f fields) SocialSecurityNumber() string { return f.ssn }

func (f fields) MaritalStatus() MaritalStatus { return f.maritalStatus }

func (f fields) PhoneNumber() string { return f.phoneNumber }

// Draft is a person in the editing stage. Drafts are freely constructible,
// comparable values; every editor returns a new draft and never touches its
// receiver. Invalid intermediate states are legal in a draft — rules apply
// only at the gate.
type Draft struct {
	fields
}

// Valid is a person that passed the validation gate. Every Valid value
// satisfies all field rules in Check. The type has no exported constructor
// and no editors: the only producer is Draft.Validate (or Draft.Check via
// Validate), and there is no conversion back to a Draft.
type Valid struct {
	fields
}

// New returns an empty draft: all text fields empty, marital status Single.
func New() Draft {
	return Draft{}
}

// WithFirstName returns a copy of the draft with the first name replaced.
func (d Draft) WithFirstName(name string) Draft {
	d.firstName = name
	return d
}

// WithLastName returns a copy of the draft with the last name replaced.
func (d Draft) WithLastName(name string) Draft {
	d.lastName = name
	return d
}

// WithSocialSecurityNumber returns a copy of the draft with the social
// security number text replaced. Any text is accepted here, including
// partial or non-numeric input.
func (d Draft) WithSocialSecurityNumber(ssn string) Draft {
	d.ssn = ssn
	return d
}

// WithMaritalStatus returns a copy of the draft with the marital status
// replaced.
func (d Draft) WithMaritalStatus(status MaritalStatus) Draft {
	d.maritalStatus = status
	return d
}

// WithPhoneNumber returns a copy of the draft with the phone number text
// replaced. Any text is accepted here, including partial or non-numeric
// input.
func (d Draft) WithPhoneNumber(phone string) Draft {
	d.phoneNumber = phone
	return d
}

// Clone is the whole-record editor: it returns the draft unchanged. Drafts
// are values, so the result is already an independent copy of the receiver.
func (d Draft) Clone() Draft {
	return d
}

// Check reports every field rule the draft violates, or nil when the draft
// would pass the gate. The error is a validator.ValidationErrors keyed by
// the Field* constants. Check never normalizes the draft; a value passes or
// fails exactly as stored.
func (d Draft) Check() error {
	return validator.Apply(
		validator.NonEmpty(FieldFirstName, d.firstName),
		validator.NonEmpty(FieldLastName, d.lastName),
		validator.NonEmpty(FieldSocialSecurityNumber, d.ssn),
		validator.ExactLen(FieldSocialSecurityNumber, d.ssn, ssnLength),
		validator.Digits(FieldSocialSecurityNumber, d.ssn),
		validator.NonEmpty(FieldPhoneNumber, d.phoneNumber),
		validator.ExactLen(FieldPhoneNumber, d.phoneNumber, phoneLength),
		validator.Digits(FieldPhoneNumber, d.phoneNumber),
	)
}

// Validate is the gate between the two stages. It reclassifies the draft
// without transforming it: on success the returned Valid carries the exact
// field values of the draft. The second return is false when any field rule
// fails; callers that need per-field detail use Check instead.
func (d Draft) Validate() (Valid, bool) {
	if d.Check() != nil {
		return Valid{}, false
	}
	return Valid{fields: d.fields}, true
}
