package personkit

import (
	"errors"
	"fmt"
)

// MaritalStatus is the closed set of filing statuses a person can carry.
// The zero value is Single, so an empty draft defaults to it. Marital status
// needs no gate rule: construction through the named constants is the
// validation.
type MaritalStatus int

const (
	Single MaritalStatus = iota
	Married
	JointFiling
	SeparateFiling
	HeadOfHousehold
	SurvivingSpouse
)

// ErrUnknownMaritalStatus is returned by ParseMaritalStatus for text that
// names none of the six statuses.
var ErrUnknownMaritalStatus = errors.New("unknown marital status")

// String returns the snake_case name of the status.
func (s MaritalStatus) String() string {
	switch s {
	case Single:
		return "single"
	case Married:
		return "married"
	case JointFiling:
		return "joint_filing"
	case SeparateFiling:
		return "separate_filing"
	case HeadOfHousehold:
		return "head_of_household"
	case SurvivingSpouse:
		return "surviving_spouse"
	default:
		return "unknown"
	}
}

// Valid reports whether the value is one of the six named statuses. Useful
// when a status arrives as an untrusted integer; values built from the
// constants are always valid.
func (s MaritalStatus) Valid() bool {
	return s >= Single && s <= SurvivingSpouse
}

// ParseMaritalStatus converts the snake_case name produced by String back
// into a status.
func ParseMaritalStatus(s string) (MaritalStatus, error) {
	switch s {
	case "single":
		return Single, nil
	case "married":
		return Married, nil
	case "joint_filing":
		return JointFiling, nil
	case "separate_filing":
		return SeparateFiling, nil
	case "head_of_household":
		return HeadOfHousehold, nil
	case "surviving_spouse":
		return SurvivingSpouse, nil
	default:
		return Single, fmt.Errorf("%w: %q", ErrUnknownMaritalStatus, s)
	}
}
