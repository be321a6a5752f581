package validation

import (
	"errors"
	"regexp"
)

// Loose shape check only: <non-whitespace>@<non-whitespace>.<non-whitespace>.
// Matches what the storefront widget's input validation accepts.
var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var (
	ErrMissingField = errors.New("name, email, and phone are required")
	ErrInvalidEmail = errors.New("invalid email format")
)

// ValidateSubmission checks the required intake fields. Values are expected
// to be trimmed by the caller.
func ValidateSubmission(name, email, phone string) error {
	if name == "" || email == "" || phone == "" {
		return ErrMissingField
	}
	if !emailRe.MatchString(email) {
		return ErrInvalidEmail
	}
	return nil
}
