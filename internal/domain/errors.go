package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for every failure kind the record managers can surface.
// Callers branch with errors.Is; messages with field context are attached
// via FieldError.
var (
	ErrNotFound   = errors.New("record not found")
	ErrConnection = errors.New("store connection unavailable")

	ErrMissingField  = errors.New("required field is missing")
	ErrFieldLength   = errors.New("field exceeds maximum length")
	ErrInvalidEnum   = errors.New("value is not an allowed option")
	ErrEmptySequence = errors.New("sequence must not be empty")
	ErrInvalidInput  = errors.New("invalid input")

	ErrInvalidDate       = errors.New("invalid date")
	ErrInvalidTimeFormat = errors.New("unrecognized time format")
	ErrInvalidTimeValue  = errors.New("time component out of range")
	ErrInvalidEmail      = errors.New("invalid email address")

	ErrMalformedReference = errors.New("malformed event reference")
	ErrDanglingReference  = errors.New("referenced event does not exist")

	ErrDuplicateSlug    = errors.New("slug already in use")
	ErrDuplicateBooking = errors.New("booking already exists for this event and email")
)

// FieldError attaches the offending field (and an optional detail) to one of
// the sentinel kinds above. It unwraps to the sentinel so errors.Is keeps
// working across layers.
type FieldError struct {
	Field  string
	Err    error
	Detail string
}

func (e *FieldError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %v: %s", e.Field, e.Err, e.Detail)
	}
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

// NewFieldError wraps kind in a FieldError for the named field.
func NewFieldError(field string, kind error, detail string) error {
	return &FieldError{Field: field, Err: kind, Detail: detail}
}
