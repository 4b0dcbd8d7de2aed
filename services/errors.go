// services/errors.go
package services

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when the requested service, job, or lead
	// does not exist in the store.
	ErrNotFound = errors.New("record not found")

	// ErrEmptyInvoice is returned when invoice generation is attempted
	// for a service without any jobs.
	ErrEmptyInvoice = errors.New("service has no jobs to invoice")
)

// ValidationError reports a missing or malformed field. The operation is
// aborted before any write.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func validationErr(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// DuplicateError reports a uniqueness conflict, e.g. a second Coating job on
// the same vehicle portion.
type DuplicateError struct {
	Message string
}

func (e *DuplicateError) Error() string {
	return e.Message
}

func duplicateErr(format string, args ...any) error {
	return &DuplicateError{Message: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsDuplicate reports whether err is a DuplicateError.
func IsDuplicate(err error) bool {
	var de *DuplicateError
	return errors.As(err, &de)
}
