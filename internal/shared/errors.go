package shared

import (
	"errors"
	"fmt"
)

var (
	// Configuration errors
	ErrMissingConfig = fmt.Errorf("configuration not found")
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// Catalog errors
	ErrValidation = fmt.Errorf("validation failed")
	ErrNotFound   = fmt.Errorf("not found")
	ErrStorage    = fmt.Errorf("storage error")

	// Input validation errors
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidFlag     = fmt.Errorf("invalid flag value")
)

// ValidationError reports a rejected request field. It matches [ErrValidation] with [errors.Is].
type ValidationError struct {
	Field   string
	Message string
}

// NewValidationError builds a [ValidationError] for field.
func NewValidationError(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NotFoundError reports a well-formed request for an entity that does not exist.
// It matches [ErrNotFound] with [errors.Is].
type NotFoundError struct {
	Entity string
}

// NewNotFoundError builds a [NotFoundError] whose message is client-safe, e.g. "Artist not found".
func NewNotFoundError(entity string) *NotFoundError {
	return &NotFoundError{Entity: entity}
}

func (e *NotFoundError) Error() string       { return e.Entity + " not found" }
func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// ClientMessage returns the message of the innermost [ValidationError] or [NotFoundError] in err's chain.
//
// The second result is false when err carries neither, meaning its text must not reach a client.
func ClientMessage(err error) (string, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Message, true
	}
	var nf *NotFoundError
	if errors.As(err, &nf) {
		return nf.Error(), true
	}
	return "", false
}

// IsClientError reports whether err is safe to surface verbatim to an API caller.
func IsClientError(err error) bool {
	return errors.Is(err, ErrValidation) || errors.Is(err, ErrNotFound)
}
