// Package apperr defines the error taxonomy shared by services and handlers.
// Services attach a kind to every business failure; handlers map the kind to
// an HTTP status and never inspect message text.
package apperr

import "errors"

// Kind classifies a business failure.
type Kind int

const (
	KindUnknown Kind = iota
	KindConflict
	KindUnauthorized
	KindNotFound
	KindValidation
)

// Error carries a failure kind and a human-readable message.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Conflict reports a duplicate-resource failure.
func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

// Unauthorized reports a failed credential or identity check.
func Unauthorized(message string) *Error {
	return &Error{Kind: KindUnauthorized, Message: message}
}

// NotFound reports a missing or foreign-owned resource.
func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

// Validation reports a malformed request.
func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

// KindOf extracts the kind from err, unwrapping as needed. Errors without a
// kind report KindUnknown.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
