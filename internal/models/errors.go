package models

import (
	"errors"
)

var (
	ErrNoRecord     = errors.New("models: no matching record found")
	ErrInvalidInput = errors.New("models: invalid input")
)

// Error is a failure with a message meant for API clients. It unwraps to
// its kind, ErrNoRecord or ErrInvalidInput.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Kind }

func notFound(msg string) error { return &Error{Kind: ErrNoRecord, Message: msg} }

func invalid(msg string) error { return &Error{Kind: ErrInvalidInput, Message: msg} }

// Invalid builds a validation error with a custom message.
func Invalid(msg string) error { return invalid(msg) }

var (
	ErrEstateNotFound   = notFound("Estate not found")
	ErrProviderNotFound = notFound("Provider not found")
	ErrNotAProvider     = notFound("User is not a provider")
	ErrUserNotFound     = notFound("User not found")
	ErrUserNotFoundDot  = notFound("User not found.")
	ErrNoData           = notFound("No data available")
	ErrNoFeedback       = notFound("No feedback found")
	ErrFeedbackNotFound = notFound("Feedback not found")
	ErrNoPosts          = notFound("No posts found.")
	ErrPostNotFound     = notFound("Post not found.")
)

var (
	ErrInvalidIsAccepted   = invalid(`Invalid IsAccepted value. It must be "2" (Accepted) or "3" (Rejected).`)
	ErrEstateNotPending    = invalid("Cannot update IsAccepted. The estate is no longer under process.")
	ErrInvalidPostStatus   = invalid("Invalid status value. Must be 1 (accepted) or 2 (rejected).")
	ErrTypeAccountRequired = invalid("TypeAccount value is required.")
	ErrInvalidBody         = invalid("Invalid request body.")
)
