// internal/domain/apperr/apperr.go
package apperr

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies application errors.
type Kind string

const (
	// KindValidation: bad input caught before any remote call
	// (empty cart, non-positive total, missing required field).
	KindValidation Kind = "validation"

	// KindPrecondition: illegal state transition attempted.
	// Message names the required source state.
	KindPrecondition Kind = "precondition_failed"

	// KindUnauthenticated: action requires a signed-in principal.
	KindUnauthenticated Kind = "unauthenticated"

	// KindRemote: the document/auth service call itself failed
	// (network, permission, not-found). Normalized at the adapter boundary.
	KindRemote Kind = "remote_failure"
)

// Error is the single structured error variant used across the engines.
// Message is required and human-readable; remote errors of any shape are
// normalized into this form before reaching the application layer.
//
// NOTE: persistence warnings (local mirror read/write failures) are NOT
// errors; they are logged at the store and never surface to callers.
type Error struct {
	Kind    Kind
	Message string
	Err     error // wrapped cause (remote failures)
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Validation builds a KindValidation error.
func Validation(msg string) *Error {
	return &Error{Kind: KindValidation, Message: strings.TrimSpace(msg)}
}

// Preconditionf builds a KindPrecondition error. The message should name
// the required source state (e.g. "cancel requires a pending order").
func Preconditionf(format string, args ...any) *Error {
	return &Error{Kind: KindPrecondition, Message: fmt.Sprintf(format, args...)}
}

// Unauthenticated builds a KindUnauthenticated error.
func Unauthenticated(msg string) *Error {
	return &Error{Kind: KindUnauthenticated, Message: strings.TrimSpace(msg)}
}

// Remote normalizes a failed remote call into the structured variant.
// msg is the user-facing message; cause keeps the original error for logs.
func Remote(msg string, cause error) *Error {
	return &Error{Kind: KindRemote, Message: strings.TrimSpace(msg), Err: cause}
}

// IsKind reports whether err (or anything it wraps) is an *Error of kind k.
func IsKind(err error, k Kind) bool {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind == k
	}
	return false
}

// MessageOf returns the user-facing message, falling back to err.Error().
func MessageOf(err error) string {
	if err == nil {
		return ""
	}
	var ae *Error
	if errors.As(err, &ae) && ae.Message != "" {
		return ae.Message
	}
	return err.Error()
}
