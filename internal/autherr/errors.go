// Package autherr defines the single error type returned by every auth facade and
// the vocabulary used to classify failures into it.
package autherr

import (
	"errors"

	"github.com/aws/smithy-go"
)

// Unknown is the name given to any failure that could not be classified.
const Unknown = "UNKNOWN"

const unknownMessage = "An unknown error has occurred."

// Kind groups error names by where the failure was detected.
type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindService
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindService:
		return "service"
	default:
		return "unknown"
	}
}

// AuthError is the structured error surfaced to callers.
//
// Underlying holds exactly the value that was caught when the error was classified,
// including nil. It is never synthesized.
type AuthError struct {
	Name       string
	Message    string
	Underlying any
	Kind       Kind
}

func (e *AuthError) Error() string {
	if e.Message == "" {
		return e.Name
	}
	return e.Name + ": " + e.Message
}

// Unwrap exposes Underlying to errors.Is/As when it is an error.
func (e *AuthError) Unwrap() error {
	err, _ := e.Underlying.(error)
	return err
}

// ErrorCode implements smithy.APIError.
func (e *AuthError) ErrorCode() string {
	if e == nil {
		return ""
	}
	return e.Name
}

// ErrorMessage implements smithy.APIError.
func (e *AuthError) ErrorMessage() string {
	if e == nil {
		return ""
	}
	return e.Message
}

// ErrorFault implements smithy.APIError.
func (e *AuthError) ErrorFault() smithy.ErrorFault {
	switch e.Kind {
	case KindValidation:
		return smithy.FaultClient
	case KindService:
		var apiErr smithy.APIError
		if err := e.Unwrap(); err != nil && errors.As(err, &apiErr) {
			return apiErr.ErrorFault()
		}
		return smithy.FaultClient
	default:
		return smithy.FaultUnknown
	}
}

// NewUnknown wraps a caught value that could not be classified.
func NewUnknown(caught any) *AuthError {
	return &AuthError{
		Name:       Unknown,
		Message:    unknownMessage,
		Underlying: caught,
		Kind:       KindUnknown,
	}
}

// NewService builds an error for a named provider exception.
func NewService(name, message string, caught any) *AuthError {
	return &AuthError{
		Name:       name,
		Message:    message,
		Underlying: caught,
		Kind:       KindService,
	}
}

// As returns the first *AuthError in err's chain.
func As(err error) (*AuthError, bool) {
	var authErr *AuthError
	if errors.As(err, &authErr) && authErr != nil {
		return authErr, true
	}
	return nil, false
}

// HasName reports whether err is an *AuthError with the given name.
func HasName(err error, name string) bool {
	authErr, ok := As(err)
	return ok && authErr.Name == name
}

// IsUnknown reports whether err was classified as UNKNOWN.
func IsUnknown(err error) bool {
	return HasName(err, Unknown)
}

// IsValidation reports whether err was raised by local input validation.
func IsValidation(err error) bool {
	authErr, ok := As(err)
	return ok && authErr.Kind == KindValidation
}

var _ smithy.APIError = (*AuthError)(nil)
