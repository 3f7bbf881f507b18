package autherr

import (
	"errors"

	"github.com/aws/smithy-go"
)

// ServiceError is the name/message pair read from a recognized service failure.
type ServiceError struct {
	Name    string
	Message string
}

// AsServiceError narrows an arbitrary caught value to a service error.
//
// Recognized shapes are errors whose chain contains a smithy.APIError with a
// non-empty code (this includes *AuthError), and decoded JSON objects carrying
// string "name" and "message" keys. Anything else, nil included, is not
// recognized. The check has no side effects.
func AsServiceError(v any) (ServiceError, bool) {
	switch x := v.(type) {
	case nil:
		return ServiceError{}, false
	case error:
		return fromError(x)
	case map[string]any:
		return fromObject(x)
	default:
		return ServiceError{}, false
	}
}

// AssertServiceError is AsServiceError for callers that want an error back. When v
// is not recognized it returns an UNKNOWN *AuthError holding v.
func AssertServiceError(v any) (ServiceError, error) {
	se, ok := AsServiceError(v)
	if !ok {
		return ServiceError{}, NewUnknown(v)
	}
	return se, nil
}

func fromError(err error) (ServiceError, bool) {
	var apiErr smithy.APIError
	if !errors.As(err, &apiErr) || apiErr == nil {
		return ServiceError{}, false
	}
	code := apiErr.ErrorCode()
	if code == "" {
		return ServiceError{}, false
	}
	return ServiceError{Name: code, Message: apiErr.ErrorMessage()}, true
}

func fromObject(obj map[string]any) (ServiceError, bool) {
	name, ok := obj["name"].(string)
	if !ok || name == "" {
		return ServiceError{}, false
	}
	message, ok := obj["message"].(string)
	if !ok {
		return ServiceError{}, false
	}
	return ServiceError{Name: name, Message: message}, true
}
