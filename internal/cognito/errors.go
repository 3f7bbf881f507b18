package cognito

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/aws/smithy-go"

	"github.com/jaekwang-park/userpool-auth/internal/autherr"
)

const maxErrorBodyBytes = 64 << 10

// UnexpectedResponseError is returned for a non-2xx response whose body does not
// name an exception. It is never recognized as a service error.
type UnexpectedResponseError struct {
	StatusCode int
	Body       string
}

func (e *UnexpectedResponseError) Error() string {
	return fmt.Sprintf("cognito: unexpected status %d: %s", e.StatusCode, e.Body)
}

type errorResponse struct {
	Type         string `json:"__type"`
	Code         string `json:"code"`
	Message      string `json:"message"`
	MessageUpper string `json:"Message"`
}

// decodeErrorResponse reads a failed response body into a smithy API error.
func decodeErrorResponse(resp *http.Response) error {
	var raw []byte
	if resp.Body != nil {
		raw, _ = io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
	}

	var body errorResponse
	_ = json.Unmarshal(raw, &body)

	code := body.Type
	if code == "" {
		code = body.Code
	}
	if code == "" {
		code = resp.Header.Get("X-Amzn-ErrorType")
	}
	code = sanitizeErrorCode(code)
	if code == "" {
		return &UnexpectedResponseError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	message := body.Message
	if message == "" {
		message = body.MessageUpper
	}

	fault := smithy.FaultClient
	if resp.StatusCode >= http.StatusInternalServerError {
		fault = smithy.FaultServer
	}
	return &smithy.GenericAPIError{Code: code, Message: message, Fault: fault}
}

// sanitizeErrorCode strips the namespace prefix and URI suffix the provider may
// attach, e.g. "aws.cognito#NotAuthorizedException:http://..." -> "NotAuthorizedException".
func sanitizeErrorCode(code string) string {
	if i := strings.IndexByte(code, ':'); i >= 0 {
		code = code[:i]
	}
	if i := strings.LastIndexByte(code, '#'); i >= 0 {
		code = code[i+1:]
	}
	return strings.TrimSpace(code)
}

// dispatchError converts a caught dispatch failure into an *AuthError. Exception
// sets are not consulted here; the calling operation narrows the result.
func dispatchError(caught any) *autherr.AuthError {
	se, ok := autherr.AsServiceError(caught)
	if !ok {
		return autherr.NewUnknown(caught)
	}
	return autherr.NewService(se.Name, se.Message, caught)
}

// ErrorInfo maps an auth error to its HTTP status and public error code.
type ErrorInfo struct {
	Status int
	Code   string
}

// errorMap maps provider exception names to HTTP statuses and error codes.
var errorMap = map[string]ErrorInfo{
	autherr.UsernameExistsException:               {Status: 409, Code: "USER_ALREADY_EXISTS"},
	autherr.AliasExistsException:                  {Status: 409, Code: "ALIAS_EXISTS"},
	autherr.UserNotFoundException:                 {Status: 404, Code: "USER_NOT_FOUND"},
	autherr.UserNotConfirmedException:             {Status: 403, Code: "USER_NOT_CONFIRMED"},
	autherr.PasswordResetRequiredException:        {Status: 403, Code: "PASSWORD_RESET_REQUIRED"},
	autherr.InvalidPasswordException:              {Status: 400, Code: "INVALID_PASSWORD"},
	autherr.CodeMismatchException:                 {Status: 400, Code: "INVALID_CODE"},
	autherr.ExpiredCodeException:                  {Status: 400, Code: "CODE_EXPIRED"},
	autherr.EnableSoftwareTokenMFAException:       {Status: 400, Code: "INVALID_CODE"},
	autherr.InvalidParameterException:             {Status: 400, Code: "INVALID_PARAMETER"},
	autherr.TooManyRequestsException:              {Status: 429, Code: "TOO_MANY_REQUESTS"},
	autherr.TooManyFailedAttemptsException:        {Status: 429, Code: "TOO_MANY_FAILED_ATTEMPTS"},
	autherr.LimitExceededException:                {Status: 429, Code: "LIMIT_EXCEEDED"},
	autherr.NotAuthorizedException:                {Status: 401, Code: "NOT_AUTHORIZED"},
	autherr.ForbiddenException:                    {Status: 403, Code: "FORBIDDEN"},
	autherr.SoftwareTokenMFANotFoundException:     {Status: 404, Code: "TOTP_NOT_FOUND"},
	autherr.ResourceNotFoundException:             {Status: 500, Code: "MISCONFIGURED"},
	autherr.InternalErrorException:                {Status: 502, Code: "PROVIDER_ERROR"},
	autherr.CodeDeliveryFailureException:          {Status: 502, Code: "CODE_DELIVERY_FAILED"},
	autherr.InvalidLambdaResponseException:        {Status: 502, Code: "PROVIDER_ERROR"},
	autherr.UnexpectedLambdaException:             {Status: 502, Code: "PROVIDER_ERROR"},
	autherr.UserLambdaValidationException:         {Status: 400, Code: "REJECTED_BY_TRIGGER"},
	autherr.InvalidUserPoolConfigurationException: {Status: 500, Code: "MISCONFIGURED"},
}

// LookupError returns the HTTP mapping for err. Validation failures are 400 and
// the user-unauthenticated check is 401. Service exceptions without an entry in
// errorMap are 400 SERVICE_ERROR. Returns false for UNKNOWN and non-auth errors.
func LookupError(err error) (ErrorInfo, bool) {
	authErr, ok := autherr.As(err)
	if !ok {
		return ErrorInfo{}, false
	}
	if authErr.Kind == autherr.KindValidation {
		if authErr.Name == string(autherr.UserUnAuthenticated) {
			return ErrorInfo{Status: 401, Code: "UNAUTHENTICATED"}, true
		}
		return ErrorInfo{Status: 400, Code: "VALIDATION_ERROR"}, true
	}
	if authErr.Kind != autherr.KindService {
		return ErrorInfo{}, false
	}
	if info, ok := errorMap[authErr.Name]; ok {
		return info, true
	}
	return ErrorInfo{Status: 400, Code: "SERVICE_ERROR"}, true
}
