package cognito_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jaekwang-park/userpool-auth/internal/autherr"
	"github.com/jaekwang-park/userpool-auth/internal/cognito"
)

func TestLookupError_ServiceExceptions(t *testing.T) {
	tests := []struct {
		name       string
		wantStatus int
		wantCode   string
	}{
		{autherr.UsernameExistsException, 409, "USER_ALREADY_EXISTS"},
		{autherr.UserNotFoundException, 404, "USER_NOT_FOUND"},
		{autherr.UserNotConfirmedException, 403, "USER_NOT_CONFIRMED"},
		{autherr.InvalidPasswordException, 400, "INVALID_PASSWORD"},
		{autherr.CodeMismatchException, 400, "INVALID_CODE"},
		{autherr.ExpiredCodeException, 400, "CODE_EXPIRED"},
		{autherr.TooManyRequestsException, 429, "TOO_MANY_REQUESTS"},
		{autherr.NotAuthorizedException, 401, "NOT_AUTHORIZED"},
		{autherr.LimitExceededException, 429, "LIMIT_EXCEEDED"},
		{autherr.PasswordResetRequiredException, 403, "PASSWORD_RESET_REQUIRED"},
		{autherr.InvalidParameterException, 400, "INVALID_PARAMETER"},
		{autherr.InternalErrorException, 502, "PROVIDER_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info, ok := cognito.LookupError(autherr.NewService(tt.name, "message", nil))
			if !ok {
				t.Fatalf("expected LookupError to find %s", tt.name)
			}
			if info.Status != tt.wantStatus {
				t.Errorf("status: got %d, want %d", info.Status, tt.wantStatus)
			}
			if info.Code != tt.wantCode {
				t.Errorf("code: got %q, want %q", info.Code, tt.wantCode)
			}
		})
	}
}

func TestLookupError_Validation(t *testing.T) {
	info, ok := cognito.LookupError(autherr.NewValidation(autherr.EmptySignInPassword))
	if !ok || info.Status != 400 || info.Code != "VALIDATION_ERROR" {
		t.Errorf("got %+v, %v; want 400 VALIDATION_ERROR", info, ok)
	}

	info, ok = cognito.LookupError(autherr.NewValidation(autherr.UserUnAuthenticated))
	if !ok || info.Status != 401 {
		t.Errorf("got %+v, %v; want 401", info, ok)
	}
}

func TestLookupError_WrappedError(t *testing.T) {
	wrapped := fmt.Errorf("something failed: %w", autherr.NewService(autherr.UserNotFoundException, "gone", nil))
	info, ok := cognito.LookupError(wrapped)
	if !ok {
		t.Fatal("expected LookupError to find wrapped error")
	}
	if info.Status != 404 {
		t.Errorf("status: got %d, want 404", info.Status)
	}
}

func TestLookupError_UnknownError(t *testing.T) {
	if _, ok := cognito.LookupError(errors.New("unknown error")); ok {
		t.Error("expected LookupError to return false for plain error")
	}
	if _, ok := cognito.LookupError(autherr.NewUnknown(nil)); ok {
		t.Error("expected LookupError to return false for UNKNOWN")
	}
}

func TestLookupError_UnmappedServiceException(t *testing.T) {
	names := []string{
		autherr.InvalidSmsRoleAccessPolicyException,
		autherr.InvalidEmailRoleAccessPolicyException,
		autherr.InvalidSmsRoleTrustRelationshipException,
		autherr.ConcurrentModificationException,
	}

	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			info, ok := cognito.LookupError(autherr.NewService(name, "message", nil))
			if !ok {
				t.Fatalf("expected LookupError to map %s", name)
			}
			if info.Status != 400 || info.Code != "SERVICE_ERROR" {
				t.Errorf("got %+v, want 400 SERVICE_ERROR", info)
			}
		})
	}
}
