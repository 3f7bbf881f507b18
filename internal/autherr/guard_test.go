package autherr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jaekwang-park/userpool-auth/internal/autherr"
)

func TestAsServiceError_Unrecognized(t *testing.T) {
	var nilAuthErr *autherr.AuthError

	tests := []struct {
		name  string
		value any
	}{
		{"nil", nil},
		{"string", "InvalidParameterException"},
		{"int", 42},
		{"bool", true},
		{"plain error", errors.New("network down")},
		{"api error without code", &smithy.GenericAPIError{Message: "no code"}},
		{"typed nil auth error", error(nilAuthErr)},
		{"object without name", map[string]any{"message": "m"}},
		{"object without message", map[string]any{"name": "InvalidParameterException"}},
		{"object with non-string name", map[string]any{"name": 1, "message": "m"}},
		{"object with non-string message", map[string]any{"name": "X", "message": []string{"m"}}},
		{"struct", struct{ Name, Message string }{"X", "m"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				_, ok := autherr.AsServiceError(tt.value)
				assert.False(t, ok)
			})
		})
	}
}

func TestAsServiceError_Recognized(t *testing.T) {
	apiErr := &smithy.GenericAPIError{Code: autherr.InvalidParameterException, Message: "bad param"}

	tests := []struct {
		name  string
		value any
		want  autherr.ServiceError
	}{
		{
			name:  "smithy api error",
			value: apiErr,
			want:  autherr.ServiceError{Name: autherr.InvalidParameterException, Message: "bad param"},
		},
		{
			name:  "wrapped api error",
			value: fmt.Errorf("operation SignUp: %w", apiErr),
			want:  autherr.ServiceError{Name: autherr.InvalidParameterException, Message: "bad param"},
		},
		{
			name:  "auth error",
			value: autherr.NewService(autherr.UserNotFoundException, "gone", nil),
			want:  autherr.ServiceError{Name: autherr.UserNotFoundException, Message: "gone"},
		},
		{
			name:  "decoded object",
			value: map[string]any{"name": "LimitExceededException", "message": "slow down"},
			want:  autherr.ServiceError{Name: "LimitExceededException", Message: "slow down"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := autherr.AsServiceError(tt.value)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAsServiceError_Idempotent(t *testing.T) {
	obj := map[string]any{"name": "ExpiredCodeException", "message": "expired"}

	first, ok1 := autherr.AsServiceError(obj)
	second, ok2 := autherr.AsServiceError(obj)

	assert.Equal(t, ok1, ok2)
	assert.Equal(t, first, second)
	assert.Equal(t, map[string]any{"name": "ExpiredCodeException", "message": "expired"}, obj)
}

func TestAssertServiceError(t *testing.T) {
	t.Run("recognized", func(t *testing.T) {
		se, err := autherr.AssertServiceError(&smithy.GenericAPIError{Code: "X", Message: "y"})
		require.NoError(t, err)
		assert.Equal(t, "X", se.Name)
	})

	t.Run("nil becomes unknown", func(t *testing.T) {
		_, err := autherr.AssertServiceError(nil)
		require.Error(t, err)

		authErr, ok := autherr.As(err)
		require.True(t, ok)
		assert.Equal(t, autherr.Unknown, authErr.Name)
		assert.Nil(t, authErr.Underlying)
	})
}
