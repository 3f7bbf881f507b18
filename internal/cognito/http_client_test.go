package cognito_test

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jaekwang-park/userpool-auth/internal/autherr"
	"github.com/jaekwang-park/userpool-auth/internal/cognito"
)

type doerFunc func(*http.Request) (*http.Response, error)

func (f doerFunc) Do(req *http.Request) (*http.Response, error) { return f(req) }

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{"Content-Type": []string{"application/x-amz-json-1.1"}},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func requireAuthError(t *testing.T, err error) *autherr.AuthError {
	t.Helper()
	require.Error(t, err)
	authErr, ok := autherr.As(err)
	require.True(t, ok, "expected *autherr.AuthError, got %T", err)
	return authErr
}

func TestEndpoint(t *testing.T) {
	assert.Equal(t, "https://cognito-idp.us-west-2.amazonaws.com/", cognito.Endpoint("us-west-2"))
}

func TestOperation_Target(t *testing.T) {
	assert.Equal(t, "AWSCognitoIdentityProviderService.ResendConfirmationCode", cognito.OpResendConfirmationCode.Target())
}

func TestUserPoolHTTPClient_Send_Success(t *testing.T) {
	var calls atomic.Int32
	var gotBody map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/", r.URL.Path)
		assert.Equal(t, "application/x-amz-json-1.1", r.Header.Get("Content-Type"))
		assert.Equal(t, "AWSCognitoIdentityProviderService.ResendConfirmationCode", r.Header.Get("X-Amz-Target"))
		assert.Equal(t, "test-agent/1.0", r.Header.Get("X-Amz-User-Agent"))
		assert.Equal(t, "no-store", r.Header.Get("Cache-Control"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/x-amz-json-1.1")
		_, _ = io.WriteString(w, `{"CodeDeliveryDetails":{"AttributeName":"email","DeliveryMedium":"EMAIL","Destination":"a***@e***"}}`)
	}))
	defer srv.Close()

	client := cognito.NewUserPoolHTTPClient("us-east-1",
		cognito.WithEndpoint(srv.URL+"/"),
		cognito.WithUserAgent("test-agent/1.0"),
	)

	var out cognito.ResendConfirmationCodeResponse
	err := client.Send(t.Context(), cognito.OpResendConfirmationCode, &cognito.ResendConfirmationCodeRequest{
		ClientId: "client-1",
		Username: "alice",
	}, &out)

	require.NoError(t, err)
	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, map[string]any{"ClientId": "client-1", "Username": "alice"}, gotBody)
	require.NotNil(t, out.CodeDeliveryDetails)
	assert.Equal(t, "EMAIL", out.CodeDeliveryDetails.DeliveryMedium)
	assert.Equal(t, "a***@e***", out.CodeDeliveryDetails.Destination)
}

func TestUserPoolHTTPClient_Send_EmptySuccessBody(t *testing.T) {
	client := cognito.NewUserPoolHTTPClient("us-east-1", cognito.WithDoer(doerFunc(func(*http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, ""), nil
	})))

	var out cognito.GlobalSignOutResponse
	err := client.Send(t.Context(), cognito.OpGlobalSignOut, &cognito.GlobalSignOutRequest{AccessToken: "tok"}, &out)

	assert.NoError(t, err)
}

func TestUserPoolHTTPClient_Send_ServiceErrors(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		header      http.Header
		body        string
		wantName    string
		wantMessage string
		wantFault   smithy.ErrorFault
	}{
		{
			name:        "namespaced __type",
			status:      http.StatusBadRequest,
			body:        `{"__type":"com.amazonaws.cognito.identity.idp.model#UsernameExistsException","message":"User already exists"}`,
			wantName:    autherr.UsernameExistsException,
			wantMessage: "User already exists",
			wantFault:   smithy.FaultClient,
		},
		{
			name:        "plain __type with Message",
			status:      http.StatusBadRequest,
			body:        `{"__type":"LimitExceededException","Message":"Attempt limit exceeded"}`,
			wantName:    autherr.LimitExceededException,
			wantMessage: "Attempt limit exceeded",
			wantFault:   smithy.FaultClient,
		},
		{
			name:        "error type header",
			status:      http.StatusInternalServerError,
			header:      http.Header{"X-Amzn-Errortype": []string{"InternalErrorException:http://internal.amazon.com/"}},
			body:        `{"message":"try again"}`,
			wantName:    autherr.InternalErrorException,
			wantMessage: "try again",
			wantFault:   smithy.FaultServer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := cognito.NewUserPoolHTTPClient("us-east-1", cognito.WithDoer(doerFunc(func(*http.Request) (*http.Response, error) {
				resp := jsonResponse(tt.status, tt.body)
				for k, v := range tt.header {
					resp.Header[k] = v
				}
				return resp, nil
			})))

			err := client.Send(t.Context(), cognito.OpSignUp, &cognito.SignUpRequest{}, &cognito.SignUpResponse{})

			authErr := requireAuthError(t, err)
			assert.Equal(t, tt.wantName, authErr.Name)
			assert.Equal(t, tt.wantMessage, authErr.Message)
			assert.Equal(t, autherr.KindService, authErr.Kind)

			var apiErr *smithy.GenericAPIError
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, tt.wantFault, apiErr.Fault)
			assert.Same(t, apiErr, authErr.Underlying)
		})
	}
}

func TestUserPoolHTTPClient_Send_UnknownFailures(t *testing.T) {
	transportErr := errors.New("connection refused")

	tests := []struct {
		name           string
		doer           doerFunc
		input          any
		wantUnderlying func(t *testing.T, underlying any)
	}{
		{
			name: "transport error",
			doer: func(*http.Request) (*http.Response, error) { return nil, transportErr },
			wantUnderlying: func(t *testing.T, underlying any) {
				assert.Same(t, transportErr, underlying)
			},
		},
		{
			name: "transport panic",
			doer: func(*http.Request) (*http.Response, error) { panic("boom") },
			wantUnderlying: func(t *testing.T, underlying any) {
				assert.Equal(t, "boom", underlying)
			},
		},
		{
			name: "no response and no error",
			doer: func(*http.Request) (*http.Response, error) { return nil, nil },
			wantUnderlying: func(t *testing.T, underlying any) {
				assert.Nil(t, underlying)
			},
		},
		{
			name: "error status without exception name",
			doer: func(*http.Request) (*http.Response, error) {
				return jsonResponse(http.StatusBadGateway, "<html>bad gateway</html>"), nil
			},
			wantUnderlying: func(t *testing.T, underlying any) {
				var respErr *cognito.UnexpectedResponseError
				require.ErrorAs(t, underlying.(error), &respErr)
				assert.Equal(t, http.StatusBadGateway, respErr.StatusCode)
			},
		},
		{
			name: "malformed success body",
			doer: func(*http.Request) (*http.Response, error) {
				return jsonResponse(http.StatusOK, "{not json"), nil
			},
			wantUnderlying: func(t *testing.T, underlying any) {
				var syntaxErr *json.SyntaxError
				require.ErrorAs(t, underlying.(error), &syntaxErr)
			},
		},
		{
			name: "unencodable input",
			doer: func(*http.Request) (*http.Response, error) {
				t.Fatal("transport must not be called")
				return nil, nil
			},
			input: map[string]any{"ch": make(chan int)},
			wantUnderlying: func(t *testing.T, underlying any) {
				var typeErr *json.UnsupportedTypeError
				require.ErrorAs(t, underlying.(error), &typeErr)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := cognito.NewUserPoolHTTPClient("us-east-1", cognito.WithDoer(tt.doer))

			input := tt.input
			if input == nil {
				input = &cognito.SignUpRequest{ClientId: "c", Username: "u", Password: "p"}
			}

			var err error
			require.NotPanics(t, func() {
				err = client.Send(t.Context(), cognito.OpSignUp, input, &cognito.SignUpResponse{})
			})

			authErr := requireAuthError(t, err)
			assert.Equal(t, autherr.Unknown, authErr.Name)
			assert.Equal(t, autherr.KindUnknown, authErr.Kind)
			tt.wantUnderlying(t, authErr.Underlying)
		})
	}
}

func TestUserPoolHTTPClient_Send_NoRetry(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = io.WriteString(w, `{"__type":"InternalErrorException","message":"down"}`)
	}))
	defer srv.Close()

	client := cognito.NewUserPoolHTTPClient("us-east-1", cognito.WithEndpoint(srv.URL))
	err := client.Send(t.Context(), cognito.OpForgotPassword, &cognito.ForgotPasswordRequest{}, nil)

	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())
}
