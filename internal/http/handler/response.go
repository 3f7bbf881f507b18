package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/jaekwang-park/userpool-auth/internal/autherr"
	"github.com/jaekwang-park/userpool-auth/internal/cognito"
	"github.com/jaekwang-park/userpool-auth/internal/logging"
)

const maxBodySize = 1 << 20 // 1 MB

type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	// Name is the user pool exception or validation code behind Code.
	Name string `json:"name,omitempty"`
}

type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func WriteJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func WriteError(w http.ResponseWriter, status int, code, message string) {
	WriteJSON(w, status, ErrorResponse{
		Error: ErrorBody{
			Code:    code,
			Message: message,
		},
	})
}

// requirePost rejects other methods and caps the request body.
func requirePost(w http.ResponseWriter, r *http.Request, next func(http.ResponseWriter, *http.Request)) {
	if r.Method != http.MethodPost {
		WriteError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "method not allowed")
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
	next(w, r)
}

// decodeBody reads a JSON request body into dst. On failure it writes the
// error response and returns false.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			WriteError(w, http.StatusRequestEntityTooLarge, "BODY_TOO_LARGE", "request body too large")
			return false
		}
		WriteError(w, http.StatusBadRequest, "INVALID_JSON", "invalid request body")
		return false
	}
	return true
}

// writeAuthError maps a facade error to an HTTP response. UNKNOWN becomes a
// generic 500 and its detail stays in the logs.
func writeAuthError(w http.ResponseWriter, r *http.Request, err error) {
	logger := logging.FromContext(r.Context())

	info, ok := cognito.LookupError(err)
	if !ok {
		logger.ErrorContext(r.Context(), "auth internal error", "error", err.Error())
		WriteError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		return
	}

	authErr, _ := autherr.As(err)
	logger.WarnContext(r.Context(), "auth error", "code", info.Code, "name", authErr.Name)

	message := authErr.Message
	if authErr.Kind == autherr.KindService {
		message = errorMessage(info.Code, authErr.Message)
	}
	WriteJSON(w, info.Status, ErrorResponse{
		Error: ErrorBody{
			Code:    info.Code,
			Message: message,
			Name:    authErr.Name,
		},
	})
}

// safeMessages replaces provider messages not fit for clients.
var safeMessages = map[string]string{
	"USER_NOT_FOUND": "incorrect username or password",
	"MISCONFIGURED":  "the service is misconfigured",
	"PROVIDER_ERROR": "the identity provider failed to process the request",
}

func errorMessage(code, providerMessage string) string {
	if msg, ok := safeMessages[code]; ok {
		return msg
	}
	if providerMessage != "" {
		return providerMessage
	}
	return "an error occurred"
}
