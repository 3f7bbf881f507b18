package handler

import (
	"net/http"
	"strings"

	"github.com/jaekwang-park/userpool-auth/internal/service"
)

// AuthHandler serves the unauthenticated /api/v1/auth/* endpoints.
type AuthHandler struct {
	svc *service.AuthService
}

func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

func (h *AuthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/api/v1/auth/")
	path = strings.TrimRight(path, "/")

	switch path {
	case "signup":
		requirePost(w, r, h.handleSignUp)
	case "confirm-signup":
		requirePost(w, r, h.handleConfirmSignUp)
	case "resend-code":
		requirePost(w, r, h.handleResendCode)
	case "signin":
		requirePost(w, r, h.handleSignIn)
	case "refresh":
		requirePost(w, r, h.handleRefresh)
	case "reset-password":
		requirePost(w, r, h.handleResetPassword)
	case "confirm-reset-password":
		requirePost(w, r, h.handleConfirmResetPassword)
	default:
		WriteError(w, http.StatusNotFound, "NOT_FOUND", "endpoint not found")
	}
}

// --- DTOs ---

type signUpRequest struct {
	Username       string            `json:"username"`
	Password       string            `json:"password"`
	UserAttributes map[string]string `json:"user_attributes"`
	ValidationData map[string]string `json:"validation_data"`
	ClientMetadata map[string]string `json:"client_metadata"`
}

type confirmSignUpRequest struct {
	Username           string            `json:"username"`
	Code               string            `json:"code"`
	ForceAliasCreation bool              `json:"force_alias_creation"`
	ClientMetadata     map[string]string `json:"client_metadata"`
}

type resendCodeRequest struct {
	Username       string            `json:"username"`
	ClientMetadata map[string]string `json:"client_metadata"`
}

type signInRequest struct {
	Username       string            `json:"username"`
	Password       string            `json:"password"`
	ClientMetadata map[string]string `json:"client_metadata"`
}

type refreshRequest struct {
	Username     string `json:"username"`
	RefreshToken string `json:"refresh_token"`
}

type resetPasswordRequest struct {
	Username       string            `json:"username"`
	ClientMetadata map[string]string `json:"client_metadata"`
}

type confirmResetPasswordRequest struct {
	Username       string            `json:"username"`
	Code           string            `json:"code"`
	NewPassword    string            `json:"new_password"`
	ClientMetadata map[string]string `json:"client_metadata"`
}

// --- Handlers ---

func (h *AuthHandler) handleSignUp(w http.ResponseWriter, r *http.Request) {
	var req signUpRequest
	if !decodeBody(w, r, &req) {
		return
	}

	out, err := h.svc.SignUp(r.Context(), service.SignUpInput{
		Username: req.Username,
		Password: req.Password,
		Options: service.SignUpOptions{
			UserAttributes: req.UserAttributes,
			ValidationData: req.ValidationData,
			ClientMetadata: req.ClientMetadata,
		},
	})
	if err != nil {
		writeAuthError(w, r, err)
		return
	}

	WriteJSON(w, http.StatusCreated, out)
}

func (h *AuthHandler) handleConfirmSignUp(w http.ResponseWriter, r *http.Request) {
	var req confirmSignUpRequest
	if !decodeBody(w, r, &req) {
		return
	}

	out, err := h.svc.ConfirmSignUp(r.Context(), service.ConfirmSignUpInput{
		Username:         req.Username,
		ConfirmationCode: req.Code,
		Options: service.ConfirmSignUpOptions{
			ForceAliasCreation: req.ForceAliasCreation,
			ClientMetadata:     req.ClientMetadata,
		},
	})
	if err != nil {
		writeAuthError(w, r, err)
		return
	}

	WriteJSON(w, http.StatusOK, out)
}

func (h *AuthHandler) handleResendCode(w http.ResponseWriter, r *http.Request) {
	var req resendCodeRequest
	if !decodeBody(w, r, &req) {
		return
	}

	out, err := h.svc.ResendSignUpCode(r.Context(), service.ResendSignUpCodeInput{
		Username: req.Username,
		Options:  service.ResendSignUpCodeOptions{ClientMetadata: req.ClientMetadata},
	})
	if err != nil {
		writeAuthError(w, r, err)
		return
	}

	WriteJSON(w, http.StatusOK, out)
}

func (h *AuthHandler) handleSignIn(w http.ResponseWriter, r *http.Request) {
	var req signInRequest
	if !decodeBody(w, r, &req) {
		return
	}

	out, err := h.svc.SignIn(r.Context(), service.SignInInput{
		Username: req.Username,
		Password: req.Password,
		Options:  service.SignInOptions{ClientMetadata: req.ClientMetadata},
	})
	if err != nil {
		writeAuthError(w, r, err)
		return
	}

	WriteJSON(w, http.StatusOK, out)
}

func (h *AuthHandler) handleRefresh(w http.ResponseWriter, r *http.Request) {
	var req refreshRequest
	if !decodeBody(w, r, &req) {
		return
	}

	out, err := h.svc.RefreshTokens(r.Context(), service.RefreshTokensInput{
		Username:     req.Username,
		RefreshToken: req.RefreshToken,
	})
	if err != nil {
		writeAuthError(w, r, err)
		return
	}

	WriteJSON(w, http.StatusOK, out)
}

func (h *AuthHandler) handleResetPassword(w http.ResponseWriter, r *http.Request) {
	var req resetPasswordRequest
	if !decodeBody(w, r, &req) {
		return
	}

	out, err := h.svc.ResetPassword(r.Context(), service.ResetPasswordInput{
		Username: req.Username,
		Options:  service.ResetPasswordOptions{ClientMetadata: req.ClientMetadata},
	})
	if err != nil {
		writeAuthError(w, r, err)
		return
	}

	WriteJSON(w, http.StatusOK, out)
}

func (h *AuthHandler) handleConfirmResetPassword(w http.ResponseWriter, r *http.Request) {
	var req confirmResetPasswordRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := h.svc.ConfirmResetPassword(r.Context(), service.ConfirmResetPasswordInput{
		Username:         req.Username,
		NewPassword:      req.NewPassword,
		ConfirmationCode: req.Code,
		Options:          service.ConfirmResetPasswordOptions{ClientMetadata: req.ClientMetadata},
	}); err != nil {
		writeAuthError(w, r, err)
		return
	}

	WriteJSON(w, http.StatusOK, MessageResponse{Message: "password reset confirmed"})
}
