package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/jaekwang-park/userpool-auth/internal/middleware"
	"github.com/jaekwang-park/userpool-auth/internal/service"
)

// AccountHandler serves /api/v1/account/* for the caller identified by the
// auth middleware.
type AccountHandler struct {
	svc     *service.AuthService
	appName string
}

// NewAccountHandler creates an AccountHandler. appName is the issuer shown by
// authenticator apps after TOTP setup.
func NewAccountHandler(svc *service.AuthService, appName string) *AccountHandler {
	return &AccountHandler{svc: svc, appName: appName}
}

func (h *AccountHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.GetPrincipal(r)
	if !ok {
		WriteError(w, http.StatusUnauthorized, "UNAUTHENTICATED", "authentication required")
		return
	}

	path := strings.TrimPrefix(r.URL.Path, "/api/v1/account/")
	path = strings.TrimRight(path, "/")

	withPrincipal := func(fn func(http.ResponseWriter, *http.Request, middleware.Principal)) func(http.ResponseWriter, *http.Request) {
		return func(w http.ResponseWriter, r *http.Request) { fn(w, r, principal) }
	}

	switch path {
	case "me":
		if r.Method != http.MethodGet {
			WriteError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "method not allowed")
			return
		}
		h.handleMe(w, r, principal)
	case "password":
		requirePost(w, r, withPrincipal(h.handleUpdatePassword))
	case "totp/setup":
		requirePost(w, r, withPrincipal(h.handleSetUpTOTP))
	case "totp/verify":
		requirePost(w, r, withPrincipal(h.handleVerifyTOTP))
	case "signout":
		requirePost(w, r, withPrincipal(h.handleSignOut))
	default:
		WriteError(w, http.StatusNotFound, "NOT_FOUND", "endpoint not found")
	}
}

// --- DTOs ---

type updatePasswordRequest struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

type setUpTOTPResponse struct {
	SharedSecret string `json:"shared_secret"`
	SetupURI     string `json:"setup_uri"`
}

type verifyTOTPRequest struct {
	Code               string `json:"code"`
	FriendlyDeviceName string `json:"friendly_device_name"`
}

// --- Handlers ---

func (h *AccountHandler) handleMe(w http.ResponseWriter, r *http.Request, p middleware.Principal) {
	user, err := h.svc.CurrentUser(r.Context(), p.Sub)
	switch {
	case errors.Is(err, service.ErrMirrorDisabled):
		WriteError(w, http.StatusNotImplemented, "MIRROR_DISABLED", "user mirror is not enabled")
	case errors.Is(err, service.ErrNotFound):
		WriteError(w, http.StatusNotFound, "USER_NOT_FOUND", "user has not signed in through this gateway")
	case err != nil:
		writeAuthError(w, r, err)
	default:
		WriteJSON(w, http.StatusOK, user)
	}
}

func (h *AccountHandler) handleUpdatePassword(w http.ResponseWriter, r *http.Request, p middleware.Principal) {
	var req updatePasswordRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := h.svc.UpdatePassword(r.Context(), service.UpdatePasswordInput{
		AccessToken: p.AccessToken,
		OldPassword: req.OldPassword,
		NewPassword: req.NewPassword,
	}); err != nil {
		writeAuthError(w, r, err)
		return
	}

	WriteJSON(w, http.StatusOK, MessageResponse{Message: "password changed"})
}

func (h *AccountHandler) handleSetUpTOTP(w http.ResponseWriter, r *http.Request, p middleware.Principal) {
	details, err := h.svc.SetUpTOTP(r.Context(), service.SetUpTOTPInput{
		AccessToken: p.AccessToken,
		Username:    p.Username,
	})
	if err != nil {
		writeAuthError(w, r, err)
		return
	}

	WriteJSON(w, http.StatusOK, setUpTOTPResponse{
		SharedSecret: details.SharedSecret,
		SetupURI:     details.GetSetupURI(h.appName, "").String(),
	})
}

func (h *AccountHandler) handleVerifyTOTP(w http.ResponseWriter, r *http.Request, p middleware.Principal) {
	var req verifyTOTPRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := h.svc.VerifyTOTPSetup(r.Context(), service.VerifyTOTPSetupInput{
		AccessToken: p.AccessToken,
		Code:        req.Code,
		Options:     service.VerifyTOTPSetupOptions{FriendlyDeviceName: req.FriendlyDeviceName},
	}); err != nil {
		writeAuthError(w, r, err)
		return
	}

	WriteJSON(w, http.StatusOK, MessageResponse{Message: "totp verified"})
}

func (h *AccountHandler) handleSignOut(w http.ResponseWriter, r *http.Request, p middleware.Principal) {
	if err := h.svc.SignOut(r.Context(), service.SignOutInput{AccessToken: p.AccessToken}); err != nil {
		writeAuthError(w, r, err)
		return
	}

	WriteJSON(w, http.StatusOK, MessageResponse{Message: "signed out"})
}
