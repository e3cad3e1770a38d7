package handler

import (
	"net/http"

	"gocart/internal/model"
	"gocart/internal/service"

	"github.com/rs/zerolog"
)

// AuthHandler handles authentication and password-lifecycle requests.
type AuthHandler struct {
	service service.AuthService
	logger  zerolog.Logger
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(service service.AuthService, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		logger:  logger.With().Str("handler", "auth").Logger(),
	}
}

// Register handles POST /auth/register. The body is multipart: profile
// fields plus an optional avatar file.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart body", h.logger)
		return
	}

	req := &model.RegisterRequest{
		FirstName: r.FormValue("firstname"),
		LastName:  r.FormValue("lastname"),
		Email:     r.FormValue("email"),
		Password:  r.FormValue("password"),
		Role:      r.FormValue("role"),
	}

	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid registration fields", h.logger)
		return
	}

	avatar, file, err := formFile(r, "avatar")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid avatar upload", h.logger)
		return
	}
	if file != nil {
		defer file.Close()
	}

	user, err := h.service.Register(r.Context(), req, avatar)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	signed, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, model.TokenResponse{Token: signed})
}

// CheckPassword handles POST /auth/checkPassword. It verifies credentials
// without issuing a token, and unlike login distinguishes an unknown user
// from a wrong password.
func (h *AuthHandler) CheckPassword(w http.ResponseWriter, r *http.Request) {
	var req model.CheckPasswordRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	if err := h.service.CheckPassword(r.Context(), req.Email, req.Password); err != nil {
		switch err {
		case model.ErrUserNotFound:
			writeJSON(w, http.StatusNotFound, model.CheckPasswordResponse{Success: false, Message: err.Error()})
		case model.ErrWrongPassword:
			writeJSON(w, http.StatusUnauthorized, model.CheckPasswordResponse{Success: false, Message: err.Error()})
		default:
			writeError(w, http.StatusInternalServerError, "failed to check password", h.logger)
		}
		return
	}

	writeJSON(w, http.StatusOK, model.CheckPasswordResponse{Success: true, Message: "Password is correct"})
}

// ForgetPassword handles POST /auth/forgetPass.
func (h *AuthHandler) ForgetPassword(w http.ResponseWriter, r *http.Request) {
	var req model.ForgetPasswordRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	if err := h.service.RequestPasswordReset(r.Context(), req.Email); err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, model.MessageResponse{Message: "Password reset email sent"})
}

// ResetPassword handles POST /auth/resetPass.
func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req model.ResetPasswordRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	if err := h.service.ConfirmPasswordReset(r.Context(), req.ResetToken, req.NewPassword); err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, model.MessageResponse{Message: "Password reset successful"})
}
