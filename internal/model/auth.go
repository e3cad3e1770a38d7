package model

// RegisterRequest carries the profile fields submitted alongside an optional
// avatar upload. The avatar arrives as a multipart file, not a JSON field.
type RegisterRequest struct {
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required"`
	Role      string `json:"role"`
}

// LoginRequest carries the credential pair for token issuance.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// CheckPasswordRequest verifies a credential pair without issuing a token.
type CheckPasswordRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ForgetPasswordRequest starts the reset flow for the given email.
type ForgetPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ResetPasswordRequest consumes a reset token and sets a new password.
type ResetPasswordRequest struct {
	ResetToken  string `json:"resetToken" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required"`
}

// TokenResponse carries the signed bearer token returned by login.
type TokenResponse struct {
	Token string `json:"token"`
}

// CheckPasswordResponse mirrors the standalone verification endpoint's shape.
type CheckPasswordResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// MessageResponse is a generic informational response body.
type MessageResponse struct {
	Message string `json:"message"`
}

// SuccessResponse is a generic confirmation response body.
type SuccessResponse struct {
	Success string `json:"success"`
}
