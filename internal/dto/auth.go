package dto

// LoginRequest represents the credentials posted to /login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest represents the body of /cadastro.
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required"`
	LastName string `json:"lastName"`
	Password string `json:"password" binding:"required"`
}

// EmailRequest carries a single address, used by the resend and reset-request endpoints.
type EmailRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ResetPasswordRequest sets a new password with a reset token.
type ResetPasswordRequest struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required"`
}

// MessageResponse is the generic {message} body most endpoints answer with.
type MessageResponse struct {
	Message string `json:"message"`
}

// NeedsVerificationResponse is returned by /login for accounts that have not confirmed their email.
type NeedsVerificationResponse struct {
	Message           string `json:"message"`
	NeedsVerification bool   `json:"needsVerification"`
}

// ErrorResponse is the body written for every failed request.
type ErrorResponse struct {
	Message string `json:"message"`
	Kind    string `json:"kind"`
	Error   string `json:"error,omitempty"`
}
