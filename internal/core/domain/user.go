package domain

import "time"

// User represents an account holder.
// PasswordHash is empty for accounts created through Google sign-in.
type User struct {
	UserID       string
	Email        string
	Name         string
	LastName     *string
	PasswordHash string
	Verified     bool
	GoogleID     *string
	Image        *Image

	VerificationToken        *string
	VerificationTokenExpires *time.Time
	ResetPasswordToken       *string
	ResetPasswordExpires     *time.Time

	AuditFields
}

// HasPassword reports whether the account can log in with a password.
func (u *User) HasPassword() bool {
	return u.PasswordHash != ""
}

// GoogleUserInfo is the subset of the Google userinfo payload the app relies on.
type GoogleUserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	GivenName     string `json:"given_name"`
	FamilyName    string `json:"family_name"`
	Picture       string `json:"picture"`
}
