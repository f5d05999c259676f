package models

import "time"

// User is a row of the users table.
type User struct {
	UserID        string  `db:"id"`
	Email         string  `db:"email"`
	Name          string  `db:"name"`
	LastName      *string `db:"last_name"`
	PasswordHash  string  `db:"password"`
	Verified      bool    `db:"verified"`
	GoogleID      *string `db:"google_id"`
	ImagePath     *string `db:"image_path"`
	ImageFilename *string `db:"image_filename"`

	VerificationToken        *string    `db:"verification_token"`
	VerificationTokenExpires *time.Time `db:"verification_token_expires"`
	ResetPasswordToken       *string    `db:"reset_password_token"`
	ResetPasswordExpires     *time.Time `db:"reset_password_expires"`

	AuditFields
}
