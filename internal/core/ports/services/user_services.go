package services

import (
	"context"

	"github.com/letsgoparty/letsgoparty_backend/internal/core/domain"
	"github.com/letsgoparty/letsgoparty_backend/internal/dto"
)

// RegistrationSvcFacade covers sign-up and email verification.
type RegistrationSvcFacade interface {
	// Register creates an unverified account and mails its verification link.
	Register(ctx context.Context, req dto.RegisterRequest) error

	// VerifyEmail consumes a verification token.
	VerifyEmail(ctx context.Context, token string) error

	// ResendVerification issues a fresh verification link. It succeeds for
	// unknown emails too and reports whether the account was already verified.
	ResendVerification(ctx context.Context, email string) (alreadyVerified bool, err error)
}

// PasswordResetSvcFacade covers the forgotten-password flow.
type PasswordResetSvcFacade interface {
	// RequestPasswordReset mails a reset link. Unknown emails succeed silently.
	RequestPasswordReset(ctx context.Context, email string) error

	// CheckResetToken reports whether a reset token can still be used.
	CheckResetToken(ctx context.Context, token string) error

	// ResetPassword stores newPassword and consumes the token.
	ResetPassword(ctx context.Context, token, newPassword string) error
}

// UserReaderSvc defines read operations for user data
type UserReaderSvc interface {
	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
}

// UserWriterSvc defines write operations for user data
type UserWriterSvc interface {
	// UpdateProfile applies the profile form and, when upload is non-nil, replaces the picture.
	UpdateProfile(ctx context.Context, userID string, req dto.UpdateProfileRequest, upload *domain.ImageUpload) (*domain.User, error)
}

// UserSvcFacade combines all user-related service interfaces
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
}
