package repositories

import (
	"context"
	"time"

	"github.com/letsgoparty/letsgoparty_backend/internal/core/domain"
)

// UserReader defines read operations for user data
type UserReader interface {
	// FindUserByID retrieves a specific user by their ID.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByEmail retrieves a user by their unique email.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// FindUserByVerificationToken retrieves the user holding an email verification token.
	FindUserByVerificationToken(ctx context.Context, token string) (*domain.User, error)

	// FindUserByResetToken retrieves the user holding a password reset token that is still valid at now.
	FindUserByResetToken(ctx context.Context, token string, now time.Time) (*domain.User, error)
}

// UserWriter defines write operations for user data
type UserWriter interface {
	// SaveUser persists a new user. A taken email yields apperrors.ErrDuplicate.
	SaveUser(ctx context.Context, user domain.User) error

	// UpdateProfile overwrites name, last name, email, password hash and image.
	UpdateProfile(ctx context.Context, user domain.User) error

	// LinkGoogleAccount stores the Google subject and, when image is non-nil, the profile photo.
	LinkGoogleAccount(ctx context.Context, userID, googleID string, image *domain.Image, updatedAt time.Time) error
}

// UserTokenManager defines the single-use token lifecycle
type UserTokenManager interface {
	// SetVerificationToken replaces any outstanding verification token.
	SetVerificationToken(ctx context.Context, userID, token string, expiresAt time.Time) error

	// ConsumeVerificationToken marks the user verified and clears the token, only if
	// the token is still the one stored. Returns apperrors.ErrInvalidToken otherwise.
	ConsumeVerificationToken(ctx context.Context, userID, token string, now time.Time) error

	// SetResetToken replaces any outstanding password reset token.
	SetResetToken(ctx context.Context, userID, token string, expiresAt time.Time) error

	// ConsumeResetToken stores the new password hash and clears the reset token, only if
	// the token is still stored and unexpired. Returns apperrors.ErrInvalidToken otherwise.
	ConsumeResetToken(ctx context.Context, userID, token, passwordHash string, now time.Time) error
}

// UserRepositoryFacade combines all user-related repository interfaces
// This is a facade for clients that need access to all operations
type UserRepositoryFacade interface {
	UserReader
	UserWriter
	UserTokenManager
}
