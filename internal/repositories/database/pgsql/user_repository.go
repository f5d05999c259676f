package pgsql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/letsgoparty/letsgoparty_backend/internal/apperrors"
	"github.com/letsgoparty/letsgoparty_backend/internal/core/domain"
	portsrepo "github.com/letsgoparty/letsgoparty_backend/internal/core/ports/repositories"
	"github.com/letsgoparty/letsgoparty_backend/internal/models"
	"github.com/letsgoparty/letsgoparty_backend/internal/utils/mapping"
)

type PgxUserRepository struct {
	BaseRepository
}

func newPgxUserRepository(db DB) portsrepo.UserRepositoryFacade {
	return &PgxUserRepository{BaseRepository: BaseRepository{Pool: db}}
}

// Ensure PgxUserRepository implements portsrepo.UserRepositoryFacade
var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

var userColumns = []string{
	"id", "email", "name", "last_name", "password", "verified", "google_id",
	"image_path", "image_filename",
	"verification_token", "verification_token_expires",
	"reset_password_token", "reset_password_expires",
	"created_at", "updated_at",
}

var fullUserSelectQuery = "SELECT " + strings.Join(userColumns, ", ") + " FROM users "

// getUser runs the base select with the given filter and expects exactly one row.
func (r *PgxUserRepository) getUser(ctx context.Context, filterQuery string, args ...any) (*domain.User, error) {
	var m models.User
	if err := pgxscan.Get(ctx, r.Pool, &m, fullUserSelectQuery+filterQuery, args...); err != nil {
		if pgxscan.NotFound(err) || isMalformedID(err) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to query user: %w", err)
	}
	u := mapping.ToDomainUser(m)
	return &u, nil
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return r.getUser(ctx, "WHERE id = $1", userID)
}

func (r *PgxUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getUser(ctx, "WHERE email = $1", email)
}

func (r *PgxUserRepository) FindUserByVerificationToken(ctx context.Context, token string) (*domain.User, error) {
	return r.getUser(ctx, "WHERE verification_token = $1", token)
}

func (r *PgxUserRepository) FindUserByResetToken(ctx context.Context, token string, now time.Time) (*domain.User, error) {
	return r.getUser(ctx, "WHERE reset_password_token = $1 AND reset_password_expires > $2", token, now)
}

func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	m := mapping.ToModelUser(user)
	query := `
		INSERT INTO users (
			id, email, name, last_name, password, verified, google_id,
			image_path, image_filename,
			verification_token, verification_token_expires,
			reset_password_token, reset_password_expires,
			created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.UserID, m.Email, m.Name, m.LastName, m.PasswordHash, m.Verified, m.GoogleID,
		m.ImagePath, m.ImageFilename,
		m.VerificationToken, m.VerificationTokenExpires,
		m.ResetPasswordToken, m.ResetPasswordExpires,
		m.CreatedAt, m.LastUpdatedAt,
	)
	if err != nil {
		return translateWriteError(err, "save user")
	}
	return nil
}

func (r *PgxUserRepository) UpdateProfile(ctx context.Context, user domain.User) error {
	m := mapping.ToModelUser(user)
	query := `
		UPDATE users
		SET name = $2, last_name = $3, email = $4, password = $5,
			image_path = $6, image_filename = $7, updated_at = $8
		WHERE id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.UserID, m.Name, m.LastName, m.Email, m.PasswordHash,
		m.ImagePath, m.ImageFilename, m.LastUpdatedAt,
	)
	if err != nil {
		return translateWriteError(err, "update user profile")
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("user %s not found: %w", user.UserID, apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxUserRepository) LinkGoogleAccount(ctx context.Context, userID, googleID string, image *domain.Image, updatedAt time.Time) error {
	var imagePath, imageFilename *string
	if image != nil {
		imagePath, imageFilename = &image.Path, &image.Filename
	}
	query := `
		UPDATE users
		SET google_id = $2,
			image_path = COALESCE($3, image_path),
			image_filename = COALESCE($4, image_filename),
			updated_at = $5
		WHERE id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, userID, googleID, imagePath, imageFilename, updatedAt)
	if err != nil {
		return translateWriteError(err, "link google account")
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("user %s not found: %w", userID, apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxUserRepository) SetVerificationToken(ctx context.Context, userID, token string, expiresAt time.Time) error {
	query := `
		UPDATE users
		SET verification_token = $2, verification_token_expires = $3, updated_at = NOW()
		WHERE id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, userID, token, expiresAt)
	if err != nil {
		return translateWriteError(err, "store verification token")
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("user %s not found: %w", userID, apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxUserRepository) ConsumeVerificationToken(ctx context.Context, userID, token string, now time.Time) error {
	query := `
		UPDATE users
		SET verified = TRUE, verification_token = NULL, verification_token_expires = NULL, updated_at = $3
		WHERE id = $1 AND verification_token = $2;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, userID, token, now)
	if err != nil {
		return fmt.Errorf("failed to consume verification token: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrInvalidToken
	}
	return nil
}

func (r *PgxUserRepository) SetResetToken(ctx context.Context, userID, token string, expiresAt time.Time) error {
	query := `
		UPDATE users
		SET reset_password_token = $2, reset_password_expires = $3, updated_at = NOW()
		WHERE id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, userID, token, expiresAt)
	if err != nil {
		return translateWriteError(err, "store reset token")
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("user %s not found: %w", userID, apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxUserRepository) ConsumeResetToken(ctx context.Context, userID, token, passwordHash string, now time.Time) error {
	query := `
		UPDATE users
		SET password = $3, reset_password_token = NULL, reset_password_expires = NULL, updated_at = $4
		WHERE id = $1 AND reset_password_token = $2 AND reset_password_expires > $4;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, userID, token, passwordHash, now)
	if err != nil {
		return fmt.Errorf("failed to consume reset token: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrInvalidToken
	}
	return nil
}
