package services

import (
	"context"

	"github.com/letsgoparty/letsgoparty_backend/internal/core/domain"
)

// Mailer delivers outgoing email.
type Mailer interface {
	Send(ctx context.Context, msg domain.MailMessage) error
}

// ImageStore keeps uploaded images by file name.
type ImageStore interface {
	Save(ctx context.Context, filename string, upload domain.ImageUpload) error
	// Delete removes a stored image. Deleting a missing file is not an error.
	Delete(ctx context.Context, filename string) error
	// Open returns the stored image. Missing files yield apperrors.ErrNotFound.
	Open(ctx context.Context, filename string) (*domain.StoredObject, error)
}
