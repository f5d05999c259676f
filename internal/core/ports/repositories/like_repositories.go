package repositories

import (
	"context"
	"time"

	"github.com/letsgoparty/letsgoparty_backend/internal/core/domain"
)

// LikeRepositoryFacade defines persistence for event likes.
type LikeRepositoryFacade interface {
	// ToggleLike atomically removes the user's like on the event, or creates it
	// if none existed. It reports whether the event ends up liked. An unknown
	// event yields apperrors.ErrNotFound.
	ToggleLike(ctx context.Context, userID, eventID string, now time.Time) (bool, error)

	// DeleteLike removes a like. A missing like yields apperrors.ErrNotFound.
	DeleteLike(ctx context.Context, userID, eventID string) error

	// LikeExists reports whether the user liked the event.
	LikeExists(ctx context.Context, userID, eventID string) (bool, error)

	// FindLikedEvents returns the user's liked events, most recently liked first.
	FindLikedEvents(ctx context.Context, userID string, limit, offset int) ([]domain.Event, error)

	// CountLikes returns how many events the user liked.
	CountLikes(ctx context.Context, userID string) (int, error)
}
