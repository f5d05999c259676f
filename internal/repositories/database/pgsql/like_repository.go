package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/letsgoparty/letsgoparty_backend/internal/apperrors"
	"github.com/letsgoparty/letsgoparty_backend/internal/core/domain"
	portsrepo "github.com/letsgoparty/letsgoparty_backend/internal/core/ports/repositories"
	"github.com/letsgoparty/letsgoparty_backend/internal/models"
	"github.com/letsgoparty/letsgoparty_backend/internal/utils/mapping"
)

type PgxLikeRepository struct {
	BaseRepository
}

func newPgxLikeRepository(db DB) portsrepo.LikeRepositoryFacade {
	return &PgxLikeRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.LikeRepositoryFacade = (*PgxLikeRepository)(nil)

const (
	deleteLikeQuery = `DELETE FROM likes WHERE user_id = $1 AND event_id = $2;`
	insertLikeQuery = `
		INSERT INTO likes (id, user_id, event_id, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, event_id) DO NOTHING;
	`
)

// ToggleLike deletes the like if present, otherwise inserts it, inside one
// transaction. The unique (user_id, event_id) constraint settles concurrent toggles.
func (r *PgxLikeRepository) ToggleLike(ctx context.Context, userID, eventID string, now time.Time) (bool, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return false, err
	}

	cmdTag, err := tx.Exec(ctx, deleteLikeQuery, userID, eventID)
	if err != nil {
		_ = r.Rollback(ctx, tx)
		return false, translateWriteError(err, "remove like")
	}
	liked := cmdTag.RowsAffected() == 0

	if liked {
		if _, err := tx.Exec(ctx, insertLikeQuery, uuid.NewString(), userID, eventID, now); err != nil {
			_ = r.Rollback(ctx, tx)
			return false, translateWriteError(err, "insert like")
		}
	}

	if err := r.Commit(ctx, tx); err != nil {
		return false, err
	}
	return liked, nil
}

func (r *PgxLikeRepository) DeleteLike(ctx context.Context, userID, eventID string) error {
	cmdTag, err := r.Pool.Exec(ctx, deleteLikeQuery, userID, eventID)
	if err != nil {
		return translateWriteError(err, "delete like")
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxLikeRepository) LikeExists(ctx context.Context, userID, eventID string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM likes WHERE user_id = $1 AND event_id = $2);`
	if err := r.Pool.QueryRow(ctx, query, userID, eventID).Scan(&exists); err != nil {
		if isMalformedID(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check like: %w", err)
	}
	return exists, nil
}

func (r *PgxLikeRepository) FindLikedEvents(ctx context.Context, userID string, limit, offset int) ([]domain.Event, error) {
	query := "SELECT " + prefixColumns("e", eventColumns) + `
		FROM likes l
		JOIN events e ON e.id = l.event_id
		WHERE l.user_id = $1
		ORDER BY l.created_at DESC, l.id
		LIMIT $2 OFFSET $3;`

	var ms []models.Event
	if err := pgxscan.Select(ctx, r.Pool, &ms, query, userID, limit, offset); err != nil {
		return nil, fmt.Errorf("failed to query liked events: %w", err)
	}
	return mapping.ToDomainEvents(ms), nil
}

func (r *PgxLikeRepository) CountLikes(ctx context.Context, userID string) (int, error) {
	var total int
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM likes WHERE user_id = $1;`, userID).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count likes: %w", err)
	}
	return total, nil
}
