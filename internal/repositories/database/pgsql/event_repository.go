package pgsql

import (
	"context"
	"fmt"
	"strings"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/letsgoparty/letsgoparty_backend/internal/apperrors"
	"github.com/letsgoparty/letsgoparty_backend/internal/core/domain"
	"github.com/letsgoparty/letsgoparty_backend/internal/core/eventquery"
	portsrepo "github.com/letsgoparty/letsgoparty_backend/internal/core/ports/repositories"
	"github.com/letsgoparty/letsgoparty_backend/internal/models"
	"github.com/letsgoparty/letsgoparty_backend/internal/utils/mapping"
)

type PgxEventRepository struct {
	BaseRepository
}

func newPgxEventRepository(db DB) portsrepo.EventRepositoryFacade {
	return &PgxEventRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.EventRepositoryFacade = (*PgxEventRepository)(nil)

var eventColumns = []string{
	"id", "user_id", "title", "description", "date", "hour",
	"address", "number", "district", "city", "state", "local", "category",
	"image_path", "image_filename", "created_at", "updated_at",
}

var fullEventSelectQuery = "SELECT " + strings.Join(eventColumns, ", ") + " FROM events"

func (r *PgxEventRepository) FindEventByID(ctx context.Context, eventID string) (*domain.Event, error) {
	var m models.Event
	if err := pgxscan.Get(ctx, r.Pool, &m, fullEventSelectQuery+" WHERE id = $1", eventID); err != nil {
		if pgxscan.NotFound(err) || isMalformedID(err) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to query event %s: %w", eventID, err)
	}
	e := mapping.ToDomainEvent(m)
	return &e, nil
}

func (r *PgxEventRepository) FindEvents(ctx context.Context, criteria eventquery.Criteria, limit, offset int) ([]domain.Event, error) {
	where, args := criteria.Where()
	query := fullEventSelectQuery + where + criteria.OrderBy() +
		fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	var ms []models.Event
	if err := pgxscan.Select(ctx, r.Pool, &ms, query, args...); err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	return mapping.ToDomainEvents(ms), nil
}

func (r *PgxEventRepository) CountEvents(ctx context.Context, criteria eventquery.Criteria) (int, error) {
	where, args := criteria.Where()
	var total int
	if err := r.Pool.QueryRow(ctx, "SELECT COUNT(*) FROM events"+where, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count events: %w", err)
	}
	return total, nil
}

func (r *PgxEventRepository) SaveEvent(ctx context.Context, event domain.Event) error {
	m := mapping.ToModelEvent(event)
	query := `
		INSERT INTO events (
			id, user_id, title, description, date, hour,
			address, number, district, city, state, local, category,
			image_path, image_filename, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.EventID, m.UserID, m.Title, m.Description, m.Date, m.Hour,
		m.Address, m.Number, m.District, m.City, m.State, m.Local, m.Category,
		m.ImagePath, m.ImageFilename, m.CreatedAt, m.LastUpdatedAt,
	)
	if err != nil {
		return translateWriteError(err, "save event")
	}
	return nil
}

func (r *PgxEventRepository) UpdateEvent(ctx context.Context, event domain.Event) error {
	m := mapping.ToModelEvent(event)
	query := `
		UPDATE events
		SET title = $2, description = $3, date = $4, hour = $5,
			address = $6, number = $7, district = $8, city = $9, state = $10,
			local = $11, category = $12, image_path = $13, image_filename = $14,
			updated_at = $15
		WHERE id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.EventID, m.Title, m.Description, m.Date, m.Hour,
		m.Address, m.Number, m.District, m.City, m.State,
		m.Local, m.Category, m.ImagePath, m.ImageFilename,
		m.LastUpdatedAt,
	)
	if err != nil {
		return translateWriteError(err, "update event")
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("event %s not found: %w", event.EventID, apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxEventRepository) DeleteEvent(ctx context.Context, eventID string) error {
	cmdTag, err := r.Pool.Exec(ctx, "DELETE FROM events WHERE id = $1;", eventID)
	if err != nil {
		return translateWriteError(err, "delete event")
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("event %s not found: %w", eventID, apperrors.ErrNotFound)
	}
	return nil
}
