package repositories

import (
	"context"

	"github.com/letsgoparty/letsgoparty_backend/internal/core/domain"
	"github.com/letsgoparty/letsgoparty_backend/internal/core/eventquery"
)

// EventReader defines read operations for events
type EventReader interface {
	// FindEventByID retrieves an event. Missing events yield apperrors.ErrNotFound.
	FindEventByID(ctx context.Context, eventID string) (*domain.Event, error)

	// FindEvents returns the events matching criteria, in its sort order.
	FindEvents(ctx context.Context, criteria eventquery.Criteria, limit, offset int) ([]domain.Event, error)

	// CountEvents returns how many events match criteria.
	CountEvents(ctx context.Context, criteria eventquery.Criteria) (int, error)
}

// EventWriter defines write operations for events
type EventWriter interface {
	SaveEvent(ctx context.Context, event domain.Event) error
	UpdateEvent(ctx context.Context, event domain.Event) error
	DeleteEvent(ctx context.Context, eventID string) error
}

// EventRepositoryFacade combines all event-related repository interfaces
type EventRepositoryFacade interface {
	EventReader
	EventWriter
}
