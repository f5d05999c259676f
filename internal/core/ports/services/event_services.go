package services

import (
	"context"

	"github.com/letsgoparty/letsgoparty_backend/internal/core/domain"
	"github.com/letsgoparty/letsgoparty_backend/internal/dto"
)

// EventReaderSvc defines the public and owner listings of events.
type EventReaderSvc interface {
	// ListRecent returns the five most recently created events.
	ListRecent(ctx context.Context) ([]domain.Event, error)

	// ListUpcoming returns up to twenty future events, newest first.
	ListUpcoming(ctx context.Context) ([]domain.Event, error)

	// ListSlider returns the next five future events by date.
	ListSlider(ctx context.Context) ([]domain.Event, error)

	// ListPaginated pages future events inside an optional startDate/endDate range.
	ListPaginated(ctx context.Context, q dto.EventListQuery) (*domain.EventPage, error)

	// FilterByCategory pages events of one category, latest date first.
	FilterByCategory(ctx context.Context, q dto.EventListQuery) (*domain.EventPage, error)

	// Search pages events matching free text and an optional category.
	Search(ctx context.Context, q dto.EventListQuery) (*domain.EventPage, error)

	// SearchByDate pages events matching free text inside a named date bucket.
	SearchByDate(ctx context.Context, q dto.EventListQuery) (*domain.EventPage, error)

	// GetEvent returns any event by id.
	GetEvent(ctx context.Context, eventID string) (*domain.Event, error)

	// ListMine pages the events created by userID.
	ListMine(ctx context.Context, userID, rawPage string) (*domain.EventPage, error)

	// GetOwnedEvent returns the event only if userID created it.
	GetOwnedEvent(ctx context.Context, userID, eventID string) (*domain.Event, error)
}

// EventWriterSvc defines owner mutations on events.
type EventWriterSvc interface {
	CreateEvent(ctx context.Context, userID string, req dto.CreateEventRequest, upload *domain.ImageUpload) (*domain.Event, error)
	UpdateEvent(ctx context.Context, userID, eventID string, req dto.UpdateEventRequest, upload *domain.ImageUpload) (*domain.Event, error)
	DeleteEvent(ctx context.Context, userID, eventID string) error
}

// EventSvcFacade combines all event-related service interfaces
type EventSvcFacade interface {
	EventReaderSvc
	EventWriterSvc
}

// LikeSvcFacade defines favorites.
type LikeSvcFacade interface {
	// ToggleLike likes the event, or unlikes it if already liked. It reports the resulting state.
	ToggleLike(ctx context.Context, userID, eventID string) (bool, error)
	RemoveLike(ctx context.Context, userID, eventID string) error
	IsLiked(ctx context.Context, userID, eventID string) (bool, error)
	ListFavorites(ctx context.Context, userID, rawPage string) (*domain.EventPage, error)
}

// ContactSvc relays the public contact form.
type ContactSvc interface {
	Send(ctx context.Context, req dto.ContactRequest) error
}
