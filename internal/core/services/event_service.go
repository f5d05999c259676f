package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/letsgoparty/letsgoparty_backend/internal/apperrors"
	"github.com/letsgoparty/letsgoparty_backend/internal/core/domain"
	"github.com/letsgoparty/letsgoparty_backend/internal/core/eventquery"
	portsrepo "github.com/letsgoparty/letsgoparty_backend/internal/core/ports/repositories"
	portssvc "github.com/letsgoparty/letsgoparty_backend/internal/core/ports/services"
	"github.com/letsgoparty/letsgoparty_backend/internal/dto"
	"github.com/letsgoparty/letsgoparty_backend/internal/utils/pagination"
)

const (
	recentEventsLimit   = 5
	upcomingEventsLimit = 20
	sliderEventsLimit   = 5

	msgEventNotFound  = "Evento não encontrado"
	msgEventForbidden = "Sem permissão para editar este evento"
	msgImageMissing   = "Imagem não enviada"
)

// eventDateLayouts are tried in order when parsing an event's date field.
var eventDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	eventquery.CalendarDateLayout,
}

type eventService struct {
	BaseService
	eventRepo portsrepo.EventRepositoryFacade
	images    portssvc.ImageStore
}

// NewEventService creates the event listing and mutation service.
func NewEventService(eventRepo portsrepo.EventRepositoryFacade, images portssvc.ImageStore, clock func() time.Time) portssvc.EventSvcFacade {
	return &eventService{BaseService: BaseService{Clock: clock}, eventRepo: eventRepo, images: images}
}

func (s *eventService) ListRecent(ctx context.Context) ([]domain.Event, error) {
	return s.find(ctx, eventquery.Criteria{Sort: eventquery.SortCreatedDesc}, recentEventsLimit)
}

func (s *eventService) ListUpcoming(ctx context.Context) ([]domain.Event, error) {
	return s.find(ctx, eventquery.Criteria{
		Window: eventquery.Since(s.Now()),
		Sort:   eventquery.SortCreatedDesc,
	}, upcomingEventsLimit)
}

func (s *eventService) ListSlider(ctx context.Context) ([]domain.Event, error) {
	return s.find(ctx, eventquery.Criteria{
		Window: eventquery.Since(s.Now()),
		Sort:   eventquery.SortDateAsc,
	}, sliderEventsLimit)
}

func (s *eventService) ListPaginated(ctx context.Context, q dto.EventListQuery) (*domain.EventPage, error) {
	window, err := eventquery.RangeWindow(q.StartDate, q.EndDate, s.Now())
	if err != nil {
		return nil, apperrors.NewValidationError("Data inválida. Use o formato AAAA-MM-DD", err)
	}
	return s.page(ctx, eventquery.Criteria{Window: window, Sort: eventquery.SortDateAsc}, pagination.NewPage(q.Page, q.Limit))
}

func (s *eventService) FilterByCategory(ctx context.Context, q dto.EventListQuery) (*domain.EventPage, error) {
	return s.page(ctx, eventquery.Criteria{
		Category: q.Category,
		Sort:     eventquery.SortDateDesc,
	}, pagination.FixedLimit(q.Page, pagination.DefaultLimit))
}

func (s *eventService) Search(ctx context.Context, q dto.EventListQuery) (*domain.EventPage, error) {
	return s.page(ctx, eventquery.Criteria{
		Category: q.Category,
		Search:   q.Search,
		Sort:     eventquery.SortDateDesc,
	}, pagination.FixedLimit(q.Page, pagination.DefaultLimit))
}

func (s *eventService) SearchByDate(ctx context.Context, q dto.EventListQuery) (*domain.EventPage, error) {
	return s.page(ctx, eventquery.Criteria{
		Search: q.Search,
		Window: eventquery.BucketWindow(q.DateFilter, s.Now()),
		Sort:   eventquery.SortDateAsc,
	}, pagination.FixedLimit(q.Page, pagination.DefaultLimit))
}

func (s *eventService) GetEvent(ctx context.Context, eventID string) (*domain.Event, error) {
	event, err := s.eventRepo.FindEventByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError(msgEventNotFound)
		}
		s.LogError(ctx, err, "Failed to find event", slog.String("event_id", eventID))
		return nil, err
	}
	return event, nil
}

func (s *eventService) ListMine(ctx context.Context, userID, rawPage string) (*domain.EventPage, error) {
	return s.page(ctx, eventquery.Criteria{
		OwnerID: userID,
		Sort:    eventquery.SortCreatedDesc,
	}, pagination.FixedLimit(rawPage, pagination.DefaultLimit))
}

func (s *eventService) GetOwnedEvent(ctx context.Context, userID, eventID string) (*domain.Event, error) {
	event, err := s.GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if !event.OwnedBy(userID) {
		return nil, apperrors.NewForbiddenError(msgEventForbidden)
	}
	return event, nil
}

func (s *eventService) CreateEvent(ctx context.Context, userID string, req dto.CreateEventRequest, upload *domain.ImageUpload) (*domain.Event, error) {
	if upload == nil {
		return nil, apperrors.NewValidationError(msgImageMissing, nil)
	}
	date, err := parseEventDate(req.Date)
	if err != nil {
		return nil, err
	}

	img, err := s.storeImage(ctx, s.images, *upload)
	if err != nil {
		return nil, err
	}

	now := s.Now()
	event := domain.Event{
		EventID:     uuid.NewString(),
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Date:        date,
		Hour:        req.Hour,
		Address:     req.Address,
		Number:      req.Number,
		District:    req.District,
		City:        req.City,
		State:       req.State,
		Local:       req.Local,
		Category:    req.Category,
		Image:       img,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.eventRepo.SaveEvent(ctx, event); err != nil {
		s.discardImage(ctx, s.images, img)
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError(msgUserNotFound)
		}
		s.LogError(ctx, err, "Failed to save event", slog.String("user_id", userID))
		return nil, err
	}

	s.LogInfo(ctx, "Event created", slog.String("event_id", event.EventID), slog.String("user_id", userID))
	return &event, nil
}

func (s *eventService) UpdateEvent(ctx context.Context, userID, eventID string, req dto.UpdateEventRequest, upload *domain.ImageUpload) (*domain.Event, error) {
	current, err := s.GetOwnedEvent(ctx, userID, eventID)
	if err != nil {
		return nil, err
	}

	updated := *current
	if err := applyEventChanges(&updated, req); err != nil {
		return nil, err
	}
	if upload != nil {
		img, err := s.storeImage(ctx, s.images, *upload)
		if err != nil {
			return nil, err
		}
		updated.Image = img
	}
	updated.LastUpdatedAt = s.Now()

	if err := s.eventRepo.UpdateEvent(ctx, updated); err != nil {
		if upload != nil {
			s.discardImage(ctx, s.images, updated.Image)
		}
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError(msgEventNotFound)
		}
		s.LogError(ctx, err, "Failed to update event", slog.String("event_id", eventID))
		return nil, err
	}

	if upload != nil {
		s.discardImage(ctx, s.images, current.Image)
	}
	s.LogInfo(ctx, "Event updated", slog.String("event_id", eventID))
	return &updated, nil
}

func (s *eventService) DeleteEvent(ctx context.Context, userID, eventID string) error {
	event, err := s.GetOwnedEvent(ctx, userID, eventID)
	if err != nil {
		return err
	}
	if err := s.eventRepo.DeleteEvent(ctx, eventID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewNotFoundError(msgEventNotFound)
		}
		s.LogError(ctx, err, "Failed to delete event", slog.String("event_id", eventID))
		return err
	}
	s.discardImage(ctx, s.images, event.Image)
	s.LogInfo(ctx, "Event deleted", slog.String("event_id", eventID))
	return nil
}

func (s *eventService) find(ctx context.Context, criteria eventquery.Criteria, limit int) ([]domain.Event, error) {
	events, err := s.eventRepo.FindEvents(ctx, criteria, limit, 0)
	if err != nil {
		s.LogError(ctx, err, "Failed to list events")
		return nil, err
	}
	return events, nil
}

func (s *eventService) page(ctx context.Context, criteria eventquery.Criteria, page pagination.Page) (*domain.EventPage, error) {
	total, err := s.eventRepo.CountEvents(ctx, criteria)
	if err != nil {
		s.LogError(ctx, err, "Failed to count events")
		return nil, err
	}
	events, err := s.eventRepo.FindEvents(ctx, criteria, page.Limit, page.Offset())
	if err != nil {
		s.LogError(ctx, err, "Failed to list events")
		return nil, err
	}
	return &domain.EventPage{Events: events, TotalPages: pagination.TotalPages(total, page.Limit)}, nil
}

// applyEventChanges copies the provided fields of req onto e.
func applyEventChanges(e *domain.Event, req dto.UpdateEventRequest) error {
	if req.Date != nil {
		date, err := parseEventDate(*req.Date)
		if err != nil {
			return err
		}
		e.Date = date
	}
	setIfPresent(&e.Title, req.Title)
	setIfPresent(&e.Description, req.Description)
	setIfPresent(&e.Hour, req.Hour)
	setIfPresent(&e.Address, req.Address)
	setIfPresent(&e.Number, req.Number)
	setIfPresent(&e.District, req.District)
	setIfPresent(&e.City, req.City)
	setIfPresent(&e.State, req.State)
	setIfPresent(&e.Local, req.Local)
	setIfPresent(&e.Category, req.Category)
	return nil
}

func setIfPresent(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func parseEventDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range eventDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, apperrors.NewValidationError("Data do evento inválida", nil)
}
