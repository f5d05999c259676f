package dto

import (
	"time"

	"github.com/letsgoparty/letsgoparty_backend/internal/core/domain"
)

// CreateEventRequest is the multipart form posted to /criar-evento. The image
// travels as the "image" file part.
type CreateEventRequest struct {
	Title       string `form:"title" binding:"required"`
	Description string `form:"description"`
	Date        string `form:"date" binding:"required"`
	Hour        string `form:"hour"`
	Address     string `form:"address"`
	Number      string `form:"number"`
	District    string `form:"district"`
	City        string `form:"city"`
	State       string `form:"state"`
	Local       string `form:"local"`
	Category    string `form:"category" binding:"required"`
}

// UpdateEventRequest holds the fields of PUT /eventos/:id. Omitted fields keep their value.
type UpdateEventRequest struct {
	Title       *string `form:"title"`
	Description *string `form:"description"`
	Date        *string `form:"date"`
	Hour        *string `form:"hour"`
	Address     *string `form:"address"`
	Number      *string `form:"number"`
	District    *string `form:"district"`
	City        *string `form:"city"`
	State       *string `form:"state"`
	Local       *string `form:"local"`
	Category    *string `form:"category"`
}

// EventListQuery collects the query parameters accepted by the listing endpoints.
// Page and Limit stay strings so that garbage falls back to the defaults instead of failing.
type EventListQuery struct {
	Page       string `form:"page"`
	Limit      string `form:"limit"`
	Category   string `form:"category"`
	Search     string `form:"search"`
	DateFilter string `form:"dateFilter"`
	StartDate  string `form:"startDate" binding:"omitempty,calendardate"`
	EndDate    string `form:"endDate" binding:"omitempty,calendardate"`
}

// ImageResponse is the public shape of an image descriptor.
type ImageResponse struct {
	Path     string `json:"path"`
	Filename string `json:"filename"`
}

// ToImageResponse returns nil for a missing image so it serializes as null.
func ToImageResponse(img *domain.Image) *ImageResponse {
	if img == nil {
		return nil
	}
	return &ImageResponse{Path: img.Path, Filename: img.Filename}
}

// EventResponse mirrors an event row as the frontend expects it.
type EventResponse struct {
	ID          string         `json:"id"`
	UserID      string         `json:"userId"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Date        time.Time      `json:"date"`
	Hour        string         `json:"hour"`
	Address     string         `json:"address"`
	Number      string         `json:"number"`
	District    string         `json:"district"`
	City        string         `json:"city"`
	State       string         `json:"state"`
	Local       string         `json:"local"`
	Category    string         `json:"category"`
	Image       *ImageResponse `json:"image"`
	DateEvent   time.Time      `json:"dateEvent"`
}

func ToEventResponse(e *domain.Event) EventResponse {
	return EventResponse{
		ID:          e.EventID,
		UserID:      e.UserID,
		Title:       e.Title,
		Description: e.Description,
		Date:        e.Date,
		Hour:        e.Hour,
		Address:     e.Address,
		Number:      e.Number,
		District:    e.District,
		City:        e.City,
		State:       e.State,
		Local:       e.Local,
		Category:    e.Category,
		Image:       ToImageResponse(e.Image),
		DateEvent:   e.CreatedAt,
	}
}

func ToEventResponses(events []domain.Event) []EventResponse {
	out := make([]EventResponse, len(events))
	for i := range events {
		out[i] = ToEventResponse(&events[i])
	}
	return out
}

// EventListResponse is returned by the fixed-size listings.
type EventListResponse struct {
	Message string          `json:"message"`
	Events  []EventResponse `json:"events"`
}

// EventPageResponse is returned by every paginated listing.
type EventPageResponse struct {
	Events     []EventResponse `json:"events"`
	TotalPages int             `json:"totalPages"`
}

func ToEventPageResponse(page *domain.EventPage) EventPageResponse {
	return EventPageResponse{Events: ToEventResponses(page.Events), TotalPages: page.TotalPages}
}

// EventDetailResponse wraps a single event for /mostrar-evento/:id.
type EventDetailResponse struct {
	Event EventResponse `json:"event"`
}

// SliderEventResponse is the compact card used by the home page slider.
// Image is an absolute URL.
type SliderEventResponse struct {
	ID               string    `json:"id"`
	TitleEvent       string    `json:"titleEvent"`
	DescriptionEvent string    `json:"descriptionEvent"`
	Image            string    `json:"image"`
	Date             time.Time `json:"date"`
}

// ToSliderResponses expands each image path against apiBaseURL.
func ToSliderResponses(events []domain.Event, apiBaseURL string) []SliderEventResponse {
	out := make([]SliderEventResponse, len(events))
	for i, e := range events {
		image := ""
		if e.Image != nil {
			image = e.Image.Path
			if !e.Image.IsRemote() {
				image = apiBaseURL + e.Image.Path
			}
		}
		out[i] = SliderEventResponse{
			ID:               e.EventID,
			TitleEvent:       e.Title,
			DescriptionEvent: e.Description,
			Image:            image,
			Date:             e.Date,
		}
	}
	return out
}

// LikeStatusResponse answers /verificar-curtida/:id.
type LikeStatusResponse struct {
	Liked bool `json:"liked"`
}
