package domain

import "time"

// Event is a party or happening published by a user.
type Event struct {
	EventID     string
	UserID      string
	Title       string
	Description string
	Date        time.Time
	Hour        string
	Address     string
	Number      string
	District    string
	City        string
	State       string
	Local       string
	Category    string
	Image       *Image

	AuditFields
}

// OwnedBy reports whether userID created the event.
func (e *Event) OwnedBy(userID string) bool {
	return e.UserID == userID
}

// EventPage is one page of a listing plus the number of pages available.
type EventPage struct {
	Events     []Event
	TotalPages int
}
