package mapping

import (
	"github.com/letsgoparty/letsgoparty_backend/internal/core/domain"
	"github.com/letsgoparty/letsgoparty_backend/internal/models"
)

// ToModelEvent converts a domain Event to a model Event
func ToModelEvent(d domain.Event) models.Event {
	imagePath, imageFilename := toModelImage(d.Image)
	return models.Event{
		EventID:       d.EventID,
		UserID:        d.UserID,
		Title:         d.Title,
		Description:   d.Description,
		Date:          d.Date,
		Hour:          d.Hour,
		Address:       d.Address,
		Number:        d.Number,
		District:      d.District,
		City:          d.City,
		State:         d.State,
		Local:         d.Local,
		Category:      d.Category,
		ImagePath:     imagePath,
		ImageFilename: imageFilename,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainEvent converts a model Event to a domain Event
func ToDomainEvent(m models.Event) domain.Event {
	return domain.Event{
		EventID:     m.EventID,
		UserID:      m.UserID,
		Title:       m.Title,
		Description: m.Description,
		Date:        m.Date,
		Hour:        m.Hour,
		Address:     m.Address,
		Number:      m.Number,
		District:    m.District,
		City:        m.City,
		State:       m.State,
		Local:       m.Local,
		Category:    m.Category,
		Image:       toDomainImage(m.ImagePath, m.ImageFilename),
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainEvents converts a slice of model Events
func ToDomainEvents(ms []models.Event) []domain.Event {
	ds := make([]domain.Event, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainEvent(m)
	}
	return ds
}
