package mapping

import (
	"github.com/letsgoparty/letsgoparty_backend/internal/core/domain"
	"github.com/letsgoparty/letsgoparty_backend/internal/models"
)

// ToModelAuditFields converts a domain AuditFields to a model AuditFields
func ToModelAuditFields(d domain.AuditFields) models.AuditFields {
	return models.AuditFields{
		CreatedAt:     d.CreatedAt,
		LastUpdatedAt: d.LastUpdatedAt,
	}
}

// ToDomainAuditFields converts a model AuditFields to a domain AuditFields
func ToDomainAuditFields(m models.AuditFields) domain.AuditFields {
	return domain.AuditFields{
		CreatedAt:     m.CreatedAt,
		LastUpdatedAt: m.LastUpdatedAt,
	}
}

// toDomainImage rebuilds an image descriptor from its two nullable columns.
func toDomainImage(path, filename *string) *domain.Image {
	if path == nil || *path == "" {
		return nil
	}
	img := &domain.Image{Path: *path}
	if filename != nil {
		img.Filename = *filename
	}
	return img
}

func toModelImage(img *domain.Image) (path, filename *string) {
	if img == nil {
		return nil, nil
	}
	p, f := img.Path, img.Filename
	return &p, &f
}
