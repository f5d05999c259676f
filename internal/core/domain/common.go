package domain

import (
	"strings"
	"time"
)

// AuditFields holds creation and update timestamps for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// Image describes an uploaded picture. Path is either the public URL prefix
// plus Filename, or an absolute URL for images hosted elsewhere (Google photos).
type Image struct {
	Path     string `json:"path"`
	Filename string `json:"filename"`
}

// IsRemote reports whether the image points at an external URL instead of a stored upload.
func (i *Image) IsRemote() bool {
	return i != nil && strings.HasPrefix(i.Path, "http")
}
