package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/letsgoparty/letsgoparty_backend/internal/core/domain"
)

const imageField = "image"

var acceptedImageTypes = map[string]bool{
	"image/png":  true,
	"image/jpg":  true,
	"image/jpeg": true,
}

// readImageUpload returns the "image" part of a multipart request. A missing
// part, or one that is not PNG/JPEG, yields nil without error. The caller
// must closeUpload the result.
func readImageUpload(c *gin.Context) (*domain.ImageUpload, error) {
	header, err := c.FormFile(imageField)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read image part: %w", err)
	}

	contentType := header.Header.Get("Content-Type")
	if !acceptedImageTypes[contentType] {
		return nil, nil
	}

	f, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open image part: %w", err)
	}
	return &domain.ImageUpload{
		OriginalName: header.Filename,
		ContentType:  contentType,
		Size:         header.Size,
		Content:      f,
	}, nil
}

func closeUpload(upload *domain.ImageUpload) {
	if upload == nil {
		return
	}
	if closer, ok := upload.Content.(io.Closer); ok {
		closer.Close()
	}
}
