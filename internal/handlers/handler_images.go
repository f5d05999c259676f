package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/letsgoparty/letsgoparty_backend/internal/apperrors"
	portssvc "github.com/letsgoparty/letsgoparty_backend/internal/core/ports/services"
	"github.com/letsgoparty/letsgoparty_backend/internal/middleware"
	"github.com/letsgoparty/letsgoparty_backend/internal/platform/config"
)

type imageHandler struct {
	images portssvc.ImageStore
}

// registerImageRoutes serves stored uploads under config.PublicImagePath,
// whichever backend holds them.
func registerImageRoutes(r gin.IRouter, images portssvc.ImageStore) {
	h := &imageHandler{images: images}
	r.GET(config.PublicImagePath+"/:filename", h.serveImage)
	r.HEAD(config.PublicImagePath+"/:filename", h.serveImage)
}

// serveImage godoc
// @Summary Uploaded image
// @Tags images
// @Produce png
// @Produce jpeg
// @Param filename path string true "Stored file name"
// @Success 200 {file} file
// @Failure 404 {object} dto.ErrorResponse
// @Router /assets/uploads/images/{filename} [get]
func (h *imageHandler) serveImage(c *gin.Context) {
	obj, err := h.images.Open(c.Request.Context(), c.Param("filename"))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		middleware.GetLoggerFromContext(c).Error("Failed to open image", slog.String("error", err.Error()))
		c.Status(http.StatusInternalServerError)
		return
	}
	defer obj.Body.Close()

	c.Header("Cache-Control", "public, max-age=86400")
	c.Header("Content-Type", obj.ContentType)
	if obj.Size > 0 {
		c.Header("Content-Length", strconv.FormatInt(obj.Size, 10))
	}
	c.Status(http.StatusOK)
	if c.Request.Method == http.MethodHead {
		return
	}
	if _, err := io.Copy(c.Writer, obj.Body); err != nil {
		middleware.GetLoggerFromContext(c).Warn("Image stream interrupted", slog.String("error", err.Error()))
	}
}
