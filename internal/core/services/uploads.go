package services

import (
	"context"
	"log/slog"

	"github.com/letsgoparty/letsgoparty_backend/internal/apperrors"
	"github.com/letsgoparty/letsgoparty_backend/internal/core/domain"
	portssvc "github.com/letsgoparty/letsgoparty_backend/internal/core/ports/services"
	"github.com/letsgoparty/letsgoparty_backend/internal/platform/config"
	"github.com/letsgoparty/letsgoparty_backend/internal/utils"
)

// storeImage saves upload under a fresh name and returns its public descriptor.
func (s *BaseService) storeImage(ctx context.Context, store portssvc.ImageStore, upload domain.ImageUpload) (*domain.Image, error) {
	filename, err := utils.NewUploadFilename(s.Now(), upload.OriginalName)
	if err != nil {
		return nil, apperrors.NewInternalServerError("Erro no servidor", err)
	}
	if err := store.Save(ctx, filename, upload); err != nil {
		s.LogError(ctx, err, "Failed to store uploaded image", slog.String("filename", filename))
		return nil, apperrors.NewInternalServerError("Erro ao salvar imagem", err)
	}
	return &domain.Image{Path: config.PublicImagePath + "/" + filename, Filename: filename}, nil
}

// discardImage deletes a stored image best-effort. Remote images are left alone.
func (s *BaseService) discardImage(ctx context.Context, store portssvc.ImageStore, img *domain.Image) {
	if img == nil || img.Filename == "" || img.IsRemote() {
		return
	}
	if err := store.Delete(ctx, img.Filename); err != nil {
		s.LogWarn(ctx, err, "Failed to delete old image", slog.String("filename", img.Filename))
	}
}
