package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/letsgoparty/letsgoparty_backend/internal/apperrors"
	"github.com/letsgoparty/letsgoparty_backend/internal/core/domain"
	portsrepo "github.com/letsgoparty/letsgoparty_backend/internal/core/ports/repositories"
	portssvc "github.com/letsgoparty/letsgoparty_backend/internal/core/ports/services"
	"github.com/letsgoparty/letsgoparty_backend/internal/dto"
	"github.com/letsgoparty/letsgoparty_backend/internal/utils"
)

const msgUserNotFound = "Usuário não encontrado"

type userService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
	images   portssvc.ImageStore
}

// NewUserService creates the profile service.
func NewUserService(userRepo portsrepo.UserRepositoryFacade, images portssvc.ImageStore, clock func() time.Time) portssvc.UserSvcFacade {
	return &userService{BaseService: BaseService{Clock: clock}, userRepo: userRepo, images: images}
}

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError(msgUserNotFound)
		}
		s.LogError(ctx, err, "Failed to find user", slog.String("user_id", userID))
		return nil, err
	}
	return user, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID string, req dto.UpdateProfileRequest, upload *domain.ImageUpload) (*domain.User, error) {
	current, err := s.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	updated := *current
	if name := strings.TrimSpace(req.Name); name != "" {
		updated.Name = name
	}
	updated.LastName = optionalString(req.LastName)

	if email := strings.TrimSpace(req.Email); email != "" && email != current.Email {
		other, err := s.userRepo.FindUserByEmail(ctx, email)
		switch {
		case err == nil && other.UserID != userID:
			return nil, apperrors.NewConflictError("Este email já está em uso por outro usuário")
		case err != nil && !errors.Is(err, apperrors.ErrNotFound):
			s.LogError(ctx, err, "Failed to check email availability")
			return nil, err
		}
		updated.Email = email
	}

	if req.Password != "" {
		hash, err := utils.HashPassword(req.Password)
		if err != nil {
			return nil, apperrors.NewInternalServerError("Erro no servidor", err)
		}
		updated.PasswordHash = hash
	}

	if upload != nil {
		img, err := s.storeImage(ctx, s.images, *upload)
		if err != nil {
			return nil, err
		}
		updated.Image = img
	}
	updated.LastUpdatedAt = s.Now()

	if err := s.userRepo.UpdateProfile(ctx, updated); err != nil {
		if upload != nil {
			s.discardImage(ctx, s.images, updated.Image)
		}
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.NewConflictError("Este email já está em uso por outro usuário")
		}
		s.LogError(ctx, err, "Failed to update profile", slog.String("user_id", userID))
		return nil, err
	}

	if upload != nil {
		s.discardImage(ctx, s.images, current.Image)
	}
	s.LogInfo(ctx, "Profile updated", slog.String("user_id", userID))
	return &updated, nil
}
