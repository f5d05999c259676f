package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/letsgoparty/letsgoparty_backend/internal/apperrors"
	"github.com/letsgoparty/letsgoparty_backend/internal/core/domain"
	portsrepo "github.com/letsgoparty/letsgoparty_backend/internal/core/ports/repositories"
	portssvc "github.com/letsgoparty/letsgoparty_backend/internal/core/ports/services"
	"github.com/letsgoparty/letsgoparty_backend/internal/utils/pagination"
)

type likeService struct {
	BaseService
	likeRepo portsrepo.LikeRepositoryFacade
}

// NewLikeService creates the favorites service.
func NewLikeService(likeRepo portsrepo.LikeRepositoryFacade, clock func() time.Time) portssvc.LikeSvcFacade {
	return &likeService{BaseService: BaseService{Clock: clock}, likeRepo: likeRepo}
}

func (s *likeService) ToggleLike(ctx context.Context, userID, eventID string) (bool, error) {
	liked, err := s.likeRepo.ToggleLike(ctx, userID, eventID, s.Now())
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return false, apperrors.NewNotFoundError(msgEventNotFound)
		}
		s.LogError(ctx, err, "Failed to toggle like", slog.String("event_id", eventID))
		return false, apperrors.NewInternalServerError("Erro ao processar curtida", err)
	}
	return liked, nil
}

func (s *likeService) RemoveLike(ctx context.Context, userID, eventID string) error {
	if err := s.likeRepo.DeleteLike(ctx, userID, eventID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewNotFoundError("Curtida não encontrada.")
		}
		s.LogError(ctx, err, "Failed to remove like", slog.String("event_id", eventID))
		return apperrors.NewInternalServerError("Erro ao descurtir evento.", err)
	}
	return nil
}

func (s *likeService) IsLiked(ctx context.Context, userID, eventID string) (bool, error) {
	liked, err := s.likeRepo.LikeExists(ctx, userID, eventID)
	if err != nil {
		s.LogError(ctx, err, "Failed to check like", slog.String("event_id", eventID))
		return false, apperrors.NewInternalServerError("Erro ao verificar curtida", err)
	}
	return liked, nil
}

func (s *likeService) ListFavorites(ctx context.Context, userID, rawPage string) (*domain.EventPage, error) {
	page := pagination.FixedLimit(rawPage, pagination.DefaultLimit)

	total, err := s.likeRepo.CountLikes(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to count likes")
		return nil, apperrors.NewInternalServerError("Erro ao buscar favoritos", err)
	}
	events, err := s.likeRepo.FindLikedEvents(ctx, userID, page.Limit, page.Offset())
	if err != nil {
		s.LogError(ctx, err, "Failed to list liked events")
		return nil, apperrors.NewInternalServerError("Erro ao buscar favoritos", err)
	}
	return &domain.EventPage{Events: events, TotalPages: pagination.TotalPages(total, page.Limit)}, nil
}
