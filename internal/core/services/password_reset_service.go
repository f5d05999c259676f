package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/letsgoparty/letsgoparty_backend/internal/apperrors"
	portsrepo "github.com/letsgoparty/letsgoparty_backend/internal/core/ports/repositories"
	portssvc "github.com/letsgoparty/letsgoparty_backend/internal/core/ports/services"
	"github.com/letsgoparty/letsgoparty_backend/internal/platform/config"
	"github.com/letsgoparty/letsgoparty_backend/internal/utils"
)

const (
	msgResetTokenInvalid = "O token é inválido ou expirou"
	resetLinkSegment     = "/redefinir-senha/"
)

var msgPasswordTooShort = fmt.Sprintf("A senha deve ter pelo menos %d caracteres", utils.MinPasswordLength)

type passwordResetService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
	mailer   portssvc.Mailer
	cfg      *config.Config
}

// NewPasswordResetService creates the forgotten-password service.
func NewPasswordResetService(userRepo portsrepo.UserRepositoryFacade, mailer portssvc.Mailer, cfg *config.Config, clock func() time.Time) portssvc.PasswordResetSvcFacade {
	return &passwordResetService{
		BaseService: BaseService{Clock: clock},
		userRepo:    userRepo,
		mailer:      mailer,
		cfg:         cfg,
	}
}

func (s *passwordResetService) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := s.userRepo.FindUserByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil
		}
		s.LogError(ctx, err, "Failed to look up user for password reset")
		return err
	}

	token, err := utils.NewSingleUseToken()
	if err != nil {
		return apperrors.NewInternalServerError("Erro no servidor", err)
	}
	if err := s.userRepo.SetResetToken(ctx, user.UserID, token, s.Now().Add(s.cfg.SingleUseTokenTTL)); err != nil {
		s.LogError(ctx, err, "Failed to store reset token", slog.String("user_id", user.UserID))
		return err
	}

	msg, err := resetMail(user, s.cfg.FrontendBaseURL+resetLinkSegment+token, describeTTL(s.cfg.SingleUseTokenTTL))
	if err == nil {
		err = s.mailer.Send(ctx, msg)
	}
	if err != nil {
		s.LogWarn(ctx, err, "Failed to send password reset email", slog.String("user_id", user.UserID))
	}
	return nil
}

func (s *passwordResetService) CheckResetToken(ctx context.Context, token string) error {
	_, err := s.userRepo.FindUserByResetToken(ctx, token, s.Now())
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewValidationError(msgResetTokenInvalid, apperrors.ErrInvalidToken)
		}
		s.LogError(ctx, err, "Failed to look up reset token")
		return err
	}
	return nil
}

// ResetPassword validates the token before the new password.
func (s *passwordResetService) ResetPassword(ctx context.Context, token, newPassword string) error {
	now := s.Now()
	user, err := s.userRepo.FindUserByResetToken(ctx, token, now)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewValidationError(msgResetTokenInvalid, apperrors.ErrInvalidToken)
		}
		s.LogError(ctx, err, "Failed to look up reset token")
		return err
	}

	if len(newPassword) < utils.MinPasswordLength {
		return apperrors.NewValidationError(msgPasswordTooShort, nil)
	}

	hash, err := utils.HashPassword(newPassword)
	if err != nil {
		return apperrors.NewInternalServerError("Erro no servidor", err)
	}
	if err := s.userRepo.ConsumeResetToken(ctx, user.UserID, token, hash, now); err != nil {
		if errors.Is(err, apperrors.ErrInvalidToken) {
			return apperrors.NewValidationError(msgResetTokenInvalid, err)
		}
		s.LogError(ctx, err, "Failed to store new password", slog.String("user_id", user.UserID))
		return err
	}

	s.LogInfo(ctx, "Password reset", slog.String("user_id", user.UserID))
	return nil
}

// describeTTL renders a token lifetime for the reset email, e.g. "1 hora".
func describeTTL(ttl time.Duration) string {
	if ttl >= time.Hour && ttl%time.Hour == 0 {
		if h := int(ttl / time.Hour); h > 1 {
			return fmt.Sprintf("%d horas", h)
		}
		return "1 hora"
	}
	return fmt.Sprintf("%d minutos", int(ttl.Minutes()))
}
