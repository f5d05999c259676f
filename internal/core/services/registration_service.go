package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/letsgoparty/letsgoparty_backend/internal/apperrors"
	"github.com/letsgoparty/letsgoparty_backend/internal/core/domain"
	portsrepo "github.com/letsgoparty/letsgoparty_backend/internal/core/ports/repositories"
	portssvc "github.com/letsgoparty/letsgoparty_backend/internal/core/ports/services"
	"github.com/letsgoparty/letsgoparty_backend/internal/dto"
	"github.com/letsgoparty/letsgoparty_backend/internal/platform/config"
	"github.com/letsgoparty/letsgoparty_backend/internal/utils"
)

const (
	msgEmailTaken           = "Este email já está registrado"
	msgVerifyTokenInvalid   = "Token inválido ou já utilizado."
	msgVerifyTokenExpired   = "Token expirado. Solicite novo link."
	verificationLinkSegment = "/verificar-email/"
)

type registrationService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
	mailer   portssvc.Mailer
	cfg      *config.Config
}

// NewRegistrationService creates the sign-up and email verification service.
func NewRegistrationService(userRepo portsrepo.UserRepositoryFacade, mailer portssvc.Mailer, cfg *config.Config, clock func() time.Time) portssvc.RegistrationSvcFacade {
	return &registrationService{
		BaseService: BaseService{Clock: clock},
		userRepo:    userRepo,
		mailer:      mailer,
		cfg:         cfg,
	}
}

func (s *registrationService) Register(ctx context.Context, req dto.RegisterRequest) error {
	email := strings.TrimSpace(req.Email)

	_, err := s.userRepo.FindUserByEmail(ctx, email)
	if err == nil {
		return apperrors.NewConflictError(msgEmailTaken)
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to check email availability")
		return err
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return apperrors.NewInternalServerError("Erro no servidor", err)
	}
	token, err := utils.NewSingleUseToken()
	if err != nil {
		return apperrors.NewInternalServerError("Erro no servidor", err)
	}

	now := s.Now()
	expires := now.Add(s.cfg.SingleUseTokenTTL)
	user := domain.User{
		UserID:                   uuid.NewString(),
		Email:                    email,
		Name:                     strings.TrimSpace(req.Name),
		LastName:                 optionalString(req.LastName),
		PasswordHash:             hash,
		VerificationToken:        &token,
		VerificationTokenExpires: &expires,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return apperrors.NewConflictError(msgEmailTaken)
		}
		s.LogError(ctx, err, "Failed to save new user")
		return err
	}
	s.LogInfo(ctx, "User registered", slog.String("user_id", user.UserID))

	s.sendVerification(ctx, &user, token, false)
	return nil
}

func (s *registrationService) VerifyEmail(ctx context.Context, token string) error {
	user, err := s.userRepo.FindUserByVerificationToken(ctx, token)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewValidationError(msgVerifyTokenInvalid, apperrors.ErrInvalidToken)
		}
		s.LogError(ctx, err, "Failed to look up verification token")
		return err
	}

	now := s.Now()
	if user.VerificationTokenExpires != nil && user.VerificationTokenExpires.Before(now) {
		return apperrors.NewValidationError(msgVerifyTokenExpired, apperrors.ErrTokenExpired)
	}

	// The conditional update loses to a concurrent consumer of the same token.
	if err := s.userRepo.ConsumeVerificationToken(ctx, user.UserID, token, now); err != nil {
		if errors.Is(err, apperrors.ErrInvalidToken) {
			return apperrors.NewValidationError(msgVerifyTokenInvalid, err)
		}
		s.LogError(ctx, err, "Failed to consume verification token", slog.String("user_id", user.UserID))
		return err
	}

	s.LogInfo(ctx, "Email verified", slog.String("user_id", user.UserID))
	return nil
}

func (s *registrationService) ResendVerification(ctx context.Context, email string) (bool, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return false, nil
		}
		s.LogError(ctx, err, "Failed to look up user for verification resend")
		return false, err
	}
	if user.Verified {
		return true, nil
	}

	token, err := utils.NewSingleUseToken()
	if err != nil {
		return false, apperrors.NewInternalServerError("Erro no servidor", err)
	}
	if err := s.userRepo.SetVerificationToken(ctx, user.UserID, token, s.Now().Add(s.cfg.SingleUseTokenTTL)); err != nil {
		s.LogError(ctx, err, "Failed to store verification token", slog.String("user_id", user.UserID))
		return false, err
	}

	s.sendVerification(ctx, user, token, true)
	return false, nil
}

// sendVerification mails the activation link. Delivery failures are logged
// only; the account and token are already stored.
func (s *registrationService) sendVerification(ctx context.Context, user *domain.User, token string, resent bool) {
	msg, err := verificationMail(user, s.cfg.FrontendBaseURL+verificationLinkSegment+token, resent)
	if err == nil {
		err = s.mailer.Send(ctx, msg)
	}
	if err != nil {
		s.LogWarn(ctx, err, "Failed to send verification email", slog.String("user_id", user.UserID))
	}
}

func optionalString(v string) *string {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	return &v
}
