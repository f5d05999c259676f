package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/letsgoparty/letsgoparty_backend/internal/apperrors"
	"github.com/letsgoparty/letsgoparty_backend/internal/core/domain"
	portsrepo "github.com/letsgoparty/letsgoparty_backend/internal/core/ports/repositories"
	portssvc "github.com/letsgoparty/letsgoparty_backend/internal/core/ports/services"
	"github.com/letsgoparty/letsgoparty_backend/internal/platform/config"
	"github.com/letsgoparty/letsgoparty_backend/internal/utils"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/idtoken"
)

const googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

// tokenService implements the TokenSvcFacade for signing session JWTs.
type tokenService struct {
	BaseService
	cfg *config.Config
}

// NewTokenService creates a new instance of tokenService.
func NewTokenService(cfg *config.Config, clock func() time.Time) portssvc.TokenSvcFacade {
	return &tokenService{BaseService: BaseService{Clock: clock}, cfg: cfg}
}

// GenerateAccessToken creates a new JWT access token for the given user.
func (s *tokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	now := s.Now()
	expiryTime := now.Add(s.cfg.JWTExpiryDuration)

	accessToken, err := utils.GenerateJWT(user.UserID, s.cfg.JWTSecret, now, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to sign access token", slog.String("user_id", user.UserID))
		return "", time.Time{}, err
	}
	return accessToken, expiryTime, nil
}

// --- GoogleOAuthSvcFacade Implementation ---

// googleOAuthService implements the GoogleOAuthSvcFacade.
type googleOAuthService struct {
	cfg *config.Config
	// oauth2Config is configured at initialization time
	oauth2Config *oauth2.Config
}

// NewGoogleOAuthService creates a new instance of googleOAuthService.
func NewGoogleOAuthService(cfg *config.Config) portssvc.GoogleOAuthSvcFacade {
	return &googleOAuthService{
		cfg: cfg,
		oauth2Config: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
			Scopes:       []string{"openid", "https://www.googleapis.com/auth/userinfo.email", "https://www.googleapis.com/auth/userinfo.profile"},
			Endpoint:     google.Endpoint,
		},
	}
}

// GenerateStateString creates a secure random string to be used as a CSRF token for OAuth flow.
func (s *googleOAuthService) GenerateStateString(ctx context.Context) (string, error) {
	// 16 bytes -> 32 char hex string
	state, err := utils.GenerateSecureRandomString(16)
	if err != nil {
		return "", fmt.Errorf("failed to generate state string for OAuth: %w", err)
	}
	return state, nil
}

// GetGoogleLoginURL returns the URL to redirect the user to for Google login.
func (s *googleOAuthService) GetGoogleLoginURL(ctx context.Context, state string) string {
	return s.oauth2Config.AuthCodeURL(state)
}

// ExchangeCodeForToken exchanges an OAuth authorization code for a token.
func (s *googleOAuthService) ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error) {
	token, err := s.oauth2Config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange oauth code for token: %w", err)
	}
	return token, nil
}

// GetUserInfo uses the access token to get user information from Google.
func (s *googleOAuthService) GetUserInfo(ctx context.Context, token *oauth2.Token) (*domain.GoogleUserInfo, error) {
	client := s.oauth2Config.Client(ctx, token)
	resp, err := client.Get(googleUserInfoURL)
	if err != nil {
		return nil, fmt.Errorf("failed to get user info from google: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("google api returned non-200 status for userinfo: %s", resp.Status)
	}

	var userInfo domain.GoogleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&userInfo); err != nil {
		return nil, fmt.Errorf("failed to decode user info from google: %w", err)
	}

	return &userInfo, nil
}

// ValidateGoogleIDToken validates an ID token received from Google and returns the payload if valid.
func (s *googleOAuthService) ValidateGoogleIDToken(ctx context.Context, idTokenString string) (*idtoken.Payload, error) {
	if s.cfg.GoogleClientID == "" {
		return nil, errors.New("google client ID is not configured in the application")
	}

	payload, err := idtoken.Validate(ctx, idTokenString, s.cfg.GoogleClientID)
	if err != nil {
		return nil, fmt.Errorf("google ID token validation failed: %w", err)
	}
	return payload, nil
}

// --- AuthSvcFacade Implementation ---

type authService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
	tokens   portssvc.TokenSvcFacade
}

// NewAuthService creates the login service.
func NewAuthService(userRepo portsrepo.UserRepositoryFacade, tokens portssvc.TokenSvcFacade, clock func() time.Time) portssvc.AuthSvcFacade {
	return &authService{BaseService: BaseService{Clock: clock}, userRepo: userRepo, tokens: tokens}
}

func (s *authService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", apperrors.NewNotFoundError("Usuário não encontrado")
		}
		s.LogError(ctx, err, "Failed to look up user for login")
		return "", err
	}

	if !user.Verified {
		return "", apperrors.NewNotVerifiedError("Por favor, verifique seu email antes de fazer login")
	}
	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return "", apperrors.NewBadRequestError("Senha inválida")
	}

	token, _, err := s.tokens.GenerateAccessToken(ctx, user)
	if err != nil {
		return "", err
	}
	s.LogInfo(ctx, "User logged in", slog.String("user_id", user.UserID))
	return token, nil
}

func (s *authService) LoginWithGoogle(ctx context.Context, info domain.GoogleUserInfo) (string, error) {
	if info.ID == "" || info.Email == "" {
		return "", apperrors.NewValidationError("Perfil do Google incompleto", nil)
	}

	user, err := s.userRepo.FindUserByEmail(ctx, info.Email)
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		user, err = s.createGoogleUser(ctx, info)
		if err != nil {
			return "", err
		}
	case err != nil:
		s.LogError(ctx, err, "Failed to look up user for Google login", slog.String("google_id", info.ID))
		return "", err
	default:
		if err := s.linkGoogleUser(ctx, user, info); err != nil {
			return "", err
		}
	}

	token, _, err := s.tokens.GenerateAccessToken(ctx, user)
	if err != nil {
		return "", err
	}
	s.LogInfo(ctx, "User logged in with Google", slog.String("user_id", user.UserID))
	return token, nil
}

func (s *authService) createGoogleUser(ctx context.Context, info domain.GoogleUserInfo) (*domain.User, error) {
	now := s.Now()
	name, lastName := splitGoogleName(info)
	googleID := info.ID

	user := domain.User{
		UserID:   uuid.NewString(),
		Email:    info.Email,
		Name:     name,
		LastName: lastName,
		Verified: true,
		GoogleID: &googleID,
		Image:    googleImage(info),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		s.LogError(ctx, err, "Failed to create user from Google profile", slog.String("google_id", info.ID))
		return nil, err
	}
	s.LogInfo(ctx, "User created from Google profile", slog.String("user_id", user.UserID))
	return &user, nil
}

// linkGoogleUser records the Google id on an existing account. The Google
// photo replaces the picture only when the account has none or an uploaded one.
func (s *authService) linkGoogleUser(ctx context.Context, user *domain.User, info domain.GoogleUserInfo) error {
	var image *domain.Image
	if photo := googleImage(info); photo != nil && !user.Image.IsRemote() {
		image = photo
	}
	if err := s.userRepo.LinkGoogleAccount(ctx, user.UserID, info.ID, image, s.Now()); err != nil {
		s.LogError(ctx, err, "Failed to link Google account", slog.String("user_id", user.UserID))
		return err
	}
	googleID := info.ID
	user.GoogleID = &googleID
	if image != nil {
		user.Image = image
	}
	return nil
}

// splitGoogleName prefers the structured given/family names and falls back to
// splitting the display name on its first space.
func splitGoogleName(info domain.GoogleUserInfo) (string, *string) {
	name := strings.TrimSpace(info.GivenName)
	last := strings.TrimSpace(info.FamilyName)

	parts := strings.Fields(info.Name)
	if name == "" && len(parts) > 0 {
		name = parts[0]
	}
	if last == "" && len(parts) > 1 {
		last = strings.Join(parts[1:], " ")
	}
	if name == "" {
		name, _, _ = strings.Cut(info.Email, "@")
	}

	if last == "" {
		return name, nil
	}
	return name, &last
}

func googleImage(info domain.GoogleUserInfo) *domain.Image {
	if info.Picture == "" {
		return nil
	}
	return &domain.Image{Path: info.Picture, Filename: "google_" + info.ID}
}
