package services

import (
	"context"
	"time"

	"github.com/letsgoparty/letsgoparty_backend/internal/core/domain"
	"golang.org/x/oauth2"
	"google.golang.org/api/idtoken"
)

// TokenSvcFacade defines the interface for session token issuing.
type TokenSvcFacade interface {
	// GenerateAccessToken signs a session token for the user and returns it with its expiry.
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)
}

// GoogleOAuthSvcFacade defines the interface for Google OAuth operations.
type GoogleOAuthSvcFacade interface {
	// GenerateStateString creates a secure random string to be used as a CSRF token for OAuth flow.
	GenerateStateString(ctx context.Context) (string, error)
	// GetGoogleLoginURL returns the URL to redirect the user to for Google login.
	GetGoogleLoginURL(ctx context.Context, state string) string
	// ExchangeCodeForToken exchanges an OAuth authorization code for a token.
	ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error)
	// GetUserInfo uses the access token to get user information from Google.
	GetUserInfo(ctx context.Context, token *oauth2.Token) (*domain.GoogleUserInfo, error)
	// ValidateGoogleIDToken validates an ID token string from Google and returns its payload.
	ValidateGoogleIDToken(ctx context.Context, idTokenString string) (*idtoken.Payload, error)
}

// AuthSvcFacade turns credentials into session tokens.
type AuthSvcFacade interface {
	// Login checks email and password. Unknown emails yield NotFound, unverified
	// accounts apperrors.ErrNotVerified and wrong passwords a ValidationError.
	Login(ctx context.Context, email, password string) (string, error)

	// LoginWithGoogle finds or creates the account behind a Google profile and
	// returns a session token for it.
	LoginWithGoogle(ctx context.Context, info domain.GoogleUserInfo) (string, error)
}
