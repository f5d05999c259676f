package handlers

import (
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	portssvc "github.com/letsgoparty/letsgoparty_backend/internal/core/ports/services"
	"github.com/letsgoparty/letsgoparty_backend/internal/middleware"
)

const (
	oauthStateCookie = "oauth_state"
	oauthStateMaxAge = 600 // seconds
)

// GoogleOAuthHandler runs the browser side of the Google sign-in handshake.
// Both outcomes end in a redirect to the frontend.
type GoogleOAuthHandler struct {
	googleOAuthService portssvc.GoogleOAuthSvcFacade
	authService        portssvc.AuthSvcFacade
	frontendBaseURL    string
	secureCookie       bool
}

// NewGoogleOAuthHandler creates a new instance of GoogleOAuthHandler.
func NewGoogleOAuthHandler(
	googleOAuthService portssvc.GoogleOAuthSvcFacade,
	authService portssvc.AuthSvcFacade,
	frontendBaseURL string,
	secureCookie bool,
) *GoogleOAuthHandler {
	return &GoogleOAuthHandler{
		googleOAuthService: googleOAuthService,
		authService:        authService,
		frontendBaseURL:    strings.TrimRight(frontendBaseURL, "/"),
		secureCookie:       secureCookie,
	}
}

// LoginGoogle godoc
// @Summary Start Google sign-in
// @Description Stores a CSRF state in a cookie and redirects to Google's consent screen.
// @Tags oauth
// @Success 307
// @Router /auth/google [get]
func (h *GoogleOAuthHandler) LoginGoogle(c *gin.Context) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromContext(c)

	state, err := h.googleOAuthService.GenerateStateString(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to generate OAuth state", slog.String("error", err.Error()))
		h.redirectToLogin(c)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(oauthStateCookie, state, oauthStateMaxAge, "/auth/google", "", h.secureCookie, true)
	c.Redirect(http.StatusTemporaryRedirect, h.googleOAuthService.GetGoogleLoginURL(ctx, state))
}

// CallbackGoogle godoc
// @Summary Finish Google sign-in
// @Description Exchanges the authorization code, logs the user in and redirects to the frontend with the session token.
// @Tags oauth
// @Param state query string true "CSRF state"
// @Param code query string true "Authorization code"
// @Success 307 "Redirect to /oauth-callback?token=..."
// @Router /auth/google/callback [get]
func (h *GoogleOAuthHandler) CallbackGoogle(c *gin.Context) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromContext(c)

	expected, err := c.Cookie(oauthStateCookie)
	c.SetCookie(oauthStateCookie, "", -1, "/auth/google", "", h.secureCookie, true)
	if err != nil || expected == "" || expected != c.Query("state") {
		logger.WarnContext(ctx, "OAuth state mismatch")
		h.redirectToLogin(c)
		return
	}

	code := c.Query("code")
	if code == "" {
		logger.WarnContext(ctx, "Authorization code missing from Google callback", slog.String("error", c.Query("error")))
		h.redirectToLogin(c)
		return
	}

	token, err := h.googleOAuthService.ExchangeCodeForToken(ctx, code)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to exchange authorization code with Google", slog.String("error", err.Error()))
		h.redirectToLogin(c)
		return
	}

	info, err := h.googleOAuthService.GetUserInfo(ctx, token)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to fetch Google profile", slog.String("error", err.Error()))
		h.redirectToLogin(c)
		return
	}

	if idToken, ok := token.Extra("id_token").(string); ok && idToken != "" {
		payload, err := h.googleOAuthService.ValidateGoogleIDToken(ctx, idToken)
		if err != nil {
			logger.ErrorContext(ctx, "Google ID token validation failed", slog.String("error", err.Error()))
			h.redirectToLogin(c)
			return
		}
		if payload.Subject != info.ID {
			logger.ErrorContext(ctx, "Google ID token subject does not match profile",
				slog.String("sub", payload.Subject), slog.String("google_user_id", info.ID))
			h.redirectToLogin(c)
			return
		}
	}

	sessionToken, err := h.authService.LoginWithGoogle(ctx, *info)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to sign in Google user", slog.String("error", err.Error()), slog.String("google_user_id", info.ID))
		h.redirectToLogin(c)
		return
	}

	logger.InfoContext(ctx, "User signed in with Google", slog.String("google_user_id", info.ID))
	c.Redirect(http.StatusTemporaryRedirect, h.frontendBaseURL+"/oauth-callback?token="+url.QueryEscape(sessionToken))
}

func (h *GoogleOAuthHandler) redirectToLogin(c *gin.Context) {
	c.Redirect(http.StatusTemporaryRedirect, h.frontendBaseURL+"/login")
}

// registerGoogleOAuthRoutes registers the Google OAuth routes.
func registerGoogleOAuthRoutes(r gin.IRouter, services *portssvc.ServiceContainer, frontendBaseURL string, isProduction bool) {
	h := NewGoogleOAuthHandler(services.GoogleOAuth, services.Auth, frontendBaseURL, isProduction)
	googleRoutes := r.Group("/auth/google")
	{
		googleRoutes.GET("", h.LoginGoogle)
		googleRoutes.GET("/callback", h.CallbackGoogle)
	}
}
