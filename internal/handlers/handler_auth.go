package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/letsgoparty/letsgoparty_backend/internal/core/ports/services"
	"github.com/letsgoparty/letsgoparty_backend/internal/dto"
	"github.com/letsgoparty/letsgoparty_backend/internal/middleware"
)

const (
	msgRegistered         = "Usuário cadastrado com sucesso. Por favor, verifique seu email para ativar sua conta."
	msgEmailVerified      = "Email verificado com sucesso!"
	msgVerificationResent = "Se o email estiver cadastrado, enviaremos um novo link de verificação."
	msgAlreadyVerified    = "Este email já foi verificado. Você pode fazer login normalmente."
	msgResetRequested     = "Se o email estiver cadastrado, enviaremos um link para recuperação de senha."
	msgResetTokenValid    = "Token válido"
	msgPasswordResetDone  = "Senha redefinida com sucesso"
)

// authHandler serves login, sign-up, email verification and password reset.
type authHandler struct {
	auth          portssvc.AuthSvcFacade
	registration  portssvc.RegistrationSvcFacade
	passwordReset portssvc.PasswordResetSvcFacade
	isProduction  bool
}

func newAuthHandler(services *portssvc.ServiceContainer, isProduction bool) *authHandler {
	return &authHandler{
		auth:          services.Auth,
		registration:  services.Registration,
		passwordReset: services.PasswordReset,
		isProduction:  isProduction,
	}
}

// registerAuthRoutes sets up the public account routes.
func registerAuthRoutes(r gin.IRouter, services *portssvc.ServiceContainer, isProduction bool) {
	h := newAuthHandler(services, isProduction)

	r.POST("/login", h.login)
	r.POST("/cadastro", h.register)
	r.GET("/verificar-email/:token", h.verifyEmail)
	r.POST("/reenviar-verificacao", h.resendVerification)
	r.POST("/solicitar-redefinicao-senha", h.requestPasswordReset)
	r.GET("/verificar-token-redefinicao/:token", h.checkResetToken)
	r.POST("/redefinir-senha", h.resetPassword)
}

// login godoc
// @Summary User login
// @Description Authenticates a user and returns the session JWT as a bare JSON string.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {string} string "JWT"
// @Failure 400 {object} dto.ErrorResponse "Invalid password"
// @Failure 403 {object} dto.NeedsVerificationResponse "Email not verified"
// @Failure 404 {object} dto.ErrorResponse "Unknown email"
// @Router /login [post]
func (h *authHandler) login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, h.isProduction)
		return
	}

	token, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err, h.isProduction)
		return
	}
	c.JSON(http.StatusOK, token)
}

// register godoc
// @Summary Register new user
// @Description Creates an unverified account and emails a verification link.
// @Tags auth
// @Accept json
// @Produce json
// @Param register body dto.RegisterRequest true "User Registration Info"
// @Success 201 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input or email already registered"
// @Failure 500 {object} dto.ErrorResponse
// @Router /cadastro [post]
func (h *authHandler) register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, h.isProduction)
		return
	}

	if err := h.registration.Register(c.Request.Context(), req); err != nil {
		respondError(c, err, h.isProduction)
		return
	}
	c.JSON(http.StatusCreated, dto.MessageResponse{Message: msgRegistered})
}

// verifyEmail godoc
// @Summary Verify email
// @Description Consumes a verification token and activates the account.
// @Tags auth
// @Produce json
// @Param token path string true "Verification token"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid, used or expired token"
// @Router /verificar-email/{token} [get]
func (h *authHandler) verifyEmail(c *gin.Context) {
	if err := h.registration.VerifyEmail(c.Request.Context(), c.Param("token")); err != nil {
		respondError(c, err, h.isProduction)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: msgEmailVerified})
}

// resendVerification godoc
// @Summary Resend verification email
// @Description Always answers 200 so the response does not reveal whether the email exists.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.EmailRequest true "Email"
// @Success 200 {object} dto.MessageResponse
// @Router /reenviar-verificacao [post]
func (h *authHandler) resendVerification(c *gin.Context) {
	var req dto.EmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, h.isProduction)
		return
	}

	alreadyVerified, err := h.registration.ResendVerification(c.Request.Context(), req.Email)
	if err != nil {
		respondError(c, err, h.isProduction)
		return
	}
	if alreadyVerified {
		c.JSON(http.StatusOK, dto.MessageResponse{Message: msgAlreadyVerified})
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: msgVerificationResent})
}

// requestPasswordReset godoc
// @Summary Request password reset
// @Description Emails a reset link. Unknown emails get the same answer.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.EmailRequest true "Email"
// @Success 200 {object} dto.MessageResponse
// @Router /solicitar-redefinicao-senha [post]
func (h *authHandler) requestPasswordReset(c *gin.Context) {
	var req dto.EmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, h.isProduction)
		return
	}

	if err := h.passwordReset.RequestPasswordReset(c.Request.Context(), req.Email); err != nil {
		respondError(c, err, h.isProduction)
		return
	}
	middleware.GetLoggerFromContext(c).Info("Password reset requested")
	c.JSON(http.StatusOK, dto.MessageResponse{Message: msgResetRequested})
}

// checkResetToken godoc
// @Summary Check reset token
// @Tags auth
// @Produce json
// @Param token path string true "Reset token"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid or expired token"
// @Router /verificar-token-redefinicao/{token} [get]
func (h *authHandler) checkResetToken(c *gin.Context) {
	if err := h.passwordReset.CheckResetToken(c.Request.Context(), c.Param("token")); err != nil {
		respondError(c, err, h.isProduction)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: msgResetTokenValid})
}

// resetPassword godoc
// @Summary Reset password
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.ResetPasswordRequest true "Token and new password"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid token or short password"
// @Router /redefinir-senha [post]
func (h *authHandler) resetPassword(c *gin.Context) {
	var req dto.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, h.isProduction)
		return
	}

	if err := h.passwordReset.ResetPassword(c.Request.Context(), req.Token, req.NewPassword); err != nil {
		respondError(c, err, h.isProduction)
		return
	}
	middleware.GetLoggerFromContext(c).Info("Password reset completed")
	c.JSON(http.StatusOK, dto.MessageResponse{Message: msgPasswordResetDone})
}
