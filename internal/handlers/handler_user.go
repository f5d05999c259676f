package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/letsgoparty/letsgoparty_backend/internal/core/ports/services"
	"github.com/letsgoparty/letsgoparty_backend/internal/dto"
	"github.com/letsgoparty/letsgoparty_backend/internal/middleware"
)

// userHandler handles HTTP requests related to the signed-in user.
type userHandler struct {
	userService  portssvc.UserSvcFacade
	isProduction bool
}

// newUserHandler creates a new userHandler.
func newUserHandler(us portssvc.UserSvcFacade, isProduction bool) *userHandler {
	return &userHandler{
		userService:  us,
		isProduction: isProduction,
	}
}

// registerUserRoutes registers the profile routes. rg must be behind AuthMiddleware.
func registerUserRoutes(rg gin.IRouter, userService portssvc.UserSvcFacade, isProduction bool) {
	h := newUserHandler(userService, isProduction)

	rg.GET("/meu-perfil", h.getProfile)
	rg.GET("/me", h.getMe)
	rg.POST("/alterar-perfil", h.updateProfile)
	rg.GET("/carregar-imagem-perfil", h.getProfileImage)
}

// getProfile godoc
// @Summary Get own profile
// @Description Returns the signed-in user including the linked Google account.
// @Tags users
// @Produce json
// @Success 200 {object} dto.ProfileResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /meu-perfil [get]
func (h *userHandler) getProfile(c *gin.Context) {
	userID, ok := middleware.RequireUserID(c)
	if !ok {
		return
	}

	user, err := h.userService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, h.isProduction)
		return
	}
	c.JSON(http.StatusOK, dto.ToProfileResponse(user))
}

// getMe godoc
// @Summary Get current user
// @Tags users
// @Produce json
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /me [get]
func (h *userHandler) getMe(c *gin.Context) {
	userID, ok := middleware.RequireUserID(c)
	if !ok {
		return
	}

	user, err := h.userService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, h.isProduction)
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// updateProfile godoc
// @Summary Update own profile
// @Description Multipart form. Blank name or email keep the current value; the password changes only when sent.
// @Tags users
// @Accept multipart/form-data
// @Produce json
// @Param name formData string false "First name"
// @Param lastName formData string false "Last name"
// @Param email formData string false "Email"
// @Param password formData string false "New password (min 6)"
// @Param image formData file false "Profile picture (PNG or JPEG)"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input or email in use"
// @Failure 401 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /alterar-perfil [post]
func (h *userHandler) updateProfile(c *gin.Context) {
	userID, ok := middleware.RequireUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBind(&req); err != nil {
		respondBindError(c, err, h.isProduction)
		return
	}

	upload, err := readImageUpload(c)
	if err != nil {
		respondBindError(c, err, h.isProduction)
		return
	}
	defer closeUpload(upload)

	user, err := h.userService.UpdateProfile(c.Request.Context(), userID, req, upload)
	if err != nil {
		respondError(c, err, h.isProduction)
		return
	}

	middleware.GetLoggerFromContext(c).Info("Profile updated", slog.Bool("image_replaced", upload != nil))
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// getProfileImage godoc
// @Summary Get own name and picture
// @Tags users
// @Produce json
// @Success 200 {object} dto.ProfileImageResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /carregar-imagem-perfil [get]
func (h *userHandler) getProfileImage(c *gin.Context) {
	userID, ok := middleware.RequireUserID(c)
	if !ok {
		return
	}

	user, err := h.userService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, h.isProduction)
		return
	}
	c.JSON(http.StatusOK, dto.ProfileImageResponse{Name: user.Name, Image: dto.ToImageResponse(user.Image)})
}
