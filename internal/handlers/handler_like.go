package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/letsgoparty/letsgoparty_backend/internal/core/ports/services"
	"github.com/letsgoparty/letsgoparty_backend/internal/dto"
	"github.com/letsgoparty/letsgoparty_backend/internal/middleware"
)

const (
	msgLiked       = "Evento curtido"
	msgUnliked     = "Curtida removida"
	msgLikeRemoved = "Curtida removida com sucesso."
)

type likeHandler struct {
	likeService  portssvc.LikeSvcFacade
	isProduction bool
}

// registerLikeRoutes registers favorites. rg must be behind AuthMiddleware.
func registerLikeRoutes(rg gin.IRouter, ls portssvc.LikeSvcFacade, isProduction bool) {
	h := &likeHandler{likeService: ls, isProduction: isProduction}

	rg.POST("/curtir-evento/:id", h.toggleLike)
	rg.DELETE("/descurtir-evento/:id", h.removeLike)
	rg.GET("/verificar-curtida/:id", h.isLiked)
	rg.GET("/listar-meus-favoritos", h.listFavorites)
}

// toggleLike godoc
// @Summary Like or unlike an event
// @Description Likes the event, or removes the like when it already exists.
// @Tags likes
// @Produce json
// @Param id path string true "Event ID"
// @Success 201 {object} dto.MessageResponse "Liked"
// @Success 200 {object} dto.MessageResponse "Unliked"
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /curtir-evento/{id} [post]
func (h *likeHandler) toggleLike(c *gin.Context) {
	userID, ok := middleware.RequireUserID(c)
	if !ok {
		return
	}

	liked, err := h.likeService.ToggleLike(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondError(c, err, h.isProduction)
		return
	}
	if liked {
		c.JSON(http.StatusCreated, dto.MessageResponse{Message: msgLiked})
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: msgUnliked})
}

// removeLike godoc
// @Summary Remove a like
// @Tags likes
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /descurtir-evento/{id} [delete]
func (h *likeHandler) removeLike(c *gin.Context) {
	userID, ok := middleware.RequireUserID(c)
	if !ok {
		return
	}

	if err := h.likeService.RemoveLike(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondError(c, err, h.isProduction)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: msgLikeRemoved})
}

// isLiked godoc
// @Summary Check a like
// @Tags likes
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} dto.LikeStatusResponse
// @Security BearerAuth
// @Router /verificar-curtida/{id} [get]
func (h *likeHandler) isLiked(c *gin.Context) {
	userID, ok := middleware.RequireUserID(c)
	if !ok {
		return
	}

	liked, err := h.likeService.IsLiked(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondError(c, err, h.isProduction)
		return
	}
	c.JSON(http.StatusOK, dto.LikeStatusResponse{Liked: liked})
}

// listFavorites godoc
// @Summary My favorites
// @Tags likes
// @Produce json
// @Param page query int false "Page, 1-based" default(1)
// @Success 200 {object} dto.EventPageResponse
// @Security BearerAuth
// @Router /listar-meus-favoritos [get]
func (h *likeHandler) listFavorites(c *gin.Context) {
	userID, ok := middleware.RequireUserID(c)
	if !ok {
		return
	}

	page, err := h.likeService.ListFavorites(c.Request.Context(), userID, c.Query("page"))
	if err != nil {
		respondError(c, err, h.isProduction)
		return
	}
	c.JSON(http.StatusOK, dto.ToEventPageResponse(page))
}
