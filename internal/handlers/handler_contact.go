package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/letsgoparty/letsgoparty_backend/internal/core/ports/services"
	"github.com/letsgoparty/letsgoparty_backend/internal/dto"
)

const msgContactSent = "Mensagem enviada com sucesso. Entraremos em contato em breve."

type contactHandler struct {
	contactService portssvc.ContactSvc
	isProduction   bool
}

func registerContactRoutes(r gin.IRouter, cs portssvc.ContactSvc, isProduction bool) {
	h := &contactHandler{contactService: cs, isProduction: isProduction}
	r.POST("/contato", h.sendContact)
}

// sendContact godoc
// @Summary Contact form
// @Description Relays the message to the support inbox with Reply-To set to the sender.
// @Tags contact
// @Accept json
// @Produce json
// @Param body body dto.ContactRequest true "Message"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse "Missing fields"
// @Failure 500 {object} dto.ErrorResponse "Mail relay failed"
// @Router /contato [post]
func (h *contactHandler) sendContact(c *gin.Context) {
	var req dto.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, h.isProduction)
		return
	}

	if err := h.contactService.Send(c.Request.Context(), req); err != nil {
		respondError(c, err, h.isProduction)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: msgContactSent})
}
