package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/letsgoparty/letsgoparty_backend/internal/core/domain"
	portssvc "github.com/letsgoparty/letsgoparty_backend/internal/core/ports/services"
	"github.com/letsgoparty/letsgoparty_backend/internal/dto"
	"github.com/letsgoparty/letsgoparty_backend/internal/middleware"
)

const (
	msgRecentListed   = "Últimos 5 eventos listados com sucesso"
	msgUpcomingListed = "Últimos 20 eventos futuros listados com sucesso"
	msgEventDeleted   = "Evento deletado com sucesso."
)

// eventHandler handles HTTP requests for events.
type eventHandler struct {
	eventService portssvc.EventSvcFacade
	apiBaseURL   string
	isProduction bool
}

func newEventHandler(es portssvc.EventSvcFacade, apiBaseURL string, isProduction bool) *eventHandler {
	return &eventHandler{
		eventService: es,
		apiBaseURL:   apiBaseURL,
		isProduction: isProduction,
	}
}

// registerPublicEventRoutes registers the anonymous event listings.
func registerPublicEventRoutes(r gin.IRouter, es portssvc.EventSvcFacade, apiBaseURL string, isProduction bool) {
	h := newEventHandler(es, apiBaseURL, isProduction)

	r.GET("/listar-eventos-recentes", h.listRecent)
	r.GET("/listar-todos-eventos", h.listUpcoming)
	r.GET("/eventos-slider", h.listSlider)
	r.GET("/listar-eventos-paginados", h.pagedListing(es.ListPaginated))
	r.GET("/filtrar-eventos", h.pagedListing(es.FilterByCategory))
	r.GET("/buscar-eventos", h.pagedListing(es.Search))
	r.GET("/buscar-eventos-data", h.pagedListing(es.SearchByDate))
	r.GET("/mostrar-evento/:id", h.getEvent)
}

// registerOwnerEventRoutes registers the event routes of the signed-in user.
func registerOwnerEventRoutes(rg gin.IRouter, es portssvc.EventSvcFacade, isProduction bool) {
	h := newEventHandler(es, "", isProduction)

	rg.GET("/listar-meus-eventos", h.listMine)
	rg.POST("/criar-evento", h.createEvent)
	events := rg.Group("/eventos")
	{
		events.GET("/:id", h.getOwnedEvent)
		events.PUT("/:id", h.updateEvent)
		events.DELETE("/:id", h.deleteEvent)
	}
}

// listRecent godoc
// @Summary Latest events
// @Description The five most recently created events.
// @Tags events
// @Produce json
// @Success 200 {object} dto.EventListResponse
// @Router /listar-eventos-recentes [get]
func (h *eventHandler) listRecent(c *gin.Context) {
	events, err := h.eventService.ListRecent(c.Request.Context())
	if err != nil {
		respondError(c, err, h.isProduction)
		return
	}
	c.JSON(http.StatusOK, dto.EventListResponse{Message: msgRecentListed, Events: dto.ToEventResponses(events)})
}

// listUpcoming godoc
// @Summary Upcoming events
// @Description Up to twenty future events, most recently created first.
// @Tags events
// @Produce json
// @Success 200 {object} dto.EventListResponse
// @Router /listar-todos-eventos [get]
func (h *eventHandler) listUpcoming(c *gin.Context) {
	events, err := h.eventService.ListUpcoming(c.Request.Context())
	if err != nil {
		respondError(c, err, h.isProduction)
		return
	}
	c.JSON(http.StatusOK, dto.EventListResponse{Message: msgUpcomingListed, Events: dto.ToEventResponses(events)})
}

// listSlider godoc
// @Summary Home page slider
// @Description The next five events by date, with absolute image URLs.
// @Tags events
// @Produce json
// @Success 200 {array} dto.SliderEventResponse
// @Router /eventos-slider [get]
func (h *eventHandler) listSlider(c *gin.Context) {
	events, err := h.eventService.ListSlider(c.Request.Context())
	if err != nil {
		respondError(c, err, h.isProduction)
		return
	}
	c.JSON(http.StatusOK, dto.ToSliderResponses(events, h.apiBaseURL))
}

// pagedListing adapts one of the paginated service listings to a handler.
// Every paginated route shares the same query shape and response body.
//
// @Summary Paginated event listings
// @Description Serves /listar-eventos-paginados, /filtrar-eventos, /buscar-eventos and /buscar-eventos-data.
// @Tags events
// @Produce json
// @Param page query int false "Page, 1-based" default(1)
// @Param limit query int false "Page size" default(20)
// @Param category query string false "Category"
// @Param search query string false "Free text"
// @Param dateFilter query string false "hoje, amanha, esta-semana, este-fim-de-semana, este-mes"
// @Param startDate query string false "YYYY-MM-DD"
// @Param endDate query string false "YYYY-MM-DD"
// @Success 200 {object} dto.EventPageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /listar-eventos-paginados [get]
func (h *eventHandler) pagedListing(list func(ctx context.Context, q dto.EventListQuery) (*domain.EventPage, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		var q dto.EventListQuery
		if err := c.ShouldBindQuery(&q); err != nil {
			respondBindError(c, err, h.isProduction)
			return
		}

		page, err := list(c.Request.Context(), q)
		if err != nil {
			respondError(c, err, h.isProduction)
			return
		}
		c.JSON(http.StatusOK, dto.ToEventPageResponse(page))
	}
}

// getEvent godoc
// @Summary Show an event
// @Tags events
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} dto.EventDetailResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /mostrar-evento/{id} [get]
func (h *eventHandler) getEvent(c *gin.Context) {
	event, err := h.eventService.GetEvent(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, h.isProduction)
		return
	}
	c.JSON(http.StatusOK, dto.EventDetailResponse{Event: dto.ToEventResponse(event)})
}

// listMine godoc
// @Summary My events
// @Description Events created by the signed-in user, newest first, twenty per page.
// @Tags events
// @Produce json
// @Param page query int false "Page, 1-based" default(1)
// @Success 200 {object} dto.EventPageResponse
// @Failure 401 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /listar-meus-eventos [get]
func (h *eventHandler) listMine(c *gin.Context) {
	userID, ok := middleware.RequireUserID(c)
	if !ok {
		return
	}

	page, err := h.eventService.ListMine(c.Request.Context(), userID, c.Query("page"))
	if err != nil {
		respondError(c, err, h.isProduction)
		return
	}
	c.JSON(http.StatusOK, dto.ToEventPageResponse(page))
}

// createEvent godoc
// @Summary Create an event
// @Tags events
// @Accept multipart/form-data
// @Produce json
// @Param title formData string true "Title"
// @Param description formData string false "Description"
// @Param date formData string true "Date"
// @Param hour formData string false "Hour"
// @Param address formData string false "Street"
// @Param number formData string false "Number"
// @Param district formData string false "District"
// @Param city formData string false "City"
// @Param state formData string false "State"
// @Param local formData string false "Venue"
// @Param category formData string true "Category"
// @Param image formData file true "Cover picture (PNG or JPEG)"
// @Success 201 {object} dto.EventResponse
// @Failure 400 {object} dto.ErrorResponse "Missing fields or image"
// @Failure 401 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /criar-evento [post]
func (h *eventHandler) createEvent(c *gin.Context) {
	userID, ok := middleware.RequireUserID(c)
	if !ok {
		return
	}

	var req dto.CreateEventRequest
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

	event, err := h.eventService.CreateEvent(c.Request.Context(), userID, req, upload)
	if err != nil {
		respondError(c, err, h.isProduction)
		return
	}

	middleware.GetLoggerFromContext(c).Info("Event created", slog.String("event_id", event.EventID))
	c.JSON(http.StatusCreated, dto.ToEventResponse(event))
}

// getOwnedEvent godoc
// @Summary Get one of my events
// @Tags events
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} dto.EventResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /eventos/{id} [get]
func (h *eventHandler) getOwnedEvent(c *gin.Context) {
	userID, ok := middleware.RequireUserID(c)
	if !ok {
		return
	}

	event, err := h.eventService.GetOwnedEvent(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondError(c, err, h.isProduction)
		return
	}
	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

// updateEvent godoc
// @Summary Update one of my events
// @Description Multipart form. Omitted fields keep their value; a new image replaces the old one.
// @Tags events
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Event ID"
// @Param image formData file false "Cover picture (PNG or JPEG)"
// @Success 200 {object} dto.EventResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /eventos/{id} [put]
func (h *eventHandler) updateEvent(c *gin.Context) {
	userID, ok := middleware.RequireUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateEventRequest
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

	event, err := h.eventService.UpdateEvent(c.Request.Context(), userID, c.Param("id"), req, upload)
	if err != nil {
		respondError(c, err, h.isProduction)
		return
	}
	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

// deleteEvent godoc
// @Summary Delete one of my events
// @Tags events
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /eventos/{id} [delete]
func (h *eventHandler) deleteEvent(c *gin.Context) {
	userID, ok := middleware.RequireUserID(c)
	if !ok {
		return
	}

	eventID := c.Param("id")
	if err := h.eventService.DeleteEvent(c.Request.Context(), userID, eventID); err != nil {
		respondError(c, err, h.isProduction)
		return
	}

	middleware.GetLoggerFromContext(c).Info("Event deleted", slog.String("event_id", eventID))
	c.JSON(http.StatusOK, dto.MessageResponse{Message: msgEventDeleted})
}
