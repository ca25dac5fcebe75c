package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"calendar-assistant/internal/middleware"
	"calendar-assistant/pkg/response"
)

// List godoc
// @Summary     List calendar events
// @Description Returns the user's events in the given window, relayed from the Google Calendar API unchanged.
// @Tags        Calendar
// @Produce     json
// @Param       timeMin query string false "RFC3339 window start (default: now)"
// @Param       timeMax query string false "RFC3339 window end (default: now+7d)"
// @Success     200 {object} map[string]interface{} "Calendar event list"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/calendar/events [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()
	email := c.GetString(middleware.ContextKeyEmail)

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	events, err := h.uc.ListEvents(ctx, req.toInput(email))
	if err != nil {
		h.l.Errorf(ctx, "uc.ListEvents: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	c.JSON(http.StatusOK, events)
}

// Create godoc
// @Summary     Create a calendar event
// @Description Forwards the event payload to the Google Calendar API and relays the created event unchanged.
// @Tags        Calendar
// @Accept      json
// @Produce     json
// @Param       body body map[string]interface{} true "Calendar event payload"
// @Success     200 {object} map[string]interface{} "Created event"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/calendar/events [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()
	email := c.GetString(middleware.ContextKeyEmail)

	event, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	created, err := h.uc.CreateEvent(ctx, createInput(email, event))
	if err != nil {
		h.l.Errorf(ctx, "uc.CreateEvent: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	c.JSON(http.StatusOK, created)
}

// Schedule godoc
// @Summary     Schedule from natural language
// @Description Translates the free-text request with one LLM call and creates the resulting event.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       body body scheduleReq true "Scheduling request"
// @Success     200 {object} map[string]interface{} "Created event"
// @Failure     400 {object} response.Resp "Missing query"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/assistant/schedule [POST]
func (h *handler) Schedule(c *gin.Context) {
	ctx := c.Request.Context()
	email := c.GetString(middleware.ContextKeyEmail)

	req, err := h.processScheduleReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	created, err := h.uc.Schedule(ctx, req.toInput(email))
	if err != nil {
		h.l.Errorf(ctx, "uc.Schedule: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	c.JSON(http.StatusOK, created)
}
