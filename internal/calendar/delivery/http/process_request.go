package http

import (
	"github.com/gin-gonic/gin"

	gcal "google.golang.org/api/calendar/v3"
)

// processListReq binds and validates the list events query parameters.
func (h *handler) processListReq(c *gin.Context) (listEventsReq, error) {
	var req listEventsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processCreateReq binds the event payload. No validation beyond decoding;
// the calendar API is the authority on event shape.
func (h *handler) processCreateReq(c *gin.Context) (*gcal.Event, error) {
	var event gcal.Event
	if err := c.ShouldBindJSON(&event); err != nil {
		return nil, err
	}
	return &event, nil
}

// processScheduleReq binds and validates the natural-language request body.
func (h *handler) processScheduleReq(c *gin.Context) (scheduleReq, error) {
	var req scheduleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}
