package http

import (
	"github.com/gin-gonic/gin"

	"calendar-assistant/internal/middleware"
)

// RegisterRoutes maps the calendar and assistant routes. All of them require
// a valid session; the LLM-backed schedule route is additionally rate limited.
func RegisterRoutes(e *gin.Engine, h *handler, mw middleware.Middleware, scheduleRateLimitPerMin int) {
	events := e.Group("/api/calendar/events", mw.Auth())
	{
		events.GET("", h.List)
		events.POST("", h.Create)
	}

	e.POST("/api/assistant/schedule", mw.Auth(), middleware.RateLimit(scheduleRateLimitPerMin), h.Schedule)
}
