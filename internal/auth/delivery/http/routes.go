package http

import (
	"github.com/gin-gonic/gin"

	"calendar-assistant/internal/middleware"
)

// RegisterRoutes maps the OAuth flow and session routes.
// The callback and logout stay unauthenticated; /api/me requires a session.
func RegisterRoutes(e *gin.Engine, h *handler, mw middleware.Middleware) {
	e.GET("/auth/google", h.BeginAuth)
	e.GET("/oauth2/callback", h.Callback)
	e.GET("/logout", h.Logout)
	e.GET("/api/me", mw.Auth(), h.Me)
}
