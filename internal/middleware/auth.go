package middleware

import (
	"github.com/gin-gonic/gin"

	"calendar-assistant/internal/auth"
	"calendar-assistant/pkg/response"
)

// SessionCookieName is the identity cookie set on a successful OAuth callback.
const SessionCookieName = "uid"

// Auth verifies the signed session cookie and puts the asserted email into
// the gin context. Requests without a valid session get 401.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		value, err := c.Cookie(SessionCookieName)
		if err != nil || value == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		email, ok := auth.VerifySession(m.sessionSecret, value)
		if !ok {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set(ContextKeyEmail, email)
		c.Next()
	}
}
