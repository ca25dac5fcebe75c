package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"calendar-assistant/internal/auth"
	"calendar-assistant/internal/middleware"
	"calendar-assistant/pkg/response"
)

// BeginAuth godoc
// @Summary     Start Google authorization
// @Description Issues the anti-forgery state cookie and redirects to Google's consent screen.
// @Tags        Auth
// @Success     302
// @Router      /auth/google [GET]
func (h *handler) BeginAuth(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.BeginAuth(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.BeginAuth: %v", err)
		response.InternalError(c, err)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(StateCookieName, out.State, StateCookieMaxAge, "/", "", true, true)
	c.Redirect(http.StatusFound, out.URL)
}

// Callback godoc
// @Summary     OAuth callback
// @Description Verifies the anti-forgery state, exchanges the code and establishes the session.
// @Tags        Auth
// @Param       code  query string true  "Authorization code"
// @Param       state query string true  "Anti-forgery state"
// @Success     200 {string} string "Authenticated"
// @Failure     400 {string} string "Invalid OAuth state / no refresh token"
// @Router      /oauth2/callback [GET]
func (h *handler) Callback(c *gin.Context) {
	ctx := c.Request.Context()

	code := c.Query("code")
	state := c.Query("state")
	stateCookie, err := c.Cookie(StateCookieName)
	if code == "" || state == "" || err != nil || stateCookie == "" || state != stateCookie {
		c.String(http.StatusBadRequest, "Invalid OAuth state")
		return
	}

	out, err := h.uc.HandleCallback(ctx, code)
	if err != nil {
		h.l.Errorf(ctx, "uc.HandleCallback: %v", err)
		if err == auth.ErrNoRefreshToken {
			c.String(http.StatusBadRequest, "No refresh token. Remove app access at myaccount.google.com/permissions and retry.")
			return
		}
		c.String(http.StatusBadRequest, "Authorization failed")
		return
	}

	expiresAt := time.Now().Add(time.Duration(SessionCookieMaxAge) * time.Second)
	session := auth.SignSession(h.sessionSecret, out.Email, expiresAt)

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookieName, session, SessionCookieMaxAge, "/", "", true, true)
	c.SetCookie(StateCookieName, "", -1, "/", "", true, true)
	c.String(http.StatusOK, "Authenticated. You can now call /api/calendar endpoints.")
}

// Me godoc
// @Summary     Current user
// @Description Returns the signed-in user's email.
// @Tags        Auth
// @Produce     json
// @Success     200 {object} map[string]string
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/me [GET]
func (h *handler) Me(c *gin.Context) {
	email := c.GetString(middleware.ContextKeyEmail)
	c.JSON(http.StatusOK, gin.H{"email": email})
}

// Logout godoc
// @Summary     Logout
// @Description Clears the session cookie.
// @Tags        Auth
// @Success     302
// @Router      /logout [GET]
func (h *handler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", true, true)
	c.Redirect(http.StatusFound, "/")
}
