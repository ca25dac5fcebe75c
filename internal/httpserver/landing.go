package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const landingPage = `<!DOCTYPE html>
<html>
<head><title>Calendar Assistant</title></head>
<body>
<h1>Calendar Assistant</h1>
<ul>
  <li><a href="/auth/google">Sign in with Google</a></li>
  <li><a href="/api/me">Who am I</a></li>
  <li><a href="/api/calendar/events">Upcoming events</a></li>
  <li><a href="/swagger/index.html">API docs</a></li>
  <li><a href="/logout">Logout</a></li>
</ul>
</body>
</html>
`

// landing serves a minimal index page linking the OAuth flow and the API.
func (srv HTTPServer) landing(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(landingPage))
}
