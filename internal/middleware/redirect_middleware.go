package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rcabrera/studentrecords/internal/pkg/auth"
)

// PageGuard is the front-door gate for browser pages. It checks only for
// the presence of the session cookie; token verification happens in
// SessionAuth on the API routes the pages call.
//
//   - no cookie + /dashboard  -> redirect to /login
//   - cookie    + /login      -> redirect to /dashboard
//   - /api/* is never redirected
func PageGuard() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if strings.HasPrefix(path, "/api") {
			c.Next()
			return
		}

		_, err := c.Cookie(auth.SessionCookieName)
		hasSession := err == nil

		if path == "/login" && hasSession {
			c.Redirect(http.StatusFound, "/dashboard")
			c.Abort()
			return
		}

		if strings.HasPrefix(path, "/dashboard") && !hasSession {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		c.Next()
	}
}
