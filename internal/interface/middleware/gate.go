package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/reelstream/reelstream/pkg/helpers"
)

// Gate is the page-level route gate. It only checks that a session cookie is
// present — a routing concern, cheap on every navigation. Endpoints that need
// identity verify the token signature through Auth; the two tiers are
// deliberately separate.
//
// API routes and static assets are excluded from gating entirely. /login and
// /register are the public auth pages: an anonymous visitor is never
// redirected away from them, a logged-in one is sent home.
func Gate(protectedPrefixes []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path

		if strings.HasPrefix(path, "/api") || strings.HasPrefix(path, "/assets/") || path == "/favicon.ico" || path == "/healthz" {
			c.Next()
			return
		}

		token, err := c.Cookie(helpers.SessionCookieName)
		loggedIn := err == nil && token != ""

		authPage := strings.HasPrefix(path, "/login") || strings.HasPrefix(path, "/register")
		if authPage {
			if loggedIn {
				c.Redirect(http.StatusFound, "/")
				c.Abort()
				return
			}
			c.Next()
			return
		}

		if !loggedIn {
			for _, prefix := range protectedPrefixes {
				if strings.HasPrefix(path, prefix) {
					c.Redirect(http.StatusFound, "/login")
					c.Abort()
					return
				}
			}
		}
		c.Next()
	}
}
