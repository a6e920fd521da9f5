package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/reelstream/reelstream/pkg/helpers"
	"github.com/reelstream/reelstream/pkg/response"
)

// Auth is the authoritative authentication check: it verifies the session
// token's signature and expiry, then injects userID and userEmail into the
// Gin context. A missing, malformed, or expired token is the same 401.
func Auth(jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(helpers.SessionCookieName)
		if err != nil || token == "" {
			response.AbortError(c, http.StatusUnauthorized, "not logged in", nil)
			return
		}
		claims, err := jwt.Parse(token)
		if err != nil {
			response.AbortError(c, http.StatusUnauthorized, "not logged in", nil)
			return
		}
		c.Set("userID", claims.UserID)
		c.Set("userEmail", claims.Email)
		c.Next()
	}
}
