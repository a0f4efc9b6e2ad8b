package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// RequireUser validates the bearer ID token and stores the user in context.
// Requests without a valid token are rejected with 401 and never reach the
// handler, so guarded actions perform no writes for anonymous callers.
func RequireUser(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		// OptionalUser may already have verified this request's token;
		// don't verify it a second time.
		if _, ok := CurrentUser(c); ok {
			c.Next()
			return
		}

		token := extractToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "login required"})
			c.Abort()
			return
		}

		user, err := verifier.Verify(c.Request.Context(), token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "invalid token"})
			c.Abort()
			return
		}

		setCurrentUser(c, user)
		c.Next()
	}
}

// OptionalUser extracts the user when a valid token is present but never
// aborts. Public pages use it so the session endpoint can answer for both
// signed-in and anonymous visitors.
func OptionalUser(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := extractToken(c); token != "" {
			if user, err := verifier.Verify(c.Request.Context(), token); err == nil {
				setCurrentUser(c, user)
			}
		}
		c.Next()
	}
}

// extractToken extracts the Bearer token from the Authorization header
func extractToken(c *gin.Context) string {
	bearerToken := c.GetHeader("Authorization")
	if len(bearerToken) > 7 && strings.HasPrefix(bearerToken, "Bearer ") {
		return bearerToken[7:]
	}
	return ""
}
