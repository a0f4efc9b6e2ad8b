package admin

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kirathelegend150/devviet-backend/internal/auth"
)

// AllowList answers membership checks against the admin email collection.
type AllowList interface {
	IsAdmin(ctx context.Context, email string) (bool, error)
}

// Only gates a route group to allow-listed admins. It runs after RequireUser,
// so an unauthenticated request never reaches the membership check, and a
// non-admin request never reaches the project fetch behind it.
func Only(list AllowList) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := auth.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "login required"})
			c.Abort()
			return
		}

		isAdmin, err := list.IsAdmin(c.Request.Context(), user.Email)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
			c.Abort()
			return
		}
		if !isAdmin {
			c.JSON(http.StatusForbidden, gin.H{"ok": false, "error": "admin access required"})
			c.Abort()
			return
		}

		c.Next()
	}
}
