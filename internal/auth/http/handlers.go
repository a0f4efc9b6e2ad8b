package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kirathelegend150/devviet-backend/internal/auth"
)

// Handler serves the session endpoint. Sign-in and sign-out happen in the
// browser against the identity provider; the server only answers "who am I"
// for whatever token the client currently holds.
type Handler struct{}

func New() *Handler {
	return &Handler{}
}

// Session returns the current user, or authenticated=false for anonymous
// visitors. The frontend drives its header state from this.
func (h *Handler) Session(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusOK, gin.H{"authenticated": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"authenticated": true, "user": user})
}
