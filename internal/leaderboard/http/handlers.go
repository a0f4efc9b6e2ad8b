package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kirathelegend150/devviet-backend/internal/leaderboard"
)

// BoardSource yields the current leaderboard snapshot.
type BoardSource interface {
	Get(ctx context.Context) (*leaderboard.Board, error)
}

type Handler struct {
	board BoardSource
}

func New(board BoardSource) *Handler {
	return &Handler{board: board}
}

func (h *Handler) get(c *gin.Context) {
	b, err := h.board.Get(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "leaderboard": b})
}

func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.get)
}
