package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kirathelegend150/devviet-backend/internal/admin"
	"github.com/kirathelegend150/devviet-backend/internal/auth"
	"github.com/kirathelegend150/devviet-backend/internal/projects/domain"
)

// ModerationStore is the slice of the project repository moderation needs:
// everything, including unapproved submissions.
type ModerationStore interface {
	ListAll(ctx context.Context) ([]domain.Project, error)
	SetApproved(ctx context.Context, id string, approved bool) error
	Delete(ctx context.Context, id string) error
}

type Handler struct {
	projects ModerationStore
}

func New(projects ModerationStore) *Handler {
	return &Handler{projects: projects}
}

// list returns every project for the moderation queue, approved or not.
func (h *Handler) list(c *gin.Context) {
	items, err := h.projects.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "projects": items})
}

// approve marks a submission as publicly visible. The frontend re-fetches
// the queue after; there is no incremental update to get out of sync.
func (h *Handler) approve(c *gin.Context) {
	id := c.Param("id")

	if err := h.projects.SetApproved(c.Request.Context(), id, true); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "project not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// remove deletes the project record. Confirmation is the frontend's job.
func (h *Handler) remove(c *gin.Context) {
	id := c.Param("id")

	if err := h.projects.Delete(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// Register guards every moderation route behind authentication plus the
// allow-list check.
func (h *Handler) Register(rg *gin.RouterGroup, verifier auth.TokenVerifier, list admin.AllowList) {
	rg.Use(auth.RequireUser(verifier), admin.Only(list))
	rg.GET("/projects", h.list)
	rg.POST("/projects/:id/approve", h.approve)
	rg.DELETE("/projects/:id", h.remove)
}
