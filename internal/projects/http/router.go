package http

import (
	"github.com/gin-gonic/gin"

	"github.com/kirathelegend150/devviet-backend/internal/auth"
)

// Register attaches project routes. Catalog and detail are public; submit
// and donate require a signed-in user; download is public by design.
func (h *Handler) Register(rg *gin.RouterGroup, verifier auth.TokenVerifier, writeLimit gin.HandlerFunc) {
	rg.GET("", h.list)
	rg.GET("/:id", h.get)
	rg.POST("/:id/download", writeLimit, h.download)
	rg.POST("", writeLimit, auth.RequireUser(verifier), h.submit)
	rg.POST("/:id/donate", writeLimit, auth.RequireUser(verifier), h.donate)
}

// RegisterProfile attaches the profile listing under its own group.
func (h *Handler) RegisterProfile(rg *gin.RouterGroup, verifier auth.TokenVerifier) {
	rg.GET("/projects", auth.RequireUser(verifier), h.myProjects)
}
