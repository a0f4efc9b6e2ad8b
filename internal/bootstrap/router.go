package bootstrap

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	adminhttp "github.com/kirathelegend150/devviet-backend/internal/admin/http"
	adminrepo "github.com/kirathelegend150/devviet-backend/internal/admin/repository"
	httpapi "github.com/kirathelegend150/devviet-backend/internal/api/http"
	"github.com/kirathelegend150/devviet-backend/internal/api/http/middleware"
	"github.com/kirathelegend150/devviet-backend/internal/auth"
	authhttp "github.com/kirathelegend150/devviet-backend/internal/auth/http"
	donrepo "github.com/kirathelegend150/devviet-backend/internal/donations/repository"
	"github.com/kirathelegend150/devviet-backend/internal/leaderboard"
	boardhttp "github.com/kirathelegend150/devviet-backend/internal/leaderboard/http"
	projhttp "github.com/kirathelegend150/devviet-backend/internal/projects/http"
	projrepo "github.com/kirathelegend150/devviet-backend/internal/projects/repository"
)

type RouterDeps struct {
	ServiceName    string
	Version        string
	AllowedOrigins []string

	Verifier    auth.TokenVerifier
	Projects    *projrepo.Repo
	Donations   *donrepo.Repo
	Admins      *adminrepo.Repo
	Leaderboard *leaderboard.Service
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     dep.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Request-Id"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version)
	healthHandler.RegisterRoutes(r)

	api := r.Group("/api/v1")
	api.Use(auth.OptionalUser(dep.Verifier))

	// one shared bucket over the write endpoints; reads stay unthrottled
	writeLimit := middleware.RateLimit(rate.Limit(10), 20)

	authhttp.New().Register(api)

	projectHandler := projhttp.New(dep.Projects, dep.Donations)
	projectHandler.Register(api.Group("/projects"), dep.Verifier, writeLimit)
	projectHandler.RegisterProfile(api.Group("/profile"), dep.Verifier)

	boardhttp.New(dep.Leaderboard).Register(api.Group("/leaderboard"))

	adminhttp.New(dep.Projects).Register(api.Group("/admin"), dep.Verifier, dep.Admins)

	return r
}
