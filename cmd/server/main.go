package main

import (
	"context"
	"log"

	"github.com/kirathelegend150/devviet-backend/config"
	adminrepo "github.com/kirathelegend150/devviet-backend/internal/admin/repository"
	"github.com/kirathelegend150/devviet-backend/internal/auth"
	"github.com/kirathelegend150/devviet-backend/internal/bootstrap"
	cronjob "github.com/kirathelegend150/devviet-backend/internal/cron"
	donrepo "github.com/kirathelegend150/devviet-backend/internal/donations/repository"
	"github.com/kirathelegend150/devviet-backend/internal/leaderboard"
	projrepo "github.com/kirathelegend150/devviet-backend/internal/projects/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	ctx := context.Background()

	fb, err := bootstrap.InitFirebase(ctx, &cfg.Firebase)
	if err != nil {
		log.Fatalf("firebase: %v", err)
	}
	defer fb.Close()

	cache, err := bootstrap.OpenRedis(ctx, bootstrap.RedisOptions{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatalf("redis: %v", err)
	}
	defer cache.Close()

	projects := projrepo.NewRepo(fb.Store)
	donations := donrepo.NewRepo(fb.Store)
	admins := adminrepo.NewRepo(fb.Store)
	board := leaderboard.NewService(projects, donations, cache, cfg.Leaderboard.CacheTTL)

	sched := cronjob.NewScheduler()
	if err := sched.AddWarm(cfg.Leaderboard.WarmSchedule, board); err != nil {
		log.Fatalf("cron: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName:    "devviet-backend",
		Version:        cfg.App.Version,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		Verifier:       auth.NewFirebaseVerifier(fb.Auth),
		Projects:       projects,
		Donations:      donations,
		Admins:         admins,
		Leaderboard:    board,
	})

	log.Printf("listening on :%s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
