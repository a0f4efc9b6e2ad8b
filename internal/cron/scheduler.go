package cronjob

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// Warmer recomputes a cached result ahead of demand.
type Warmer interface {
	Warm(ctx context.Context) error
}

type Scheduler struct {
	c *cron.Cron
}

func NewScheduler() *Scheduler {
	return &Scheduler{c: cron.New(cron.WithSeconds())}
}

// AddWarm schedules a cache warm on the given cron spec.
func (s *Scheduler) AddWarm(spec string, w Warmer) error {
	_, err := s.c.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := w.Warm(ctx); err != nil {
			log.Printf("cache warm failed: %v", err)
		}
	})
	return err
}

func (s *Scheduler) Start() {
	log.Println("Cron scheduler started")
	s.c.Start()
}

func (s *Scheduler) Stop() {
	s.c.Stop()
}
