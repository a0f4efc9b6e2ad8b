package leaderboard

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	dondomain "github.com/kirathelegend150/devviet-backend/internal/donations/domain"
	projdomain "github.com/kirathelegend150/devviet-backend/internal/projects/domain"
)

const cacheKey = "leaderboard:v1"

type ProjectLister interface {
	ListAll(ctx context.Context) ([]projdomain.Project, error)
}

type DonationLister interface {
	ListAll(ctx context.Context) ([]dondomain.Donation, error)
}

// Service computes the leaderboard from full collection scans and caches the
// result in redis. The scan has no pagination; the cache plus the cron warm
// keep that acceptable at the collection sizes this system runs at.
type Service struct {
	projects  ProjectLister
	donations DonationLister
	cache     *redis.Client
	ttl       time.Duration
}

func NewService(projects ProjectLister, donations DonationLister, cache *redis.Client, ttl time.Duration) *Service {
	return &Service{projects: projects, donations: donations, cache: cache, ttl: ttl}
}

// Get returns the current board, serving from cache when fresh.
func (s *Service) Get(ctx context.Context) (*Board, error) {
	if s.cache != nil {
		raw, err := s.cache.Get(ctx, cacheKey).Bytes()
		if err == nil {
			var b Board
			if err := json.Unmarshal(raw, &b); err == nil {
				return &b, nil
			}
			// corrupt cache entry: fall through and recompute
		}
	}

	return s.Refresh(ctx)
}

// Refresh recomputes the board and rewrites the cache entry.
func (s *Service) Refresh(ctx context.Context) (*Board, error) {
	projects, err := s.projects.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("leaderboard projects: %w", err)
	}

	donations, err := s.donations.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("leaderboard donations: %w", err)
	}

	b := &Board{
		Sharers:   TopSharers(projects, RankLimit),
		Donors:    TopDonors(donations, RankLimit),
		Downloads: TopDownloads(projects, RankLimit),
	}

	if s.cache != nil {
		if raw, err := json.Marshal(b); err == nil {
			// best effort: a failed cache write only costs the next request a recompute
			_ = s.cache.Set(ctx, cacheKey, raw, s.ttl).Err()
		}
	}

	return b, nil
}

// Warm refreshes the cache, discarding the board. The cron scheduler uses it.
func (s *Service) Warm(ctx context.Context) error {
	_, err := s.Refresh(ctx)
	return err
}
