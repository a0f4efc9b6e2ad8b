package http

import (
	"context"

	"github.com/kirathelegend150/devviet-backend/internal/projects/domain"
)

// summaryLimit caps the description shown on a catalog card.
const summaryLimit = 140

// ProjectStore is the slice of the project repository these handlers need.
// Production passes the Firestore-backed repository; tests pass a fake.
type ProjectStore interface {
	ListApproved(ctx context.Context) ([]domain.Project, error)
	ListByOwner(ctx context.Context, ownerID string) ([]domain.Project, error)
	Get(ctx context.Context, id string) (*domain.Project, error)
	Create(ctx context.Context, np domain.NewProject) (string, error)
	IncrementDownloads(ctx context.Context, id string) error
	AddDonated(ctx context.Context, id string, amount float64) error
}

// DonationLedger appends donation entries. Append-only by contract.
type DonationLedger interface {
	Append(ctx context.Context, projectID, userID string, amount float64) (string, error)
}

// Card is the summary shape the catalog and profile pages render.
type Card struct {
	ID           string  `json:"id"`
	Title        string  `json:"title"`
	Thumbnail    string  `json:"thumbnail"`
	Summary      string  `json:"summary"`
	Tags         string  `json:"tags"`
	OwnerName    string  `json:"owner_name"`
	Downloads    int64   `json:"downloads"`
	TotalDonated float64 `json:"total_donated"`
}

// Detail is the full record shape for the detail page, with defaults applied
// for absent optional fields.
type Detail struct {
	ID           string  `json:"id"`
	Title        string  `json:"title"`
	Description  string  `json:"desc"`
	RepoURL      string  `json:"repo"`
	Thumbnail    string  `json:"thumbnail"`
	Tags         string  `json:"tags"`
	OwnerName    string  `json:"owner_name"`
	Downloads    int64   `json:"downloads"`
	TotalDonated float64 `json:"total_donated"`
}

func toCard(p domain.Project) Card {
	return Card{
		ID:           p.ID,
		Title:        p.Title,
		Thumbnail:    orDefault(p.Thumbnail, domain.PlaceholderThumbnail),
		Summary:      truncate(p.Description, summaryLimit),
		Tags:         p.Tags,
		OwnerName:    orDefault(p.OwnerName, "Unknown"),
		Downloads:    p.Downloads,
		TotalDonated: p.TotalDonated,
	}
}

func toCards(list []domain.Project) []Card {
	out := make([]Card, 0, len(list))
	for _, p := range list {
		out = append(out, toCard(p))
	}
	return out
}

func toDetail(p domain.Project) Detail {
	return Detail{
		ID:           p.ID,
		Title:        orDefault(p.Title, "—"),
		Description:  orDefault(p.Description, "—"),
		RepoURL:      orDefault(p.RepoURL, "#"),
		Thumbnail:    orDefault(p.Thumbnail, domain.PlaceholderThumbnail),
		Tags:         p.Tags,
		OwnerName:    orDefault(p.OwnerName, "Unknown"),
		Downloads:    p.Downloads,
		TotalDonated: p.TotalDonated,
	}
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

// truncate caps s at limit characters, not bytes.
func truncate(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit])
}
