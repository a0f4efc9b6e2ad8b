package repository

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/kirathelegend150/devviet-backend/internal/donations/domain"
)

const collection = "donations"

// Repo is the append-only donation ledger.
type Repo struct {
	store *firestore.Client
}

func NewRepo(store *firestore.Client) *Repo {
	return &Repo{store: store}
}

// Append writes one ledger entry with a store-assigned timestamp and returns
// the assigned id.
func (r *Repo) Append(ctx context.Context, projectID, userID string, amount float64) (string, error) {
	if amount <= 0 {
		return "", domain.ErrInvalidAmount
	}

	d := domain.Donation{
		ProjectID: projectID,
		UserID:    userID,
		Amount:    amount,
	}

	ref, _, err := r.store.Collection(collection).Add(ctx, d)
	if err != nil {
		return "", fmt.Errorf("append donation: %w", err)
	}
	return ref.ID, nil
}

// ListAll returns the full ledger. Leaderboard use only; there is no
// pagination, matching the small write volume the system is sized for.
func (r *Repo) ListAll(ctx context.Context) ([]domain.Donation, error) {
	it := r.store.Collection(collection).Documents(ctx)
	defer it.Stop()

	out := make([]domain.Donation, 0, 16)
	for {
		snap, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list donations: %w", err)
		}

		var d domain.Donation
		if err := snap.DataTo(&d); err != nil {
			return nil, fmt.Errorf("decode donation %s: %w", snap.Ref.ID, err)
		}
		d.ID = snap.Ref.ID
		out = append(out, d)
	}
	return out, nil
}
