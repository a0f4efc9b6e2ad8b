package repository

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/kirathelegend150/devviet-backend/internal/projects/domain"
)

const collection = "projects"

// Repo provides persistence operations for projects on top of the document store.
type Repo struct {
	store *firestore.Client
}

func NewRepo(store *firestore.Client) *Repo {
	return &Repo{store: store}
}

// Create inserts a new unapproved project and returns the assigned id.
// The creation timestamp is assigned by the store.
func (r *Repo) Create(ctx context.Context, np domain.NewProject) (string, error) {
	if np.OwnerID == "" {
		return "", fmt.Errorf("owner id required")
	}

	approved := false
	p := domain.Project{
		Title:        np.Title,
		RepoURL:      np.RepoURL,
		Thumbnail:    np.Thumbnail,
		Tags:         np.Tags,
		Description:  np.Description,
		OwnerID:      np.OwnerID,
		OwnerName:    np.OwnerName,
		Downloads:    0,
		TotalDonated: 0,
		Approved:     &approved,
	}

	ref, _, err := r.store.Collection(collection).Add(ctx, p)
	if err != nil {
		return "", fmt.Errorf("create project: %w", err)
	}
	return ref.ID, nil
}

// Get returns a single project by id, or domain.ErrNotFound.
func (r *Repo) Get(ctx context.Context, id string) (*domain.Project, error) {
	snap, err := r.store.Collection(collection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get project: %w", err)
	}

	var p domain.Project
	if err := snap.DataTo(&p); err != nil {
		return nil, fmt.Errorf("decode project %s: %w", id, err)
	}
	p.ID = snap.Ref.ID
	return &p, nil
}

// ListApproved returns the public catalog: every project whose approval flag
// is not explicitly false, newest first. The flag is filtered in memory so
// that records written before the flag existed stay visible.
func (r *Repo) ListApproved(ctx context.Context) ([]domain.Project, error) {
	all, err := r.list(r.store.Collection(collection).OrderBy("createdAt", firestore.Desc).Documents(ctx))
	if err != nil {
		return nil, err
	}

	out := make([]domain.Project, 0, len(all))
	for _, p := range all {
		if p.Visible() {
			out = append(out, p)
		}
	}
	return out, nil
}

// ListAll returns every project, approved or not. Moderation and leaderboard use.
func (r *Repo) ListAll(ctx context.Context) ([]domain.Project, error) {
	return r.list(r.store.Collection(collection).Documents(ctx))
}

// ListByOwner returns the projects owned by the given user.
func (r *Repo) ListByOwner(ctx context.Context, ownerID string) ([]domain.Project, error) {
	return r.list(r.store.Collection(collection).Where("ownerId", "==", ownerID).Documents(ctx))
}

// IncrementDownloads adds 1 to the project's download counter using the
// store's atomic increment, so concurrent downloads never lose updates.
func (r *Repo) IncrementDownloads(ctx context.Context, id string) error {
	_, err := r.store.Collection(collection).Doc(id).Update(ctx, []firestore.Update{
		{Path: "downloads", Value: firestore.Increment(1)},
	})
	if status.Code(err) == codes.NotFound {
		return domain.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("increment downloads: %w", err)
	}
	return nil
}

// AddDonated atomically adds amount to the project's donation total.
func (r *Repo) AddDonated(ctx context.Context, id string, amount float64) error {
	_, err := r.store.Collection(collection).Doc(id).Update(ctx, []firestore.Update{
		{Path: "totalDonated", Value: firestore.Increment(amount)},
	})
	if status.Code(err) == codes.NotFound {
		return domain.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("add donated: %w", err)
	}
	return nil
}

// SetApproved flips the approval flag.
func (r *Repo) SetApproved(ctx context.Context, id string, approved bool) error {
	_, err := r.store.Collection(collection).Doc(id).Update(ctx, []firestore.Update{
		{Path: "approved", Value: approved},
	})
	if status.Code(err) == codes.NotFound {
		return domain.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("set approved: %w", err)
	}
	return nil
}

// Delete removes the project record. The donation ledger keeps any entries
// that reference it.
func (r *Repo) Delete(ctx context.Context, id string) error {
	if _, err := r.store.Collection(collection).Doc(id).Delete(ctx); err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	return nil
}

func (r *Repo) list(it *firestore.DocumentIterator) ([]domain.Project, error) {
	defer it.Stop()

	out := make([]domain.Project, 0, 16)
	for {
		snap, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list projects: %w", err)
		}

		var p domain.Project
		if err := snap.DataTo(&p); err != nil {
			return nil, fmt.Errorf("decode project %s: %w", snap.Ref.ID, err)
		}
		p.ID = snap.Ref.ID
		out = append(out, p)
	}
	return out, nil
}
