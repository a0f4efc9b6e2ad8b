package repository

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
)

const collection = "adminEmails"

// Repo reads the admin allow-list: one document per admin, each carrying an
// email field. Membership is the only capability model there is.
type Repo struct {
	store *firestore.Client
}

func NewRepo(store *firestore.Client) *Repo {
	return &Repo{store: store}
}

// IsAdmin reports whether the email appears in the allow-list collection.
func (r *Repo) IsAdmin(ctx context.Context, email string) (bool, error) {
	if email == "" {
		return false, nil
	}

	it := r.store.Collection(collection).Documents(ctx)
	defer it.Stop()

	for {
		snap, err := it.Next()
		if err == iterator.Done {
			return false, nil
		}
		if err != nil {
			return false, fmt.Errorf("list admin emails: %w", err)
		}

		var entry struct {
			Email string `firestore:"email"`
		}
		if err := snap.DataTo(&entry); err != nil {
			return false, fmt.Errorf("decode admin email %s: %w", snap.Ref.ID, err)
		}
		if entry.Email == email {
			return true, nil
		}
	}
}
