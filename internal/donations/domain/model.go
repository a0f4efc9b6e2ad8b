package domain

import (
	"errors"
	"time"
)

var ErrInvalidAmount = errors.New("donation amount must be positive")

// Donation is a single ledger entry. Entries are append-only: nothing in the
// system mutates or deletes them after the write.
type Donation struct {
	ID        string    `json:"id" firestore:"-"`
	ProjectID string    `json:"project_id" firestore:"projectId"`
	UserID    string    `json:"user_id" firestore:"userId"`
	Amount    float64   `json:"amount" firestore:"amount"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt,serverTimestamp"`
}
