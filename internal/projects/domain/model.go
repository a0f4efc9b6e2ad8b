package domain

import "time"

// PlaceholderThumbnail is served when a project was shared without one.
const PlaceholderThumbnail = "assets/thumbnail.jpg"

// Project represents a single shared community project.
// It is intentionally storage-agnostic and used across repository and HTTP layers.
//
// Approved is a pointer because the store distinguishes an absent flag from an
// explicit false: only explicit false hides a project from the public catalog.
type Project struct {
	ID           string    `json:"id" firestore:"-"`
	Title        string    `json:"title" firestore:"title"`
	RepoURL      string    `json:"repo" firestore:"repo"`
	Thumbnail    string    `json:"thumbnail,omitempty" firestore:"thumbnail,omitempty"`
	Tags         string    `json:"tags" firestore:"tags"`
	Description  string    `json:"desc" firestore:"desc"`
	OwnerID      string    `json:"owner_id" firestore:"ownerId"`
	OwnerName    string    `json:"owner_name" firestore:"ownerName"`
	CreatedAt    time.Time `json:"created_at" firestore:"createdAt,serverTimestamp"`
	Downloads    int64     `json:"downloads" firestore:"downloads"`
	TotalDonated float64   `json:"total_donated" firestore:"totalDonated"`
	Approved     *bool     `json:"approved,omitempty" firestore:"approved"`
}

// Visible reports whether the project belongs in the public catalog.
func (p Project) Visible() bool {
	return p.Approved == nil || *p.Approved
}

// NewProject carries the caller-supplied fields of a submission. Counters,
// approval flag and creation timestamp are assigned at creation.
type NewProject struct {
	Title       string
	RepoURL     string
	Thumbnail   string
	Tags        string
	Description string
	OwnerID     string
	OwnerName   string
}
