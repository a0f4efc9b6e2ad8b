// Package catalog holds the pure, in-memory side of the public catalog:
// text/tag filtering over an already-fetched project list. Filtering never
// re-fetches; the same inputs always yield the same subset.
package catalog

import (
	"strings"

	"github.com/kirathelegend150/devviet-backend/internal/projects/domain"
)

// Filter returns the projects whose searchable text contains query
// (case-insensitive) and, when tag is non-empty, whose tags contain tag.
// An empty query matches everything. Input order is preserved.
func Filter(list []domain.Project, query, tag string) []domain.Project {
	q := strings.ToLower(strings.TrimSpace(query))

	out := make([]domain.Project, 0, len(list))
	for _, p := range list {
		if q != "" && !strings.Contains(searchText(p), q) {
			continue
		}
		if tag != "" && !strings.Contains(p.Tags, tag) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// searchText concatenates the fields a catalog search looks at.
func searchText(p domain.Project) string {
	return strings.ToLower(p.Title + p.Description + p.Tags + p.OwnerName)
}
