// Package leaderboard computes the three community rankings: most projects
// shared, most donated, most downloaded.
package leaderboard

import (
	"sort"

	dondomain "github.com/kirathelegend150/devviet-backend/internal/donations/domain"
	projdomain "github.com/kirathelegend150/devviet-backend/internal/projects/domain"
)

// RankLimit is how many entries each ranking keeps.
const RankLimit = 8

type SharerRank struct {
	OwnerID  string `json:"owner_id"`
	Projects int    `json:"projects"`
}

type DonorRank struct {
	UserID string  `json:"user_id"`
	Total  float64 `json:"total"`
}

type DownloadRank struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Downloads int64  `json:"downloads"`
}

// Board is one computed leaderboard snapshot.
type Board struct {
	Sharers   []SharerRank   `json:"sharers"`
	Donors    []DonorRank    `json:"donors"`
	Downloads []DownloadRank `json:"downloads"`
}

// TopSharers counts projects per owner and returns the top n owners.
// Ties keep first-seen order.
func TopSharers(projects []projdomain.Project, n int) []SharerRank {
	counts := make(map[string]int)
	order := make([]string, 0)
	for _, p := range projects {
		if p.OwnerID == "" {
			continue
		}
		if _, seen := counts[p.OwnerID]; !seen {
			order = append(order, p.OwnerID)
		}
		counts[p.OwnerID]++
	}

	out := make([]SharerRank, 0, len(order))
	for _, owner := range order {
		out = append(out, SharerRank{OwnerID: owner, Projects: counts[owner]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Projects > out[j].Projects })
	return head(out, n)
}

// TopDonors sums donation amounts per user and returns the top n donors.
// Ties keep first-seen order.
func TopDonors(donations []dondomain.Donation, n int) []DonorRank {
	totals := make(map[string]float64)
	order := make([]string, 0)
	for _, d := range donations {
		if d.UserID == "" {
			continue
		}
		if _, seen := totals[d.UserID]; !seen {
			order = append(order, d.UserID)
		}
		totals[d.UserID] += d.Amount
	}

	out := make([]DonorRank, 0, len(order))
	for _, user := range order {
		out = append(out, DonorRank{UserID: user, Total: totals[user]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Total > out[j].Total })
	return head(out, n)
}

// TopDownloads returns the n most downloaded projects. Ties keep input order.
func TopDownloads(projects []projdomain.Project, n int) []DownloadRank {
	sorted := make([]projdomain.Project, len(projects))
	copy(sorted, projects)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Downloads > sorted[j].Downloads })

	out := make([]DownloadRank, 0, len(sorted))
	for _, p := range sorted {
		out = append(out, DownloadRank{ID: p.ID, Title: p.Title, Downloads: p.Downloads})
	}
	return head(out, n)
}

func head[T any](s []T, n int) []T {
	if len(s) > n {
		return s[:n]
	}
	return s
}
