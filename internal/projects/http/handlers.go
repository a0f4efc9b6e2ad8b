package http

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/kirathelegend150/devviet-backend/internal/auth"
	"github.com/kirathelegend150/devviet-backend/internal/projects/catalog"
	"github.com/kirathelegend150/devviet-backend/internal/projects/domain"
)

// Handler bundles the dependencies for project HTTP endpoints.
type Handler struct {
	projects  ProjectStore
	donations DonationLedger
}

func New(projects ProjectStore, donations DonationLedger) *Handler {
	return &Handler{projects: projects, donations: donations}
}

// list serves the public catalog: approved projects newest first, optionally
// narrowed by the q/tag filter. The filter runs over the fetched list in
// memory and is pure, so repeated identical queries return identical subsets.
func (h *Handler) list(c *gin.Context) {
	items, err := h.projects.ListApproved(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	q := c.Query("q")
	tag := c.Query("tag")
	if q != "" || tag != "" {
		items = catalog.Filter(items, q, tag)
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "projects": toCards(items)})
}

// get serves the detail page for one project.
func (h *Handler) get(c *gin.Context) {
	id := c.Param("id")

	p, err := h.projects.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "project not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "project": toDetail(*p)})
}

type submitReq struct {
	Title       string `json:"title"`
	RepoURL     string `json:"repo"`
	Thumbnail   string `json:"thumbnail"`
	Tags        string `json:"tags"`
	Description string `json:"desc"`
}

// submit creates a new unapproved project from the share form. Validation
// failures perform zero writes.
func (h *Handler) submit(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "login required"})
		return
	}

	var req submitReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	np := domain.NewProject{
		Title:       strings.TrimSpace(req.Title),
		RepoURL:     strings.TrimSpace(req.RepoURL),
		Thumbnail:   strings.TrimSpace(req.Thumbnail),
		Tags:        strings.ToLower(strings.TrimSpace(req.Tags)),
		Description: strings.TrimSpace(req.Description),
		OwnerID:     user.UID,
		OwnerName:   user.Name(),
	}

	if err := validate(np); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
		return
	}

	id, err := h.projects.Create(c.Request.Context(), np)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"ok": true, "id": id})
}

func validate(np domain.NewProject) error {
	if len(np.Title) < 3 {
		return domain.ErrTitleTooShort
	}
	if len(np.RepoURL) < 10 {
		return domain.ErrRepoURLTooShort
	}
	return nil
}

// download records one download via the store's atomic increment. There is
// no dedup: every request counts, matching the public download button.
func (h *Handler) download(c *gin.Context) {
	id := c.Param("id")

	if err := h.projects.IncrementDownloads(c.Request.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "project not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

type donateReq struct {
	Amount float64 `json:"amount"`
}

// donate appends a ledger entry, then bumps the project total. The two
// writes are independent: if the increment fails after the ledger write the
// total is left behind the ledger. That gap is inherited behavior and is
// reported to the caller rather than rolled back.
func (h *Handler) donate(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "login required"})
		return
	}

	id := c.Param("id")

	var req donateReq
	if err := c.ShouldBindJSON(&req); err != nil || req.Amount <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "donation amount must be positive"})
		return
	}

	donationID, err := h.donations.Append(c.Request.Context(), id, user.UID, req.Amount)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	if err := h.projects.AddDonated(c.Request.Context(), id, req.Amount); err != nil {
		log.Printf("donation %s recorded but total update failed for project %s: %v", donationID, id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "donation recorded but total update failed"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"ok": true, "donation_id": donationID})
}

// myProjects lists the current user's own submissions for the profile page,
// title and description only.
func (h *Handler) myProjects(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "login required"})
		return
	}

	items, err := h.projects.ListByOwner(c.Request.Context(), user.UID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	type ownCard struct {
		ID          string `json:"id"`
		Title       string `json:"title"`
		Description string `json:"desc"`
	}
	out := make([]ownCard, 0, len(items))
	for _, p := range items {
		out = append(out, ownCard{ID: p.ID, Title: p.Title, Description: p.Description})
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "projects": out})
}
