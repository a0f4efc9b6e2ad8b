package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kirathelegend150/devviet-backend/internal/auth"
	"github.com/kirathelegend150/devviet-backend/internal/projects/domain"
)

type fakeProjects struct {
	all     []domain.Project
	byOwner map[string][]domain.Project
	byID    map[string]domain.Project

	created    []domain.NewProject
	downloads  map[string]int64
	donated    map[string]float64
	donatedErr error
}

func newFakeProjects() *fakeProjects {
	return &fakeProjects{
		byOwner:   map[string][]domain.Project{},
		byID:      map[string]domain.Project{},
		downloads: map[string]int64{},
		donated:   map[string]float64{},
	}
}

func (f *fakeProjects) ListApproved(ctx context.Context) ([]domain.Project, error) {
	out := make([]domain.Project, 0, len(f.all))
	for _, p := range f.all {
		if p.Visible() {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProjects) ListByOwner(ctx context.Context, ownerID string) ([]domain.Project, error) {
	return f.byOwner[ownerID], nil
}

func (f *fakeProjects) Get(ctx context.Context, id string) (*domain.Project, error) {
	p, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &p, nil
}

func (f *fakeProjects) Create(ctx context.Context, np domain.NewProject) (string, error) {
	f.created = append(f.created, np)
	return "new-id", nil
}

func (f *fakeProjects) IncrementDownloads(ctx context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return domain.ErrNotFound
	}
	f.downloads[id]++
	return nil
}

func (f *fakeProjects) AddDonated(ctx context.Context, id string, amount float64) error {
	if f.donatedErr != nil {
		return f.donatedErr
	}
	f.donated[id] += amount
	return nil
}

type ledgerEntry struct {
	projectID string
	userID    string
	amount    float64
}

type fakeLedger struct {
	entries []ledgerEntry
}

func (f *fakeLedger) Append(ctx context.Context, projectID, userID string, amount float64) (string, error) {
	f.entries = append(f.entries, ledgerEntry{projectID: projectID, userID: userID, amount: amount})
	return "donation-id", nil
}

type fakeVerifier map[string]*auth.User

func (f fakeVerifier) Verify(ctx context.Context, idToken string) (*auth.User, error) {
	if u, ok := f[idToken]; ok {
		return u, nil
	}
	return nil, errors.New("invalid token")
}

func passthrough(c *gin.Context) { c.Next() }

func setupRouter(t *testing.T, store *fakeProjects, ledger *fakeLedger, verifier auth.TokenVerifier) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	h := New(store, ledger)
	h.Register(r.Group("/api/v1/projects"), verifier, passthrough)
	h.RegisterProfile(r.Group("/api/v1/profile"), verifier)
	return r
}

func boolPtr(b bool) *bool { return &b }

func TestList_ReturnsApprovedCards(t *testing.T) {
	store := newFakeProjects()
	store.all = []domain.Project{
		{ID: "1", Title: "First", Description: "short", OwnerName: "An", Downloads: 2},
		{ID: "2", Title: "Second", Description: "short", Thumbnail: "https://img/x.png", OwnerName: "Binh"},
	}
	r := setupRouter(t, store, &fakeLedger{}, fakeVerifier{})

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/projects", nil)
	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		OK       bool   `json:"ok"`
		Projects []Card `json:"projects"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Len(t, resp.Projects, 2)
	assert.Equal(t, domain.PlaceholderThumbnail, resp.Projects[0].Thumbnail)
	assert.Equal(t, "https://img/x.png", resp.Projects[1].Thumbnail)
	assert.Equal(t, int64(2), resp.Projects[0].Downloads)
}

func TestList_ExcludesOnlyExplicitlyUnapproved(t *testing.T) {
	store := newFakeProjects()
	store.all = []domain.Project{
		{ID: "1", Title: "Approved", Approved: boolPtr(true)},
		{ID: "2", Title: "Pending", Approved: boolPtr(false)},
		{ID: "3", Title: "Legacy"},
	}
	r := setupRouter(t, store, &fakeLedger{}, fakeVerifier{})

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/projects", nil))

	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Projects []Card `json:"projects"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Len(t, resp.Projects, 2)
	// an absent flag stays visible; only explicit false is hidden
	assert.Equal(t, "1", resp.Projects[0].ID)
	assert.Equal(t, "3", resp.Projects[1].ID)
}

func TestList_AppliesQueryFilter(t *testing.T) {
	store := newFakeProjects()
	store.all = []domain.Project{
		{ID: "1", Title: "Go Chat", Tags: "go"},
		{ID: "2", Title: "Todo App", Tags: "react"},
	}
	r := setupRouter(t, store, &fakeLedger{}, fakeVerifier{})

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/projects?q=chat", nil)
	r.ServeHTTP(rr, req)

	var resp struct {
		Projects []Card `json:"projects"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Len(t, resp.Projects, 1)
	assert.Equal(t, "1", resp.Projects[0].ID)
}

func TestList_SummaryTruncatedTo140(t *testing.T) {
	long := make([]rune, 0, 200)
	for i := 0; i < 200; i++ {
		long = append(long, 'x')
	}
	store := newFakeProjects()
	store.all = []domain.Project{{ID: "1", Title: "Long", Description: string(long)}}
	r := setupRouter(t, store, &fakeLedger{}, fakeVerifier{})

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/projects", nil))

	var resp struct {
		Projects []Card `json:"projects"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Len(t, []rune(resp.Projects[0].Summary), 140)
}

func TestGet_NotFound(t *testing.T) {
	r := setupRouter(t, newFakeProjects(), &fakeLedger{}, fakeVerifier{})

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/projects/missing", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestGet_AppliesDetailDefaults(t *testing.T) {
	store := newFakeProjects()
	store.byID["1"] = domain.Project{ID: "1"}
	r := setupRouter(t, store, &fakeLedger{}, fakeVerifier{})

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/projects/1", nil))

	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Project Detail `json:"project"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "—", resp.Project.Title)
	assert.Equal(t, "—", resp.Project.Description)
	assert.Equal(t, "#", resp.Project.RepoURL)
	assert.Equal(t, "Unknown", resp.Project.OwnerName)
	assert.Equal(t, domain.PlaceholderThumbnail, resp.Project.Thumbnail)
}

func TestSubmit_RequiresAuth(t *testing.T) {
	store := newFakeProjects()
	r := setupRouter(t, store, &fakeLedger{}, fakeVerifier{})

	body := bytes.NewBufferString(`{"title":"My Project","repo":"https://github.com/a/b"}`)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/v1/projects", body))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Empty(t, store.created)
}

func TestSubmit_ValidationRejectsWithoutWrite(t *testing.T) {
	verifier := fakeVerifier{"tok": {UID: "u1", DisplayName: "An", Email: "an@example.com"}}

	cases := []struct {
		name string
		body string
	}{
		{"short title", `{"title":"ab","repo":"https://github.com/a/b"}`},
		{"short repo", `{"title":"My Project","repo":"short.ly"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := newFakeProjects()
			r := setupRouter(t, store, &fakeLedger{}, verifier)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/projects", bytes.NewBufferString(tc.body))
			req.Header.Set("Authorization", "Bearer tok")
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, req)

			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.Empty(t, store.created)
		})
	}
}

func TestSubmit_CreatesUnapprovedProjectWithOwner(t *testing.T) {
	store := newFakeProjects()
	verifier := fakeVerifier{"tok": {UID: "u1", DisplayName: "An", Email: "an@example.com"}}
	r := setupRouter(t, store, &fakeLedger{}, verifier)

	body := bytes.NewBufferString(`{"title":"  My Project  ","repo":"https://github.com/a/b","tags":"Go,Web","desc":" demo "}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/projects", body)
	req.Header.Set("Authorization", "Bearer tok")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code)
	require.Len(t, store.created, 1)

	np := store.created[0]
	assert.Equal(t, "My Project", np.Title)
	assert.Equal(t, "go,web", np.Tags)
	assert.Equal(t, "demo", np.Description)
	assert.Equal(t, "u1", np.OwnerID)
	assert.Equal(t, "An", np.OwnerName)
}

func TestSubmit_OwnerNameFallsBackToEmail(t *testing.T) {
	store := newFakeProjects()
	verifier := fakeVerifier{"tok": {UID: "u1", Email: "an@example.com"}}
	r := setupRouter(t, store, &fakeLedger{}, verifier)

	body := bytes.NewBufferString(`{"title":"My Project","repo":"https://github.com/a/b"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/projects", body)
	req.Header.Set("Authorization", "Bearer tok")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "an@example.com", store.created[0].OwnerName)
}

func TestDownload_IncrementsCounterPerRequest(t *testing.T) {
	store := newFakeProjects()
	store.byID["1"] = domain.Project{ID: "1", Title: "First"}
	r := setupRouter(t, store, &fakeLedger{}, fakeVerifier{})

	for i := 0; i < 3; i++ {
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/v1/projects/1/download", nil))
		require.Equal(t, http.StatusOK, rr.Code)
	}

	assert.Equal(t, int64(3), store.downloads["1"])
}

func TestDownload_NotFound(t *testing.T) {
	r := setupRouter(t, newFakeProjects(), &fakeLedger{}, fakeVerifier{})

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/v1/projects/missing/download", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestDonate_RequiresAuth(t *testing.T) {
	store := newFakeProjects()
	ledger := &fakeLedger{}
	r := setupRouter(t, store, ledger, fakeVerifier{})

	body := bytes.NewBufferString(`{"amount":50}`)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/v1/projects/1/donate", body))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Empty(t, ledger.entries)
	assert.Empty(t, store.donated)
}

func TestDonate_RejectsNonPositiveAmount(t *testing.T) {
	verifier := fakeVerifier{"tok": {UID: "u1", Email: "an@example.com"}}

	for _, body := range []string{`{"amount":0}`, `{"amount":-5}`, `{}`} {
		store := newFakeProjects()
		ledger := &fakeLedger{}
		r := setupRouter(t, store, ledger, verifier)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/projects/1/donate", bytes.NewBufferString(body))
		req.Header.Set("Authorization", "Bearer tok")
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Empty(t, ledger.entries)
		assert.Empty(t, store.donated)
	}
}

func TestDonate_AppendsLedgerAndIncrementsTotal(t *testing.T) {
	store := newFakeProjects()
	ledger := &fakeLedger{}
	verifier := fakeVerifier{"tok": {UID: "u1", Email: "an@example.com"}}
	r := setupRouter(t, store, ledger, verifier)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/projects/p1/donate", bytes.NewBufferString(`{"amount":75}`))
	req.Header.Set("Authorization", "Bearer tok")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code)
	require.Len(t, ledger.entries, 1)
	assert.Equal(t, ledgerEntry{projectID: "p1", userID: "u1", amount: 75}, ledger.entries[0])
	assert.Equal(t, float64(75), store.donated["p1"])
}

func TestDonate_TotalUpdateFailureLeavesLedgerEntry(t *testing.T) {
	store := newFakeProjects()
	store.donatedErr = errors.New("store unavailable")
	ledger := &fakeLedger{}
	verifier := fakeVerifier{"tok": {UID: "u1", Email: "an@example.com"}}
	r := setupRouter(t, store, ledger, verifier)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/projects/p1/donate", bytes.NewBufferString(`{"amount":75}`))
	req.Header.Set("Authorization", "Bearer tok")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	// the two writes are independent: the ledger entry survives the failed total
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Len(t, ledger.entries, 1)
	assert.Empty(t, store.donated)
}

func TestMyProjects_RequiresAuth(t *testing.T) {
	r := setupRouter(t, newFakeProjects(), &fakeLedger{}, fakeVerifier{})

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/profile/projects", nil))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestMyProjects_ListsOwnOnly(t *testing.T) {
	store := newFakeProjects()
	store.byOwner["u1"] = []domain.Project{
		{ID: "1", Title: "Mine", Description: "d", Approved: boolPtr(false)},
	}
	verifier := fakeVerifier{"tok": {UID: "u1", Email: "an@example.com"}}
	r := setupRouter(t, store, &fakeLedger{}, verifier)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/profile/projects", nil)
	req.Header.Set("Authorization", "Bearer tok")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Projects []struct {
			ID    string `json:"id"`
			Title string `json:"title"`
		} `json:"projects"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Len(t, resp.Projects, 1)
	assert.Equal(t, "Mine", resp.Projects[0].Title)
}

func TestMyProjects_EmptyResultIsEmptyArray(t *testing.T) {
	verifier := fakeVerifier{"tok": {UID: "u1", Email: "an@example.com"}}
	r := setupRouter(t, newFakeProjects(), &fakeLedger{}, verifier)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/profile/projects", nil)
	req.Header.Set("Authorization", "Bearer tok")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"projects":[]`)
}
