package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/showcasehq/showcase/pkg/github"
	"github.com/showcasehq/showcase/pkg/portfolio"
)

type fakeSource struct {
	entries []github.RepoWithReadme
	calls   int
}

func (f *fakeSource) ListRepositoriesWithReadme(_ context.Context, _ string) []github.RepoWithReadme {
	f.calls++
	return f.entries
}

type fakeReadmes struct {
	html map[string]string
}

func (f *fakeReadmes) FetchReadmeHTML(_ context.Context, _, repo string) (string, bool) {
	html, ok := f.html[repo]
	return html, ok
}

func readmeWithMeta(name, slug string) string {
	return "<!-- PROJECT-META-START -->\n" +
		"project:\n" +
		"  name: " + name + "\n" +
		"  slug: " + slug + "\n" +
		"  metrics:\n" +
		"    business_value: 5\n    complexity: 5\n    time_spent: 5\n    fun_rating: 5\n" +
		"<!-- PROJECT-META-END -->"
}

func newTestServer(t *testing.T) (*Server, *fakeSource) {
	t.Helper()
	src := &fakeSource{entries: []github.RepoWithReadme{
		{
			Repo:      github.Repo{Name: "demo", HTMLURL: "https://github.com/octocat/demo"},
			Readme:    readmeWithMeta("Demo", "demo"),
			HasReadme: true,
		},
	}}
	svc := portfolio.NewService(src, "octocat",
		portfolio.WithServiceLogger(log.NewWithOptions(io.Discard, log.Options{})),
	)
	readmes := &fakeReadmes{html: map[string]string{"demo": "<h1>Demo</h1>"}}
	s := New(":0", svc, readmes, "octocat",
		WithLogger(log.NewWithOptions(io.Discard, log.Options{})),
	)
	return s, src
}

func do(t *testing.T, s *Server, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func TestHealthz(t *testing.T) {
	s, _ := newTestServer(t)
	rec := do(t, s, http.MethodGet, "/healthz")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestGetProjects(t *testing.T) {
	s, _ := newTestServer(t)
	rec := do(t, s, http.MethodGet, "/api/projects")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Snapshot-Id"))

	var projects []portfolio.Project
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &projects))
	require.Len(t, projects, len(portfolio.PinnedProjects())+1)
	assert.Equal(t, "nimbus-analytics-launch", projects[0].Slug)
	assert.Equal(t, "demo", projects[len(projects)-1].Slug)
}

func TestGetProjects_RefreshQuery(t *testing.T) {
	s, src := newTestServer(t)

	do(t, s, http.MethodGet, "/api/projects")
	do(t, s, http.MethodGet, "/api/projects")
	assert.Equal(t, 1, src.calls, "second request within the TTL is served from cache")

	do(t, s, http.MethodGet, "/api/projects?refresh=true")
	assert.Equal(t, 2, src.calls, "refresh=true bypasses the cache")
}

func TestGetProjects_SnapshotHeaderStableAcrossCacheHits(t *testing.T) {
	s, _ := newTestServer(t)

	first := do(t, s, http.MethodGet, "/api/projects")
	second := do(t, s, http.MethodGet, "/api/projects")
	assert.Equal(t, first.Header().Get("X-Snapshot-Id"), second.Header().Get("X-Snapshot-Id"))

	refreshed := do(t, s, http.MethodGet, "/api/projects?refresh=true")
	assert.NotEqual(t, first.Header().Get("X-Snapshot-Id"), refreshed.Header().Get("X-Snapshot-Id"))
}

func TestGetProjectBySlug(t *testing.T) {
	s, _ := newTestServer(t)
	rec := do(t, s, http.MethodGet, "/api/projects/demo")

	require.Equal(t, http.StatusOK, rec.Code)
	var p portfolio.Project
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &p))
	assert.Equal(t, "Demo", p.Name)
}

func TestGetProjectBySlug_NotFound(t *testing.T) {
	s, _ := newTestServer(t)
	rec := do(t, s, http.MethodGet, "/api/projects/no-such-project")

	require.Equal(t, http.StatusNotFound, rec.Code)

	var body errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "PROJECT_NOT_FOUND", body.Error.Code)
}

func TestGetCategories(t *testing.T) {
	s, _ := newTestServer(t)
	rec := do(t, s, http.MethodGet, "/api/categories")

	require.Equal(t, http.StatusOK, rec.Code)
	var groups map[string][]portfolio.Project
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &groups))
	assert.Len(t, groups["project"], 1, "defaulted category carries the extracted project")
	assert.Len(t, groups["product-management"], 2)
}

func TestGetStats(t *testing.T) {
	s, _ := newTestServer(t)
	rec := do(t, s, http.MethodGet, "/api/stats")

	require.Equal(t, http.StatusOK, rec.Code)
	var stats portfolio.Stats
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Equal(t, len(portfolio.PinnedProjects())+1, stats.Total)
	assert.Equal(t, 1, stats.ByStatus["active"])
}

func TestGetMenu(t *testing.T) {
	s, _ := newTestServer(t)
	rec := do(t, s, http.MethodGet, "/api/menu")

	require.Equal(t, http.StatusOK, rec.Code)
	var sections []portfolio.MenuSection
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sections))
	require.NotEmpty(t, sections)
	assert.Equal(t, "Home", sections[0].Title)
}

func TestGetReadme(t *testing.T) {
	s, _ := newTestServer(t)
	rec := do(t, s, http.MethodGet, "/api/repos/demo/readme")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Equal(t, "<h1>Demo</h1>", rec.Body.String())
}

func TestGetReadme_NotFound(t *testing.T) {
	s, _ := newTestServer(t)
	rec := do(t, s, http.MethodGet, "/api/repos/unknown/readme")

	require.Equal(t, http.StatusNotFound, rec.Code)
	var body errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "README_NOT_FOUND", body.Error.Code)
}

func TestShutdown(t *testing.T) {
	s, _ := newTestServer(t)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.NoError(t, s.Shutdown(ctx))
}
