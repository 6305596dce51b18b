package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/showcasehq/showcase/pkg/errors"
)

// snapshotHeader identifies which aggregation a response was served from, so
// consecutive responses can be correlated against cache refreshes.
const snapshotHeader = "X-Snapshot-Id"

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleProjects returns the aggregated list, pinned entries first.
// ?refresh=true bypasses a fresh cache.
func (s *Server) handleProjects(w http.ResponseWriter, r *http.Request) {
	force := r.URL.Query().Get("refresh") == "true"
	projects := s.svc.FetchProjects(r.Context(), force)
	w.Header().Set(snapshotHeader, s.svc.SnapshotID())
	writeJSON(w, http.StatusOK, projects)
}

func (s *Server) handleProject(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	p, ok := s.svc.ProjectBySlug(r.Context(), slug)
	if !ok {
		writeError(w, errors.New(errors.ErrCodeProjectNotFound, "no project with slug %q", slug))
		return
	}
	w.Header().Set(snapshotHeader, s.svc.SnapshotID())
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	groups := s.svc.ProjectsByCategory(r.Context())
	w.Header().Set(snapshotHeader, s.svc.SnapshotID())
	writeJSON(w, http.StatusOK, groups)
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	stats := s.svc.ProjectStats(r.Context())
	w.Header().Set(snapshotHeader, s.svc.SnapshotID())
	writeJSON(w, http.StatusOK, stats)
}

func (s *Server) handleMenu(w http.ResponseWriter, r *http.Request) {
	sections := s.svc.MenuItems(r.Context())
	w.Header().Set(snapshotHeader, s.svc.SnapshotID())
	writeJSON(w, http.StatusOK, sections)
}

// handleReadme proxies the rendered README of one of the owner's
// repositories.
func (s *Server) handleReadme(w http.ResponseWriter, r *http.Request) {
	repo := chi.URLParam(r, "repo")
	html, ok := s.readmes.FetchReadmeHTML(r.Context(), s.owner, repo)
	if !ok {
		writeError(w, errors.New(errors.ErrCodeReadmeNotFound, "no readme for repository %q", repo))
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(html))
}
