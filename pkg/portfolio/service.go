package portfolio

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/showcasehq/showcase/pkg/cache"
	"github.com/showcasehq/showcase/pkg/github"
	"github.com/showcasehq/showcase/pkg/observability"
)

// DefaultTTL is how long an aggregated list is served before a refresh.
const DefaultTTL = 5 * time.Minute

// snapshotKey is the store key for the persisted aggregate.
const snapshotKey = "portfolio:snapshot"

// Source lists repositories with their README text. Implemented by
// github.Client; tests substitute fakes.
type Source interface {
	ListRepositoriesWithReadme(ctx context.Context, owner string) []github.RepoWithReadme
}

// snapshot is one immutable aggregation result. A refresh replaces the whole
// snapshot; entries are never mutated in place.
type snapshot struct {
	ID        string    `json:"id"`
	Projects  []Project `json:"projects"`
	FetchedAt time.Time `json:"fetchedAt"`
}

// Service is the project aggregator. It owns the single-slot cache: empty at
// startup, populated on first aggregation, overwritten on TTL expiry or
// forced refresh, never emptied again during process lifetime.
type Service struct {
	source    Source
	owner     string
	extractor *Extractor
	pinned    []Project
	store     cache.Store
	logger    *log.Logger
	ttl       time.Duration
	clock     func() time.Time
	devMode   bool

	mu   sync.Mutex
	slot *snapshot
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithTTL overrides the cache time-to-live.
func WithTTL(ttl time.Duration) ServiceOption {
	return func(s *Service) { s.ttl = ttl }
}

// WithClock injects the time source, letting tests advance time
// deterministically instead of sleeping.
func WithClock(clock func() time.Time) ServiceOption {
	return func(s *Service) { s.clock = clock }
}

// WithStore sets the snapshot store consulted for warm starts and written
// after each refresh. Defaults to a null store.
func WithStore(store cache.Store) ServiceOption {
	return func(s *Service) { s.store = store }
}

// WithServiceLogger sets the service logger.
func WithServiceLogger(l *log.Logger) ServiceOption {
	return func(s *Service) { s.logger = l }
}

// WithExtractor sets the metadata extractor.
func WithExtractor(e *Extractor) ServiceOption {
	return func(s *Service) { s.extractor = e }
}

// WithDevMode toggles the Development menu section.
func WithDevMode(dev bool) ServiceOption {
	return func(s *Service) { s.devMode = dev }
}

// withPinned replaces the pinned list. Test-only.
func withPinned(pinned []Project) ServiceOption {
	return func(s *Service) { s.pinned = pinned }
}

// NewService creates the aggregator for the given owner's repositories.
func NewService(source Source, owner string, opts ...ServiceOption) *Service {
	s := &Service{
		source:    source,
		owner:     owner,
		extractor: NewExtractor(),
		pinned:    PinnedProjects(),
		store:     cache.NewNullStore(),
		logger:    log.Default(),
		ttl:       DefaultTTL,
		clock:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// FetchProjects returns the aggregated project list, pinned entries first.
//
// A fresh cached list is returned verbatim unless forceRefresh is set.
// Otherwise the full pipeline runs: list repositories with READMEs, extract
// metadata, keep only metadata-bearing repositories, backfill URLs, attach
// GitHub data, and cache the result. Callers always receive a valid list —
// on unexpected failure the pinned projects plus the built-in mock dataset
// are served instead, and the error never escapes.
func (s *Service) FetchProjects(ctx context.Context, forceRefresh bool) []Project {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !forceRefresh {
		if s.slot != nil && s.fresh(s.slot) {
			observability.Cache().OnCacheHit(ctx, "projects")
			return s.slot.Projects
		}
		// Empty slot: a snapshot persisted by a previous process (or another
		// instance) may still be fresh.
		if s.slot == nil {
			if snap := s.loadSnapshot(ctx); snap != nil && s.fresh(snap) {
				s.slot = snap
				observability.Cache().OnCacheHit(ctx, "snapshot")
				return snap.Projects
			}
		}
		observability.Cache().OnCacheMiss(ctx, "projects")
	}

	snap := &snapshot{
		ID:        uuid.NewString(),
		Projects:  s.aggregate(ctx),
		FetchedAt: s.clock(),
	}
	s.slot = snap
	s.storeSnapshot(ctx, snap)
	return snap.Projects
}

// aggregate runs pipeline steps 3-4 and is the system's one big recovery
// boundary: a panic anywhere inside falls back to pinned + mock data.
func (s *Service) aggregate(ctx context.Context) (list []Project) {
	start := s.clock()
	observability.Aggregation().OnRefreshStart(ctx, s.owner)

	defer func() {
		if r := recover(); r != nil {
			err, _ := r.(error)
			s.logger.Error("aggregation failed, serving fallback dataset", "owner", s.owner, "panic", r)
			observability.Aggregation().OnFallback(ctx, s.owner, err)
			list = append(append([]Project{}, s.pinned...), MockProjects()...)
		}
	}()

	list = append([]Project{}, s.pinned...)

	kept, dropped := 0, 0
	for _, entry := range s.source.ListRepositoriesWithReadme(ctx, s.owner) {
		if !entry.HasReadme {
			dropped++
			continue
		}
		repo := entry.Repo
		p, ok := s.extractor.Extract(entry.Readme, &repo)
		if !ok {
			// Intentional curation: repositories without the marker block
			// are not portfolio projects.
			s.logger.Debug("skipping repository without metadata", "repo", repo.FullName)
			dropped++
			continue
		}

		if p.RepoURL == "" {
			p.RepoURL = repo.HTMLURL
		}
		if p.DemoURL == "" {
			p.DemoURL = repo.Homepage
		}
		p.GitHubData = &GitHubData{
			Stars:     repo.Stars,
			Language:  repo.Language,
			Topics:    repo.Topics,
			CreatedAt: repo.CreatedAt,
			UpdatedAt: repo.UpdatedAt,
			PushedAt:  repo.PushedAt,
		}

		list = append(list, p)
		kept++
	}

	observability.Aggregation().OnRefreshComplete(ctx, s.owner, kept, dropped, s.clock().Sub(start), nil)
	s.logger.Info("aggregated projects", "owner", s.owner, "pinned", len(s.pinned), "extracted", kept, "skipped", dropped)
	return list
}

// ProjectBySlug returns the project with the given slug. Pinned slugs are
// answered without touching the aggregate; otherwise the cached list is
// searched (first match wins, so pinned entries shadow repository-derived
// duplicates), with the mock dataset as a last resort.
func (s *Service) ProjectBySlug(ctx context.Context, slug string) (Project, bool) {
	if pinnedSlugs[slug] {
		for _, p := range s.pinned {
			if p.Slug == slug {
				return p, true
			}
		}
	}

	for _, p := range s.FetchProjects(ctx, false) {
		if p.Slug == slug {
			return p, true
		}
	}

	for _, p := range MockProjects() {
		if p.Slug == slug {
			return p, true
		}
	}
	return Project{}, false
}

// ProjectsByCategory groups the aggregated list by category, preserving
// encounter order within each group.
func (s *Service) ProjectsByCategory(ctx context.Context) map[string][]Project {
	groups := make(map[string][]Project)
	for _, p := range s.FetchProjects(ctx, false) {
		groups[p.Category] = append(groups[p.Category], p)
	}
	return groups
}

// ProjectStats tallies counts per status, per category, and per distinct
// technology in one pass over the aggregated list.
func (s *Service) ProjectStats(ctx context.Context) Stats {
	stats := Stats{
		ByStatus:         make(map[string]int),
		ByCategory:       make(map[string]int),
		TechnologyCounts: make(map[string]int),
	}
	for _, p := range s.FetchProjects(ctx, false) {
		stats.Total++
		stats.ByStatus[p.Status]++
		stats.ByCategory[p.Category]++
		for _, tech := range p.TechStack {
			stats.TechnologyCounts[tech]++
		}
	}
	return stats
}

// SnapshotID returns the identifier of the currently cached aggregation, or
// empty when the slot has never been populated.
func (s *Service) SnapshotID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.slot == nil {
		return ""
	}
	return s.slot.ID
}

func (s *Service) fresh(snap *snapshot) bool {
	return s.clock().Sub(snap.FetchedAt) < s.ttl
}

func (s *Service) loadSnapshot(ctx context.Context) *snapshot {
	data, ok, err := s.store.Get(ctx, snapshotKey)
	if err != nil {
		s.logger.Warn("snapshot load failed", "err", err)
		return nil
	}
	if !ok {
		return nil
	}
	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		s.logger.Warn("snapshot unmarshal failed", "err", err)
		return nil
	}
	return &snap
}

func (s *Service) storeSnapshot(ctx context.Context, snap *snapshot) {
	data, err := json.Marshal(snap)
	if err != nil {
		s.logger.Warn("snapshot marshal failed", "err", err)
		return
	}
	if err := s.store.Set(ctx, snapshotKey, data, s.ttl); err != nil {
		s.logger.Warn("snapshot store failed", "err", err)
	}
}
