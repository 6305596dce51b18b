package portfolio

import (
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/showcasehq/showcase/pkg/github"
)

// Literal sentinels delimiting the metadata block in a README.
// These are byte-for-byte the markers existing READMEs carry.
const (
	metaStartMarker = "<!-- PROJECT-META-START -->"
	metaEndMarker   = "<!-- PROJECT-META-END -->"
)

// Extractor parses project metadata out of README text.
//
// Every failure mode degrades to "no metadata" rather than propagating;
// a repository without the markers, or with an unparsable block, is simply
// not a metadata-bearing project and must never abort batch processing.
type Extractor struct {
	logger *log.Logger
	intn   func(n int) int // random source for metric jitter
}

// ExtractorOption configures an Extractor.
type ExtractorOption func(*Extractor)

// WithExtractorLogger sets the logger used for parse-failure logging.
func WithExtractorLogger(l *log.Logger) ExtractorOption {
	return func(e *Extractor) { e.logger = l }
}

// WithRand sets the random source used for metric jitter.
// Tests inject a seeded source for reproducible output.
func WithRand(r *rand.Rand) ExtractorOption {
	return func(e *Extractor) { e.intn = r.Intn }
}

// NewExtractor creates an Extractor. By default metric jitter uses a
// time-seeded source; synthesized metrics are intentionally not repeatable
// across calls.
func NewExtractor(opts ...ExtractorOption) *Extractor {
	e := &Extractor{
		logger: log.Default(),
		intn:   rand.New(rand.NewSource(time.Now().UnixNano())).Intn,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// metaDoc is the top-level shape of the YAML block.
type metaDoc struct {
	Project projectDoc `yaml:"project"`
}

// projectDoc is the loosely-typed source shape. Pointer fields distinguish
// "absent" from zero values so defaults only apply when a key is missing.
type projectDoc struct {
	Name        string       `yaml:"name"`
	Slug        string       `yaml:"slug"`
	Description string       `yaml:"description"`
	Status      string       `yaml:"status"`
	Category    string       `yaml:"category"`
	TechStack   []string     `yaml:"tech_stack"`
	DemoURL     string       `yaml:"demo_url"`
	RepoURL     string       `yaml:"repo_url"`
	Priority    *int         `yaml:"priority"`
	ShowInNav   *bool        `yaml:"show_in_nav"`
	Icon        string       `yaml:"icon"`
	MenuTitle   string       `yaml:"menu_title"`
	Features    []string     `yaml:"features"`
	Screenshots []Screenshot `yaml:"screenshots"`
	Metrics     *metricsDoc  `yaml:"metrics"`
	Tags        []string     `yaml:"tags"`
	CreatedDate string       `yaml:"created_date"`
	UpdatedDate string       `yaml:"updated_date"`
}

// metricsDoc mirrors Metrics with pointer fields: the synthesizer only
// stands down when all four values are present.
type metricsDoc struct {
	BusinessValue *int `yaml:"business_value"`
	Complexity    *int `yaml:"complexity"`
	TimeSpent     *int `yaml:"time_spent"`
	FunRating     *int `yaml:"fun_rating"`
}

func (m *metricsDoc) complete() bool {
	return m != nil && m.BusinessValue != nil && m.Complexity != nil &&
		m.TimeSpent != nil && m.FunRating != nil
}

// Extract parses the metadata block out of readme and returns the normalized
// project. ghRepo may be nil; when present it feeds metric synthesis (star
// counts) but nothing else — URL backfill and GitHubData attachment belong
// to the aggregator.
//
// Returns ok=false when the readme is empty, either marker is missing, the
// YAML is unparsable, or name/slug are missing. None of these are errors:
// marker absence is how repositories opt out of the portfolio.
func (e *Extractor) Extract(readme string, ghRepo *github.Repo) (Project, bool) {
	if readme == "" {
		return Project{}, false
	}

	start := strings.Index(readme, metaStartMarker)
	if start < 0 {
		return Project{}, false
	}
	rest := readme[start+len(metaStartMarker):]
	end := strings.Index(rest, metaEndMarker)
	if end < 0 {
		return Project{}, false
	}

	block := stripFence(rest[:end])

	var doc metaDoc
	if err := yaml.Unmarshal([]byte(block), &doc); err != nil {
		repo := ""
		if ghRepo != nil {
			repo = ghRepo.FullName
		}
		e.logger.Warn("unparsable metadata block", "repo", repo, "err", err)
		return Project{}, false
	}

	p := doc.Project
	name := strings.TrimSpace(p.Name)
	slug := strings.TrimSpace(p.Slug)
	if name == "" || slug == "" {
		return Project{}, false
	}

	return e.normalize(p, name, slug, ghRepo), true
}

// normalize applies the documented defaults and resolves metrics.
func (e *Extractor) normalize(doc projectDoc, name, slug string, ghRepo *github.Repo) Project {
	p := Project{
		ID:          slug,
		Slug:        slug,
		Name:        name,
		Description: doc.Description,
		Status:      doc.Status,
		Category:    doc.Category,
		TechStack:   doc.TechStack,
		DemoURL:     doc.DemoURL,
		RepoURL:     doc.RepoURL,
		Priority:    DefaultPriority,
		ShowInNav:   true,
		Icon:        doc.Icon,
		MenuTitle:   doc.MenuTitle,
		Features:    doc.Features,
		Screenshots: doc.Screenshots,
		Tags:        doc.Tags,
		CreatedDate: doc.CreatedDate,
		UpdatedDate: doc.UpdatedDate,
	}

	if p.Status == "" {
		p.Status = "active"
	}
	if p.Category == "" {
		p.Category = "project"
	}
	if p.Icon == "" {
		p.Icon = "folder"
	}
	if doc.Priority != nil {
		p.Priority = *doc.Priority
	}
	if doc.ShowInNav != nil {
		p.ShowInNav = *doc.ShowInNav
	}
	if p.TechStack == nil {
		p.TechStack = []string{}
	}
	if p.Features == nil {
		p.Features = []string{}
	}
	if p.Screenshots == nil {
		p.Screenshots = []Screenshot{}
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}

	if doc.Metrics.complete() {
		p.Metrics = Metrics{
			BusinessValue: clampMetric(*doc.Metrics.BusinessValue),
			Complexity:    clampMetric(*doc.Metrics.Complexity),
			TimeSpent:     clampMetric(*doc.Metrics.TimeSpent),
			FunRating:     clampMetric(*doc.Metrics.FunRating),
		}
	} else {
		p.Metrics = e.SynthesizeMetrics(p, ghRepo)
	}

	return p
}

// stripFence removes a surrounding fenced code-block wrapper if present.
// The fence tag is optional and matched case-insensitively.
func stripFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	nl := strings.Index(s, "\n")
	if nl < 0 {
		return s
	}
	tag := strings.ToLower(strings.TrimSpace(s[3:nl]))
	if tag != "" && tag != "yaml" && tag != "yml" {
		return s
	}
	body := s[nl+1:]
	if i := strings.LastIndex(body, "```"); i >= 0 {
		body = body[:i]
	}
	return body
}
