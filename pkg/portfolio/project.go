// Package portfolio is the core of the showcase application: it turns GitHub
// repositories carrying README-embedded metadata into Project records, merges
// them with pinned hand-authored case studies, caches the aggregate, and
// derives the navigation menu, category groups and statistics the
// presentation layer consumes.
package portfolio

import "gopkg.in/yaml.v3"

// DefaultPriority is the sort-key sentinel meaning "unranked".
// Keeping priority always numeric keeps sorting total.
const DefaultPriority = 999

// Metrics are the four dashboard scores attached to every project.
// After normalization each field is always within [1,10].
type Metrics struct {
	BusinessValue int `json:"businessValue" yaml:"business_value"`
	Complexity    int `json:"complexity" yaml:"complexity"`
	TimeSpent     int `json:"timeSpent" yaml:"time_spent"`
	FunRating     int `json:"funRating" yaml:"fun_rating"`
}

// InBounds reports whether every metric is within [1,10].
func (m Metrics) InBounds() bool {
	for _, v := range []int{m.BusinessValue, m.Complexity, m.TimeSpent, m.FunRating} {
		if v < 1 || v > 10 {
			return false
		}
	}
	return true
}

// GitHubData is the nested record attached to repository-sourced projects.
// Timestamps are carried as the API's raw RFC 3339 strings; consumers
// de-duplicate dates by string equality, so they are never re-parsed here.
type GitHubData struct {
	Stars     int      `json:"stars"`
	Language  string   `json:"language,omitempty"`
	Topics    []string `json:"topics,omitempty"`
	CreatedAt string   `json:"createdAt,omitempty"`
	UpdatedAt string   `json:"updatedAt,omitempty"`
	PushedAt  string   `json:"pushedAt,omitempty"`
}

// Screenshot is a media descriptor for a project gallery entry.
type Screenshot struct {
	Src     string `json:"src" yaml:"src"`
	Alt     string `json:"alt,omitempty" yaml:"alt"`
	Caption string `json:"caption,omitempty" yaml:"caption"`
}

// UnmarshalYAML accepts either a bare string (the source URL) or a full
// {src, alt, caption} mapping. Source READMEs use both shapes.
func (s *Screenshot) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		s.Src = node.Value
		return nil
	}
	type plain Screenshot
	return node.Decode((*plain)(s))
}

// Project is the canonical unit surfaced throughout the system.
//
// Records are derived, not stored: they are recomputed on each cache miss
// from the source adapter's current response plus the pinned list, and are
// treated as immutable once constructed.
type Project struct {
	ID          string       `json:"id"`
	Slug        string       `json:"slug"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Status      string       `json:"status"`
	Category    string       `json:"category"`
	TechStack   []string     `json:"techStack"`
	DemoURL     string       `json:"demoUrl,omitempty"`
	RepoURL     string       `json:"repoUrl,omitempty"`
	Priority    int          `json:"priority"`
	ShowInNav   bool         `json:"showInNav"`
	Icon        string       `json:"icon"`
	MenuTitle   string       `json:"menuTitle,omitempty"`
	Features    []string     `json:"features"`
	Screenshots []Screenshot `json:"screenshots"`
	Metrics     Metrics      `json:"metrics"`
	GitHubData  *GitHubData  `json:"githubData,omitempty"`
	Tags        []string     `json:"tags,omitempty"`
	CreatedDate string       `json:"createdDate,omitempty"`
	UpdatedDate string       `json:"updatedDate,omitempty"`
}

// MenuItem is one navigable entry in a menu section.
type MenuItem struct {
	Label    string `json:"label"`
	Path     string `json:"path"`
	Icon     string `json:"icon,omitempty"`
	External bool   `json:"external,omitempty"`
}

// MenuSection is a titled group of menu items, rendered in slice order.
type MenuSection struct {
	Title string     `json:"title"`
	Items []MenuItem `json:"items"`
}

// Stats are aggregate tallies over the project list.
type Stats struct {
	Total            int            `json:"total"`
	ByStatus         map[string]int `json:"byStatus"`
	ByCategory       map[string]int `json:"byCategory"`
	TechnologyCounts map[string]int `json:"technologyCounts"`
}
