package portfolio

import (
	"strings"

	"github.com/showcasehq/showcase/pkg/github"
)

// Base scores for synthesized metrics.
const (
	baseBusinessValue = 5
	baseComplexity    = 5
	baseTimeSpent     = 5
	baseFunRating     = 6
)

// uiFrameworks are tech-stack names that nudge the fun rating up.
var uiFrameworks = []string{"react", "vue", "svelte", "angular", "solid", "next.js", "nuxt"}

// SynthesizeMetrics derives dashboard scores for a project whose source
// metadata omitted them. Deterministic signals (category keywords, stack
// size, star count, status) adjust the base scores, then a bounded random
// perturbation of ±1 per field is applied for UI variety, then every field
// is clamped to [1,10].
//
// The perturbation makes this intentionally non-deterministic: callers must
// not assume repeatable output across calls with identical input.
func (e *Extractor) SynthesizeMetrics(p Project, ghRepo *github.Repo) Metrics {
	m := Metrics{
		BusinessValue: baseBusinessValue,
		Complexity:    baseComplexity,
		TimeSpent:     baseTimeSpent,
		FunRating:     baseFunRating,
	}

	category := strings.ToLower(p.Category)
	switch {
	case containsAny(category, "product", "management"):
		m.BusinessValue += 2
		m.Complexity++
	case containsAny(category, "web", "frontend"):
		m.FunRating += 2
	case containsAny(category, "tool", "utility"):
		m.BusinessValue++
		m.Complexity--
	case containsAny(category, "api", "backend"):
		m.BusinessValue++
		m.Complexity += 2
	}

	if len(p.TechStack) > 5 {
		m.Complexity++
	}
	for _, tech := range p.TechStack {
		if containsAny(strings.ToLower(tech), uiFrameworks...) {
			m.FunRating++
			break
		}
	}

	if ghRepo != nil {
		switch {
		case ghRepo.Stars >= 50:
			m.BusinessValue += 2
			m.FunRating++
		case ghRepo.Stars >= 10:
			m.BusinessValue++
		}
	}

	status := strings.ToLower(p.Status)
	switch {
	case containsAny(status, "active", "maintained", "maintenance"):
		m.TimeSpent += 2
		m.BusinessValue++
	case containsAny(status, "completed", "mvp"):
		m.BusinessValue++
	}

	// ±1 jitter per field, then clamp.
	m.BusinessValue = clampMetric(m.BusinessValue + e.intn(3) - 1)
	m.Complexity = clampMetric(m.Complexity + e.intn(3) - 1)
	m.TimeSpent = clampMetric(m.TimeSpent + e.intn(3) - 1)
	m.FunRating = clampMetric(m.FunRating + e.intn(3) - 1)

	return m
}

func clampMetric(v int) int {
	if v < 1 {
		return 1
	}
	if v > 10 {
		return 10
	}
	return v
}

func containsAny(s string, substrs ...string) bool {
	for _, sub := range substrs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
