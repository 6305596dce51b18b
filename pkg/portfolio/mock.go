package portfolio

// MockProjects is the built-in dataset served when aggregation fails
// unexpectedly. The presentation layer shows placeholder projects instead of
// an error page; degradation is silent by design.
func MockProjects() []Project {
	return []Project{
		{
			ID:          "sample-dashboard",
			Slug:        "sample-dashboard",
			Name:        "Sample Dashboard",
			Description: "Placeholder project shown while live data is unavailable.",
			Status:      "active",
			Category:    "web",
			TechStack:   []string{"React", "TypeScript"},
			Priority:    DefaultPriority,
			ShowInNav:   true,
			Icon:        "dashboard",
			Features:    []string{},
			Screenshots: []Screenshot{},
			Metrics:     Metrics{BusinessValue: 5, Complexity: 4, TimeSpent: 5, FunRating: 7},
			Tags:        []string{},
		},
		{
			ID:          "sample-api",
			Slug:        "sample-api",
			Name:        "Sample API",
			Description: "Placeholder project shown while live data is unavailable.",
			Status:      "maintenance",
			Category:    "backend",
			TechStack:   []string{"Go", "PostgreSQL"},
			Priority:    DefaultPriority,
			ShowInNav:   true,
			Icon:        "server",
			Features:    []string{},
			Screenshots: []Screenshot{},
			Metrics:     Metrics{BusinessValue: 6, Complexity: 6, TimeSpent: 5, FunRating: 5},
			Tags:        []string{},
		},
	}
}
