package portfolio

// PinnedProjects returns the hand-authored case-study records. They are
// constant, never fetched, and always precede repository-derived projects in
// the aggregated list — that ordering is what gives them precedence in
// by-slug lookups.
//
// A fresh slice is returned on every call so callers can never mutate the
// canonical records.
func PinnedProjects() []Project {
	return []Project{
		{
			ID:          "nimbus-analytics-launch",
			Slug:        "nimbus-analytics-launch",
			Name:        "Nimbus Analytics Launch",
			Description: "Product case study: taking a self-serve analytics product from discovery to GA across three release trains.",
			Status:      "completed",
			Category:    "product-management",
			TechStack:   []string{"Product Discovery", "A/B Testing", "SQL", "Amplitude"},
			Priority:    1,
			ShowInNav:   true,
			Icon:        "chart",
			MenuTitle:   "Case Study: Nimbus",
			Features: []string{
				"Opportunity sizing and discovery interviews",
				"North-star metric definition and instrumentation plan",
				"Phased rollout with holdback experiment",
			},
			Screenshots: []Screenshot{},
			Metrics: Metrics{
				BusinessValue: 9,
				Complexity:    7,
				TimeSpent:     8,
				FunRating:     7,
			},
			Tags:        []string{"case-study", "analytics"},
			CreatedDate: "2023-04-12",
			UpdatedDate: "2024-01-30",
		},
		{
			ID:          "checkout-replatform",
			Slug:        "checkout-replatform",
			Name:        "Checkout Replatform",
			Description: "Product case study: migrating a legacy checkout flow to a modular platform without dropping conversion.",
			Status:      "completed",
			Category:    "product-management",
			TechStack:   []string{"Stakeholder Management", "Migration Planning", "Experimentation"},
			Priority:    2,
			ShowInNav:   true,
			Icon:        "cart",
			MenuTitle:   "Case Study: Checkout",
			Features: []string{
				"Strangler-pattern migration sequencing",
				"Conversion guardrail metrics and rollback criteria",
				"Cross-team dependency mapping",
			},
			Screenshots: []Screenshot{},
			Metrics: Metrics{
				BusinessValue: 10,
				Complexity:    8,
				TimeSpent:     9,
				FunRating:     6,
			},
			Tags:        []string{"case-study", "payments"},
			CreatedDate: "2022-09-01",
			UpdatedDate: "2023-06-15",
		},
	}
}

// pinnedSlugs is the O(1) fast path for by-slug lookups.
var pinnedSlugs = map[string]bool{
	"nimbus-analytics-launch": true,
	"checkout-replatform":     true,
}
