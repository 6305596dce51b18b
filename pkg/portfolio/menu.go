package portfolio

import "context"

// iconGlyphs maps symbolic icon names to rendered glyphs. Unknown names fall
// back to the folder glyph; no dynamic resolution is involved.
var iconGlyphs = map[string]string{
	"folder":    "📁",
	"home":      "🏠",
	"dashboard": "📊",
	"chart":     "📈",
	"cart":      "🛒",
	"server":    "🖥",
	"robot":     "🤖",
	"wrench":    "🔧",
	"globe":     "🌐",
	"github":    "🐙",
	"book":      "📚",
	"rocket":    "🚀",
}

// IconGlyph resolves a symbolic icon name to its glyph.
func IconGlyph(name string) string {
	if g, ok := iconGlyphs[name]; ok {
		return g
	}
	return iconGlyphs["folder"]
}

// MenuItems derives the navigation structure from the aggregated list, in
// fixed section order: Home, Projects (omitted entirely when no project is
// navigable), External Links, and — in dev mode only — Development.
//
// A project's nav label is its MenuTitle when set, else its Name.
func (s *Service) MenuItems(ctx context.Context) []MenuSection {
	sections := []MenuSection{
		{
			Title: "Home",
			Items: []MenuItem{
				{Label: "Dashboard", Path: "/", Icon: "home"},
			},
		},
	}

	var projectItems []MenuItem
	for _, p := range s.FetchProjects(ctx, false) {
		if !p.ShowInNav {
			continue
		}
		label := p.MenuTitle
		if label == "" {
			label = p.Name
		}
		projectItems = append(projectItems, MenuItem{
			Label: label,
			Path:  "/projects/" + p.Slug,
			Icon:  p.Icon,
		})
	}
	if len(projectItems) > 0 {
		sections = append(sections, MenuSection{Title: "Projects", Items: projectItems})
	}

	sections = append(sections, MenuSection{
		Title: "External Links",
		Items: []MenuItem{
			{Label: "GitHub", Path: "https://github.com/" + s.owner, Icon: "github", External: true},
		},
	})

	if s.devMode {
		sections = append(sections, MenuSection{
			Title: "Development",
			Items: []MenuItem{
				{Label: "Component Gallery", Path: "/dev/components", Icon: "wrench"},
				{Label: "API Explorer", Path: "/dev/api", Icon: "wrench"},
			},
		})
	}

	return sections
}
