package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/showcasehq/showcase/pkg/portfolio"
)

// projectsCommand creates the projects command group.
func (c *CLI) projectsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "projects",
		Short: "Inspect the aggregated portfolio",
	}

	cmd.AddCommand(c.projectsListCommand())
	cmd.AddCommand(c.projectsShowCommand())
	cmd.AddCommand(c.projectsStatsCommand())

	return cmd
}

// projectsListCommand creates the "projects list" subcommand.
func (c *CLI) projectsListCommand() *cobra.Command {
	var (
		refresh  bool
		asJSON   bool
		category string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all portfolio projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			svc, _, store, err := c.newService(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			sp := newSpinner(cmd.Context(), "Fetching projects from GitHub")
			sp.Start()
			projects := svc.FetchProjects(cmd.Context(), refresh)
			sp.Stop()

			if category != "" {
				filtered := projects[:0:0]
				for _, p := range projects {
					if p.Category == category {
						filtered = append(filtered, p)
					}
				}
				projects = filtered
			}

			if asJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(projects)
			}

			printProjectTable(projects)

			pinnedSlugs := make(map[string]bool)
			for _, p := range portfolio.PinnedProjects() {
				pinnedSlugs[p.Slug] = true
			}
			pinned := 0
			for _, p := range projects {
				if pinnedSlugs[p.Slug] {
					pinned++
				}
			}
			printCounts(len(projects), pinned, !refresh)
			return nil
		},
	}

	cmd.Flags().BoolVar(&refresh, "refresh", false, "bypass cache and refetch")
	cmd.Flags().BoolVar(&asJSON, "json", false, "output as JSON")
	cmd.Flags().StringVar(&category, "category", "", "only show projects in this category")

	return cmd
}

// projectsShowCommand creates the "projects show" subcommand.
func (c *CLI) projectsShowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <slug>",
		Short: "Show one project in detail",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			svc, _, store, err := c.newService(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			p, ok := svc.ProjectBySlug(cmd.Context(), args[0])
			if !ok {
				printError("No project with slug %q", args[0])
				return fmt.Errorf("project %q not found", args[0])
			}

			printProjectDetail(p)
			return nil
		},
	}
	return cmd
}

// projectsStatsCommand creates the "projects stats" subcommand.
func (c *CLI) projectsStatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show portfolio statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			svc, _, store, err := c.newService(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			stats := svc.ProjectStats(cmd.Context())

			fmt.Println(StyleTitle.Render("Portfolio Statistics"))
			printNewline()
			printKeyValue("Projects", strconv.Itoa(stats.Total))
			printNewline()

			fmt.Println(StyleDim.Render("By status"))
			for _, k := range sortedKeys(stats.ByStatus) {
				printKeyValue("  "+k, strconv.Itoa(stats.ByStatus[k]))
			}
			printNewline()

			fmt.Println(StyleDim.Render("By category"))
			for _, k := range sortedKeys(stats.ByCategory) {
				printKeyValue("  "+k, strconv.Itoa(stats.ByCategory[k]))
			}
			printNewline()

			fmt.Println(StyleDim.Render("Top technologies"))
			for _, tech := range topTechnologies(stats.TechnologyCounts, 10) {
				printKeyValue("  "+tech, strconv.Itoa(stats.TechnologyCounts[tech]))
			}
			return nil
		},
	}
}

// printProjectTable renders the project list as a bordered table.
func printProjectTable(projects []portfolio.Project) {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	rows := make([][]string, 0, len(projects))
	for _, p := range projects {
		stars := ""
		if p.GitHubData != nil && p.GitHubData.Stars > 0 {
			stars = strconv.Itoa(p.GitHubData.Stars)
		}
		rows = append(rows, []string{
			p.Name,
			p.Slug,
			p.Category,
			p.Status,
			strconv.Itoa(p.Priority),
			stars,
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Name", "Slug", "Category", "Status", "Priority", "Stars").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if row >= len(projects) {
				return lipgloss.NewStyle()
			}
			switch col {
			case 0:
				return lipgloss.NewStyle().Foreground(colorWhite)
			case 3:
				if style, ok := statusStyles[projects[row].Status]; ok {
					return style
				}
				return lipgloss.NewStyle().Foreground(colorGray)
			default:
				return lipgloss.NewStyle().Foreground(colorGray)
			}
		})

	fmt.Println(t.Render())
}

// printProjectDetail renders one project as key-value lines plus metric bars.
func printProjectDetail(p portfolio.Project) {
	fmt.Println(StyleTitle.Render(portfolio.IconGlyph(p.Icon) + " " + p.Name))
	if p.Description != "" {
		printDetail("%s", p.Description)
	}
	printNewline()

	printKeyValue("Slug", p.Slug)
	printKeyValue("Status", renderStatus(p.Status))
	printKeyValue("Category", p.Category)
	printKeyValue("Priority", strconv.Itoa(p.Priority))
	if len(p.TechStack) > 0 {
		printKeyValue("Tech stack", strings.Join(p.TechStack, ", "))
	}
	if len(p.Tags) > 0 {
		printKeyValue("Tags", strings.Join(p.Tags, ", "))
	}
	if p.RepoURL != "" {
		printKeyValue("Repository", StyleLink.Render(p.RepoURL))
	}
	if p.DemoURL != "" {
		printKeyValue("Demo", StyleLink.Render(p.DemoURL))
	}
	if p.GitHubData != nil {
		printKeyValue("Stars", strconv.Itoa(p.GitHubData.Stars))
		if p.GitHubData.Language != "" {
			printKeyValue("Language", p.GitHubData.Language)
		}
	}
	printNewline()

	printMetricBar("Business", p.Metrics.BusinessValue)
	printMetricBar("Complexity", p.Metrics.Complexity)
	printMetricBar("Time spent", p.Metrics.TimeSpent)
	printMetricBar("Fun", p.Metrics.FunRating)

	if len(p.Features) > 0 {
		printNewline()
		fmt.Println(StyleDim.Render("Features"))
		for _, f := range p.Features {
			printDetail("%s %s", iconArrow, f)
		}
	}
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// topTechnologies returns up to n technology names, most used first, ties
// broken alphabetically.
func topTechnologies(counts map[string]int, n int) []string {
	techs := make([]string, 0, len(counts))
	for t := range counts {
		techs = append(techs, t)
	}
	sort.Slice(techs, func(i, j int) bool {
		if counts[techs[i]] != counts[techs[j]] {
			return counts[techs[i]] > counts[techs[j]]
		}
		return techs[i] < techs[j]
	})
	if len(techs) > n {
		techs = techs[:n]
	}
	return techs
}
