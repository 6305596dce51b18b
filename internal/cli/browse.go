package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/showcasehq/showcase/pkg/portfolio"
)

var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// browseCommand creates the interactive project browser.
func (c *CLI) browseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse projects interactively",
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
			projects := svc.FetchProjects(cmd.Context(), false)
			sp.Stop()

			if len(projects) == 0 {
				printInfo("No projects found")
				return nil
			}

			model := newProjectListModel(projects)
			final, err := tea.NewProgram(model, tea.WithContext(cmd.Context())).Run()
			if err != nil {
				return fmt.Errorf("browser failed: %w", err)
			}

			if m, ok := final.(projectListModel); ok && m.selected != nil {
				printProjectDetail(*m.selected)
			}
			return nil
		},
	}
}

// projectListModel is the bubbletea model for the project browser.
type projectListModel struct {
	projects []portfolio.Project
	cursor   int
	offset   int
	height   int
	selected *portfolio.Project
}

func newProjectListModel(projects []portfolio.Project) projectListModel {
	return projectListModel{projects: projects, height: 15}
}

func (m projectListModel) Init() tea.Cmd {
	return nil
}

func (m projectListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				if m.cursor < m.offset {
					m.offset = m.cursor
				}
			}
		case "down", "j":
			if m.cursor < len(m.projects)-1 {
				m.cursor++
				if m.cursor >= m.offset+m.height {
					m.offset = m.cursor - m.height + 1
				}
			}
		case "enter":
			p := m.projects[m.cursor]
			m.selected = &p
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.height = msg.Height - 6
		if m.height < 5 {
			m.height = 5
		}
	}
	return m, nil
}

func (m projectListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Portfolio Projects"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ details  q quit"))
	b.WriteString("\n\n")

	end := m.offset + m.height
	if end > len(m.projects) {
		end = len(m.projects)
	}

	rows := [][]string{}
	for i := m.offset; i < end; i++ {
		p := m.projects[i]

		cursor := "  "
		if i == m.cursor {
			cursor = "▸ "
		}

		stars := "—"
		updated := "—"
		if p.GitHubData != nil {
			if p.GitHubData.Stars > 0 {
				stars = strconv.Itoa(p.GitHubData.Stars)
			}
			if p.GitHubData.UpdatedAt != "" {
				updated = formatRelativeTime(p.GitHubData.UpdatedAt)
			}
		}

		rows = append(rows, []string{cursor, p.Name, p.Category, p.Status, stars, updated})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Project", "Category", "Status", "Stars", "Updated").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}

			actualIdx := m.offset + row
			if actualIdx >= len(m.projects) {
				return lipgloss.NewStyle()
			}
			p := m.projects[actualIdx]

			if actualIdx == m.cursor {
				return listSelectedStyle
			}
			if col == 3 {
				if style, ok := statusStyles[p.Status]; ok {
					return style
				}
			}
			if col >= 4 {
				return listDimStyle
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.cursor+1, len(m.projects))))

	return b.String()
}

func formatRelativeTime(s string) string {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return s
	}

	diff := time.Since(t)
	switch {
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	case diff < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(diff.Hours()/24))
	default:
		return t.Format("Jan 2, 2006")
	}
}
