package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Color palette shared by all commands.
var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorBlue   = lipgloss.Color("75")  // Light blue - links
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleLink for URLs.
	StyleLink = lipgloss.NewStyle().Foreground(colorBlue).Underline(true)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleSuccess for success messages.
	StyleSuccess = lipgloss.NewStyle().Foreground(colorGreen)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)

	styleCached = lipgloss.NewStyle().Foreground(colorGreen)
	styleFresh  = lipgloss.NewStyle().Foreground(colorGray)
)

// statusStyles maps project statuses to colors for table and detail output.
var statusStyles = map[string]lipgloss.Style{
	"active":      lipgloss.NewStyle().Foreground(colorGreen),
	"maintained":  lipgloss.NewStyle().Foreground(colorGreen),
	"maintenance": lipgloss.NewStyle().Foreground(colorYellow),
	"completed":   lipgloss.NewStyle().Foreground(colorBlue),
	"mvp":         lipgloss.NewStyle().Foreground(colorCyan),
	"archived":    lipgloss.NewStyle().Foreground(colorDim),
}

// renderStatus colors a status label; unknown statuses render gray.
func renderStatus(status string) string {
	if style, ok := statusStyles[status]; ok {
		return style.Render(status)
	}
	return lipgloss.NewStyle().Foreground(colorGray).Render(status)
}

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconInfo    = "›"
	iconArrow   = "→"
)

// printSuccess prints a success message.
func printSuccess(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconSuccess.Render(iconSuccess) + " " + msg)
}

// printError prints an error message.
func printError(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconError.Render(iconError) + " " + msg)
}

// printInfo prints an info/status message.
func printInfo(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconInfo.Render(iconInfo) + " " + msg)
}

// printDetail prints a detail line (indented).
func printDetail(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println("  " + StyleDim.Render(msg))
}

// printKeyValue prints a labeled value.
func printKeyValue(key, value string) {
	keyStyle := lipgloss.NewStyle().Foreground(colorGray).Width(14)
	fmt.Println(keyStyle.Render(key) + " " + StyleValue.Render(value))
}

// printCounts prints an aggregation summary on a single line.
func printCounts(total, pinned int, cached bool) {
	status := "fresh"
	statusStyle := styleFresh
	if cached {
		status = "cached"
		statusStyle = styleCached
	}

	line := fmt.Sprintf("%d projects", total)
	if pinned > 0 {
		line += StyleDim.Render(" · ") + fmt.Sprintf("%d pinned", pinned)
	}
	fmt.Println("  " + StyleDim.Render(line) + StyleDim.Render(" · ") + statusStyle.Render(status))
}

// printMetricBar renders a 1-10 metric as a labeled bar.
func printMetricBar(label string, value int) {
	if value < 1 {
		value = 1
	}
	if value > 10 {
		value = 10
	}
	bar := ""
	for i := 1; i <= 10; i++ {
		if i <= value {
			bar += "█"
		} else {
			bar += "░"
		}
	}
	keyStyle := lipgloss.NewStyle().Foreground(colorGray).Width(14)
	fmt.Printf("%s %s %s\n", keyStyle.Render(label), styleIconSpinner.Render(bar), StyleDim.Render(fmt.Sprintf("%d/10", value)))
}

// printNewline prints an empty line.
func printNewline() {
	fmt.Println()
}
