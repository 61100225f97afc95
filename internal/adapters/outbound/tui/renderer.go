package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/polylint/polylint/internal/domain"
)

// ── warm amber palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(56)

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	failStyle     = lipgloss.NewStyle().Foreground(danger).Bold(true)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	fileStyle     = lipgloss.NewStyle().Foreground(dim)
	separatorLine = faintStyle.Render(strings.Repeat("─", 52))
)

// RenderReport renders one run's aggregated results as a styled string.
func RenderReport(report *domain.RunReport) string {
	var b strings.Builder

	verdict := passStyle.Render("PASS")
	if !report.Passed {
		verdict = failStyle.Render("FAIL")
	}

	title := headerStyle.Render("polylint")
	subtitle := dimStyle.Render(fmt.Sprintf("%d kind(s), %d file(s)", len(report.Results), report.TotalFiles()))
	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + verdict))
	b.WriteString("\n\n")

	for _, res := range report.Results {
		renderKind(&b, res)
	}

	b.WriteString("\n")
	b.WriteString("  " + separatorLine)
	b.WriteString("\n")
	return b.String()
}

func renderKind(b *strings.Builder, res *domain.LintResult) {
	icon := passStyle.Render("✓")
	if !res.Passed {
		icon = failStyle.Render("✗")
	}

	name := titleStyle.Render(padRight(string(res.Kind), 10))
	count := dimStyle.Render(fmt.Sprintf("%d file(s)", res.FilesChecked))
	fmt.Fprintf(b, "  %s %s %s\n", icon, name, count)

	for _, d := range res.Diagnostics {
		renderDiagnostic(b, d)
	}
}

func renderDiagnostic(b *strings.Builder, d domain.Diagnostic) {
	location := d.File
	if d.Line > 0 {
		location = fmt.Sprintf("%s:%d", d.File, d.Line)
	}
	fmt.Fprintf(b, "      %s %s\n", fileStyle.Render(location), d.Message)
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
