package cert

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/walkinmyshoes/wims/internal/ui/theme"
)

// Render draws the certificate as a bordered terminal card, the CLI
// counterpart of the original printable layout.
func Render(c Certificate, width int) string {
	if width < 40 {
		width = 40
	}
	inner := width - 6

	center := func(s string, style lipgloss.Style) string {
		return style.Width(inner).Align(lipgloss.Center).Render(s)
	}

	var b strings.Builder
	b.WriteString(center("🏆", lipgloss.NewStyle()))
	b.WriteString("\n")
	b.WriteString(center("Certificate of Empathy Training", lipgloss.NewStyle().Bold(true).Foreground(theme.Primary)))
	b.WriteString("\n")
	b.WriteString(center("WalkInMyShoes — Immersive Disability Empathy Platform", lipgloss.NewStyle().Foreground(theme.TextDim)))
	b.WriteString("\n\n")
	b.WriteString(center("This certifies that", lipgloss.NewStyle().Foreground(theme.TextDim)))
	b.WriteString("\n")
	b.WriteString(center(c.UserName, lipgloss.NewStyle().Bold(true).Foreground(theme.Primary)))
	b.WriteString("\n")
	b.WriteString(center("has successfully completed disability empathy training", lipgloss.NewStyle().Foreground(theme.TextDim)))
	b.WriteString("\n\n")
	b.WriteString(center(fmt.Sprintf("Empathy Score: %d/100", c.Score), lipgloss.NewStyle().Foreground(theme.Text)))
	b.WriteString("\n")
	b.WriteString(center(fmt.Sprintf("Scenarios Completed: %d", c.ScenariosCompleted), lipgloss.NewStyle().Foreground(theme.Text)))
	b.WriteString("\n")
	b.WriteString(center(fmt.Sprintf("Badge Earned: %s", c.Badge), lipgloss.NewStyle().Foreground(theme.Accent)))
	b.WriteString("\n")
	b.WriteString(center(fmt.Sprintf("Completed on: %s", c.Date), lipgloss.NewStyle().Foreground(theme.Text)))
	b.WriteString("\n\n")
	b.WriteString(center(fmt.Sprintf("Certificate ID: %s", c.ID), lipgloss.NewStyle().Foreground(theme.TextDim)))

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Padding(1, 2).
		Render(b.String())
}
