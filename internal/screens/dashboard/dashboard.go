package dashboard

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/walkinmyshoes/wims/internal/config"
	"github.com/walkinmyshoes/wims/internal/report"
	"github.com/walkinmyshoes/wims/internal/router"
	"github.com/walkinmyshoes/wims/internal/store"
	"github.com/walkinmyshoes/wims/internal/ui/components"
	"github.com/walkinmyshoes/wims/internal/ui/layout"
	"github.com/walkinmyshoes/wims/internal/ui/theme"
)

type dashboardLoadedMsg struct {
	Report     *report.Report
	Motivation string
	Improve    []string
	Err        error
	Empty      bool
}

// DashboardScreen shows the latest session's score report.
type DashboardScreen struct {
	eventRepo store.EventRepo
	cfg       *config.Config
	rep       *report.Report
	motivate  string
	improve   []string
	loaded    bool
	empty     bool
	errMsg    string
}

var _ router.Screen = (*DashboardScreen)(nil)
var _ router.KeyHintProvider = (*DashboardScreen)(nil)

// New creates a new DashboardScreen.
func New(eventRepo store.EventRepo, cfg *config.Config) *DashboardScreen {
	return &DashboardScreen{eventRepo: eventRepo, cfg: cfg}
}

func (s *DashboardScreen) Init() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		sess, err := s.eventRepo.LatestSession(ctx)
		if err != nil {
			return dashboardLoadedMsg{Err: err}
		}
		if sess == nil {
			return dashboardLoadedMsg{Empty: true}
		}

		rep, err := report.FromSession(ctx, s.eventRepo, s.cfg.Scoring(), sess)
		if err != nil {
			return dashboardLoadedMsg{Err: err}
		}

		return dashboardLoadedMsg{
			Report:     rep,
			Motivation: report.MotivationalMessage(rep.OverallScore),
			Improve:    report.ImprovementSuggestions(rep.OverallScore, s.cfg.TargetScore),
		}
	}
}

func (s *DashboardScreen) Title() string {
	return "Dashboard"
}

func (s *DashboardScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (s *DashboardScreen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else if msg.Empty {
			s.empty = true
		} else {
			s.rep = msg.Report
			s.motivate = msg.Motivation
			s.improve = msg.Improve
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		if msg.String() == "esc" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *DashboardScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading dashboard...")
	}
	if s.empty {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No completed sessions yet. Finish a simulation first!")
	}

	var b strings.Builder
	b.WriteString("\n")

	tier := s.rep.Level
	headline := fmt.Sprintf("Empathy Score  %.0f / 100   %s", s.rep.OverallScore, tier.Badge())
	b.WriteString(lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(tier.Color())).
		Render("  " + headline))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("  " + tier.Description()))
	b.WriteString("\n\n")

	barWidth := width - 8
	if barWidth > 60 {
		barWidth = 60
	}
	bars := []struct {
		label   string
		percent float64
	}{
		{"Knowledge  ", clampPercent(s.rep.Breakdown.Knowledge / 100)},
		{"Engagement ", clampPercent(s.rep.Breakdown.Engagement / 100)},
		{"Retries    ", clampPercent(s.rep.Breakdown.Retries / 100)},
		{"Help       ", clampPercent(s.rep.Breakdown.HelpSeeking / 100)},
		{"Resilience ", clampPercent(s.rep.Breakdown.Resilience / 100)},
	}
	for _, bar := range bars {
		pb := components.NewProgressBar(bar.label, bar.percent, true, barWidth)
		b.WriteString("  " + pb.View() + "\n")
	}
	b.WriteString("\n")

	if len(s.rep.Scenarios) > 0 {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).
			Render("  Scenarios: " + strings.Join(s.rep.Scenarios, ", ")))
		b.WriteString("\n\n")
	}

	b.WriteString(renderList("Insights", s.rep.Insights))
	b.WriteString(renderList("Recommendations", s.rep.Recommendations))
	b.WriteString(renderList("Next Steps", s.improve))

	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Accent).
		Italic(true).
		Render("  " + s.motivate))
	b.WriteString("\n")

	return b.String()
}

func renderList(heading string, items []string) string {
	if len(items) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(theme.Primary).
		Render("  " + heading))
	b.WriteString("\n")
	for _, item := range items {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).
			Render("   • " + item))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	return b.String()
}

// clampPercent pins a ratio to the renderable 0-1 range; knowledge gain
// can be negative or exceed 100 points.
func clampPercent(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}
