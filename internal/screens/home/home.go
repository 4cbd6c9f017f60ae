package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/walkinmyshoes/wims/internal/config"
	"github.com/walkinmyshoes/wims/internal/empathy"
	"github.com/walkinmyshoes/wims/internal/router"
	"github.com/walkinmyshoes/wims/internal/screens/certificates"
	"github.com/walkinmyshoes/wims/internal/screens/dashboard"
	"github.com/walkinmyshoes/wims/internal/screens/leaderboard"
	"github.com/walkinmyshoes/wims/internal/screens/placeholder"
	"github.com/walkinmyshoes/wims/internal/store"
	"github.com/walkinmyshoes/wims/internal/ui/components"
	"github.com/walkinmyshoes/wims/internal/ui/theme"
)

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	menu          components.Menu
	bestScore     float64
	badge         string
	scenariosDone int
	hasScore      bool
}

var _ router.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen. The stats bar loads from the latest
// profile snapshot so startup never replays the event log.
func New(eventRepo store.EventRepo, certRepo store.CertRepo, snapRepo store.SnapshotRepo, cfg *config.Config) *HomeScreen {
	var bestScore float64
	var badge string
	var scenariosDone int
	var hasScore bool

	if snapRepo != nil {
		if snap, err := snapRepo.Latest(context.Background()); err == nil && snap != nil {
			bestScore = snap.Data.BestScore
			badge = snap.Data.Badge
			scenariosDone = snap.Data.ScenariosCompleted
			hasScore = true
		}
	}

	items := []components.MenuItem{
		{Label: "DASHBOARD", Action: func() tea.Cmd {
			if eventRepo == nil {
				return pushPlaceholder("Dashboard")
			}
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: dashboard.New(eventRepo, cfg)}
			}
		}},
		{Label: "CERTIFICATES", Action: func() tea.Cmd {
			if certRepo == nil || eventRepo == nil {
				return pushPlaceholder("Certificates")
			}
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: certificates.New(certRepo, eventRepo, cfg)}
			}
		}},
		{Label: "LEADERBOARD", Action: func() tea.Cmd {
			if eventRepo == nil {
				return pushPlaceholder("Leaderboard")
			}
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: leaderboard.New(eventRepo, cfg)}
			}
		}},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:          components.NewMenu(items),
		bestScore:     bestScore,
		badge:         badge,
		scenariosDone: scenariosDone,
		hasScore:      hasScore,
	}
}

func pushPlaceholder(title string) tea.Cmd {
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: placeholder.New(title)}
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.Primary).
		Width(width).
		Align(lipgloss.Center).
		Render("WalkInMyShoes")
	subtitle := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Width(width).
		Align(lipgloss.Center).
		Render("Immersive Disability Empathy Training")
	sections = append(sections, title+"\n"+subtitle)

	sections = append(sections, h.renderStatsBar(width))

	menu := h.menu.View()
	sections = append(sections, lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(menu))

	content := strings.Join(sections, "\n\n")
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

func (h *HomeScreen) renderStatsBar(width int) string {
	var stats string
	if h.hasScore {
		tier := empathy.Classify(h.bestScore)
		stats = fmt.Sprintf("Best Score %.0f   %s   Scenarios %d",
			h.bestScore, badgeOrTier(h.badge, tier), h.scenariosDone)
	} else {
		stats = "No sessions yet — run `wims score` after your first simulation"
	}

	return lipgloss.NewStyle().
		Foreground(theme.Text).
		Background(theme.BgCard).
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Border).
		Padding(0, 2).
		Render(stats)
}

// badgeOrTier prefers the snapshot's stored badge label and falls back
// to reclassifying the score.
func badgeOrTier(badge string, tier empathy.Tier) string {
	if badge != "" {
		return empathy.Tier(badge).Badge()
	}
	return tier.Badge()
}

func (h *HomeScreen) Title() string {
	return "Home"
}
