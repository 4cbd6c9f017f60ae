package leaderboard

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/walkinmyshoes/wims/internal/config"
	"github.com/walkinmyshoes/wims/internal/leaderboard"
	"github.com/walkinmyshoes/wims/internal/router"
	"github.com/walkinmyshoes/wims/internal/store"
	"github.com/walkinmyshoes/wims/internal/ui/layout"
	"github.com/walkinmyshoes/wims/internal/ui/theme"
)

type standingsLoadedMsg struct {
	Standings *leaderboard.Standings
	Err       error
}

// LeaderboardScreen shows ranked best scores across users.
type LeaderboardScreen struct {
	eventRepo store.EventRepo
	cfg       *config.Config
	standings *leaderboard.Standings
	loaded    bool
	errMsg    string
}

var _ router.Screen = (*LeaderboardScreen)(nil)
var _ router.KeyHintProvider = (*LeaderboardScreen)(nil)

// New creates a new LeaderboardScreen.
func New(eventRepo store.EventRepo, cfg *config.Config) *LeaderboardScreen {
	return &LeaderboardScreen{eventRepo: eventRepo, cfg: cfg}
}

func (s *LeaderboardScreen) Init() tea.Cmd {
	return func() tea.Msg {
		records, err := s.eventRepo.QueryScoreEvents(context.Background(), store.QueryOpts{})
		if err != nil {
			return standingsLoadedMsg{Err: err}
		}

		entries := make([]leaderboard.Entry, 0, len(records))
		for _, r := range records {
			name := r.UserName
			if name == "" {
				name = r.UserID
			}
			entries = append(entries, leaderboard.Entry{
				UserID: r.UserID,
				Name:   name,
				Score:  r.Total,
			})
		}
		return standingsLoadedMsg{Standings: leaderboard.Build(entries)}
	}
}

func (s *LeaderboardScreen) Title() string {
	return "Leaderboard"
}

func (s *LeaderboardScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (s *LeaderboardScreen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case standingsLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.standings = msg.Standings
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

func (s *LeaderboardScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading standings...")
	}
	if s.standings == nil || len(s.standings.Entries) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No scores recorded yet.")
	}

	var b strings.Builder
	b.WriteString("\n")

	header := fmt.Sprintf("  %-5s %-24s %8s  %s", "Rank", "Name", "Score", "Badge")
	b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(theme.Primary).Render(header))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).
		Render("  " + strings.Repeat("─", min(width-4, 56))))
	b.WriteString("\n")

	for _, e := range s.standings.Top(20) {
		row := fmt.Sprintf("  %-5d %-24s %8.0f  %s", e.Rank, truncate(e.Name, 24), e.Score, e.Badge)
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if e.UserID == s.cfg.UserID {
			style = lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
		}
		b.WriteString(style.Render(row))
		b.WriteString("\n")
	}

	if me, ok := s.standings.RankOf(s.cfg.UserID); ok {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).
			Render(fmt.Sprintf("  You are ranked #%d with a best score of %.0f", me.Rank, me.Score)))
		b.WriteString("\n")
	}

	return b.String()
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}
