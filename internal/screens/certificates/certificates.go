package certificates

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/walkinmyshoes/wims/internal/cert"
	"github.com/walkinmyshoes/wims/internal/config"
	"github.com/walkinmyshoes/wims/internal/router"
	"github.com/walkinmyshoes/wims/internal/store"
	"github.com/walkinmyshoes/wims/internal/ui/components"
	"github.com/walkinmyshoes/wims/internal/ui/layout"
	"github.com/walkinmyshoes/wims/internal/ui/theme"
)

// mode is the screen's interaction state.
type mode int

const (
	modeList  mode = iota // browsing existing certificates
	modeName              // entering a name for a new certificate
	modeShow              // displaying one certificate card
)

type certsLoadedMsg struct {
	Certs []store.CertificateRecord
	Err   error
}

type certIssuedMsg struct {
	Cert cert.Certificate
	Err  error
}

// CertificatesScreen lists earned certificates and issues new ones.
type CertificatesScreen struct {
	certRepo  store.CertRepo
	eventRepo store.EventRepo
	cfg       *config.Config

	mode     mode
	certs    []store.CertificateRecord
	selected int
	input    components.TextInput
	showing  cert.Certificate
	loaded   bool
	errMsg   string
}

var _ router.Screen = (*CertificatesScreen)(nil)
var _ router.KeyHintProvider = (*CertificatesScreen)(nil)

// New creates a new CertificatesScreen.
func New(certRepo store.CertRepo, eventRepo store.EventRepo, cfg *config.Config) *CertificatesScreen {
	return &CertificatesScreen{
		certRepo:  certRepo,
		eventRepo: eventRepo,
		cfg:       cfg,
	}
}

func (s *CertificatesScreen) Init() tea.Cmd {
	return s.load()
}

func (s *CertificatesScreen) load() tea.Cmd {
	return func() tea.Msg {
		certs, err := s.certRepo.List(context.Background())
		return certsLoadedMsg{Certs: certs, Err: err}
	}
}

// issue creates a certificate from the user's best recorded score.
func (s *CertificatesScreen) issue(name string) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		best, ok, err := s.eventRepo.BestScore(ctx, s.cfg.UserID)
		if err != nil {
			return certIssuedMsg{Err: err}
		}
		if !ok {
			return certIssuedMsg{Err: fmt.Errorf("no scores recorded yet")}
		}
		completed, err := s.eventRepo.ScenariosCompleted(ctx, s.cfg.UserID)
		if err != nil {
			return certIssuedMsg{Err: err}
		}

		c := cert.New(name, best, completed)
		err = s.certRepo.Add(ctx, store.CertificateData{
			CertID:             c.ID,
			UserName:           c.UserName,
			Score:              c.Score,
			Date:               c.Date,
			ScenariosCompleted: c.ScenariosCompleted,
			Badge:              c.Badge,
		})
		if err != nil {
			return certIssuedMsg{Err: err}
		}
		return certIssuedMsg{Cert: c}
	}
}

func (s *CertificatesScreen) Title() string {
	return "Certificates"
}

func (s *CertificatesScreen) KeyHints() []layout.KeyHint {
	switch s.mode {
	case modeName:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Issue"},
			{Key: "Esc", Description: "Cancel"},
		}
	case modeShow:
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back to list"},
		}
	default:
		return []layout.KeyHint{
			{Key: "n", Description: "New certificate"},
			{Key: "Enter", Description: "View"},
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Esc", Description: "Back"},
		}
	}
}

func (s *CertificatesScreen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case certsLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.certs = msg.Certs
			s.errMsg = ""
		}
		s.loaded = true
		return s, nil

	case certIssuedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			s.mode = modeList
			return s, nil
		}
		s.showing = msg.Cert
		s.mode = modeShow
		return s, s.load()

	case tea.KeyMsg:
		switch s.mode {
		case modeName:
			switch msg.String() {
			case "esc":
				s.mode = modeList
				return s, nil
			case "enter":
				name := strings.TrimSpace(s.input.Value())
				if name == "" {
					name = s.cfg.UserName
				}
				return s, s.issue(name)
			}
			var cmd tea.Cmd
			s.input, cmd = s.input.Update(msg)
			return s, cmd

		case modeShow:
			if msg.String() == "esc" {
				s.mode = modeList
				return s, nil
			}

		default:
			switch msg.String() {
			case "esc":
				return s, func() tea.Msg { return router.PopScreenMsg{} }
			case "n":
				s.input = components.NewTextInput("Your name", false, 40)
				s.mode = modeName
				return s, s.input.Init()
			case "up", "k":
				if s.selected > 0 {
					s.selected--
				}
				return s, nil
			case "down", "j":
				if s.selected < len(s.certs)-1 {
					s.selected++
				}
				return s, nil
			case "enter":
				if s.selected < len(s.certs) {
					r := s.certs[s.selected]
					s.showing = cert.Certificate{
						ID:                 r.CertID,
						UserName:           r.UserName,
						Score:              r.Score,
						Date:               r.Date,
						ScenariosCompleted: r.ScenariosCompleted,
						Badge:              r.Badge,
					}
					s.mode = modeShow
				}
				return s, nil
			}
		}
	}
	return s, nil
}

func (s *CertificatesScreen) View(width, height int) string {
	switch s.mode {
	case modeName:
		prompt := lipgloss.NewStyle().Bold(true).Foreground(theme.Primary).
			Render("Who is this certificate for?")
		hint := lipgloss.NewStyle().Foreground(theme.TextDim).
			Render("Leave blank to use the configured name.")
		return lipgloss.NewStyle().
			Width(width).Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Render(prompt + "\n\n" + s.input.View() + "\n\n" + hint)

	case modeShow:
		card := cert.Render(s.showing, 64)
		return lipgloss.NewStyle().
			Width(width).Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Render(card)
	}

	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading certificates...")
	}
	if len(s.certs) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No certificates yet. Press n to issue one from your best score.")
	}

	var b strings.Builder
	b.WriteString("\n")
	for i, c := range s.certs {
		line := fmt.Sprintf("%s   %s   %d/100   %s", c.Date, c.UserName, c.Score, c.Badge)
		if i == s.selected {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).
				Render("  ▸ " + line))
		} else {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).
				Render("    " + line))
		}
		b.WriteString("\n")
	}
	return b.String()
}
