package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/walkinmyshoes/wims/internal/config"
	"github.com/walkinmyshoes/wims/internal/router"
	"github.com/walkinmyshoes/wims/internal/screens/home"
	"github.com/walkinmyshoes/wims/internal/store"
	"github.com/walkinmyshoes/wims/internal/ui/layout"
)

// Options carries the dependencies the TUI needs.
type Options struct {
	Store  *store.Store
	Config *config.Config
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router    *router.Router
	bestScore float64
	badge     string
	width     int
	height    int
}

// newAppModel creates a new AppModel with the home screen.
func newAppModel(opts Options) AppModel {
	var eventRepo store.EventRepo
	var certRepo store.CertRepo
	var snapRepo store.SnapshotRepo
	if opts.Store != nil {
		eventRepo = opts.Store.EventRepo()
		certRepo = opts.Store.CertRepo()
		snapRepo = opts.Store.SnapshotRepo()
	}

	var bestScore float64
	var badge string
	if snapRepo != nil {
		if snap, err := snapRepo.Latest(context.Background()); err == nil && snap != nil {
			bestScore = snap.Data.BestScore
			badge = snap.Data.Badge
		}
	}

	homeScreen := home.New(eventRepo, certRepo, snapRepo, opts.Config)
	return AppModel{
		router:    router.New(homeScreen),
		bestScore: bestScore,
		badge:     badge,
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.bestScore, m.badge, m.width)

	var footerHints []layout.KeyHint
	if provider, ok := active.(router.KeyHintProvider); ok {
		footerHints = provider.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	} else {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
