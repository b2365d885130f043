package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/jaemin/econquiz/internal/api"
	"github.com/jaemin/econquiz/internal/demoflag"
	"github.com/jaemin/econquiz/internal/router"
	"github.com/jaemin/econquiz/internal/screen"
	"github.com/jaemin/econquiz/internal/screens/home"
	"github.com/jaemin/econquiz/internal/screens/quizrun"
	"github.com/jaemin/econquiz/internal/screens/review"
	"github.com/jaemin/econquiz/internal/store"
	"github.com/jaemin/econquiz/internal/ui/layout"
)

// Options carries the wired dependencies for the TUI.
type Options struct {
	Client    *api.Client
	EventRepo store.EventRepo
	StageRepo store.StageRepo
	Config    api.Config
	Watcher   *demoflag.Watcher
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	opts   Options
	router *router.Router
	width  int
	height int
}

// newAppModel creates a new AppModel with the home screen.
func newAppModel(opts Options) AppModel {
	homeScreen := home.New(opts.Client, opts.EventRepo, opts.StageRepo, opts.Config, opts.Watcher)
	return AppModel{
		opts:   opts,
		router: router.New(homeScreen),
	}
}

func (m AppModel) Init() tea.Cmd {
	active := m.router.Active()
	if active == nil {
		return nil
	}
	return active.Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	case review.RetryStagedMsg:
		// A retry set was staged; unwind to home and start a fresh
		// attempt cycle on it.
		next := quizrun.New(msg.Set, m.opts.Client, m.opts.EventRepo, m.opts.StageRepo, m.opts.Config)
		return m, m.router.ResetTo(next)
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

	demo := m.opts.Watcher != nil && m.opts.Watcher.Status().Enabled
	header := layout.RenderHeader(title, demo, m.width)

	footerHints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if provider, ok := active.(screen.KeyHintProvider); ok {
		if hints := provider.KeyHints(); len(hints) > 0 {
			footerHints = append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
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
	if opts.Watcher != nil {
		defer opts.Watcher.Close()
	}

	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
