// Package home is the application's entry screen.
package home

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/jaemin/econquiz/internal/api"
	"github.com/jaemin/econquiz/internal/demoflag"
	"github.com/jaemin/econquiz/internal/quiz"
	"github.com/jaemin/econquiz/internal/router"
	"github.com/jaemin/econquiz/internal/screen"
	"github.com/jaemin/econquiz/internal/screens/attempts"
	"github.com/jaemin/econquiz/internal/screens/quizrun"
	"github.com/jaemin/econquiz/internal/store"
	"github.com/jaemin/econquiz/internal/ui/components"
	"github.com/jaemin/econquiz/internal/ui/layout"
	"github.com/jaemin/econquiz/internal/ui/theme"
)

type stagedLoadedMsg struct {
	Set *quiz.ProblemSet
	Err error
}

type demoChangedMsg struct {
	Status api.DemoStatus
}

// HomeScreen is the main menu.
type HomeScreen struct {
	client    *api.Client
	eventRepo store.EventRepo
	stageRepo store.StageRepo
	cfg       api.Config

	menu     components.Menu
	staged   *quiz.ProblemSet
	stageErr string
	demo     api.DemoStatus
	demoCh   <-chan api.DemoStatus
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates the home screen. watcher may be nil when demo-mode
// polling is disabled.
func New(client *api.Client, eventRepo store.EventRepo, stageRepo store.StageRepo, cfg api.Config, watcher *demoflag.Watcher) *HomeScreen {
	h := &HomeScreen{
		client:    client,
		eventRepo: eventRepo,
		stageRepo: stageRepo,
		cfg:       cfg,
	}

	if watcher != nil {
		h.demo = watcher.Status()
		h.demoCh, _ = watcher.Subscribe()
	}

	items := []components.MenuItem{
		{Label: "START QUIZ", Action: func() tea.Cmd {
			if h.staged == nil {
				return nil
			}
			set := h.staged
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: quizrun.New(set, h.client, h.eventRepo, h.stageRepo, h.cfg),
				}
			}
		}},
		{Label: "MY ATTEMPTS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: attempts.New(h.client, h.eventRepo, h.stageRepo, h.cfg),
				}
			}
		}},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	h.menu = components.NewMenu(items)
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return tea.Batch(h.loadStaged(), h.waitDemo())
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
	}
}

// loadStaged reads the active problem set off the staging store.
func (h *HomeScreen) loadStaged() tea.Cmd {
	repo := h.stageRepo
	return func() tea.Msg {
		if repo == nil {
			return stagedLoadedMsg{}
		}
		set, err := repo.Active(context.Background())
		return stagedLoadedMsg{Set: set, Err: err}
	}
}

// waitDemo blocks on the demo-flag subscription until the next change.
func (h *HomeScreen) waitDemo() tea.Cmd {
	ch := h.demoCh
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		status, ok := <-ch
		if !ok {
			return nil
		}
		return demoChangedMsg{Status: status}
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case stagedLoadedMsg:
		if msg.Err != nil {
			var pe *store.ParseError
			if errors.As(msg.Err, &pe) {
				h.stageErr = "Staged problem set is corrupt. Run `econquiz reset` to clear it."
			} else {
				h.stageErr = msg.Err.Error()
			}
			return h, nil
		}
		h.staged = msg.Set
		h.stageErr = ""
		return h, nil

	case demoChangedMsg:
		h.demo = msg.Status
		return h, h.waitDemo()

	case tea.KeyMsg:
		var cmd tea.Cmd
		h.menu, cmd = h.menu.Update(msg)
		return h, cmd
	}

	return h, nil
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	title := theme.Title.Render("ECONQUIZ") + "\n" +
		theme.Subtitle.Render("AI-graded economics practice")
	sections = append(sections, title)

	if h.demo.Enabled {
		banner := theme.Banner.Render(" DEMO MODE ")
		if h.demo.Message != "" {
			banner += "  " + theme.Hint.Render(h.demo.Message)
		}
		sections = append(sections, banner)
	}

	sections = append(sections, h.renderStagedHint())
	sections = append(sections, h.menu.View())

	content := strings.Join(sections, "\n\n")

	return lipgloss.NewStyle().
		Width(width).Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

func (h *HomeScreen) renderStagedHint() string {
	if h.stageErr != "" {
		return theme.Incorrect.Render(h.stageErr)
	}
	if h.staged == nil {
		return theme.Hint.Render("No problem set staged. Run `econquiz stage <file.json>` to load one.")
	}

	label := fmt.Sprintf("%d questions staged", len(h.staged.Items))
	if h.staged.Source == quiz.SourceRetry {
		label = "Retry set ready: " + label
	}
	return theme.Body.Render(label)
}
