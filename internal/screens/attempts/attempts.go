// Package attempts shows the paginated history of graded attempts.
package attempts

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/jaemin/econquiz/internal/api"
	"github.com/jaemin/econquiz/internal/quiz"
	"github.com/jaemin/econquiz/internal/router"
	"github.com/jaemin/econquiz/internal/screen"
	"github.com/jaemin/econquiz/internal/screens/review"
	"github.com/jaemin/econquiz/internal/store"
	"github.com/jaemin/econquiz/internal/ui/layout"
	"github.com/jaemin/econquiz/internal/ui/theme"
)

// DefaultPageSize matches the server-side listing default.
const DefaultPageSize = 10

type pageLoadedMsg struct {
	Resp *quiz.QuizAttemptsResponse
	Err  error
}

type localCountMsg struct {
	Count int
}

type attemptFetchedMsg struct {
	Attempt *quiz.QuizAttemptOut
	Err     error
}

// AttemptsScreen lists past attempts one page at a time.
type AttemptsScreen struct {
	client    *api.Client
	eventRepo store.EventRepo
	stageRepo store.StageRepo
	cfg       api.Config

	page       int
	resp       *quiz.QuizAttemptsResponse
	selected   int
	localCount int
	loading    bool
	errMsg     string
}

var _ screen.Screen = (*AttemptsScreen)(nil)
var _ screen.KeyHintProvider = (*AttemptsScreen)(nil)

// New creates an AttemptsScreen starting on the first page.
func New(client *api.Client, eventRepo store.EventRepo, stageRepo store.StageRepo, cfg api.Config) *AttemptsScreen {
	return &AttemptsScreen{
		client:    client,
		eventRepo: eventRepo,
		stageRepo: stageRepo,
		cfg:       cfg,
		page:      1,
		loading:   true,
	}
}

func (s *AttemptsScreen) Init() tea.Cmd {
	return tea.Batch(s.loadPage(s.page), s.loadLocalCount())
}

func (s *AttemptsScreen) Title() string {
	return "My Attempts"
}

func (s *AttemptsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Select"},
		{Key: "←→", Description: "Page"},
		{Key: "Enter", Description: "Review"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *AttemptsScreen) loadPage(page int) tea.Cmd {
	client := s.client
	return func() tea.Msg {
		resp, err := client.ListAttempts(context.Background(), page, DefaultPageSize)
		return pageLoadedMsg{Resp: resp, Err: err}
	}
}

func (s *AttemptsScreen) loadLocalCount() tea.Cmd {
	repo := s.eventRepo
	return func() tea.Msg {
		if repo == nil {
			return localCountMsg{}
		}
		n, err := repo.CountAttemptEvents(context.Background())
		if err != nil {
			return localCountMsg{}
		}
		return localCountMsg{Count: n}
	}
}

func (s *AttemptsScreen) fetchAttempt(id string) tea.Cmd {
	client := s.client
	return func() tea.Msg {
		attempt, err := client.GetAttempt(context.Background(), id)
		return attemptFetchedMsg{Attempt: attempt, Err: err}
	}
}

func (s *AttemptsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case pageLoadedMsg:
		s.loading = false
		if msg.Err != nil {
			s.errMsg = api.UserMessage(msg.Err)
			return s, nil
		}
		s.errMsg = ""
		s.resp = msg.Resp
		s.page = msg.Resp.Page
		if s.selected >= len(msg.Resp.Items) {
			s.selected = 0
		}
		return s, nil

	case localCountMsg:
		s.localCount = msg.Count
		return s, nil

	case attemptFetchedMsg:
		s.loading = false
		if msg.Err != nil {
			s.errMsg = api.UserMessage(msg.Err)
			return s, nil
		}
		// The originating problem set is only kept for the staged
		// attempt; historical reviews fall back to the graded items.
		next := review.New(msg.Attempt, s.originFor(msg.Attempt), s.client, s.stageRepo, s.cfg)
		return s, func() tea.Msg {
			return router.PushScreenMsg{Screen: next}
		}

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s, nil
}

// originFor returns the staged set when it is the one the attempt was
// taken on, letting a just-submitted attempt review with full option
// text.
func (s *AttemptsScreen) originFor(attempt *quiz.QuizAttemptOut) *quiz.ProblemSet {
	if s.stageRepo == nil || attempt.ProblemSetID == "" {
		return nil
	}
	staged, err := s.stageRepo.Active(context.Background())
	if err != nil || staged == nil || staged.ID != attempt.ProblemSetID {
		return nil
	}
	return staged
}

func (s *AttemptsScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.loading {
		return s, nil
	}

	switch msg.String() {
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.resp != nil && s.selected < len(s.resp.Items)-1 {
			s.selected++
		}
	case "left", "h":
		if s.resp != nil && s.page > 1 {
			s.loading = true
			return s, s.loadPage(s.page - 1)
		}
	case "right", "l":
		if s.resp != nil && s.page < s.resp.Pages {
			s.loading = true
			return s, s.loadPage(s.page + 1)
		}
	case "enter":
		if s.resp != nil && s.selected < len(s.resp.Items) {
			s.loading = true
			return s, s.fetchAttempt(s.resp.Items[s.selected].AttemptID)
		}
	}

	return s, nil
}

func (s *AttemptsScreen) View(width, height int) string {
	if s.loading {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading attempts...")
	}
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if s.resp == nil || len(s.resp.Items) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No attempts yet. Take a quiz first!")
	}

	var b strings.Builder
	b.WriteString("\n")

	header := fmt.Sprintf("%d attempts on record", s.resp.Total)
	if s.localCount > 0 {
		header += fmt.Sprintf("  ·  %d from this machine", s.localCount)
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Subtitle.Render(header)))
	b.WriteString("\n\n")

	for i, a := range s.resp.Items {
		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %2d questions  %s  %s",
			prefix,
			quiz.FormatAttemptDate(a.CreatedAt),
			a.Total,
			scoreCell(a.Score),
			quiz.FormatDuration(a.Duration()),
		)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		renderPager(s.page, s.resp.Pages)))
	b.WriteString("\n")

	return b.String()
}

// scoreCell renders the score with its band color: green at 80+,
// yellow at 60+, red below.
func scoreCell(score int) string {
	text := fmt.Sprintf("%3d%%", score)
	switch {
	case score >= 80:
		return theme.Correct.Render(text)
	case score >= 60:
		return lipgloss.NewStyle().Foreground(theme.Warning).Bold(true).Render(text)
	default:
		return theme.Incorrect.Render(text)
	}
}

// renderPager draws the five-page window with arrows greyed out at
// the bounds.
func renderPager(current, pages int) string {
	window := quiz.PageWindow(current, pages)
	if len(window) == 0 {
		return ""
	}

	var parts []string

	left := theme.PageInactive.Render("←")
	if current <= 1 {
		left = lipgloss.NewStyle().Foreground(theme.Border).Render("←")
	}
	parts = append(parts, left)

	for _, p := range window {
		cell := fmt.Sprintf("%d", p)
		if p == current {
			parts = append(parts, theme.PageActive.Render(cell))
		} else {
			parts = append(parts, theme.PageInactive.Render(cell))
		}
	}

	right := theme.PageInactive.Render("→")
	if current >= pages {
		right = lipgloss.NewStyle().Foreground(theme.Border).Render("→")
	}
	parts = append(parts, right)

	return strings.Join(parts, " ")
}
