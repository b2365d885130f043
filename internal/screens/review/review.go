// Package review renders a graded attempt: per-item correctness,
// explanations, export actions, and adaptive retry composition.
package review

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/jaemin/econquiz/internal/api"
	"github.com/jaemin/econquiz/internal/export"
	"github.com/jaemin/econquiz/internal/quiz"
	"github.com/jaemin/econquiz/internal/router"
	"github.com/jaemin/econquiz/internal/screen"
	"github.com/jaemin/econquiz/internal/store"
	"github.com/jaemin/econquiz/internal/ui/components"
	"github.com/jaemin/econquiz/internal/ui/layout"
	"github.com/jaemin/econquiz/internal/ui/theme"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// ReviewScreen shows a graded attempt. origin is the staged problem
// set the attempt was taken on; it may be nil for historical attempts
// whose set is no longer available locally.
type ReviewScreen struct {
	attempt *quiz.QuizAttemptOut
	origin  *quiz.ProblemSet
	items   []quiz.ReviewItem

	wrongCount   int
	correctCount int
	wrongTopics  map[quiz.Topic]int

	client    *api.Client
	stageRepo store.StageRepo
	cfg       api.Config

	offset       int
	busy         bool
	busyLabel    string
	spinnerFrame int
	status       string
	errMsg       string
}

var _ screen.Screen = (*ReviewScreen)(nil)
var _ screen.KeyHintProvider = (*ReviewScreen)(nil)

// New creates a ReviewScreen for the given graded attempt.
func New(attempt *quiz.QuizAttemptOut, origin *quiz.ProblemSet, client *api.Client, stageRepo store.StageRepo, cfg api.Config) *ReviewScreen {
	wrong, correct := quiz.Partition(attempt)
	return &ReviewScreen{
		attempt:      attempt,
		origin:       origin,
		items:        quiz.BuildReview(attempt, origin),
		wrongCount:   len(wrong),
		correctCount: len(correct),
		wrongTopics:  quiz.WrongTopics(attempt, origin),
		client:       client,
		stageRepo:    stageRepo,
		cfg:          cfg,
	}
}

func (s *ReviewScreen) Init() tea.Cmd {
	return nil
}

func (s *ReviewScreen) Title() string {
	return "Review"
}

func (s *ReviewScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "E", Description: "Export JSON"},
		{Key: "C", Description: "Export CSV"},
		{Key: "R", Description: "Retry missed topics"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ReviewScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case spinnerTickMsg:
		if !s.busy {
			return s, nil
		}
		s.spinnerFrame++
		return s, s.spinnerTick()

	case exportDoneMsg:
		s.busy = false
		if msg.Err != nil {
			s.errMsg = api.UserMessage(msg.Err)
			return s, nil
		}
		s.status = "Saved " + msg.Path
		return s, nil

	case retryDoneMsg:
		return s.handleRetryDone(msg)

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s, nil
}

func (s *ReviewScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.busy {
		return s, nil
	}

	switch msg.String() {
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "up", "k":
		if s.offset > 0 {
			s.offset--
		}
	case "down", "j":
		if s.offset < len(s.items)-1 {
			s.offset++
		}
	case "e":
		return s.beginExport(api.ExportJSON)
	case "c":
		return s.beginExport(api.ExportCSV)
	case "r":
		return s.beginRetry()
	}

	return s, nil
}

func (s *ReviewScreen) beginExport(format api.ExportFormat) (screen.Screen, tea.Cmd) {
	s.busy = true
	s.busyLabel = "Exporting..."
	s.status = ""
	s.errMsg = ""

	client, id := s.client, s.attempt.AttemptID
	cmd := func() tea.Msg {
		path, err := export.Save(context.Background(), client, id, format, ".")
		return exportDoneMsg{Path: path, Err: err}
	}
	return s, tea.Batch(cmd, s.spinnerTick())
}

func (s *ReviewScreen) beginRetry() (screen.Screen, tea.Cmd) {
	s.busy = true
	s.busyLabel = "Generating retry problems..."
	s.status = ""
	s.errMsg = ""

	composer := quiz.NewRetryComposer(s.client, s.cfg.Model, quiz.DefaultRetryCount)
	attempt, stageRepo := s.attempt, s.stageRepo
	cmd := func() tea.Msg {
		ctx := context.Background()
		set, err := composer.Compose(ctx, attempt)
		if err != nil {
			return retryDoneMsg{Err: err}
		}
		if stageRepo != nil {
			if err := stageRepo.Stage(ctx, set); err != nil {
				return retryDoneMsg{Err: fmt.Errorf("stage retry set: %w", err)}
			}
		}
		return retryDoneMsg{Set: set}
	}
	return s, tea.Batch(cmd, s.spinnerTick())
}

func (s *ReviewScreen) handleRetryDone(msg retryDoneMsg) (screen.Screen, tea.Cmd) {
	s.busy = false

	if msg.Err != nil {
		if api.IsTimeout(msg.Err) {
			s.errMsg = "Retry generation is taking too long right now. Try again in a moment."
		} else {
			s.errMsg = api.UserMessage(msg.Err)
		}
		return s, nil
	}

	set := msg.Set
	return s, func() tea.Msg {
		return RetryStagedMsg{Set: set}
	}
}

func (s *ReviewScreen) spinnerTick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}

func (s *ReviewScreen) View(width, height int) string {
	if s.busy {
		frame := spinnerFrames[s.spinnerFrame%len(spinnerFrames)]
		return lipgloss.NewStyle().
			Width(width).Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Render(theme.Subtitle.Render(frame + "  " + s.busyLabel))
	}

	var b strings.Builder

	score := quiz.ScoreLine(s.attempt)
	header := theme.Title.Render("Attempt review") + "\n" +
		scoreStyle(s.attempt.Score).Render(score) + "  " +
		theme.Hint.Render(fmt.Sprintf("took %s", quiz.FormatDuration(s.attempt.Duration())))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, header))
	b.WriteString("\n\n")

	if s.status != "" {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Correct.Render(s.status)))
		b.WriteString("\n")
	}
	if s.errMsg != "" {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Incorrect.Render(s.errMsg)))
		b.WriteString("\n")
	}

	// Render from the scroll offset; lipgloss clips overflow to height.
	cardWidth := width - 8
	if cardWidth > 76 {
		cardWidth = 76
	}
	if s.wrongCount > 0 && s.offset == 0 {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			s.renderAnalysis(cardWidth)))
		b.WriteString("\n")
	}
	for i := s.offset; i < len(s.items); i++ {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			renderItem(s.items[i], cardWidth)))
		b.WriteString("\n")
	}

	return b.String()
}

// renderAnalysis summarizes the wrong answers by topic so the retry
// offer is grounded in what was actually missed. Topics sort by wrong
// count, busiest first.
func (s *ReviewScreen) renderAnalysis(width int) string {
	topics := make([]quiz.Topic, 0, len(s.wrongTopics))
	for t := range s.wrongTopics {
		topics = append(topics, t)
	}
	sort.Slice(topics, func(i, j int) bool {
		if s.wrongTopics[topics[i]] != s.wrongTopics[topics[j]] {
			return s.wrongTopics[topics[i]] > s.wrongTopics[topics[j]]
		}
		return topics[i] < topics[j]
	})

	parts := make([]string, 0, len(topics))
	for _, t := range topics {
		parts = append(parts, fmt.Sprintf("%s ×%d", t, s.wrongTopics[t]))
	}

	var b strings.Builder
	b.WriteString(theme.Body.Bold(true).Render("Missed concepts") + "\n")
	b.WriteString(theme.Body.Render(fmt.Sprintf("%d of %d wrong: %s",
		s.wrongCount, s.wrongCount+s.correctCount, strings.Join(parts, ", "))) + "\n")
	b.WriteString(theme.Hint.Render("Press R to practice fresh problems on these topics."))
	return theme.Card.Width(width).Render(b.String())
}

func renderItem(item quiz.ReviewItem, width int) string {
	var b strings.Builder

	mark := theme.Incorrect.Render("✗")
	if item.Graded.IsCorrect {
		mark = theme.Correct.Render("✓")
	}

	question := fmt.Sprintf("Q%d.", item.Number)
	if item.Problem != nil {
		question += " " + item.Problem.Question
	}
	b.WriteString(mark + " " + theme.Body.Bold(true).Render(question) + "\n\n")

	if item.FreeText() {
		b.WriteString(theme.Body.Render("Your answer: "+item.Graded.UserAnswer) + "\n")
		if !item.Graded.IsCorrect {
			b.WriteString(theme.Missed.Render("Correct answer: "+item.Graded.CorrectAnswer) + "\n")
		}
	} else {
		b.WriteString(components.RenderReviewChoices(item.Choices))
	}

	if item.Problem != nil && item.Problem.Explanation != "" {
		b.WriteString("\n" + theme.Hint.Render(item.Problem.Explanation) + "\n")
	}

	return theme.Card.Width(width).Render(b.String())
}

// scoreStyle picks the banding color: green at 80+, yellow at 60+,
// red below.
func scoreStyle(score int) lipgloss.Style {
	switch {
	case score >= 80:
		return theme.Correct
	case score >= 60:
		return lipgloss.NewStyle().Foreground(theme.Warning).Bold(true)
	default:
		return theme.Incorrect
	}
}
