// Package quizrun implements the active quiz screen: one question at a
// time, answer collection, and submission for grading.
package quizrun

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/jaemin/econquiz/internal/api"
	"github.com/jaemin/econquiz/internal/quiz"
	"github.com/jaemin/econquiz/internal/router"
	"github.com/jaemin/econquiz/internal/screen"
	"github.com/jaemin/econquiz/internal/screens/review"
	"github.com/jaemin/econquiz/internal/store"
	"github.com/jaemin/econquiz/internal/ui/components"
	"github.com/jaemin/econquiz/internal/ui/layout"
	"github.com/jaemin/econquiz/internal/ui/theme"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// QuizScreen runs one attempt cycle over the staged problem set.
type QuizScreen struct {
	set       *quiz.ProblemSet
	sheet     *quiz.AnswerSheet
	submitter *quiz.Submitter

	client    *api.Client
	eventRepo store.EventRepo
	stageRepo store.StageRepo
	cfg       api.Config

	index  int
	choice components.ChoiceList
	input  components.TextInput

	submitting   bool
	spinnerFrame int
	submitted    *quiz.QuizAttemptOut
	quitConfirm  bool
	validation   string
	errMsg       string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates a QuizScreen over the given staged set.
func New(set *quiz.ProblemSet, client *api.Client, eventRepo store.EventRepo, stageRepo store.StageRepo, cfg api.Config) *QuizScreen {
	s := &QuizScreen{
		set:       set,
		sheet:     quiz.NewAnswerSheet(),
		submitter: quiz.NewSubmitter(client),
		client:    client,
		eventRepo: eventRepo,
		stageRepo: stageRepo,
		cfg:       cfg,
	}
	s.loadItem(0)
	return s
}

func (s *QuizScreen) Init() tea.Cmd {
	if s.current().IsMultipleChoice() {
		return nil
	}
	return s.input.Init()
}

func (s *QuizScreen) Title() string {
	return "Quiz"
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.quitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "Abandon attempt"},
			{Key: "N", Description: "Keep going"},
		}
	}
	if s.submitted != nil {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Review"},
			{Key: "Esc", Description: "Home"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Answer"},
		{Key: "←→", Description: "Question"},
		{Key: "Ctrl+S", Description: "Submit"},
		{Key: "Esc", Description: "Quit"},
	}
}

func (s *QuizScreen) current() quiz.ProblemItem {
	return s.set.Items[s.index]
}

// loadItem swaps the answer widget to question i, restoring any
// previously recorded answer.
func (s *QuizScreen) loadItem(i int) {
	s.index = i
	item := s.set.Items[i]
	recorded := s.sheet.Get(item.ID)

	if item.IsMultipleChoice() {
		s.choice = components.NewChoiceList(item.Options, recorded)
		return
	}

	s.input = components.NewTextInput("Type your answer...", 200)
	if recorded != "" {
		s.input.Model.SetValue(recorded)
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case spinnerTickMsg:
		if !s.submitting {
			return s, nil
		}
		s.spinnerFrame++
		return s, s.spinnerTick()

	case submitDoneMsg:
		return s.handleSubmitDone(msg)

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s, nil
}

func (s *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.submitting {
		return s, nil
	}

	if s.quitConfirm {
		switch msg.String() {
		case "y", "Y":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "N", "esc":
			s.quitConfirm = false
		}
		return s, nil
	}

	if s.submitted != nil {
		switch msg.String() {
		case "enter":
			return s, s.pushReview(s.submitted)
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return s, nil
	}

	switch msg.String() {
	case "esc":
		s.quitConfirm = true
		return s, nil
	case "ctrl+s":
		return s.beginSubmit()
	case "left":
		if s.index > 0 {
			s.loadItem(s.index - 1)
			return s, s.Init()
		}
		return s, nil
	case "right":
		if s.index < len(s.set.Items)-1 {
			s.loadItem(s.index + 1)
			return s, s.Init()
		}
		return s, nil
	}

	item := s.current()
	if item.IsMultipleChoice() {
		var picked bool
		s.choice, picked = s.choice.Update(msg)
		if picked {
			s.sheet.Record(item.ID, s.choice.PickedLabel())
			s.validation = ""
			return s.advanceOrSubmit()
		}
		return s, nil
	}

	if msg.String() == "enter" {
		if strings.TrimSpace(s.input.Value()) != "" {
			s.sheet.Record(item.ID, s.input.Value())
			s.validation = ""
			return s.advanceOrSubmit()
		}
		return s, nil
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// advanceOrSubmit moves to the next question, or starts submission
// after the last one is answered.
func (s *QuizScreen) advanceOrSubmit() (screen.Screen, tea.Cmd) {
	if s.index < len(s.set.Items)-1 {
		s.loadItem(s.index + 1)
		return s, s.Init()
	}
	return s.beginSubmit()
}

func (s *QuizScreen) beginSubmit() (screen.Screen, tea.Cmd) {
	if missing := s.sheet.Unanswered(s.set); len(missing) > 0 {
		s.validation = unansweredMessage(s.set, missing)
		return s, nil
	}

	s.submitting = true
	s.errMsg = ""
	return s, tea.Batch(s.submitCmd(), s.spinnerTick())
}

func (s *QuizScreen) submitCmd() tea.Cmd {
	set, sheet := s.set, s.sheet
	submitter := s.submitter
	return func() tea.Msg {
		attempt, err := submitter.Submit(context.Background(), set, sheet)
		return submitDoneMsg{Attempt: attempt, Err: err}
	}
}

func (s *QuizScreen) spinnerTick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}

func (s *QuizScreen) handleSubmitDone(msg submitDoneMsg) (screen.Screen, tea.Cmd) {
	s.submitting = false

	if msg.Err != nil {
		var ve *quiz.ValidationError
		if errors.As(msg.Err, &ve) {
			s.validation = unansweredMessage(s.set, ve.UnansweredIDs)
			return s, nil
		}
		s.errMsg = api.UserMessage(msg.Err)
		return s, nil
	}

	s.submitted = msg.Attempt
	return s, tea.Batch(
		s.logAttempt(msg.Attempt),
		s.pushReview(msg.Attempt),
	)
}

// logAttempt appends the graded submission to the local trace. Failing
// to record never disturbs the attempt flow.
func (s *QuizScreen) logAttempt(attempt *quiz.QuizAttemptOut) tea.Cmd {
	repo := s.eventRepo
	source := string(s.set.Source)
	return func() tea.Msg {
		if repo == nil {
			return nil
		}
		_ = repo.AppendAttemptEvent(context.Background(), store.AttemptEventData{
			AttemptID:    attempt.AttemptID,
			ProblemSetID: attempt.ProblemSetID,
			Total:        attempt.Total,
			Correct:      attempt.Correct,
			Score:        attempt.Score,
			DurationSecs: int(attempt.Duration().Seconds()),
			Source:       source,
		})
		return nil
	}
}

func (s *QuizScreen) pushReview(attempt *quiz.QuizAttemptOut) tea.Cmd {
	next := review.New(attempt, s.set, s.client, s.stageRepo, s.cfg)
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: next}
	}
}

// unansweredMessage converts unanswered question ids into the
// question-number listing shown inline.
func unansweredMessage(set *quiz.ProblemSet, ids []string) string {
	pos := make(map[string]int, len(set.Items))
	for i, item := range set.Items {
		pos[item.ID] = i + 1
	}
	nums := make([]string, 0, len(ids))
	for _, id := range ids {
		if n, ok := pos[id]; ok {
			nums = append(nums, fmt.Sprintf("%d", n))
		}
	}
	return "Unanswered questions: " + strings.Join(nums, ", ")
}

func (s *QuizScreen) View(width, height int) string {
	if s.quitConfirm {
		return lipgloss.NewStyle().
			Width(width).Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Render(theme.Body.Render("Abandon this attempt?") + "\n\n" +
				theme.Hint.Render("y = yes, n = keep going"))
	}

	if s.submitting {
		frame := spinnerFrames[s.spinnerFrame%len(spinnerFrames)]
		return lipgloss.NewStyle().
			Width(width).Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Render(theme.Subtitle.Render(frame + "  Grading your answers...\n\nThis can take a while."))
	}

	if s.submitted != nil {
		return lipgloss.NewStyle().
			Width(width).Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Render(theme.Title.Render("Attempt graded") + "\n\n" +
				theme.Body.Render(quiz.ScoreLine(s.submitted)) + "\n\n" +
				theme.Hint.Render("Enter to review, Esc for home"))
	}

	return s.renderQuestion(width, height)
}

func (s *QuizScreen) renderQuestion(width, height int) string {
	item := s.current()

	progress := components.NewProgressBar(
		fmt.Sprintf("Question %d/%d", s.index+1, len(s.set.Items)),
		float64(s.index+1)/float64(len(s.set.Items)),
		44)

	var meta string
	if item.Topic != "" || item.Level != "" {
		meta = theme.Hint.Render(strings.TrimSpace(fmt.Sprintf("%s %s", item.Topic, item.Level)))
	}

	var body string
	if item.IsMultipleChoice() {
		body = s.choice.View()
	} else {
		body = s.input.View() + "\n" + theme.Hint.Render("Free answer — Enter to record")
	}

	var sections []string
	sections = append(sections, progress.View(), "")
	sections = append(sections, theme.Body.Bold(true).Render(item.Question))
	if meta != "" {
		sections = append(sections, meta)
	}
	sections = append(sections, "", body)

	if s.validation != "" {
		sections = append(sections, "", theme.Incorrect.Render(s.validation))
	}
	if s.errMsg != "" {
		sections = append(sections, "",
			theme.Incorrect.Render(s.errMsg),
			theme.Hint.Render("Ctrl+S to try submitting again"))
	}

	card := theme.Card.Width(minInt(width-8, 76)).Render(strings.Join(sections, "\n"))

	return lipgloss.NewStyle().
		Width(width).Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(card)
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
