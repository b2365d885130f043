package review

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/jaemin/econquiz/internal/api"
	"github.com/jaemin/econquiz/internal/quiz"
)

func gradedAttempt() *quiz.QuizAttemptOut {
	now := time.Now()
	return &quiz.QuizAttemptOut{
		AttemptID:    "att-1",
		ProblemSetID: "ps-1",
		Total:        3,
		Correct:      1,
		Score:        33,
		Items: []quiz.QuizAttemptItem{
			{QuestionID: "q1", UserAnswer: "A", CorrectAnswer: "A", IsCorrect: true},
			{QuestionID: "q2", UserAnswer: "B", CorrectAnswer: "C", IsCorrect: false},
			{QuestionID: "q-gone", UserAnswer: "A", CorrectAnswer: "D", IsCorrect: false},
		},
		StartedAt:  now.Add(-2 * time.Minute),
		FinishedAt: now,
	}
}

func originSet() *quiz.ProblemSet {
	return &quiz.ProblemSet{
		ID: "ps-1",
		Items: []quiz.ProblemItem{
			{ID: "q1", Question: "What is GDP?", Options: []string{"a", "b", "c", "d"}, Answer: "A", Topic: quiz.TopicMacro},
			{ID: "q2", Question: "What drives inflation?", Options: []string{"a", "b", "c", "d"}, Answer: "C", Topic: quiz.TopicMacro},
		},
		Source:    quiz.SourceGenerated,
		CreatedAt: time.Now(),
	}
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func TestReviewScreen_MissedConceptsBreakdown(t *testing.T) {
	s := New(gradedAttempt(), originSet(), nil, nil, api.DefaultConfig())
	view := s.View(80, 40)

	if !strings.Contains(view, "Missed concepts") {
		t.Fatal("expected the wrong-topic analysis block in the view")
	}
	if !strings.Contains(view, "2 of 3 wrong") {
		t.Error("expected the wrong/total partition counts")
	}
	if !strings.Contains(view, "macro ×1") {
		t.Error("expected the joined topic of the missed question")
	}
	if !strings.Contains(view, "unknown ×1") {
		t.Error("expected the unknown fallback for the question missing from the origin set")
	}
}

func TestReviewScreen_NoAnalysisWhenAllCorrect(t *testing.T) {
	attempt := gradedAttempt()
	for i := range attempt.Items {
		attempt.Items[i].IsCorrect = true
	}
	attempt.Correct = attempt.Total
	attempt.Score = 100

	s := New(attempt, originSet(), nil, nil, api.DefaultConfig())
	if strings.Contains(s.View(80, 40), "Missed concepts") {
		t.Error("a perfect attempt has nothing to analyze")
	}
}

func TestReviewScreen_AnalysisWithoutOriginCountsUnknown(t *testing.T) {
	s := New(gradedAttempt(), nil, nil, nil, api.DefaultConfig())
	if !strings.Contains(s.View(80, 40), "unknown ×2") {
		t.Error("with no origin set every wrong answer counts as unknown")
	}
}

func TestReviewScreen_ScrollKeysDoNotTriggerActions(t *testing.T) {
	s := New(gradedAttempt(), originSet(), nil, nil, api.DefaultConfig())

	_, cmd := s.Update(keyPress('j'))
	if cmd != nil {
		t.Error("j must scroll, not launch an action")
	}
	if s.offset != 1 {
		t.Errorf("offset = %d after j, want 1", s.offset)
	}

	_, cmd = s.Update(keyPress('k'))
	if cmd != nil {
		t.Error("k must scroll, not launch an action")
	}
	if s.offset != 0 {
		t.Errorf("offset = %d after k, want 0", s.offset)
	}
}

func TestReviewScreen_ExportKeyStartsExport(t *testing.T) {
	s := New(gradedAttempt(), originSet(), nil, nil, api.DefaultConfig())

	_, cmd := s.Update(keyPress('e'))
	if cmd == nil {
		t.Fatal("expected a command starting the JSON export")
	}
	if !s.busy {
		t.Error("export must mark the screen busy")
	}
}
