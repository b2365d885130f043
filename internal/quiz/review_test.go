package quiz

import (
	"testing"
)

func TestOptionLabelBijection(t *testing.T) {
	for i := 0; i < 26; i++ {
		label := OptionLabel(i)
		if label == "" {
			t.Fatalf("no label for index %d", i)
		}
		if got := OptionIndex(label); got != i {
			t.Errorf("OptionIndex(OptionLabel(%d)) = %d", i, got)
		}
	}

	if OptionLabel(0) != "A" || OptionLabel(1) != "B" || OptionLabel(25) != "Z" {
		t.Errorf("unexpected labels: %s %s %s", OptionLabel(0), OptionLabel(1), OptionLabel(25))
	}
	if OptionLabel(26) != "" {
		t.Error("expected no label past Z")
	}
	if OptionIndex("?") != -1 || OptionIndex("") != -1 {
		t.Error("expected -1 for invalid labels")
	}
}

func TestBuildReviewChoiceStates(t *testing.T) {
	set := &ProblemSet{
		ID: "ps-1",
		Items: []ProblemItem{
			{ID: "q1", Question: "Pick one", Options: []string{"x", "y", "z"}, Answer: "B"},
		},
	}
	attempt := &QuizAttemptOut{
		AttemptID: "a-1",
		Total:     1,
		Items: []QuizAttemptItem{
			{QuestionID: "q1", UserAnswer: "A", CorrectAnswer: "B", IsCorrect: false},
		},
	}

	items := BuildReview(attempt, set)
	if len(items) != 1 {
		t.Fatalf("expected 1 review item, got %d", len(items))
	}

	choices := items[0].Choices
	if len(choices) != 3 {
		t.Fatalf("expected 3 choices, got %d", len(choices))
	}

	if choices[0].State != ChoiceSelectedWrong {
		t.Errorf("A: expected SelectedWrong, got %v", choices[0].State)
	}
	if choices[1].State != ChoiceCorrectUnselected {
		t.Errorf("B: expected CorrectUnselected, got %v", choices[1].State)
	}
	if choices[2].State != ChoiceNeutral {
		t.Errorf("C: expected Neutral, got %v", choices[2].State)
	}
}

func TestBuildReviewCorrectSelection(t *testing.T) {
	set := &ProblemSet{
		Items: []ProblemItem{
			{ID: "q1", Question: "Pick one", Options: []string{"x", "y"}, Answer: "A"},
		},
	}
	attempt := &QuizAttemptOut{
		Items: []QuizAttemptItem{
			{QuestionID: "q1", UserAnswer: "A", CorrectAnswer: "A", IsCorrect: true},
		},
	}

	choices := BuildReview(attempt, set)[0].Choices
	if choices[0].State != ChoiceSelectedCorrect {
		t.Errorf("expected SelectedCorrect, got %v", choices[0].State)
	}
	if choices[1].State != ChoiceNeutral {
		t.Errorf("expected Neutral, got %v", choices[1].State)
	}
}

func TestBuildReviewFreeText(t *testing.T) {
	set := &ProblemSet{
		Items: []ProblemItem{
			{ID: "q1", Question: "Define GDP", Answer: "gross domestic product"},
		},
	}
	attempt := &QuizAttemptOut{
		Items: []QuizAttemptItem{
			{QuestionID: "q1", UserAnswer: "output of a country", IsCorrect: false},
		},
	}

	items := BuildReview(attempt, set)
	if !items[0].FreeText() {
		t.Error("expected free-text item")
	}
	if len(items[0].Choices) != 0 {
		t.Error("free-text item must have no choices")
	}
}

func TestBuildReviewWithoutOriginSet(t *testing.T) {
	attempt := &QuizAttemptOut{
		Items: []QuizAttemptItem{
			{QuestionID: "q1", UserAnswer: "A", CorrectAnswer: "B"},
		},
	}

	items := BuildReview(attempt, nil)
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if items[0].Problem != nil {
		t.Error("expected nil problem when origin set is gone")
	}
	if !items[0].FreeText() {
		t.Error("itemless review falls back to free-text rendering")
	}
}

func TestScoreLine(t *testing.T) {
	attempt := &QuizAttemptOut{Score: 67, Correct: 2, Total: 3}
	if got := ScoreLine(attempt); got != "67%  (2/3 correct)" {
		t.Errorf("unexpected score line %q", got)
	}
}
