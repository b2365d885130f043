package quiz

import (
	"context"
	"errors"
	"testing"
)

func gradedAttempt() *QuizAttemptOut {
	return &QuizAttemptOut{
		AttemptID:    "att-9",
		ProblemSetID: "ps-1",
		Total:        3,
		Correct:      1,
		Score:        33,
		Items: []QuizAttemptItem{
			{QuestionID: "q1", UserAnswer: "A", CorrectAnswer: "B", IsCorrect: false},
			{QuestionID: "q2", UserAnswer: "42", CorrectAnswer: "42", IsCorrect: true},
			{QuestionID: "q3", UserAnswer: "C", CorrectAnswer: "A", IsCorrect: false},
		},
	}
}

func TestPartition(t *testing.T) {
	wrong, correct := Partition(gradedAttempt())

	if len(wrong) != 2 || len(correct) != 1 {
		t.Fatalf("expected 2 wrong / 1 correct, got %d / %d", len(wrong), len(correct))
	}
	if wrong[0].QuestionID != "q1" || wrong[1].QuestionID != "q3" {
		t.Errorf("unexpected wrong items: %v", wrong)
	}
	if correct[0].QuestionID != "q2" {
		t.Errorf("unexpected correct items: %v", correct)
	}
}

func TestWrongTopicsJoinsOriginSet(t *testing.T) {
	origin := &ProblemSet{
		ID: "ps-1",
		Items: []ProblemItem{
			{ID: "q1", Topic: TopicFinance},
			{ID: "q2", Topic: TopicMacro},
			{ID: "q3", Topic: TopicTrade},
		},
	}

	counts := WrongTopics(gradedAttempt(), origin)
	if counts[TopicFinance] != 1 || counts[TopicTrade] != 1 {
		t.Errorf("expected finance and trade counted, got %v", counts)
	}
	if counts[TopicMacro] != 0 {
		t.Errorf("correct answer's topic must not be counted, got %v", counts)
	}
}

func TestWrongTopicsWithoutOrigin(t *testing.T) {
	counts := WrongTopics(gradedAttempt(), nil)
	if counts[TopicUnknown] != 2 {
		t.Errorf("expected 2 unknown-topic wrongs, got %v", counts)
	}
}

func TestRetryItemIDsCollisionFree(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 10; i++ {
		id := RetryItemID("att-9", i)
		if seen[id] {
			t.Fatalf("duplicate id %s", id)
		}
		seen[id] = true
	}
	if !seen["retry-att-9-0"] || !seen["retry-att-9-9"] {
		t.Error("unexpected id format")
	}
}

type fakeGenerator struct {
	req  RetryRequest
	resp *RetryResponse
	err  error
}

func (f *fakeGenerator) GenerateRetry(_ context.Context, req RetryRequest) (*RetryResponse, error) {
	f.req = req
	return f.resp, f.err
}

func TestComposeBuildsStagedSet(t *testing.T) {
	gen := &fakeGenerator{
		resp: &RetryResponse{
			AttemptID: "att-9",
			Count:     2,
			Problems: []RetryProblemItem{
				{Question: "Inflation is?", Options: []string{"a", "b"}, Answer: "A", Topic: TopicFinance, Level: LevelBasic},
				{Question: "Exports minus imports?", Options: []string{"a", "b"}, Answer: "B", Topic: TopicTrade, Level: LevelBasic},
			},
		},
	}

	composer := NewRetryComposer(gen, "gpt-4o-mini", 0)
	set, err := composer.Compose(context.Background(), gradedAttempt())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gen.req.AttemptID != "att-9" {
		t.Errorf("expected attempt id forwarded, got %q", gen.req.AttemptID)
	}
	if gen.req.NumQuestions != DefaultRetryCount {
		t.Errorf("expected default count %d, got %d", DefaultRetryCount, gen.req.NumQuestions)
	}
	if gen.req.Model != "gpt-4o-mini" {
		t.Errorf("expected model forwarded, got %q", gen.req.Model)
	}

	if set.Source != SourceRetry {
		t.Errorf("expected retry source, got %q", set.Source)
	}
	if set.ID == "" {
		t.Error("expected a fresh set id")
	}
	if len(set.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(set.Items))
	}
	if set.Items[0].ID != "retry-att-9-0" || set.Items[1].ID != "retry-att-9-1" {
		t.Errorf("unexpected synthetic ids: %s, %s", set.Items[0].ID, set.Items[1].ID)
	}
}

func TestComposePropagatesFailure(t *testing.T) {
	sentinel := errors.New("generation backend down")
	composer := NewRetryComposer(&fakeGenerator{err: sentinel}, "m", 3)

	_, err := composer.Compose(context.Background(), gradedAttempt())
	if !errors.Is(err, sentinel) {
		t.Errorf("expected wrapped sentinel, got %v", err)
	}
}
