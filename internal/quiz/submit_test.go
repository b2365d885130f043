package quiz

import (
	"context"
	"errors"
	"testing"
	"time"
)

type fakeGrader struct {
	in     *QuizAttemptIn
	out    *QuizAttemptOut
	err    error
	called bool
}

func (f *fakeGrader) SubmitAttempt(_ context.Context, in QuizAttemptIn) (*QuizAttemptOut, error) {
	f.called = true
	f.in = &in
	return f.out, f.err
}

func TestSubmitBlocksOnUnanswered(t *testing.T) {
	grader := &fakeGrader{}
	submitter := NewSubmitter(grader)

	set := testSet()
	sheet := NewAnswerSheet()
	sheet.Record("q1", "A")

	_, err := submitter.Submit(context.Background(), set, sheet)

	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(ve.UnansweredIDs) != 2 {
		t.Errorf("expected 2 unanswered ids, got %v", ve.UnansweredIDs)
	}
	if grader.called {
		t.Error("validation failure must never reach the network")
	}
}

func TestSubmitBuildsPayload(t *testing.T) {
	grader := &fakeGrader{out: &QuizAttemptOut{AttemptID: "att-1", Score: 100}}
	submitter := NewSubmitter(grader)

	set := testSet()
	sheet := NewAnswerSheet()
	sheet.Record("q1", "A")
	sheet.Record("q2", "gdp")
	sheet.Record("q3", "A")

	before := time.Now()
	out, err := submitter.Submit(context.Background(), set, sheet)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.AttemptID != "att-1" {
		t.Errorf("expected server response returned, got %+v", out)
	}

	in := grader.in
	if in.ProblemSetID != "ps-1" {
		t.Errorf("expected problemset id, got %q", in.ProblemSetID)
	}
	if len(in.Items) != 3 {
		t.Errorf("expected 3 answers, got %d", len(in.Items))
	}
	if !in.StartedAt.Equal(sheet.StartedAt()) {
		t.Error("started_at must come from the sheet")
	}
	if in.FinishedAt.Before(in.StartedAt) || in.FinishedAt.Before(before) {
		t.Error("finished_at must be captured at submission time")
	}
}

func TestSubmitLeavesSheetIntact(t *testing.T) {
	grader := &fakeGrader{err: errors.New("boom")}
	submitter := NewSubmitter(grader)

	set := testSet()
	sheet := NewAnswerSheet()
	sheet.Record("q1", "A")
	sheet.Record("q2", "gdp")
	sheet.Record("q3", "A")

	_, err := submitter.Submit(context.Background(), set, sheet)
	if err == nil {
		t.Fatal("expected error")
	}
	if !sheet.AllAnswered(set) {
		t.Error("failed submission must not mutate the sheet")
	}
}
