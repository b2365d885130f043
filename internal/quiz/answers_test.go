package quiz

import (
	"testing"
	"time"
)

func testSet() *ProblemSet {
	return &ProblemSet{
		ID: "ps-1",
		Items: []ProblemItem{
			{ID: "q1", Question: "Demand curve slopes?", Options: []string{"Down", "Up"}, Answer: "A"},
			{ID: "q2", Question: "Define GDP", Answer: "gross domestic product"},
			{ID: "q3", Question: "CPI measures?", Options: []string{"Inflation", "Growth", "Trade"}, Answer: "A"},
		},
		Source: SourceGenerated,
	}
}

func TestRecordOverwrites(t *testing.T) {
	s := NewAnswerSheet()
	s.Record("q1", "A")
	s.Record("q1", "B")

	if got := s.Get("q1"); got != "B" {
		t.Errorf("expected later answer to win, got %q", got)
	}
}

func TestAllAnswered(t *testing.T) {
	set := testSet()
	s := NewAnswerSheet()

	if s.AllAnswered(set) {
		t.Error("empty sheet reported all answered")
	}

	s.Record("q1", "A")
	s.Record("q2", "gdp")
	if s.AllAnswered(set) {
		t.Error("partially answered sheet reported all answered")
	}

	s.Record("q3", "C")
	if !s.AllAnswered(set) {
		t.Error("fully answered sheet reported unanswered")
	}
}

func TestUnansweredIgnoresWhitespace(t *testing.T) {
	set := testSet()
	s := NewAnswerSheet()
	s.Record("q1", "A")
	s.Record("q2", "   ")
	s.Record("q3", "B")

	missing := s.Unanswered(set)
	if len(missing) != 1 || missing[0] != "q2" {
		t.Errorf("expected [q2], got %v", missing)
	}
}

func TestUnansweredPreservesSetOrder(t *testing.T) {
	set := testSet()
	s := NewAnswerSheet()
	s.Record("q2", "gdp")

	missing := s.Unanswered(set)
	if len(missing) != 2 || missing[0] != "q1" || missing[1] != "q3" {
		t.Errorf("expected [q1 q3], got %v", missing)
	}
}

func TestItemsFollowSetOrder(t *testing.T) {
	set := testSet()
	s := NewAnswerSheet()
	// Record out of order.
	s.Record("q3", "C")
	s.Record("q1", "A")
	s.Record("q2", "gdp")

	items := s.Items(set)
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}
	for i, want := range []string{"q1", "q2", "q3"} {
		if items[i].QuestionID != want {
			t.Errorf("item %d: expected %s, got %s", i, want, items[i].QuestionID)
		}
	}
}

func TestResetClearsAndReissuesStart(t *testing.T) {
	s := NewAnswerSheet()
	s.Record("q1", "A")
	before := s.StartedAt()

	time.Sleep(2 * time.Millisecond)
	s.Reset()

	if got := s.Get("q1"); got != "" {
		t.Errorf("expected cleared answers, got %q", got)
	}
	if !s.StartedAt().After(before) {
		t.Error("expected a fresh start timestamp after reset")
	}
}
