package quiz

import (
	"strings"
	"time"
)

// AnswerSheet collects the learner's responses for the active problem
// set, keyed by question id. It is the only mutable state of an attempt
// cycle; submission reads it but never changes it.
type AnswerSheet struct {
	answers   map[string]string
	startedAt time.Time
}

// NewAnswerSheet creates an empty sheet with the start timestamp set to
// now. StartedAt marks when the problem set was first displayed.
func NewAnswerSheet() *AnswerSheet {
	return &AnswerSheet{
		answers:   make(map[string]string),
		startedAt: time.Now(),
	}
}

// Record stores the answer for a question, overwriting any prior value.
func (s *AnswerSheet) Record(questionID, answer string) {
	s.answers[questionID] = answer
}

// Get returns the recorded answer for a question, or "".
func (s *AnswerSheet) Get(questionID string) string {
	return s.answers[questionID]
}

// StartedAt returns the timestamp captured when the sheet was created
// or last reset.
func (s *AnswerSheet) StartedAt() time.Time {
	return s.startedAt
}

// AllAnswered reports whether every item in the set has a non-empty
// recorded answer.
func (s *AnswerSheet) AllAnswered(set *ProblemSet) bool {
	return len(s.Unanswered(set)) == 0
}

// Unanswered returns the ids of items with no non-empty answer, in set
// order.
func (s *AnswerSheet) Unanswered(set *ProblemSet) []string {
	var missing []string
	for _, item := range set.Items {
		if strings.TrimSpace(s.answers[item.ID]) == "" {
			missing = append(missing, item.ID)
		}
	}
	return missing
}

// Items converts the sheet into submission order, one AnswerItem per
// problem in the set.
func (s *AnswerSheet) Items(set *ProblemSet) []AnswerItem {
	items := make([]AnswerItem, 0, len(set.Items))
	for _, p := range set.Items {
		items = append(items, AnswerItem{
			QuestionID: p.ID,
			UserAnswer: s.answers[p.ID],
		})
	}
	return items
}

// Reset clears all recorded answers and reissues a fresh start
// timestamp, beginning a new attempt cycle over the same set.
func (s *AnswerSheet) Reset() {
	s.answers = make(map[string]string)
	s.startedAt = time.Now()
}
