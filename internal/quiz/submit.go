package quiz

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// ValidationError is a local precondition failure: one or more
// questions have no answer. It is raised before any network call and
// blocks submission.
type ValidationError struct {
	UnansweredIDs []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("unanswered questions: %s", strings.Join(e.UnansweredIDs, ", "))
}

// Grader submits a completed answer sheet for authoritative grading.
// Implemented by the API client.
type Grader interface {
	SubmitAttempt(ctx context.Context, in QuizAttemptIn) (*QuizAttemptOut, error)
}

// Submitter assembles collected answers into a grading submission.
type Submitter struct {
	grader Grader
}

// NewSubmitter creates a Submitter backed by the given grader.
func NewSubmitter(g Grader) *Submitter {
	return &Submitter{grader: g}
}

// Submit validates that every question is answered, builds the
// QuizAttemptIn with finished_at captured now, and sends it for
// grading. On validation failure it returns a *ValidationError and
// nothing is sent. The answer sheet is left intact either way.
func (s *Submitter) Submit(ctx context.Context, set *ProblemSet, sheet *AnswerSheet) (*QuizAttemptOut, error) {
	if missing := sheet.Unanswered(set); len(missing) > 0 {
		return nil, &ValidationError{UnansweredIDs: missing}
	}

	in := QuizAttemptIn{
		ProblemSetID: set.ID,
		Items:        sheet.Items(set),
		StartedAt:    sheet.StartedAt(),
		FinishedAt:   time.Now(),
	}

	out, err := s.grader.SubmitAttempt(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("submit attempt: %w", err)
	}
	return out, nil
}
