package store

import (
	"context"
	"time"

	"github.com/jaemin/econquiz/internal/quiz"
)

// QueryOpts configures event queries.
type QueryOpts struct {
	Limit int // max results (0 = unlimited)
}

// RequestEventData captures a single backend API call.
type RequestEventData struct {
	Method       string
	Path         string
	Status       int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// AttemptEventData captures a graded submission for the local trace.
type AttemptEventData struct {
	AttemptID    string
	ProblemSetID string
	Total        int
	Correct      int
	Score        int
	DurationSecs int
	Source       string
}

// AttemptRecord is a stored attempt event with its timestamp.
type AttemptRecord struct {
	AttemptID    string
	ProblemSetID string
	Total        int
	Correct      int
	Score        int
	DurationSecs int
	Source       string
	Timestamp    time.Time
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendRequestEvent records one API call.
	AppendRequestEvent(ctx context.Context, data RequestEventData) error

	// AppendAttemptEvent records one graded submission.
	AppendAttemptEvent(ctx context.Context, data AttemptEventData) error

	// QueryAttemptEvents returns attempt events, most recent first.
	QueryAttemptEvents(ctx context.Context, opts QueryOpts) ([]AttemptRecord, error)

	// CountAttemptEvents returns the number of locally recorded attempts.
	CountAttemptEvents(ctx context.Context) (int, error)
}

// StageRepo manages the active (staged) problem set. At most one set
// is staged at a time; staging replaces the previous set.
type StageRepo interface {
	// Stage stores the set as the active one, replacing any prior set.
	Stage(ctx context.Context, set *quiz.ProblemSet) error

	// Active returns the staged set, or nil if none is staged.
	// A corrupt payload yields a *ParseError.
	Active(ctx context.Context) (*quiz.ProblemSet, error)

	// Clear removes any staged set.
	Clear(ctx context.Context) error
}
