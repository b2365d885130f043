package review

import (
	"time"

	"github.com/jaemin/econquiz/internal/quiz"
)

// exportDoneMsg is sent when an export save resolves.
type exportDoneMsg struct {
	Path string
	Err  error
}

// retryDoneMsg is sent when retry-set generation and staging resolve.
type retryDoneMsg struct {
	Set *quiz.ProblemSet
	Err error
}

// spinnerTickMsg animates the busy spinner.
type spinnerTickMsg time.Time

// RetryStagedMsg tells the application root that a freshly generated
// retry set has been staged and a new attempt cycle should begin.
type RetryStagedMsg struct {
	Set *quiz.ProblemSet
}
