package quizrun

import (
	"time"

	"github.com/jaemin/econquiz/internal/quiz"
)

// submitDoneMsg is sent when the grading request resolves.
type submitDoneMsg struct {
	Attempt *quiz.QuizAttemptOut
	Err     error
}

// spinnerTickMsg animates the submit spinner.
type spinnerTickMsg time.Time
