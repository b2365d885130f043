package quiz

import "time"

// Topic classifies a problem by economics subject area.
type Topic string

const (
	TopicMacro   Topic = "macro"
	TopicFinance Topic = "finance"
	TopicTrade   Topic = "trade"
	TopicStats   Topic = "stats"
)

// Level is the difficulty of a problem.
type Level string

const (
	LevelBasic        Level = "basic"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

// ProblemItem is one generated question. Immutable once generated;
// attempt logic references it but never mutates it.
type ProblemItem struct {
	// ID identifies the question within its problem set.
	ID string `json:"id"`

	// Question is the prompt shown to the learner.
	Question string `json:"question"`

	// Options holds the choice texts for multiple-choice questions,
	// in display order. Nil or empty for free-text questions.
	Options []string `json:"options,omitempty"`

	// Answer is the canonical correct answer. For multiple choice this
	// is the option label ("A".."Z"), for free text the expected text.
	Answer string `json:"answer"`

	// Explanation is a worked solution shown during review.
	Explanation string `json:"explanation"`

	Topic Topic `json:"topic,omitempty"`
	Level Level `json:"level,omitempty"`
}

// IsMultipleChoice reports whether the item is answered by picking an option.
func (p ProblemItem) IsMultipleChoice() bool {
	return len(p.Options) > 0
}

// ProblemSetSource records how a staged problem set came to be.
type ProblemSetSource string

const (
	SourceGenerated ProblemSetSource = "generated"
	SourceRetry     ProblemSetSource = "retry"
)

// ProblemSet is an ordered collection of questions not yet attempted.
// It lives in the local staging store until a new set replaces it.
type ProblemSet struct {
	ID        string           `json:"id"`
	Title     string           `json:"title,omitempty"`
	Items     []ProblemItem    `json:"items"`
	Source    ProblemSetSource `json:"source"`
	CreatedAt time.Time        `json:"created_at"`
}

// ItemByID returns the item with the given question id, or nil.
func (ps *ProblemSet) ItemByID(id string) *ProblemItem {
	for i := range ps.Items {
		if ps.Items[i].ID == id {
			return &ps.Items[i]
		}
	}
	return nil
}

// AnswerItem is one collected answer, keyed by question id.
type AnswerItem struct {
	QuestionID string `json:"question_id"`
	UserAnswer string `json:"user_answer"`
}

// QuizAttemptIn is the grading submission payload.
type QuizAttemptIn struct {
	ProblemSetID string       `json:"problemset_id,omitempty"`
	Items        []AnswerItem `json:"items"`
	StartedAt    time.Time    `json:"started_at"`
	FinishedAt   time.Time    `json:"finished_at"`
}

// QuizAttemptItem is one graded line, produced by the server.
// is_correct and correct_answer are authoritative; the client never
// recomputes them.
type QuizAttemptItem struct {
	QuestionID    string `json:"question_id"`
	UserAnswer    string `json:"user_answer"`
	CorrectAnswer string `json:"correct_answer"`
	IsCorrect     bool   `json:"is_correct"`
}

// QuizAttemptOut is a graded attempt. Created once per submission,
// read-only thereafter; referenced by id for review, export and retry.
type QuizAttemptOut struct {
	AttemptID    string            `json:"attempt_id"`
	ProblemSetID string            `json:"problemset_id,omitempty"`
	Total        int               `json:"total"`
	Correct      int               `json:"correct"`
	Score        int               `json:"score"`
	Items        []QuizAttemptItem `json:"items"`
	StartedAt    time.Time         `json:"started_at"`
	FinishedAt   time.Time         `json:"finished_at"`
	CreatedAt    time.Time         `json:"created_at"`
}

// Duration returns how long the attempt took.
func (a *QuizAttemptOut) Duration() time.Duration {
	return a.FinishedAt.Sub(a.StartedAt)
}

// QuizAttemptsResponse is one page of a learner's attempt history,
// most recent first. pages == ceil(total/size).
type QuizAttemptsResponse struct {
	Items []QuizAttemptOut `json:"items"`
	Total int              `json:"total"`
	Page  int              `json:"page"`
	Size  int              `json:"size"`
	Pages int              `json:"pages"`
}

// RetryProblemItem is a regenerated problem. Unlike ProblemItem all
// classification fields are required, and the server supplies no id.
type RetryProblemItem struct {
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	Answer      string   `json:"answer"`
	Explanation string   `json:"explanation"`
	Topic       Topic    `json:"topic"`
	Level       Level    `json:"level"`
}

// RetryRequest asks the generation service for a remediation set.
type RetryRequest struct {
	AttemptID    string `json:"attempt_id"`
	Model        string `json:"model"`
	NumQuestions int    `json:"num_questions"`
}

// RetryResponse carries the regenerated problems for a prior attempt.
type RetryResponse struct {
	AttemptID string             `json:"attempt_id"`
	Count     int                `json:"count"`
	Problems  []RetryProblemItem `json:"problems"`
	CreatedAt time.Time          `json:"created_at"`
}
