package quiz

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// DefaultRetryCount is the size of a regenerated remediation set.
const DefaultRetryCount = 3

// TopicUnknown labels a wrong answer whose originating problem is no
// longer available locally, so its real topic cannot be recovered.
const TopicUnknown Topic = "unknown"

// RetryGenerator requests a regenerated problem set biased toward a
// prior attempt's wrong answers. Implemented by the API client.
type RetryGenerator interface {
	GenerateRetry(ctx context.Context, req RetryRequest) (*RetryResponse, error)
}

// Partition splits a graded attempt's items by server-reported
// correctness. Every item lands in exactly one of the two slices.
func Partition(attempt *QuizAttemptOut) (wrong, correct []QuizAttemptItem) {
	for _, item := range attempt.Items {
		if item.IsCorrect {
			correct = append(correct, item)
		} else {
			wrong = append(wrong, item)
		}
	}
	return wrong, correct
}

// WrongTopics counts wrong answers per topic by joining each graded
// item back to its originating problem in the staged set. The attempt
// record itself carries no topic field, so items whose origin set is
// gone are counted under TopicUnknown rather than misattributed to a
// constant label.
func WrongTopics(attempt *QuizAttemptOut, origin *ProblemSet) map[Topic]int {
	counts := make(map[Topic]int)
	wrong, _ := Partition(attempt)
	for _, item := range wrong {
		topic := TopicUnknown
		if origin != nil {
			if p := origin.ItemByID(item.QuestionID); p != nil && p.Topic != "" {
				topic = p.Topic
			}
		}
		counts[topic]++
	}
	return counts
}

// RetryItemID builds the synthetic id for a regenerated item. The
// server supplies no stable ids for fresh problems, so the client
// derives deterministic, collision-free ids within the batch.
func RetryItemID(attemptID string, index int) string {
	return fmt.Sprintf("retry-%s-%d", attemptID, index)
}

// RetryComposer derives a remediation problem set from a past attempt.
type RetryComposer struct {
	generator RetryGenerator
	model     string
	count     int
}

// NewRetryComposer creates a composer using the given generation model
// selector. count <= 0 falls back to DefaultRetryCount.
func NewRetryComposer(g RetryGenerator, model string, count int) *RetryComposer {
	if count <= 0 {
		count = DefaultRetryCount
	}
	return &RetryComposer{generator: g, model: model, count: count}
}

// Compose requests a regenerated set for the attempt and stages it as
// a new active problem set ready for a fresh attempt cycle. The
// returned set carries synthetic per-item ids and source "retry".
// Failures are returned as-is for the caller to classify; nothing is
// retried automatically.
func (c *RetryComposer) Compose(ctx context.Context, attempt *QuizAttemptOut) (*ProblemSet, error) {
	resp, err := c.generator.GenerateRetry(ctx, RetryRequest{
		AttemptID:    attempt.AttemptID,
		Model:        c.model,
		NumQuestions: c.count,
	})
	if err != nil {
		return nil, fmt.Errorf("generate retry problems: %w", err)
	}

	items := make([]ProblemItem, 0, len(resp.Problems))
	for i, p := range resp.Problems {
		items = append(items, ProblemItem{
			ID:          RetryItemID(attempt.AttemptID, i),
			Question:    p.Question,
			Options:     p.Options,
			Answer:      p.Answer,
			Explanation: p.Explanation,
			Topic:       p.Topic,
			Level:       p.Level,
		})
	}

	return &ProblemSet{
		ID:        uuid.New().String(),
		Title:     fmt.Sprintf("Adaptive retry set (%d problems)", len(items)),
		Items:     items,
		Source:    SourceRetry,
		CreatedAt: time.Now(),
	}, nil
}
