package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/jaemin/econquiz/internal/quiz"
)

// ExportFormat names a server-side export encoding.
type ExportFormat string

const (
	ExportJSON ExportFormat = "json"
	ExportCSV  ExportFormat = "csv"
)

// MIMEType returns the content type of the export encoding.
func (f ExportFormat) MIMEType() string {
	if f == ExportCSV {
		return "text/csv"
	}
	return "application/json"
}

// SubmitAttempt sends collected answers for grading and returns the
// authoritative graded result. Uses the long timeout: grading may
// involve server-side generation work.
func (c *Client) SubmitAttempt(ctx context.Context, in quiz.QuizAttemptIn) (*quiz.QuizAttemptOut, error) {
	var out quiz.QuizAttemptOut
	if err := c.doJSON(ctx, http.MethodPost, "/quiz/attempts", in, c.submitTimeout, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetAttempt fetches a stored attempt by id.
func (c *Client) GetAttempt(ctx context.Context, attemptID string) (*quiz.QuizAttemptOut, error) {
	var out quiz.QuizAttemptOut
	path := "/quiz/attempts/" + url.PathEscape(attemptID)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, c.readTimeout, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListAttempts fetches one page of the learner's attempt history,
// most recent first. Pages are 1-based; requesting a page outside
// [1, pages] is a caller error.
func (c *Client) ListAttempts(ctx context.Context, page, size int) (*quiz.QuizAttemptsResponse, error) {
	var out quiz.QuizAttemptsResponse
	path := fmt.Sprintf("/quiz/attempts?page=%d&size=%d", page, size)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, c.readTimeout, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ExportAttempt fetches the raw encoded bytes of a stored attempt.
// The encoding is produced server-side; the bytes are returned
// untouched.
func (c *Client) ExportAttempt(ctx context.Context, attemptID string, format ExportFormat) ([]byte, error) {
	path := fmt.Sprintf("/quiz/attempts/%s/export.%s", url.PathEscape(attemptID), format)
	return c.doRaw(ctx, http.MethodGet, path, nil, c.readTimeout, format.MIMEType())
}

// GenerateRetry asks the backend to regenerate a small problem set
// biased toward the attempt's wrong answers. Long timeout: this runs
// a generation model server-side.
func (c *Client) GenerateRetry(ctx context.Context, req quiz.RetryRequest) (*quiz.RetryResponse, error) {
	var out quiz.RetryResponse
	if err := c.doJSON(ctx, http.MethodPost, "/quiz/retry", req, c.submitTimeout, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

var _ quiz.Grader = (*Client)(nil)
var _ quiz.RetryGenerator = (*Client)(nil)
