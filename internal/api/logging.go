package api

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/jaemin/econquiz/internal/store"
)

// loggingDoer is a decorator that records every API request as an
// event in the local store.
type loggingDoer struct {
	inner Doer
	repo  store.EventRepo
}

// WithLogging wraps the client's transport with request-event logging.
func WithLogging(c *Client, repo store.EventRepo) {
	c.SetDoer(&loggingDoer{inner: c.doer, repo: repo})
}

func (l *loggingDoer) Do(req *http.Request) (*http.Response, error) {
	start := time.Now()

	resp, err := l.inner.Do(req)

	data := store.RequestEventData{
		Method:    req.Method,
		Path:      req.URL.Path,
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   err == nil,
	}
	if resp != nil {
		data.Status = resp.StatusCode
		data.Success = resp.StatusCode >= 200 && resp.StatusCode <= 299
	}
	if err != nil {
		data.ErrorMessage = err.Error()
	}

	// Log the event but never fail the request if logging fails.
	if logErr := l.repo.AppendRequestEvent(req.Context(), data); logErr != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log request event: %v\n", logErr)
	}

	return resp, err
}
