package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jaemin/econquiz/internal/quiz"
	"github.com/jaemin/econquiz/internal/store"
)

type recordingRepo struct {
	requests []store.RequestEventData
}

func (r *recordingRepo) AppendRequestEvent(_ context.Context, data store.RequestEventData) error {
	r.requests = append(r.requests, data)
	return nil
}

func (r *recordingRepo) AppendAttemptEvent(context.Context, store.AttemptEventData) error {
	return nil
}

func (r *recordingRepo) QueryAttemptEvents(context.Context, store.QueryOpts) ([]store.AttemptRecord, error) {
	return nil, nil
}

func (r *recordingRepo) CountAttemptEvents(context.Context) (int, error) {
	return 0, nil
}

func TestWithLoggingRecordsCall(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(quiz.QuizAttemptOut{AttemptID: "att-1"})
	}))
	defer srv.Close()

	repo := &recordingRepo{}
	c := testClient(srv.URL)
	WithLogging(c, repo)

	out, err := c.GetAttempt(context.Background(), "att-1")

	require.NoError(t, err, "logging must preserve the inner result")
	assert.Equal(t, "att-1", out.AttemptID)

	require.Len(t, repo.requests, 1)
	ev := repo.requests[0]
	assert.Equal(t, http.MethodGet, ev.Method)
	assert.Equal(t, "/quiz/attempts/att-1", ev.Path)
	assert.Equal(t, http.StatusOK, ev.Status)
	assert.True(t, ev.Success)
}

func TestWithLoggingRecordsFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"detail": "kaboom"})
	}))
	defer srv.Close()

	repo := &recordingRepo{}
	c := testClient(srv.URL)
	WithLogging(c, repo)

	_, err := c.GetAttempt(context.Background(), "att-1")
	require.Error(t, err)

	require.Len(t, repo.requests, 1)
	assert.False(t, repo.requests[0].Success)
	assert.Equal(t, http.StatusInternalServerError, repo.requests[0].Status)
}
