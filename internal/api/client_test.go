package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jaemin/econquiz/internal/quiz"
)

func testClient(baseURL string) *Client {
	cfg := DefaultConfig()
	cfg.BaseURL = baseURL
	return NewClient(cfg)
}

func TestSubmitAttemptRoundTrip(t *testing.T) {
	var gotPath, gotMethod string
	var gotBody quiz.QuizAttemptIn

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotMethod = r.Method
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		json.NewEncoder(w).Encode(quiz.QuizAttemptOut{
			AttemptID: "att-1",
			Total:     2,
			Correct:   1,
			Score:     50,
		})
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	out, err := c.SubmitAttempt(context.Background(), quiz.QuizAttemptIn{
		ProblemSetID: "ps-1",
		Items:        []quiz.AnswerItem{{QuestionID: "q1", UserAnswer: "A"}},
		StartedAt:    time.Now().Add(-time.Minute),
		FinishedAt:   time.Now(),
	})

	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/quiz/attempts", gotPath)
	assert.Equal(t, "ps-1", gotBody.ProblemSetID)
	assert.Equal(t, "att-1", out.AttemptID)
	assert.Equal(t, 50, out.Score)
}

func TestServerErrorSurfacesDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(map[string]string{"detail": "answers must not be empty"})
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	_, err := c.SubmitAttempt(context.Background(), quiz.QuizAttemptIn{})

	var se *ServerError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusUnprocessableEntity, se.Status)
	assert.Equal(t, "answers must not be empty", se.Error())
}

func TestServerErrorGenericFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html>bad gateway</html>"))
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	_, err := c.GetAttempt(context.Background(), "att-1")

	var se *ServerError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusBadGateway, se.Status)
	assert.Contains(t, se.Error(), "502")
}

func TestTimeoutClassified(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	cfg := DefaultConfig()
	cfg.BaseURL = srv.URL
	cfg.ReadTimeout = 20 * time.Millisecond
	c := NewClient(cfg)

	_, err := c.GetAttempt(context.Background(), "att-1")

	var te *TransportError
	require.ErrorAs(t, err, &te)
	assert.True(t, te.Timeout)
	assert.True(t, IsTimeout(err))
}

func TestConnectivityFailureClassified(t *testing.T) {
	// Nothing listens here.
	c := testClient("http://127.0.0.1:1")

	_, err := c.GetAttempt(context.Background(), "att-1")

	var te *TransportError
	require.ErrorAs(t, err, &te)
	assert.False(t, te.Timeout)
	assert.False(t, IsTimeout(err))
}

func TestListAttemptsQuery(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		json.NewEncoder(w).Encode(quiz.QuizAttemptsResponse{Page: 3, Size: 10, Total: 42, Pages: 5})
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	resp, err := c.ListAttempts(context.Background(), 3, 10)

	require.NoError(t, err)
	assert.Equal(t, "page=3&size=10", gotQuery)
	assert.Equal(t, 3, resp.Page)
	assert.Equal(t, 5, resp.Pages)
}

func TestExportAttemptPassthrough(t *testing.T) {
	csv := "question,answer\nq1,A\n"
	var gotPath, gotAccept string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		gotAccept = r.Header.Get("Accept")
		w.Header().Set("Content-Type", "text/csv")
		w.Write([]byte(csv))
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	raw, err := c.ExportAttempt(context.Background(), "att 1", ExportCSV)

	require.NoError(t, err)
	assert.Equal(t, "/quiz/attempts/att%201/export.csv", gotPath)
	assert.Equal(t, ExportCSV.MIMEType(), gotAccept)
	assert.Equal(t, csv, string(raw), "export bytes must be returned untouched")
}

func TestExportFormatMIMEType(t *testing.T) {
	assert.Equal(t, "application/json", ExportJSON.MIMEType())
	assert.Equal(t, "text/csv", ExportCSV.MIMEType())
}

func TestGenerateRetryRequest(t *testing.T) {
	var gotReq quiz.RetryRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		json.NewEncoder(w).Encode(quiz.RetryResponse{AttemptID: gotReq.AttemptID, Count: 3})
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	resp, err := c.GenerateRetry(context.Background(), quiz.RetryRequest{
		AttemptID:    "att-1",
		Model:        "gpt-4o-mini",
		NumQuestions: 3,
	})

	require.NoError(t, err)
	assert.Equal(t, "att-1", gotReq.AttemptID)
	assert.Equal(t, 3, gotReq.NumQuestions)
	assert.Equal(t, "att-1", resp.AttemptID)
}

func TestConfigValidate(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	cfg.BaseURL = "://not-a-url"
	assert.Error(t, cfg.Validate())
}

func TestUserMessageDistinguishesFailures(t *testing.T) {
	timeout := &TransportError{Timeout: true, Err: errors.New("deadline")}
	network := &TransportError{Err: errors.New("refused")}

	assert.NotEqual(t, UserMessage(timeout), UserMessage(network),
		"timeout and connectivity failures must read differently")
}
