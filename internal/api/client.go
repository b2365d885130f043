package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"
)

// Doer executes a single HTTP request. It exists so the logging
// decorator can wrap the underlying transport.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client talks to the quiz backend. All methods take a context; the
// per-call deadline is applied from the configured timeout class.
type Client struct {
	baseURL       string
	doer          Doer
	readTimeout   time.Duration
	submitTimeout time.Duration
}

// NewClient creates a Client for the given config.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:       strings.TrimRight(cfg.BaseURL, "/"),
		doer:          &http.Client{},
		readTimeout:   cfg.ReadTimeout,
		submitTimeout: cfg.SubmitTimeout,
	}
}

// SetDoer replaces the underlying transport, used to install the
// request-logging decorator.
func (c *Client) SetDoer(d Doer) {
	c.doer = d
}

// doJSON issues a request and decodes a JSON response into out.
func (c *Client) doJSON(ctx context.Context, method, path string, body any, timeout time.Duration, out any) error {
	raw, err := c.doRaw(ctx, method, path, body, timeout, "application/json")
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}

// doRaw issues a request and returns the raw response bytes. accept,
// when non-empty, is sent as the Accept header.
func (c *Client) doRaw(ctx context.Context, method, path string, body any, timeout time.Duration, accept string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if accept != "" {
		req.Header.Set("Accept", accept)
	}

	resp, err := c.doer.Do(req)
	if err != nil {
		return nil, classifyTransport(err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, classifyTransport(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &ServerError{
			Status: resp.StatusCode,
			Detail: extractDetail(raw),
		}
	}

	return raw, nil
}

// classifyTransport wraps a transport failure, distinguishing timeouts
// from connectivity errors.
func classifyTransport(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return &TransportError{Timeout: true, Err: err}
	}
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return &TransportError{Timeout: true, Err: err}
	}
	return &TransportError{Err: err}
}

// extractDetail pulls the server's detail message out of an error
// body. Returns "" when the body is not the expected shape.
func extractDetail(raw []byte) string {
	var body struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return ""
	}
	return body.Detail
}
