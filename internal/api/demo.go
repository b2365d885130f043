package api

import (
	"context"
	"net/http"
)

// DemoStatus is the demo-mode feature flag reported by the backend.
type DemoStatus struct {
	Enabled bool   `json:"enabled"`
	Message string `json:"message,omitempty"`
}

// GetDemoStatus fetches the current demo-mode flag.
func (c *Client) GetDemoStatus(ctx context.Context) (*DemoStatus, error) {
	var out DemoStatus
	if err := c.doJSON(ctx, http.MethodGet, "/demo/status", nil, c.readTimeout, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
