package client

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// Health asks the service how it is doing.
func (c *Client) Health(ctx context.Context) (*HealthStatus, error) {
	var out HealthStatus
	if err := c.doJSON(ctx, http.MethodGet, apiBase+"/health", nil, nil, &out); err != nil {
		return nil, fmt.Errorf("health: %w", err)
	}
	return &out, nil
}

// IsHealthy reports whether the service answers the health endpoint with
// status "ok". Every failure collapses to false, transport failures included;
// call Health directly when the failure category matters.
func (c *Client) IsHealthy(ctx context.Context) bool {
	h, err := c.Health(ctx)
	return err == nil && h.Status == "ok"
}

// WaitHealthy polls the health endpoint every interval until the service
// reports ok or ctx ends. interval <= 0 defaults to one second.
func (c *Client) WaitHealthy(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		interval = time.Second
	}

	// Reuse a single timer across rounds.
	timer := time.NewTimer(time.Hour)
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}
	defer timer.Stop()

	for {
		if c.IsHealthy(ctx) {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		timer.Reset(interval)
		select {
		case <-timer.C:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
