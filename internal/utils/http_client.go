package utils

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/idea-backlog/models"
)

const (
	healthPath           = "/health"
	defaultClientTimeout = 5 * time.Second
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient("http://localhost:8000")
//	err := client.CheckHealth(ctx)
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates and returns a new HTTPClient bound to baseURL.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient(baseURL string) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(defaultClientTimeout).
		SetHeader("Accept", ContentTypeJSON)

	return &HTTPClient{Client: client}
}

// CheckHealth calls GET /health and succeeds only on 200 {"status":"ok"}.
func (c *HTTPClient) CheckHealth(ctx context.Context) error {
	var health models.HealthResponse

	resp, err := c.R().
		SetContext(ctx).
		SetResult(&health).
		Get(healthPath)
	if err != nil {
		return fmt.Errorf("health request failed: %w", err)
	}

	if resp.IsError() {
		return fmt.Errorf("health request returned status %d: %s", resp.StatusCode(), resp.String())
	}

	if health.Status != models.HealthStatusOK {
		return fmt.Errorf("unexpected health status %q", health.Status)
	}

	return nil
}
