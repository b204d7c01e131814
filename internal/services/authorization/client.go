// Package authorization calls the external transfer decision service.
package authorization

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// DefaultTimeout bounds the whole authorization round trip.
const DefaultTimeout = 3 * time.Second

// ErrUnavailable marks transport-level failures talking to the decision
// service. Callers treat it the same as a denial; it exists so an outage is
// distinguishable from an explicit refusal in the logs.
var ErrUnavailable = errors.New("authorization service unavailable")

type decision struct {
	Data struct {
		Authorization bool `json:"authorization"`
	} `json:"data"`
}

// Client is an HTTP client for the authorization endpoint.
type Client struct {
	endpoint string
	client   *http.Client
}

// NewClient creates a client for the given endpoint.
func NewClient(endpoint string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

// Authorize asks the decision service whether the transfer may proceed.
// Only an explicit true in the success payload counts as approval; every
// other shape, status or failure is a denial.
func (c *Client) Authorize(ctx context.Context) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusInternalServerError {
		return false, fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}

	var d decision
	if err := json.NewDecoder(resp.Body).Decode(&d); err != nil {
		return false, nil
	}

	return resp.StatusCode < http.StatusMultipleChoices && d.Data.Authorization, nil
}
