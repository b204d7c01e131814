package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// DefaultRequestTimeout bounds a single notification HTTP call.
const DefaultRequestTimeout = 5 * time.Second

type payload struct {
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Client posts payee notifications to the external endpoint.
type Client struct {
	endpoint string
	client   *http.Client
}

// NewClient creates a client for the given endpoint.
func NewClient(endpoint string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}
	return &Client{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

// Send delivers one notification. A non-2xx response is a failure.
func (c *Client) Send(ctx context.Context, email, message string) error {
	body, err := json.Marshal(payload{Email: email, Message: message})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("notification endpoint returned status %d", resp.StatusCode)
	}
	return nil
}
