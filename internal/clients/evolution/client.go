package evolution

import (
	"agenda-server/internal/messaging"
	"agenda-server/internal/observability"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const (
	defaultTimeout = 30 * time.Second
	maxErrorBody   = 4 << 10
)

var ErrInvalidRoute = errors.New("evolution route is incomplete")

// APIError is returned when the gateway answers with a non-2xx status
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("evolution api returned status %d: %s", e.StatusCode, e.Body)
}

// sendTextRequest is the body of the sendText endpoint
type sendTextRequest struct {
	Number string `json:"number"`
	Text   string `json:"text"`
}

// Client sends WhatsApp text messages through an Evolution API server
type Client struct {
	httpClient *http.Client
	logger     *observability.Logger
}

// NewClient creates a new Evolution API client. A non-positive timeout uses the default.
func NewClient(timeout time.Duration, logger *observability.Logger) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

var _ messaging.Sender = (*Client)(nil)

// SendText posts a text message to number through the route's instance
func (c *Client) SendText(ctx context.Context, route messaging.Route, number, text string) error {
	if route.BaseURL == "" || route.APIKey == "" || route.InstanceName == "" {
		return ErrInvalidRoute
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "gateway", Value: "evolution"},
		observability.Field{Key: "instance", Value: route.InstanceName},
	)

	payload, err := json.Marshal(sendTextRequest{Number: number, Text: text})
	if err != nil {
		return fmt.Errorf("failed to marshal send text request: %w", err)
	}

	endpoint := route.BaseURL + "/message/sendText/" + url.PathEscape(route.InstanceName)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create send text request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", route.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error(ctx, "failed to call evolution api", err)
		return fmt.Errorf("failed to send text: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		apiErr := &APIError{StatusCode: resp.StatusCode, Body: string(body)}
		c.logger.Error(ctx, "evolution api rejected message", apiErr)
		return apiErr
	}

	// drain so the connection can be reused
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}
