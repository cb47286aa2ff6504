package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// APIError represents a non-2xx response from the upstream API.
type APIError struct {
	StatusCode int
	Message    string
	Body       []byte
}

func (e *APIError) Error() string {
	return fmt.Sprintf("sfl.world api error %d: %s", e.StatusCode, e.Message)
}

// IsRetryable returns true if the error should trigger a retry.
func (e *APIError) IsRetryable() bool {
	return e.StatusCode >= 500 || e.StatusCode == 429
}

// newExponentialBackOff returns the retry schedule for upstream fetches.
func newExponentialBackOff() *backoff.ExponentialBackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 1 * time.Second
	b.MaxInterval = 30 * time.Second
	b.Multiplier = 2.0
	b.RandomizationFactor = 0.1
	return b
}

// doRequest performs a single GET against the prices endpoint.
func (c *Client) doRequest(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.pricesURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Message:    http.StatusText(resp.StatusCode),
			Body:       body,
		}
	}

	return body, nil
}

// get performs a GET with exponential backoff and decodes the body
// into result. Client errors (4xx other than 429) are not retried.
func (c *Client) get(ctx context.Context, result any) error {
	attempt := 0
	operation := func() ([]byte, error) {
		if attempt > 0 {
			c.logger.Debug("retrying request", "attempt", attempt, "url", c.pricesURL)
		}
		attempt++

		body, err := c.doRequest(ctx)
		if err == nil {
			return body, nil
		}

		if apiErr, ok := err.(*APIError); ok && !apiErr.IsRetryable() {
			return nil, backoff.Permanent(err)
		}
		return nil, err
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(newExponentialBackOff(), uint64(c.maxRetries)),
		ctx,
	)

	body, err := backoff.RetryWithData(operation, policy)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, result); err != nil {
		return fmt.Errorf("unmarshal response: %w", err)
	}

	return nil
}
