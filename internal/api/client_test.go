package api

import (
	"log/slog"
	"net/http"
	"os"
	"testing"
	"time"
)

func TestNewClient(t *testing.T) {
	t.Run("default values", func(t *testing.T) {
		c := NewClient("https://sfl.example.com/api/v1/prices")

		if c.pricesURL != "https://sfl.example.com/api/v1/prices" {
			t.Errorf("pricesURL = %q, want %q", c.pricesURL, "https://sfl.example.com/api/v1/prices")
		}
		if c.httpClient.Timeout != 30*time.Second {
			t.Errorf("Timeout = %v, want %v", c.httpClient.Timeout, 30*time.Second)
		}
		if c.maxRetries != 3 {
			t.Errorf("maxRetries = %d, want %d", c.maxRetries, 3)
		}
		if c.logger == nil {
			t.Error("logger should not be nil")
		}
	})

	t.Run("with timeout option", func(t *testing.T) {
		c := NewClient("https://sfl.example.com", WithTimeout(5*time.Second))
		if c.httpClient.Timeout != 5*time.Second {
			t.Errorf("Timeout = %v, want %v", c.httpClient.Timeout, 5*time.Second)
		}
	})

	t.Run("with max retries option", func(t *testing.T) {
		c := NewClient("https://sfl.example.com", WithMaxRetries(5))
		if c.maxRetries != 5 {
			t.Errorf("maxRetries = %d, want %d", c.maxRetries, 5)
		}
	})

	t.Run("with logger option", func(t *testing.T) {
		logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
		c := NewClient("https://sfl.example.com", WithLogger(logger))
		if c.logger != logger {
			t.Error("logger not set correctly")
		}
	})

	t.Run("with custom HTTP client", func(t *testing.T) {
		customClient := &http.Client{Timeout: 10 * time.Second}
		c := NewClient("https://sfl.example.com", WithHTTPClient(customClient))
		if c.httpClient != customClient {
			t.Error("custom HTTP client not set")
		}
	})
}

func TestAPIError(t *testing.T) {
	t.Run("Error method", func(t *testing.T) {
		err := &APIError{
			StatusCode: 404,
			Message:    "Not Found",
		}
		expected := "sfl.world api error 404: Not Found"
		if err.Error() != expected {
			t.Errorf("Error() = %q, want %q", err.Error(), expected)
		}
	})

	t.Run("IsRetryable", func(t *testing.T) {
		tests := []struct {
			code string
			err  *APIError
			want bool
		}{
			{"500", &APIError{StatusCode: 500}, true},
			{"502", &APIError{StatusCode: 502}, true},
			{"503", &APIError{StatusCode: 503}, true},
			{"429", &APIError{StatusCode: 429}, true},
			{"400", &APIError{StatusCode: 400}, false},
			{"404", &APIError{StatusCode: 404}, false},
		}
		for _, tt := range tests {
			if got := tt.err.IsRetryable(); got != tt.want {
				t.Errorf("IsRetryable(%s) = %v, want %v", tt.code, got, tt.want)
			}
		}
	})
}
