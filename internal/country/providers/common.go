package providers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"time"

	"github.com/sony/gobreaker"
)

// RetryConfig controls exponential backoff behaviour.
type RetryConfig struct {
	MaxRetries   int
	InitialDelay time.Duration
	MaxDelay     time.Duration
}

var defaultRetry = RetryConfig{
	MaxRetries:   3,
	InitialDelay: 500 * time.Millisecond,
	MaxDelay:     5 * time.Second,
}

var (
	errRateLimited = errors.New("rate limited")
	errServerError = errors.New("server error")
	errUnexpected  = errors.New("unexpected status code")
	errCircuitOpen = errors.New("circuit breaker open")
)

// sourceClient wraps an HTTP client with retries, exponential backoff, and a
// per-source circuit breaker. Each adapter owns one so a flapping upstream
// trips only its own breaker.
type sourceClient struct {
	http    *http.Client
	retry   RetryConfig
	circuit *gobreaker.CircuitBreaker
}

func newSourceClient(client *http.Client, name string) *sourceClient {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})
	return &sourceClient{
		http:    client,
		retry:   defaultRetry,
		circuit: cb,
	}
}

// getJSON fetches url and decodes the response body into out, retrying
// rate-limit and server errors with exponential backoff.
func (c *sourceClient) getJSON(ctx context.Context, url string, out any) error {
	if c.http == nil {
		return errors.New("http client not configured")
	}

	var attempt int
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return err
		}

		result, err := c.circuit.Execute(func() (interface{}, error) {
			resp, execErr := c.http.Do(req)
			if execErr != nil {
				return nil, execErr
			}
			defer resp.Body.Close()

			switch {
			case resp.StatusCode == http.StatusTooManyRequests:
				return nil, errRateLimited
			case resp.StatusCode >= 500:
				return nil, errServerError
			case resp.StatusCode < 200 || resp.StatusCode >= 300:
				return nil, fmt.Errorf("%w: %d", errUnexpected, resp.StatusCode)
			}

			var body json.RawMessage
			if decErr := json.NewDecoder(resp.Body).Decode(&body); decErr != nil {
				return nil, decErr
			}
			return body, nil
		})

		if err == nil {
			body, ok := result.(json.RawMessage)
			if !ok {
				return fmt.Errorf("unexpected result type from circuit breaker")
			}
			return json.Unmarshal(body, out)
		}

		// An open circuit means the upstream is already known-bad; do not
		// burn retries against it.
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return fmt.Errorf("%w: %v", errCircuitOpen, err)
		}

		if !retryable(err) || attempt >= c.retry.MaxRetries {
			return err
		}

		delay := c.retry.InitialDelay * time.Duration(math.Pow(2, float64(attempt)))
		if c.retry.MaxDelay > 0 && delay > c.retry.MaxDelay {
			delay = c.retry.MaxDelay
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}

		attempt++
	}
}

// retryable reports whether a fresh attempt could plausibly succeed.
// Client errors (4xx) are deterministic and not worth retrying; rate
// limiting, server errors, and transport failures are transient.
func retryable(err error) bool {
	return !errors.Is(err, errUnexpected)
}
