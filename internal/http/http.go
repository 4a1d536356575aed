// Package http provides a wrapper around the retryablehttp.Client
// for making HTTP requests with retry capabilities.
package http

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

const (
	defaultRetryMax = 3
	defaultTimeout  = 30 * time.Second
	maxErrorBody    = 4 << 10
)

type HTTPDoer interface {
	Do(*retryablehttp.Request) (*http.Response, error)
}

type HTTP struct {
	*retryablehttp.Client
}

var _ HTTPDoer = (*retryablehttp.Client)(nil)

type Config struct {
	Logger   *slog.Logger
	RetryMax int
	Timeout  time.Duration
}

func DefaultConfig() Config {
	return Config{
		RetryMax: defaultRetryMax,
		Timeout:  defaultTimeout,
	}
}

func New(config Config) *HTTP {
	client := retryablehttp.NewClient()
	client.RetryMax = config.RetryMax
	if config.Timeout > 0 {
		client.HTTPClient.Timeout = config.Timeout
	}
	if config.Logger != nil {
		// *slog.Logger satisfies retryablehttp.LeveledLogger
		client.Logger = config.Logger
	} else {
		client.Logger = nil
	}
	return &HTTP{
		Client: client,
	}
}

// ExpectStatus2xx returns an error carrying the (truncated) response body
// when the status is outside 200-299. The body is closed in that case.
func ExpectStatus2xx(resp *http.Response) error {
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		_ = resp.Body.Close()
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(body))
	}
	return nil
}
