package dictionary

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/avast/retry-go"
	"github.com/go-resty/resty/v2"
)

//go:generate mockgen -source=fetcher.go -destination=../mocks/dictionary/mock_fetcher.go -package=mock_dictionary

// Fetcher retrieves the raw bulk dictionary payload.
type Fetcher interface {
	Fetch(ctx context.Context) ([]byte, error)
}

// HTTPFetcher fetches the bulk dictionary resource over HTTP, retrying
// transient failures.
type HTTPFetcher struct {
	url    string
	client *resty.Client
}

// NewHTTPFetcher creates an HTTPFetcher for the given resource URL.
func NewHTTPFetcher(url string) *HTTPFetcher {
	return &HTTPFetcher{
		url:    url,
		client: resty.New(),
	}
}

// Fetch downloads the resource body. Server errors, rate limiting and network
// failures are retried with backoff; client errors are not.
func (f *HTTPFetcher) Fetch(ctx context.Context) ([]byte, error) {
	var body []byte
	err := retry.Do(
		func() error {
			res, err := f.client.R().
				SetContext(ctx).
				Get(f.url)
			if err != nil {
				return fmt.Errorf("client.R.Get > %w", err)
			}
			if res.StatusCode() != http.StatusOK {
				return fmt.Errorf("status code: %d, body: %s", res.StatusCode(), truncateBody(res.Body()))
			}
			body = res.Body()
			return nil
		},
		retry.Attempts(3),
		retry.Delay(500*time.Millisecond),
		retry.LastErrorOnly(true),
		retry.RetryIf(isRetryableError),
	)
	if err != nil {
		return nil, fmt.Errorf("retry.Do > %w", err)
	}
	return body, nil
}

// isRetryableError reports whether a fetch attempt is worth repeating.
func isRetryableError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	if strings.Contains(errStr, "status code: 5") {
		return true
	}
	if strings.Contains(errStr, "status code: 429") {
		return true
	}
	if strings.Contains(errStr, "connection refused") || strings.Contains(errStr, "i/o timeout") {
		return true
	}
	if strings.Contains(errStr, "EOF") {
		return true
	}
	return false
}

func truncateBody(body []byte) string {
	const maxLen = 256
	if len(body) > maxLen {
		return string(body[:maxLen]) + "..."
	}
	return string(body)
}
