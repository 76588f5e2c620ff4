package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/AlvaroMoyaL/fitapp/internal/errors"
)

const (
	maxFetchAttempts = 3
	// Initial delay before retrying a rate-limited request. Doubles on every
	// further attempt.
	initialRetryDelay = 1500 * time.Millisecond
)

// ErrRateLimited is returned when the remote API keeps responding with
// HTTP 429 after all retry attempts.
var ErrRateLimited = errors.NewSentinel("catalog API rate limited")

// Client fetches exercises from the remote catalog API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
	retryDelay time.Duration
}

// NewClient creates a catalog API client for the given base URL.
func NewClient(baseURL string, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second}, //nolint:mnd,exhaustruct // request budget for a catalog page.
		logger:     logger,
		retryDelay: initialRetryDelay,
	}
}

// FetchBodyPart retrieves all exercises for one body part. Responses with
// HTTP 429 are retried with exponential backoff up to maxFetchAttempts times.
func (c *Client) FetchBodyPart(ctx context.Context, bodyPart string) ([]Exercise, error) {
	requestURL := fmt.Sprintf("%s/exercises/bodyPart/%s", c.baseURL, url.PathEscape(bodyPart))

	delay := c.retryDelay
	for attempt := 1; ; attempt++ {
		exercises, retryable, err := c.fetchOnce(ctx, requestURL)
		if err == nil {
			return exercises, nil
		}
		if !retryable || attempt >= maxFetchAttempts {
			return nil, err
		}

		c.logger.LogAttrs(ctx, slog.LevelDebug, "retrying catalog fetch",
			slog.String("bodyPart", bodyPart),
			slog.Int("attempt", attempt),
			slog.Duration("delay", delay))
		select {
		case <-ctx.Done():
			return nil, errors.Wrap(ctx.Err(), "wait for retry")
		case <-time.After(delay):
		}
		delay *= 2
	}
}

// fetchOnce performs a single request. The second return value reports whether
// the failure was a rate limit that is worth retrying.
func (c *Client) fetchOnce(ctx context.Context, requestURL string) ([]Exercise, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, false, errors.Wrap(err, "build catalog request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, false, errors.Wrap(err, "catalog request")
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, true, errors.Wrap(ErrRateLimited, "catalog request", slog.String("url", requestURL))
	case resp.StatusCode != http.StatusOK:
		return nil, false, errors.Wrap(
			errors.New("unexpected status"), "catalog request",
			slog.String("url", requestURL), slog.Int("status", resp.StatusCode))
	}

	var exercises []Exercise
	if err = json.NewDecoder(resp.Body).Decode(&exercises); err != nil {
		return nil, false, errors.Wrap(err, "decode catalog response")
	}

	return exercises, false, nil
}
