// Package snapshot provides the daily snapshot store for the fantasy game's
// public JSON feeds: one verbatim payload per dataset per calendar day,
// fetched over the network at most once and persisted under
// <dir>/<dataset>/<YYYYMMDD>.json.
package snapshot

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/fantasymotogp/fantasy-data/internal/metrics"
)

// Client is the HTTP client for the public fantasy feeds. The feeds need no
// auth and no pagination; a single GET returns the complete current dataset.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *slog.Logger
}

// NewClient creates a feed client with rate limiting.
func NewClient(requestsPerMinute int, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	rps := float64(requestsPerMinute) / 60.0
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		limiter:    rate.NewLimiter(rate.Limit(rps), 1),
		logger:     logger,
	}
}

// Fetch performs a single rate-limited GET and returns the raw body.
// One attempt only: a failed fetch is fatal to the dataset load, so there is
// no retry layer here.
func (c *Client) Fetch(ctx context.Context, dataset, url string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.FeedFetchesTotal.WithLabelValues(dataset, "error").Inc()
		return nil, fmt.Errorf("fetch %s feed: %w", dataset, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		metrics.FeedFetchesTotal.WithLabelValues(dataset, fmt.Sprintf("%d", resp.StatusCode)).Inc()
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("fetch %s feed: status %d: %s", dataset, resp.StatusCode, string(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.FeedFetchesTotal.WithLabelValues(dataset, "error").Inc()
		return nil, fmt.Errorf("read %s feed body: %w", dataset, err)
	}

	metrics.FeedFetchesTotal.WithLabelValues(dataset, "200").Inc()
	c.logger.Info("Feed fetched",
		"dataset", dataset,
		"bytes", len(body),
		"elapsed", time.Since(start).Round(time.Millisecond))
	return body, nil
}
