// Package bbref fetches the season per-game table from Basketball Reference.
package bbref

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"nba-voice-stats/internal/domain"
	"nba-voice-stats/internal/infra"
)

const (
	DefaultURL     = "https://www.basketball-reference.com/leagues/NBA_2025_per_game.html"
	DefaultTableID = "per_game_stats"

	UserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
)

// Client downloads the page over plain HTTP and parses the stats table.
type Client struct {
	httpClient *http.Client
	tableID    string
	retry      infra.RetryConfig
}

func NewClient(tableID string) *Client {
	if tableID == "" {
		tableID = DefaultTableID
	}
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		tableID:    tableID,
		retry:      infra.DefaultRetryConfig(),
	}
}

func (c *Client) Fetch(ctx context.Context, url string) (*domain.StatsTable, error) {
	var page []byte

	err := infra.WithRetry(ctx, c.retry, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return infra.Permanent(fmt.Errorf("creating request: %w", err))
		}
		req.Header.Set("User-Agent", UserAgent)
		req.Header.Set("Accept", "text/html")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return fmt.Errorf("sending request: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			statusErr := fmt.Errorf("stats page returned %s", resp.Status)
			if infra.IsRetryableHTTPStatus(resp.StatusCode) {
				return statusErr
			}
			return infra.Permanent(statusErr)
		}

		page, err = io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("reading body: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return ParseTable(bytes.NewReader(page), c.tableID)
}
