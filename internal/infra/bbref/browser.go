package bbref

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/chromedp/chromedp"

	"nba-voice-stats/internal/domain"
)

// BrowserClient renders the page in headless Chrome before parsing. Useful
// when the site rejects plain HTTP clients.
type BrowserClient struct {
	tableID string
	timeout time.Duration
	opts    []chromedp.ExecAllocatorOption
}

func NewBrowserClient(tableID string) *BrowserClient {
	if tableID == "" {
		tableID = DefaultTableID
	}
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.UserAgent(UserAgent),
	)
	return &BrowserClient{
		tableID: tableID,
		timeout: 60 * time.Second,
		opts:    opts,
	}
}

func (b *BrowserClient) Fetch(ctx context.Context, url string) (*domain.StatsTable, error) {
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, b.opts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	browserCtx, cancel := context.WithTimeout(browserCtx, b.timeout)
	defer cancel()

	var page string
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(url),
		chromedp.WaitReady(`body`, chromedp.ByQuery),
		chromedp.OuterHTML(`html`, &page, chromedp.ByQuery),
	)
	if err != nil {
		return nil, fmt.Errorf("chromedp: %w", err)
	}
	if page == "" {
		return nil, fmt.Errorf("empty HTML content returned")
	}

	return ParseTable(strings.NewReader(page), b.tableID)
}
