// Package pushover sends each answer to a phone, titled with the player it
// is about.
package pushover

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	DefaultURL   = "https://api.pushover.net/1/messages.json"
	DefaultTitle = "NBA Stats"

	// Pushover rejects titles over 250 characters.
	maxTitleLen = 250
)

type Client struct {
	token      string
	userKey    string
	apiURL     string
	httpClient *http.Client
}

func NewClient(token, userKey string) *Client {
	return NewClientWithURL(token, userKey, DefaultURL)
}

func NewClientWithURL(token, userKey, apiURL string) *Client {
	return &Client{
		token:      token,
		userKey:    userKey,
		apiURL:     apiURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) configured() bool {
	return c.token != "" && c.userKey != ""
}

// Notify pushes message under "NBA Stats: <title>". It is a no-op until both
// the app token and user key are set.
func (c *Client) Notify(ctx context.Context, title, message string) error {
	if !c.configured() {
		return nil
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.apiURL,
		strings.NewReader(c.form(title, message).Encode()),
	)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("sending notification for %q: %w", title, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("pushover rejected notification for %q: %s", title, resp.Status)
	}
	return nil
}

func (c *Client) form(title, message string) url.Values {
	data := url.Values{}
	data.Set("token", c.token)
	data.Set("user", c.userKey)
	data.Set("title", pushTitle(title))
	data.Set("message", message)
	return data
}

func pushTitle(player string) string {
	player = strings.TrimSpace(player)
	if player == "" {
		return DefaultTitle
	}
	title := DefaultTitle + ": " + player
	if r := []rune(title); len(r) > maxTitleLen {
		title = string(r[:maxTitleLen])
	}
	return title
}
