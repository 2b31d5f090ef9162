// Package discogs fetches release documents from the Discogs API and maps
// them into the normalized album model used for cue sheet generation.
package discogs

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/jaki95/discogs-cue/config"
)

// Client talks to the Discogs REST API.
type Client struct {
	baseURL   string
	token     string
	userAgent string
	client    *http.Client
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		baseURL:   cfg.Discogs.BaseURL,
		token:     cfg.Discogs.Token,
		userAgent: cfg.Discogs.UserAgent,
		client: &http.Client{
			Timeout: time.Duration(cfg.Discogs.TimeoutSeconds) * time.Second,
		},
	}
}

// Release fetches a single release by ID.
func (c *Client) Release(ctx context.Context, id string) (*Release, error) {
	return c.fetch(ctx, fmt.Sprintf("%s/releases/%s", c.baseURL, id))
}

// Master fetches a master release by ID. Masters share the release schema
// for everything the mapper reads.
func (c *Client) Master(ctx context.Context, id string) (*Release, error) {
	return c.fetch(ctx, fmt.Sprintf("%s/masters/%s", c.baseURL, id))
}

func (c *Client) fetch(ctx context.Context, url string) (*Release, error) {
	slog.Debug("Fetching release info", "url", url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create release request: %w", err)
	}

	c.setCommonHeaders(req)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch release: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("discogs returned status %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read release response body: %w", err)
	}

	var release Release
	if err := json.Unmarshal(body, &release); err != nil {
		return nil, fmt.Errorf("failed to unmarshal release JSON: %w", err)
	}

	return &release, nil
}

func (c *Client) setCommonHeaders(req *http.Request) {
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if c.token != "" {
		req.Header.Set("Authorization", "Discogs token="+c.token)
	}
}
