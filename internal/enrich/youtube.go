package enrich

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

// VideoLookup finds one video URL for a free-text query. An empty result
// with a nil error means "nothing found"; lookups are best-effort and the
// caller never fails a job over them.
type VideoLookup interface {
	LookupURL(ctx context.Context, query string) (string, error)
	Enabled() bool
}

// YouTubeConfig for the video-lookup client. An empty APIKey disables the
// client entirely: every lookup returns "no result".
type YouTubeConfig struct {
	APIKey  string
	BaseURL string // default https://www.googleapis.com/youtube/v3
	Timeout time.Duration
}

type YouTubeClient struct {
	cfg     YouTubeConfig
	enabled bool
	http    *http.Client
	log     *slog.Logger
}

func NewYouTubeClient(cfg YouTubeConfig, logger *slog.Logger) *YouTubeClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://www.googleapis.com/youtube/v3"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &YouTubeClient{
		cfg:     cfg,
		enabled: cfg.APIKey != "",
		http:    &http.Client{Timeout: cfg.Timeout},
		log:     logger,
	}
}

// Enabled reports whether a lookup can ever return a result. Decided once
// at construction from key presence.
func (c *YouTubeClient) Enabled() bool { return c.enabled }

// LookupURL returns the canonical watch URL of the first search hit for the
// query, or "" when disabled or nothing matched.
func (c *YouTubeClient) LookupURL(ctx context.Context, query string) (string, error) {
	if !c.enabled {
		return "", nil
	}

	params := url.Values{}
	params.Set("part", "snippet")
	params.Set("type", "video")
	params.Set("maxResults", "1")
	params.Set("q", query)
	params.Set("key", c.cfg.APIKey)
	endpoint := c.cfg.BaseURL + "/search?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("video search: %w", err)
	}
	defer func(Body io.ReadCloser) {
		if cerr := Body.Close(); cerr != nil {
			c.log.Warn("video search body close error", "error", cerr)
		}
	}(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("video search status %d", resp.StatusCode)
	}

	var sr struct {
		Items []struct {
			ID struct {
				VideoID string `json:"videoId"`
			} `json:"id"`
		} `json:"items"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return "", fmt.Errorf("video search decode: %w", err)
	}
	if len(sr.Items) == 0 || sr.Items[0].ID.VideoID == "" {
		c.log.Debug("enrich.video.no_result", "query", query)
		return "", nil
	}
	return "https://www.youtube.com/watch?v=" + sr.Items[0].ID.VideoID, nil
}
