package enrich

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// ImageService covers both image lookup (remote URL) and image generation
// (asset downloaded to local media storage). Both follow the same
// best-effort contract as video lookup: absent key means disabled.
type ImageService interface {
	SearchURL(ctx context.Context, query string) (string, error)
	GenerateFile(ctx context.Context, prompt string) (string, error)
	Enabled() bool
}

// ImageConfig for the image client. MediaDir is where generated assets are
// stored; the returned value from GenerateFile is the filename inside it.
type ImageConfig struct {
	APIKey   string
	BaseURL  string // default https://api.openai.com/v1
	MediaDir string
	Timeout  time.Duration
}

type ImageClient struct {
	cfg     ImageConfig
	enabled bool
	http    *http.Client
	log     *slog.Logger
}

func NewImageClient(cfg ImageConfig, logger *slog.Logger) *ImageClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.openai.com/v1"
	}
	if cfg.MediaDir == "" {
		cfg.MediaDir = "./media"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 60 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &ImageClient{
		cfg:     cfg,
		enabled: cfg.APIKey != "",
		http:    &http.Client{Timeout: cfg.Timeout},
		log:     logger,
	}
}

func (c *ImageClient) Enabled() bool { return c.enabled }

// SearchURL returns a remote image URL for the query, or "" when disabled
// or nothing matched.
func (c *ImageClient) SearchURL(ctx context.Context, query string) (string, error) {
	if !c.enabled {
		return "", nil
	}
	// Image generation doubles as search for this provider: ask for a
	// single matching illustration and hand back its remote URL.
	u, err := c.requestImageURL(ctx, query)
	if err != nil {
		return "", err
	}
	return u, nil
}

// GenerateFile generates an image for the prompt and downloads it into
// MediaDir under a unique filename, which it returns.
func (c *ImageClient) GenerateFile(ctx context.Context, prompt string) (string, error) {
	if !c.enabled {
		return "", nil
	}

	remote, err := c.requestImageURL(ctx, prompt)
	if err != nil {
		return "", err
	}
	if remote == "" {
		return "", nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, remote, nil)
	if err != nil {
		return "", err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("download image: %w", err)
	}
	defer func(Body io.ReadCloser) {
		if cerr := Body.Close(); cerr != nil {
			c.log.Warn("image download body close error", "error", cerr)
		}
	}(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("download image status %d", resp.StatusCode)
	}

	if err := os.MkdirAll(c.cfg.MediaDir, 0o755); err != nil {
		return "", fmt.Errorf("create media dir: %w", err)
	}
	name := uuid.New().String() + ".png"
	f, err := os.Create(filepath.Join(c.cfg.MediaDir, name))
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(f, resp.Body); err != nil {
		_ = f.Close()
		_ = os.Remove(f.Name())
		return "", fmt.Errorf("write image: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", err
	}

	c.log.Info("enrich.image.generated", "file", name)
	return name, nil
}

func (c *ImageClient) requestImageURL(ctx context.Context, prompt string) (string, error) {
	body := map[string]any{
		"model":  "dall-e-3",
		"prompt": prompt,
		"n":      1,
		"size":   "1024x1024",
	}
	b, err := json.Marshal(body)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/images/generations", bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("image request: %w", err)
	}
	defer func(Body io.ReadCloser) {
		if cerr := Body.Close(); cerr != nil {
			c.log.Warn("image response body close error", "error", cerr)
		}
	}(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("image request status %d", resp.StatusCode)
	}

	var ir struct {
		Data []struct {
			URL string `json:"url"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&ir); err != nil {
		return "", fmt.Errorf("image response decode: %w", err)
	}
	if len(ir.Data) == 0 {
		return "", nil
	}
	return ir.Data[0].URL, nil
}
