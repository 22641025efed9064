// Package gateways provides concrete implementations of domain gateway interfaces.
package gateways

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/ochairo/clangfetch/internal/domain/interfaces"
)

// Defaults for the HTTP downloader
const (
	DefaultTimeout   = 5 * time.Minute
	DefaultUserAgent = "clangfetch/1.0"
)

// Downloader fetches URLs over HTTP(S) into local files
type Downloader struct {
	httpClient *http.Client
	userAgent  string
	logger     interfaces.Logger
}

// DownloaderConfig holds downloader settings. Zero values select defaults.
type DownloaderConfig struct {
	Timeout   time.Duration
	UserAgent string
	Logger    interfaces.Logger
	Client    *http.Client // overrides Timeout when set
}

// NewDownloader creates a new downloader
func NewDownloader(config DownloaderConfig) *Downloader {
	client := config.Client
	if client == nil {
		timeout := config.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		client = &http.Client{Timeout: timeout}
	}

	userAgent := config.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	logger := config.Logger
	if logger == nil {
		logger = &interfaces.NoOpLogger{}
	}

	return &Downloader{
		httpClient: client,
		userAgent:  userAgent,
		logger:     logger,
	}
}

// Fetch downloads url to destPath, creating or overwriting it.
// Failures are logged and reported as false.
func (d *Downloader) Fetch(ctx context.Context, url, destPath string) bool {
	written, err := d.downloadFile(ctx, url, destPath)
	if err != nil {
		d.logger.Error("download failed",
			interfaces.F("url", url),
			interfaces.F("error", err))
		return false
	}

	d.logger.Info("download complete",
		interfaces.F("file", filepath.Base(destPath)),
		interfaces.F("size", humanize.Bytes(uint64(written))))
	return true
}

// downloadFile downloads a file from URL to destination
func (d *Downloader) downloadFile(ctx context.Context, url, dest string) (int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", d.userAgent)

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("HTTP request failed: %w", err)
	}
	//nolint:errcheck // Defer close on HTTP response body
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
	}

	//nolint:gosec // G304: File path dest is the caller-chosen download destination
	out, err := os.Create(dest)
	if err != nil {
		return 0, fmt.Errorf("failed to create file: %w", err)
	}

	written, err := io.Copy(out, resp.Body)
	if err != nil {
		_ = out.Close()
		return written, fmt.Errorf("failed to write file: %w", err)
	}
	if err := out.Close(); err != nil {
		return written, fmt.Errorf("failed to close file: %w", err)
	}

	return written, nil
}
