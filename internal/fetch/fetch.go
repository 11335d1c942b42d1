// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package fetch downloads a catalog page to a local file so later runs work
// offline.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/pdiddy/prereq-graph/internal/httputil"
	"github.com/pdiddy/prereq-graph/pkg/types"
)

// Download GETs cfg.URL and writes the body to destPath through a temporary
// file, so a failed transfer never leaves a truncated catalog behind. It
// returns the number of bytes written.
func Download(ctx context.Context, client *http.Client, cfg types.FetchConfig, destPath string, w io.Writer) (int64, error) {
	url := cfg.URL
	if url == "" {
		url = types.DefaultCatalogURL
	}
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, fmt.Errorf("creating request: %w", err)
	}
	if cfg.UserAgent != "" {
		req.Header.Set("User-Agent", cfg.UserAgent)
	}
	req.Header.Set("Accept", "text/html")

	fmt.Fprintf(w, "fetching %s\n", url)

	resp, err := httputil.DoWithRetry(ctx, client, req, cfg.MaxRetries)
	if err != nil {
		return 0, fmt.Errorf("HTTP request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return 0, fmt.Errorf("HTTP %d from %s", resp.StatusCode, url)
	}

	if dir := filepath.Dir(destPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return 0, fmt.Errorf("creating output directory: %w", err)
		}
	}

	tmpFile, err := os.CreateTemp(filepath.Dir(destPath), ".fetch-*.tmp")
	if err != nil {
		return 0, fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	n, copyErr := io.Copy(tmpFile, resp.Body)
	closeErr := tmpFile.Close()
	if copyErr != nil {
		os.Remove(tmpPath)
		return 0, fmt.Errorf("writing download: %w", copyErr)
	}
	if closeErr != nil {
		os.Remove(tmpPath)
		return 0, fmt.Errorf("closing temp file: %w", closeErr)
	}
	if err := os.Rename(tmpPath, destPath); err != nil {
		os.Remove(tmpPath)
		return 0, fmt.Errorf("renaming temp file: %w", err)
	}

	fmt.Fprintf(w, "saved %s (%d bytes)\n", destPath, n)
	return n, nil
}
