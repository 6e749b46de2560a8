package fotzpdf

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

// defaultFetchTimeout bounds a single asset download.
const defaultFetchTimeout = 30 * time.Second

// assetFetcher retrieves remote images into request-scoped scratch storage.
// A false ok means the asset is absent; callers treat absence as a skip
// condition, never as fatal.
type assetFetcher interface {
	Fetch(ctx context.Context, url, dir, filename string) (path string, ok bool)
}

// httpFetcher downloads assets over HTTP with a fixed per-fetch timeout.
// No retries. No size or content-type validation: whatever the origin
// returns is written verbatim and handed to the image decoder later.
type httpFetcher struct {
	client  *http.Client
	timeout time.Duration
}

// newHTTPFetcher creates an httpFetcher. A nil client uses the default
// transport; a non-positive timeout uses the 30s default.
func newHTTPFetcher(timeout time.Duration, client *http.Client) *httpFetcher {
	if timeout <= 0 {
		timeout = defaultFetchTimeout
	}
	if client == nil {
		client = &http.Client{}
	}
	return &httpFetcher{client: client, timeout: timeout}
}

// Fetch downloads url into dir/filename. Any transport error, timeout or
// non-2xx status is logged and reported as an absent asset.
func (f *httpFetcher) Fetch(ctx context.Context, url, dir, filename string) (string, bool) {
	reqCtx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, url, nil)
	if err != nil {
		slog.Warn("Asset fetch failed.", "url", url, "error", err)
		return "", false
	}

	resp, err := f.client.Do(req)
	if err != nil {
		slog.Warn("Asset fetch failed.", "url", url, "error", err)
		return "", false
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		slog.Warn("Asset fetch failed.", "url", url, "status", resp.StatusCode)
		return "", false
	}

	path := filepath.Join(dir, filename)
	out, err := os.Create(path)
	if err != nil {
		slog.Warn("Asset write failed.", "url", url, "path", path, "error", err)
		return "", false
	}

	if _, err := io.Copy(out, resp.Body); err != nil {
		_ = out.Close()
		slog.Warn("Asset write failed.", "url", url, "path", path, "error", err)
		return "", false
	}
	if err := out.Close(); err != nil {
		slog.Warn("Asset write failed.", "url", url, "path", path, "error", err)
		return "", false
	}

	return path, true
}
