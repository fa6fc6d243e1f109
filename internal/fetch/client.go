// Package fetch downloads item packs over HTTP so the bot can run against a
// locally cached copy.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

// DefaultPackURL points at the canonical community item pack.
const DefaultPackURL = "https://raw.githubusercontent.com/Enegg/Item-packs/master/items.json"

// Client fetches pack documents into a data directory.
type Client struct {
	client  *http.Client
	dataDir string
	force   bool
}

// NewClient creates a fetch client writing into dataDir. With force set,
// existing files are re-downloaded.
func NewClient(dataDir string, force bool) *Client {
	return &Client{
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
		dataDir: dataDir,
		force:   force,
	}
}

// PackPath returns where a pack with the given key is cached locally.
func (c *Client) PackPath(key string) string {
	return filepath.Join(c.dataDir, fmt.Sprintf("%s.json", key))
}

// FetchPack downloads the pack document at url into the data directory under
// key, reporting progress through report (total size, then bytes written).
// A cached copy short-circuits the download unless the client forces.
func (c *Client) FetchPack(ctx context.Context, url, key string, report func(total int64) io.Writer) (string, error) {
	dest := c.PackPath(key)
	if !c.force {
		if _, err := os.Stat(dest); err == nil {
			return dest, nil
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("failed to fetch %s: %s", url, resp.Status)
	}

	if err := os.MkdirAll(c.dataDir, 0o755); err != nil {
		return "", err
	}

	tmp, err := os.CreateTemp(c.dataDir, key+"-*.part")
	if err != nil {
		return "", err
	}
	defer os.Remove(tmp.Name())

	var w io.Writer = tmp
	if report != nil {
		if progress := report(resp.ContentLength); progress != nil {
			w = io.MultiWriter(tmp, progress)
		}
	}

	if _, err := io.Copy(w, resp.Body); err != nil {
		tmp.Close()
		return "", fmt.Errorf("failed to download %s: %w", url, err)
	}
	if err := tmp.Close(); err != nil {
		return "", err
	}

	if err := os.Rename(tmp.Name(), dest); err != nil {
		return "", err
	}
	return dest, nil
}
