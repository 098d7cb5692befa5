// Package httpfetch downloads remote assets over HTTP with a small LRU
// cache, so repeated exports of the same project skip refetching.
package httpfetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

const cacheSize = 256

// maxAssetBytes caps a single downloaded asset at 20 MiB.
const maxAssetBytes = 20 << 20

type Client struct {
	http    *http.Client
	cache   *lru.Cache[string, []byte]
	baseURL string
}

// New builds a fetcher. Root-relative references (editor uploads) are
// resolved against baseURL.
func New(baseURL string, timeout time.Duration) *Client {
	cache, err := lru.New[string, []byte](cacheSize)
	if err != nil {
		panic(fmt.Sprintf("httpfetch: cache init: %v", err))
	}
	return &Client{
		http:    &http.Client{Timeout: timeout},
		cache:   cache,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}
}

func (c *Client) Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	target := c.resolve(rawURL)

	if data, ok := c.cache.Get(target); ok {
		return data, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("build request for %s: %w", target, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", target, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: status %d", target, resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxAssetBytes))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", target, err)
	}

	c.cache.Add(target, data)
	return data, nil
}

func (c *Client) resolve(rawURL string) string {
	switch {
	case strings.HasPrefix(rawURL, "//"):
		return "https:" + rawURL
	case strings.HasPrefix(rawURL, "/") && c.baseURL != "":
		return c.baseURL + rawURL
	default:
		return rawURL
	}
}
