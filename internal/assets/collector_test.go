package assets

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mainul35/dynamic-site-builder-sub000/internal/core"
)

type stubFetcher struct {
	mu      sync.Mutex
	fetched []string
	fail    map[string]bool
	delay   map[string]time.Duration
}

func (f *stubFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	if d, ok := f.delay[url]; ok {
		time.Sleep(d)
	}
	f.mu.Lock()
	f.fetched = append(f.fetched, url)
	f.mu.Unlock()
	if f.fail[url] {
		return nil, fmt.Errorf("connection refused")
	}
	return []byte("data:" + url), nil
}

func imagePage(srcs ...string) *core.PageDefinition {
	page := &core.PageDefinition{PageName: "Test"}
	for i, src := range srcs {
		page.Components = append(page.Components, &core.ComponentInstance{
			InstanceID:  fmt.Sprintf("img%d", i),
			ComponentID: "image",
			Props:       core.Props{"src": core.StringValue(src)},
		})
	}
	return page
}

func TestClassify(t *testing.T) {
	assert.Equal(t, ClassDynamic, Classify("{{item.photo}}"))
	assert.Equal(t, ClassDynamic, Classify("https://cdn.example.com/{{item.id}}.png"))
	assert.Equal(t, ClassStatic, Classify("https://example.com/a.png"))
	assert.Equal(t, ClassStatic, Classify("/uploads/a.png"))
	assert.Equal(t, ClassLocal, Classify("assets/logo.png"))
	assert.Equal(t, ClassLocal, Classify(""))
}

func TestCollectDeduplicatesByURL(t *testing.T) {
	fetcher := &stubFetcher{}
	diags := core.NewDiagnostics()
	collector := NewCollector(fetcher, diags)

	page := imagePage("https://example.com/a.png", "https://example.com/a.png", "https://example.com/b.png")
	result := collector.Collect(context.Background(), []*core.PageDefinition{page})

	assert.Len(t, result.Assets, 2)
	assert.Len(t, fetcher.fetched, 2)
	local, ok := result.LocalPath("https://example.com/a.png")
	assert.True(t, ok)
	assert.Equal(t, "assets/a.png", local)
}

func TestCollectExcludesDynamicReferences(t *testing.T) {
	fetcher := &stubFetcher{}
	diags := core.NewDiagnostics()
	collector := NewCollector(fetcher, diags)

	page := imagePage("{{item.photo}}", "https://example.com/a.png")
	result := collector.Collect(context.Background(), []*core.PageDefinition{page})

	assert.Len(t, result.Assets, 1)
	assert.Equal(t, []string{"{{item.photo}}"}, result.Dynamic)
	assert.NotContains(t, fetcher.fetched, "{{item.photo}}")
}

func TestCollectFetchFailureIsNonFatal(t *testing.T) {
	fetcher := &stubFetcher{fail: map[string]bool{"https://example.com/gone.png": true}}
	diags := core.NewDiagnostics()
	collector := NewCollector(fetcher, diags)

	page := imagePage("https://example.com/gone.png", "https://example.com/ok.png")
	result := collector.Collect(context.Background(), []*core.PageDefinition{page})

	assert.Len(t, result.Assets, 1)
	_, ok := result.LocalPath("https://example.com/gone.png")
	assert.False(t, ok)
	assert.True(t, diags.HasWarnings())
}

func TestCollectOrderIndependentOfFetchTiming(t *testing.T) {
	fetcher := &stubFetcher{delay: map[string]time.Duration{
		"https://example.com/slow.png": 30 * time.Millisecond,
	}}
	diags := core.NewDiagnostics()
	collector := NewCollector(fetcher, diags)

	page := imagePage("https://example.com/slow.png", "https://example.com/fast.png")
	result := collector.Collect(context.Background(), []*core.PageDefinition{page})

	// Tree order, not completion order.
	assert.Equal(t, "https://example.com/slow.png", result.Assets[0].URL)
	assert.Equal(t, "https://example.com/fast.png", result.Assets[1].URL)
}

func TestCollectFilenameCollision(t *testing.T) {
	fetcher := &stubFetcher{}
	diags := core.NewDiagnostics()
	collector := NewCollector(fetcher, diags)

	page := imagePage("https://a.example.com/logo.png", "https://b.example.com/logo.png")
	result := collector.Collect(context.Background(), []*core.PageDefinition{page})

	assert.Len(t, result.Assets, 2)
	assert.NotEqual(t, result.Assets[0].LocalPath, result.Assets[1].LocalPath)
	assert.True(t, diags.HasWarnings())
}

func TestCollectBackgroundImageURLs(t *testing.T) {
	fetcher := &stubFetcher{}
	diags := core.NewDiagnostics()
	collector := NewCollector(fetcher, diags)

	page := &core.PageDefinition{
		PageName: "Test",
		Components: []*core.ComponentInstance{{
			InstanceID:  "hero",
			ComponentID: "container",
			Styles: map[string]string{
				"backgroundImage": `url("https://example.com/bg.jpg")`,
			},
		}},
	}
	result := collector.Collect(context.Background(), []*core.PageDefinition{page})

	assert.Len(t, result.Assets, 1)
	assert.Equal(t, "https://example.com/bg.jpg", result.Assets[0].URL)
}

func TestRewriteMarkup(t *testing.T) {
	result := &Result{
		Assets: []Asset{
			{URL: "https://example.com/a.png", LocalPath: "assets/a.png"},
		},
		paths: map[string]string{"https://example.com/a.png": "assets/a.png"},
	}

	markup := `<img src="https://example.com/a.png" /><div style="background: url(https://example.com/a.png)"></div>`
	rewritten := result.RewriteMarkup(markup)

	assert.False(t, strings.Contains(rewritten, "https://example.com/a.png"))
	assert.Equal(t, 2, strings.Count(rewritten, "assets/a.png"))
}

func TestRewriteMarkupEscapedURL(t *testing.T) {
	url := "https://cdn.example.com/a.png?v=1&s=2"
	result := &Result{
		Assets: []Asset{{URL: url, LocalPath: "assets/a.png"}},
		paths:  map[string]string{url: "assets/a.png"},
	}

	// Attribute writers escape & to &amp; before the substitution pass
	// runs, so the document carries the escaped spelling.
	markup := `<img src="https://cdn.example.com/a.png?v=1&amp;s=2" />`
	rewritten := result.RewriteMarkup(markup)

	assert.Equal(t, `<img src="assets/a.png" />`, rewritten)
}

func TestSanitizeNameFallbacks(t *testing.T) {
	now := func() time.Time { return time.UnixMilli(1700000000000) }

	assert.Equal(t, "photo.png", sanitizeName("https://example.com/photo", now))
	assert.Equal(t, "hero_1.jpg", sanitizeName("https://example.com/media/hero 1.jpg", now))

	name := sanitizeName("https://example.com/", now)
	assert.True(t, strings.HasSuffix(name, ".png"))

	// An unparseable URL falls back to a time-based name.
	assert.Equal(t, "asset-1700000000000.png", sanitizeName("https://example.com/%zz.png", now))
}
