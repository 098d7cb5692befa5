// Package assets classifies, fetches and maps every image reference in a
// page tree. Static references are downloaded and packaged; dynamic ones
// are deferred to the target's runtime proxy.
package assets

import (
	"context"
	"fmt"
	"net/url"
	"path"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/mainul35/dynamic-site-builder-sub000/internal/core"
	"github.com/mainul35/dynamic-site-builder-sub000/internal/expr"
)

// AssetDir is the bundle directory static assets are packaged under.
const AssetDir = "assets"

type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

type Classification int

const (
	// ClassLocal references are already relative to the bundle and are
	// left untouched.
	ClassLocal Classification = iota
	// ClassStatic references are fetched and packaged.
	ClassStatic
	// ClassDynamic references contain unresolved tokens and resolve only
	// at serve time.
	ClassDynamic
)

// Classify decides how a single reference is handled. A reference with
// an unresolved expression token is dynamic regardless of its shape;
// absolute and root-relative references are static; everything else is
// treated as already local.
func Classify(ref string) Classification {
	if expr.HasTokens(ref) {
		return ClassDynamic
	}
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") ||
		strings.HasPrefix(ref, "//") || strings.HasPrefix(ref, "/") {
		return ClassStatic
	}
	return ClassLocal
}

type Asset struct {
	URL       string
	LocalPath string
	Data      []byte
}

// Result is the URL to local-path table for one export run. Assets keep
// first-seen tree order so that nothing downstream depends on fetch
// completion order.
type Result struct {
	Assets  []Asset
	Dynamic []string
	paths   map[string]string
}

func (r *Result) LocalPath(url string) (string, bool) {
	p, ok := r.paths[url]
	return p, ok
}

// RewriteMarkup applies the URL table as a single deterministic text
// substitution pass over generated markup. Attribute values carry the
// HTML-escaped form of a URL, so both spellings are replaced.
func (r *Result) RewriteMarkup(markup string) string {
	for _, asset := range r.Assets {
		markup = strings.ReplaceAll(markup, asset.URL, asset.LocalPath)
		if escaped := core.EscapeAttr(asset.URL); escaped != asset.URL {
			markup = strings.ReplaceAll(markup, escaped, asset.LocalPath)
		}
	}
	return markup
}

type Collector struct {
	fetcher Fetcher
	diags   *core.Diagnostics
	now     func() time.Time
}

func NewCollector(fetcher Fetcher, diags *core.Diagnostics) *Collector {
	return &Collector{
		fetcher: fetcher,
		diags:   diags,
		now:     time.Now,
	}
}

// Collect walks every page, classifies each reference, fetches all
// static ones concurrently and joins before returning. Fetch failures
// drop the URL from the table and surface as diagnostics only.
func (c *Collector) Collect(ctx context.Context, pages []*core.PageDefinition) *Result {
	result := &Result{paths: make(map[string]string)}

	var refs []reference
	seen := make(map[string]bool)
	for _, page := range pages {
		for _, root := range page.Components {
			walkRefs(root, func(componentID, ref string) {
				switch Classify(ref) {
				case ClassDynamic:
					if !seen[ref] {
						seen[ref] = true
						result.Dynamic = append(result.Dynamic, ref)
					}
				case ClassStatic:
					if !seen[ref] {
						seen[ref] = true
						refs = append(refs, reference{componentID: componentID, url: ref})
					}
				}
			})
		}
	}

	// Local names are assigned before any fetch starts, in tree order,
	// so collisions resolve the same way on every run.
	taken := make(map[string]string)
	for i := range refs {
		refs[i].localName = c.localName(refs[i].url, taken)
		taken[refs[i].localName] = refs[i].url
	}

	// Fan out; each task owns its slot, the join is the only sync point.
	data := make([][]byte, len(refs))
	errs := make([]error, len(refs))
	var wg sync.WaitGroup
	for i, ref := range refs {
		wg.Add(1)
		go func(i int, url string) {
			defer wg.Done()
			data[i], errs[i] = c.fetcher.Fetch(ctx, url)
		}(i, ref.url)
	}
	wg.Wait()

	for i, ref := range refs {
		if errs[i] != nil {
			c.diags.Warnf(ref.componentID, "failed to fetch asset %s: %v", ref.url, errs[i])
			continue
		}
		localPath := AssetDir + "/" + ref.localName
		result.Assets = append(result.Assets, Asset{
			URL:       ref.url,
			LocalPath: localPath,
			Data:      data[i],
		})
		result.paths[ref.url] = localPath
	}

	return result
}

type reference struct {
	componentID string
	url         string
	localName   string
}

var urlFunctionPattern = regexp.MustCompile(`url\(['"]?([^'")]+)['"]?\)`)

func walkRefs(c *core.ComponentInstance, visit func(componentID, ref string)) {
	for _, key := range []string{"src", "url"} {
		if v := c.Props.GetString(key); v != "" {
			visit(c.InstanceID, v)
		}
	}
	for _, key := range []string{"backgroundImage", "background-image", "background"} {
		if v, ok := c.Styles[key]; ok {
			for _, match := range urlFunctionPattern.FindAllStringSubmatch(v, -1) {
				visit(c.InstanceID, match[1])
			}
		}
	}
	for _, child := range c.Children {
		walkRefs(child, visit)
	}
}

// localName produces a sanitized file name for a URL, disambiguating
// collisions with a short URL hash rather than silently overwriting.
func (c *Collector) localName(rawURL string, taken map[string]string) string {
	name := sanitizeName(rawURL, c.now)

	if owner, exists := taken[name]; exists && owner != rawURL {
		ext := path.Ext(name)
		base := strings.TrimSuffix(name, ext)
		disambiguated := fmt.Sprintf("%s-%s%s", base, core.ShortHash(rawURL), ext)
		c.diags.Warnf("", "asset file name collision on %q, using %q for %s", name, disambiguated, rawURL)
		return disambiguated
	}
	return name
}

func sanitizeName(rawURL string, now func() time.Time) string {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Path == "" || parsed.Path == "/" {
		if err != nil {
			return fmt.Sprintf("asset-%d.png", now().UnixMilli())
		}
		return "asset-" + core.ShortHash(rawURL) + ".png"
	}

	base := path.Base(parsed.Path)
	var b strings.Builder
	for _, r := range base {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	name := b.String()
	if name == "" || name == "." {
		name = "asset-" + core.ShortHash(rawURL)
	}
	if path.Ext(name) == "" {
		name += ".png"
	}
	return name
}
