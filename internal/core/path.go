package core

import (
	"fmt"
	"strings"
)

func NormalizeRoutePath(path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if path != "/" && strings.HasSuffix(path, "/") {
		path = strings.TrimSuffix(path, "/")
	}
	return path
}

func ValidateRoutePath(path string) error {
	if path == "" {
		return fmt.Errorf("path cannot be empty")
	}

	if !strings.HasPrefix(path, "/") {
		return fmt.Errorf("path must start with /")
	}

	if strings.Contains(path, "?") {
		return fmt.Errorf("path cannot contain query string")
	}

	if strings.Contains(path, "..") {
		return fmt.Errorf("path cannot contain parent directory references")
	}

	if strings.Contains(path, "*") {
		return fmt.Errorf("path cannot contain wildcards")
	}

	return nil
}

// IsExternalRef reports whether a link target leaves the exported site:
// protocol-prefixed URLs, protocol-relative URLs, mailto/tel links and
// in-page anchors all pass through unchanged.
func IsExternalRef(target string) bool {
	return strings.HasPrefix(target, "http://") ||
		strings.HasPrefix(target, "https://") ||
		strings.HasPrefix(target, "//") ||
		strings.HasPrefix(target, "mailto:") ||
		strings.HasPrefix(target, "tel:") ||
		strings.HasPrefix(target, "#")
}

// StaticDocumentName maps a route path to the flat file name used inside
// the static bundle. The mapping is total: external refs and anchors are
// returned unchanged, the root path and the conventional home alias map
// to the index document, and everything else maps to its slugged segments
// plus the document extension.
func StaticDocumentName(route, ext string) string {
	if IsExternalRef(route) {
		return route
	}

	trimmed := strings.Trim(route, "/")
	if trimmed == "" || strings.EqualFold(trimmed, "home") || strings.EqualFold(trimmed, "index") {
		return "index" + ext
	}

	segments := strings.Split(trimmed, "/")
	for i, segment := range segments {
		segments[i] = Slugify(segment)
	}
	return strings.Join(segments, "-") + ext
}

// IsHomeRoute reports whether a page route should also answer at the
// project root.
func IsHomeRoute(route string) bool {
	trimmed := strings.Trim(route, "/")
	return trimmed == "" || strings.EqualFold(trimmed, "home") || strings.EqualFold(trimmed, "index")
}
