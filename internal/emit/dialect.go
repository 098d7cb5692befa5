package emit

import "github.com/mainul35/dynamic-site-builder-sub000/internal/core"

// TextBinding is a dialect's rendering of one raw prop string: the inline
// text placed in the element body plus an optional binding attribute the
// target evaluates at render time. Both are already escaped.
type TextBinding struct {
	Inline string
	Attr   string
}

// Dialect carries the target-specific rules a single emitter core is
// parameterized by: link rewriting, literal-vs-expression emission and
// escaping. Both export backends run the same emitters with different
// dialect values.
type Dialect interface {
	Name() string
	DocExt() string

	// RewriteRoute maps an authored route path to a link target valid in
	// the generated document. External refs and anchors pass through.
	RewriteRoute(route string) string

	// LinkAttrs renders the attribute set that binds an element to a
	// route, including the leading space.
	LinkAttrs(route string) string

	// Text renders a raw prop string that may contain template tokens.
	Text(c *core.ComponentInstance, raw string) TextBinding

	// ImageSrc renders the src attribute set for an image reference,
	// including the leading space. Dynamic references defer to the
	// target's runtime; static ones stay literal for the asset pass.
	ImageSrc(c *core.ComponentInstance, src string) string
}

// PluginRegistry is the external collaborator that supplies markup for
// plugin-provided component kinds. It is consulted before the built-in
// emitters; a false Render result falls back to the generic emitter.
type PluginRegistry interface {
	Has(kind, pluginID string) bool
	Render(kind, pluginID string, component *core.ComponentInstance, childrenMarkup string) (string, bool)
}
