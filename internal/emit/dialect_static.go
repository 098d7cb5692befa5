package emit

import (
	"fmt"

	"github.com/mainul35/dynamic-site-builder-sub000/internal/core"
	"github.com/mainul35/dynamic-site-builder-sub000/internal/expr"
)

// PlaceholderAssetPath is where both targets ship the fallback image.
const PlaceholderAssetPath = "assets/placeholder.svg"

// StaticDialect generates self-contained documents: every value is
// resolved at generation time, and dynamic references that cannot be
// resolved become generation-time warnings rather than silent loss.
type StaticDialect struct {
	context *ContextStack
	diags   *core.Diagnostics
}

func NewStaticDialect(page *core.PageDefinition, diags *core.Diagnostics) *StaticDialect {
	return &StaticDialect{
		context: NewContextStack(page),
		diags:   diags,
	}
}

func (d *StaticDialect) Name() string   { return "static" }
func (d *StaticDialect) DocExt() string { return ".html" }

func (d *StaticDialect) Context() *ContextStack { return d.context }

func (d *StaticDialect) RewriteRoute(route string) string {
	return core.StaticDocumentName(route, d.DocExt())
}

func (d *StaticDialect) LinkAttrs(route string) string {
	return fmt.Sprintf(` href="%s"`, core.EscapeAttr(d.RewriteRoute(route)))
}

func (d *StaticDialect) Text(c *core.ComponentInstance, raw string) TextBinding {
	resolved, unresolved := expr.ResolveStatic(raw, d.context.Lookup)
	for _, path := range unresolved {
		d.diags.Warnf(c.InstanceID, "expression {{%s}} cannot be evaluated in a static export and was dropped", path)
	}
	return TextBinding{Inline: core.EscapeHTML(resolved)}
}

func (d *StaticDialect) ImageSrc(c *core.ComponentInstance, src string) string {
	if expr.HasTokens(src) {
		d.diags.Warnf(c.InstanceID, "dynamic image source %q cannot be packaged in a static export, using placeholder", src)
		return fmt.Sprintf(` src="%s"`, PlaceholderAssetPath)
	}
	return fmt.Sprintf(` src="%s"`, core.EscapeAttr(src))
}
