package emit

import (
	"fmt"

	"github.com/mainul35/dynamic-site-builder-sub000/internal/core"
	"github.com/mainul35/dynamic-site-builder-sub000/internal/expr"
)

// ServerDialect generates Thymeleaf templates for the server-rendered
// project: template tokens become attribute-bound expressions evaluated
// at render time, and dynamic asset references defer to the generated
// URL resolver bean.
type ServerDialect struct{}

func NewServerDialect() *ServerDialect { return &ServerDialect{} }

func (d *ServerDialect) Name() string   { return "server" }
func (d *ServerDialect) DocExt() string { return ".html" }

func (d *ServerDialect) RewriteRoute(route string) string {
	if core.IsExternalRef(route) {
		return route
	}
	return core.NormalizeRoutePath(route)
}

func (d *ServerDialect) LinkAttrs(route string) string {
	if core.IsExternalRef(route) {
		return fmt.Sprintf(` href="%s"`, core.EscapeAttr(route))
	}
	rewritten := d.RewriteRoute(route)
	return fmt.Sprintf(` th:href="@{%s}" href="%s"`, core.EscapeAttr(rewritten), core.EscapeAttr(rewritten))
}

func (d *ServerDialect) Text(c *core.ComponentInstance, raw string) TextBinding {
	if !expr.HasTokens(raw) {
		return TextBinding{Inline: core.EscapeHTML(raw)}
	}

	// Literal runs double as the preview fallback inside the element
	// body; the th:text expression replaces them at render time.
	fallback, _ := expr.ResolveStatic(raw, nil)
	return TextBinding{
		Inline: core.EscapeHTML(fallback),
		Attr:   fmt.Sprintf(` th:text="${%s}"`, core.EscapeAttr(expr.ToServerExpression(raw))),
	}
}

func (d *ServerDialect) ImageSrc(c *core.ComponentInstance, src string) string {
	if expr.HasTokens(src) {
		expression := expr.ToServerExpression(src)
		return fmt.Sprintf(` th:src="${@urlResolver.resolve(%s)}" src="%s"`,
			core.EscapeAttr(expression), PlaceholderAssetPath)
	}
	return fmt.Sprintf(` src="%s"`, core.EscapeAttr(src))
}
