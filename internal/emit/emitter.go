package emit

import (
	"fmt"
	"strings"

	"github.com/ohler55/ojg/oj"

	"github.com/mainul35/dynamic-site-builder-sub000/internal/core"
	"github.com/mainul35/dynamic-site-builder-sub000/internal/style"
)

// classPrefix namespaces the generated element classes against user CSS.
const classPrefix = "dsb-"

// Emitter walks a component tree depth-first, pre-order, and renders one
// markup fragment per component through the configured dialect.
// Indentation tracks depth for readability only.
type Emitter struct {
	dialect Dialect
	plugins PluginRegistry
	diags   *core.Diagnostics
}

func New(dialect Dialect, plugins PluginRegistry, diags *core.Diagnostics) *Emitter {
	return &Emitter{
		dialect: dialect,
		plugins: plugins,
		diags:   diags,
	}
}

// EmitPage renders all root components of a page.
func (e *Emitter) EmitPage(page *core.PageDefinition) string {
	var b strings.Builder
	for _, root := range page.Components {
		b.WriteString(e.Component(root, 0))
	}
	return b.String()
}

// Component renders one component and its subtree.
func (e *Emitter) Component(c *core.ComponentInstance, depth int) string {
	kind := normalizeKind(c.ComponentID)

	if e.plugins != nil && c.PluginID != core.BuiltinPluginID && e.plugins.Has(kind, c.PluginID) {
		children := e.children(c, depth+1)
		if inner, ok := e.plugins.Render(kind, c.PluginID, c, children); ok {
			return e.wrapPlugin(c, kind, inner, depth)
		}
	}

	switch kind {
	case "text":
		return e.emitText(c, depth)
	case "heading":
		return e.emitHeading(c, depth)
	case "button":
		return e.emitButton(c, depth)
	case "image":
		return e.emitImage(c, depth)
	case "richtext":
		return e.emitRichText(c, depth)
	case "container", "scrollable-container":
		return e.emitContainer(c, kind, depth)
	case "navbar":
		return e.emitNavbar(c, depth)
	case "list":
		return e.emitList(c, depth)
	default:
		return e.emitGeneric(c, kind, depth)
	}
}

func (e *Emitter) children(c *core.ComponentInstance, depth int) string {
	var b strings.Builder
	for _, child := range c.Children {
		b.WriteString(e.Component(child, depth))
	}
	return b.String()
}

func (e *Emitter) emitText(c *core.ComponentInstance, depth int) string {
	binding := e.dialect.Text(c, e.rawText(c, "text"))
	styles := style.Text(c)
	return fmt.Sprintf("%s<p%s%s>%s</p>\n",
		indent(depth), e.openAttrs(c, "text", styles), binding.Attr, binding.Inline)
}

func (e *Emitter) emitHeading(c *core.ComponentInstance, depth int) string {
	tag := c.Props.StringOr("level", "h2")
	if _, ok := map[string]bool{"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true}[tag]; !ok {
		tag = "h2"
	}
	binding := e.dialect.Text(c, e.rawText(c, "text"))
	styles := style.Text(c)
	return fmt.Sprintf("%s<%s%s%s>%s</%s>\n",
		indent(depth), tag, e.openAttrs(c, "heading", styles), binding.Attr, binding.Inline, tag)
}

func (e *Emitter) emitButton(c *core.ComponentInstance, depth int) string {
	raw := e.rawText(c, "label")
	if raw == "" {
		raw = e.rawText(c, "text")
	}
	binding := e.dialect.Text(c, raw)
	styles := style.Button(c)

	if action, ok := e.clickAction(c); ok {
		switch action.Type {
		case core.ActionNavigate:
			route := routeFromConfig(action.Config)
			if _, isServer := e.dialect.(*ServerDialect); isServer && !core.IsExternalRef(route) {
				return fmt.Sprintf("%s<a%s%s%s>%s</a>\n",
					indent(depth), e.openAttrs(c, "button", styles), e.dialect.LinkAttrs(route), binding.Attr, binding.Inline)
			}
			target := e.dialect.RewriteRoute(route)
			return fmt.Sprintf("%s<button%s onclick=\"window.location.href='%s'\"%s>%s</button>\n",
				indent(depth), e.openAttrs(c, "button", styles), core.EscapeAttr(target), binding.Attr, binding.Inline)
		case core.ActionOpenURL:
			url := action.Config.GetString("url")
			return fmt.Sprintf("%s<button%s onclick=\"window.open('%s', '_blank')\"%s>%s</button>\n",
				indent(depth), e.openAttrs(c, "button", styles), core.EscapeAttr(url), binding.Attr, binding.Inline)
		case core.ActionScrollTo:
			target := action.Config.StringOr("target", action.Config.GetString("anchor"))
			return fmt.Sprintf("%s<button%s onclick=\"window.location.href='#%s'\"%s>%s</button>\n",
				indent(depth), e.openAttrs(c, "button", styles), core.EscapeAttr(target), binding.Attr, binding.Inline)
		default:
			e.diags.Warnf(c.InstanceID, "unknown action type %q on click event, ignoring", action.Type)
		}
	}

	return fmt.Sprintf("%s<button%s%s>%s</button>\n",
		indent(depth), e.openAttrs(c, "button", styles), binding.Attr, binding.Inline)
}

func (e *Emitter) emitImage(c *core.ComponentInstance, depth int) string {
	src := c.Props.GetString("src")
	if src == "" {
		src = c.Props.GetString("url")
	}
	alt := c.Props.GetString("alt")
	styles := style.Image(c)
	return fmt.Sprintf("%s<img%s%s alt=\"%s\" />\n",
		indent(depth), e.openAttrs(c, "image", styles), e.dialect.ImageSrc(c, src), core.EscapeAttr(alt))
}

// Rich-text content is authored markup and passes through unescaped by
// design.
func (e *Emitter) emitRichText(c *core.ComponentInstance, depth int) string {
	content := e.rawText(c, "content")
	if content == "" {
		content = e.rawText(c, "html")
	}
	styles := style.Generic(c)
	return fmt.Sprintf("%s<div%s>%s</div>\n",
		indent(depth), e.openAttrs(c, "richtext", styles), content)
}

func (e *Emitter) emitContainer(c *core.ComponentInstance, kind string, depth int) string {
	styles := style.Container(c, depth)
	if kind == "scrollable-container" {
		styles.Set("overflow-y", "auto")
		if !styles.Has("max-height") {
			styles.Set("max-height", c.Props.StringOr("maxHeight", "400px"))
		}
	}

	children := e.children(c, depth+1)
	return fmt.Sprintf("%s<div%s>\n%s%s</div>\n",
		indent(depth), e.openAttrs(c, kind, styles), children, indent(depth))
}

func (e *Emitter) emitNavbar(c *core.ComponentInstance, depth int) string {
	styles := style.Navbar(c)
	brand := e.dialect.Text(c, c.Props.GetString("brand"))

	var b strings.Builder
	fmt.Fprintf(&b, "%s<nav%s>\n", indent(depth), e.openAttrs(c, "navbar", styles))
	fmt.Fprintf(&b, "%s<div class=\"%snavbar-brand\"%s>%s</div>\n", indent(depth+1), classPrefix, brand.Attr, brand.Inline)
	fmt.Fprintf(&b, "%s<ul class=\"%snavbar-links\">\n", indent(depth+1), classPrefix)
	for _, link := range e.navbarLinks(c) {
		fmt.Fprintf(&b, "%s<li><a%s>%s</a></li>\n",
			indent(depth+2), e.dialect.LinkAttrs(link.route), core.EscapeHTML(link.label))
	}
	fmt.Fprintf(&b, "%s</ul>\n", indent(depth+1))
	fmt.Fprintf(&b, "%s</nav>\n", indent(depth))
	return b.String()
}

type navLink struct {
	label string
	route string
}

// navbarLinks reads the links prop, which the editor stores either as a
// list or as an embedded JSON string. Malformed JSON is skipped with a
// diagnostic and the navbar renders without links.
func (e *Emitter) navbarLinks(c *core.ComponentInstance) []navLink {
	raw, ok := c.Props["links"]
	if !ok {
		return nil
	}

	items, isList := raw.AsList()
	if !isList {
		text := raw.AsString()
		if text == "" {
			return nil
		}
		parsed, err := oj.Parse([]byte(text))
		if err != nil {
			e.diags.Warnf(c.InstanceID, "navbar links prop is not valid JSON, skipping: %v", err)
			return nil
		}
		items, isList = core.ValueOf(parsed).AsList()
		if !isList {
			e.diags.Warnf(c.InstanceID, "navbar links prop is not a list, skipping")
			return nil
		}
	}

	links := make([]navLink, 0, len(items))
	for _, item := range items {
		m, ok := item.AsMap()
		if !ok {
			continue
		}
		link := navLink{
			label: m["label"].AsString(),
			route: m["route"].AsString(),
		}
		if link.route == "" {
			link.route = m["path"].AsString()
		}
		if link.route == "" {
			link.route = m["url"].AsString()
		}
		if link.label == "" && link.route == "" {
			continue
		}
		links = append(links, link)
	}
	return links
}

// emitList renders a data-bound repeating region. The server dialect
// binds an iteration attribute evaluated at render time; the static
// dialect repeats children over staticData at generation time.
func (e *Emitter) emitList(c *core.ComponentInstance, depth int) string {
	styles := style.Container(c, depth)

	if _, isServer := e.dialect.(*ServerDialect); isServer && c.DataSource != nil && c.DataSource.Type == core.DataSourceAPI {
		attrName := modelAttribute(c.DataSource.Endpoint)
		dataPath := c.DataSource.DataPath
		if dataPath == "" {
			dataPath = "items"
		}
		children := e.children(c, depth+2)
		var b strings.Builder
		fmt.Fprintf(&b, "%s<div%s>\n", indent(depth), e.openAttrs(c, "list", styles))
		fmt.Fprintf(&b, "%s<div class=\"%slist-item\" th:each=\"item : ${%s['%s']}\">\n",
			indent(depth+1), classPrefix, attrName, dataPath)
		b.WriteString(children)
		fmt.Fprintf(&b, "%s</div>\n", indent(depth+1))
		fmt.Fprintf(&b, "%s</div>\n", indent(depth))
		return b.String()
	}

	items := e.staticListItems(c)
	var b strings.Builder
	fmt.Fprintf(&b, "%s<div%s>\n", indent(depth), e.openAttrs(c, "list", styles))
	if sd, ok := e.dialect.(*StaticDialect); ok {
		for _, item := range items {
			sd.Context().PushItem(item)
			fmt.Fprintf(&b, "%s<div class=\"%slist-item\">\n", indent(depth+1), classPrefix)
			b.WriteString(e.children(c, depth+2))
			fmt.Fprintf(&b, "%s</div>\n", indent(depth+1))
			sd.Context().Pop()
		}
		if len(items) == 0 && c.DataSource != nil && c.DataSource.Type == core.DataSourceAPI {
			e.diags.Warnf(c.InstanceID, "API-backed list has no static sample data, rendering empty in static export")
		}
	} else {
		b.WriteString(e.children(c, depth+1))
	}
	fmt.Fprintf(&b, "%s</div>\n", indent(depth))
	return b.String()
}

func (e *Emitter) staticListItems(c *core.ComponentInstance) []core.Value {
	if c.DataSource == nil {
		return nil
	}
	data := c.DataSource.StaticData
	if list, ok := data.AsList(); ok {
		return list
	}
	if m, ok := data.AsMap(); ok {
		dataPath := c.DataSource.DataPath
		if dataPath == "" {
			dataPath = "items"
		}
		if list, ok := m[dataPath].AsList(); ok {
			return list
		}
	}
	return nil
}

// emitGeneric handles unrecognized kinds: wrap children when present,
// otherwise echo the text prop. Never fatal.
func (e *Emitter) emitGeneric(c *core.ComponentInstance, kind string, depth int) string {
	styles := style.Generic(c)
	if len(c.Children) > 0 {
		children := e.children(c, depth+1)
		return fmt.Sprintf("%s<div%s>\n%s%s</div>\n",
			indent(depth), e.openAttrs(c, kind, styles), children, indent(depth))
	}
	binding := e.dialect.Text(c, e.rawText(c, "text"))
	return fmt.Sprintf("%s<div%s%s>%s</div>\n",
		indent(depth), e.openAttrs(c, kind, styles), binding.Attr, binding.Inline)
}

// wrapPlugin puts the uniform shell around externally supplied markup:
// stable element id plus base class, same as every built-in kind.
func (e *Emitter) wrapPlugin(c *core.ComponentInstance, kind, inner string, depth int) string {
	styles := style.Generic(c)
	return fmt.Sprintf("%s<div%s>%s</div>\n",
		indent(depth), e.openAttrs(c, kind, styles), inner)
}

// openAttrs renders the shared attribute set: stable id, base class and
// the resolved inline style.
func (e *Emitter) openAttrs(c *core.ComponentInstance, kind string, styles *style.StyleMap) string {
	var b strings.Builder
	if c.InstanceID != "" {
		fmt.Fprintf(&b, ` id="%s"`, core.EscapeAttr(c.InstanceID))
	}
	fmt.Fprintf(&b, ` class="%s%s"`, classPrefix, kind)
	if styles != nil && styles.Len() > 0 {
		fmt.Fprintf(&b, ` style="%s"`, core.EscapeAttr(styles.Inline()))
	}
	return b.String()
}

func (e *Emitter) rawText(c *core.ComponentInstance, prop string) string {
	if binding, ok := c.TemplateBindings[prop]; ok && binding != "" {
		return binding
	}
	return c.Props.GetString(prop)
}

func (e *Emitter) clickAction(c *core.ComponentInstance) (core.Action, bool) {
	for _, event := range c.Events {
		switch strings.ToLower(event.EventType) {
		case "click", "onclick":
			return event.Action, true
		}
	}
	return core.Action{}, false
}

func routeFromConfig(config core.Props) string {
	for _, key := range []string{"route", "path", "url", "href"} {
		if v := config.GetString(key); v != "" {
			return v
		}
	}
	return "/"
}

// modelAttribute names the template model attribute an API data source
// binds to; it must match the generated page controller.
func modelAttribute(endpoint string) string {
	segments := strings.Split(strings.Trim(endpoint, "/"), "/")
	last := segments[len(segments)-1]
	if name := core.CamelCase(last); name != "" {
		return name
	}
	return "data"
}

func normalizeKind(componentID string) string {
	kind := strings.ToLower(strings.TrimSpace(componentID))
	switch kind {
	case "label":
		return "text"
	case "rich-text", "richtext":
		return "richtext"
	case "scrollcontainer", "scroll-container":
		return "scrollable-container"
	case "nav", "navigation", "navbar":
		return "navbar"
	default:
		return kind
	}
}

func indent(depth int) string {
	return strings.Repeat("  ", depth)
}
