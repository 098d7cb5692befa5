package style

import (
	"sort"
	"strings"

	"github.com/mainul35/dynamic-site-builder-sub000/internal/core"
)

// Resolver turns declared props and style overrides into the exact CSS
// property set the live preview applies, with no DOM available. Override
// precedence, highest first: explicit styles, explicit props, preset
// defaults.

// Container resolves a layout container. Depth 0 means page root; deeper
// containers fall under the nested transparency rule.
func Container(c *core.ComponentInstance, depth int) *StyleMap {
	m := NewStyleMap()

	layout := c.Props.GetString("layoutType")
	if layout == "" {
		layout = c.Props.GetString("layoutMode")
	}
	preset, ok := layoutPresets[layout]
	if !ok {
		preset = layoutPresets[defaultLayout]
	}
	for _, kv := range preset {
		m.Set(kv[0], kv[1])
	}

	applyContainerProps(m, c.Props)
	applyStyleOverrides(m, c.Styles, "width", "max-width", "min-width")

	// Width intent is carried by props alone; the styles map holds the
	// editor's transient resize state and must not leak into output.
	if maxWidth := c.Props.GetString("maxWidth"); maxWidth != "" && maxWidth != "none" {
		m.Set("max-width", maxWidth)
	}
	if c.Props.GetBool("centerContent") {
		m.Set("margin-left", "auto")
		m.Set("margin-right", "auto")
	}

	if depth > 0 {
		applyNestedTransparency(m)
	}

	return m
}

// Text resolves text and heading components.
func Text(c *core.ComponentInstance) *StyleMap {
	m := NewStyleMap()

	if level := c.Props.GetString("level"); level != "" {
		if size, ok := headingSizes[level]; ok {
			m.Set("font-size", size)
			m.Set("font-weight", "700")
		}
	}
	if v := c.Props.GetString("fontSize"); v != "" {
		m.Set("font-size", v)
	}
	if v := c.Props.GetString("fontWeight"); v != "" {
		m.Set("font-weight", v)
	}
	if v := c.Props.GetString("color"); v != "" {
		m.Set("color", v)
	}
	if v := c.Props.GetString("textAlign"); v != "" {
		m.Set("text-align", v)
	}

	applyStyleOverrides(m, c.Styles)
	return m
}

// Button layers the variant and size tables under prop and style
// overrides.
func Button(c *core.ComponentInstance) *StyleMap {
	m := NewStyleMap()

	variant, ok := buttonVariants[c.Props.GetString("variant")]
	if !ok {
		variant = buttonVariants["primary"]
	}
	size, ok := buttonSizes[c.Props.GetString("size")]
	if !ok {
		size = buttonSizes["medium"]
	}

	m.Set("background-color", variant.background)
	m.Set("color", variant.color)
	m.Set("padding", size.padding)
	m.Set("font-size", size.fontSize)
	m.Set("border", "none")
	m.Set("border-radius", "6px")
	m.Set("cursor", "pointer")
	if variant.background == "transparent" && c.Props.GetString("variant") == "outline" {
		m.Set("border", "1px solid "+variant.color)
	}

	applyStyleOverrides(m, c.Styles)
	return m
}

// Image resolves sizing and fit for image components.
func Image(c *core.ComponentInstance) *StyleMap {
	m := NewStyleMap()

	m.Set("max-width", "100%")
	if v := c.Props.GetString("width"); v != "" {
		m.Set("width", v)
	}
	if v := c.Props.GetString("height"); v != "" {
		m.Set("height", v)
	}
	if fit, ok := imageFits[c.Props.GetString("objectFit")]; ok {
		m.Set("object-fit", fit)
	}
	if v := c.Props.GetString("borderRadius"); v != "" {
		m.Set("border-radius", v)
	}

	applyStyleOverrides(m, c.Styles)
	return m
}

// Navbar resolves the navigation bar wrapper.
func Navbar(c *core.ComponentInstance) *StyleMap {
	m := NewStyleMap()

	scheme, ok := navbarSchemes[c.Props.GetString("scheme")]
	if !ok {
		scheme = navbarSchemes["light"]
	}

	m.Set("display", "flex")
	m.Set("align-items", "center")
	m.Set("justify-content", "space-between")
	m.Set("padding", "12px 24px")
	m.Set("background-color", scheme.background)
	m.Set("color", scheme.color)

	applyStyleOverrides(m, c.Styles)
	return m
}

// Generic resolves unrecognized kinds: style overrides only.
func Generic(c *core.ComponentInstance) *StyleMap {
	m := NewStyleMap()
	applyStyleOverrides(m, c.Styles)
	return m
}

func applyContainerProps(m *StyleMap, props core.Props) {
	if v := props.GetString("padding"); v != "" {
		m.Set("padding", v)
	}
	if v := props.GetString("gap"); v != "" {
		m.Set("gap", cssLength(v))
	}
	if v := props.GetString("alignItems"); v != "" {
		m.Set("align-items", v)
	}
	if v := props.GetString("justifyContent"); v != "" {
		m.Set("justify-content", v)
	}
	if v := props.GetString("flexWrap"); v != "" {
		m.Set("flex-wrap", v)
	}
}

// applyStyleOverrides copies explicit style entries on top of whatever is
// already resolved. Property names arrive camelCased from the editor and
// are normalized to kebab-case; excluded properties are dropped.
func applyStyleOverrides(m *StyleMap, styles map[string]string, exclude ...string) {
	if len(styles) == 0 {
		return
	}
	excluded := make(map[string]bool, len(exclude))
	for _, e := range exclude {
		excluded[e] = true
	}

	keys := make([]string, 0, len(styles))
	for k := range styles {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		property := NormalizeProperty(k)
		if excluded[property] {
			continue
		}
		if v := styles[k]; v != "" {
			m.Set(property, v)
		}
	}
}

// applyNestedTransparency strips default box styling from non-root
// containers so they render as layout-only wrappers, matching the live
// preview. A background survives only when it is intentional: a gradient
// or an image reference.
func applyNestedTransparency(m *StyleMap) {
	background, _ := m.Get("background")
	if !isIntentionalBackground(background) {
		m.Delete("background")
	}
	backgroundColor, _ := m.Get("background-color")
	if isDefaultBackgroundColor(backgroundColor) {
		m.Delete("background-color")
	}

	if v, ok := m.Get("border-radius"); ok && isDefaultBorderRadius(v) {
		m.Delete("border-radius")
	}
	if v, ok := m.Get("box-shadow"); ok && isDefaultBoxShadow(v) {
		m.Delete("box-shadow")
	}
	if v, ok := m.Get("border"); ok && isDefaultBorder(v) {
		m.Delete("border")
	}
}

func isIntentionalBackground(v string) bool {
	return strings.Contains(v, "gradient(") || strings.Contains(v, "url(")
}

var defaultBackgroundColors = map[string]bool{
	"":                     true,
	"#fff":                 true,
	"#ffffff":              true,
	"white":                true,
	"rgb(255,255,255)":     true,
	"rgb(255, 255, 255)":   true,
	"rgba(255,255,255,1)":  true,
	"rgba(255, 255, 255, 1)": true,
	"transparent":          true,
	"rgba(0,0,0,0)":        true,
	"rgba(0, 0, 0, 0)":     true,
	"none":                 true,
}

func isDefaultBackgroundColor(v string) bool {
	return defaultBackgroundColors[strings.ToLower(strings.TrimSpace(v))]
}

// Editor defaults for the card look that new containers start with.
const (
	editorDefaultBorderRadius = "8px"
	editorDefaultBoxShadow    = "0 1px 3px rgba(0, 0, 0, 0.1)"
	editorDefaultBorder       = "1px solid #e5e7eb"
)

func isDefaultBorderRadius(v string) bool {
	v = strings.TrimSpace(v)
	return v == "" || v == "0" || v == "0px" || v == editorDefaultBorderRadius
}

func isDefaultBoxShadow(v string) bool {
	v = strings.TrimSpace(v)
	return v == "" || v == "none" || v == editorDefaultBoxShadow
}

func isDefaultBorder(v string) bool {
	v = strings.TrimSpace(v)
	return v == "" || v == "none" || v == "0" || v == editorDefaultBorder
}

// NormalizeProperty converts camelCased style keys to their CSS names.
func NormalizeProperty(name string) string {
	var b strings.Builder
	for _, r := range name {
		if r >= 'A' && r <= 'Z' {
			b.WriteByte('-')
			b.WriteRune(r - 'A' + 'a')
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// cssLength appends px to bare numeric lengths, which is how the editor
// stores gap values.
func cssLength(v string) string {
	if v == "" {
		return v
	}
	for _, r := range v {
		if (r < '0' || r > '9') && r != '.' {
			return v
		}
	}
	return v + "px"
}
