package style

import (
	"testing"

	"github.com/mainul35/dynamic-site-builder-sub000/internal/core"
)

func container(props core.Props, styles map[string]string) *core.ComponentInstance {
	return &core.ComponentInstance{
		InstanceID:  "c1",
		ComponentID: "container",
		Category:    core.CategoryLayout,
		Props:       props,
		Styles:      styles,
	}
}

func TestContainerDefaultPreset(t *testing.T) {
	m := Container(container(nil, nil), 0)

	if v, _ := m.Get("display"); v != "flex" {
		t.Errorf("Expected display flex, got %q", v)
	}
	if v, _ := m.Get("flex-direction"); v != "column" {
		t.Errorf("Expected flex-direction column, got %q", v)
	}
}

func TestContainerGridPresets(t *testing.T) {
	tests := []struct {
		layout   string
		expected string
	}{
		{"grid-2col", "repeat(2, 1fr)"},
		{"grid-3col", "repeat(3, 1fr)"},
		{"split-20-80", "1fr 4fr"},
		{"split-80-20", "4fr 1fr"},
		{"split-30-70", "3fr 7fr"},
	}

	for _, tt := range tests {
		c := container(core.Props{"layoutType": core.StringValue(tt.layout)}, nil)
		m := Container(c, 0)
		if v, _ := m.Get("grid-template-columns"); v != tt.expected {
			t.Errorf("%s: expected %q, got %q", tt.layout, tt.expected, v)
		}
		if v, _ := m.Get("display"); v != "grid" {
			t.Errorf("%s: expected display grid, got %q", tt.layout, v)
		}
	}
}

func TestContainerResolutionIsDeterministic(t *testing.T) {
	c := container(core.Props{
		"layoutType":    core.StringValue("grid-2col"),
		"gap":           core.NumberValue(16),
		"padding":       core.StringValue("24px"),
		"centerContent": core.BoolValue(true),
		"maxWidth":      core.StringValue("960px"),
	}, map[string]string{
		"backgroundColor": "#f5f5f5",
		"border":          "2px solid #000",
		"zIndex":          "2",
	})

	first := Container(c, 1).Inline()
	second := Container(c, 1).Inline()
	if first != second {
		t.Errorf("Expected byte-identical resolution, got\n%q\n%q", first, second)
	}
}

func TestStylesOverridePropsOverridePreset(t *testing.T) {
	c := container(core.Props{
		"layoutType": core.StringValue("flex-row"),
		"gap":        core.StringValue("8"),
	}, map[string]string{
		"gap":           "32px",
		"flexDirection": "row-reverse",
	})

	m := Container(c, 0)
	if v, _ := m.Get("gap"); v != "32px" {
		t.Errorf("Expected style override 32px, got %q", v)
	}
	if v, _ := m.Get("flex-direction"); v != "row-reverse" {
		t.Errorf("Expected style override row-reverse, got %q", v)
	}
}

func TestNestedTransparencyStripsDefaults(t *testing.T) {
	c := container(nil, map[string]string{
		"backgroundColor": "#ffffff",
		"borderRadius":    "8px",
		"boxShadow":       "0 1px 3px rgba(0, 0, 0, 0.1)",
		"border":          "1px solid #e5e7eb",
	})

	m := Container(c, 1)
	for _, property := range []string{"background-color", "border-radius", "box-shadow", "border"} {
		if m.Has(property) {
			t.Errorf("Expected %s to be stripped at depth > 0", property)
		}
	}
}

func TestNestedTransparencyKeepsIntentionalBackground(t *testing.T) {
	gradient := container(nil, map[string]string{
		"background": "linear-gradient(90deg, #111, #999)",
	})
	m := Container(gradient, 2)
	if !m.Has("background") {
		t.Error("Expected gradient background to survive")
	}

	image := container(nil, map[string]string{
		"background": "url(https://example.com/bg.png) center",
	})
	m = Container(image, 2)
	if !m.Has("background") {
		t.Error("Expected image background to survive")
	}
}

func TestNestedTransparencyKeepsExplicitValues(t *testing.T) {
	c := container(nil, map[string]string{
		"backgroundColor": "#112233",
		"border":          "4px dashed #f00",
		"borderRadius":    "24px",
	})

	m := Container(c, 1)
	if v, _ := m.Get("background-color"); v != "#112233" {
		t.Errorf("Expected explicit background to survive, got %q", v)
	}
	if v, _ := m.Get("border"); v != "4px dashed #f00" {
		t.Errorf("Expected explicit border to survive, got %q", v)
	}
	if v, _ := m.Get("border-radius"); v != "24px" {
		t.Errorf("Expected explicit radius to survive, got %q", v)
	}
}

func TestRootContainerKeepsDefaults(t *testing.T) {
	c := container(nil, map[string]string{"backgroundColor": "#ffffff"})
	m := Container(c, 0)
	if !m.Has("background-color") {
		t.Error("Expected root container to keep its background")
	}
}

func TestWidthComesFromPropsOnly(t *testing.T) {
	c := container(core.Props{
		"maxWidth":      core.StringValue("1200px"),
		"centerContent": core.BoolValue(true),
	}, map[string]string{
		"width":    "543px",
		"maxWidth": "999px",
	})

	m := Container(c, 0)
	if m.Has("width") {
		t.Error("Expected styles width to be excluded")
	}
	if v, _ := m.Get("max-width"); v != "1200px" {
		t.Errorf("Expected max-width from props, got %q", v)
	}
	if v, _ := m.Get("margin-left"); v != "auto" {
		t.Errorf("Expected auto margin, got %q", v)
	}
}

func TestMaxWidthSentinelNone(t *testing.T) {
	c := container(core.Props{"maxWidth": core.StringValue("none")}, nil)
	if Container(c, 0).Has("max-width") {
		t.Error(`Expected maxWidth "none" to be omitted`)
	}
}

func TestButtonVariantAndSizeTables(t *testing.T) {
	c := &core.ComponentInstance{
		ComponentID: "button",
		Props: core.Props{
			"variant": core.StringValue("danger"),
			"size":    core.StringValue("large"),
		},
	}

	m := Button(c)
	if v, _ := m.Get("background-color"); v != "#ef4444" {
		t.Errorf("Expected danger background, got %q", v)
	}
	if v, _ := m.Get("padding"); v != "14px 28px" {
		t.Errorf("Expected large padding, got %q", v)
	}
}

func TestButtonUnknownVariantFallsBack(t *testing.T) {
	c := &core.ComponentInstance{
		ComponentID: "button",
		Props:       core.Props{"variant": core.StringValue("mystery")},
	}
	m := Button(c)
	if v, _ := m.Get("background-color"); v != "#3b82f6" {
		t.Errorf("Expected primary fallback, got %q", v)
	}
}

func TestStyleMapReplaceKeepsPosition(t *testing.T) {
	m := NewStyleMap()
	m.Set("display", "flex")
	m.Set("gap", "8px")
	m.Set("display", "grid")

	if got := m.Inline(); got != "display: grid; gap: 8px" {
		t.Errorf("Expected stable ordering, got %q", got)
	}
}

func TestNormalizeProperty(t *testing.T) {
	if got := NormalizeProperty("backgroundColor"); got != "background-color" {
		t.Errorf("Expected background-color, got %q", got)
	}
	if got := NormalizeProperty("padding"); got != "padding" {
		t.Errorf("Expected padding, got %q", got)
	}
}
