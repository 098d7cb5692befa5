package core

import "testing"

const samplePageJSON = `{
  "pageName": "Landing",
  "routePath": "/",
  "components": [
    {
      "instanceId": "c1",
      "componentId": "container",
      "category": "layout",
      "props": {"layoutType": "grid-2col", "gap": 16},
      "styles": {"padding": "24px"},
      "children": [
        {
          "instanceId": "c2",
          "componentId": "text",
          "parentId": "c1",
          "props": {"text": "Hello {{user.name}}"},
          "events": [
            {"eventType": "click", "action": {"type": "navigate", "config": {"route": "/about"}}}
          ]
        }
      ],
      "dataSource": {"type": "api", "endpoint": "/api/products", "method": "GET"}
    }
  ],
  "globalStyles": {"customCss": ".hero { color: red; }", "variables": {"--brand": "#112233"}},
  "dataContext": {"user": {"name": "Ada"}}
}`

func TestParsePage(t *testing.T) {
	page, err := ParsePage([]byte(samplePageJSON))
	if err != nil {
		t.Fatalf("ParsePage failed: %v", err)
	}

	if page.PageName != "Landing" {
		t.Errorf("Expected Landing, got %q", page.PageName)
	}
	if page.Route() != "/" {
		t.Errorf("Expected route /, got %q", page.Route())
	}
	if len(page.Components) != 1 {
		t.Fatalf("Expected 1 root component, got %d", len(page.Components))
	}

	root := page.Components[0]
	if root.ComponentID != "container" {
		t.Errorf("Expected container, got %q", root.ComponentID)
	}
	if root.Props.GetString("layoutType") != "grid-2col" {
		t.Errorf("Expected grid-2col, got %q", root.Props.GetString("layoutType"))
	}
	if gap, ok := root.Props.GetFloat("gap"); !ok || gap != 16 {
		t.Errorf("Expected gap 16, got %v (%v)", gap, ok)
	}
	if root.Styles["padding"] != "24px" {
		t.Errorf("Expected padding 24px, got %q", root.Styles["padding"])
	}
	if root.DataSource == nil || root.DataSource.Endpoint != "/api/products" {
		t.Errorf("Expected /api/products data source, got %+v", root.DataSource)
	}
	if root.PluginID != BuiltinPluginID {
		t.Errorf("Expected builtin plugin id, got %q", root.PluginID)
	}

	child := root.Children[0]
	if len(child.Events) != 1 {
		t.Fatalf("Expected 1 event, got %d", len(child.Events))
	}
	if child.Events[0].Action.Type != ActionNavigate {
		t.Errorf("Expected navigate action, got %q", child.Events[0].Action.Type)
	}
	if child.Events[0].Action.Config.GetString("route") != "/about" {
		t.Errorf("Expected /about, got %q", child.Events[0].Action.Config.GetString("route"))
	}

	if page.GlobalStyles.Variables["--brand"] != "#112233" {
		t.Errorf("Expected brand variable, got %q", page.GlobalStyles.Variables["--brand"])
	}
	user, ok := page.DataContext["user"].AsMap()
	if !ok || user["name"].AsString() != "Ada" {
		t.Errorf("Expected data context user.name Ada, got %v", page.DataContext["user"])
	}
}

func TestParsePagesSingleObject(t *testing.T) {
	pages, err := ParsePages([]byte(samplePageJSON))
	if err != nil {
		t.Fatalf("ParsePages failed: %v", err)
	}
	if len(pages) != 1 {
		t.Errorf("Expected 1 page, got %d", len(pages))
	}
}

func TestParsePagesArray(t *testing.T) {
	doc := `[` + samplePageJSON + `, {"pageName": "About", "routePath": "/about", "components": []}]`
	pages, err := ParsePages([]byte(doc))
	if err != nil {
		t.Fatalf("ParsePages failed: %v", err)
	}
	if len(pages) != 2 {
		t.Fatalf("Expected 2 pages, got %d", len(pages))
	}
	if pages[1].Route() != "/about" {
		t.Errorf("Expected /about, got %q", pages[1].Route())
	}
}

func TestParsePageRejectsMalformedDocument(t *testing.T) {
	if _, err := ParsePage([]byte(`{"pageName": `)); err == nil {
		t.Error("Expected parse error for truncated document")
	}
	if _, err := ParsePage([]byte(`[1, 2]`)); err == nil {
		t.Error("Expected error for non-object page document")
	}
}
