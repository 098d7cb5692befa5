package core

import (
	"fmt"

	"github.com/ohler55/ojg/oj"
)

// ParsePage decodes a single page definition document.
func ParsePage(data []byte) (*PageDefinition, error) {
	raw, err := oj.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse page document: %w", err)
	}
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("page document is not a JSON object")
	}
	return pageFromMap(obj), nil
}

// ParsePages decodes either a single page object or an ordered array of
// pages, which is how the editor saves multi-page projects.
func ParsePages(data []byte) ([]*PageDefinition, error) {
	raw, err := oj.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse project document: %w", err)
	}

	switch t := raw.(type) {
	case map[string]any:
		if rawPages, ok := t["pages"].([]any); ok {
			return pagesFromList(rawPages)
		}
		return []*PageDefinition{pageFromMap(t)}, nil
	case []any:
		return pagesFromList(t)
	default:
		return nil, fmt.Errorf("project document is not a JSON object or array")
	}
}

func pagesFromList(rawPages []any) ([]*PageDefinition, error) {
	pages := make([]*PageDefinition, 0, len(rawPages))
	for i, rawPage := range rawPages {
		obj, ok := rawPage.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("page %d is not a JSON object", i)
		}
		pages = append(pages, pageFromMap(obj))
	}
	return pages, nil
}

func pageFromMap(obj map[string]any) *PageDefinition {
	page := &PageDefinition{
		PageName:  stringField(obj, "pageName"),
		RoutePath: stringField(obj, "routePath"),
	}
	if page.PageName == "" {
		page.PageName = stringField(obj, "name")
	}
	if page.RoutePath == "" {
		page.RoutePath = stringField(obj, "route")
	}

	if rawComponents, ok := obj["components"].([]any); ok {
		for _, rawComponent := range rawComponents {
			if m, ok := rawComponent.(map[string]any); ok {
				page.Components = append(page.Components, componentFromMap(m))
			}
		}
	}

	if rawGlobal, ok := obj["globalStyles"].(map[string]any); ok {
		page.GlobalStyles.CustomCSS = stringField(rawGlobal, "customCss")
		if page.GlobalStyles.CustomCSS == "" {
			page.GlobalStyles.CustomCSS = stringField(rawGlobal, "css")
		}
		if rawVars, ok := rawGlobal["variables"].(map[string]any); ok {
			page.GlobalStyles.Variables = stringMap(rawVars)
		}
	}

	if rawContext, ok := obj["dataContext"].(map[string]any); ok {
		page.DataContext = make(map[string]Value, len(rawContext))
		for k, v := range rawContext {
			page.DataContext[k] = ValueOf(v)
		}
	}

	return page
}

func componentFromMap(obj map[string]any) *ComponentInstance {
	c := &ComponentInstance{
		InstanceID:  stringField(obj, "instanceId"),
		ComponentID: stringField(obj, "componentId"),
		PluginID:    stringField(obj, "pluginId"),
		Category:    Category(stringField(obj, "category")),
		ParentID:    stringField(obj, "parentId"),
	}
	if c.PluginID == "" {
		c.PluginID = BuiltinPluginID
	}

	if rawProps, ok := obj["props"].(map[string]any); ok {
		c.Props = make(Props, len(rawProps))
		for k, v := range rawProps {
			c.Props[k] = ValueOf(v)
		}
	}

	if rawStyles, ok := obj["styles"].(map[string]any); ok {
		c.Styles = stringMap(rawStyles)
	}

	if rawChildren, ok := obj["children"].([]any); ok {
		for _, rawChild := range rawChildren {
			if m, ok := rawChild.(map[string]any); ok {
				c.Children = append(c.Children, componentFromMap(m))
			}
		}
	}

	if rawEvents, ok := obj["events"].([]any); ok {
		for _, rawEvent := range rawEvents {
			m, ok := rawEvent.(map[string]any)
			if !ok {
				continue
			}
			event := Event{EventType: stringField(m, "eventType")}
			if rawAction, ok := m["action"].(map[string]any); ok {
				event.Action.Type = stringField(rawAction, "type")
				if rawConfig, ok := rawAction["config"].(map[string]any); ok {
					event.Action.Config = make(Props, len(rawConfig))
					for k, v := range rawConfig {
						event.Action.Config[k] = ValueOf(v)
					}
				}
			}
			c.Events = append(c.Events, event)
		}
	}

	if rawSource, ok := obj["dataSource"].(map[string]any); ok {
		c.DataSource = &DataSource{
			Type:       stringField(rawSource, "type"),
			Endpoint:   stringField(rawSource, "endpoint"),
			Method:     stringField(rawSource, "method"),
			DataPath:   stringField(rawSource, "dataPath"),
			StaticData: ValueOf(rawSource["staticData"]),
		}
		if rawMapping, ok := rawSource["fieldMapping"].(map[string]any); ok {
			c.DataSource.FieldMapping = stringMap(rawMapping)
		}
	}

	if rawBindings, ok := obj["templateBindings"].(map[string]any); ok {
		c.TemplateBindings = stringMap(rawBindings)
	}

	if rawSize, ok := obj["size"].(map[string]any); ok {
		c.Size = &Size{
			Width:  dimensionField(rawSize, "width"),
			Height: dimensionField(rawSize, "height"),
		}
	}
	if rawPosition, ok := obj["position"].(map[string]any); ok {
		x, _ := ValueOf(rawPosition["x"]).AsFloat()
		y, _ := ValueOf(rawPosition["y"]).AsFloat()
		c.Position = &Position{X: x, Y: y}
	}

	return c
}

func stringField(obj map[string]any, key string) string {
	s, _ := obj[key].(string)
	return s
}

// dimensionField tolerates both "320px" strings and bare numbers, which
// the editor emits interchangeably for size hints.
func dimensionField(obj map[string]any, key string) string {
	return ValueOf(obj[key]).AsString()
}

func stringMap(obj map[string]any) map[string]string {
	m := make(map[string]string, len(obj))
	for k, v := range obj {
		m[k] = ValueOf(v).AsString()
	}
	return m
}
