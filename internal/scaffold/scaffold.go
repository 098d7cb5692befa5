// Package scaffold derives backend stub code parameters from declared
// data-source configuration: routes, controller and method names, and
// sample payloads.
package scaffold

import (
	"strings"

	"github.com/mainul35/dynamic-site-builder-sub000/internal/core"
)

// apiPrefix is the fixed leading segment of data endpoints; the segment
// after it names the controller.
const apiPrefix = "api"

const controllerSuffix = "Controller"

// EndpointConfig synthesizes the naming for one API endpoint. It is a
// pure function of the endpoint string and dataPath: repeated synthesis
// for the same input yields identical identifiers.
func EndpointConfig(endpoint, dataPath string) core.ApiEndpointConfig {
	normalized := core.NormalizeRoutePath(endpoint)
	segments := strings.Split(strings.Trim(normalized, "/"), "/")

	base := segments[0]
	if base == apiPrefix && len(segments) > 1 {
		base = segments[1]
	}
	if base == "" {
		base = "data"
	}

	last := segments[len(segments)-1]
	if last == "" {
		last = base
	}

	if dataPath == "" {
		dataPath = "items"
	}

	return core.ApiEndpointConfig{
		Endpoint:       endpoint,
		DataPath:       dataPath,
		ControllerName: core.PascalCase(base) + controllerSuffix,
		MethodName:     "get" + core.PascalCase(last),
		RoutePath:      normalized,
	}
}

// CollectEndpoints gathers one config per distinct API endpoint across
// all pages of a project, in first-seen tree order.
func CollectEndpoints(pages []*core.PageDefinition) []core.ApiEndpointConfig {
	var configs []core.ApiEndpointConfig
	seen := make(map[string]bool)

	var walk func(c *core.ComponentInstance)
	walk = func(c *core.ComponentInstance) {
		if ds := c.DataSource; ds != nil && ds.Type == core.DataSourceAPI && ds.Endpoint != "" {
			if !seen[ds.Endpoint] {
				seen[ds.Endpoint] = true
				configs = append(configs, EndpointConfig(ds.Endpoint, ds.DataPath))
			}
		}
		for _, child := range c.Children {
			walk(child)
		}
	}

	for _, page := range pages {
		for _, root := range page.Components {
			walk(root)
		}
	}
	return configs
}

// ModelAttribute names the template model attribute an endpoint's data
// is exposed under; it matches the iteration bindings the emitters
// generate.
func ModelAttribute(endpoint string) string {
	segments := strings.Split(strings.Trim(core.NormalizeRoutePath(endpoint), "/"), "/")
	last := segments[len(segments)-1]
	if name := core.CamelCase(last); name != "" {
		return name
	}
	return "data"
}

// PageRoute is one synthesized page-route handler.
type PageRoute struct {
	Route      string
	ViewName   string
	MethodName string
	// AliasRoot registers the handler under / as well, for pages whose
	// route is the root path or the conventional home alias.
	AliasRoot bool
	// Endpoints lists the API configs whose model attributes this page's
	// template binds.
	Endpoints []core.ApiEndpointConfig
}

// PageRoutes synthesizes one page-route handler per input page, in input
// order.
func PageRoutes(pages []*core.PageDefinition) []PageRoute {
	routes := make([]PageRoute, 0, len(pages))
	for _, page := range pages {
		route := page.Route()
		viewName := strings.TrimSuffix(core.StaticDocumentName(route, ".html"), ".html")
		routes = append(routes, PageRoute{
			Route:      route,
			ViewName:   viewName,
			MethodName: core.CamelCase(viewName) + "Page",
			AliasRoot:  core.IsHomeRoute(route),
			Endpoints:  CollectEndpoints([]*core.PageDefinition{page}),
		})
	}
	return routes
}
