package scaffold

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mainul35/dynamic-site-builder-sub000/internal/core"
)

func TestEndpointConfigNaming(t *testing.T) {
	cfg := EndpointConfig("/api/products", "")

	assert.Equal(t, "ProductsController", cfg.ControllerName)
	assert.Equal(t, "getProducts", cfg.MethodName)
	assert.Equal(t, "/api/products", cfg.RoutePath)
	assert.Equal(t, "items", cfg.DataPath)
}

func TestEndpointConfigNestedPath(t *testing.T) {
	cfg := EndpointConfig("/api/shop/featured-items", "results")

	assert.Equal(t, "ShopController", cfg.ControllerName)
	assert.Equal(t, "getFeaturedItems", cfg.MethodName)
	assert.Equal(t, "results", cfg.DataPath)
}

func TestEndpointConfigWithoutAPIPrefix(t *testing.T) {
	cfg := EndpointConfig("/products", "")
	assert.Equal(t, "ProductsController", cfg.ControllerName)
	assert.Equal(t, "getProducts", cfg.MethodName)
}

func TestEndpointConfigIsPure(t *testing.T) {
	first := EndpointConfig("/api/team/members", "people")
	second := EndpointConfig("/api/team/members", "people")
	assert.Equal(t, first, second)
}

func TestCollectEndpointsDeduplicates(t *testing.T) {
	list := func(endpoint string) *core.ComponentInstance {
		return &core.ComponentInstance{
			InstanceID:  "l-" + endpoint,
			ComponentID: "list",
			DataSource:  &core.DataSource{Type: core.DataSourceAPI, Endpoint: endpoint},
		}
	}

	pages := []*core.PageDefinition{
		{PageName: "Home", Components: []*core.ComponentInstance{list("/api/products"), list("/api/products")}},
		{PageName: "About", Components: []*core.ComponentInstance{list("/api/team")}},
	}

	configs := CollectEndpoints(pages)
	assert.Len(t, configs, 2)
	assert.Equal(t, "/api/products", configs[0].Endpoint)
	assert.Equal(t, "/api/team", configs[1].Endpoint)
}

func TestCollectEndpointsIgnoresNonAPISources(t *testing.T) {
	pages := []*core.PageDefinition{{
		PageName: "Home",
		Components: []*core.ComponentInstance{{
			InstanceID:  "s1",
			ComponentID: "list",
			DataSource:  &core.DataSource{Type: core.DataSourceStatic},
		}},
	}}
	assert.Empty(t, CollectEndpoints(pages))
}

func TestModelAttribute(t *testing.T) {
	assert.Equal(t, "products", ModelAttribute("/api/products"))
	assert.Equal(t, "teamMembers", ModelAttribute("/api/team-members"))
}

func TestPageRoutesHomeAlias(t *testing.T) {
	pages := []*core.PageDefinition{
		{PageName: "Home", RoutePath: "/home"},
		{PageName: "About", RoutePath: "/about"},
	}

	routes := PageRoutes(pages)
	assert.Len(t, routes, 2)

	assert.Equal(t, "index", routes[0].ViewName)
	assert.True(t, routes[0].AliasRoot)
	assert.Equal(t, "indexPage", routes[0].MethodName)

	assert.Equal(t, "about", routes[1].ViewName)
	assert.False(t, routes[1].AliasRoot)
}

func TestSampleRowsFamilies(t *testing.T) {
	products := SampleRows("getProducts")
	assert.Equal(t, "Starter Plan", products[0]["name"])

	team := SampleRows("getTeamMembers")
	assert.Equal(t, "Founder", team[0]["role"])

	posts := SampleRows("getBlogPosts")
	assert.Contains(t, posts[0], "title")

	testimonials := SampleRows("getTestimonials")
	assert.Contains(t, testimonials[0], "quote")

	services := SampleRows("getServices")
	assert.Contains(t, services[0], "icon")
}

func TestSampleRowsGenericFallback(t *testing.T) {
	rows := SampleRows("getWidgets")
	assert.Len(t, rows, 2)
	assert.Equal(t, "Sample Item 1", rows[0]["name"])
}
