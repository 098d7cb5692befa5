// Package templates holds the boilerplate files embedded into exports.
package templates

import (
	"embed"
	"strings"
)

//go:embed base.css base.js placeholder.svg *.tmpl
var files embed.FS

// Data carries the substitution values for template rendering.
type Data struct {
	ProjectName  string
	ArtifactID   string
	AssetBaseURL string
	PageList     string
	EndpointList string
}

func mustRead(name string) string {
	data, err := files.ReadFile(name)
	if err != nil {
		panic("templates: missing embedded file " + name)
	}
	return string(data)
}

// BaseCSS returns the stylesheet bundled with every export.
func BaseCSS() string { return mustRead("base.css") }

// BaseJS returns the script bundled with every export.
func BaseJS() string { return mustRead("base.js") }

// PlaceholderSVG returns the fallback image bundled with every export.
func PlaceholderSVG() string { return mustRead("placeholder.svg") }

// Render loads a named template and substitutes the placeholder tokens.
func Render(name string, data Data) string {
	content := mustRead(name)
	content = strings.ReplaceAll(content, "{{.ProjectName}}", data.ProjectName)
	content = strings.ReplaceAll(content, "{{.ArtifactID}}", data.ArtifactID)
	content = strings.ReplaceAll(content, "{{.AssetBaseURL}}", data.AssetBaseURL)
	content = strings.ReplaceAll(content, "{{.PageList}}", data.PageList)
	content = strings.ReplaceAll(content, "{{.EndpointList}}", data.EndpointList)
	return content
}

// StaticReadme renders the README for a static bundle.
func StaticReadme(data Data) string { return Render("readme_static.md.tmpl", data) }

// ServerReadme renders the README for a server project.
func ServerReadme(data Data) string { return Render("readme_server.md.tmpl", data) }

// Dockerfile renders the container recipe for a server project.
func Dockerfile(data Data) string { return Render("Dockerfile.tmpl", data) }

// ApplicationProperties renders the Spring configuration file.
func ApplicationProperties(data Data) string { return Render("application.properties.tmpl", data) }
