package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/mainul35/dynamic-site-builder-sub000/internal/assets"
	"github.com/mainul35/dynamic-site-builder-sub000/internal/core"
	"github.com/mainul35/dynamic-site-builder-sub000/internal/emit"
	"github.com/mainul35/dynamic-site-builder-sub000/internal/project"
	"github.com/mainul35/dynamic-site-builder-sub000/internal/scaffold"
	"github.com/mainul35/dynamic-site-builder-sub000/internal/templates"
)

// DefaultAssetBaseURL is where the generated asset proxy forwards
// upload paths unless configured otherwise.
const DefaultAssetBaseURL = "http://localhost:3001"

const staticResourceDir = "src/main/resources/static/"

type ProjectInput struct {
	ProjectName  string
	Pages        []*core.PageDefinition
	Options      core.ExportOptions
	AssetBaseURL string
}

type ProjectOutput struct {
	Files       []core.ProjectFile
	Diagnostics []core.Diagnostic
	Steps       []Step
	Error       error
}

// ExportProjectService compiles a page tree into a server-rendered
// Spring Boot project: templates with attribute data bindings, page and
// API route scaffolds, asset proxying, build descriptor and container
// recipe.
type ExportProjectService struct {
	fetcher Fetcher
	plugins PluginRegistry
}

func NewExportProjectService(fetcher Fetcher, plugins PluginRegistry) *ExportProjectService {
	return &ExportProjectService{
		fetcher: fetcher,
		plugins: plugins,
	}
}

func (s *ExportProjectService) Export(ctx context.Context, input ProjectInput) ProjectOutput {
	diags := core.NewDiagnostics()
	timer := newStepTimer()

	for _, page := range input.Pages {
		if _, err := core.BuildPageIndex(page, diags); err != nil {
			timer.mark("Validating pages", false)
			return ProjectOutput{
				Diagnostics: diags.Entries(),
				Steps:       timer.steps,
				Error:       fmt.Errorf("page %q: %w", page.PageName, err),
			}
		}
	}
	timer.mark("Validating pages", true)

	routes := scaffold.PageRoutes(input.Pages)
	endpoints := scaffold.CollectEndpoints(input.Pages)
	timer.mark("Synthesizing scaffolds", true)

	collected := assets.NewCollector(s.fetcher, diags).Collect(ctx, input.Pages)
	timer.mark("Collecting assets", true)

	spring := project.NewSpringProject(input.ProjectName)
	baseURL := input.AssetBaseURL
	if baseURL == "" {
		baseURL = DefaultAssetBaseURL
	}

	var files []core.ProjectFile
	add := func(path, content string) {
		files = append(files, core.ProjectFile{Path: path, Data: []byte(content)})
	}

	// Build descriptor first, then sources, configuration, templates,
	// static assets, docs. Never map-iteration or fetch order.
	add("pom.xml", spring.PomXML(len(endpoints) > 0))

	srcDir := spring.SourceDir()
	add(srcDir+"/Application.java", spring.ApplicationJava())
	add(srcDir+"/PageController.java", spring.PageControllerJava(routes))
	for _, group := range project.GroupControllers(endpoints) {
		add(srcDir+"/"+group.Name+".java", spring.APIControllerJava(group))
	}
	if len(endpoints) > 0 {
		add(srcDir+"/DataService.java", spring.DataServiceJava(endpoints))
	}
	add(srcDir+"/AssetProxyController.java", spring.AssetProxyControllerJava())
	add(srcDir+"/UrlResolver.java", spring.UrlResolverJava())

	add("src/main/resources/application.properties", templates.ApplicationProperties(templates.Data{
		ArtifactID:   spring.ArtifactID,
		AssetBaseURL: baseURL,
	}))

	var pageList []string
	seen := make(map[string]string)
	for i, page := range input.Pages {
		route := routes[i]
		if owner, dup := seen[route.ViewName]; dup {
			diags.Warnf("", "pages %q and %q both map to view %s, keeping the first", owner, page.PageName, route.ViewName)
			continue
		}
		seen[route.ViewName] = page.PageName

		markup := emit.New(emit.NewServerDialect(), s.plugins, diags).EmitPage(page)
		markup = rootRelativeAssets(collected.RewriteMarkup(markup))

		doc := project.Document(project.DocumentOptions{
			Title:     pageTitle(input.ProjectName, page),
			Thymeleaf: true,
			CSSHref:   "/css/style.css",
			JSHref:    "/js/script.js",
		}, markup)
		add("src/main/resources/templates/"+route.ViewName+".html", doc)
		pageList = append(pageList, fmt.Sprintf("- `%s` → templates/%s.html", route.Route, route.ViewName))
	}
	timer.mark("Generating templates", true)

	stylesheet := project.Stylesheet(project.MergeGlobalStyles(input.Pages))
	add(staticResourceDir+"css/style.css", stylesheet)
	add(staticResourceDir+"js/script.js", templates.BaseJS())
	add(staticResourceDir+emit.PlaceholderAssetPath, templates.PlaceholderSVG())
	for _, asset := range collected.Assets {
		files = append(files, core.ProjectFile{Path: staticResourceDir + asset.LocalPath, Data: asset.Data})
	}

	var endpointList []string
	for _, endpoint := range endpoints {
		endpointList = append(endpointList, fmt.Sprintf("- `GET %s` → %s.%s",
			endpoint.RoutePath, endpoint.ControllerName, endpoint.MethodName))
	}
	if len(endpointList) == 0 {
		endpointList = append(endpointList, "None: no API data sources on this project.")
	}
	add("README.md", templates.ServerReadme(templates.Data{
		ProjectName:  input.ProjectName,
		ArtifactID:   spring.ArtifactID,
		PageList:     strings.Join(pageList, "\n"),
		EndpointList: strings.Join(endpointList, "\n"),
	}))
	add("Dockerfile", templates.Dockerfile(templates.Data{ArtifactID: spring.ArtifactID}))
	timer.mark("Assembling project", true)

	return ProjectOutput{
		Files:       files,
		Diagnostics: diags.Entries(),
		Steps:       timer.steps,
	}
}

// rootRelativeAssets rewrites bundle-relative asset paths to rooted
// ones; server pages are served from nested routes, so relative paths
// would resolve against the wrong base.
func rootRelativeAssets(markup string) string {
	markup = strings.ReplaceAll(markup, `"`+assets.AssetDir+`/`, `"/`+assets.AssetDir+`/`)
	markup = strings.ReplaceAll(markup, "url("+assets.AssetDir+"/", "url(/"+assets.AssetDir+"/")
	return markup
}
