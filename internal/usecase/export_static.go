package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/mainul35/dynamic-site-builder-sub000/internal/assets"
	"github.com/mainul35/dynamic-site-builder-sub000/internal/core"
	"github.com/mainul35/dynamic-site-builder-sub000/internal/emit"
	"github.com/mainul35/dynamic-site-builder-sub000/internal/project"
	"github.com/mainul35/dynamic-site-builder-sub000/internal/templates"
)

type StaticInput struct {
	ProjectName string
	Pages       []*core.PageDefinition
	Options     core.ExportOptions
}

type StaticOutput struct {
	Files       []core.ProjectFile
	Diagnostics []core.Diagnostic
	Steps       []Step
	Error       error
}

// ExportStaticService compiles a page tree into a deployable static
// bundle: one document per page, stylesheet, script, fetched assets and
// a readme.
type ExportStaticService struct {
	fetcher Fetcher
	plugins PluginRegistry
}

func NewExportStaticService(fetcher Fetcher, plugins PluginRegistry) *ExportStaticService {
	return &ExportStaticService{
		fetcher: fetcher,
		plugins: plugins,
	}
}

func (s *ExportStaticService) Export(ctx context.Context, input StaticInput) StaticOutput {
	diags := core.NewDiagnostics()
	timer := newStepTimer()

	for _, page := range input.Pages {
		if _, err := core.BuildPageIndex(page, diags); err != nil {
			timer.mark("Validating pages", false)
			return StaticOutput{
				Diagnostics: diags.Entries(),
				Steps:       timer.steps,
				Error:       fmt.Errorf("page %q: %w", page.PageName, err),
			}
		}
	}
	timer.mark("Validating pages", true)

	collected := assets.NewCollector(s.fetcher, diags).Collect(ctx, input.Pages)
	timer.mark("Collecting assets", true)

	inlineCSS := !input.Options.IncludeCSS || input.Options.SinglePage
	inlineJS := !input.Options.IncludeJS || input.Options.SinglePage
	stylesheet := project.Stylesheet(project.MergeGlobalStyles(input.Pages))
	script := templates.BaseJS()

	var documents []core.ProjectFile
	var pageList []string
	seen := make(map[string]string)
	for _, page := range input.Pages {
		name := core.StaticDocumentName(page.Route(), ".html")
		if owner, dup := seen[name]; dup {
			diags.Warnf("", "pages %q and %q both map to %s, keeping the first", owner, page.PageName, name)
			continue
		}
		seen[name] = page.PageName

		dialect := emit.NewStaticDialect(page, diags)
		markup := emit.New(dialect, s.plugins, diags).EmitPage(page)
		markup = collected.RewriteMarkup(markup)

		opts := project.DocumentOptions{Title: pageTitle(input.ProjectName, page)}
		if inlineCSS {
			opts.InlineCSS = stylesheet
		} else {
			opts.CSSHref = "css/style.css"
		}
		if inlineJS {
			opts.InlineJS = script
		} else {
			opts.JSHref = "js/script.js"
		}

		documents = append(documents, core.ProjectFile{
			Path: name,
			Data: []byte(project.Document(opts, markup)),
		})
		pageList = append(pageList, fmt.Sprintf("- `%s` (%s)", name, page.PageName))
	}
	timer.mark("Generating documents", true)

	files := documents
	if !inlineCSS {
		files = append(files, core.ProjectFile{Path: "css/style.css", Data: []byte(stylesheet)})
	}
	if !inlineJS {
		files = append(files, core.ProjectFile{Path: "js/script.js", Data: []byte(script)})
	}
	files = append(files, core.ProjectFile{
		Path: emit.PlaceholderAssetPath,
		Data: []byte(templates.PlaceholderSVG()),
	})
	for _, asset := range collected.Assets {
		files = append(files, core.ProjectFile{Path: asset.LocalPath, Data: asset.Data})
	}
	files = append(files, core.ProjectFile{
		Path: "README.md",
		Data: []byte(templates.StaticReadme(templates.Data{
			ProjectName: input.ProjectName,
			PageList:    strings.Join(pageList, "\n"),
		})),
	})
	timer.mark("Assembling bundle", true)

	return StaticOutput{
		Files:       files,
		Diagnostics: diags.Entries(),
		Steps:       timer.steps,
	}
}

func pageTitle(projectName string, page *core.PageDefinition) string {
	if page.PageName != "" {
		return page.PageName
	}
	return projectName
}
