// Package sitebuilder compiles declarative page definitions into
// deployable output: a static HTML/CSS/JS bundle or a server-rendered
// Spring Boot project with templates, route scaffolds and sample data.
package sitebuilder

import (
	"context"
	"time"

	"github.com/mainul35/dynamic-site-builder-sub000/internal/adapters/httpfetch"
	"github.com/mainul35/dynamic-site-builder-sub000/internal/core"
	"github.com/mainul35/dynamic-site-builder-sub000/internal/emit"
	"github.com/mainul35/dynamic-site-builder-sub000/internal/usecase"
)

type (
	PageDefinition    = core.PageDefinition
	ComponentInstance = core.ComponentInstance
	DataSource        = core.DataSource
	GlobalStyles      = core.GlobalStyles
	ExportOptions     = core.ExportOptions
	ApiEndpointConfig = core.ApiEndpointConfig
	Diagnostic        = core.Diagnostic
	ProjectFile       = core.ProjectFile
	Props             = core.Props
	Value             = core.Value
)

var (
	ErrDuplicateInstanceID = core.ErrDuplicateInstanceID
	ErrComponentCycle      = core.ErrComponentCycle
)

// Fetcher retrieves remote asset bytes during an export.
type Fetcher = usecase.Fetcher

// PluginRegistry supplies markup for externally owned component kinds;
// it is consulted before the built-in emitters.
type PluginRegistry = emit.PluginRegistry

// DefaultExportOptions matches the editor's export dialog defaults.
func DefaultExportOptions() ExportOptions {
	return core.DefaultExportOptions()
}

// ParsePage decodes a single page definition document.
func ParsePage(data []byte) (*PageDefinition, error) {
	return core.ParsePage(data)
}

// ParsePages decodes a project document: a page array, an object with a
// pages field, or a single page.
func ParsePages(data []byte) ([]*PageDefinition, error) {
	return core.ParsePages(data)
}

const defaultFetchTimeout = 10 * time.Second

type Exporter struct {
	fetcher      Fetcher
	plugins      PluginRegistry
	assetBaseURL string
}

type Option func(*Exporter)

// WithFetcher replaces the default HTTP asset fetcher.
func WithFetcher(f Fetcher) Option {
	return func(e *Exporter) { e.fetcher = f }
}

// WithPluginRegistry installs an external component renderer.
func WithPluginRegistry(r PluginRegistry) Option {
	return func(e *Exporter) { e.plugins = r }
}

// WithAssetBaseURL sets the origin root-relative asset references are
// fetched from, and the proxy target written into server projects.
func WithAssetBaseURL(url string) Option {
	return func(e *Exporter) { e.assetBaseURL = url }
}

func New(opts ...Option) *Exporter {
	e := &Exporter{}
	for _, opt := range opts {
		opt(e)
	}
	if e.fetcher == nil {
		e.fetcher = httpfetch.New(e.assetBaseURL, defaultFetchTimeout)
	}
	return e
}

// Result is the outcome of one export run.
type Result struct {
	Files       []ProjectFile
	Diagnostics []Diagnostic
	Steps       []usecase.Step
}

// ExportStatic compiles pages into a static bundle.
func (e *Exporter) ExportStatic(ctx context.Context, projectName string, pages []*PageDefinition, opts ExportOptions) (*Result, error) {
	out := usecase.NewExportStaticService(e.fetcher, e.plugins).Export(ctx, usecase.StaticInput{
		ProjectName: projectName,
		Pages:       pages,
		Options:     opts,
	})
	if out.Error != nil {
		return nil, out.Error
	}
	return &Result{Files: out.Files, Diagnostics: out.Diagnostics, Steps: out.Steps}, nil
}

// ExportProject compiles pages into a server-rendered project tree.
func (e *Exporter) ExportProject(ctx context.Context, projectName string, pages []*PageDefinition, opts ExportOptions) (*Result, error) {
	out := usecase.NewExportProjectService(e.fetcher, e.plugins).Export(ctx, usecase.ProjectInput{
		ProjectName:  projectName,
		Pages:        pages,
		Options:      opts,
		AssetBaseURL: e.assetBaseURL,
	})
	if out.Error != nil {
		return nil, out.Error
	}
	return &Result{Files: out.Files, Diagnostics: out.Diagnostics, Steps: out.Steps}, nil
}

// Validate checks page documents against the tree invariants without
// exporting.
func (e *Exporter) Validate(pages []*PageDefinition) ([]Diagnostic, error) {
	out := usecase.NewValidateService().Validate(usecase.ValidateInput{Pages: pages})
	return out.Diagnostics, out.Error
}
