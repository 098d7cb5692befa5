package core

// Category groups component kinds by the role they play on a page.
type Category string

const (
	CategoryLayout  Category = "layout"
	CategoryUI      Category = "ui"
	CategoryData    Category = "data"
	CategoryForm    Category = "form"
	CategoryNavbar  Category = "navbar"
	CategoryGeneral Category = "general"
)

// BuiltinPluginID marks components owned by the core library rather than
// an external plugin.
const BuiltinPluginID = "core"

type Event struct {
	EventType string `json:"eventType"`
	Action    Action `json:"action"`
}

type Action struct {
	Type   string `json:"type"`
	Config Props  `json:"config,omitempty"`
}

const (
	ActionNavigate = "navigate"
	ActionOpenURL  = "open-url"
	ActionScrollTo = "scroll-to"
)

type DataSource struct {
	Type         string            `json:"type"`
	Endpoint     string            `json:"endpoint,omitempty"`
	Method       string            `json:"method,omitempty"`
	DataPath     string            `json:"dataPath,omitempty"`
	StaticData   Value             `json:"staticData,omitempty"`
	FieldMapping map[string]string `json:"fieldMapping,omitempty"`
}

const (
	DataSourceAPI     = "api"
	DataSourceStatic  = "static"
	DataSourceContext = "context"
)

type Size struct {
	Width  string `json:"width,omitempty"`
	Height string `json:"height,omitempty"`
}

type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// ComponentInstance is one node in the authored page tree. Children are
// owned by their parent; ParentID is a lookup key only and never implies
// a second owner.
type ComponentInstance struct {
	InstanceID       string               `json:"instanceId"`
	ComponentID      string               `json:"componentId"`
	PluginID         string               `json:"pluginId,omitempty"`
	Category         Category             `json:"category,omitempty"`
	Props            Props                `json:"props,omitempty"`
	Styles           map[string]string    `json:"styles,omitempty"`
	Children         []*ComponentInstance `json:"children,omitempty"`
	ParentID         string               `json:"parentId,omitempty"`
	Events           []Event              `json:"events,omitempty"`
	DataSource       *DataSource          `json:"dataSource,omitempty"`
	TemplateBindings map[string]string    `json:"templateBindings,omitempty"`
	Size             *Size                `json:"size,omitempty"`
	Position         *Position            `json:"position,omitempty"`
}

type GlobalStyles struct {
	CustomCSS string            `json:"customCss,omitempty"`
	Variables map[string]string `json:"variables,omitempty"`
}

type PageDefinition struct {
	PageName     string               `json:"pageName"`
	RoutePath    string               `json:"routePath,omitempty"`
	Components   []*ComponentInstance `json:"components"`
	GlobalStyles GlobalStyles         `json:"globalStyles,omitempty"`
	DataContext  map[string]Value     `json:"dataContext,omitempty"`
}

// Route returns the page's route path, deriving one from the page name
// when the document carries none.
func (p *PageDefinition) Route() string {
	if p.RoutePath != "" {
		return NormalizeRoutePath(p.RoutePath)
	}
	slug := Slugify(p.PageName)
	if slug == "" || slug == "home" || slug == "index" {
		return "/"
	}
	return "/" + slug
}

type ExportOptions struct {
	IncludeCSS bool `json:"includeCss"`
	IncludeJS  bool `json:"includeJs"`
	Minify     bool `json:"minify"`
	SinglePage bool `json:"singlePage"`
}

// DefaultExportOptions matches the editor's export dialog defaults:
// external stylesheet and script, no minification.
func DefaultExportOptions() ExportOptions {
	return ExportOptions{
		IncludeCSS: true,
		IncludeJS:  true,
	}
}

// ApiEndpointConfig is derived, never authored: one per distinct API-type
// data source endpoint seen across a project export.
type ApiEndpointConfig struct {
	Endpoint       string
	DataPath       string
	ControllerName string
	MethodName     string
	RoutePath      string
}

// ProjectFile is the packager's unit of output. Archives are ordered
// slices of ProjectFile; slice order is the archive order.
type ProjectFile struct {
	Path string
	Data []byte
}
