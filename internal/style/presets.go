package style

// Layout presets set display and flow/track properties only; spacing and
// alignment come from props and explicit styles on top.
var layoutPresets = map[string][][2]string{
	"flex-column": {
		{"display", "flex"},
		{"flex-direction", "column"},
	},
	"flex-row": {
		{"display", "flex"},
		{"flex-direction", "row"},
	},
	"flex-wrap": {
		{"display", "flex"},
		{"flex-direction", "row"},
		{"flex-wrap", "wrap"},
	},
	"grid-2col": {
		{"display", "grid"},
		{"grid-template-columns", "repeat(2, 1fr)"},
	},
	"grid-3col": {
		{"display", "grid"},
		{"grid-template-columns", "repeat(3, 1fr)"},
	},
	"grid-4col": {
		{"display", "grid"},
		{"grid-template-columns", "repeat(4, 1fr)"},
	},
	"split-20-80": {
		{"display", "grid"},
		{"grid-template-columns", "1fr 4fr"},
	},
	"split-30-70": {
		{"display", "grid"},
		{"grid-template-columns", "3fr 7fr"},
	},
	"split-40-60": {
		{"display", "grid"},
		{"grid-template-columns", "2fr 3fr"},
	},
	"split-60-40": {
		{"display", "grid"},
		{"grid-template-columns", "3fr 2fr"},
	},
	"split-70-30": {
		{"display", "grid"},
		{"grid-template-columns", "7fr 3fr"},
	},
	"split-80-20": {
		{"display", "grid"},
		{"grid-template-columns", "4fr 1fr"},
	},
}

const defaultLayout = "flex-column"

type colorPair struct {
	background string
	color      string
}

var buttonVariants = map[string]colorPair{
	"primary":   {"#3b82f6", "#ffffff"},
	"secondary": {"#6b7280", "#ffffff"},
	"outline":   {"transparent", "#3b82f6"},
	"danger":    {"#ef4444", "#ffffff"},
	"ghost":     {"transparent", "#374151"},
}

type sizePair struct {
	padding  string
	fontSize string
}

var buttonSizes = map[string]sizePair{
	"small":  {"6px 12px", "14px"},
	"medium": {"10px 20px", "16px"},
	"large":  {"14px 28px", "18px"},
}

var headingSizes = map[string]string{
	"h1": "2.5rem",
	"h2": "2rem",
	"h3": "1.5rem",
	"h4": "1.25rem",
	"h5": "1.125rem",
	"h6": "1rem",
}

var imageFits = map[string]string{
	"cover":   "cover",
	"contain": "contain",
	"fill":    "fill",
	"none":    "none",
}

var navbarSchemes = map[string]colorPair{
	"light": {"#ffffff", "#111827"},
	"dark":  {"#111827", "#f9fafb"},
	"brand": {"#3b82f6", "#ffffff"},
}
