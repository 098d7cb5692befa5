// Package project assembles exported output files: the HTML document
// shell for both targets and the Spring Boot sources of the server
// project.
package project

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mainul35/dynamic-site-builder-sub000/internal/core"
	"github.com/mainul35/dynamic-site-builder-sub000/internal/templates"
)

// DocumentOptions controls the head and tail of a generated document.
// Inline* and *Href are mutually exclusive per concern; inline wins when
// both are set.
type DocumentOptions struct {
	Title     string
	Thymeleaf bool
	InlineCSS string
	CSSHref   string
	InlineJS  string
	JSHref    string
}

// Document wraps emitted body markup in a full HTML document.
func Document(opts DocumentOptions, body string) string {
	var b strings.Builder

	b.WriteString("<!DOCTYPE html>\n")
	if opts.Thymeleaf {
		b.WriteString("<html lang=\"en\" xmlns:th=\"http://www.thymeleaf.org\">\n")
	} else {
		b.WriteString("<html lang=\"en\">\n")
	}

	b.WriteString("<head>\n")
	b.WriteString("  <meta charset=\"UTF-8\">\n")
	b.WriteString("  <meta name=\"viewport\" content=\"width=device-width, initial-scale=1.0\">\n")
	fmt.Fprintf(&b, "  <title>%s</title>\n", core.EscapeHTML(opts.Title))
	switch {
	case opts.InlineCSS != "":
		b.WriteString("  <style>\n")
		b.WriteString(opts.InlineCSS)
		if !strings.HasSuffix(opts.InlineCSS, "\n") {
			b.WriteString("\n")
		}
		b.WriteString("  </style>\n")
	case opts.CSSHref != "":
		fmt.Fprintf(&b, "  <link rel=\"stylesheet\" href=%q>\n", opts.CSSHref)
	}
	b.WriteString("</head>\n")

	b.WriteString("<body>\n")
	b.WriteString(body)
	if body != "" && !strings.HasSuffix(body, "\n") {
		b.WriteString("\n")
	}
	switch {
	case opts.InlineJS != "":
		b.WriteString("  <script>\n")
		b.WriteString(opts.InlineJS)
		if !strings.HasSuffix(opts.InlineJS, "\n") {
			b.WriteString("\n")
		}
		b.WriteString("  </script>\n")
	case opts.JSHref != "":
		fmt.Fprintf(&b, "  <script src=%q></script>\n", opts.JSHref)
	}
	b.WriteString("</body>\n")
	b.WriteString("</html>\n")

	return b.String()
}

// Stylesheet builds the export stylesheet: the embedded base sheet, the
// page's CSS variables on :root, then any authored custom CSS verbatim.
func Stylesheet(global core.GlobalStyles) string {
	var b strings.Builder
	b.WriteString(templates.BaseCSS())

	if len(global.Variables) > 0 {
		names := make([]string, 0, len(global.Variables))
		for name := range global.Variables {
			names = append(names, name)
		}
		sort.Strings(names)

		b.WriteString("\n:root {\n")
		for _, name := range names {
			property := name
			if !strings.HasPrefix(property, "--") {
				property = "--" + property
			}
			fmt.Fprintf(&b, "  %s: %s;\n", property, global.Variables[name])
		}
		b.WriteString("}\n")
	}

	if css := strings.TrimSpace(global.CustomCSS); css != "" {
		b.WriteString("\n")
		b.WriteString(css)
		b.WriteString("\n")
	}
	return b.String()
}

// MergeGlobalStyles folds the per-page global styles of a project into
// one set. Later pages win on variable conflicts; custom CSS blocks are
// concatenated in page order.
func MergeGlobalStyles(pages []*core.PageDefinition) core.GlobalStyles {
	merged := core.GlobalStyles{Variables: map[string]string{}}
	var blocks []string
	for _, page := range pages {
		for name, value := range page.GlobalStyles.Variables {
			merged.Variables[name] = value
		}
		if css := strings.TrimSpace(page.GlobalStyles.CustomCSS); css != "" {
			blocks = append(blocks, css)
		}
	}
	merged.CustomCSS = strings.Join(blocks, "\n\n")
	return merged
}
