package core

import "strings"

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// EscapeHTML escapes literal text content for element bodies and
// attribute values. Rich-text content bypasses this on purpose.
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

var attrEscaper = strings.NewReplacer(
	"&", "&amp;",
	`"`, "&quot;",
	"<", "&lt;",
)

// EscapeAttr escapes a value destined for a double-quoted attribute.
func EscapeAttr(s string) string {
	return attrEscaper.Replace(s)
}
