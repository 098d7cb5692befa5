// Package expr parses the moustache-style template mini-language used in
// authored prop values and re-emits it for each export target.
package expr

import "strings"

// Segment is either a literal run or a dot-separated property path taken
// from a {{...}} token.
type Segment struct {
	Literal string
	Path    string
	IsPath  bool
}

// Parse splits a raw string into alternating literal and path segments.
// Unterminated tokens are treated as literal text.
func Parse(raw string) []Segment {
	var segments []Segment
	rest := raw

	for {
		open := strings.Index(rest, "{{")
		if open < 0 {
			break
		}
		close := strings.Index(rest[open:], "}}")
		if close < 0 {
			break
		}
		close += open

		if open > 0 {
			segments = append(segments, Segment{Literal: rest[:open]})
		}
		path := strings.TrimSpace(rest[open+2 : close])
		if path != "" {
			segments = append(segments, Segment{Path: path, IsPath: true})
		}
		rest = rest[close+2:]
	}

	if rest != "" || len(segments) == 0 {
		segments = append(segments, Segment{Literal: rest})
	}
	return segments
}

// HasTokens reports whether the string contains at least one complete
// template token.
func HasTokens(raw string) bool {
	open := strings.Index(raw, "{{")
	if open < 0 {
		return false
	}
	return strings.Contains(raw[open:], "}}")
}

// Paths returns every token path in order of appearance.
func Paths(raw string) []string {
	var paths []string
	for _, segment := range Parse(raw) {
		if segment.IsPath {
			paths = append(paths, segment.Path)
		}
	}
	return paths
}

// RewritePath rewrites every segment after the first to bracket-style map
// access, so lookups stay correct against dynamically keyed maps:
// item.name.first becomes item['name']['first'].
func RewritePath(path string) string {
	parts := strings.Split(path, ".")
	if len(parts) == 1 {
		return path
	}
	var b strings.Builder
	b.WriteString(parts[0])
	for _, part := range parts[1:] {
		b.WriteString("['")
		b.WriteString(part)
		b.WriteString("']")
	}
	return b.String()
}

// ToServerExpression emits the concatenation expression the server-side
// template dialect evaluates at render time. Literals are single-quoted
// with embedded quotes escaped; a lone token emits as a bare expression
// and a token-free string as a single quoted literal.
func ToServerExpression(raw string) string {
	segments := Parse(raw)

	if len(segments) == 1 {
		if segments[0].IsPath {
			return RewritePath(segments[0].Path)
		}
		return quoteLiteral(segments[0].Literal)
	}

	parts := make([]string, 0, len(segments))
	for _, segment := range segments {
		if segment.IsPath {
			parts = append(parts, RewritePath(segment.Path))
		} else {
			parts = append(parts, quoteLiteral(segment.Literal))
		}
	}
	return strings.Join(parts, " + ")
}

func quoteLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `\'`) + "'"
}

// ResolveStatic substitutes token values at generation time using the
// supplied lookup. The static target has no render-time evaluation, so
// unresolvable paths are dropped from the text and returned for the
// caller to surface as generation-time warnings.
func ResolveStatic(raw string, lookup func(path string) (string, bool)) (string, []string) {
	if !HasTokens(raw) {
		return raw, nil
	}

	var b strings.Builder
	var unresolved []string
	for _, segment := range Parse(raw) {
		if !segment.IsPath {
			b.WriteString(segment.Literal)
			continue
		}
		if lookup != nil {
			if value, ok := lookup(segment.Path); ok {
				b.WriteString(value)
				continue
			}
		}
		unresolved = append(unresolved, segment.Path)
	}
	return b.String(), unresolved
}
