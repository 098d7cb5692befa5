package core

import "strings"

// Slugify lowercases a name and collapses everything outside [a-z0-9]
// into single dashes.
func Slugify(name string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// PascalCase converts a path segment or slug into an identifier suitable
// for generated class and method names.
func PascalCase(name string) string {
	var b strings.Builder
	upperNext := true
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z':
			if upperNext {
				b.WriteRune(r - 'a' + 'A')
			} else {
				b.WriteRune(r)
			}
			upperNext = false
		case r >= 'A' && r <= 'Z':
			if upperNext {
				b.WriteRune(r)
			} else {
				b.WriteRune(r - 'A' + 'a')
			}
			upperNext = false
		case r >= '0' && r <= '9':
			b.WriteRune(r)
			upperNext = true
		default:
			upperNext = true
		}
	}
	return b.String()
}

// CamelCase is PascalCase with a lowered first letter.
func CamelCase(name string) string {
	pascal := PascalCase(name)
	if pascal == "" {
		return ""
	}
	return strings.ToLower(pascal[:1]) + pascal[1:]
}
