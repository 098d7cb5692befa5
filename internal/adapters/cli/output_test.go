package cli

import (
	"testing"

	"github.com/mainul35/dynamic-site-builder-sub000/internal/core"
)

func TestDiagnosticLineBySeverity(t *testing.T) {
	out := NewOutput()
	out.DisableColors()

	warning := core.Diagnostic{Severity: core.SeverityWarning, ComponentID: "img-1", Message: "failed to fetch asset"}
	if got := out.diagnosticLine(warning); got != "⚠ [img-1] failed to fetch asset" {
		t.Errorf("Expected warning marker with component id, got %q", got)
	}

	err := core.Diagnostic{Severity: core.SeverityError, Message: "duplicate instance id"}
	if got := out.diagnosticLine(err); got != "✗ duplicate instance id" {
		t.Errorf("Expected error marker, got %q", got)
	}
}

func TestColorsDisabled(t *testing.T) {
	out := NewOutput()
	out.DisableColors()

	if got := out.Green("ok"); got != "ok" {
		t.Errorf("Expected plain text with colors disabled, got %q", got)
	}
}

func TestDedupeDiagnostics(t *testing.T) {
	diags := []core.Diagnostic{
		{Severity: core.SeverityWarning, Message: "a"},
		{Severity: core.SeverityWarning, Message: "b"},
		{Severity: core.SeverityWarning, Message: "a"},
	}

	got := dedupeDiagnostics(diags)
	if len(got) != 2 {
		t.Fatalf("Expected 2 entries, got %d: %v", len(got), got)
	}
	if got[0] != "warning: a (2 occurrences)" {
		t.Errorf("Expected occurrence count on repeated message, got %q", got[0])
	}
	if got[1] != "warning: b" {
		t.Errorf("Expected single message untouched, got %q", got[1])
	}
}
