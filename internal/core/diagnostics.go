package core

import "fmt"

type Severity string

const (
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

type Diagnostic struct {
	Severity    Severity
	ComponentID string
	Message     string
}

func (d Diagnostic) String() string {
	if d.ComponentID == "" {
		return fmt.Sprintf("%s: %s", d.Severity, d.Message)
	}
	return fmt.Sprintf("%s [%s]: %s", d.Severity, d.ComponentID, d.Message)
}

// Diagnostics accumulates generation-time findings in discovery order.
// Nothing recorded here aborts an export; whole-run failures surface as
// errors instead.
type Diagnostics struct {
	entries []Diagnostic
}

func NewDiagnostics() *Diagnostics {
	return &Diagnostics{}
}

func (d *Diagnostics) Warnf(componentID, format string, args ...any) {
	d.entries = append(d.entries, Diagnostic{
		Severity:    SeverityWarning,
		ComponentID: componentID,
		Message:     fmt.Sprintf(format, args...),
	})
}

func (d *Diagnostics) Errorf(componentID, format string, args ...any) {
	d.entries = append(d.entries, Diagnostic{
		Severity:    SeverityError,
		ComponentID: componentID,
		Message:     fmt.Sprintf(format, args...),
	})
}

func (d *Diagnostics) Entries() []Diagnostic {
	return d.entries
}

func (d *Diagnostics) HasWarnings() bool {
	return len(d.entries) > 0
}
