// Package cli renders export progress and the final report to the
// terminal.
package cli

import (
	"fmt"
	"os"

	"github.com/mainul35/dynamic-site-builder-sub000/internal/core"
)

type Output struct {
	enableColors bool
}

func NewOutput() *Output {
	return &Output{
		enableColors: isTerminal(),
	}
}

func (o *Output) DisableColors() {
	o.enableColors = false
}

func (o *Output) Green(text string) string {
	if !o.enableColors {
		return text
	}
	return "\033[32m" + text + "\033[0m"
}

func (o *Output) Yellow(text string) string {
	if !o.enableColors {
		return text
	}
	return "\033[33m" + text + "\033[0m"
}

func (o *Output) Red(text string) string {
	if !o.enableColors {
		return text
	}
	return "\033[31m" + text + "\033[0m"
}

func (o *Output) Gray(text string) string {
	if !o.enableColors {
		return text
	}
	return "\033[90m" + text + "\033[0m"
}

func (o *Output) PrintHeader(msg string) {
	fmt.Println(msg)
	fmt.Println()
}

func (o *Output) PrintSuccess(msg string, args ...any) {
	formatted := fmt.Sprintf(msg, args...)
	fmt.Printf("  "+o.Green("✓ ")+"%s\n", formatted)
}

func (o *Output) PrintWarning(msg string, args ...any) {
	formatted := fmt.Sprintf(msg, args...)
	fmt.Printf("  "+o.Yellow("⚠ ")+"%s\n", formatted)
}

func (o *Output) PrintError(msg string, args ...any) {
	formatted := fmt.Sprintf(msg, args...)
	fmt.Fprintf(os.Stderr, "  "+o.Red("✗ ")+"%s\n", formatted)
}

// PrintDiagnostic renders a diagnostic with a severity-matched marker:
// warnings go to stdout, errors to stderr.
func (o *Output) PrintDiagnostic(diag core.Diagnostic) {
	if diag.Severity == core.SeverityError {
		fmt.Fprintf(os.Stderr, "  %s\n", o.diagnosticLine(diag))
		return
	}
	fmt.Printf("  %s\n", o.diagnosticLine(diag))
}

func (o *Output) diagnosticLine(diag core.Diagnostic) string {
	label := diag.Message
	if diag.ComponentID != "" {
		label = "[" + diag.ComponentID + "] " + diag.Message
	}
	if diag.Severity == core.SeverityError {
		return o.Red("✗ ") + label
	}
	return o.Yellow("⚠ ") + label
}

func (o *Output) PrintFile(path string) {
	fmt.Printf("    %s\n", path)
}

func isTerminal() bool {
	stat, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) == os.ModeCharDevice
}
