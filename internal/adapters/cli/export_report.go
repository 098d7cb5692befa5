package cli

import (
	"fmt"
	"time"

	"github.com/mainul35/dynamic-site-builder-sub000/internal/core"
	"github.com/mainul35/dynamic-site-builder-sub000/internal/usecase"
)

// ExportReport renders one export run: per-step timings, diagnostics
// grouped by severity, and the generated file listing.
type ExportReport struct {
	out       *Output
	outputDir string
	startTime time.Time

	steps       []usecase.Step
	diagnostics []core.Diagnostic
	files       []core.ProjectFile
}

func NewExportReport(out *Output, outputDir string) *ExportReport {
	return &ExportReport{
		out:       out,
		outputDir: outputDir,
		startTime: time.Now(),
	}
}

func (r *ExportReport) AddSteps(steps []usecase.Step) {
	r.steps = append(r.steps, steps...)
}

func (r *ExportReport) AddDiagnostics(diags []core.Diagnostic) {
	r.diagnostics = append(r.diagnostics, diags...)
}

func (r *ExportReport) AddFiles(files []core.ProjectFile) {
	r.files = append(r.files, files...)
}

func (r *ExportReport) Render() {
	duration := time.Since(r.startTime)

	for _, step := range r.steps {
		status := r.out.Green("✓")
		if !step.Success {
			status = r.out.Red("✗")
		}
		fmt.Printf("  %s %s %s\n", status, step.Name, r.out.Gray(formatDuration(step.Duration)))
	}

	warnings := 0
	for _, diag := range r.diagnostics {
		if diag.Severity == core.SeverityWarning {
			warnings++
		}
	}
	if warnings > 0 {
		fmt.Println()
		fmt.Printf("  "+r.out.Yellow("⚠ ")+"Warnings (%d):\n", warnings)
		for _, diag := range dedupeDiagnostics(r.diagnostics) {
			fmt.Printf("    • %s\n", diag)
		}
	}

	if len(r.files) > 0 {
		fmt.Println()
		fmt.Printf("  %d files\n", len(r.files))
		for _, file := range r.files {
			r.out.PrintFile(file.Path)
		}
	}

	fmt.Println()
	r.out.PrintSuccess("Export complete in %s", formatDuration(duration))
	if r.outputDir != "" {
		fmt.Printf("\n  %s\n", r.out.Gray("Output: "+r.outputDir))
	}
}

func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%.0fms", float64(d)/float64(time.Millisecond))
	}
	return fmt.Sprintf("%.1fs", float64(d)/float64(time.Second))
}

// dedupeDiagnostics collapses repeated messages, keeping first-seen
// order and annotating the occurrence count.
func dedupeDiagnostics(diags []core.Diagnostic) []string {
	counts := make(map[string]int)
	var order []string
	for _, diag := range diags {
		msg := diag.String()
		if counts[msg] == 0 {
			order = append(order, msg)
		}
		counts[msg]++
	}

	result := make([]string, 0, len(order))
	for _, msg := range order {
		if counts[msg] > 1 {
			result = append(result, fmt.Sprintf("%s (%d occurrences)", msg, counts[msg]))
		} else {
			result = append(result, msg)
		}
	}
	return result
}
