// Package usecase holds the export services. Each service takes an
// Input struct, runs the full pipeline, and returns an Output struct
// carrying the generated files, the diagnostics, and per-step timings
// for the CLI report.
package usecase

import (
	"time"
)

// Step is one timed pipeline stage of an export run.
type Step struct {
	Name     string
	Duration time.Duration
	Success  bool
}

type stepTimer struct {
	steps []Step
	last  time.Time
}

func newStepTimer() *stepTimer {
	return &stepTimer{last: time.Now()}
}

func (t *stepTimer) mark(name string, success bool) {
	now := time.Now()
	t.steps = append(t.steps, Step{Name: name, Duration: now.Sub(t.last), Success: success})
	t.last = now
}
