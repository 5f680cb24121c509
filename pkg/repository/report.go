package repository

import (
	"errors"
	"fmt"
	"strings"
)

// Level is the severity of a step report.
type Level int

const (
	// LevelInfo marks a successful step.
	LevelInfo Level = iota
	// LevelError marks a failed step, fatal or not.
	LevelError
)

func (l Level) String() string {
	if l == LevelError {
		return "error"
	}
	return "info"
}

// StepReport is the outcome of a single step of an operation.
type StepReport struct {
	Step    string
	Level   Level
	Message string
	Err     error
}

// Report is the ordered list of steps an operation went through.
type Report struct {
	Operation string
	Steps     []StepReport
}

func newReport(operation string) *Report {
	return &Report{Operation: operation}
}

func (r *Report) info(step, message string) {
	r.Steps = append(r.Steps, StepReport{Step: step, Level: LevelInfo, Message: message})
}

func (r *Report) fail(step string, err error) {
	r.Steps = append(r.Steps, StepReport{Step: step, Level: LevelError, Message: err.Error(), Err: err})
}

// Errors returns the errors of every failed step, in order.
func (r *Report) Errors() []error {
	var errs []error
	for _, s := range r.Steps {
		if s.Err != nil {
			errs = append(errs, s.Err)
		}
	}
	return errs
}

// Has reports whether any step failed with an error matching target.
func (r *Report) Has(target error) bool {
	for _, s := range r.Steps {
		if s.Err != nil && errors.Is(s.Err, target) {
			return true
		}
	}
	return false
}

// Step returns the first step with the given name.
func (r *Report) Step(name string) (StepReport, bool) {
	for _, s := range r.Steps {
		if s.Step == name {
			return s, true
		}
	}
	return StepReport{}, false
}

// StepNames returns the names of the steps, in order.
func (r *Report) StepNames() []string {
	names := make([]string, 0, len(r.Steps))
	for _, s := range r.Steps {
		names = append(names, s.Step)
	}
	return names
}

func (r *Report) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s:", r.Operation)
	for _, s := range r.Steps {
		fmt.Fprintf(&b, "\n  [%s] %s: %s", s.Level, s.Step, s.Message)
	}
	return b.String()
}
