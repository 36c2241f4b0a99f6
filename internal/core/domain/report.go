package domain

import "time"

// StepResult is the outcome of one step.
type StepResult struct {
	Step     string
	Kind     StepKind
	Status   StepStatus
	ExitCode int
	Err      error
	Commands []string
	Duration time.Duration
}

// Report is the outcome of a full bootstrap pipeline.
type Report struct {
	Project string
	// Dir is the absolute working directory the steps ran in.
	Dir     string
	Results []StepResult
	// Env is the environment variable set after the last executed step.
	Env Options
	// Halted is true when a failure or cancellation stopped the pipeline early.
	Halted bool
}

// Failed reports whether any step failed.
func (r *Report) Failed() bool {
	return r.FirstFailure() != nil
}

// FirstFailure returns the earliest failed step, or nil.
func (r *Report) FirstFailure() *StepResult {
	for i := range r.Results {
		if r.Results[i].Status.IsFailure() {
			return &r.Results[i]
		}
	}
	return nil
}

// FailedSteps returns the names of every failed step in pipeline order.
func (r *Report) FailedSteps() []string {
	var names []string
	for _, res := range r.Results {
		if res.Status.IsFailure() {
			names = append(names, res.Step)
		}
	}
	return names
}

// Count returns how many steps ended with the given status.
func (r *Report) Count(status StepStatus) int {
	n := 0
	for _, res := range r.Results {
		if res.Status == status {
			n++
		}
	}
	return n
}

// ExitCode is 0 when every step succeeded, otherwise the exit code of the first failed step.
// Failures without a process exit status map to 1.
func (r *Report) ExitCode() int {
	first := r.FirstFailure()
	if first == nil {
		return 0
	}
	if first.ExitCode > 0 {
		return first.ExitCode
	}
	return 1
}
