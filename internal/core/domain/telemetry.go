package domain

// StepStatus is the terminal state of a bootstrap step.
type StepStatus string

const (
	// StepSucceeded indicates every command of the step completed successfully.
	StepSucceeded StepStatus = "succeeded"
	// StepFailed indicates the step stopped on an error.
	StepFailed StepStatus = "failed"
	// StepSkipped indicates the step never ran because the pipeline halted or was cancelled.
	StepSkipped StepStatus = "skipped"
	// StepUnchanged indicates the step ran but found nothing to do.
	StepUnchanged StepStatus = "unchanged"
)

// IsFailure reports whether the status counts against the pipeline outcome.
func (s StepStatus) IsFailure() bool {
	return s == StepFailed
}

// Icon returns a one-character marker used in plain listings.
func (s StepStatus) Icon() string {
	switch s {
	case StepSucceeded:
		return "✓"
	case StepFailed:
		return "✗"
	case StepUnchanged:
		return "="
	default:
		return "-"
	}
}

// LogLevel represents the severity of a log message, mirroring the standard slog levels.
type LogLevel int

const (
	// LogLevelDebug represents debug-level verbosity.
	LogLevelDebug LogLevel = -4
	// LogLevelInfo represents informational verbosity.
	LogLevelInfo LogLevel = 0
	// LogLevelWarn represents warning verbosity.
	LogLevelWarn LogLevel = 4
	// LogLevelError represents error verbosity.
	LogLevelError LogLevel = 8
)

// String returns the string representation of the LogLevel.
func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelWarn:
		return "WARN"
	case LogLevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}
