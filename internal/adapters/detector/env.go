// Package detector selects the log format from the terminal and CI environment.
package detector

import (
	"os"
	"strings"

	"golang.org/x/term"
)

// LogFormat is the rendering mode for log output.
type LogFormat int

const (
	// FormatAuto defers to environment detection.
	FormatAuto LogFormat = iota
	// FormatPretty renders coloured human-readable lines.
	FormatPretty
	// FormatJSON renders one JSON object per line.
	FormatJSON
)

// String returns the flag spelling of the format.
func (f LogFormat) String() string {
	switch f {
	case FormatPretty:
		return "pretty"
	case FormatJSON:
		return "json"
	default:
		return "auto"
	}
}

// DetectEnvironment inspects stderr and the CI variable.
func DetectEnvironment() LogFormat {
	return Detect(term.IsTerminal(int(os.Stderr.Fd())), os.Getenv("CI"))
}

// Detect picks JSON for non-terminals and CI runs, pretty otherwise.
func Detect(isTTY bool, ci string) LogFormat {
	isCI := ci == "true" || ci == "1"
	if !isTTY || isCI {
		return FormatJSON
	}
	return FormatPretty
}

// ResolveFormat applies a user setting ("auto", "pretty", "json") on top of detection.
// Unknown values fall back to detection.
func ResolveFormat(detected LogFormat, setting string) LogFormat {
	switch strings.ToLower(setting) {
	case "pretty", "text":
		return FormatPretty
	case "json":
		return FormatJSON
	default:
		return detected
	}
}
