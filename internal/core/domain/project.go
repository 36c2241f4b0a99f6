// Package domain contains the core domain models for environment bootstrapping and verification.
package domain

import (
	"regexp"
	"strconv"
	"strings"

	"go.trai.ch/zerr"
)

// StepKind identifies what a bootstrap step does.
type StepKind string

const (
	// StepSubmodules syncs and initializes version-control submodules.
	StepSubmodules StepKind = "submodules"
	// StepSystem installs system-level build packages.
	StepSystem StepKind = "system"
	// StepPackages installs language-ecosystem packages.
	StepPackages StepKind = "packages"
	// StepCopy copies static files into place.
	StepCopy StepKind = "copy"
	// StepEnv sets values in the environment variable set.
	StepEnv StepKind = "env"
	// StepRun runs an arbitrary shell command line.
	StepRun StepKind = "run"
)

// ParseStepKind converts a string to a StepKind.
func ParseStepKind(s string) (StepKind, error) {
	switch k := StepKind(strings.ToLower(strings.TrimSpace(s))); k {
	case StepSubmodules, StepSystem, StepPackages, StepCopy, StepEnv, StepRun:
		return k, nil
	default:
		return "", zerr.With(ErrInvalidStepKind, "kind", s)
	}
}

// FailurePolicy decides what the pipeline does after a step fails.
type FailurePolicy string

const (
	// PolicyInherit defers to the project's default policy.
	PolicyInherit FailurePolicy = ""
	// PolicyContinue runs the remaining steps after a failure.
	PolicyContinue FailurePolicy = "continue"
	// PolicyHalt skips the remaining steps after a failure.
	PolicyHalt FailurePolicy = "halt"
)

// ParseFailurePolicy converts a string to a FailurePolicy. The empty string yields PolicyInherit.
func ParseFailurePolicy(s string) (FailurePolicy, error) {
	switch p := FailurePolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case PolicyInherit, PolicyContinue, PolicyHalt:
		return p, nil
	default:
		return "", zerr.With(ErrInvalidFailurePolicy, "policy", s)
	}
}

const (
	// DefaultSystemManager is the system package manager used when a project does not name one.
	DefaultSystemManager = "apt-get"
	// DefaultPackageManager is the language package manager used when a project does not name one.
	DefaultPackageManager = "pip"
)

// CopySpec is a single file copy.
type CopySpec struct {
	From string
	To   string
}

// Step is one entry of a project's bootstrap pipeline.
type Step struct {
	Name      string
	Kind      StepKind
	OnFailure FailurePolicy

	// Packages lists system or language packages to install.
	Packages []string
	// Requirements lists requirement manifests installed with "-r".
	Requirements []string
	// Editable lists targets installed with "-e".
	Editable []string
	// Update runs the system package manager's index update before installing.
	Update bool

	// Files lists the copies of a copy step.
	Files []CopySpec

	// Env holds the values an env step sets.
	Env map[string]string

	// Command is the shell line of a run step.
	Command string
}

// Label returns the step name, or a name derived from its kind and position.
func (s *Step) Label(index int) string {
	if s.Name != "" {
		return s.Name
	}
	return string(s.Kind) + "-" + strconv.Itoa(index+1)
}

// Policy resolves the step's effective failure policy.
func (s *Step) Policy(projectDefault FailurePolicy) FailurePolicy {
	if s.OnFailure != PolicyInherit {
		return s.OnFailure
	}
	if projectDefault != PolicyInherit {
		return projectDefault
	}
	return PolicyContinue
}

// Validate checks that the step is well formed for its kind.
func (s *Step) Validate() error {
	empty := false
	switch s.Kind {
	case StepSubmodules:
	case StepSystem:
		empty = len(s.Packages) == 0
	case StepPackages:
		empty = len(s.Packages) == 0 && len(s.Requirements) == 0 && len(s.Editable) == 0
	case StepCopy:
		empty = len(s.Files) == 0
		for _, f := range s.Files {
			if f.From == "" || f.To == "" {
				return zerr.With(ErrEmptyStep, "reason", "copy requires both 'from' and 'to'")
			}
		}
	case StepEnv:
		empty = len(s.Env) == 0
		for name := range s.Env {
			if !envNamePattern.MatchString(name) {
				return zerr.With(ErrInvalidEnvName, "name", name)
			}
		}
	case StepRun:
		empty = strings.TrimSpace(s.Command) == ""
	default:
		return zerr.With(ErrInvalidStepKind, "kind", string(s.Kind))
	}
	if empty {
		return zerr.With(ErrEmptyStep, "kind", string(s.Kind))
	}
	return nil
}

// Project is a target project: a working directory plus the ordered steps that prepare it.
type Project struct {
	Name           string
	WorkingDir     string
	SystemManager  string
	PackageManager string
	OnFailure      FailurePolicy
	// Hermetic restricts the inherited process environment to a small allow-list.
	Hermetic bool
	Options  Options
	Steps    []Step
}

var (
	projectNamePattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)
	envNamePattern     = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
)

// Validate checks the project and every step.
func (p *Project) Validate() error {
	if !projectNamePattern.MatchString(p.Name) {
		return zerr.With(ErrInvalidProjectName, "project", p.Name)
	}
	for name := range p.Options {
		if !envNamePattern.MatchString(name) {
			return zerr.With(zerr.With(ErrInvalidEnvName, "name", name), "project", p.Name)
		}
	}
	for i := range p.Steps {
		if err := p.Steps[i].Validate(); err != nil {
			err = zerr.With(err, "step", p.Steps[i].Label(i))
			return zerr.With(err, "project", p.Name)
		}
	}
	return nil
}

// SystemManagerOrDefault returns the configured system package manager or apt-get.
func (p *Project) SystemManagerOrDefault() string {
	if p.SystemManager != "" {
		return p.SystemManager
	}
	return DefaultSystemManager
}

// PackageManagerOrDefault returns the configured language package manager or pip.
func (p *Project) PackageManagerOrDefault() string {
	if p.PackageManager != "" {
		return p.PackageManager
	}
	return DefaultPackageManager
}

// SplitPin splits a requirement like "pytest==7.2.1" into name and version.
// pinned is false when the spec carries no "==" pin.
func SplitPin(spec string) (name, version string, pinned bool) {
	name, version, pinned = strings.Cut(spec, "==")
	return strings.TrimSpace(name), strings.TrimSpace(version), pinned
}
