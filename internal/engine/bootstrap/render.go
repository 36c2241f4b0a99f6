package bootstrap

import (
	"fmt"
	"io"
	"strings"

	"go.trai.ch/prep/internal/core/domain"
	"go.trai.ch/zerr"
	"mvdan.cc/sh/v3/syntax"
)

// PlannedStep is a step together with the command lines it would run.
type PlannedStep struct {
	Label    string
	Kind     domain.StepKind
	Policy   domain.FailurePolicy
	Commands []string
}

// Plan renders every step of project without executing anything.
func Plan(project *domain.Project) ([]PlannedStep, error) {
	planned := make([]PlannedStep, 0, len(project.Steps))
	for i := range project.Steps {
		step := &project.Steps[i]
		lines, err := Render(project, step)
		if err != nil {
			return nil, zerr.With(err, "step", step.Label(i))
		}
		planned = append(planned, PlannedStep{
			Label:    step.Label(i),
			Kind:     step.Kind,
			Policy:   step.Policy(project.OnFailure),
			Commands: lines,
		})
	}
	return planned, nil
}

// Render returns the shell lines a step stands for. Copy and env steps are
// performed in-process; their lines are descriptive.
func Render(project *domain.Project, step *domain.Step) ([]string, error) {
	switch step.Kind {
	case domain.StepSubmodules:
		return []string{
			"git submodule sync --recursive",
			"git submodule update --init --recursive",
		}, nil

	case domain.StepSystem:
		mgr := project.SystemManagerOrDefault()
		var lines []string
		if step.Update {
			lines = append(lines, mgr+" update")
		}
		pkgs, err := quoteAll(step.Packages)
		if err != nil {
			return nil, err
		}
		return append(lines, mgr+" install -y "+pkgs), nil

	case domain.StepPackages:
		mgr := project.PackageManagerOrDefault()
		var lines []string
		if len(step.Packages) > 0 {
			pkgs, err := quoteAll(step.Packages)
			if err != nil {
				return nil, err
			}
			lines = append(lines, mgr+" install "+pkgs)
		}
		for _, req := range step.Requirements {
			q, err := quote(req)
			if err != nil {
				return nil, err
			}
			lines = append(lines, mgr+" install -r "+q)
		}
		for _, target := range step.Editable {
			q, err := quote(target)
			if err != nil {
				return nil, err
			}
			lines = append(lines, mgr+" install -e "+q)
		}
		return lines, nil

	case domain.StepCopy:
		lines := make([]string, 0, len(step.Files))
		for _, f := range step.Files {
			pair, err := quoteAll([]string{f.From, f.To})
			if err != nil {
				return nil, err
			}
			lines = append(lines, "cp "+pair)
		}
		return lines, nil

	case domain.StepEnv:
		env := domain.Options(step.Env)
		lines := make([]string, 0, len(env))
		for _, name := range env.Names() {
			q, err := quote(env[name])
			if err != nil {
				return nil, err
			}
			lines = append(lines, "export "+name+"="+q)
		}
		return lines, nil

	case domain.StepRun:
		return []string{step.Command}, nil

	default:
		return nil, zerr.With(domain.ErrInvalidStepKind, "kind", string(step.Kind))
	}
}

// WritePlan prints a plan in the layout used by "prep plan".
func WritePlan(w io.Writer, project *domain.Project, planned []PlannedStep) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n", project.Name)
	fmt.Fprintf(&sb, "cd %s\n", project.WorkingDir)
	for i, p := range planned {
		fmt.Fprintf(&sb, "\n[%d/%d] %s (%s, on failure: %s)\n", i+1, len(planned), p.Label, p.Kind, p.Policy)
		for _, line := range p.Commands {
			fmt.Fprintf(&sb, "  %s\n", line)
		}
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func quote(s string) (string, error) {
	q, err := syntax.Quote(s, syntax.LangBash)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to quote argument"), "arg", s)
	}
	return q, nil
}

func quoteAll(args []string) (string, error) {
	out := make([]string, 0, len(args))
	for _, a := range args {
		q, err := quote(a)
		if err != nil {
			return "", err
		}
		out = append(out, q)
	}
	return strings.Join(out, " "), nil
}
