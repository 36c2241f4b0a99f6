// Package app implements the application layer for prep.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.trai.ch/prep/internal/adapters/config"
	"go.trai.ch/prep/internal/adapters/detector"
	"go.trai.ch/prep/internal/core/domain"
	"go.trai.ch/prep/internal/core/ports"
	"go.trai.ch/prep/internal/engine/bootstrap"
	"go.trai.ch/prep/internal/engine/verifier"
	"go.trai.ch/prep/internal/ui/style"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	loader       ports.ProfileLoader
	bootstrapper *bootstrap.Bootstrapper
	verifier     *verifier.Verifier
	store        ports.RecordStore
	hasher       ports.Hasher
	validator    ports.ManifestValidator
	namer        ports.ImageNamer
	runtime      ports.ImageRuntime
	issues       ports.IssueTracker
	logger       ports.Logger
	settings     *config.Settings
	out          io.Writer
}

// New creates a new App instance.
func New(
	loader ports.ProfileLoader,
	bootstrapper *bootstrap.Bootstrapper,
	verify *verifier.Verifier,
	store ports.RecordStore,
	hasher ports.Hasher,
	validator ports.ManifestValidator,
	namer ports.ImageNamer,
	runtime ports.ImageRuntime,
	issues ports.IssueTracker,
	log ports.Logger,
	settings *config.Settings,
) *App {
	return &App{
		loader:       loader,
		bootstrapper: bootstrapper,
		verifier:     verify,
		store:        store,
		hasher:       hasher,
		validator:    validator,
		namer:        namer,
		runtime:      runtime,
		issues:       issues,
		logger:       log,
		settings:     settings,
		out:          os.Stdout,
	}
}

// WithOutput redirects command output. Logs are unaffected.
func (a *App) WithOutput(w io.Writer) *App {
	a.out = w
	return a
}

// SetLogFormat switches the logger between pretty and JSON output.
// An empty setting falls back to PREP_LOG_FORMAT.
func (a *App) SetLogFormat(setting string) {
	if setting == "" {
		setting = a.settings.LogFormat
	}
	format := detector.ResolveFormat(detector.DetectEnvironment(), setting)
	if lg, ok := a.logger.(interface{ SetJSON(bool) }); ok {
		lg.SetJSON(format == detector.FormatJSON)
	}
}

// profilePath picks the flag value, then PREP_CONFIG when that file exists.
// An empty result means presets only.
func (a *App) profilePath(flag string) string {
	if flag != "" {
		return flag
	}
	if a.settings.ConfigPath != "" {
		if _, err := os.Stat(a.settings.ConfigPath); err == nil {
			return a.settings.ConfigPath
		}
	}
	return ""
}

// List prints the available project names.
func (a *App) List(configPath string) error {
	names, err := a.loader.List(a.profilePath(configPath))
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}
	for _, name := range names {
		if _, err := fmt.Fprintln(a.out, name); err != nil {
			return err
		}
	}
	return nil
}

// Plan prints the commands a bootstrap would run without running them.
func (a *App) Plan(configPath, name string) error {
	project, err := a.load(configPath, name)
	if err != nil {
		return err
	}
	planned, err := bootstrap.Plan(project)
	if err != nil {
		return err
	}
	return bootstrap.WritePlan(a.out, project, planned)
}

// RunOptions configuration for the Run method.
type RunOptions struct {
	Dir      string
	FailFast bool
}

// Run bootstraps a project and prints a per-step summary.
// A failed pipeline is returned as an error carrying the first failure's exit status.
func (a *App) Run(ctx context.Context, configPath, name string, opts RunOptions) error {
	project, err := a.load(configPath, name)
	if err != nil {
		return err
	}

	report, err := a.bootstrapper.Run(ctx, project, bootstrap.RunOptions{Dir: opts.Dir, FailFast: opts.FailFast})
	if report != nil {
		a.printReport(report)
	}
	if err != nil {
		return err
	}

	if report.Failed() || report.Halted {
		failed := zerr.With(domain.ErrBootstrapFailed, "project", report.Project)
		if steps := report.FailedSteps(); len(steps) > 0 {
			failed = zerr.With(failed, "failed_steps", strings.Join(steps, ","))
		}
		if report.Failed() {
			return errors.Join(failed, &domain.ExitError{Code: report.ExitCode()})
		}
		return errors.Join(failed, ctx.Err())
	}
	return nil
}

func (a *App) printReport(report *domain.Report) {
	var sb strings.Builder
	for _, res := range report.Results {
		line := fmt.Sprintf("%s %-24s %-9s %s", res.Status.Icon(), res.Step, res.Status, res.Duration.Round(time.Millisecond))
		switch res.Status {
		case domain.StepFailed:
			line = style.Failure.Render(line)
		case domain.StepSucceeded:
			line = style.Success.Render(line)
		default:
			line = style.Dim.Render(line)
		}
		sb.WriteString(line + "\n")
	}
	fmt.Fprintf(&sb, "%d succeeded, %d unchanged, %d failed, %d skipped\n",
		report.Count(domain.StepSucceeded),
		report.Count(domain.StepUnchanged),
		report.Count(domain.StepFailed),
		report.Count(domain.StepSkipped),
	)
	_, _ = io.WriteString(a.out, sb.String())
}

// Status prints the last bootstrap record of a project.
func (a *App) Status(ctx context.Context, configPath, name string) error {
	project, err := a.load(configPath, name)
	if err != nil {
		return err
	}

	record, err := a.store.Get(project.Name)
	if err != nil {
		return err
	}
	if record == nil {
		_, err := fmt.Fprintf(a.out, "%s: never bootstrapped\n", project.Name)
		return err
	}

	dir := record.Dir
	if dir == "" {
		dir = project.WorkingDir
		if abs, err := filepath.Abs(dir); err == nil {
			dir = abs
		}
	}
	fingerprint, err := a.hasher.Fingerprint(ctx, project, dir)
	if err != nil {
		return err
	}

	var sb strings.Builder
	outcome := style.Success.Render(style.Check + " succeeded")
	if !record.Succeeded {
		outcome = style.Failure.Render(style.Cross + " failed")
	}
	fmt.Fprintf(&sb, "%s: %s at %s\n", style.Heading.Render(record.Project), outcome, record.Timestamp.Format(time.RFC3339))
	if len(record.FailedSteps) > 0 {
		fmt.Fprintf(&sb, "  failed steps: %s\n", strings.Join(record.FailedSteps, ", "))
	}
	if len(record.Env) > 0 {
		fmt.Fprintf(&sb, "  env: %s\n", strings.Join(domain.Options(record.Env).Names(), ", "))
	}
	if record.Stale(fingerprint) {
		sb.WriteString(style.Notice.Render("  "+style.Warning+" profile or copy sources changed since this run") + "\n")
	}
	_, err = io.WriteString(a.out, sb.String())
	return err
}

// Verify runs the pre/post patch verification. An unresolved instance is an error.
func (a *App) Verify(ctx context.Context, req verifier.Request) error {
	result, err := a.verifier.Verify(ctx, req)
	if err != nil {
		return err
	}
	if !result.Resolved {
		return zerr.With(domain.ErrVerificationFailed, "instance", req.InstanceID)
	}
	return nil
}

func (a *App) load(configPath, name string) (*domain.Project, error) {
	if name == "" {
		return nil, domain.ErrNoProjectSpecified
	}
	project, err := a.loader.Load(a.profilePath(configPath), name)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}
	return project, nil
}
