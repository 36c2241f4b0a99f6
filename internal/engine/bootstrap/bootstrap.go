// Package bootstrap runs a project's step pipeline strictly in order.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/prep/internal/core/domain"
	"go.trai.ch/prep/internal/core/ports"
	"go.trai.ch/zerr"
)

// RunOptions adjusts a single bootstrap run.
type RunOptions struct {
	// Dir replaces the project's working directory when set.
	Dir string
	// FailFast halts the pipeline at the first failure regardless of step policies.
	FailFast bool
}

// Bootstrapper executes bootstrap pipelines.
type Bootstrapper struct {
	executor  ports.Executor
	copier    ports.FileCopier
	hasher    ports.Hasher
	store     ports.RecordStore
	telemetry ports.Telemetry
	logger    ports.Logger
	now       func() time.Time
}

// New creates a Bootstrapper.
func New(
	executor ports.Executor,
	copier ports.FileCopier,
	hasher ports.Hasher,
	store ports.RecordStore,
	telemetry ports.Telemetry,
	logger ports.Logger,
) *Bootstrapper {
	return &Bootstrapper{
		executor:  executor,
		copier:    copier,
		hasher:    hasher,
		store:     store,
		telemetry: telemetry,
		logger:    logger,
		now:       time.Now,
	}
}

// Run executes every step of project in declaration order and persists a bootstrap record.
// Step failures are reported in the returned report, not as an error. An error is returned
// only when the pipeline could not start or its record could not be saved.
//
// The fingerprint covers the profile as loaded; run overrides change where the steps
// run, not what the profile defines.
func (b *Bootstrapper) Run(ctx context.Context, project *domain.Project, opts RunOptions) (*domain.Report, error) {
	p := *project
	if opts.Dir != "" {
		p.WorkingDir = opts.Dir
	}
	if opts.FailFast {
		p.OnFailure = domain.PolicyHalt
	}

	dir, err := checkWorkingDir(p.WorkingDir)
	if err != nil {
		return nil, zerr.With(err, "project", p.Name)
	}
	p.WorkingDir = dir

	fingerprint, err := b.hasher.Fingerprint(ctx, project, dir)
	if err != nil {
		return nil, zerr.With(err, "project", p.Name)
	}

	run := &pipeline{
		b:       b,
		project: &p,
		env:     p.Options.Clone(),
		report:  &domain.Report{Project: p.Name, Dir: dir},
		force:   opts.FailFast,
	}
	run.execute(ctx)

	run.report.Env = run.env
	record := domain.NewBootstrapRecord(run.report, fingerprint, b.now())
	if err := b.store.Put(*record); err != nil {
		return run.report, zerr.With(err, "project", p.Name)
	}
	return run.report, nil
}

func checkWorkingDir(dir string) (string, error) {
	if dir == "" {
		dir = "."
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrWorkingDirNotFound.Error()), "dir", dir)
	}
	info, err := os.Stat(abs)
	if err != nil || !info.IsDir() {
		return "", zerr.With(domain.ErrWorkingDirNotFound, "dir", abs)
	}
	return abs, nil
}

type pipeline struct {
	b       *Bootstrapper
	project *domain.Project
	env     domain.Options
	report  *domain.Report
	force   bool
}

func (p *pipeline) execute(ctx context.Context) {
	total := len(p.project.Steps)
	p.b.logger.Info(fmt.Sprintf("Bootstrapping %s in %s (%d steps)", p.project.Name, p.project.WorkingDir, total))

	for i := range p.project.Steps {
		step := &p.project.Steps[i]
		label := step.Label(i)

		if p.report.Halted || ctx.Err() != nil {
			p.report.Halted = true
			p.report.Results = append(p.report.Results, domain.StepResult{
				Step:   label,
				Kind:   step.Kind,
				Status: domain.StepSkipped,
			})
			continue
		}

		p.b.logger.Info(fmt.Sprintf("[%d/%d] %s", i+1, total, label))
		res := p.runStep(ctx, step, label)
		p.report.Results = append(p.report.Results, res)

		if res.Status.IsFailure() {
			p.b.logger.Error(zerr.With(zerr.With(res.Err, "step", label), "project", p.project.Name))
			if p.force || step.Policy(p.project.OnFailure) == domain.PolicyHalt || ctx.Err() != nil {
				p.report.Halted = true
			}
		}
	}

	if ctx.Err() != nil {
		p.report.Halted = true
	}
}

func (p *pipeline) runStep(ctx context.Context, step *domain.Step, label string) domain.StepResult {
	start := time.Now()
	vctx, vertex := p.b.telemetry.Record(ctx, label)

	res := domain.StepResult{Step: label, Kind: step.Kind}
	var changed bool
	var err error

	switch step.Kind {
	case domain.StepEnv:
		res.Commands, err = Render(p.project, step)
		if err == nil {
			p.env.Merge(step.Env)
		}
		changed = true
	case domain.StepCopy:
		res.Commands, _ = Render(p.project, step)
		changed, err = p.copyFiles(step)
	default:
		res.Commands, err = Render(p.project, step)
		if err == nil {
			err = p.runCommands(vctx, res.Commands)
		}
		changed = true
	}

	res.Duration = time.Since(start)
	switch {
	case err != nil:
		res.Status = domain.StepFailed
		res.Err = err
		res.ExitCode = domain.ExitCode(err)
		vertex.Complete(err)
	case !changed:
		res.Status = domain.StepUnchanged
		vertex.Cached()
		vertex.Complete(nil)
	default:
		res.Status = domain.StepSucceeded
		vertex.Complete(nil)
	}
	return res
}

func (p *pipeline) runCommands(ctx context.Context, lines []string) error {
	for _, line := range lines {
		err := p.b.executor.Execute(ctx, domain.Command{
			Line:     line,
			Dir:      p.project.WorkingDir,
			Env:      p.env.Clone(),
			Hermetic: p.project.Hermetic,
		})
		if err != nil {
			return zerr.Wrap(err, domain.ErrStepFailed.Error())
		}
	}
	return nil
}

// copyFiles attempts every pair, even after a failure, and reports changed when at
// least one destination was written.
func (p *pipeline) copyFiles(step *domain.Step) (bool, error) {
	changed := false
	var errs []error
	for _, f := range step.Files {
		src := p.resolve(f.From)
		dst := p.resolve(f.To)
		wrote, err := p.b.copier.Copy(src, dst)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if wrote {
			p.b.logger.Info(fmt.Sprintf("copied %s → %s", f.From, f.To))
		}
		changed = changed || wrote
	}
	if len(errs) > 0 {
		return changed, zerr.Wrap(errors.Join(errs...), domain.ErrStepFailed.Error())
	}
	return changed, nil
}

func (p *pipeline) resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(p.project.WorkingDir, path)
}
