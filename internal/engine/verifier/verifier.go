// Package verifier checks whether a code patch fixes the tests introduced by a test patch.
package verifier

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/prep/internal/core/domain"
	"go.trai.ch/prep/internal/core/ports"
	"go.trai.ch/zerr"
	"mvdan.cc/sh/v3/syntax"
)

// DefaultTestCommand runs the suite when a request names none.
const DefaultTestCommand = "pytest"

// Request describes one verification.
type Request struct {
	RepoDir    string
	BaseCommit string
	InstanceID string
	// PatchDir holds test.patch and code.patch.
	PatchDir string
	// TestCommand is the test runner invocation; it must accept file arguments and --junitxml.
	TestCommand string
	// DefaultTestFiles replaces domain.DefaultTestFiles when set.
	DefaultTestFiles []string
	// OutputPath is where results.json is written. Defaults to PatchDir/results.json.
	OutputPath string
}

// Verifier runs the pre-patch and post-patch test passes.
type Verifier struct {
	executor ports.Executor
	parser   ports.ReportParser
	logger   ports.Logger
}

// New creates a Verifier.
func New(executor ports.Executor, parser ports.ReportParser, logger ports.Logger) *Verifier {
	return &Verifier{executor: executor, parser: parser, logger: logger}
}

// Verify runs both passes, classifies the outcome and writes the results file.
// The results file is written even when a pass fails; the failure is then returned as an error.
func (v *Verifier) Verify(ctx context.Context, req Request) (*domain.VerificationResult, error) {
	req, err := withDefaults(req)
	if err != nil {
		return nil, err
	}

	if info, err := os.Stat(filepath.Join(req.RepoDir, ".git")); err != nil || !info.IsDir() {
		return nil, zerr.With(domain.ErrRepoNotFound, "repo", req.RepoDir)
	}

	result := domain.NewVerificationResult()
	runErr := v.run(ctx, req, result)

	if err := writeResults(req.OutputPath, req.InstanceID, result); err != nil {
		return result, errors.Join(runErr, err)
	}
	v.logger.Info("Wrote " + req.OutputPath)

	if runErr != nil {
		return result, errors.Join(domain.ErrVerificationFailed, runErr)
	}
	return result, nil
}

// withDefaults also makes every path absolute, since git runs inside RepoDir.
func withDefaults(req Request) (Request, error) {
	if req.TestCommand == "" {
		req.TestCommand = DefaultTestCommand
	}
	if len(req.DefaultTestFiles) == 0 {
		req.DefaultTestFiles = domain.DefaultTestFiles
	}
	if req.OutputPath == "" {
		req.OutputPath = filepath.Join(req.PatchDir, domain.ResultsFileName)
	}
	for _, path := range []*string{&req.RepoDir, &req.PatchDir, &req.OutputPath} {
		abs, err := filepath.Abs(*path)
		if err != nil {
			return req, zerr.With(zerr.Wrap(err, "failed to resolve path"), "path", *path)
		}
		*path = abs
	}
	return req, nil
}

func (v *Verifier) run(ctx context.Context, req Request, result *domain.VerificationResult) error {
	testPatch := filepath.Join(req.PatchDir, domain.TestPatchFileName)
	codePatch := filepath.Join(req.PatchDir, domain.CodePatchFileName)
	files := v.testFiles(testPatch, req.DefaultTestFiles)

	v.logger.Info("Pre-patch run: test patch only")
	if err := v.reset(ctx, req); err != nil {
		return err
	}
	if err := v.apply(ctx, req.RepoDir, testPatch); err != nil {
		return err
	}
	pre, err := v.runTests(ctx, req, files)
	if err != nil {
		return err
	}

	v.logger.Info("Post-patch run: test and code patches")
	if err := v.reset(ctx, req); err != nil {
		return err
	}
	if err := v.apply(ctx, req.RepoDir, testPatch); err != nil {
		return err
	}
	if err := v.apply(ctx, req.RepoDir, codePatch); err != nil {
		return err
	}
	result.PatchSuccessfullyApplied = true

	post, err := v.runTests(ctx, req, files)
	if err != nil {
		return err
	}

	result.TestsStatus = domain.Classify(pre, post)
	result.Resolved = result.TestsStatus.Resolved()
	v.summarize(result)
	return nil
}

// testFiles falls back to defaults when the patch is absent, unreadable or names no Python file.
func (v *Verifier) testFiles(patchPath string, defaults []string) []string {
	f, err := os.Open(patchPath) //nolint:gosec // Path is built from the patch directory
	if err != nil {
		v.logger.Info(fmt.Sprintf("%s not found, running default tests", filepath.Base(patchPath)))
		return defaults
	}
	defer f.Close() //nolint:errcheck // Read-only

	files, err := domain.ModifiedPythonFiles(f)
	if err != nil {
		v.logger.Warn(fmt.Sprintf("could not read %s, running default tests: %v", patchPath, err))
		return defaults
	}
	if len(files) == 0 {
		v.logger.Info(fmt.Sprintf("no Python files in %s, running default tests", filepath.Base(patchPath)))
		return defaults
	}
	return files
}

func (v *Verifier) reset(ctx context.Context, req Request) error {
	commit, err := syntax.Quote(req.BaseCommit, syntax.LangBash)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrRepoResetFailed.Error()), "commit", req.BaseCommit)
	}
	for _, line := range []string{"git reset --hard " + commit, "git clean -df"} {
		if err := v.executor.Execute(ctx, domain.Command{Line: line, Dir: req.RepoDir}); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrRepoResetFailed.Error()), "commit", req.BaseCommit)
		}
	}
	return nil
}

// apply skips patches that do not exist.
func (v *Verifier) apply(ctx context.Context, repoDir, patchPath string) error {
	if _, err := os.Stat(patchPath); err != nil {
		v.logger.Info(fmt.Sprintf("%s not found, skipping", filepath.Base(patchPath)))
		return nil
	}
	quoted, err := syntax.Quote(patchPath, syntax.LangBash)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrPatchApplyFailed.Error()), "patch", patchPath)
	}
	if err := v.executor.Execute(ctx, domain.Command{Line: "git apply " + quoted, Dir: repoDir}); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrPatchApplyFailed.Error()), "patch", patchPath)
	}
	v.logger.Info("Applied " + filepath.Base(patchPath))
	return nil
}

// runTests ignores the runner's exit status; failing tests are read from the report.
func (v *Verifier) runTests(ctx context.Context, req Request, files []string) (domain.TestResults, error) {
	tmp, err := os.MkdirTemp("", "prep-junit-*")
	if err != nil {
		return nil, zerr.Wrap(err, "failed to create report directory")
	}
	defer func() { _ = os.RemoveAll(tmp) }()
	report := filepath.Join(tmp, "report.xml")

	args := []string{req.TestCommand}
	for _, f := range files {
		if info, err := os.Stat(filepath.Join(req.RepoDir, f)); err != nil || !info.Mode().IsRegular() {
			continue
		}
		q, err := syntax.Quote(f, syntax.LangBash)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to quote test file"), "file", f)
		}
		args = append(args, q)
	}
	q, err := syntax.Quote("--junitxml="+report, syntax.LangBash)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to quote report path")
	}
	args = append(args, q)

	line := strings.Join(args, " ")
	v.logger.Info("Executing: " + line)
	err = v.executor.Execute(ctx, domain.Command{Line: line, Dir: req.RepoDir})
	if err != nil && !errors.Is(err, domain.ErrCommandFailed) {
		return nil, err
	}

	results, err := v.parser.Parse(report)
	if err != nil {
		return nil, err
	}
	v.logger.Info(fmt.Sprintf("Parsed %d test results", len(results)))
	return results, nil
}

func (v *Verifier) summarize(result *domain.VerificationResult) {
	s := result.TestsStatus
	for _, c := range []struct {
		name   string
		bucket domain.TestBucket
	}{
		{"FAIL_TO_PASS", s.FailToPass},
		{"PASS_TO_PASS", s.PassToPass},
		{"FAIL_TO_FAIL", s.FailToFail},
		{"PASS_TO_FAIL", s.PassToFail},
	} {
		if n := len(c.bucket.Success); n > 0 {
			v.logger.Info(fmt.Sprintf("[%s] %d passing", c.name, n))
		}
		if n := len(c.bucket.Failure); n > 0 {
			v.logger.Warn(fmt.Sprintf("[%s] %d failing", c.name, n))
		}
	}
	if result.Resolved {
		v.logger.Info("Verification successful")
		return
	}
	if len(s.FailToPass.Success) == 0 {
		v.logger.Warn("no tests were fixed")
	}
	if n := len(s.FailToFail.Failure); n > 0 {
		v.logger.Warn(fmt.Sprintf("%d test(s) still failing", n))
	}
	if n := len(s.PassToFail.Failure); n > 0 {
		v.logger.Warn(fmt.Sprintf("%d regression(s) detected", n))
	}
}

func writeResults(path, instanceID string, result *domain.VerificationResult) error {
	data, err := json.MarshalIndent(map[string]*domain.VerificationResult{instanceID: result}, "", "    ")
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrResultsWriteFailed.Error()), "path", path)
	}
	if err := os.WriteFile(path, append(data, '\n'), domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrResultsWriteFailed.Error()), "path", path)
	}
	return nil
}
