// Package shell runs command lines through an in-process POSIX shell interpreter.
package shell

import (
	"context"
	"errors"
	"io"
	"os"
	"slices"
	"strings"

	"go.trai.ch/prep/internal/core/domain"
	"go.trai.ch/prep/internal/core/ports"
	"go.trai.ch/zerr"
	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"
)

// hermeticAllowList names the process variables a hermetic command still inherits.
var hermeticAllowList = []string{"HOME", "PATH", "TERM", "USER"}

// Executor implements ports.Executor using mvdan.cc/sh.
type Executor struct {
	logger ports.Logger
}

// NewExecutor creates a new Executor.
func NewExecutor(logger ports.Logger) *Executor {
	return &Executor{
		logger: logger,
	}
}

var _ ports.Executor = (*Executor)(nil)

// Execute parses and runs cmd.Line with "set -e" semantics.
// Output lines go to the logger, and to the vertex in ctx when there is one.
func (e *Executor) Execute(ctx context.Context, cmd domain.Command) error {
	if strings.TrimSpace(cmd.Line) == "" {
		return nil
	}

	file, err := syntax.NewParser().Parse(strings.NewReader(cmd.Line), "")
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCommandParseFailed.Error()), "command", cmd.Line)
	}

	stdout := &logWriter{logger: e.logger, level: domain.LogLevelInfo}
	stderr := &logWriter{logger: e.logger, level: domain.LogLevelError}
	defer stdout.Close()
	defer stderr.Close()

	var outW, errW io.Writer = stdout, stderr
	if v, ok := ports.VertexFromContext(ctx); ok {
		outW = io.MultiWriter(stdout, v.Stdout())
		errW = io.MultiWriter(stderr, v.Stderr())
	}

	runner, err := interp.New(
		interp.Dir(cmd.Dir),
		interp.Env(expand.ListEnviron(resolveEnvironment(os.Environ(), cmd.Env, cmd.Hermetic)...)),
		interp.StdIO(nil, outW, errW),
		interp.Params("-e"),
	)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to initialize shell"), "dir", cmd.Dir)
	}

	if err := runner.Run(ctx, file); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return zerr.With(zerr.Wrap(ctxErr, "command cancelled"), "command", cmd.Line)
		}
		code := 1
		var status interp.ExitStatus
		if errors.As(err, &status) {
			code = int(status)
		}
		wrapped := zerr.Wrap(&domain.ExitError{Code: code}, "command failed")
		return zerr.With(zerr.With(wrapped, "exit_code", code), "command", cmd.Line)
	}
	return nil
}

// resolveEnvironment layers opts over the process environment.
// Hermetic commands inherit only the allow-listed process variables.
// The result is sorted for reproducible runs.
func resolveEnvironment(sysEnv []string, opts domain.Options, hermetic bool) []string {
	envMap := make(map[string]string, len(sysEnv)+len(opts))
	for _, entry := range sysEnv {
		k, v, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		if hermetic && !slices.Contains(hermeticAllowList, k) {
			continue
		}
		envMap[k] = v
	}

	for k, v := range opts {
		envMap[k] = v
	}

	result := make([]string, 0, len(envMap))
	for k, v := range envMap {
		result = append(result, k+"="+v)
	}
	slices.Sort(result)
	return result
}
