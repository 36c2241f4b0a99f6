package domain_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/prep/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestReport_ExitCode(t *testing.T) {
	tests := []struct {
		name     string
		results  []domain.StepResult
		failed   bool
		exitCode int
	}{
		{
			name:     "all succeeded",
			results:  []domain.StepResult{{Step: "a", Status: domain.StepSucceeded}, {Step: "b", Status: domain.StepUnchanged}},
			exitCode: 0,
		},
		{
			name: "later success does not mask earlier failure",
			results: []domain.StepResult{
				{Step: "a", Status: domain.StepFailed, ExitCode: 2},
				{Step: "b", Status: domain.StepSucceeded},
			},
			failed:   true,
			exitCode: 2,
		},
		{
			name: "first failure wins",
			results: []domain.StepResult{
				{Step: "a", Status: domain.StepFailed, ExitCode: 3},
				{Step: "b", Status: domain.StepFailed, ExitCode: 4},
			},
			failed:   true,
			exitCode: 3,
		},
		{
			name:     "failure without exit status",
			results:  []domain.StepResult{{Step: "copy", Status: domain.StepFailed}},
			failed:   true,
			exitCode: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &domain.Report{Results: tt.results}
			assert.Equal(t, tt.failed, r.Failed())
			assert.Equal(t, tt.exitCode, r.ExitCode())
		})
	}
}

func TestReport_Counts(t *testing.T) {
	r := &domain.Report{Results: []domain.StepResult{
		{Step: "a", Status: domain.StepFailed},
		{Step: "b", Status: domain.StepSkipped},
		{Step: "c", Status: domain.StepSkipped},
	}}
	assert.Equal(t, []string{"a"}, r.FailedSteps())
	assert.Equal(t, 2, r.Count(domain.StepSkipped))
	assert.Equal(t, 0, r.Count(domain.StepSucceeded))
}

func TestNewBootstrapRecord(t *testing.T) {
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.FixedZone("X", 3600))
	r := &domain.Report{
		Project: "gpflow",
		Dir:     "/testbed",
		Env:     domain.Options{"K": "V"},
		Results: []domain.StepResult{{Step: "install", Status: domain.StepFailed}},
	}
	rec := domain.NewBootstrapRecord(r, "abc", at)

	assert.Equal(t, "gpflow", rec.Project)
	assert.Equal(t, "/testbed", rec.Dir)
	assert.False(t, rec.Succeeded)
	assert.Equal(t, []string{"install"}, rec.FailedSteps)
	assert.Equal(t, map[string]string{"K": "V"}, rec.Env)
	assert.Equal(t, time.UTC, rec.Timestamp.Location())
	assert.False(t, rec.Stale("abc"))
	assert.True(t, rec.Stale("def"))
}

func TestStepStatus(t *testing.T) {
	assert.True(t, domain.StepFailed.IsFailure())
	assert.False(t, domain.StepSkipped.IsFailure())
	assert.Equal(t, "✗", domain.StepFailed.Icon())
	assert.Equal(t, "ERROR", domain.LogLevelError.String())
}

func TestExitCode(t *testing.T) {
	err := zerr.Wrap(&domain.ExitError{Code: 7}, "install failed")
	assert.Equal(t, 7, domain.ExitCode(err))
	assert.ErrorIs(t, err, domain.ErrCommandFailed)
	assert.Equal(t, 0, domain.ExitCode(errors.New("plain")))
}
