package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/prep/internal/core/domain"
)

func TestParseStepKind(t *testing.T) {
	tests := []struct {
		input   string
		want    domain.StepKind
		wantErr bool
	}{
		{"submodules", domain.StepSubmodules, false},
		{"SYSTEM", domain.StepSystem, false},
		{" packages ", domain.StepPackages, false},
		{"copy", domain.StepCopy, false},
		{"env", domain.StepEnv, false},
		{"run", domain.StepRun, false},
		{"compile", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := domain.ParseStepKind(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, domain.ErrInvalidStepKind)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFailurePolicy(t *testing.T) {
	p, err := domain.ParseFailurePolicy("")
	require.NoError(t, err)
	assert.Equal(t, domain.PolicyInherit, p)

	p, err = domain.ParseFailurePolicy("Halt")
	require.NoError(t, err)
	assert.Equal(t, domain.PolicyHalt, p)

	_, err = domain.ParseFailurePolicy("retry")
	require.ErrorIs(t, err, domain.ErrInvalidFailurePolicy)
}

func TestStep_Policy(t *testing.T) {
	step := domain.Step{Kind: domain.StepRun}
	assert.Equal(t, domain.PolicyContinue, step.Policy(domain.PolicyInherit))
	assert.Equal(t, domain.PolicyHalt, step.Policy(domain.PolicyHalt))

	step.OnFailure = domain.PolicyContinue
	assert.Equal(t, domain.PolicyContinue, step.Policy(domain.PolicyHalt))
}

func TestStep_Label(t *testing.T) {
	assert.Equal(t, "install", (&domain.Step{Name: "install", Kind: domain.StepPackages}).Label(0))
	assert.Equal(t, "copy-3", (&domain.Step{Kind: domain.StepCopy}).Label(2))
}

func TestStep_Validate(t *testing.T) {
	tests := []struct {
		name    string
		step    domain.Step
		wantErr error
	}{
		{"submodules needs nothing", domain.Step{Kind: domain.StepSubmodules}, nil},
		{"system without packages", domain.Step{Kind: domain.StepSystem}, domain.ErrEmptyStep},
		{"packages with requirements only", domain.Step{Kind: domain.StepPackages, Requirements: []string{"requirements.txt"}}, nil},
		{"packages empty", domain.Step{Kind: domain.StepPackages}, domain.ErrEmptyStep},
		{"copy missing destination", domain.Step{Kind: domain.StepCopy, Files: []domain.CopySpec{{From: "a"}}}, domain.ErrEmptyStep},
		{"copy ok", domain.Step{Kind: domain.StepCopy, Files: []domain.CopySpec{{From: "a", To: "b"}}}, nil},
		{"env bad name", domain.Step{Kind: domain.StepEnv, Env: map[string]string{"1BAD": "x"}}, domain.ErrInvalidEnvName},
		{"env ok", domain.Step{Kind: domain.StepEnv, Env: map[string]string{"GOOD_NAME": "x"}}, nil},
		{"run blank", domain.Step{Kind: domain.StepRun, Command: "  "}, domain.ErrEmptyStep},
		{"unknown kind", domain.Step{Kind: "bogus"}, domain.ErrInvalidStepKind},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.step.Validate()
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestProject_Validate(t *testing.T) {
	p := domain.Project{
		Name:  "gpflow",
		Steps: []domain.Step{{Kind: domain.StepRun, Command: "true"}},
	}
	require.NoError(t, p.Validate())

	p.Name = "bad name"
	require.ErrorIs(t, p.Validate(), domain.ErrInvalidProjectName)

	p.Name = "gpflow"
	p.Steps = append(p.Steps, domain.Step{Kind: domain.StepSystem})
	require.ErrorIs(t, p.Validate(), domain.ErrEmptyStep)

	p.Steps = p.Steps[:1]
	p.Options = domain.Options{"A-B": "1"}
	require.ErrorIs(t, p.Validate(), domain.ErrInvalidEnvName)
}

func TestProject_ManagerDefaults(t *testing.T) {
	p := domain.Project{}
	assert.Equal(t, "apt-get", p.SystemManagerOrDefault())
	assert.Equal(t, "pip", p.PackageManagerOrDefault())

	p.SystemManager = "apk"
	p.PackageManager = "uv pip"
	assert.Equal(t, "apk", p.SystemManagerOrDefault())
	assert.Equal(t, "uv pip", p.PackageManagerOrDefault())
}

func TestSplitPin(t *testing.T) {
	name, version, pinned := domain.SplitPin("pytest==7.2.1")
	assert.Equal(t, "pytest", name)
	assert.Equal(t, "7.2.1", version)
	assert.True(t, pinned)

	name, _, pinned = domain.SplitPin("numpy")
	assert.Equal(t, "numpy", name)
	assert.False(t, pinned)
}
