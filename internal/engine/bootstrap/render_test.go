package bootstrap_test

import (
	"bytes"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/prep/internal/core/domain"
	"go.trai.ch/prep/internal/engine/bootstrap"
)

func demoProject() *domain.Project {
	return &domain.Project{
		Name:       "demo",
		WorkingDir: "/testbed",
		Steps: []domain.Step{
			{Kind: domain.StepSubmodules},
			{
				Name:      "build-deps",
				Kind:      domain.StepSystem,
				OnFailure: domain.PolicyHalt,
				Update:    true,
				Packages:  []string{"build-essential", "libffi-dev"},
			},
			{
				Kind:         domain.StepPackages,
				Packages:     []string{"numpy", "pytest"},
				Requirements: []string{"requirements.txt"},
				Editable:     []string{"."},
			},
			{Kind: domain.StepCopy, Files: []domain.CopySpec{{From: "assets/conftest.py", To: "tests/conftest.py"}}},
			{Kind: domain.StepEnv, Env: map[string]string{"PYTHONPATH": "src", "MPLBACKEND": "Agg"}},
			{Name: "smoke", Kind: domain.StepRun, Command: "python -c 'import demo'"},
		},
	}
}

func TestPlan_Golden(t *testing.T) {
	t.Parallel()

	project := demoProject()
	planned, err := bootstrap.Plan(project)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, bootstrap.WritePlan(&buf, project, planned))

	g := goldie.New(t)
	g.Assert(t, "plan", buf.Bytes())
}

func TestRender(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		project domain.Project
		step    domain.Step
		want    []string
	}{
		{
			name:    "system without update",
			project: domain.Project{SystemManager: "dnf"},
			step:    domain.Step{Kind: domain.StepSystem, Packages: []string{"gcc"}},
			want:    []string{"dnf install -y gcc"},
		},
		{
			name:    "custom package manager",
			project: domain.Project{PackageManager: "python -m pip"},
			step:    domain.Step{Kind: domain.StepPackages, Requirements: []string{"dev requirements.txt"}},
			want:    []string{"python -m pip install -r 'dev requirements.txt'"},
		},
		{
			name:    "pinned package",
			project: domain.Project{},
			step:    domain.Step{Kind: domain.StepPackages, Packages: []string{"pytest==7.2.1"}},
			want:    []string{"pip install pytest==7.2.1"},
		},
		{
			name:    "env value with spaces",
			project: domain.Project{},
			step:    domain.Step{Kind: domain.StepEnv, Env: map[string]string{"OPTS": "-x -q"}},
			want:    []string{"export OPTS='-x -q'"},
		},
		{
			name:    "run is verbatim",
			project: domain.Project{},
			step:    domain.Step{Kind: domain.StepRun, Command: "make -j4 && echo done"},
			want:    []string{"make -j4 && echo done"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := bootstrap.Render(&tt.project, &tt.step)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRender_UnknownKind(t *testing.T) {
	t.Parallel()

	_, err := bootstrap.Render(&domain.Project{}, &domain.Step{Kind: "bogus"})
	require.ErrorIs(t, err, domain.ErrInvalidStepKind)
}
