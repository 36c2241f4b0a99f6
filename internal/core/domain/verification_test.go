package domain_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/prep/internal/core/domain"
)

func TestParseInstanceID(t *testing.T) {
	tests := []struct {
		input   string
		owner   string
		repo    string
		pr      string
		wantErr bool
	}{
		{"GPflow__GPflow-1234", "GPflow", "GPflow", "1234", false},
		{"google__pytype-1353", "google", "pytype", "1353", false},
		{"owner__repo-name-with-dashes-42", "owner", "repo-name-with-dashes", "42", false},
		{"nounderscore-1", "", "", "", true},
		{"owner__repo", "", "", "", true},
		{"owner__repo-abc", "", "", "", true},
		{"__repo-1", "", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			id, err := domain.ParseInstanceID(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, domain.ErrInvalidInstanceID)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.owner, id.Owner)
			assert.Equal(t, tt.repo, id.Repo)
			assert.Equal(t, tt.pr, id.PR)
			assert.Equal(t, tt.input, id.String())
		})
	}
}

func TestClassify(t *testing.T) {
	pre := domain.TestResults{
		"t.py::fixed":     domain.OutcomeFailed,
		"t.py::stable":    domain.OutcomePassed,
		"t.py::broken":    domain.OutcomeFailed,
		"t.py::regressed": domain.OutcomePassed,
		"t.py::errored":   domain.OutcomeError,
	}
	post := domain.TestResults{
		"t.py::fixed":   domain.OutcomePassed,
		"t.py::stable":  domain.OutcomePassed,
		"t.py::broken":  domain.OutcomeFailed,
		"t.py::errored": domain.OutcomePassed,
		"t.py::new":     domain.OutcomePassed,
	}

	status := domain.Classify(pre, post)

	assert.Equal(t, []string{"t.py::fixed"}, status.FailToPass.Success)
	assert.Equal(t, []string{"t.py::new", "t.py::stable"}, status.PassToPass.Success)
	assert.Equal(t, []string{"t.py::broken"}, status.FailToFail.Failure)
	assert.Equal(t, []string{"t.py::regressed"}, status.PassToFail.Failure)
	assert.False(t, status.Resolved())
}

func TestTestsStatus_Resolved(t *testing.T) {
	status := domain.Classify(
		domain.TestResults{"a": domain.OutcomeFailed, "b": domain.OutcomePassed},
		domain.TestResults{"a": domain.OutcomePassed, "b": domain.OutcomePassed},
	)
	assert.True(t, status.Resolved())

	none := domain.Classify(domain.TestResults{"b": domain.OutcomePassed}, domain.TestResults{"b": domain.OutcomePassed})
	assert.False(t, none.Resolved())
}

func TestVerificationResult_JSONShape(t *testing.T) {
	data, err := json.Marshal(map[string]*domain.VerificationResult{"x__y-1": domain.NewVerificationResult()})
	require.NoError(t, err)

	assert.JSONEq(t, `{"x__y-1": {
		"patch_is_None": false,
		"patch_exists": true,
		"patch_successfully_applied": false,
		"resolved": false,
		"tests_status": {
			"FAIL_TO_PASS": {"success": [], "failure": []},
			"PASS_TO_PASS": {"success": [], "failure": []},
			"FAIL_TO_FAIL": {"success": [], "failure": []},
			"PASS_TO_FAIL": {"success": [], "failure": []}
		}
	}}`, string(data))
}

func TestModifiedPythonFiles(t *testing.T) {
	patch := `diff --git a/tests/test_b.py b/tests/test_b.py
--- a/tests/test_b.py
+++ b/tests/test_b.py
@@ -1 +1 @@
-x
+y
diff --git a/docs/readme.md b/docs/readme.md
--- a/docs/readme.md	2024-01-01
+++ b/docs/readme.md	2024-01-01
diff --git a/tests/test_a.py b/tests/test_a.py
--- /dev/null
+++ b/tests/test_a.py
`
	files, err := domain.ModifiedPythonFiles(strings.NewReader(patch))
	require.NoError(t, err)
	assert.Equal(t, []string{"tests/test_a.py", "tests/test_b.py"}, files)

	files, err = domain.ModifiedPythonFiles(strings.NewReader("no headers here\n"))
	require.NoError(t, err)
	assert.Empty(t, files)
}
