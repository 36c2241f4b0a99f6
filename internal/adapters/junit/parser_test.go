package junit_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/prep/internal/adapters/junit"
	"go.trai.ch/prep/internal/core/domain"
)

func TestParser_Parse(t *testing.T) {
	results, err := junit.NewParser().Parse(filepath.Join("testdata", "report.xml"))
	require.NoError(t, err)

	assert.Equal(t, domain.TestResults{
		"tests/test_kerns.py::TestStationary::test_shape": domain.OutcomePassed,
		"tests/test_kerns.py::test_kernel_sum":            domain.OutcomeFailed,
		"tests/test_likelihoods.py::test_variance":        domain.OutcomeError,
		"Reference.py::Reference::test_top_level":         domain.OutcomePassed,
		"test_orphan":                                     domain.OutcomePassed,
	}, results)
}

func TestParser_Parse_Missing(t *testing.T) {
	_, err := junit.NewParser().Parse(filepath.Join(t.TempDir(), "report.xml"))
	require.ErrorIs(t, err, domain.ErrReportMissing)
}

func TestDecode_Malformed(t *testing.T) {
	_, err := junit.Decode(strings.NewReader("<testsuite><testcase name='x'>"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse test report")
}

func TestTestID(t *testing.T) {
	tests := []struct {
		className string
		name      string
		want      string
	}{
		{"tests.test_kerns.TestStationary", "test_shape", "tests/test_kerns.py::TestStationary::test_shape"},
		{"tests.test_kerns", "test_sum", "tests/test_kerns.py::test_sum"},
		{"Reference", "test_a", "Reference.py::Reference::test_a"},
		{"", "bare", "bare"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, junit.TestID(tt.className, tt.name))
		})
	}
}
