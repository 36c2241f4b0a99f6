package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/prep/internal/core/domain"
)

func TestParseRepository(t *testing.T) {
	owner, name, err := domain.ParseRepository("aesara-devs/aesara")
	require.NoError(t, err)
	assert.Equal(t, "aesara-devs", owner)
	assert.Equal(t, "aesara", name)

	for _, bad := range []string{"aesara", "/aesara", "aesara-devs/", "a/b/c", ""} {
		_, _, err := domain.ParseRepository(bad)
		require.ErrorIs(t, err, domain.ErrInvalidRepository, bad)
	}
}

func TestParsePullRequest(t *testing.T) {
	n, err := domain.ParsePullRequest("#1493")
	require.NoError(t, err)
	assert.Equal(t, 1493, n)

	for _, bad := range []string{"0", "-2", "pr", ""} {
		_, err := domain.ParsePullRequest(bad)
		require.ErrorIs(t, err, domain.ErrInvalidPullRequest, bad)
	}
}

func TestClosingIssues_Multiple(t *testing.T) {
	assert.False(t, (&domain.ClosingIssues{TotalCount: 1}).Multiple())
	assert.True(t, (&domain.ClosingIssues{TotalCount: 2}).Multiple())
}
