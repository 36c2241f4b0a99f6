package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/prep/internal/core/domain"
)

func TestOptions(t *testing.T) {
	var nilOpts domain.Options
	opts := nilOpts.Clone()
	assert.NotNil(t, opts)
	assert.Empty(t, opts)

	opts.Set("B", "2")
	opts.Merge(map[string]string{"A": "1", "B": "3"})

	v, ok := opts.Get("B")
	assert.True(t, ok)
	assert.Equal(t, "3", v)

	_, ok = opts.Get("C")
	assert.False(t, ok)

	assert.Equal(t, []string{"A", "B"}, opts.Names())
	assert.Equal(t, []string{"A=1", "B=3"}, opts.Environ())

	clone := opts.Clone()
	clone.Set("A", "changed")
	assert.Equal(t, "1", opts["A"])
}
