package progrock_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/prep/internal/adapters/telemetry/progrock"
	"go.trai.ch/prep/internal/core/domain"
	"go.trai.ch/prep/internal/core/ports"
)

func TestRecorder_Record(t *testing.T) {
	recorder := progrock.New()

	ctx, vertex := recorder.Record(context.Background(), "install")
	require.NotNil(t, vertex)

	fromCtx, ok := ports.VertexFromContext(ctx)
	require.True(t, ok)
	assert.Same(t, vertex, fromCtx)

	_, err := vertex.Stdout().Write([]byte("Collecting numpy\n"))
	require.NoError(t, err)
	_, err = vertex.Stderr().Write([]byte("WARNING: cache disabled\n"))
	require.NoError(t, err)

	vertex.Log(domain.LogLevelInfo, "installing")
	vertex.Log(domain.LogLevelError, "failed")
	vertex.Complete(errors.New("exit status 1"))

	require.NoError(t, recorder.Close())
}

func TestRecorder_RepeatedNames(t *testing.T) {
	recorder := progrock.New()

	_, first := recorder.Record(context.Background(), "install")
	_, second := recorder.Record(context.Background(), "install")
	assert.NotSame(t, first, second)
	assert.Equal(t, 2, recorder.Recorded())

	first.Cached()
	second.Complete(nil)
	require.NoError(t, recorder.Close())
}

func TestVertexFromContext_Missing(t *testing.T) {
	_, ok := ports.VertexFromContext(context.Background())
	assert.False(t, ok)
}
