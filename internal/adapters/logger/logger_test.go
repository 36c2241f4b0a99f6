package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/prep/internal/adapters/logger"
	"go.trai.ch/zerr"
)

func TestLogger_Pretty(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := logger.New()
	lg.SetOutput(buf)

	lg.Info("installing packages")
	lg.Warn("retrying")

	assert.Equal(t, "installing packages\n! retrying\n", buf.String())
}

func TestLogger_ErrorChain(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := logger.New()
	lg.SetOutput(buf)

	lg.Error(zerr.Wrap(zerr.Wrap(errors.New("exit status 2"), "command failed"), "step failed"))

	want := "✗ Error: step failed\n\n  Caused by:\n    → command failed\n    → exit status 2\n"
	assert.Equal(t, want, buf.String())
}

func TestLogger_ErrorNil(t *testing.T) {
	buf := &bytes.Buffer{}
	lg := logger.New()
	lg.SetOutput(buf)

	lg.Error(nil)
	assert.Empty(t, buf.String())
}

func TestLogger_JSON(t *testing.T) {
	buf := &bytes.Buffer{}
	lg := logger.New()
	lg.SetOutput(buf)
	lg.SetJSON(true)

	lg.Error(errors.New("boom"))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "ERROR", entry["level"])
	assert.Equal(t, "operation failed", entry["msg"])
	assert.Equal(t, "boom", entry["error"])
}

func TestCollectMessages(t *testing.T) {
	err := zerr.Wrap(zerr.New("inner"), "outer")
	assert.Equal(t, []string{"outer", "inner"}, logger.CollectMessages(err))
	assert.Equal(t, []string{"plain"}, logger.CollectMessages(errors.New("plain")))
}

func TestFormatErrorChain_Multiline(t *testing.T) {
	got := logger.FormatErrorChain([]string{"first\nsecond", "cause\nmore"})
	want := "Error: first\n       second\n\n  Caused by:\n    → cause\n      more"
	assert.Equal(t, want, got)
}

func TestPrettyHandler_Attrs(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	h := logger.NewPrettyHandler(buf, &slog.HandlerOptions{Level: slog.LevelInfo})
	lg := slog.New(h).WithGroup("step").With("name", "install")

	lg.Info("done", "code", 0)
	lg.Debug("hidden")

	assert.Equal(t, "done step.name=install step.code=0\n", buf.String())
}
