package manifest_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/prep/internal/adapters/config"
	"go.trai.ch/prep/internal/adapters/manifest"
	"go.trai.ch/prep/internal/core/domain"
)

func validTask() map[string]any {
	return map[string]any{
		"instance_id":              "GPflow__GPflow-1234",
		"patch":                    "diff --git a/gpflow/x.py b/gpflow/x.py",
		"repo":                     "GPflow/GPflow",
		"base_commit":              "0b797cc8f8127419b0758bef409a9046d54a39bb",
		"hints_text":               "",
		"created_at":               "2023-01-01T00:00:00Z",
		"test_patch":               "diff --git a/tests/test_kerns.py b/tests/test_kerns.py",
		"problem_statement":        "Kernels fail on empty input",
		"environment_setup_commit": "0b797cc8",
		"FAIL_TO_PASS":             []any{"tests/test_kerns.py::test_empty"},
		"PASS_TO_PASS":             []any{},
		"language":                 "Python",
		"content_category":         "计算",
	}
}

func encode(t *testing.T, doc map[string]any) []byte {
	t.Helper()
	data, err := json.Marshal(doc)
	require.NoError(t, err)
	return data
}

func TestValidator_Valid(t *testing.T) {
	m, err := manifest.NewValidator().Validate(encode(t, validTask()))
	require.NoError(t, err)

	assert.Equal(t, "GPflow__GPflow-1234", m.InstanceID)
	assert.Equal(t, "GPflow/GPflow", m.Repo)
	assert.Equal(t, []string{"Python"}, m.Languages)
	assert.Equal(t, []string{"计算"}, m.Categories)
}

func TestValidator_ListFields(t *testing.T) {
	doc := validTask()
	doc["language"] = []any{"c", "C++"}
	doc["content_category"] = []any{"网络", "加密"}

	m, err := manifest.NewValidator().Validate(encode(t, doc))
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "C++"}, m.Languages)
	assert.Equal(t, []string{"网络", "加密"}, m.Categories)
}

func TestValidator_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(doc map[string]any)
	}{
		{"missing field", func(doc map[string]any) { delete(doc, "base_commit") }},
		{"missing allowed-empty field", func(doc map[string]any) { delete(doc, "hints_text") }},
		{"empty patch", func(doc map[string]any) { doc["patch"] = "" }},
		{"null problem statement", func(doc map[string]any) { doc["problem_statement"] = nil }},
		{"empty FAIL_TO_PASS", func(doc map[string]any) { doc["FAIL_TO_PASS"] = []any{} }},
		{"unknown language", func(doc map[string]any) { doc["language"] = "cobol" }},
		{"non-string language", func(doc map[string]any) { doc["language"] = []any{1} }},
		{"empty language list", func(doc map[string]any) { doc["language"] = []any{} }},
		{"unknown category", func(doc map[string]any) { doc["content_category"] = "游戏" }},
		{"unknown category in list", func(doc map[string]any) { doc["content_category"] = []any{"系统", "other"} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := validTask()
			tt.mutate(doc)
			_, err := manifest.NewValidator().Validate(encode(t, doc))
			require.ErrorIs(t, err, domain.ErrInvalidManifest)
		})
	}
}

func TestValidator_AllowedEmpty(t *testing.T) {
	doc := validTask()
	doc["PASS_TO_PASS"] = ""
	_, err := manifest.NewValidator().Validate(encode(t, doc))
	require.NoError(t, err)
}

func TestValidator_NotJSON(t *testing.T) {
	_, err := manifest.NewValidator().Validate([]byte("{"))
	require.ErrorIs(t, err, domain.ErrInvalidManifest)
}

func TestNamer_Default(t *testing.T) {
	namer, err := manifest.NewNamer(config.DefaultImageTemplate)
	require.NoError(t, err)

	id, err := domain.ParseInstanceID("GPflow__GPflow-1234")
	require.NoError(t, err)

	name, err := namer.ImageName(id)
	require.NoError(t, err)
	assert.Equal(t, "swebench/sweb.eval.x86_64.gpflow_1776_gpflow-1234", name)
}

func TestNamer_Custom(t *testing.T) {
	namer, err := manifest.NewNamer("registry.local/{{ .InstanceID | lower | replace \"__\" \"-\" }}:latest")
	require.NoError(t, err)

	id, err := domain.ParseInstanceID("google__pytype-1353")
	require.NoError(t, err)

	name, err := namer.ImageName(id)
	require.NoError(t, err)
	assert.Equal(t, "registry.local/google-pytype-1353:latest", name)
}

func TestNamer_Errors(t *testing.T) {
	_, err := manifest.NewNamer("{{ .Owner ")
	require.Error(t, err)

	namer, err := manifest.NewNamer("{{ .Missing }}")
	require.NoError(t, err)
	_, err = namer.ImageName(domain.InstanceID{Raw: "a__b-1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to render image name")
}
