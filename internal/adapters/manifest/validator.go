// Package manifest validates task-instance documents and names their container images.
package manifest

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"go.trai.ch/prep/internal/core/domain"
	"go.trai.ch/prep/internal/core/ports"
	"go.trai.ch/zerr"
)

//go:embed task.schema.json
var taskSchema []byte

const schemaURL = "task.schema.json"

// Languages a task may declare, compared case-insensitively.
var validLanguages = map[string]struct{}{
	"python": {}, "java": {}, "typescript": {}, "javascript": {},
	"go": {}, "rust": {}, "c": {}, "c++": {},
}

var (
	schemaOnce     sync.Once
	schemaErr      error
	compiledSchema *jsonschema.Schema
)

func loadSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(schemaURL, bytes.NewReader(taskSchema)); err != nil {
			schemaErr = err
			return
		}
		compiledSchema, schemaErr = compiler.Compile(schemaURL)
	})
	return compiledSchema, schemaErr
}

var _ ports.ManifestValidator = (*Validator)(nil)

// Validator implements ports.ManifestValidator.
type Validator struct{}

// NewValidator creates a Validator.
func NewValidator() *Validator {
	return &Validator{}
}

// Validate decodes data, checks it against the task schema and the language allow-list,
// and returns the fields the tooling needs.
func (v *Validator) Validate(data []byte) (*domain.TaskManifest, error) {
	sch, err := loadSchema()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to compile task schema")
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, zerr.With(domain.ErrInvalidManifest, "reason", err.Error())
	}
	if err := sch.Validate(doc); err != nil {
		return nil, zerr.With(domain.ErrInvalidManifest, "reason", err.Error())
	}

	obj, _ := doc.(map[string]any)
	m := &domain.TaskManifest{
		InstanceID: obj["instance_id"].(string),
		Repo:       obj["repo"].(string),
		BaseCommit: obj["base_commit"].(string),
		Languages:  stringList(obj["language"]),
		Categories: stringList(obj["content_category"]),
	}

	for _, lang := range m.Languages {
		if _, ok := validLanguages[strings.ToLower(lang)]; !ok {
			return nil, zerr.With(zerr.With(domain.ErrInvalidManifest, "reason", "unsupported language"), "language", lang)
		}
	}
	return m, nil
}

// stringList normalizes a string-or-array field.
func stringList(v any) []string {
	switch t := v.(type) {
	case string:
		return []string{t}
	case []any:
		out := make([]string, 0, len(t))
		for _, item := range t {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}
