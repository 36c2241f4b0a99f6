// Package config loads project profiles and process settings.
package config

import (
	_ "embed"
	"maps"
	"os"
	"slices"

	"go.trai.ch/prep/internal/core/domain"
	"go.trai.ch/prep/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

//go:embed presets.yaml
var presets []byte

// Loader implements ports.ProfileLoader. Profiles from a file override presets of the same name.
type Loader struct{}

// NewLoader creates a Loader.
func NewLoader() *Loader {
	return &Loader{}
}

var _ ports.ProfileLoader = (*Loader)(nil)

// Load returns the named project.
func (l *Loader) Load(path, name string) (*domain.Project, error) {
	projects, err := l.loadAll(path)
	if err != nil {
		return nil, err
	}
	p, ok := projects[name]
	if !ok {
		return nil, zerr.With(domain.ErrProjectNotFound, "project", name)
	}
	return p, nil
}

// List returns every project name in sorted order.
func (l *Loader) List(path string) ([]string, error) {
	projects, err := l.loadAll(path)
	if err != nil {
		return nil, err
	}
	return slices.Sorted(maps.Keys(projects)), nil
}

func (l *Loader) loadAll(path string) (map[string]*domain.Project, error) {
	projects, err := Parse(presets)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to parse built-in presets")
	}
	if path == "" {
		return projects, nil
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}
	overrides, err := Parse(data)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	maps.Copy(projects, overrides)
	return projects, nil
}

// Presets returns the embedded preset definitions.
func Presets() []byte {
	return slices.Clone(presets)
}

// Parse decodes and validates a profile document.
func Parse(data []byte) (map[string]*domain.Project, error) {
	var file Prepfile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
	}

	projects := make(map[string]*domain.Project, len(file.Projects))
	for name, dto := range file.Projects {
		p, err := toProject(name, &dto)
		if err != nil {
			return nil, err
		}
		if err := p.Validate(); err != nil {
			return nil, err
		}
		projects[name] = p
	}
	return projects, nil
}

func toProject(name string, dto *ProjectDTO) (*domain.Project, error) {
	policy, err := domain.ParseFailurePolicy(dto.OnFailure)
	if err != nil {
		return nil, zerr.With(err, "project", name)
	}

	p := &domain.Project{
		Name:           name,
		WorkingDir:     dto.Dir,
		SystemManager:  dto.SystemManager,
		PackageManager: dto.PackageManager,
		OnFailure:      policy,
		Hermetic:       dto.Hermetic,
		Options:        domain.Options(dto.Env).Clone(),
		Steps:          make([]domain.Step, 0, len(dto.Steps)),
	}

	for i := range dto.Steps {
		step, err := toStep(&dto.Steps[i])
		if err != nil {
			return nil, zerr.With(zerr.With(err, "step", i+1), "project", name)
		}
		p.Steps = append(p.Steps, step)
	}
	return p, nil
}

func toStep(dto *StepDTO) (domain.Step, error) {
	kind, err := domain.ParseStepKind(dto.Kind)
	if err != nil {
		return domain.Step{}, err
	}
	policy, err := domain.ParseFailurePolicy(dto.OnFailure)
	if err != nil {
		return domain.Step{}, err
	}
	if err := validatePins(dto.Packages); err != nil {
		return domain.Step{}, err
	}

	files := make([]domain.CopySpec, 0, len(dto.Files))
	for _, f := range dto.Files {
		files = append(files, domain.CopySpec{From: f.From, To: f.To})
	}

	return domain.Step{
		Name:         dto.Name,
		Kind:         kind,
		OnFailure:    policy,
		Packages:     dto.Packages,
		Requirements: dto.Requirements,
		Editable:     dto.Editable,
		Update:       dto.Update,
		Files:        files,
		Env:          dto.Env,
		Command:      dto.Command,
	}, nil
}
