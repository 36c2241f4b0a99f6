package ports

import "go.trai.ch/prep/internal/core/domain"

// ProfileLoader resolves target project profiles.
//
// path names a profile file layered over the built-in presets.
// An empty path means presets only.
//
//go:generate go run go.uber.org/mock/mockgen -source=profile_loader.go -destination=mocks/mock_profile_loader.go -package=mocks
type ProfileLoader interface {
	// Load returns the validated project with the given name.
	Load(path, name string) (*domain.Project, error)
	// List returns every known project name in sorted order.
	List(path string) ([]string, error)
}
