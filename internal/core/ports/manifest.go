package ports

import "go.trai.ch/prep/internal/core/domain"

// ManifestValidator checks task-instance documents.
//
//go:generate go run go.uber.org/mock/mockgen -source=manifest.go -destination=mocks/mock_manifest.go -package=mocks
type ManifestValidator interface {
	// Validate decodes and validates a task document.
	Validate(data []byte) (*domain.TaskManifest, error)
}

// ImageNamer maps a task instance to its container image reference.
type ImageNamer interface {
	ImageName(id domain.InstanceID) (string, error)
}
