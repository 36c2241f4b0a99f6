package ports

import (
	"context"

	"go.trai.ch/prep/internal/core/domain"
)

// Hasher computes content hashes.
//
//go:generate go run go.uber.org/mock/mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// HashFile returns the content hash of a single file.
	HashFile(path string) (uint64, error)
	// Fingerprint hashes a project definition together with the content of its copy sources,
	// resolving relative sources against dir. Missing sources contribute a fixed marker instead of failing.
	Fingerprint(ctx context.Context, project *domain.Project, dir string) (string, error)
}
