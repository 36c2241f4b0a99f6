package ports

import "go.trai.ch/prep/internal/core/domain"

// RecordStore persists the last bootstrap record of each project.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type RecordStore interface {
	// Get retrieves the record for a project.
	// Returns nil, nil if not found.
	Get(project string) (*domain.BootstrapRecord, error)

	// Put stores the record, replacing any previous one for the same project.
	Put(record domain.BootstrapRecord) error
}
