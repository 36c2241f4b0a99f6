package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/prep/internal/core/ports"
)

const (
	// HasherNodeID is the unique identifier for the hasher node.
	HasherNodeID graft.ID = "adapter.hasher"
	// CopierNodeID is the unique identifier for the file copier node.
	CopierNodeID graft.ID = "adapter.copier"
)

func init() {
	graft.Register(graft.Node[ports.Hasher]{
		ID:        HasherNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Hasher, error) {
			return NewHasher(), nil
		},
	})

	graft.Register(graft.Node[ports.FileCopier]{
		ID:        CopierNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.FileCopier, error) {
			return NewCopier(NewHasher()), nil
		},
	})
}
