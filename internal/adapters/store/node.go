package store

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/prep/internal/adapters/config"
	"go.trai.ch/prep/internal/core/domain"
	"go.trai.ch/prep/internal/core/ports"
)

// NodeID is the unique identifier for the record store node.
const NodeID graft.ID = "adapter.record_store"

func init() {
	graft.Register(graft.Node[ports.RecordStore]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.SettingsNodeID},
		Run: func(ctx context.Context) (ports.RecordStore, error) {
			settings, err := graft.Dep[*config.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return NewStore(domain.DefaultRecordsPath(settings.StateDir)), nil
		},
	})
}
