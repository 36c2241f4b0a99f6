package bootstrap

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/prep/internal/adapters/fs"                 //nolint:depguard // Wired in engine wiring
	"go.trai.ch/prep/internal/adapters/logger"             //nolint:depguard // Wired in engine wiring
	"go.trai.ch/prep/internal/adapters/shell"              //nolint:depguard // Wired in engine wiring
	"go.trai.ch/prep/internal/adapters/store"              //nolint:depguard // Wired in engine wiring
	"go.trai.ch/prep/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/prep/internal/core/ports"
)

// NodeID is the unique identifier for the bootstrapper Graft node.
const NodeID graft.ID = "engine.bootstrap"

func init() {
	graft.Register(graft.Node[*Bootstrapper]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			shell.NodeID,
			fs.CopierNodeID,
			fs.HasherNodeID,
			store.NodeID,
			progrock.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Bootstrapper, error) {
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}

			copier, err := graft.Dep[ports.FileCopier](ctx)
			if err != nil {
				return nil, err
			}

			hasher, err := graft.Dep[ports.Hasher](ctx)
			if err != nil {
				return nil, err
			}

			recordStore, err := graft.Dep[ports.RecordStore](ctx)
			if err != nil {
				return nil, err
			}

			telemetry, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(executor, copier, hasher, recordStore, telemetry, log), nil
		},
	})
}
