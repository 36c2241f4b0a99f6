package verifier

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/prep/internal/adapters/junit"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/prep/internal/adapters/logger" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/prep/internal/adapters/shell"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/prep/internal/core/ports"
)

// NodeID is the unique identifier for the verifier Graft node.
const NodeID graft.ID = "engine.verifier"

func init() {
	graft.Register(graft.Node[*Verifier]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID, junit.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Verifier, error) {
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}

			parser, err := graft.Dep[ports.ReportParser](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(executor, parser, log), nil
		},
	})
}
