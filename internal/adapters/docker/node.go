package docker

import (
	"context"

	"github.com/docker/docker/client"
	"github.com/grindlemire/graft"
	"go.trai.ch/prep/internal/core/ports"
	"go.trai.ch/zerr"
)

// NodeID is the unique identifier for the image runtime node.
const NodeID graft.ID = "adapter.image_runtime"

func init() {
	graft.Register(graft.Node[ports.ImageRuntime]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ImageRuntime, error) {
			// NewClientWithOpts does not dial the daemon.
			cli, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
			if err != nil {
				return nil, zerr.Wrap(err, "failed to create docker client")
			}
			return NewRuntime(cli), nil
		},
	})
}
