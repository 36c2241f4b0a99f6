package manifest

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/prep/internal/adapters/config"
	"go.trai.ch/prep/internal/core/ports"
)

const (
	// ValidatorNodeID is the unique identifier for the manifest validator node.
	ValidatorNodeID graft.ID = "adapter.manifest_validator"
	// NamerNodeID is the unique identifier for the image namer node.
	NamerNodeID graft.ID = "adapter.image_namer"
)

func init() {
	graft.Register(graft.Node[ports.ManifestValidator]{
		ID:        ValidatorNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ManifestValidator, error) {
			return NewValidator(), nil
		},
	})

	graft.Register(graft.Node[ports.ImageNamer]{
		ID:        NamerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.SettingsNodeID},
		Run: func(ctx context.Context) (ports.ImageNamer, error) {
			settings, err := graft.Dep[*config.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return NewNamer(settings.ImageTemplate)
		},
	})
}
