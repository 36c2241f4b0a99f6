package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/prep/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the profile loader node.
	NodeID graft.ID = "adapter.profile_loader"
	// SettingsNodeID is the unique identifier for the settings node.
	SettingsNodeID graft.ID = "adapter.settings"
)

func init() {
	graft.Register(graft.Node[ports.ProfileLoader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ProfileLoader, error) {
			return NewLoader(), nil
		},
	})

	graft.Register(graft.Node[*Settings]{
		ID:        SettingsNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Settings, error) {
			return LoadSettings()
		},
	})
}
