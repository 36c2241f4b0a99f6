package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/prep/internal/adapters/config"   //nolint:depguard // Wired in app layer
	"go.trai.ch/prep/internal/adapters/docker"   //nolint:depguard // Wired in app layer
	"go.trai.ch/prep/internal/adapters/fs"       //nolint:depguard // Wired in app layer
	"go.trai.ch/prep/internal/adapters/github"   //nolint:depguard // Wired in app layer
	"go.trai.ch/prep/internal/adapters/logger"   //nolint:depguard // Wired in app layer
	"go.trai.ch/prep/internal/adapters/manifest" //nolint:depguard // Wired in app layer
	"go.trai.ch/prep/internal/adapters/store"    //nolint:depguard // Wired in app layer
	"go.trai.ch/prep/internal/core/ports"
	"go.trai.ch/prep/internal/engine/bootstrap"
	"go.trai.ch/prep/internal/engine/verifier"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			config.SettingsNodeID,
			bootstrap.NodeID,
			verifier.NodeID,
			store.NodeID,
			fs.HasherNodeID,
			manifest.ValidatorNodeID,
			manifest.NamerNodeID,
			docker.NodeID,
			github.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewComponents(app, log), nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ProfileLoader](ctx)
	if err != nil {
		return nil, err
	}

	settings, err := graft.Dep[*config.Settings](ctx)
	if err != nil {
		return nil, err
	}

	boot, err := graft.Dep[*bootstrap.Bootstrapper](ctx)
	if err != nil {
		return nil, err
	}

	verify, err := graft.Dep[*verifier.Verifier](ctx)
	if err != nil {
		return nil, err
	}

	recordStore, err := graft.Dep[ports.RecordStore](ctx)
	if err != nil {
		return nil, err
	}

	hasher, err := graft.Dep[ports.Hasher](ctx)
	if err != nil {
		return nil, err
	}

	validator, err := graft.Dep[ports.ManifestValidator](ctx)
	if err != nil {
		return nil, err
	}

	namer, err := graft.Dep[ports.ImageNamer](ctx)
	if err != nil {
		return nil, err
	}

	runtime, err := graft.Dep[ports.ImageRuntime](ctx)
	if err != nil {
		return nil, err
	}

	issues, err := graft.Dep[ports.IssueTracker](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, boot, verify, recordStore, hasher, validator, namer, runtime, issues, log, settings), nil
}
