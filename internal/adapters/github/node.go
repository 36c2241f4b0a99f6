package github

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/prep/internal/adapters/config"
	"go.trai.ch/prep/internal/core/ports"
)

// NodeID is the unique identifier for the issue tracker node.
const NodeID graft.ID = "adapter.issue_tracker"

func init() {
	graft.Register(graft.Node[ports.IssueTracker]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.SettingsNodeID},
		Run: func(ctx context.Context) (ports.IssueTracker, error) {
			settings, err := graft.Dep[*config.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return NewTracker(settings.GitHubAPIURL, settings.GitHubToken), nil
		},
	})
}
