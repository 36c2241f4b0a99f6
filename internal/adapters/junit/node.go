package junit

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/prep/internal/core/ports"
)

// NodeID is the unique identifier for the report parser node.
const NodeID graft.ID = "adapter.report_parser"

func init() {
	graft.Register(graft.Node[ports.ReportParser]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ReportParser, error) {
			return NewParser(), nil
		},
	})
}
