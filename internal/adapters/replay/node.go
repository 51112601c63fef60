package replay

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/smelt/internal/core/ports"
)

// NodeID is the unique identifier for the replay engine Graft node.
const NodeID graft.ID = "adapter.engine"

var _ ports.Engine = (*Engine)(nil)

func init() {
	graft.Register(graft.Node[ports.Engine]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Engine, error) {
			return New(), nil
		},
	})
}
