package cache

import (
	"context"

	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the output cache Graft node.
const NodeID graft.ID = "cache.output"

func init() {
	graft.Register(graft.Node[*Output]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Output, error) {
			return New(), nil
		},
	})
}
