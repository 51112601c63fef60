package compiler

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/smelt/internal/adapters/replay" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/smelt/internal/cache"
	"go.trai.ch/smelt/internal/core/ports"
)

// NodeID is the unique identifier for the compiler Graft node.
const NodeID graft.ID = "engine.compiler"

func init() {
	graft.Register(graft.Node[*Compiler]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			replay.NodeID,
			cache.NodeID,
		},
		Run: func(ctx context.Context) (*Compiler, error) {
			engine, err := graft.Dep[ports.Engine](ctx)
			if err != nil {
				return nil, err
			}

			out, err := graft.Dep[*cache.Output](ctx)
			if err != nil {
				return nil, err
			}

			return New(engine, out), nil
		},
	})
}
