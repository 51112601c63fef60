package fsloader

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/smelt/internal/adapters/config"
	"go.trai.ch/smelt/internal/adapters/logger"
	"go.trai.ch/smelt/internal/core/domain"
	"go.trai.ch/smelt/internal/core/ports"
)

// NodeID is the unique identifier for the source loader Graft node.
const NodeID graft.ID = "adapter.fsloader"

func init() {
	graft.Register(graft.Node[ports.SourceLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.SourceLoader, error) {
			cfg, err := graft.Dep[domain.ProjectConfig](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(cfg.Root, log), nil
		},
	})
}
