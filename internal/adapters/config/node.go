package config

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/smelt/internal/core/domain"
)

// NodeID is the unique identifier for the configuration Graft node.
const NodeID graft.ID = "adapter.config"

func init() {
	graft.Register(graft.Node[domain.ProjectConfig]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (domain.ProjectConfig, error) {
			cwd, err := os.Getwd()
			if err != nil {
				return domain.ProjectConfig{}, err
			}
			return Load(cwd)
		},
	})
}
