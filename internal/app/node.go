package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/smelt/internal/adapters/config"   //nolint:depguard // Wired in app layer
	"go.trai.ch/smelt/internal/adapters/fsloader" //nolint:depguard // Wired in app layer
	"go.trai.ch/smelt/internal/adapters/logger"   //nolint:depguard // Wired in app layer
	"go.trai.ch/smelt/internal/core/domain"
	"go.trai.ch/smelt/internal/core/ports"
	"go.trai.ch/smelt/internal/engine/compiler"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components contains all the initialized application components. It provides
// controlled access to what the CLI layer needs.
type Components struct {
	App    *App
	Logger ports.Logger
	Config domain.ProjectConfig
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			compiler.NodeID,
			fsloader.NodeID,
			logger.NodeID,
			config.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			config.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	comp, err := graft.Dep[*compiler.Compiler](ctx)
	if err != nil {
		return nil, err
	}

	loader, err := graft.Dep[ports.SourceLoader](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	cfg, err := graft.Dep[domain.ProjectConfig](ctx)
	if err != nil {
		return nil, err
	}

	return New(comp, loader, log, cfg), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	application, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	cfg, err := graft.Dep[domain.ProjectConfig](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:    application,
		Logger: log,
		Config: cfg,
	}, nil
}
