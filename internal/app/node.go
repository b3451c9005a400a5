package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/tally/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/tally/internal/adapters/reference" //nolint:depguard // Wired in app layer
	"go.trai.ch/tally/internal/adapters/settings"  //nolint:depguard // Wired in app layer
	"go.trai.ch/tally/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components contains all the initialized application components.
type Components struct {
	App      *App
	Logger   ports.Logger
	Settings *settings.Settings
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			reference.NodeID,
			logger.NodeID,
			settings.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			loader, err := graft.Dep[ports.ReferenceLoader](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			s, err := graft.Dep[*settings.Settings](ctx)
			if err != nil {
				return nil, err
			}

			return New(loader, log, s), nil
		},
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			settings.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	a, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	s, err := graft.Dep[*settings.Settings](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{App: a, Logger: log, Settings: s}, nil
}
