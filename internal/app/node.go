package app

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/wtsi-hgi/bam2cram-check/internal/adapters/config" //nolint:depguard // Wired in app layer
	"github.com/wtsi-hgi/bam2cram-check/internal/adapters/fs"     //nolint:depguard // Wired in app layer
	"github.com/wtsi-hgi/bam2cram-check/internal/adapters/logger" //nolint:depguard // Wired in app layer
	"github.com/wtsi-hgi/bam2cram-check/internal/adapters/shell"  //nolint:depguard // Wired in app layer
	"github.com/wtsi-hgi/bam2cram-check/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components holds the resolved application and the logger used to report failures.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			shell.NodeID,
			fs.InspectorNodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
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

			return &Components{App: app, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	runner, err := graft.Dep[ports.CommandRunner](ctx)
	if err != nil {
		return nil, err
	}

	inspector, err := graft.Dep[ports.FileInspector](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, runner, inspector, log), nil
}
