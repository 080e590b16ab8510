package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/bundle/internal/adapters/config"             //nolint:depguard // Wired in app layer
	"go.trai.ch/bundle/internal/adapters/fs"                 //nolint:depguard // Wired in app layer
	"go.trai.ch/bundle/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"go.trai.ch/bundle/internal/adapters/packages"           //nolint:depguard // Wired in app layer
	"go.trai.ch/bundle/internal/adapters/shell"              //nolint:depguard // Wired in app layer
	"go.trai.ch/bundle/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/bundle/internal/core/ports"
	"go.trai.ch/bundle/internal/engine/lockfile"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			packages.NodeID,
			fs.RuntimeLocatorNodeID,
			fs.EmitterNodeID,
			shell.NodeID,
			shell.NativeNodeID,
			lockfile.NodeID,
			progrock.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			progrock.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ProjectLoader](ctx)
	if err != nil {
		return nil, err
	}

	repos, err := graft.Dep[ports.PackageRepositoryFactory](ctx)
	if err != nil {
		return nil, err
	}

	locator, err := graft.Dep[ports.RuntimeLocator](ctx)
	if err != nil {
		return nil, err
	}

	hooks, err := graft.Dep[ports.HookRunner](ctx)
	if err != nil {
		return nil, err
	}

	builder, err := graft.Dep[*lockfile.Builder](ctx)
	if err != nil {
		return nil, err
	}

	emitter, err := graft.Dep[ports.Emitter](ctx)
	if err != nil {
		return nil, err
	}

	native, err := graft.Dep[ports.NativeImageGenerator](ctx)
	if err != nil {
		return nil, err
	}

	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, repos, locator, hooks, builder, emitter, native, telemetry, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:       app,
		Logger:    log,
		Telemetry: telemetry,
	}, nil
}
