package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/xclean/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/xclean/internal/adapters/fs"        //nolint:depguard // Wired in app layer
	"go.trai.ch/xclean/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/xclean/internal/adapters/plist"     //nolint:depguard // Wired in app layer
	"go.trai.ch/xclean/internal/adapters/prefs"     //nolint:depguard // Wired in app layer
	"go.trai.ch/xclean/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/xclean/internal/adapters/watcher"   //nolint:depguard // Wired in app layer
	"go.trai.ch/xclean/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
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
			fs.FileSystemNodeID,
			fs.SizerNodeID,
			plist.NodeID,
			prefs.NodeID,
			watcher.NodeID,
			telemetry.TracerNodeID,
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

			return &Components{
				App:    app,
				Logger: log,
			}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	fileSystem, err := graft.Dep[ports.FileSystem](ctx)
	if err != nil {
		return nil, err
	}

	sizer, err := graft.Dep[ports.Sizer](ctx)
	if err != nil {
		return nil, err
	}

	metadata, err := graft.Dep[ports.MetadataReader](ctx)
	if err != nil {
		return nil, err
	}

	preferences, err := graft.Dep[ports.Preferences](ctx)
	if err != nil {
		return nil, err
	}

	fsWatcher, err := graft.Dep[ports.Watcher](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, fileSystem, sizer, metadata, preferences, fsWatcher, tracer, log), nil
}
