package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/xclean/internal/core/ports"
)

const (
	// WalkerNodeID is the unique identifier for the walker Graft node.
	WalkerNodeID graft.ID = "adapter.fs.walker"
	// SizerNodeID is the unique identifier for the sizer Graft node.
	SizerNodeID graft.ID = "adapter.fs.sizer"
	// FileSystemNodeID is the unique identifier for the filesystem Graft node.
	FileSystemNodeID graft.ID = "adapter.fs.filesystem"
)

func init() {
	// Walker Node (Concrete implementation needed by Sizer)
	graft.Register(graft.Node[*Walker]{
		ID:        WalkerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Walker, error) {
			return NewWalker(), nil
		},
	})

	// Sizer Node
	graft.Register(graft.Node[ports.Sizer]{
		ID:        SizerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{WalkerNodeID},
		Run: func(ctx context.Context) (ports.Sizer, error) {
			walker, err := graft.Dep[*Walker](ctx)
			if err != nil {
				return nil, err
			}
			return NewSizer(walker), nil
		},
	})

	// FileSystem Node
	graft.Register(graft.Node[ports.FileSystem]{
		ID:        FileSystemNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.FileSystem, error) {
			return NewFileSystem(), nil
		},
	})
}
