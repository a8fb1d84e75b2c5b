package plist

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/xclean/internal/core/ports"
)

// NodeID is the unique identifier for the metadata reader Graft node.
const NodeID graft.ID = "adapter.plist"

func init() {
	graft.Register(graft.Node[ports.MetadataReader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.MetadataReader, error) {
			return NewReader(), nil
		},
	})
}
