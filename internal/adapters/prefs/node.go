package prefs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/xclean/internal/core/domain"
	"go.trai.ch/xclean/internal/core/ports"
)

// NodeID is the unique identifier for the preferences Graft node.
const NodeID graft.ID = "adapter.prefs"

func init() {
	graft.Register(graft.Node[ports.Preferences]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Preferences, error) {
			path, err := domain.DefaultPrefsPath()
			if err != nil {
				return nil, err
			}
			return Open(path)
		},
	})
}
