package lockfile

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/bundle/internal/adapters/fs" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/bundle/internal/core/ports"
)

// NodeID is the unique identifier for the lock file builder Graft node.
const NodeID graft.ID = "engine.lockfile_builder"

func init() {
	graft.Register(graft.Node[*Builder]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.HasherNodeID},
		Run: func(ctx context.Context) (*Builder, error) {
			hasher, err := graft.Dep[ports.Hasher](ctx)
			if err != nil {
				return nil, err
			}
			return NewBuilder(hasher), nil
		},
	})
}
