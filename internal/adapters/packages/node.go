package packages

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/bundle/internal/adapters/fs"
	"go.trai.ch/bundle/internal/core/ports"
)

// NodeID is the unique identifier for the package repository factory Graft node.
const NodeID graft.ID = "adapter.package_repository"

func init() {
	graft.Register(graft.Node[ports.PackageRepositoryFactory]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.WalkerNodeID},
		Run: func(ctx context.Context) (ports.PackageRepositoryFactory, error) {
			walker, err := graft.Dep[*fs.Walker](ctx)
			if err != nil {
				return nil, err
			}
			return NewFactory(walker), nil
		},
	})
}
