package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/bundle/internal/adapters/cas"
	"go.trai.ch/bundle/internal/adapters/logger"
	"go.trai.ch/bundle/internal/core/ports"
)

const (
	WalkerNodeID         graft.ID = "adapter.fs.walker"
	HasherNodeID         graft.ID = "adapter.fs.hasher"
	RuntimeLocatorNodeID graft.ID = "adapter.fs.runtime_locator"
	EmitterNodeID        graft.ID = "adapter.fs.emitter"
)

func init() {
	// Walker Node (Concrete implementation needed by the emitter and package repository)
	graft.Register(graft.Node[*Walker]{
		ID:        WalkerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Walker, error) {
			return NewWalker(), nil
		},
	})

	graft.Register(graft.Node[ports.Hasher]{
		ID:        HasherNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{cas.NodeID},
		Run: func(ctx context.Context) (ports.Hasher, error) {
			store, err := graft.Dep[ports.IntegrityStore](ctx)
			if err != nil {
				return nil, err
			}
			return NewHasher(store), nil
		},
	})

	graft.Register(graft.Node[ports.RuntimeLocator]{
		ID:        RuntimeLocatorNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.RuntimeLocator, error) {
			return NewRuntimeLocator(), nil
		},
	})

	graft.Register(graft.Node[ports.Emitter]{
		ID:        EmitterNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{WalkerNodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.Emitter, error) {
			walker, err := graft.Dep[*Walker](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewEmitter(walker, log), nil
		},
	})
}
