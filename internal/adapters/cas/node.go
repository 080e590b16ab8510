package cas

import (
	"context"
	"os"
	"path/filepath"

	"github.com/grindlemire/graft"
	"go.trai.ch/bundle/internal/core/domain"
	"go.trai.ch/bundle/internal/core/ports"
)

// NodeID is the unique identifier for the integrity store Graft node.
const NodeID graft.ID = "adapter.integrity_store"

func init() {
	graft.Register(graft.Node[ports.IntegrityStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.IntegrityStore, error) {
			root, err := os.UserHomeDir()
			if err != nil {
				root = os.TempDir()
			}
			return NewStore(filepath.Join(root, domain.DefaultStorePath())), nil
		},
	})
}
