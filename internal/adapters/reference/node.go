package reference

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/tally/internal/adapters/logger"
	"go.trai.ch/tally/internal/core/ports"
)

// NodeID is the unique identifier for the reference loader Graft node.
const NodeID graft.ID = "adapter.reference_loader"

func init() {
	graft.Register(graft.Node[ports.ReferenceLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.ReferenceLoader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(log), nil
		},
	})
}
