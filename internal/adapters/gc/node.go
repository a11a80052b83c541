package gc

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cook/internal/core/ports"
)

// ProbeNodeID is the unique identifier for the memory probe Graft node.
const ProbeNodeID graft.ID = "adapter.gc.probe"

func init() {
	graft.Register(graft.Node[ports.MemoryProbe]{
		ID:        ProbeNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.MemoryProbe, error) {
			return NewProbe(0), nil
		},
	})
}
