package sandbox

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cook/internal/core/ports"
)

// SerializerNodeID is the unique identifier for the platform serializer Graft node.
const SerializerNodeID graft.ID = "adapter.sandbox.serializer"

func init() {
	graft.Register(graft.Node[ports.PlatformSerializer]{
		ID:        SerializerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.PlatformSerializer, error) {
			return NewSerializer(), nil
		},
	})
}
