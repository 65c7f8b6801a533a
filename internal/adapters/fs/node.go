package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/wtsi-hgi/bam2cram-check/internal/core/ports"
)

// InspectorNodeID is the unique identifier for the file inspector Graft node.
const InspectorNodeID graft.ID = "adapter.fs.inspector"

func init() {
	graft.Register(graft.Node[ports.FileInspector]{
		ID:        InspectorNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.FileInspector, error) {
			return NewInspector(), nil
		},
	})
}
