package ports

import "time"

// Renderer is the abstraction for stage progress output.
// It decouples span collection from presentation.
//
//go:generate mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type Renderer interface {
	// OnStageStart is called when a pipeline stage begins.
	OnStageStart(spanID, name string, startTime time.Time)

	// OnStageComplete is called when a stage finishes; err is nil on success.
	OnStageComplete(spanID string, endTime time.Time, err error)
}
