// Package telemetry connects OpenTelemetry spans of the check stages to progress output.
package telemetry

import (
	"context"
	"fmt"

	"github.com/wtsi-hgi/bam2cram-check/internal/core/domain"
	"github.com/wtsi-hgi/bam2cram-check/internal/core/ports"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/zerr"
)

// Bridge is an sdktrace.SpanProcessor reporting check stages to a Renderer.
// Only spans from the InstrumentationName tracer are stages; others are ignored.
type Bridge struct {
	renderer ports.Renderer
}

// NewBridge returns a new Bridge.
func NewBridge(renderer ports.Renderer) *Bridge {
	return &Bridge{
		renderer: renderer,
	}
}

// OnStart reports the start of a stage.
func (b *Bridge) OnStart(_ context.Context, s sdktrace.ReadWriteSpan) {
	if !b.isStage(s) {
		return
	}
	b.renderer.OnStageStart(s.SpanContext().SpanID().String(), s.Name(), s.StartTime())
}

// OnEnd reports the outcome of a stage.
func (b *Bridge) OnEnd(s sdktrace.ReadOnlySpan) {
	if !b.isStage(s) {
		return
	}
	b.renderer.OnStageComplete(s.SpanContext().SpanID().String(), s.EndTime(), stageError(s))
}

// ForceFlush does nothing.
func (b *Bridge) ForceFlush(_ context.Context) error {
	return nil
}

// Shutdown does nothing.
func (b *Bridge) Shutdown(_ context.Context) error {
	return nil
}

func (b *Bridge) isStage(s sdktrace.ReadOnlySpan) bool {
	return b.renderer != nil &&
		s.SpanContext().IsValid() &&
		s.InstrumentationScope().Name == InstrumentationName
}

// stageError describes a failed stage by its status description,
// falling back to the number of findings recorded on the span.
func stageError(s sdktrace.ReadOnlySpan) error {
	if s.Status().Code != codes.Error {
		return nil
	}
	if desc := s.Status().Description; desc != "" {
		return zerr.New(desc)
	}
	for _, kv := range s.Attributes() {
		if string(kv.Key) == domain.FindingsKey && kv.Value.AsInt64() > 0 {
			return zerr.New(fmt.Sprintf("%d finding(s)", kv.Value.AsInt64()))
		}
	}
	return zerr.New("stage failed")
}
