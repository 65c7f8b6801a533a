package telemetry

import (
	"context"

	"github.com/wtsi-hgi/bam2cram-check/internal/core/ports"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// InstrumentationName names the tracer used for check stages.
const InstrumentationName = "bam2cram-check"

// Provider hands out the tracer used by the verifier.
type Provider struct {
	tp       trace.TracerProvider
	shutdown func(context.Context) error
}

// NewProvider returns a Provider whose spans are forwarded to renderer.
// With a nil renderer spans are not recorded at all.
func NewProvider(renderer ports.Renderer) *Provider {
	if renderer == nil {
		return &Provider{
			tp:       noop.NewTracerProvider(),
			shutdown: func(context.Context) error { return nil },
		}
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(NewBridge(renderer)),
	)
	return &Provider{
		tp:       tp,
		shutdown: tp.Shutdown,
	}
}

// Tracer returns the tracer for check stages.
func (p *Provider) Tracer() trace.Tracer {
	return p.tp.Tracer(InstrumentationName)
}

// Shutdown flushes and stops span processing.
func (p *Provider) Shutdown(ctx context.Context) error {
	return p.shutdown(ctx)
}
