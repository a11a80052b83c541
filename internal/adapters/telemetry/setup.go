package telemetry

import (
	"context"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/cook/internal/adapters/telemetry/progrock"
	"go.trai.ch/cook/internal/core/domain"
	"go.trai.ch/cook/internal/core/ports"
	"go.trai.ch/zerr"
)

// ShutdownFunc flushes and releases a tracer backend.
type ShutdownFunc func(context.Context) error

// New creates the tracer for backend. Finished otel spans are reported to
// observer when it is not nil.
func New(backend string, observer SpanObserver) (ports.Tracer, ShutdownFunc, error) {
	switch backend {
	case domain.TelemetryNone:
		return NewNoOpTracer(), noShutdown, nil
	case domain.TelemetryOTel, "":
		opts := []sdktrace.TracerProviderOption{}
		if observer != nil {
			opts = append(opts, sdktrace.WithSpanProcessor(NewBridge(observer)))
		}
		tp := sdktrace.NewTracerProvider(opts...)
		return NewOTelTracerFrom(tp, InstrumentationName), tp.Shutdown, nil
	case domain.TelemetryProgrock:
		rec := progrock.New()
		return rec, func(context.Context) error { return rec.Close() }, nil
	default:
		return nil, nil, zerr.With(domain.ErrInvalidConfig, "telemetry", backend)
	}
}

func noShutdown(context.Context) error {
	return nil
}
