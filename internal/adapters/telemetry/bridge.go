package telemetry

import (
	"context"

	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Span kinds reported to a SpanObserver.
const (
	KindSession = "session"
	KindChild   = "child"
	KindPackage = "package"
	KindOther   = "other"
)

// SpanObserver receives every finished span.
type SpanObserver interface {
	ObserveSpan(kind string, seconds float64, failed bool)
}

// Bridge implements sdktrace.SpanProcessor and forwards finished spans to an observer.
type Bridge struct {
	observer SpanObserver
}

// NewBridge returns a new Bridge.
func NewBridge(observer SpanObserver) *Bridge {
	return &Bridge{observer: observer}
}

// OnStart does nothing.
func (b *Bridge) OnStart(context.Context, sdktrace.ReadWriteSpan) {}

// OnEnd reports the duration and outcome of s.
func (b *Bridge) OnEnd(s sdktrace.ReadOnlySpan) {
	if b.observer == nil || !s.SpanContext().IsValid() {
		return
	}
	d := s.EndTime().Sub(s.StartTime())
	b.observer.ObserveSpan(SpanKind(s), d.Seconds(), s.Status().Code == codes.Error)
}

// ForceFlush does nothing.
func (b *Bridge) ForceFlush(context.Context) error {
	return nil
}

// Shutdown does nothing.
func (b *Bridge) Shutdown(context.Context) error {
	return nil
}

// SpanKind classifies s by the attributes the scheduler sets on it.
func SpanKind(s sdktrace.ReadOnlySpan) string {
	kind := KindOther
	for _, kv := range s.Attributes() {
		switch kv.Key {
		case "cook.session":
			return KindSession
		case "cook.child.packages":
			kind = KindChild
		case "cook.platforms":
			if kind == KindOther {
				kind = KindPackage
			}
		}
	}
	return kind
}
