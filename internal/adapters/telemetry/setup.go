package telemetry

import (
	"context"
	"strings"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	progrockadapter "go.trai.ch/tally/internal/adapters/telemetry/progrock"
	"go.trai.ch/tally/internal/core/ports"
	"go.trai.ch/zerr"
)

// InstrumentationName names the tracer of every calculation span.
const InstrumentationName = "tally"

// Kind selects the tracer backend.
type Kind string

const (
	// KindNone discards spans.
	KindNone Kind = "none"
	// KindOTel logs finished OpenTelemetry spans through the logger.
	KindOTel Kind = "otel"
	// KindProgrock records spans as progrock vertices.
	KindProgrock Kind = "progrock"
)

// ErrUnknownKind is returned for unrecognised tracer kinds.
var ErrUnknownKind = zerr.New("unknown trace kind, expected 'none', 'otel' or 'progrock'")

// ParseKind resolves a tracer kind name. The empty string means KindNone.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case "", KindNone:
		return KindNone, nil
	case KindOTel, KindProgrock:
		return k, nil
	default:
		return "", zerr.With(zerr.Wrap(ErrUnknownKind, "unrecognised name"), "trace", s)
	}
}

// ShutdownFunc flushes and releases a tracer backend.
type ShutdownFunc func(context.Context) error

// NewTracer builds the tracer for kind. The returned ShutdownFunc is never nil.
func NewTracer(kind Kind, logger ports.Logger) (ports.Tracer, ShutdownFunc, error) {
	switch kind {
	case "", KindNone:
		return NewNoOpTracer(), func(context.Context) error { return nil }, nil
	case KindOTel:
		tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(NewLogBridge(logger)))
		return NewOTelTracerWithProvider(tp, InstrumentationName), tp.Shutdown, nil
	case KindProgrock:
		rec := progrockadapter.New()
		return rec, func(context.Context) error { return rec.Close() }, nil
	default:
		return nil, nil, zerr.With(zerr.Wrap(ErrUnknownKind, "unrecognised name"), "trace", string(kind))
	}
}
