package observe

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
)

// resolveSpanName is the fixed span name for credential resolutions. The
// secret name rides along as an attribute so span cardinality stays flat.
const resolveSpanName = "credential.resolve"

// SecretMeta identifies a secret for telemetry purposes. It carries the
// name and, when known, the source that served it. Never the value.
type SecretMeta struct {
	Name   string // Secret name (required)
	Source string // Serving source name (optional)
}

// Validate checks the metadata is usable for telemetry.
func (m SecretMeta) Validate() error {
	if m.Name == "" {
		return ErrMissingSecretName
	}
	return nil
}

// Tracer wraps OpenTelemetry tracing with resolution-specific span management.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Context: StartSpan derives the returned context from ctx, preserving
//   cancellation and deadlines.
// - Errors: EndSpan must be best-effort and must not panic.
type Tracer interface {
	// StartSpan starts a new span for a credential resolution.
	StartSpan(ctx context.Context, meta SecretMeta) (context.Context, trace.Span)

	// EndSpan ends the span, recording any error.
	EndSpan(span trace.Span, err error)
}

// tracerImpl is the concrete implementation of Tracer.
type tracerImpl struct {
	tracer trace.Tracer
}

// newTracer creates a new Tracer wrapping the given OpenTelemetry tracer.
func newTracer(t trace.Tracer) Tracer {
	return &tracerImpl{tracer: t}
}

// StartSpan starts a new span with secret metadata as attributes.
func (t *tracerImpl) StartSpan(ctx context.Context, meta SecretMeta) (context.Context, trace.Span) {
	attrs := []attribute.KeyValue{
		attribute.String("secret.name", meta.Name),
		attribute.Bool("credential.error", false), // Updated in EndSpan on error
	}
	if meta.Source != "" {
		attrs = append(attrs, attribute.String("secret.source", meta.Source))
	}

	return t.tracer.Start(ctx, resolveSpanName,
		trace.WithAttributes(attrs...),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// EndSpan ends the span and records the error status if present.
func (t *tracerImpl) EndSpan(span trace.Span, err error) {
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		span.SetAttributes(attribute.Bool("credential.error", true))
		span.RecordError(err)
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}

// noopTracer is a tracer that does nothing.
type noopTracer struct {
	noop trace.Tracer
}

// newNoopTracer creates a no-op tracer.
func newNoopTracer() Tracer {
	return &noopTracer{
		noop: tracenoop.NewTracerProvider().Tracer("noop"),
	}
}

func (t *noopTracer) StartSpan(ctx context.Context, meta SecretMeta) (context.Context, trace.Span) {
	return t.noop.Start(ctx, resolveSpanName)
}

func (t *noopTracer) EndSpan(span trace.Span, err error) {
	span.End()
}
