package observe

import (
	"context"
	"time"

	"github.com/jonwraymond/credops/secret"
)

// Resolver matches credential.Resolver so decorators here can wrap the
// real resolver or each other.
type Resolver interface {
	Resolve(ctx context.Context, req secret.Requirement) (string, error)
}

// Cache matches *credential.Store: a Get that resolves on first use plus
// a way to ask whether a name is already cached.
type Cache interface {
	Get(ctx context.Context, req secret.Requirement) (string, error)
	Cached(name string) bool
}

// InstrumentedResolver wraps a Resolver with tracing, metrics, and logging.
// Every call that reaches it is a first-use resolution; cache hits are
// counted by InstrumentedStore.
//
// Contract:
//   - Concurrency: safe for concurrent use when the wrapped Resolver is.
//   - Context: propagates context through tracing spans.
//   - Errors: errors from the wrapped Resolver are recorded and propagated
//     unchanged.
//   - Values: resolved values pass through untouched and never appear in
//     spans, metrics, or logs.
type InstrumentedResolver struct {
	next    Resolver
	tracer  Tracer
	metrics Metrics
	logger  Logger
}

// NewInstrumentedResolver wraps next with the given telemetry components.
func NewInstrumentedResolver(next Resolver, tracer Tracer, metrics Metrics, logger Logger) *InstrumentedResolver {
	return &InstrumentedResolver{
		next:    next,
		tracer:  tracer,
		metrics: metrics,
		logger:  logger,
	}
}

// InstrumentResolver wraps next using components built from obs.
// This is the common wiring between secret.NewResolver and
// credential.NewStore.
func InstrumentResolver(next Resolver, obs Observer) (*InstrumentedResolver, error) {
	if obs == nil {
		return nil, ErrNilObserver
	}
	metrics, err := newMetrics(obs.Meter())
	if err != nil {
		return nil, err
	}
	return NewInstrumentedResolver(next, newTracer(obs.Tracer()), metrics, obs.Logger()), nil
}

// Resolve resolves req through the wrapped Resolver, recording a span,
// metrics, and an operator log line.
func (r *InstrumentedResolver) Resolve(ctx context.Context, req secret.Requirement) (string, error) {
	meta := SecretMeta{Name: req.Name}
	ctx, span := r.tracer.StartSpan(ctx, meta)
	start := time.Now()

	value, err := r.next.Resolve(ctx, req)

	duration := time.Since(start)
	r.tracer.EndSpan(span, err)
	r.metrics.RecordResolution(ctx, meta, duration, err)

	logger := r.logger.WithSecret(meta)
	fields := []Field{
		{Key: "outcome", Value: Outcome(err)},
		{Key: "duration_ms", Value: float64(duration.Milliseconds())},
	}
	if err != nil {
		fields = append(fields, Field{Key: "error", Value: err.Error()})
		logger.Error(ctx, "credential resolution failed", fields...)
	} else {
		logger.Info(ctx, "credential resolved", fields...)
	}

	return value, err
}

// InstrumentedStore wraps a Cache and counts each lookup as a cache hit
// or miss. Resolution metrics belong to InstrumentedResolver; wiring both
// gives the full picture without double counting.
type InstrumentedStore struct {
	next    Cache
	metrics Metrics
}

// NewInstrumentedStore wraps next with the given metrics.
func NewInstrumentedStore(next Cache, metrics Metrics) *InstrumentedStore {
	return &InstrumentedStore{
		next:    next,
		metrics: metrics,
	}
}

// InstrumentStore wraps next using metrics built from obs.
func InstrumentStore(next Cache, obs Observer) (*InstrumentedStore, error) {
	if obs == nil {
		return nil, ErrNilObserver
	}
	metrics, err := newMetrics(obs.Meter())
	if err != nil {
		return nil, err
	}
	return NewInstrumentedStore(next, metrics), nil
}

// Get looks up req through the wrapped Cache and records the hit or miss.
// A lookup that arrives while the first resolution is still in flight
// counts as a miss, so concurrent first use records one miss per caller
// but still only one resolution.
func (s *InstrumentedStore) Get(ctx context.Context, req secret.Requirement) (string, error) {
	hit := s.next.Cached(req.Name)
	value, err := s.next.Get(ctx, req)
	s.metrics.RecordLookup(ctx, req.Name, hit)
	return value, err
}

// Cached reports whether name is cached in the wrapped Cache.
func (s *InstrumentedStore) Cached(name string) bool {
	return s.next.Cached(name)
}

// Ensure the decorators satisfy the interfaces they wrap
var (
	_ Resolver = (*InstrumentedResolver)(nil)
	_ Cache    = (*InstrumentedStore)(nil)
)
