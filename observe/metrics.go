package observe

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/jonwraymond/credops/secret"
)

// Metrics records credential resolution and cache metrics.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Context: must honor cancellation/deadlines and return quickly.
// - Errors: implementations must not panic.
type Metrics interface {
	// RecordResolution records one resolution attempt with its duration
	// and outcome.
	RecordResolution(ctx context.Context, meta SecretMeta, duration time.Duration, err error)

	// RecordLookup records one store lookup as a cache hit or miss.
	RecordLookup(ctx context.Context, name string, hit bool)
}

// Outcome classifies a resolution error for metrics and logs.
// It returns "resolved", "missing", "weak", or "error".
func Outcome(err error) string {
	if err == nil {
		return "resolved"
	}
	var missing *secret.MissingError
	if errors.As(err, &missing) {
		return "missing"
	}
	var weak *secret.WeakError
	if errors.As(err, &weak) {
		return "weak"
	}
	return "error"
}

// metricsImpl is the concrete implementation of Metrics.
type metricsImpl struct {
	meter        metric.Meter
	resolveTotal metric.Int64Counter
	durationHist metric.Float64Histogram
	cacheHits    metric.Int64Counter
	cacheMisses  metric.Int64Counter
}

// newMetrics creates a new Metrics instance with the given meter.
func newMetrics(meter metric.Meter) (*metricsImpl, error) {
	resolveTotal, err := meter.Int64Counter(
		"credential.resolve.total",
		metric.WithDescription("Total number of credential resolutions"),
		metric.WithUnit("{resolution}"),
	)
	if err != nil {
		return nil, err
	}

	durationHist, err := meter.Float64Histogram(
		"credential.resolve.duration_ms",
		metric.WithDescription("Credential resolution duration in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	cacheHits, err := meter.Int64Counter(
		"credential.cache.hits",
		metric.WithDescription("Credential lookups served from the cache"),
		metric.WithUnit("{lookup}"),
	)
	if err != nil {
		return nil, err
	}

	cacheMisses, err := meter.Int64Counter(
		"credential.cache.misses",
		metric.WithDescription("Credential lookups that required resolution"),
		metric.WithUnit("{lookup}"),
	)
	if err != nil {
		return nil, err
	}

	return &metricsImpl{
		meter:        meter,
		resolveTotal: resolveTotal,
		durationHist: durationHist,
		cacheHits:    cacheHits,
		cacheMisses:  cacheMisses,
	}, nil
}

// RecordResolution records metrics for one resolution attempt.
func (m *metricsImpl) RecordResolution(ctx context.Context, meta SecretMeta, duration time.Duration, err error) {
	attrs := []attribute.KeyValue{
		attribute.String("secret.name", meta.Name),
		attribute.String("outcome", Outcome(err)),
	}
	if meta.Source != "" {
		attrs = append(attrs, attribute.String("secret.source", meta.Source))
	}

	opt := metric.WithAttributes(attrs...)
	m.resolveTotal.Add(ctx, 1, opt)
	m.durationHist.Record(ctx, float64(duration.Milliseconds()), opt)
}

// RecordLookup records one cache hit or miss for name.
func (m *metricsImpl) RecordLookup(ctx context.Context, name string, hit bool) {
	opt := metric.WithAttributes(attribute.String("secret.name", name))
	if hit {
		m.cacheHits.Add(ctx, 1, opt)
	} else {
		m.cacheMisses.Add(ctx, 1, opt)
	}
}

// noopMetrics is a metrics implementation that does nothing.
type noopMetrics struct{}

func (m *noopMetrics) RecordResolution(ctx context.Context, meta SecretMeta, duration time.Duration, err error) {
}

func (m *noopMetrics) RecordLookup(ctx context.Context, name string, hit bool) {}
