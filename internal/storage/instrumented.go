package storage

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/gymroutines/internal/telemetry/metrics"
	"github.com/2beens/gymroutines/internal/telemetry/tracing"
)

var _ KV = (*InstrumentedKV)(nil)

// InstrumentedKV records duration, errors and a span for every call on the wrapped KV.
// A miss (ErrNotFound) is not counted as an error.
type InstrumentedKV struct {
	next           KV
	backend        Backend
	metricsManager *metrics.Manager
}

func NewInstrumentedKV(next KV, backend Backend, metricsManager *metrics.Manager) *InstrumentedKV {
	return &InstrumentedKV{
		next:           next,
		backend:        backend,
		metricsManager: metricsManager,
	}
}

func (i *InstrumentedKV) Get(ctx context.Context, key string) (_ []byte, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "storage.kv.get")
	span.SetAttributes(
		attribute.String("backend", i.backend.String()),
		attribute.String("key", key),
	)
	start := time.Now()
	defer func() {
		i.observe(key, "get", start, err)
		if errors.Is(err, ErrNotFound) {
			tracing.EndSpanWithErrCheck(span, nil)
			return
		}
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return i.next.Get(ctx, key)
}

func (i *InstrumentedKV) Set(ctx context.Context, key string, value []byte) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "storage.kv.set")
	span.SetAttributes(
		attribute.String("backend", i.backend.String()),
		attribute.String("key", key),
		attribute.Int("size", len(value)),
	)
	start := time.Now()
	defer func() {
		i.observe(key, "set", start, err)
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return i.next.Set(ctx, key, value)
}

func (i *InstrumentedKV) Close() error {
	return i.next.Close()
}

func (i *InstrumentedKV) observe(key, op string, start time.Time, err error) {
	if i.metricsManager == nil {
		return
	}
	i.metricsManager.HistogramStorageDuration.WithLabelValues(key, op).Observe(time.Since(start).Seconds())
	if err != nil && !errors.Is(err, ErrNotFound) {
		i.metricsManager.CounterStorageErrors.WithLabelValues(key, op).Inc()
	}
}

func (i *InstrumentedKV) Unwrap() KV {
	return i.next
}
