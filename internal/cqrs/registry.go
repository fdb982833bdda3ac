package cqrs

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
)

var (
	ErrNoHandler        = errors.New("no handler registered")
	ErrDuplicateHandler = errors.New("handler already registered")
	ErrEmptyName        = errors.New("message name is empty")
)

const instrumentationName = "github.com/nikolayk812/storefront/internal/cqrs"

type handlerFunc func(ctx context.Context, msg any) (any, error)

// registry is a name-keyed handler table shared by both buses.
type registry struct {
	kind string

	mu       sync.RWMutex
	handlers map[string]handlerFunc

	tracer     trace.Tracer
	dispatched metric.Int64Counter
	duration   metric.Float64Histogram
}

func newRegistry(kind string) *registry {
	meter := otel.Meter(instrumentationName)

	var (
		dispatched metric.Int64Counter     = noop.Int64Counter{}
		duration   metric.Float64Histogram = noop.Float64Histogram{}
	)

	if c, err := meter.Int64Counter("storefront.cqrs.dispatched",
		metric.WithDescription("Number of dispatched commands and queries.")); err == nil {
		dispatched = c
	}

	if h, err := meter.Float64Histogram("storefront.cqrs.duration",
		metric.WithDescription("Handler duration."),
		metric.WithUnit("s")); err == nil {
		duration = h
	}

	return &registry{
		kind:       kind,
		handlers:   make(map[string]handlerFunc),
		tracer:     otel.Tracer(instrumentationName),
		dispatched: dispatched,
		duration:   duration,
	}
}

func (r *registry) register(name string, h handlerFunc) error {
	if name == "" {
		return ErrEmptyName
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.handlers[name]; ok {
		return fmt.Errorf("%s %s: %w", r.kind, name, ErrDuplicateHandler)
	}

	r.handlers[name] = h
	return nil
}

func (r *registry) names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	return names
}

func (r *registry) dispatch(ctx context.Context, name string, msg any) (any, error) {
	r.mu.RLock()
	h, ok := r.handlers[name]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%s %s: %w", r.kind, name, ErrNoHandler)
	}

	ctx, span := r.tracer.Start(ctx, r.kind+" "+name)
	defer span.End()

	start := time.Now()
	result, err := h(ctx, msg)

	outcome := "ok"
	if err != nil {
		outcome = "error"
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}

	attrs := metric.WithAttributes(
		attribute.String("kind", r.kind),
		attribute.String("name", name),
		attribute.String("outcome", outcome),
	)
	r.dispatched.Add(ctx, 1, attrs)
	r.duration.Record(ctx, time.Since(start).Seconds(), attrs)

	return result, err
}

func castMessage[M any](kind, name string, msg any) (M, error) {
	typed, ok := msg.(M)
	if !ok {
		var zero M
		return zero, fmt.Errorf("%s %s: handler expects %T, got %T", kind, name, zero, msg)
	}

	return typed, nil
}

func castResult[R any](kind, name string, result any) (R, error) {
	var zero R

	if result == nil {
		return zero, nil
	}

	typed, ok := result.(R)
	if !ok {
		return zero, fmt.Errorf("%s %s: handler returned %T, caller expects %T", kind, name, result, zero)
	}

	return typed, nil
}
