// Package store provides the generic in-memory entity store shared by every
// repository of the e-library.
package store

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "elibrary/store"

// Meta holds the identity and audit fields owned by the store.
type Meta struct {
	ID        string
	CreatedAt time.Time
}

// Entity is a record whose identity can be read and re-pinned.
type Entity[E any] interface {
	Meta() Meta
	WithMeta(Meta) E
}

// Input builds a full entity from freshly assigned identity fields,
// applying any entity defaults.
type Input[E any] interface {
	Build(Meta) E
}

// Patch overlays the supplied fields onto a copy of an entity.
type Patch[E any] interface {
	Apply(E) E
}

// Store is an in-memory collection of one entity type, keyed by id and
// iterated in insertion order.
type Store[E Entity[E], C Input[E], P Patch[E]] struct {
	kind  string
	newID func() string
	now   func() time.Time

	mu    sync.RWMutex
	items map[string]E
	order []string

	tracer trace.Tracer
	ops    metric.Int64Counter
}

// Option configures a Store.
type Option[E Entity[E]] func(*options[E])

type options[E Entity[E]] struct {
	newID          func() string
	now            func() time.Time
	seed           []E
	tracerProvider trace.TracerProvider
	meterProvider  metric.MeterProvider
}

// WithIDGenerator replaces the default UUID v4 generator.
func WithIDGenerator[E Entity[E]](gen func() string) Option[E] {
	return func(o *options[E]) { o.newID = gen }
}

// WithClock replaces time.Now as the source of creation timestamps.
func WithClock[E Entity[E]](now func() time.Time) Option[E] {
	return func(o *options[E]) { o.now = now }
}

// WithSeed pre-populates the store. Seed entities keep their own id and
// createdAt; a later seed with an existing id replaces the earlier one.
func WithSeed[E Entity[E]](seed ...E) Option[E] {
	return func(o *options[E]) { o.seed = append(o.seed, seed...) }
}

// WithTracerProvider replaces the global OpenTelemetry tracer provider.
func WithTracerProvider[E Entity[E]](tp trace.TracerProvider) Option[E] {
	return func(o *options[E]) { o.tracerProvider = tp }
}

// WithMeterProvider replaces the global OpenTelemetry meter provider.
func WithMeterProvider[E Entity[E]](mp metric.MeterProvider) Option[E] {
	return func(o *options[E]) { o.meterProvider = mp }
}

// New creates an empty store for the given entity kind unless seeded.
func New[E Entity[E], C Input[E], P Patch[E]](kind string, opts ...Option[E]) *Store[E, C, P] {
	o := options[E]{
		newID:          uuid.NewString,
		now:            time.Now,
		tracerProvider: otel.GetTracerProvider(),
		meterProvider:  otel.GetMeterProvider(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	meter := o.meterProvider.Meter(instrumentationName)
	ops, err := meter.Int64Counter("store.operations",
		metric.WithDescription("Entity store operations by kind, operation and outcome"),
	)
	if err != nil {
		otel.Handle(err)
	}

	s := &Store[E, C, P]{
		kind:   kind,
		newID:  o.newID,
		now:    o.now,
		items:  make(map[string]E, len(o.seed)),
		tracer: o.tracerProvider.Tracer(instrumentationName),
		ops:    ops,
	}
	for _, e := range o.seed {
		s.put(e.Meta().ID, e)
	}
	return s
}

// Kind returns the entity kind the store was created for.
func (s *Store[E, C, P]) Kind() string { return s.kind }

// Create assigns a fresh id and creation time, builds the entity and stores it.
func (s *Store[E, C, P]) Create(ctx context.Context, in C) E {
	ctx, span := s.start(ctx, "store.create")
	defer span.End()

	s.mu.Lock()
	id := s.newID()
	for s.exists(id) {
		span.AddEvent("id.collision", trace.WithAttributes(attribute.String("entity.id", id)))
		id = s.newID()
	}
	meta := Meta{ID: id, CreatedAt: s.now()}
	e := in.Build(meta).WithMeta(meta)
	s.put(id, e)
	s.mu.Unlock()

	span.SetAttributes(attribute.String("entity.id", id))
	s.record(ctx, "create", true)
	return e
}

// FindByID returns the entity stored under id. The boolean reports presence.
func (s *Store[E, C, P]) FindByID(ctx context.Context, id string) (E, bool) {
	ctx, span := s.start(ctx, "store.find_by_id", attribute.String("entity.id", id))
	defer span.End()

	s.mu.RLock()
	e, ok := s.items[id]
	s.mu.RUnlock()

	span.SetAttributes(attribute.Bool("entity.found", ok))
	s.record(ctx, "find_by_id", ok)
	return e, ok
}

// FindAll returns every stored entity in insertion order.
func (s *Store[E, C, P]) FindAll(ctx context.Context) []E {
	ctx, span := s.start(ctx, "store.find_all")
	defer span.End()

	out := s.collect(nil)
	span.SetAttributes(attribute.Int("entity.count", len(out)))
	s.record(ctx, "find_all", true)
	return out
}

// Filter returns the entities for which match reports true, in insertion order.
func (s *Store[E, C, P]) Filter(ctx context.Context, match func(E) bool) []E {
	ctx, span := s.start(ctx, "store.filter")
	defer span.End()

	out := s.collect(match)
	span.SetAttributes(attribute.Int("entity.count", len(out)))
	s.record(ctx, "filter", true)
	return out
}

// Update merges patch into the entity stored under id. The id and createdAt
// of the stored entity always survive the merge.
func (s *Store[E, C, P]) Update(ctx context.Context, id string, patch P) (E, bool) {
	ctx, span := s.start(ctx, "store.update", attribute.String("entity.id", id))
	defer span.End()

	s.mu.Lock()
	current, ok := s.items[id]
	if !ok {
		s.mu.Unlock()
		span.SetAttributes(attribute.Bool("entity.found", false))
		s.record(ctx, "update", false)
		var zero E
		return zero, false
	}
	merged := patch.Apply(current).WithMeta(current.Meta())
	s.items[id] = merged
	s.mu.Unlock()

	span.SetAttributes(attribute.Bool("entity.found", true))
	s.record(ctx, "update", true)
	return merged, true
}

// Delete removes the entity stored under id and reports whether one existed.
func (s *Store[E, C, P]) Delete(ctx context.Context, id string) bool {
	ctx, span := s.start(ctx, "store.delete", attribute.String("entity.id", id))
	defer span.End()

	s.mu.Lock()
	_, ok := s.items[id]
	if ok {
		delete(s.items, id)
		s.order = slices.DeleteFunc(s.order, func(k string) bool { return k == id })
	}
	s.mu.Unlock()

	span.SetAttributes(attribute.Bool("entity.found", ok))
	s.record(ctx, "delete", ok)
	return ok
}

// Len returns the number of stored entities.
func (s *Store[E, C, P]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Reset drops every stored entity, seeds included.
func (s *Store[E, C, P]) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = make(map[string]E)
	s.order = nil
}

func (s *Store[E, C, P]) exists(id string) bool {
	_, ok := s.items[id]
	return ok
}

// put must be called with the write lock held or before the store is shared.
func (s *Store[E, C, P]) put(id string, e E) {
	if !s.exists(id) {
		s.order = append(s.order, id)
	}
	s.items[id] = e
}

func (s *Store[E, C, P]) collect(match func(E) bool) []E {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]E, 0, len(s.order))
	for _, id := range s.order {
		e := s.items[id]
		if match == nil || match(e) {
			out = append(out, e)
		}
	}
	return out
}

func (s *Store[E, C, P]) start(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	attrs = append(attrs, attribute.String("entity.type", s.kind))
	return s.tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

func (s *Store[E, C, P]) record(ctx context.Context, op string, hit bool) {
	if s.ops == nil {
		return
	}
	outcome := "hit"
	if !hit {
		outcome = "miss"
	}
	s.ops.Add(ctx, 1, metric.WithAttributes(
		attribute.String("entity.type", s.kind),
		attribute.String("operation", op),
		attribute.String("outcome", outcome),
	))
}
