package content

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/PRAJWAL-RAMGOND/matha-connect/internal/cache"
)

// FetchFunc retrieves rows of one content kind from the remote backend.
type FetchFunc[T any] func(ctx context.Context) ([]T, error)

// Result is the outcome of a load. Loads always terminate: Items is either
// the remote rows or the fallback dataset, never nil for a kind that has one.
type Result[T any] struct {
	Items      []T  `json:"items"`
	FromRemote bool `json:"from_remote"`
}

// Loader resolves one content kind with fetch-or-fallback semantics.
type Loader[T any] struct {
	name     string
	fetch    FetchFunc[T]
	fallback []T
	cacher   cache.Cacher
	ttl      time.Duration
}

// NewLoader creates a loader for one content kind. fetch may be nil for
// static kinds that only ever serve the fallback dataset.
func NewLoader[T any](name string, fetch FetchFunc[T], fallback []T) *Loader[T] {
	return &Loader[T]{name: name, fetch: fetch, fallback: fallback}
}

// WithCache enables caching of successful remote loads.
func (l *Loader[T]) WithCache(c cache.Cacher, ttl time.Duration) *Loader[T] {
	l.cacher = c
	l.ttl = ttl
	return l
}

// Fallback returns the built-in dataset for this kind.
func (l *Loader[T]) Fallback() []T {
	return l.fallback
}

// Load resolves the content kind. Remote rows win only when the fetch
// succeeds and returns at least one row; an empty remote table means the
// backend is not yet populated and the fallback is served instead.
func (l *Loader[T]) Load(ctx context.Context) Result[T] {
	if l.fetch == nil {
		return Result[T]{Items: l.fallback, FromRemote: false}
	}

	if items, ok := l.cached(ctx); ok {
		return Result[T]{Items: items, FromRemote: true}
	}

	items, err := l.fetch(ctx)
	if err != nil {
		slog.Warn("content fetch failed, serving fallback",
			"kind", l.name,
			"error", err,
		)
		return Result[T]{Items: l.fallback, FromRemote: false}
	}
	if len(items) == 0 {
		return Result[T]{Items: l.fallback, FromRemote: false}
	}

	l.store(ctx, items)
	return Result[T]{Items: items, FromRemote: true}
}

// Invalidate drops the cached remote rows for this kind.
func (l *Loader[T]) Invalidate(ctx context.Context) {
	if l.cacher != nil {
		_ = l.cacher.Delete(ctx, l.cacheKey())
	}
}

func (l *Loader[T]) cacheKey() string {
	return "content:" + l.name
}

func (l *Loader[T]) cached(ctx context.Context) ([]T, bool) {
	if l.cacher == nil {
		return nil, false
	}
	raw, err := l.cacher.Get(ctx, l.cacheKey())
	if err != nil {
		return nil, false
	}
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil || len(items) == 0 {
		return nil, false
	}
	return items, true
}

func (l *Loader[T]) store(ctx context.Context, items []T) {
	if l.cacher == nil {
		return
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return
	}
	_ = l.cacher.Set(ctx, l.cacheKey(), raw, l.ttl)
}
