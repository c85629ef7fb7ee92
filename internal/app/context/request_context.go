package context

import (
	"context"
	"fmt"
	"sync"
)

type ctxKey struct{}

// RequestContext holds the memoized reads and staged actions of one request.
type RequestContext struct {
	ctx context.Context

	mu        sync.Mutex
	cache     map[string]*entry
	actions   []Action
	committed bool
}

type entry struct {
	once  sync.Once
	value any
	err   error
}

// New creates a RequestContext whose fetches run with ctx.
func New(ctx context.Context) *RequestContext {
	return &RequestContext{
		ctx:   ctx,
		cache: make(map[string]*entry),
	}
}

// FromContext returns the RequestContext stored in ctx, or nil.
func FromContext(ctx context.Context) *RequestContext {
	if ctx == nil {
		return nil
	}

	rc, _ := ctx.Value(ctxKey{}).(*RequestContext)

	return rc
}

// WithContext stores rc in ctx.
func WithContext(ctx context.Context, rc *RequestContext) context.Context {
	return context.WithValue(ctx, ctxKey{}, rc)
}

// Context returns the context fetches run with.
func (rc *RequestContext) Context() context.Context {
	return rc.ctx
}

func (rc *RequestContext) entry(key string) *entry {
	rc.mu.Lock()
	defer rc.mu.Unlock()

	e, ok := rc.cache[key]
	if !ok {
		e = &entry{}
		rc.cache[key] = e
	}

	return e
}

// Fetch returns the value cached under key, calling fn the first time.
// Concurrent callers for the same key share one call, and a failed fetch
// stays failed for the rest of the request.
func Fetch[T any](rc *RequestContext, key string, fn func(context.Context) (T, error)) (T, error) {
	e := rc.entry(key)
	e.once.Do(func() {
		e.value, e.err = fn(rc.ctx)
	})

	var zero T
	if e.err != nil {
		return zero, e.err
	}

	v, ok := e.value.(T)
	if !ok {
		return zero, fmt.Errorf("request context: key %q holds %T", key, e.value)
	}

	return v, nil
}
