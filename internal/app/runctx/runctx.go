// Package runctx provides validation-run scoped state: a run identifier and a
// memo for collaborator lookups.
//
// A Run is created by the validation manager at the start of every run and
// travels in the context.Context, so collaborators deep in the call graph
// (the composer, value-resolution adapters) can share lookups without
// threading extra parameters:
//
//	ctx = runctx.WithRun(ctx, runctx.New(runID))
//
//	props, err := runctx.GetOrFetch(ctx, "descriptors", fetchDescriptors)
//
// Unlike a request cache, a Run is shared by the validators of one run, which
// may execute concurrently. GetOrFetch is safe for concurrent use and calls
// the fetch function at most once per key.
package runctx

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// ErrTypeMismatch is returned by GetOrFetch when a memoized value's type does
// not match the requested type. It indicates the same key was used with two
// different types.
var ErrTypeMismatch = errors.New("runctx: memoized value type mismatch")

type contextKey struct{}

// Run holds the state of a single validation run.
type Run struct {
	id string

	mu    sync.Mutex
	cache map[string]*entry
}

// entry memoizes one fetch. Errors are memoized too: a run that saw a
// collaborator fail must not observe it succeed later.
type entry struct {
	once  sync.Once
	value any
	err   error
}

// New creates an empty Run with the given identifier.
func New(id string) *Run {
	return &Run{id: id, cache: make(map[string]*entry)}
}

// ID returns the run identifier.
func (r *Run) ID() string { return r.id }

// WithRun returns a copy of ctx carrying r.
func WithRun(ctx context.Context, r *Run) context.Context {
	return context.WithValue(ctx, contextKey{}, r)
}

// FromContext returns the Run carried by ctx, if any.
func FromContext(ctx context.Context) (*Run, bool) {
	r, ok := ctx.Value(contextKey{}).(*Run)
	return r, ok
}

// IDFromContext returns the identifier of the Run carried by ctx, or "" when
// ctx carries none.
func IDFromContext(ctx context.Context) string {
	if r, ok := FromContext(ctx); ok {
		return r.id
	}
	return ""
}

// GetOrFetch returns the memoized value for key in the Run carried by ctx, or
// calls fetchFn and memoizes its result. Concurrent callers for the same key
// wait for a single fetch.
//
// When ctx carries no Run, fetchFn is called directly.
func GetOrFetch[T any](ctx context.Context, key string, fetchFn func(ctx context.Context) (T, error)) (T, error) {
	r, ok := FromContext(ctx)
	if !ok {
		return fetchFn(ctx)
	}

	e := r.entry(key)
	e.once.Do(func() {
		e.value, e.err = fetchFn(ctx)
	})

	var zero T
	if e.err != nil {
		return zero, e.err
	}
	v, ok := e.value.(T)
	if !ok {
		return zero, fmt.Errorf("%w: key %q holds %T, requested %T", ErrTypeMismatch, key, e.value, zero)
	}
	return v, nil
}

func (r *Run) entry(key string) *entry {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.cache[key]
	if !ok {
		e = &entry{}
		r.cache[key] = e
	}
	return e
}
