// Package descriptors implements the descriptor provider port over an
// in-memory registry of work item types loaded from YAML documents.
package descriptors

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/jsamuelsen11/workitems/internal/domain"
	"github.com/jsamuelsen11/workitems/internal/domain/descriptor"
	"github.com/jsamuelsen11/workitems/internal/domain/workitem"
	"github.com/jsamuelsen11/workitems/internal/ports"
)

// Compile-time interface compliance checks.
var (
	_ ports.DescriptorProvider = (*Registry)(nil)
	_ ports.HealthChecker      = (*Registry)(nil)
)

// errEmptyRegistry is reported by HealthCheck when no types are registered.
var errEmptyRegistry = errors.New("no work item types registered")

// Registry is an immutable set of work item type descriptors keyed by name.
// It is safe for concurrent use.
type Registry struct {
	types map[string]*descriptor.Type
}

// NewRegistry creates a Registry from the given types. Type names must be
// unique.
func NewRegistry(types ...*descriptor.Type) (*Registry, error) {
	r := &Registry{types: make(map[string]*descriptor.Type, len(types))}
	for _, t := range types {
		if _, ok := r.types[t.Name()]; ok {
			return nil, &domain.SchemaError{
				Subject: fmt.Sprintf("work item type %q", t.Name()),
				Fields:  map[string]string{"name": "is declared more than once"},
			}
		}
		r.types[t.Name()] = t
	}
	return r, nil
}

// WorkItemType returns the named type. Unknown names return an error wrapping
// domain.ErrDescriptorNotFound.
func (r *Registry) WorkItemType(_ context.Context, name string) (*descriptor.Type, error) {
	t, ok := r.types[name]
	if !ok {
		return nil, fmt.Errorf("work item type %q: %w", name, domain.ErrDescriptorNotFound)
	}
	return t, nil
}

// CurrentPropertyDescriptors returns the descriptors of item's type with the
// overrides of every applicable stage layered on.
func (r *Registry) CurrentPropertyDescriptors(ctx context.Context, item *workitem.WorkItem) ([]descriptor.Property, error) {
	t, err := r.WorkItemType(ctx, item.WorkItemType)
	if err != nil {
		return nil, err
	}
	return t.CurrentProperties(item), nil
}

// Names returns the registered type names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.types))
	for name := range r.types {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Name implements ports.HealthChecker.
func (r *Registry) Name() string { return "descriptors" }

// HealthCheck reports an error when the registry is empty, which usually
// means the descriptor directory was misconfigured.
func (r *Registry) HealthCheck(_ context.Context) error {
	if len(r.types) == 0 {
		return errEmptyRegistry
	}
	return nil
}
