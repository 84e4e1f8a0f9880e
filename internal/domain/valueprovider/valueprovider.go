// Package valueprovider resolves the set of allowed values for a property.
// Enum providers resolve locally from their literal list; external providers
// delegate membership checks to a value-resolution collaborator.
package valueprovider

import (
	"context"
	"fmt"
	"strings"

	"github.com/jsamuelsen11/workitems/internal/domain/descriptor"
)

// Provider answers whether a candidate value is currently allowed.
type Provider interface {
	ValueExists(ctx context.Context, value string) (bool, error)
}

// Enum is a Provider backed by the literal list of an Enum descriptor.
type Enum struct {
	values []descriptor.EnumValue
}

// NewEnum creates an Enum provider from the descriptor's values.
func NewEnum(d descriptor.Enum) *Enum {
	return &Enum{values: d.Values()}
}

// ValueExists reports whether value is one of the enum's literal values.
// Matching is exact; display texts are not considered.
func (e *Enum) ValueExists(_ context.Context, value string) (bool, error) {
	for _, v := range e.values {
		if v.Value == value {
			return true, nil
		}
	}
	return false, nil
}

// AllValues returns every allowed value in declaration order.
func (e *Enum) AllValues() []descriptor.EnumValue {
	out := make([]descriptor.EnumValue, len(e.values))
	copy(out, e.values)
	return out
}

// Suggestions returns the allowed values whose value or display text contains
// query, case-insensitively, in declaration order. An empty query returns all
// values.
func (e *Enum) Suggestions(query string) []descriptor.EnumValue {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return e.AllValues()
	}

	var out []descriptor.EnumValue
	for _, v := range e.values {
		if strings.Contains(strings.ToLower(v.Value), q) || strings.Contains(strings.ToLower(v.DisplayText), q) {
			out = append(out, v)
		}
	}
	return out
}

// Resolver is the value-resolution collaborator consulted for providers that
// depend on external project state.
type Resolver interface {
	IsAllowed(ctx context.Context, projectCode string, provider descriptor.ValueProvider, value string) (bool, error)
}

// External is a Provider that delegates to a Resolver within one project.
type External struct {
	resolver    Resolver
	projectCode string
	descriptor  descriptor.ValueProvider
}

// NewExternal creates a Provider that resolves membership for d in the given
// project through resolver.
func NewExternal(resolver Resolver, projectCode string, d descriptor.ValueProvider) *External {
	return &External{resolver: resolver, projectCode: projectCode, descriptor: d}
}

// ValueExists asks the resolver whether value is allowed. Resolver failures
// are returned as errors, not as a negative answer.
func (e *External) ValueExists(ctx context.Context, value string) (bool, error) {
	ok, err := e.resolver.IsAllowed(ctx, e.projectCode, e.descriptor, value)
	if err != nil {
		return false, fmt.Errorf("resolving %s value %q: %w", e.descriptor.ValueProviderKind(), value, err)
	}
	return ok, nil
}
