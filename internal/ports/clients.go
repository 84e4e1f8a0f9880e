package ports

import (
	"context"

	"github.com/jsamuelsen11/workitems/internal/domain/descriptor"
	"github.com/jsamuelsen11/workitems/internal/domain/workitem"
)

// DescriptorProvider is the descriptor-lookup collaborator. Implemented by the
// descriptor registry adapter; called by the validation composer and the work
// item service. Lookups are read-only and repeatable: the same item yields the
// same descriptors.
type DescriptorProvider interface {
	// CurrentPropertyDescriptors returns the property descriptors that apply
	// to item in its current state, in declaration order.
	// Returns domain.ErrDescriptorNotFound if the item's work item type is
	// not known.
	CurrentPropertyDescriptors(ctx context.Context, item *workitem.WorkItem) ([]descriptor.Property, error)

	// WorkItemType returns the descriptor of the named work item type.
	// Returns domain.ErrDescriptorNotFound if the type is not known.
	WorkItemType(ctx context.Context, name string) (*descriptor.Type, error)
}

// ValueResolver is the value-resolution collaborator for value providers that
// are backed by project data (collections, users, relationships). Implemented
// by the value-resolution API client.
type ValueResolver interface {
	// IsAllowed reports whether value is a member of the set of values the
	// provider currently allows within the given project.
	// Returns domain.ErrUnavailable if the backing service cannot answer.
	IsAllowed(ctx context.Context, projectCode string, provider descriptor.ValueProvider, value string) (bool, error)
}
