package ports

import (
	"context"

	"github.com/jsamuelsen11/workitems/internal/domain/workitem"
)

// Validator defines the service port for validating a work item. Implemented
// by the validation manager.
type Validator interface {
	// Validate runs every rule that applies to item in its current state and
	// returns the findings in composition order. An empty slice means the item
	// is valid. changes are the property changes applied in this run; item
	// must already reflect them.
	//
	// A non-nil error is a structural failure (descriptor lookup failed, a
	// collaborator was unreachable, ctx was canceled); no partial report is
	// returned with it.
	Validate(ctx context.Context, item *workitem.WorkItem, changes []workitem.PropertyChange) ([]workitem.ErrorMessage, error)
}

// WorkItemService defines the service port for work item operations.
// Implemented by the application layer.
type WorkItemService interface {
	// NewTemplate returns a new, unsaved work item of the given type with
	// every declared property set to its initial value.
	// Returns domain.ErrDescriptorNotFound if the type is not known.
	NewTemplate(ctx context.Context, projectCode, workItemType string) (*workitem.WorkItem, error)

	// ApplyChanges applies the requested property values to a copy of item
	// and validates the result. The input item is never modified. Findings
	// are reported in ApplyResult; the returned error is reserved for
	// structural failures.
	ApplyChanges(ctx context.Context, item *workitem.WorkItem, properties []workitem.Property) (*ApplyResult, error)
}

// ApplyResult holds the outcome of applying property changes to a work item.
// WorkItem is the post-change copy; it is returned even when validation
// fails so callers can show the user what they attempted.
type ApplyResult struct {
	Success  bool
	WorkItem *workitem.WorkItem
	Changes  []workitem.PropertyChange
	Errors   []workitem.ErrorMessage
}
