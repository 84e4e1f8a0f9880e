package validator

import (
	"context"
	"fmt"

	"github.com/jsamuelsen11/workitems/internal/domain/descriptor"
	"github.com/jsamuelsen11/workitems/internal/domain/workitem"
)

// Immutable rejects changes that target a property whose descriptor is not
// editable. Pre-existing values are never reported.
type Immutable struct {
	property descriptor.Property
}

// NewImmutable creates an Immutable rule for the given property.
func NewImmutable(property descriptor.Property) *Immutable {
	return &Immutable{property: property}
}

// Name implements Validator.
func (v *Immutable) Name() string { return SourceImmutable }

// Validate implements Validator. Several changes to the same property still
// yield a single finding.
func (v *Immutable) Validate(_ context.Context, item *workitem.WorkItem, changes []workitem.PropertyChange) ([]workitem.ErrorMessage, error) {
	if !workitem.Targets(changes, v.property.Name()) {
		return nil, nil
	}
	return []workitem.ErrorMessage{
		workitem.NewErrorMessage(item, v.property.Name(), SourceImmutable, CodePropertyImmutable,
			fmt.Sprintf("property %s is not editable", v.property.Label())),
	}, nil
}
