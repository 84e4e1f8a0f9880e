package validator

import (
	"context"
	"fmt"

	"github.com/jsamuelsen11/workitems/internal/domain/descriptor"
	"github.com/jsamuelsen11/workitems/internal/domain/workitem"
)

// Mandatory rejects a blank value, whether or not the property changed in
// this run. An absent visible property is left to Completeness; an absent
// hidden one counts as blank.
type Mandatory struct {
	property descriptor.Property
}

// NewMandatory creates a Mandatory rule for the given property.
func NewMandatory(property descriptor.Property, _ descriptor.Mandatory) *Mandatory {
	return &Mandatory{property: property}
}

// Name implements Validator.
func (v *Mandatory) Name() string { return SourceMandatory }

// Validate implements Validator.
func (v *Mandatory) Validate(_ context.Context, item *workitem.WorkItem, _ []workitem.PropertyChange) ([]workitem.ErrorMessage, error) {
	if item.HasValue(v.property.Name()) {
		return nil, nil
	}
	if _, ok := item.Property(v.property.Name()); !ok && v.property.IsVisible() {
		return nil, nil
	}
	return []workitem.ErrorMessage{
		workitem.NewErrorMessage(item, v.property.Name(), SourceMandatory, CodePropertyRequired,
			fmt.Sprintf("property %s must have a value", v.property.Label())),
	}, nil
}
