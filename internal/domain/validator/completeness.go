package validator

import (
	"context"
	"fmt"

	"github.com/jsamuelsen11/workitems/internal/domain/descriptor"
	"github.com/jsamuelsen11/workitems/internal/domain/workitem"
)

// Completeness is the entity-level rule: every visible property that is
// required by its current descriptor must be present on the work item.
//
// It is evaluated for every property, changed or not, because visibility and
// requiredness can depend on other property values. A present but blank value
// is reported by Mandatory instead, so each property yields at most one
// requiredness finding.
type Completeness struct {
	properties []descriptor.Property
}

// NewCompleteness creates a Completeness rule seeded with the work item's
// current property descriptors.
func NewCompleteness(properties []descriptor.Property) *Completeness {
	return &Completeness{properties: properties}
}

// Name implements Validator.
func (v *Completeness) Name() string { return SourceCompleteness }

// Validate implements Validator.
func (v *Completeness) Validate(_ context.Context, item *workitem.WorkItem, _ []workitem.PropertyChange) ([]workitem.ErrorMessage, error) {
	var findings []workitem.ErrorMessage
	for _, p := range v.properties {
		if !p.IsVisible() || !isRequired(p) {
			continue
		}
		if _, ok := item.Property(p.Name()); ok {
			continue
		}
		findings = append(findings, workitem.NewErrorMessage(item, p.Name(), SourceCompleteness, CodePropertyMissing,
			fmt.Sprintf("property %s is required but missing", p.Label())))
	}
	return findings, nil
}

func isRequired(p descriptor.Property) bool {
	for _, vd := range p.Validators() {
		if _, ok := vd.(descriptor.Mandatory); ok {
			return true
		}
	}
	return false
}
