package validator

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/jsamuelsen11/workitems/internal/domain/descriptor"
	"github.com/jsamuelsen11/workitems/internal/domain/workitem"
)

// StringLength rejects a value whose length in runes falls outside the
// configured bounds. Empty values are accepted; requiredness is checked by
// Mandatory.
type StringLength struct {
	property descriptor.Property
	min      int
	max      int
}

// NewStringLength creates a StringLength rule for the given property.
func NewStringLength(property descriptor.Property, d descriptor.StringLength) *StringLength {
	return &StringLength{property: property, min: d.Min, max: d.Max}
}

// Name implements Validator.
func (v *StringLength) Name() string { return SourceStringLength }

// Validate implements Validator.
func (v *StringLength) Validate(_ context.Context, item *workitem.WorkItem, _ []workitem.PropertyChange) ([]workitem.ErrorMessage, error) {
	value := item.Value(v.property.Name())
	if value == "" {
		return nil, nil
	}

	n := utf8.RuneCountInString(value)
	switch {
	case n < v.min:
		return []workitem.ErrorMessage{
			workitem.NewErrorMessage(item, v.property.Name(), SourceStringLength, CodeStringTooShort,
				fmt.Sprintf("property %s must be at least %d characters, got %d", v.property.Label(), v.min, n)),
		}, nil
	case v.max > 0 && n > v.max:
		return []workitem.ErrorMessage{
			workitem.NewErrorMessage(item, v.property.Name(), SourceStringLength, CodeStringTooLong,
				fmt.Sprintf("property %s must be at most %d characters, got %d", v.property.Label(), v.max, n)),
		}, nil
	default:
		return nil, nil
	}
}
