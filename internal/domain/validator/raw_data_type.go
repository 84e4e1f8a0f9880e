package validator

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/jsamuelsen11/workitems/internal/domain/workitem"
)

// RawDataType checks that a Raw property holds well-formed base64 content.
// Empty values are accepted; requiredness is checked by Mandatory.
type RawDataType struct {
	property string
}

// NewRawDataType creates a RawDataType rule for the named property.
func NewRawDataType(property string) *RawDataType {
	return &RawDataType{property: property}
}

// Name implements Validator.
func (v *RawDataType) Name() string { return SourceRawDataType }

// Validate implements Validator.
func (v *RawDataType) Validate(_ context.Context, item *workitem.WorkItem, _ []workitem.PropertyChange) ([]workitem.ErrorMessage, error) {
	value := item.Value(v.property)
	if value == "" {
		return nil, nil
	}
	if _, err := base64.StdEncoding.DecodeString(value); err != nil {
		return []workitem.ErrorMessage{
			workitem.NewErrorMessage(item, v.property, SourceRawDataType, CodeInvalidRawValue,
				fmt.Sprintf("property %s does not contain valid raw content", v.property)),
		}, nil
	}
	return nil, nil
}
