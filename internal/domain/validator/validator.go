// Package validator is the catalog of validation rules. Each validator is a
// self-contained rule bound to one property descriptor, or to the whole work
// item for entity-level rules. Validators are created fresh for every
// validation run and never mutate the work item or the descriptors.
package validator

import (
	"context"

	"github.com/jsamuelsen11/workitems/internal/domain/workitem"
)

// Finding sources, reported in workitem.ErrorMessage.Source.
const (
	SourceCompleteness  = "Completeness"
	SourceImmutable     = "Immutable"
	SourceRawDataType   = "RawDataType"
	SourceMandatory     = "Mandatory"
	SourceStringLength  = "StringLength"
	SourceValueProvider = "ValueProviderValidator"
)

// Machine-readable error codes, reported in workitem.ErrorMessage.ErrorCode.
// Value provider findings carry an empty code.
const (
	CodePropertyMissing   = "PropertyMissing"
	CodePropertyImmutable = "PropertyImmutable"
	CodeInvalidRawValue   = "InvalidRawValue"
	CodePropertyRequired  = "PropertyRequired"
	CodeStringTooShort    = "StringTooShort"
	CodeStringTooLong     = "StringTooLong"
)

// Validator is a configured, ready-to-run rule.
//
// Validate returns the findings for item. changes holds the property changes
// applied in this run so that a rule can tell this run's edits apart from
// pre-existing state. A non-nil error is a structural failure (for example an
// unreachable value-resolution collaborator), never a finding.
type Validator interface {
	Name() string
	Validate(ctx context.Context, item *workitem.WorkItem, changes []workitem.PropertyChange) ([]workitem.ErrorMessage, error)
}
