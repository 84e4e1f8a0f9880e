package descriptor

// Validator is the configuration of a declarative rule attached to a
// property. The set of variants is open: implementations unknown to the
// validator factory are legal and compose to no validator.
type Validator interface {
	ValidatorKind() string
}

// Validator kinds understood by the descriptor loader.
const (
	ValidatorKindMandatory    = "Mandatory"
	ValidatorKindStringLength = "StringLength"
)

// Mandatory requires the property to carry a non-blank value.
type Mandatory struct{}

// ValidatorKind implements Validator.
func (Mandatory) ValidatorKind() string { return ValidatorKindMandatory }

// StringLength bounds the length of the property value in runes.
// A Max of zero means no upper bound.
type StringLength struct {
	Min int
	Max int
}

// ValidatorKind implements Validator.
func (StringLength) ValidatorKind() string { return ValidatorKindStringLength }

// UnknownValidator is produced when a schema document names a validator kind
// this build does not know. It is carried through unchanged so that schema
// authors can add variants ahead of validator support.
type UnknownValidator struct {
	Kind string
}

// ValidatorKind implements Validator.
func (u UnknownValidator) ValidatorKind() string { return u.Kind }
