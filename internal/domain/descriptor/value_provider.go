package descriptor

// ValueProvider is the configuration of a source of allowed values for a
// property. Like Validator, the set of variants is open.
type ValueProvider interface {
	ValueProviderKind() string
}

// Value provider kinds understood by the descriptor loader.
const (
	ValueProviderKindEnum              = "Enum"
	ValueProviderKindProjectCollection = "ProjectCollection"
	ValueProviderKindProjectUser       = "ProjectUser"
	ValueProviderKindRelationship      = "Relationship"
)

// EnumValue is one allowed value and its display text.
type EnumValue struct {
	Value       string
	DisplayText string
}

// Enum is a closed list of allowed values. Enum descriptors are shared by
// every run through the registry, so the list is only reachable by copy.
type Enum struct {
	values []EnumValue
}

// NewEnum creates an Enum descriptor from the given values, in order.
func NewEnum(values ...EnumValue) Enum {
	v := make([]EnumValue, len(values))
	copy(v, values)
	return Enum{values: v}
}

// Values returns a copy of the allowed values in declaration order.
func (e Enum) Values() []EnumValue {
	out := make([]EnumValue, len(e.values))
	copy(out, e.values)
	return out
}

// ValueProviderKind implements ValueProvider.
func (Enum) ValueProviderKind() string { return ValueProviderKindEnum }

// ProjectCollection allows the identifiers of work items of a type within the
// same project.
type ProjectCollection struct {
	WorkItemType string
}

// ValueProviderKind implements ValueProvider.
func (ProjectCollection) ValueProviderKind() string { return ValueProviderKindProjectCollection }

// ProjectUser allows the users that are members of the project.
type ProjectUser struct{}

// ValueProviderKind implements ValueProvider.
func (ProjectUser) ValueProviderKind() string { return ValueProviderKindProjectUser }

// Relationship allows work items reachable through a named relationship.
type Relationship struct {
	Relationship       string
	TargetWorkItemType string
}

// ValueProviderKind implements ValueProvider.
func (Relationship) ValueProviderKind() string { return ValueProviderKindRelationship }

// UnknownValueProvider is produced when a schema document names a value
// provider kind this build does not know.
type UnknownValueProvider struct {
	Kind string
}

// ValueProviderKind implements ValueProvider.
func (u UnknownValueProvider) ValueProviderKind() string { return u.Kind }
