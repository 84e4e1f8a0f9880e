package descriptor

// Kind classifies how a property stores its value.
type Kind string

const (
	KindSingleRaw                 Kind = "SingleRaw"
	KindSingleValueFromProvider   Kind = "SingleValueFromProvider"
	KindMultipleValueFromProvider Kind = "MultipleValueFromProvider"
	KindRaw                       Kind = "Raw"
)

// IsValid returns true if the kind is one of the defined constants.
func (k Kind) IsValid() bool {
	switch k {
	case KindSingleRaw, KindSingleValueFromProvider, KindMultipleValueFromProvider, KindRaw:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	return string(k)
}
