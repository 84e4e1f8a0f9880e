// Package descriptor contains the immutable schema objects that describe a work
// item type: its properties, their declarative validators, and their value
// providers. Descriptors are created once when a schema is loaded and shared
// read-only by every validation run.
package descriptor

import (
	"fmt"
	"strings"

	"github.com/jsamuelsen11/workitems/internal/domain"
)

// Property describes one field of a work item type. All fields are
// unexported; use the accessors. Slices are copied on construction and on
// read so a Property can be shared between goroutines.
type Property struct {
	name          string
	label         string
	hint          string
	description   string
	dataType      string
	kind          Kind
	visible       bool
	editable      bool
	initialValue  string
	validators    []Validator
	valueProvider ValueProvider
}

// PropertyOption configures optional attributes of a Property.
type PropertyOption func(*Property)

// WithLabel sets the display label. Defaults to the property name.
func WithLabel(label string) PropertyOption {
	return func(p *Property) { p.label = label }
}

// WithHint sets the short input hint.
func WithHint(hint string) PropertyOption {
	return func(p *Property) { p.hint = hint }
}

// WithDescription sets the long-form description.
func WithDescription(description string) PropertyOption {
	return func(p *Property) { p.description = description }
}

// WithKind sets the property kind. Defaults to KindSingleRaw.
func WithKind(kind Kind) PropertyOption {
	return func(p *Property) { p.kind = kind }
}

// Hidden marks the property as not visible.
func Hidden() PropertyOption {
	return func(p *Property) { p.visible = false }
}

// ReadOnly marks the property as not editable.
func ReadOnly() PropertyOption {
	return func(p *Property) { p.editable = false }
}

// WithInitialValue sets the value used when a new work item is created.
func WithInitialValue(value string) PropertyOption {
	return func(p *Property) { p.initialValue = value }
}

// WithValidators appends declarative validator descriptors, in order.
func WithValidators(validators ...Validator) PropertyOption {
	return func(p *Property) { p.validators = append(p.validators, validators...) }
}

// WithValueProvider sets the provider of allowed values.
func WithValueProvider(provider ValueProvider) PropertyOption {
	return func(p *Property) { p.valueProvider = provider }
}

// NewProperty creates a property descriptor. Name and data type are mandatory;
// a blank value for either returns a *domain.SchemaError wrapping
// domain.ErrInvalidDescriptor.
func NewProperty(name, dataType string, opts ...PropertyOption) (Property, error) {
	fields := make(map[string]string)
	if strings.TrimSpace(name) == "" {
		fields["name"] = domain.MsgRequired
	}
	if strings.TrimSpace(dataType) == "" {
		fields["data_type"] = domain.MsgRequired
	}
	if len(fields) > 0 {
		return Property{}, &domain.SchemaError{Subject: fmt.Sprintf("property %q", name), Fields: fields}
	}

	p := Property{
		name:     name,
		dataType: dataType,
		kind:     KindSingleRaw,
		visible:  true,
		editable: true,
	}
	for _, opt := range opts {
		opt(&p)
	}
	if p.label == "" {
		p.label = name
	}
	if !p.kind.IsValid() {
		return Property{}, &domain.SchemaError{
			Subject: fmt.Sprintf("property %q", name),
			Fields:  map[string]string{"kind": fmt.Sprintf("invalid: %q", p.kind)},
		}
	}
	p.validators = cloneValidators(p.validators)
	return p, nil
}

// MustNewProperty is like NewProperty but panics on error. Intended for
// statically declared schemas and tests.
func MustNewProperty(name, dataType string, opts ...PropertyOption) Property {
	p, err := NewProperty(name, dataType, opts...)
	if err != nil {
		panic(err)
	}
	return p
}

func (p Property) Name() string                 { return p.name }
func (p Property) Label() string                { return p.label }
func (p Property) Hint() string                 { return p.hint }
func (p Property) Description() string          { return p.description }
func (p Property) DataType() string             { return p.dataType }
func (p Property) Kind() Kind                   { return p.kind }
func (p Property) IsVisible() bool              { return p.visible }
func (p Property) IsEditable() bool             { return p.editable }
func (p Property) InitialValue() string         { return p.initialValue }
func (p Property) ValueProvider() ValueProvider { return p.valueProvider }

// Validators returns a copy of the declared validator descriptors in order.
func (p Property) Validators() []Validator {
	return cloneValidators(p.validators)
}

// WithOverrides returns a copy of p with the stage override applied.
// Stage validators are appended after the property's own validators.
func (p Property) WithOverrides(o StageProperty) Property {
	next := p
	if o.Visible != nil {
		next.visible = *o.Visible
	}
	if o.Editable != nil {
		next.editable = *o.Editable
	}
	next.validators = append(cloneValidators(p.validators), o.Validators...)
	return next
}

func cloneValidators(in []Validator) []Validator {
	if len(in) == 0 {
		return nil
	}
	out := make([]Validator, len(in))
	copy(out, in)
	return out
}
