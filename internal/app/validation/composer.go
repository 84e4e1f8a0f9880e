package validation

import (
	"context"
	"fmt"

	"github.com/jsamuelsen11/workitems/internal/app/runctx"
	"github.com/jsamuelsen11/workitems/internal/domain/descriptor"
	"github.com/jsamuelsen11/workitems/internal/domain/validator"
	"github.com/jsamuelsen11/workitems/internal/domain/valueprovider"
	"github.com/jsamuelsen11/workitems/internal/domain/workitem"
	"github.com/jsamuelsen11/workitems/internal/ports"
)

const descriptorsKey = "descriptors"

// Composer builds the validator list for a work item from its current
// property descriptors. It holds no per-run state and is safe for concurrent
// use.
type Composer struct {
	descriptors ports.DescriptorProvider
	resolver    ports.ValueResolver // nil keeps project-backed providers inert
}

// ComposerOption configures a Composer.
type ComposerOption func(*Composer)

// WithExternalValueProviders activates ProjectCollection, ProjectUser, and
// Relationship value providers, resolving them through r. Without it those
// providers compose to no validator.
func WithExternalValueProviders(r ports.ValueResolver) ComposerOption {
	return func(c *Composer) {
		c.resolver = r
	}
}

// NewComposer creates a Composer that looks descriptors up through d.
func NewComposer(d ports.DescriptorProvider, opts ...ComposerOption) *Composer {
	c := &Composer{descriptors: d}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compose returns the validators for item in its current state. The
// descriptors are resolved once per run; a lookup failure is returned
// wrapped and no validators are produced.
func (c *Composer) Compose(ctx context.Context, item *workitem.WorkItem, _ []workitem.PropertyChange) ([]validator.Validator, error) {
	props, err := runctx.GetOrFetch(ctx, descriptorsKey, func(ctx context.Context) ([]descriptor.Property, error) {
		return c.descriptors.CurrentPropertyDescriptors(ctx, item)
	})
	if err != nil {
		return nil, fmt.Errorf("resolving descriptors for %s %s/%s: %w",
			item.WorkItemType, item.ProjectCode, item.ID, err)
	}

	validators := []validator.Validator{validator.NewCompleteness(props)}
	for _, p := range props {
		validators = append(validators, c.forProperty(item, p)...)
	}
	return validators, nil
}

func (c *Composer) forProperty(item *workitem.WorkItem, p descriptor.Property) []validator.Validator {
	var out []validator.Validator

	if !p.IsEditable() {
		out = append(out, validator.NewImmutable(p))
	}
	if p.Kind() == descriptor.KindRaw {
		out = append(out, validator.NewRawDataType(p.Name()))
	}
	for _, vd := range p.Validators() {
		if v := fromValidatorDescriptor(p, vd); v != nil {
			out = append(out, v)
		}
	}
	if vp := p.ValueProvider(); vp != nil {
		if v := c.fromValueProvider(item, p, vp); v != nil {
			out = append(out, v)
		}
	}

	return out
}

// fromValidatorDescriptor maps a declared validator descriptor to its
// runtime validator. Unrecognized kinds compose to nothing.
func fromValidatorDescriptor(p descriptor.Property, vd descriptor.Validator) validator.Validator {
	switch d := vd.(type) {
	case descriptor.Mandatory:
		return validator.NewMandatory(p, d)
	case descriptor.StringLength:
		return validator.NewStringLength(p, d)
	default:
		return nil
	}
}

// fromValueProvider maps a value provider descriptor to a membership
// validator. Enum resolves locally; project-backed providers need the
// value-resolution collaborator; unrecognized kinds compose to nothing.
func (c *Composer) fromValueProvider(item *workitem.WorkItem, p descriptor.Property, vp descriptor.ValueProvider) validator.Validator {
	switch d := vp.(type) {
	case descriptor.Enum:
		return validator.NewValueProvider(p, valueprovider.NewEnum(d))
	case descriptor.ProjectCollection, descriptor.ProjectUser, descriptor.Relationship:
		if c.resolver == nil {
			return nil
		}
		ext := valueprovider.NewExternal(memoResolver{next: c.resolver}, item.ProjectCode, d)
		return validator.NewValueProvider(p, ext)
	default:
		return nil
	}
}
