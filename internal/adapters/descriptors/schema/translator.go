package schema

import (
	"fmt"

	"github.com/jsamuelsen11/workitems/internal/domain"
	"github.com/jsamuelsen11/workitems/internal/domain/descriptor"
)

// ToDomainType converts a TypeDTO to a validated work item type descriptor.
// Validator and value provider kinds this build does not know are carried as
// descriptor.UnknownValidator and descriptor.UnknownValueProvider.
func ToDomainType(dto *TypeDTO) (*descriptor.Type, error) {
	props := make([]descriptor.Property, 0, len(dto.Properties))
	for i := range dto.Properties {
		p, err := ToDomainProperty(&dto.Properties[i])
		if err != nil {
			return nil, fmt.Errorf("work item type %q: %w", dto.Name, err)
		}
		props = append(props, p)
	}

	stages := make([]descriptor.Stage, 0, len(dto.Stages))
	for i := range dto.Stages {
		s, err := ToDomainStage(&dto.Stages[i])
		if err != nil {
			return nil, fmt.Errorf("work item type %q: %w", dto.Name, err)
		}
		stages = append(stages, s)
	}

	return descriptor.NewType(dto.Name, props, stages)
}

// ToDomainProperty converts a PropertyDTO to a property descriptor. An empty
// kind means SingleRaw.
func ToDomainProperty(dto *PropertyDTO) (descriptor.Property, error) {
	opts := []descriptor.PropertyOption{
		descriptor.WithLabel(dto.Label),
		descriptor.WithHint(dto.Hint),
		descriptor.WithDescription(dto.Description),
		descriptor.WithInitialValue(dto.InitialValue),
	}
	if dto.Kind != "" {
		opts = append(opts, descriptor.WithKind(descriptor.Kind(dto.Kind)))
	}
	if dto.Visible != nil && !*dto.Visible {
		opts = append(opts, descriptor.Hidden())
	}
	if dto.Editable != nil && !*dto.Editable {
		opts = append(opts, descriptor.ReadOnly())
	}

	validators, err := toDomainValidators(fmt.Sprintf("property %q", dto.Name), dto.Validators)
	if err != nil {
		return descriptor.Property{}, err
	}
	if len(validators) > 0 {
		opts = append(opts, descriptor.WithValidators(validators...))
	}

	if dto.ValueProvider != nil {
		vp, err := ToDomainValueProvider(fmt.Sprintf("property %q", dto.Name), dto.ValueProvider)
		if err != nil {
			return descriptor.Property{}, err
		}
		opts = append(opts, descriptor.WithValueProvider(vp))
	}

	return descriptor.NewProperty(dto.Name, dto.DataType, opts...)
}

// ToDomainValidator converts a ValidatorDTO to a validator descriptor.
// subject names the owning property in error messages.
func ToDomainValidator(subject string, dto ValidatorDTO) (descriptor.Validator, error) {
	switch dto.Kind {
	case "":
		return nil, schemaError(subject, "validators.kind", domain.MsgRequired)
	case descriptor.ValidatorKindMandatory:
		return descriptor.Mandatory{}, nil
	case descriptor.ValidatorKindStringLength:
		if dto.Min < 0 || dto.Max < 0 {
			return nil, schemaError(subject, "validators.StringLength", "bounds must not be negative")
		}
		if dto.Max > 0 && dto.Max < dto.Min {
			return nil, schemaError(subject, "validators.StringLength", "max must not be less than min")
		}
		return descriptor.StringLength{Min: dto.Min, Max: dto.Max}, nil
	default:
		return descriptor.UnknownValidator{Kind: dto.Kind}, nil
	}
}

// ToDomainValueProvider converts a ValueProviderDTO to a value provider
// descriptor. subject names the owning property in error messages.
func ToDomainValueProvider(subject string, dto *ValueProviderDTO) (descriptor.ValueProvider, error) {
	switch dto.Kind {
	case "":
		return nil, schemaError(subject, "value_provider.kind", domain.MsgRequired)
	case descriptor.ValueProviderKindEnum:
		if len(dto.Values) == 0 {
			return nil, schemaError(subject, "value_provider.values", domain.MsgRequired)
		}
		values := make([]descriptor.EnumValue, len(dto.Values))
		for i, v := range dto.Values {
			display := v.DisplayText
			if display == "" {
				display = v.Value
			}
			values[i] = descriptor.EnumValue{Value: v.Value, DisplayText: display}
		}
		return descriptor.NewEnum(values...), nil
	case descriptor.ValueProviderKindProjectCollection:
		if dto.WorkItemType == "" {
			return nil, schemaError(subject, "value_provider.work_item_type", domain.MsgRequired)
		}
		return descriptor.ProjectCollection{WorkItemType: dto.WorkItemType}, nil
	case descriptor.ValueProviderKindProjectUser:
		return descriptor.ProjectUser{}, nil
	case descriptor.ValueProviderKindRelationship:
		if dto.Relationship == "" {
			return nil, schemaError(subject, "value_provider.relationship", domain.MsgRequired)
		}
		return descriptor.Relationship{
			Relationship:       dto.Relationship,
			TargetWorkItemType: dto.TargetWorkItemType,
		}, nil
	default:
		return descriptor.UnknownValueProvider{Kind: dto.Kind}, nil
	}
}

// ToDomainStage converts a StageDTO to a workflow stage. A stage without a
// when clause always applies.
func ToDomainStage(dto *StageDTO) (descriptor.Stage, error) {
	subject := fmt.Sprintf("stage %q", dto.Name)

	var cond descriptor.Condition
	if dto.When != nil {
		c, err := ToDomainCondition(subject, dto.When)
		if err != nil {
			return descriptor.Stage{}, err
		}
		cond = c
	}

	overrides := make([]descriptor.StageProperty, 0, len(dto.Properties))
	for _, p := range dto.Properties {
		validators, err := toDomainValidators(fmt.Sprintf("%s property %q", subject, p.Name), p.Validators)
		if err != nil {
			return descriptor.Stage{}, err
		}
		overrides = append(overrides, descriptor.StageProperty{
			Property:   p.Name,
			Visible:    p.Visible,
			Editable:   p.Editable,
			Validators: validators,
		})
	}

	return descriptor.Stage{Name: dto.Name, Condition: cond, Overrides: overrides}, nil
}

// ToDomainCondition converts a ConditionDTO to a stage condition.
func ToDomainCondition(subject string, dto *ConditionDTO) (descriptor.Condition, error) {
	forms := 0
	if dto.Property != "" {
		forms++
	}
	if dto.All != nil {
		forms++
	}
	if dto.Any != nil {
		forms++
	}
	if dto.Not != nil {
		forms++
	}
	if forms != 1 {
		return nil, schemaError(subject, "when", "must set exactly one of property, all, any, not")
	}

	switch {
	case dto.Property != "":
		return descriptor.PropertyValueCondition{Property: dto.Property, Value: dto.Equals}, nil
	case dto.Not != nil:
		inner, err := ToDomainCondition(subject, dto.Not)
		if err != nil {
			return nil, err
		}
		return descriptor.NotCondition{Condition: inner}, nil
	}

	nested := dto.All
	if dto.Any != nil {
		nested = dto.Any
	}
	conds := make([]descriptor.Condition, 0, len(nested))
	for i := range nested {
		c, err := ToDomainCondition(subject, &nested[i])
		if err != nil {
			return nil, err
		}
		conds = append(conds, c)
	}
	if dto.Any != nil {
		return descriptor.AnyCondition{Conditions: conds}, nil
	}
	return descriptor.AllCondition{Conditions: conds}, nil
}

func toDomainValidators(subject string, dtos []ValidatorDTO) ([]descriptor.Validator, error) {
	out := make([]descriptor.Validator, 0, len(dtos))
	for _, v := range dtos {
		d, err := ToDomainValidator(subject, v)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

func schemaError(subject, field, msg string) error {
	return &domain.SchemaError{Subject: subject, Fields: map[string]string{field: msg}}
}
