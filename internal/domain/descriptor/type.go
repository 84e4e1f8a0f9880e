package descriptor

import (
	"fmt"
	"strings"

	"github.com/jsamuelsen11/workitems/internal/domain"
	"github.com/jsamuelsen11/workitems/internal/domain/workitem"
)

// Type describes a work item type: its base property descriptors and the
// workflow stages that adjust them depending on the work item's state.
type Type struct {
	name       string
	properties []Property
	stages     []Stage
}

// NewType creates a work item type descriptor. The name must be non-blank,
// property names must be unique, and every stage override must reference a
// declared property.
func NewType(name string, properties []Property, stages []Stage) (*Type, error) {
	fields := make(map[string]string)
	if strings.TrimSpace(name) == "" {
		fields["name"] = domain.MsgRequired
	}

	seen := make(map[string]bool, len(properties))
	for _, p := range properties {
		if seen[p.Name()] {
			fields["properties."+p.Name()] = "is declared more than once"
		}
		seen[p.Name()] = true
	}
	for _, s := range stages {
		for _, o := range s.Overrides {
			if !seen[o.Property] {
				fields["stages."+s.Name+"."+o.Property] = "references an undeclared property"
			}
		}
	}

	if len(fields) > 0 {
		return nil, &domain.SchemaError{Subject: fmt.Sprintf("work item type %q", name), Fields: fields}
	}

	props := make([]Property, len(properties))
	copy(props, properties)
	st := make([]Stage, len(stages))
	copy(st, stages)

	return &Type{name: name, properties: props, stages: st}, nil
}

// Name returns the work item type name.
func (t *Type) Name() string { return t.name }

// Properties returns the base property descriptors in declaration order.
func (t *Type) Properties() []Property {
	out := make([]Property, len(t.properties))
	copy(out, t.properties)
	return out
}

// CurrentProperties returns the property descriptors that apply to item in
// its current state. Every stage whose condition matches is applied in
// declaration order, so later stages win on conflicting flags. The order of
// the returned descriptors always follows the base declaration order.
func (t *Type) CurrentProperties(item *workitem.WorkItem) []Property {
	out := t.Properties()
	index := make(map[string]int, len(out))
	for i, p := range out {
		index[p.Name()] = i
	}

	for _, s := range t.stages {
		if !s.Applies(item) {
			continue
		}
		for _, o := range s.Overrides {
			i, ok := index[o.Property]
			if !ok {
				continue
			}
			out[i] = out[i].WithOverrides(o)
		}
	}
	return out
}

// NewWorkItem creates a work item of this type with every property set to
// its initial value.
func (t *Type) NewWorkItem(projectCode, id string) *workitem.WorkItem {
	item := &workitem.WorkItem{
		ProjectCode:  projectCode,
		ID:           id,
		WorkItemType: t.name,
		Properties:   make([]workitem.Property, 0, len(t.properties)),
	}
	for _, p := range t.properties {
		item.Properties = append(item.Properties, workitem.Property{
			Name:     p.Name(),
			DataType: p.DataType(),
			Value:    p.InitialValue(),
		})
	}
	return item
}
