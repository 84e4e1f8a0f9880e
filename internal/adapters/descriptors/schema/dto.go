// Package schema implements the translators between the YAML descriptor
// documents and the domain descriptor model.
package schema

// TypeDTO matches one work item type document.
type TypeDTO struct {
	Name       string        `yaml:"name"`
	Properties []PropertyDTO `yaml:"properties"`
	Stages     []StageDTO    `yaml:"stages"`
}

// PropertyDTO matches a property descriptor. Visible and Editable default to
// true when omitted.
type PropertyDTO struct {
	Name          string            `yaml:"name"`
	DataType      string            `yaml:"data_type"`
	Label         string            `yaml:"label"`
	Hint          string            `yaml:"hint"`
	Description   string            `yaml:"description"`
	Kind          string            `yaml:"kind"`
	Visible       *bool             `yaml:"visible"`
	Editable      *bool             `yaml:"editable"`
	InitialValue  string            `yaml:"initial_value"`
	Validators    []ValidatorDTO    `yaml:"validators"`
	ValueProvider *ValueProviderDTO `yaml:"value_provider"`
}

// ValidatorDTO matches a validator descriptor. Only the fields of the named
// kind are read.
type ValidatorDTO struct {
	Kind string `yaml:"kind"`
	Min  int    `yaml:"min"`
	Max  int    `yaml:"max"`
}

// ValueProviderDTO matches a value provider descriptor. Only the fields of
// the named kind are read.
type ValueProviderDTO struct {
	Kind               string         `yaml:"kind"`
	Values             []EnumValueDTO `yaml:"values"`
	WorkItemType       string         `yaml:"work_item_type"`
	Relationship       string         `yaml:"relationship"`
	TargetWorkItemType string         `yaml:"target_work_item_type"`
}

// EnumValueDTO matches one enum entry. DisplayText defaults to Value.
type EnumValueDTO struct {
	Value       string `yaml:"value"`
	DisplayText string `yaml:"display_text"`
}

// StageDTO matches a workflow stage.
type StageDTO struct {
	Name       string             `yaml:"name"`
	When       *ConditionDTO      `yaml:"when"`
	Properties []StagePropertyDTO `yaml:"properties"`
}

// StagePropertyDTO matches a per-stage property override.
type StagePropertyDTO struct {
	Name       string         `yaml:"name"`
	Visible    *bool          `yaml:"visible"`
	Editable   *bool          `yaml:"editable"`
	Validators []ValidatorDTO `yaml:"validators"`
}

// ConditionDTO matches a stage condition. Exactly one form must be set:
// property/equals, all, any, or not.
type ConditionDTO struct {
	Property string         `yaml:"property"`
	Equals   string         `yaml:"equals"`
	All      []ConditionDTO `yaml:"all"`
	Any      []ConditionDTO `yaml:"any"`
	Not      *ConditionDTO  `yaml:"not"`
}
