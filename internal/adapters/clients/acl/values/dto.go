// Package values implements the Anti-Corruption Layer translators for the
// downstream value API's membership checks.
package values

// ProviderDTO matches the downstream ValueProvider schema. Only the fields of
// the named kind are sent.
type ProviderDTO struct {
	Kind               string `json:"kind"`
	WorkItemType       string `json:"work_item_type,omitempty"`
	Relationship       string `json:"relationship,omitempty"`
	TargetWorkItemType string `json:"target_work_item_type,omitempty"`
}

// CheckRequestDTO matches the downstream CheckValueRequest schema.
type CheckRequestDTO struct {
	Provider ProviderDTO `json:"provider"`
	Value    string      `json:"value"`
}

// CheckResponseDTO matches the downstream CheckValueResponse schema.
type CheckResponseDTO struct {
	Allowed bool `json:"allowed"`
}
