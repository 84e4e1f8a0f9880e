package values

import (
	"fmt"

	"github.com/jsamuelsen11/workitems/internal/domain"
	"github.com/jsamuelsen11/workitems/internal/domain/descriptor"
)

// ToCheckRequest converts a project-backed value provider descriptor and a
// candidate value to a downstream CheckRequestDTO. Providers that resolve
// locally, or that this build does not know, are rejected with an error
// wrapping domain.ErrInvalidDescriptor.
func ToCheckRequest(provider descriptor.ValueProvider, value string) (CheckRequestDTO, error) {
	var dto ProviderDTO
	switch p := provider.(type) {
	case descriptor.ProjectCollection:
		dto = ProviderDTO{Kind: p.ValueProviderKind(), WorkItemType: p.WorkItemType}
	case descriptor.ProjectUser:
		dto = ProviderDTO{Kind: p.ValueProviderKind()}
	case descriptor.Relationship:
		dto = ProviderDTO{
			Kind:               p.ValueProviderKind(),
			Relationship:       p.Relationship,
			TargetWorkItemType: p.TargetWorkItemType,
		}
	default:
		kind := "<nil>"
		if provider != nil {
			kind = provider.ValueProviderKind()
		}
		return CheckRequestDTO{}, fmt.Errorf("value provider %q is not resolved remotely: %w", kind, domain.ErrInvalidDescriptor)
	}

	return CheckRequestDTO{Provider: dto, Value: value}, nil
}
