package values

import (
	"errors"
	"testing"

	"github.com/jsamuelsen11/workitems/internal/domain"
	"github.com/jsamuelsen11/workitems/internal/domain/descriptor"
)

func TestToCheckRequest_FieldMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		provider descriptor.ValueProvider
		want     ProviderDTO
	}{
		{
			name:     "project collection",
			provider: descriptor.ProjectCollection{WorkItemType: "Epic"},
			want:     ProviderDTO{Kind: "ProjectCollection", WorkItemType: "Epic"},
		},
		{
			name:     "project user",
			provider: descriptor.ProjectUser{},
			want:     ProviderDTO{Kind: "ProjectUser"},
		},
		{
			name:     "relationship",
			provider: descriptor.Relationship{Relationship: "blocks", TargetWorkItemType: "Story"},
			want:     ProviderDTO{Kind: "Relationship", Relationship: "blocks", TargetWorkItemType: "Story"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ToCheckRequest(tt.provider, "v-1")
			if err != nil {
				t.Fatalf("ToCheckRequest() error = %v", err)
			}
			if got.Provider != tt.want {
				t.Errorf("Provider = %+v, want %+v", got.Provider, tt.want)
			}
			if got.Value != "v-1" {
				t.Errorf("Value = %q, want %q", got.Value, "v-1")
			}
		})
	}
}

func TestToCheckRequest_LocalOrUnknownProvider(t *testing.T) {
	t.Parallel()

	for _, p := range []descriptor.ValueProvider{
		descriptor.NewEnum(descriptor.EnumValue{Value: "a"}),
		descriptor.UnknownValueProvider{Kind: "Calendar"},
		nil,
	} {
		if _, err := ToCheckRequest(p, "a"); !errors.Is(err, domain.ErrInvalidDescriptor) {
			t.Errorf("ToCheckRequest(%#v) error = %v, want %v", p, err, domain.ErrInvalidDescriptor)
		}
	}
}
