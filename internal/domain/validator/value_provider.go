package validator

import (
	"context"
	"fmt"
	"strings"

	"github.com/jsamuelsen11/workitems/internal/domain/descriptor"
	"github.com/jsamuelsen11/workitems/internal/domain/valueprovider"
	"github.com/jsamuelsen11/workitems/internal/domain/workitem"
)

// ValueProvider rejects a value that is not a member of the provider's
// currently resolvable set of allowed values. Empty values are accepted;
// requiredness is checked by Mandatory.
type ValueProvider struct {
	property descriptor.Property
	provider valueprovider.Provider
}

// enumerable is implemented by providers that can list their allowed values,
// such as valueprovider.Enum.
type enumerable interface {
	AllValues() []descriptor.EnumValue
	Suggestions(query string) []descriptor.EnumValue
}

// NewValueProvider creates a ValueProvider rule for the given property.
func NewValueProvider(property descriptor.Property, provider valueprovider.Provider) *ValueProvider {
	return &ValueProvider{property: property, provider: provider}
}

// Name implements Validator.
func (v *ValueProvider) Name() string { return SourceValueProvider }

// Validate implements Validator.
func (v *ValueProvider) Validate(ctx context.Context, item *workitem.WorkItem, _ []workitem.PropertyChange) ([]workitem.ErrorMessage, error) {
	value := item.Value(v.property.Name())
	if value == "" {
		return nil, nil
	}

	ok, err := v.provider.ValueExists(ctx, value)
	if err != nil {
		return nil, fmt.Errorf("checking value of property %s: %w", v.property.Name(), err)
	}
	if ok {
		return nil, nil
	}
	msg := fmt.Sprintf("value %q is not allowed for property %s", value, v.property.Label())
	if e, ok := v.provider.(enumerable); ok {
		msg += hint(e, value)
	}
	return []workitem.ErrorMessage{
		workitem.NewErrorMessage(item, v.property.Name(), SourceValueProvider, "", msg),
	}, nil
}

// hint names the close matches for a rejected value, or every allowed value
// when nothing matches.
func hint(e enumerable, value string) string {
	label := "did you mean"
	candidates := e.Suggestions(value)
	if len(candidates) == 0 {
		label, candidates = "allowed values", e.AllValues()
	}
	if len(candidates) == 0 {
		return ""
	}

	names := make([]string, len(candidates))
	for i, c := range candidates {
		names[i] = c.Value
	}
	return fmt.Sprintf("; %s: %s", label, strings.Join(names, ", "))
}
