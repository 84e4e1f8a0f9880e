package validation

import (
	"context"
	"fmt"

	"github.com/jsamuelsen11/workitems/internal/app/runctx"
	"github.com/jsamuelsen11/workitems/internal/domain/descriptor"
	"github.com/jsamuelsen11/workitems/internal/ports"
)

// memoResolver answers each distinct membership question at most once per
// validation run, so properties sharing a provider and value cost one call.
type memoResolver struct {
	next ports.ValueResolver
}

func (m memoResolver) IsAllowed(ctx context.Context, projectCode string, provider descriptor.ValueProvider, value string) (bool, error) {
	key := fmt.Sprintf("allowed:%s:%s:%+v:%s", projectCode, provider.ValueProviderKind(), provider, value)
	return runctx.GetOrFetch(ctx, key, func(ctx context.Context) (bool, error) {
		return m.next.IsAllowed(ctx, projectCode, provider, value)
	})
}
