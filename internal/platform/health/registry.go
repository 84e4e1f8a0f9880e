// Package health tracks the health of the collaborators a validation run
// depends on: the descriptor registry and, when enabled, the value API. The
// registry is checked once at startup so degraded collaborators are logged
// before any work item is validated.
package health

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"github.com/jsamuelsen11/workitems/internal/ports"
)

// Compile-time interface check.
var _ ports.HealthRegistry = (*Registry)(nil)

// Registry is a thread-safe implementation of [ports.HealthRegistry].
type Registry struct {
	mu       sync.RWMutex
	checkers []ports.HealthChecker
}

// New creates an empty health check registry.
func New() *Registry {
	return &Registry{}
}

// Register adds a health checker to the registry. Safe for concurrent use.
func (r *Registry) Register(checker ports.HealthChecker) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checkers = append(r.checkers, checker)
}

// CheckAll runs every registered check and returns the results keyed by
// checker name. Nil values indicate healthy components. Checks run without
// holding the lock.
func (r *Registry) CheckAll(ctx context.Context) map[string]error {
	r.mu.RLock()
	checkers := slices.Clone(r.checkers)
	r.mu.RUnlock()

	results := make(map[string]error, len(checkers))
	for _, c := range checkers {
		results[c.Name()] = c.HealthCheck(ctx)
	}
	return results
}

// Report runs every check, logs one warning per unhealthy component, and
// returns the unhealthy names in sorted order.
func (r *Registry) Report(ctx context.Context, logger *slog.Logger) []string {
	results := r.CheckAll(ctx)

	var unhealthy []string
	for name, err := range results {
		if err != nil {
			unhealthy = append(unhealthy, name)
		}
	}
	slices.Sort(unhealthy)

	for _, name := range unhealthy {
		logger.WarnContext(ctx, "collaborator unhealthy",
			slog.String("component", name),
			slog.Any("error", results[name]),
		)
	}
	if len(unhealthy) == 0 {
		logger.DebugContext(ctx, "all collaborators healthy", slog.Int("components", len(results)))
	}
	return unhealthy
}
