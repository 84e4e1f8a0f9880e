package ports

import "context"

// HealthChecker is implemented by collaborators whose availability affects
// validation, such as the value-resolution API client.
type HealthChecker interface {
	// Name identifies the collaborator in reports, e.g. "value-api".
	Name() string

	// HealthCheck returns nil when the collaborator can serve requests.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry collects health checkers so the composition root can report
// degraded collaborators before a validation run starts.
type HealthRegistry interface {
	Register(checker HealthChecker)

	// CheckAll runs every registered check. The result is keyed by checker
	// name; a nil value means healthy.
	CheckAll(ctx context.Context) map[string]error
}
