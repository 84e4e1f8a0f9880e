package acl

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/jsamuelsen11/workitems/internal/adapters/clients/acl/values"
	"github.com/jsamuelsen11/workitems/internal/app/runctx"
	"github.com/jsamuelsen11/workitems/internal/domain/descriptor"
	"github.com/jsamuelsen11/workitems/internal/platform/httpclient"
	"github.com/jsamuelsen11/workitems/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.ValueResolver = (*ValueClient)(nil)
	_ ports.HealthChecker = (*ValueClient)(nil)
)

// ValueClient is the outbound adapter for the downstream value API. It
// implements [ports.ValueResolver] for project-backed value providers
// (ProjectCollection, ProjectUser, Relationship).
//
// Requests are translated by the [values] subpackage. HTTP errors are mapped
// to domain errors by [TranslateHTTPError]; every failure is structural and
// never a validation finding.
//
// The underlying [httpclient.Client] provides circuit breaking, retry with
// exponential backoff, rate limiting, OpenTelemetry tracing, and run id
// propagation for every outbound call.
type ValueClient struct {
	client *httpclient.Client
	req    *Requester
}

// NewValueClient creates a ValueClient that sends requests through the given
// [httpclient.Client]. The client's BaseURL should point to the value API
// root (e.g. "https://values.example.com").
func NewValueClient(client *httpclient.Client, logger *slog.Logger) *ValueClient {
	return &ValueClient{
		client: client,
		req:    NewRequester(client, logger),
	}
}

// IsAllowed asks POST /api/v1/projects/{projectCode}/values:check whether
// value is allowed by provider within the project. The id of the
// validation run in ctx, if any, is forwarded in the X-Run-ID header.
func (c *ValueClient) IsAllowed(ctx context.Context, projectCode string, provider descriptor.ValueProvider, value string) (bool, error) {
	reqDTO, err := values.ToCheckRequest(provider, value)
	if err != nil {
		return false, err
	}

	if id := runctx.IDFromContext(ctx); id != "" {
		ctx = httpclient.WithRunID(ctx, id)
	}

	path := fmt.Sprintf("/api/v1/projects/%s/values:check", url.PathEscape(projectCode))

	var resp values.CheckResponseDTO
	err = c.req.Do(ctx, Call{
		Method: http.MethodPost,
		Path:   path,
		Want:   http.StatusOK,
		In:     reqDTO,
		Out:    &resp,
	})
	if err != nil {
		return false, err
	}
	return resp.Allowed, nil
}

// Name returns the identifier used when this component is registered with a
// [ports.HealthRegistry]. It matches the service name used by the
// underlying [httpclient.Client] for tracing and metrics.
func (c *ValueClient) Name() string {
	return c.client.Name()
}

// HealthCheck reports the value API's availability from the circuit breaker
// state. No network call is made.
func (c *ValueClient) HealthCheck(ctx context.Context) error {
	return c.client.HealthCheck(ctx)
}
