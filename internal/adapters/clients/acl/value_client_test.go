package acl

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jsamuelsen11/workitems/internal/adapters/clients/acl/values"
	"github.com/jsamuelsen11/workitems/internal/app/runctx"
	"github.com/jsamuelsen11/workitems/internal/domain"
	"github.com/jsamuelsen11/workitems/internal/domain/descriptor"
	"github.com/jsamuelsen11/workitems/internal/platform/config"
	"github.com/jsamuelsen11/workitems/internal/platform/httpclient"
)

// newTestClient creates an httpclient.Client pointing at the given test server
// with circuit breaker and retry configured for fast test execution.
func newTestClient(t *testing.T, baseURL string) *httpclient.Client {
	t.Helper()

	cfg := &config.ClientConfig{
		BaseURL: baseURL,
		APIKey:  "secret",
		Timeout: 5 * time.Second,
		Retry: config.RetryConfig{
			MaxAttempts:     1,
			InitialInterval: 10 * time.Millisecond,
			MaxInterval:     10 * time.Millisecond,
			Multiplier:      1,
		},
		CircuitBreaker: config.CircuitBreakerConfig{
			MaxFailures:   2,
			Timeout:       30 * time.Second,
			HalfOpenLimit: 1,
		},
	}

	return httpclient.New(cfg, "value-api-test", nil, slog.New(slog.DiscardHandler))
}

// writeJSON encodes v as JSON to the response writer, failing the test on error.
func writeJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()

	if err := json.NewEncoder(w).Encode(v); err != nil {
		t.Errorf("failed to encode response: %v", err)
	}
}

func TestValueClient_IsAllowed(t *testing.T) {
	t.Parallel()

	var got values.CheckRequestDTO
	var gotRunID, gotAPIKey string

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/v1/projects/PRJ/values:check" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		gotRunID = r.Header.Get(httpclient.HeaderRunID)
		gotAPIKey = r.Header.Get(httpclient.HeaderAPIKey)
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decoding request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		writeJSON(t, w, map[string]any{"allowed": got.Value == "E-1"})
	}))
	defer ts.Close()

	client := NewValueClient(newTestClient(t, ts.URL), nil)
	ctx := runctx.WithRun(context.Background(), runctx.New("run-7"))

	allowed, err := client.IsAllowed(ctx, "PRJ", descriptor.ProjectCollection{WorkItemType: "Epic"}, "E-1")
	if err != nil {
		t.Fatalf("IsAllowed() error = %v", err)
	}
	if !allowed {
		t.Error("IsAllowed() = false, want true")
	}
	if got.Provider.Kind != "ProjectCollection" || got.Provider.WorkItemType != "Epic" {
		t.Errorf("request provider = %+v, want ProjectCollection/Epic", got.Provider)
	}
	if gotRunID != "run-7" {
		t.Errorf("%s = %q, want %q", httpclient.HeaderRunID, gotRunID, "run-7")
	}
	if gotAPIKey != "secret" {
		t.Errorf("%s = %q, want %q", httpclient.HeaderAPIKey, gotAPIKey, "secret")
	}

	allowed, err = client.IsAllowed(ctx, "PRJ", descriptor.ProjectCollection{WorkItemType: "Epic"}, "E-404")
	if err != nil {
		t.Fatalf("IsAllowed() error = %v", err)
	}
	if allowed {
		t.Error("IsAllowed() = true, want false")
	}
}

func TestValueClient_IsAllowed_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{name: "unknown project", status: http.StatusNotFound, wantErr: domain.ErrNotFound},
		{name: "rejected provider", status: http.StatusUnprocessableEntity, wantErr: domain.ErrInvalidDescriptor},
		{name: "forbidden", status: http.StatusForbidden, wantErr: domain.ErrForbidden},
		{name: "server error", status: http.StatusServiceUnavailable, wantErr: domain.ErrUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer ts.Close()

			client := NewValueClient(newTestClient(t, ts.URL), nil)
			_, err := client.IsAllowed(context.Background(), "PRJ", descriptor.ProjectUser{}, "alice")
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("IsAllowed() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValueClient_IsAllowed_LocalProviderRejected(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	client := NewValueClient(newTestClient(t, ts.URL), nil)
	_, err := client.IsAllowed(context.Background(), "PRJ", descriptor.NewEnum(descriptor.EnumValue{Value: "a"}), "a")
	if !errors.Is(err, domain.ErrInvalidDescriptor) {
		t.Errorf("IsAllowed() error = %v, want %v", err, domain.ErrInvalidDescriptor)
	}
	if calls.Load() != 0 {
		t.Errorf("server calls = %d, want 0", calls.Load())
	}
}

func TestValueClient_Unreachable(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	baseURL := ts.URL
	ts.Close()

	client := NewValueClient(newTestClient(t, baseURL), nil)
	_, err := client.IsAllowed(context.Background(), "PRJ", descriptor.ProjectUser{}, "alice")
	if !errors.Is(err, domain.ErrUnavailable) {
		t.Errorf("IsAllowed() error = %v, want %v", err, domain.ErrUnavailable)
	}
}

func TestValueClient_HealthCheck(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	client := NewValueClient(newTestClient(t, ts.URL), nil)
	if client.Name() != "value-api-test" {
		t.Errorf("Name() = %q, want %q", client.Name(), "value-api-test")
	}
	if err := client.HealthCheck(context.Background()); err != nil {
		t.Fatalf("HealthCheck() before failures = %v, want nil", err)
	}

	for range 2 {
		_, _ = client.IsAllowed(context.Background(), "PRJ", descriptor.ProjectUser{}, "alice")
	}

	if err := client.HealthCheck(context.Background()); err == nil {
		t.Error("HealthCheck() after tripping breaker = nil, want error")
	}
}
