// Package httpclient is the resilient HTTP client the engine uses to reach
// the value-resolution API.
//
// Each request runs through a fixed chain of stages, outermost first:
//
//	metrics → circuit breaker → rate limiter → headers → span → retry → transport
//
// Metrics sit outside the breaker so rejected calls are counted, and the span
// sits outside retry so one logical call is one span.
//
//	client := httpclient.New(&cfg.Client, "value-api", metrics, logger)
//	resp, err := client.Do(httpclient.WithRunID(ctx, runID), req)
package httpclient

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"

	"github.com/jsamuelsen11/workitems/internal/platform/config"
	"github.com/jsamuelsen11/workitems/internal/platform/logging"
	"github.com/jsamuelsen11/workitems/internal/platform/telemetry"
)

// Outbound header names.
const (
	HeaderRunID  = "X-Run-ID"
	HeaderAPIKey = "X-API-Key"
)

const tracerName = "github.com/jsamuelsen11/workitems/internal/platform/httpclient"

type runIDKey struct{}

// WithRunID returns a context whose requests carry id in the X-Run-ID header.
func WithRunID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, runIDKey{}, id)
}

// roundTrip sends one request. A non-nil response has an open body the
// caller must close, even when the error is also non-nil.
type roundTrip func(ctx context.Context, req *http.Request) (*http.Response, error)

// stage decorates the next roundTrip in the chain.
type stage func(next roundTrip) roundTrip

// Client is safe for concurrent use.
type Client struct {
	baseURL     string
	serviceName string
	breaker     *gobreaker.CircuitBreaker[*http.Response]
	send        roundTrip
}

// New builds a client for the service named serviceName, which labels spans,
// metrics, breaker logs, and health reports. A nil metrics skips recording
// and a nil logger discards breaker state changes.
func New(cfg *config.ClientConfig, serviceName string, metrics *telemetry.Metrics, logger *slog.Logger) *Client {
	logger = logging.OrDiscard(logger)

	c := &Client{
		baseURL:     cfg.BaseURL,
		serviceName: serviceName,
		breaker:     newBreaker(serviceName, cfg.CircuitBreaker, logger),
	}

	httpClient := &http.Client{Timeout: cfg.Timeout}
	transport := func(_ context.Context, req *http.Request) (*http.Response, error) {
		return httpClient.Do(req)
	}

	stages := []stage{
		c.recording(metrics),
		c.breaking(),
		limiting(cfg.RateLimit),
		headers(cfg.APIKey),
		c.tracing(),
		c.retrying(newRetryPolicy(cfg.Retry)),
	}

	c.send = transport
	for i := len(stages) - 1; i >= 0; i-- {
		c.send = stages[i](c.send)
	}
	return c
}

// Do sends req through the chain.
//
// A non-retryable status, 4xx included, is a success: resp is returned with
// a nil error. When retries run out on a retryable status, both resp and err
// are non-nil. A breaker rejection or transport failure returns a nil resp.
func (c *Client) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	return c.send(ctx, req)
}

// BaseURL returns the configured base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Name identifies the downstream service in health reports.
func (c *Client) Name() string {
	return c.serviceName
}

// HealthCheck derives availability from the breaker state without calling
// the service.
func (c *Client) HealthCheck(_ context.Context) error {
	switch state := c.breaker.State(); state {
	case gobreaker.StateClosed:
		return nil
	case gobreaker.StateHalfOpen:
		return fmt.Errorf("%s: degraded (circuit breaker half-open)", c.serviceName)
	case gobreaker.StateOpen:
		return fmt.Errorf("%s: failing (circuit breaker open)", c.serviceName)
	default:
		return fmt.Errorf("%s: unknown circuit breaker state %v", c.serviceName, state)
	}
}

func newBreaker(name string, cfg config.CircuitBreakerConfig, logger *slog.Logger) *gobreaker.CircuitBreaker[*http.Response] {
	return gobreaker.NewCircuitBreaker[*http.Response](gobreaker.Settings{
		Name:        name,
		MaxRequests: toUint32(cfg.HalfOpenLimit),
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= cfg.MaxFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})
}

func (c *Client) breaking() stage {
	return func(next roundTrip) roundTrip {
		return func(ctx context.Context, req *http.Request) (*http.Response, error) {
			return c.breaker.Execute(func() (*http.Response, error) {
				return next(ctx, req)
			})
		}
	}
}

// limiting waits for a token before each call. A zero rate disables it.
func limiting(cfg config.RateLimitConfig) stage {
	if cfg.RequestsPerSecond <= 0 {
		return func(next roundTrip) roundTrip { return next }
	}
	limiter := rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.BurstSize)

	return func(next roundTrip) roundTrip {
		return func(ctx context.Context, req *http.Request) (*http.Response, error) {
			if err := limiter.Wait(ctx); err != nil {
				return nil, fmt.Errorf("rate limit: %w", err)
			}
			return next(ctx, req)
		}
	}
}

func headers(apiKey string) stage {
	return func(next roundTrip) roundTrip {
		return func(ctx context.Context, req *http.Request) (*http.Response, error) {
			if id, ok := ctx.Value(runIDKey{}).(string); ok && id != "" {
				req.Header.Set(HeaderRunID, id)
			}
			if apiKey != "" {
				req.Header.Set(HeaderAPIKey, apiKey)
			}
			return next(ctx, req)
		}
	}
}

// tracing opens a client span and injects the W3C trace context, then binds
// the span context to the request for cancellation and propagation.
func (c *Client) tracing() stage {
	return func(next roundTrip) roundTrip {
		return func(ctx context.Context, req *http.Request) (*http.Response, error) {
			ctx, span := otel.Tracer(tracerName).Start(ctx, "HTTP "+req.Method+" "+c.serviceName,
				trace.WithSpanKind(trace.SpanKindClient),
				trace.WithAttributes(
					attribute.String("http.method", req.Method),
					attribute.String("http.url", req.URL.String()),
					attribute.String("peer.service", c.serviceName),
				),
			)
			defer span.End()

			otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

			resp, err := next(ctx, req.WithContext(ctx))
			if resp != nil {
				span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
			}
			if err != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, err.Error())
			}
			return resp, err
		}
	}
}

// recording measures the whole call, breaker rejections included.
func (c *Client) recording(metrics *telemetry.Metrics) stage {
	return func(next roundTrip) roundTrip {
		if metrics == nil {
			return next
		}
		return func(ctx context.Context, req *http.Request) (*http.Response, error) {
			start := time.Now()
			resp, err := next(ctx, req)

			status, result := 0, "error"
			if resp != nil {
				status = resp.StatusCode
				if status < http.StatusBadRequest {
					result = "success"
				}
			}
			if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
				result = "circuit_open"
			}

			attrs := metric.WithAttributes(
				telemetry.AttrHTTPMethod.String(req.Method),
				telemetry.AttrHTTPStatus.Int(status),
				telemetry.AttrPeerService.String(c.serviceName),
				telemetry.AttrResult.String(result),
			)
			metrics.ClientRequestDuration.Record(ctx, time.Since(start).Seconds(), attrs)
			metrics.ClientRequestTotal.Add(ctx, 1, attrs)
			return resp, err
		}
	}
}

// toUint32 clamps v into the uint32 range.
func toUint32(v int) uint32 {
	if v <= 0 {
		return 0
	}
	if v > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(v)
}
