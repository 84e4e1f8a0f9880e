package httpclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/rand/v2"
	"net/http"
	"time"

	"github.com/jsamuelsen11/workitems/internal/platform/config"
	"github.com/jsamuelsen11/workitems/internal/platform/logging"
)

// jitterFraction bounds the random spread applied to each delay (±25%).
const jitterFraction = 0.25

// retryPolicy decides how often and how long to wait between attempts.
type retryPolicy struct {
	maxAttempts     int
	initialInterval time.Duration
	maxInterval     time.Duration
	multiplier      float64

	// jitter returns a value in [0, 1).
	jitter func() float64
}

func newRetryPolicy(cfg config.RetryConfig) retryPolicy {
	return retryPolicy{
		maxAttempts:     max(1, cfg.MaxAttempts),
		initialInterval: cfg.InitialInterval,
		maxInterval:     cfg.MaxInterval,
		multiplier:      cfg.Multiplier,
		jitter:          rand.Float64, //nolint:gosec // jitter does not need a secure source
	}
}

// backoff returns the wait before retry number attempt (1 is the first
// retry): exponential growth capped at maxInterval, spread by ±25%.
func (p retryPolicy) backoff(attempt int) time.Duration {
	delay := float64(p.initialInterval) * math.Pow(p.multiplier, float64(attempt-1))
	delay = math.Min(delay, float64(p.maxInterval))
	delay += delay * jitterFraction * (2*p.jitter() - 1)
	return time.Duration(math.Max(delay, 0))
}

// retrying replays the request while the transport fails or the status is
// retryable. The buffered body is rewound for every attempt. The last
// retryable response is returned with its body open alongside the error.
func (c *Client) retrying(p retryPolicy) stage {
	return func(next roundTrip) roundTrip {
		return func(ctx context.Context, req *http.Request) (*http.Response, error) {
			body, err := bufferBody(req)
			if err != nil {
				return nil, err
			}

			var lastErr error
			for attempt := range p.maxAttempts {
				if attempt > 0 {
					if err := c.wait(ctx, req, p, attempt, lastErr); err != nil {
						return nil, err
					}
				}
				if body != nil {
					req.Body = io.NopCloser(bytes.NewReader(body))
					req.ContentLength = int64(len(body))
				}

				resp, err := next(ctx, req)
				switch {
				case err != nil:
					if !isRetryable(err) {
						return nil, err
					}
					lastErr = err
				case !isRetryableStatus(resp.StatusCode):
					return resp, nil
				default:
					lastErr = fmt.Errorf("HTTP %d from %s", resp.StatusCode, c.serviceName)
					if attempt == p.maxAttempts-1 {
						return resp, lastErr
					}
					_, _ = io.Copy(io.Discard, resp.Body)
					_ = resp.Body.Close()
				}
			}
			return nil, lastErr
		}
	}
}

func (c *Client) wait(ctx context.Context, req *http.Request, p retryPolicy, attempt int, lastErr error) error {
	delay := p.backoff(attempt)

	logging.FromContext(ctx).WarnContext(ctx, "retrying HTTP request",
		slog.String("operation", "httpclient.Do"),
		slog.String("method", req.Method),
		slog.String("url", req.URL.String()),
		slog.String("peer_service", c.serviceName),
		slog.Int("attempt", attempt+1),
		slog.Int("max_attempts", p.maxAttempts),
		slog.Duration("backoff", delay),
		slog.Any("error", lastErr),
	)

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func bufferBody(req *http.Request) ([]byte, error) {
	if req.Body == nil || req.Body == http.NoBody {
		return nil, nil
	}
	defer func() { _ = req.Body.Close() }()

	b, err := io.ReadAll(req.Body)
	if err != nil {
		return nil, fmt.Errorf("reading request body: %w", err)
	}
	return b, nil
}

// isRetryable reports whether a transport error is worth another attempt.
// Cancellation and deadline expiry are final.
func isRetryable(err error) bool {
	return err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

// isRetryableStatus is true for 429 and every 5xx.
func isRetryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}
