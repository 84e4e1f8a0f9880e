package httpclient

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/jsamuelsen11/workitems/internal/platform/config"
)

func TestRetryPolicy_Backoff(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		attempt int
		jitter  float64
		want    time.Duration
	}{
		{"first retry, no spread", 1, 0.5, 100 * time.Millisecond},
		{"second retry doubles", 2, 0.5, 200 * time.Millisecond},
		{"third retry doubles again", 3, 0.5, 400 * time.Millisecond},
		{"capped at max interval", 4, 0.5, 500 * time.Millisecond},
		{"far past the cap", 10, 0.5, 500 * time.Millisecond},
		{"lowest jitter", 1, 0, 75 * time.Millisecond},
		{"highest jitter on the cap", 10, 1, 625 * time.Millisecond},
	}

	for _, tt := range tests {
		p := retryPolicy{
			initialInterval: 100 * time.Millisecond,
			maxInterval:     500 * time.Millisecond,
			multiplier:      2.0,
			jitter:          func() float64 { return tt.jitter },
		}
		if got := p.backoff(tt.attempt); got != tt.want {
			t.Errorf("%s: backoff(%d) = %v, want %v", tt.name, tt.attempt, got, tt.want)
		}
	}
}

func TestNewRetryPolicy(t *testing.T) {
	t.Parallel()

	p := newRetryPolicy(config.RetryConfig{MaxAttempts: 0, InitialInterval: time.Millisecond, MaxInterval: time.Second, Multiplier: 3})
	if p.maxAttempts != 1 {
		t.Errorf("maxAttempts = %d, want 1 for a zero setting", p.maxAttempts)
	}
	for range 100 {
		if d := p.backoff(1); d < 750*time.Microsecond || d > 1250*time.Microsecond {
			t.Fatalf("backoff(1) = %v, want within 25%% of 1ms", d)
		}
	}
}

func TestIsRetryable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"canceled", context.Canceled, false},
		{"deadline", context.DeadlineExceeded, false},
		{"wrapped canceled", fmt.Errorf("do: %w", context.Canceled), false},
		{"net error", &net.OpError{Op: "dial", Err: errors.New("connection refused")}, true},
		{"generic", errors.New("something failed"), true},
	}

	for _, tt := range tests {
		if got := isRetryable(tt.err); got != tt.want {
			t.Errorf("isRetryable(%s) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestIsRetryableStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		statusCode int
		want       bool
	}{
		{http.StatusOK, false},
		{http.StatusBadRequest, false},
		{http.StatusNotFound, false},
		{http.StatusUnprocessableEntity, false},
		{http.StatusTooManyRequests, true},
		{http.StatusInternalServerError, true},
		{http.StatusBadGateway, true},
		{http.StatusServiceUnavailable, true},
	}

	for _, tt := range tests {
		if got := isRetryableStatus(tt.statusCode); got != tt.want {
			t.Errorf("isRetryableStatus(%d) = %v, want %v", tt.statusCode, got, tt.want)
		}
	}
}
