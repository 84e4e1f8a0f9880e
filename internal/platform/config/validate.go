package config

import (
	"errors"
	"fmt"
	"slices"
)

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"json", "text"}
	exporters  = []string{"stdout", "otlp", "none"}
)

// problems accumulates validation failures for one config section.
type problems []error

func (p *problems) check(ok bool, format string, args ...any) {
	if !ok {
		*p = append(*p, fmt.Errorf(format, args...))
	}
}

func (p *problems) oneOf(key, got string, allowed []string) {
	p.check(slices.Contains(allowed, got), "%s must be one of %v, got %q", key, allowed, got)
}

func (p problems) err() error {
	return errors.Join(p...)
}

// Validate checks every section and returns all failures joined.
func (c *Config) Validate() error {
	return errors.Join(
		c.Log.validate(),
		c.Validation.validate(),
		c.Descriptors.validate(),
		c.Client.validate(c.Validation.ExternalValueProviders),
		c.Telemetry.validate(),
	)
}

func (l *LogConfig) validate() error {
	var p problems
	p.oneOf("log.level", l.Level, logLevels)
	p.oneOf("log.format", l.Format, logFormats)
	return p.err()
}

func (v *ValidationConfig) validate() error {
	var p problems
	p.check(v.Concurrency >= 1, "validation.concurrency must be >= 1, got %d", v.Concurrency)
	return p.err()
}

func (d *DescriptorsConfig) validate() error {
	var p problems
	p.check(d.Dir != "", "descriptors.dir must not be empty")
	return p.err()
}

// validate checks the client settings, which only matter when the
// value-resolution API is in use.
func (cl *ClientConfig) validate(enabled bool) error {
	if !enabled {
		return nil
	}

	var p problems
	p.check(cl.BaseURL != "", "client.base_url must not be empty")
	p.check(cl.Timeout > 0, "client.timeout must be positive, got %s", cl.Timeout)
	p.check(cl.Retry.MaxAttempts >= 1, "client.retry.max_attempts must be >= 1, got %d", cl.Retry.MaxAttempts)
	p.check(cl.Retry.Multiplier > 0, "client.retry.multiplier must be positive, got %g", cl.Retry.Multiplier)
	p.check(cl.Retry.MaxInterval >= cl.Retry.InitialInterval,
		"client.retry.max_interval (%s) must not be below initial_interval (%s)",
		cl.Retry.MaxInterval, cl.Retry.InitialInterval)
	p.check(cl.CircuitBreaker.MaxFailures >= 1,
		"client.circuit_breaker.max_failures must be >= 1, got %d", cl.CircuitBreaker.MaxFailures)
	p.check(cl.RateLimit.RequestsPerSecond >= 0,
		"client.rate_limit.requests_per_second must not be negative, got %g", cl.RateLimit.RequestsPerSecond)
	p.check(cl.RateLimit.RequestsPerSecond == 0 || cl.RateLimit.BurstSize >= 1,
		"client.rate_limit.burst_size must be >= 1 when rate limiting is enabled, got %d", cl.RateLimit.BurstSize)
	return p.err()
}

func (t *TelemetryConfig) validate() error {
	if !t.Enabled {
		return nil
	}

	var p problems
	p.oneOf("telemetry.exporter", t.Exporter, exporters)
	p.check(t.Exporter != "otlp" || t.Endpoint != "", "telemetry.endpoint must not be empty when exporter is otlp")
	p.check(t.ServiceName != "", "telemetry.service_name must not be empty")
	return p.err()
}
