// Package config provides configuration loading and validation for the
// validation engine. Configuration is loaded from YAML files with environment
// variable overrides using a layered system: base.yaml -> {profile}.yaml ->
// env vars.
package config

import "time"

// Config holds all configuration for the engine.
type Config struct {
	Log         LogConfig         `koanf:"log"`
	Validation  ValidationConfig  `koanf:"validation"`
	Descriptors DescriptorsConfig `koanf:"descriptors"`
	Client      ClientConfig      `koanf:"client"`
	Telemetry   TelemetryConfig   `koanf:"telemetry"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// ValidationConfig holds validation manager settings.
type ValidationConfig struct {
	// Concurrency is the number of validators run in parallel. 1 runs them
	// sequentially.
	Concurrency int `koanf:"concurrency"`

	// ExternalValueProviders enables project-backed value providers
	// (collections, users, relationships) through the value-resolution API.
	// When disabled those providers compose to no validator.
	ExternalValueProviders bool `koanf:"external_value_providers"`
}

// DescriptorsConfig holds the location of work item type descriptor files.
type DescriptorsConfig struct {
	Dir string `koanf:"dir"`
}

// ClientConfig holds value-resolution API client settings.
type ClientConfig struct {
	BaseURL        string               `koanf:"base_url"`
	APIKey         string               `koanf:"api_key"`
	Timeout        time.Duration        `koanf:"timeout"`
	Retry          RetryConfig          `koanf:"retry"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
	RateLimit      RateLimitConfig      `koanf:"rate_limit"`
}

// RetryConfig holds retry policy settings with exponential backoff.
type RetryConfig struct {
	MaxAttempts     int           `koanf:"max_attempts"`
	InitialInterval time.Duration `koanf:"initial_interval"`
	MaxInterval     time.Duration `koanf:"max_interval"`
	Multiplier      float64       `koanf:"multiplier"`
}

// CircuitBreakerConfig holds circuit breaker settings.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
}

// RateLimitConfig holds client-side rate limiting settings. A zero
// RequestsPerSecond disables rate limiting.
type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	BurstSize         int     `koanf:"burst_size"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}
