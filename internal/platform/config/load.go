package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix        = "APP_"
	defaultConfigDir = "configs"
)

// Option configures Load.
type Option func(*loadOptions)

type loadOptions struct {
	configDir string
	environ   func() []string
}

// WithConfigDir sets the directory holding base.yaml and the profile files.
// Defaults to "configs" relative to the working directory.
func WithConfigDir(dir string) Option {
	return func(o *loadOptions) {
		o.configDir = dir
	}
}

// WithEnviron replaces os.Environ as the source of APP_ overrides.
func WithEnviron(environ func() []string) Option {
	return func(o *loadOptions) {
		o.environ = environ
	}
}

// layer is one step of the configuration hierarchy. Later layers win.
type layer struct {
	name string
	load func(k *koanf.Koanf) error
}

// Load builds the configuration for profile from, in increasing precedence:
// built-in defaults, {configDir}/base.yaml, {configDir}/{profile}.yaml, and
// APP_ environment variables. The result is validated before it is returned.
//
// Environment variables are matched against the keys the earlier layers
// define, so underscores inside a key survive:
//
//	APP_LOG_LEVEL                           -> log.level
//	APP_DESCRIPTORS_DIR                     -> descriptors.dir
//	APP_VALIDATION_EXTERNAL_VALUE_PROVIDERS -> validation.external_value_providers
//	APP_CLIENT_RETRY_MAX_ATTEMPTS           -> client.retry.max_attempts
func Load(profile string, opts ...Option) (*Config, error) {
	if err := validateProfile(profile); err != nil {
		return nil, err
	}

	o := &loadOptions{configDir: defaultConfigDir, environ: os.Environ}
	for _, opt := range opts {
		opt(o)
	}

	k := koanf.New(".")
	for _, l := range o.layers(profile) {
		if err := l.load(k); err != nil {
			return nil, fmt.Errorf("loading %s: %w", l.name, err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return &cfg, nil
}

func (o *loadOptions) layers(profile string) []layer {
	return []layer{
		{name: "defaults", load: setDefaults},
		yamlLayer(filepath.Join(o.configDir, "base.yaml")),
		yamlLayer(filepath.Join(o.configDir, profile+".yaml")),
		{name: "environment", load: func(k *koanf.Koanf) error {
			return k.Load(envProvider(k.Keys(), o.environ), nil)
		}},
	}
}

func setDefaults(k *koanf.Koanf) error {
	for key, value := range defaults() {
		if err := k.Set(key, value); err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
	}
	return nil
}

func yamlLayer(path string) layer {
	return layer{
		name: path,
		load: func(k *koanf.Koanf) error {
			return k.Load(file.Provider(path), yaml.Parser())
		},
	}
}

// envProvider maps APP_ variables onto known keys. A variable that matches
// no known key falls back to treating every underscore as a separator.
func envProvider(known []string, environ func() []string) *env.Env {
	lookup := make(map[string]string, len(known))
	for _, key := range known {
		lookup[strings.ReplaceAll(key, ".", "_")] = key
	}

	return env.Provider(".", env.Opt{
		Prefix:      envPrefix,
		EnvironFunc: environ,
		TransformFunc: func(key, value string) (string, any) {
			key = strings.ToLower(strings.TrimPrefix(key, envPrefix))
			if mapped, ok := lookup[key]; ok {
				return mapped, value
			}
			return strings.ReplaceAll(key, "_", "."), value
		},
	})
}

// validateProfile rejects profile names that could escape the config dir.
func validateProfile(profile string) error {
	switch {
	case strings.TrimSpace(profile) == "":
		return errors.New("profile must not be empty")
	case strings.ContainsAny(profile, `/\`):
		return fmt.Errorf("profile must not contain path separators, got %q", profile)
	case strings.Contains(profile, ".."):
		return fmt.Errorf("profile must not contain path traversal, got %q", profile)
	}
	return nil
}
