// Package main is the entry point of the validate command. It wires all
// dependencies using samber/do v2, validates one work item change request
// read from a file or stdin, and writes the JSON report to stdout.
//
// Usage:
//
//	APP_PROFILE=local validate [request.json]
//
// The exit code is 0 when the work item is valid, 1 when validation produced
// findings, and greater than 1 when the run could not complete.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	"github.com/jsamuelsen11/workitems/internal/adapters/cli"
	"github.com/jsamuelsen11/workitems/internal/adapters/cli/dto"
	"github.com/jsamuelsen11/workitems/internal/adapters/clients/acl"
	"github.com/jsamuelsen11/workitems/internal/adapters/descriptors"
	"github.com/jsamuelsen11/workitems/internal/app"
	"github.com/jsamuelsen11/workitems/internal/app/validation"
	"github.com/jsamuelsen11/workitems/internal/platform/config"
	"github.com/jsamuelsen11/workitems/internal/platform/health"
	"github.com/jsamuelsen11/workitems/internal/platform/httpclient"
	"github.com/jsamuelsen11/workitems/internal/platform/logging"
	"github.com/jsamuelsen11/workitems/internal/platform/telemetry"
	"github.com/jsamuelsen11/workitems/internal/ports"
)

const (
	otelShutdownTimeout = 5 * time.Second
	valueAPIName        = "value-api"
)

func main() {
	code, err := run(os.Args[1:], os.Stdin, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
	}
	os.Exit(code)
}

func run(args []string, stdin io.Reader, stdout io.Writer) (int, error) {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return dto.ExitInternal, errors.New("APP_PROFILE environment variable is required (e.g. local, dev, prod)")
	}
	if len(args) > 1 {
		return dto.ExitBadRequest, errors.New("usage: validate [request.json]")
	}

	// Bootstrap: config, logger, telemetry.
	cfg, err := config.Load(profile)
	if err != nil {
		return dto.ExitInternal, fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	otel, err := initTelemetry(ctx, cfg)
	if err != nil {
		return dto.ExitInternal, fmt.Errorf("initializing telemetry: %w", err)
	}
	defer func() {
		otelCtx, cancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
		defer cancel()
		if err := otel.Shutdown(otelCtx); err != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", err))
		}
	}()

	in, closeIn, err := openInput(args, stdin)
	if err != nil {
		return dto.ExitBadRequest, err
	}
	defer closeIn()

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.Metrics)

	registerDependencies(injector, cfg, logger)

	// Resolve the runner (eagerly wires the full graph).
	runner, err := do.Invoke[*cli.Runner](injector)
	if err != nil {
		return dto.ExitCode(err), fmt.Errorf("resolving runner: %w", err)
	}

	types := do.MustInvoke[*descriptors.Registry](injector)
	logger.InfoContext(ctx, "loaded work item types",
		slog.String("dir", cfg.Descriptors.Dir),
		slog.Any("types", types.Names()),
	)

	// Register health checkers after the graph is wired.
	registry := do.MustInvoke[*health.Registry](injector)
	registry.Register(types)
	if cfg.Validation.ExternalValueProviders {
		registry.Register(do.MustInvoke[*acl.ValueClient](injector))
	}
	registry.Report(ctx, logger)

	return runner.Run(ctx, in, stdout), nil
}

// openInput returns the request source: the named file, or stdin when no
// file or "-" is given.
func openInput(args []string, stdin io.Reader) (io.Reader, func(), error) {
	if len(args) == 0 || args[0] == "-" {
		return stdin, func() {}, nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, nil, fmt.Errorf("opening request: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}

func initTelemetry(ctx context.Context, cfg *config.Config) (*telemetry.Providers, error) {
	if !cfg.Telemetry.Enabled {
		return &telemetry.Providers{}, nil
	}
	return telemetry.Setup(ctx, telemetry.Settings{
		ServiceName: cfg.Telemetry.ServiceName,
		Exporter:    cfg.Telemetry.Exporter,
		Endpoint:    cfg.Telemetry.Endpoint,
	})
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(_ do.Injector) (*descriptors.Registry, error) {
		return descriptors.LoadDir(cfg.Descriptors.Dir)
	})

	do.Provide(injector, func(i do.Injector) (ports.DescriptorProvider, error) {
		return do.MustInvoke[*descriptors.Registry](i), nil
	})

	do.Provide(injector, func(i do.Injector) (*httpclient.Client, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return httpclient.New(&cfg.Client, valueAPIName, metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (*acl.ValueClient, error) {
		client := do.MustInvoke[*httpclient.Client](i)
		return acl.NewValueClient(client, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (*validation.Composer, error) {
		provider := do.MustInvoke[ports.DescriptorProvider](i)
		var opts []validation.ComposerOption
		if cfg.Validation.ExternalValueProviders {
			opts = append(opts, validation.WithExternalValueProviders(do.MustInvoke[*acl.ValueClient](i)))
		}
		return validation.NewComposer(provider, opts...), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.Validator, error) {
		composer := do.MustInvoke[*validation.Composer](i)
		opts := []validation.ManagerOption{validation.WithConcurrency(cfg.Validation.Concurrency)}
		if metrics := do.MustInvoke[*telemetry.Metrics](i); metrics != nil {
			opts = append(opts, validation.WithMetrics(metrics))
		}
		return validation.NewManager(composer, logger, opts...), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.WorkItemService, error) {
		provider := do.MustInvoke[ports.DescriptorProvider](i)
		validator := do.MustInvoke[ports.Validator](i)
		return app.NewWorkItemService(provider, validator, logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (*health.Registry, error) {
		return health.New(), nil
	})

	do.Provide(injector, func(i do.Injector) (*cli.Runner, error) {
		svc := do.MustInvoke[ports.WorkItemService](i)
		return cli.NewRunner(svc, logger), nil
	})
}
