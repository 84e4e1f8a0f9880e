// Package telemetry sets up OpenTelemetry tracing and metrics for the
// validate command and registers the instruments the validation manager and
// the value API client record into.
//
// Stdout exporters write to stderr, because stdout carries the JSON report.
//
//	p, err := telemetry.Setup(ctx, telemetry.Settings{
//		ServiceName: "workitems",
//		Exporter:    telemetry.ExporterStdout,
//	})
//	defer p.Shutdown(ctx)
//
//	p.Metrics.ValidationRunTotal.Add(ctx, 1, ...)
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.39.0"
)

// Supported exporter names.
const (
	ExporterStdout = "stdout"
	ExporterOTLP   = "otlp"
	ExporterNone   = "none"
)

// Attribute keys for metric labels.
var (
	AttrHTTPMethod   = attribute.Key("http.method")
	AttrHTTPStatus   = attribute.Key("http.status_code")
	AttrPeerService  = attribute.Key("peer.service")
	AttrResult       = attribute.Key("result")
	AttrSource       = attribute.Key("validation.source")
	AttrWorkItemType = attribute.Key("workitem.type")
)

var (
	// ErrUnsupportedExporter is returned for an exporter name other than
	// ExporterStdout, ExporterOTLP, or ExporterNone.
	ErrUnsupportedExporter = errors.New("unsupported exporter")

	// ErrMissingEndpoint is returned when the OTLP exporter has no endpoint.
	ErrMissingEndpoint = errors.New("otlp exporter requires an endpoint")
)

// Settings selects where telemetry goes.
type Settings struct {
	ServiceName string
	Exporter    string

	// Endpoint is the collector URL for ExporterOTLP, e.g.
	// "http://otel-collector:4318". Ignored by the other exporters.
	Endpoint string

	// Output receives stdout-exporter output. Nil means os.Stderr.
	Output io.Writer
}

// Metrics holds the registered instruments.
type Metrics struct {
	ValidationRunDuration   metric.Float64Histogram
	ValidationRunTotal      metric.Int64Counter
	ValidationFindingsTotal metric.Int64Counter
	ClientRequestDuration   metric.Float64Histogram
	ClientRequestTotal      metric.Int64Counter
}

// Providers owns the tracer and meter providers created by Setup. The zero
// value is a disabled configuration: Metrics is nil and Shutdown is a no-op.
type Providers struct {
	Metrics *Metrics

	tracer *sdktrace.TracerProvider
	meter  *sdkmetric.MeterProvider
}

// Setup creates tracer and meter providers, installs them as the otel
// globals along with the W3C trace-context propagator, and registers the
// instruments. On error nothing is left installed or running.
func Setup(ctx context.Context, s Settings) (*Providers, error) {
	if s.Output == nil {
		s.Output = os.Stderr
	}

	res, err := resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(semconv.SchemaURL, semconv.ServiceName(s.ServiceName)),
	)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	traceOpts := []sdktrace.TracerProviderOption{sdktrace.WithResource(res)}
	meterOpts := []sdkmetric.Option{sdkmetric.WithResource(res)}

	if s.Exporter != ExporterNone {
		spans, err := newSpanExporter(ctx, s)
		if err != nil {
			return nil, fmt.Errorf("creating span exporter: %w", err)
		}
		readings, err := newMetricExporter(ctx, s)
		if err != nil {
			_ = spans.Shutdown(ctx)
			return nil, fmt.Errorf("creating metric exporter: %w", err)
		}
		traceOpts = append(traceOpts, sdktrace.WithBatcher(spans))
		meterOpts = append(meterOpts, sdkmetric.WithReader(sdkmetric.NewPeriodicReader(readings)))
	}

	p := &Providers{
		tracer: sdktrace.NewTracerProvider(traceOpts...),
		meter:  sdkmetric.NewMeterProvider(meterOpts...),
	}

	p.Metrics, err = NewMetrics(p.meter, s.ServiceName)
	if err != nil {
		return nil, errors.Join(err, p.Shutdown(ctx))
	}

	otel.SetTracerProvider(p.tracer)
	otel.SetMeterProvider(p.meter)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	return p, nil
}

// Shutdown flushes and stops both providers. Nil-safe.
func (p *Providers) Shutdown(ctx context.Context) error {
	if p == nil {
		return nil
	}
	var errs []error
	if p.tracer != nil {
		if err := p.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if p.meter != nil {
		if err := p.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

// NewMetrics registers the instruments on mp under the given meter name.
func NewMetrics(mp metric.MeterProvider, name string) (*Metrics, error) {
	meter := mp.Meter(name)
	m := &Metrics{}

	histograms := []struct {
		dst               *metric.Float64Histogram
		name, desc, unit string
	}{
		{&m.ValidationRunDuration, "workitems.validation.run.duration", "Duration of work item validation runs", "s"},
		{&m.ClientRequestDuration, "http.client.request.duration", "Duration of outgoing HTTP requests", "s"},
	}
	for _, h := range histograms {
		inst, err := meter.Float64Histogram(h.name, metric.WithDescription(h.desc), metric.WithUnit(h.unit))
		if err != nil {
			return nil, fmt.Errorf("creating %s: %w", h.name, err)
		}
		*h.dst = inst
	}

	counters := []struct {
		dst               *metric.Int64Counter
		name, desc, unit string
	}{
		{&m.ValidationRunTotal, "workitems.validation.run.total", "Work item validation runs by result", "{run}"},
		{&m.ValidationFindingsTotal, "workitems.validation.findings.total", "Validation findings by reporting validator", "{finding}"},
		{&m.ClientRequestTotal, "http.client.request.total", "Outgoing HTTP requests", "{request}"},
	}
	for _, c := range counters {
		inst, err := meter.Int64Counter(c.name, metric.WithDescription(c.desc), metric.WithUnit(c.unit))
		if err != nil {
			return nil, fmt.Errorf("creating %s: %w", c.name, err)
		}
		*c.dst = inst
	}

	return m, nil
}

func newSpanExporter(ctx context.Context, s Settings) (sdktrace.SpanExporter, error) {
	switch s.Exporter {
	case ExporterOTLP:
		host, insecure, err := collector(s.Endpoint)
		if err != nil {
			return nil, err
		}
		opts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(host)}
		if insecure {
			opts = append(opts, otlptracehttp.WithInsecure())
		}
		return otlptracehttp.New(ctx, opts...)
	case ExporterStdout:
		return stdouttrace.New(stdouttrace.WithPrettyPrint(), stdouttrace.WithWriter(s.Output))
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedExporter, s.Exporter)
	}
}

func newMetricExporter(ctx context.Context, s Settings) (sdkmetric.Exporter, error) {
	switch s.Exporter {
	case ExporterOTLP:
		host, insecure, err := collector(s.Endpoint)
		if err != nil {
			return nil, err
		}
		opts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(host)}
		if insecure {
			opts = append(opts, otlpmetrichttp.WithInsecure())
		}
		return otlpmetrichttp.New(ctx, opts...)
	case ExporterStdout:
		return stdoutmetric.New(stdoutmetric.WithWriter(s.Output))
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedExporter, s.Exporter)
	}
}

// collector splits an OTLP endpoint URL into the host:port the exporters
// expect and whether the connection is plain HTTP. A bare "host:port" is
// accepted and treated as plain HTTP.
func collector(endpoint string) (host string, insecure bool, err error) {
	if endpoint == "" {
		return "", false, ErrMissingEndpoint
	}
	u, err := url.Parse(endpoint)
	if err != nil || u.Host == "" {
		return endpoint, true, nil
	}
	return u.Host, u.Scheme != "https", nil
}
