package validation

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/workitems/internal/app/fanout"
	"github.com/jsamuelsen11/workitems/internal/app/runctx"
	"github.com/jsamuelsen11/workitems/internal/domain/validator"
	"github.com/jsamuelsen11/workitems/internal/domain/workitem"
	"github.com/jsamuelsen11/workitems/internal/platform/logging"
	"github.com/jsamuelsen11/workitems/internal/platform/telemetry"
	"github.com/jsamuelsen11/workitems/internal/ports"
)

// Compile-time check that Manager implements ports.Validator.
var _ ports.Validator = (*Manager)(nil)

const tracerName = "github.com/jsamuelsen11/workitems/internal/app/validation"

// Manager runs the composed validators for a work item and aggregates their
// findings. It implements ports.Validator and is safe for concurrent use.
type Manager struct {
	composer    *Composer
	logger      *slog.Logger
	metrics     *telemetry.Metrics
	concurrency int
	newRunID    func() string
}

// ManagerOption configures a Manager.
type ManagerOption func(*Manager)

// WithConcurrency runs up to n validators in parallel. The report order is
// unaffected. Values below 2 run validators sequentially.
func WithConcurrency(n int) ManagerOption {
	return func(m *Manager) {
		m.concurrency = n
	}
}

// WithMetrics records run duration, run count, and finding counts.
func WithMetrics(metrics *telemetry.Metrics) ManagerOption {
	return func(m *Manager) {
		m.metrics = metrics
	}
}

// WithRunIDGenerator replaces the UUID generator used for run ids.
func WithRunIDGenerator(fn func() string) ManagerOption {
	return func(m *Manager) {
		m.newRunID = fn
	}
}

// NewManager creates a Manager that validates with the validators composed by
// c. A nil logger discards log output.
func NewManager(c *Composer, logger *slog.Logger, opts ...ManagerOption) *Manager {
	m := &Manager{
		composer:    c,
		logger:      logging.OrDiscard(logger),
		concurrency: 1,
		newRunID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Validate runs every validator that applies to item in its current state
// and returns the concatenated findings in composition order. item must
// already reflect changes. An empty, non-nil slice means the item is valid.
//
// A structural failure (descriptor lookup, an unreachable collaborator, or
// cancellation of ctx) aborts the run and is returned as an error with no
// partial report.
func (m *Manager) Validate(ctx context.Context, item *workitem.WorkItem, changes []workitem.PropertyChange) ([]workitem.ErrorMessage, error) {
	runID := m.newRunID()
	logger := m.logger.With(
		slog.String("run_id", runID),
		slog.String("work_item", item.ProjectCode+"/"+item.ID),
		slog.String("work_item_type", item.WorkItemType),
	)

	ctx = runctx.WithRun(ctx, runctx.New(runID))
	ctx = logging.WithLogger(ctx, logger)

	ctx, span := otel.Tracer(tracerName).Start(ctx, "validation.Validate",
		trace.WithAttributes(
			attribute.String("validation.run_id", runID),
			attribute.String("workitem.type", item.WorkItemType),
			attribute.Int("validation.changes", len(changes)),
		),
	)
	defer span.End()

	logger.InfoContext(ctx, "validating work item", slog.Int("changes", len(changes)))
	start := time.Now()

	findings, err := m.run(ctx, item, changes)
	m.recordMetrics(ctx, item, start, findings, err)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		logger.ErrorContext(ctx, "failed to validate work item",
			slog.String("operation", "Validate"),
			slog.Any("error", err),
		)
		return nil, err
	}

	span.SetAttributes(attribute.Int("validation.findings", len(findings)))
	logger.InfoContext(ctx, "validated work item",
		slog.Int("findings", len(findings)),
		slog.Duration("duration", time.Since(start)),
	)
	return findings, nil
}

func (m *Manager) run(ctx context.Context, item *workitem.WorkItem, changes []workitem.PropertyChange) ([]workitem.ErrorMessage, error) {
	validators, err := m.composer.Compose(ctx, item, changes)
	if err != nil {
		return nil, fmt.Errorf("composing validators: %w", err)
	}

	if m.concurrency > 1 && len(validators) > 1 {
		return m.runParallel(ctx, item, changes, validators)
	}

	findings := make([]workitem.ErrorMessage, 0)
	for _, v := range validators {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("validation abandoned: %w", err)
		}
		found, err := v.Validate(ctx, item, changes)
		if err != nil {
			return nil, fmt.Errorf("running %s validator: %w", v.Name(), err)
		}
		findings = append(findings, found...)
	}
	return findings, nil
}

// runParallel runs validators on a bounded worker pool. fanout.Map keeps the
// input order, so concatenation reproduces the sequential report.
func (m *Manager) runParallel(ctx context.Context, item *workitem.WorkItem, changes []workitem.PropertyChange, validators []validator.Validator) ([]workitem.ErrorMessage, error) {
	reports, err := fanout.Map(ctx, m.concurrency, validators,
		func(ctx context.Context, v validator.Validator) ([]workitem.ErrorMessage, error) {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			found, err := v.Validate(ctx, item, changes)
			if err != nil {
				return nil, fmt.Errorf("running %s validator: %w", v.Name(), err)
			}
			return found, nil
		})
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("validation abandoned: %w", ctxErr)
		}
		return nil, err
	}

	findings := make([]workitem.ErrorMessage, 0)
	for _, found := range reports {
		findings = append(findings, found...)
	}
	return findings, nil
}

func (m *Manager) recordMetrics(ctx context.Context, item *workitem.WorkItem, start time.Time, findings []workitem.ErrorMessage, err error) {
	if m.metrics == nil {
		return
	}

	result := "valid"
	switch {
	case err != nil:
		result = "error"
	case len(findings) > 0:
		result = "invalid"
	}

	attrs := metric.WithAttributes(
		telemetry.AttrWorkItemType.String(item.WorkItemType),
		telemetry.AttrResult.String(result),
	)
	m.metrics.ValidationRunDuration.Record(ctx, time.Since(start).Seconds(), attrs)
	m.metrics.ValidationRunTotal.Add(ctx, 1, attrs)

	for _, f := range findings {
		m.metrics.ValidationFindingsTotal.Add(ctx, 1, metric.WithAttributes(
			telemetry.AttrWorkItemType.String(item.WorkItemType),
			telemetry.AttrSource.String(f.Source),
		))
	}
}
