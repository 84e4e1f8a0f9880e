// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen11/workitems/internal/domain/workitem"
	"github.com/jsamuelsen11/workitems/internal/platform/logging"
	"github.com/jsamuelsen11/workitems/internal/ports"
)

// Compile-time check that WorkItemService implements ports.WorkItemService.
var _ ports.WorkItemService = (*WorkItemService)(nil)

// WorkItemService implements ports.WorkItemService. It turns requested
// property values into applied changes and hands the result to the
// validator. It holds no business rules of its own.
type WorkItemService struct {
	descriptors ports.DescriptorProvider
	validator   ports.Validator
	logger      *slog.Logger
}

// NewWorkItemService creates a WorkItemService. The descriptor port supplies
// work item types for templates; the validator port checks applied changes.
func NewWorkItemService(descriptors ports.DescriptorProvider, validator ports.Validator, logger *slog.Logger) *WorkItemService {
	return &WorkItemService{
		descriptors: descriptors,
		validator:   validator,
		logger:      logging.OrDiscard(logger),
	}
}

// NewTemplate returns an unsaved work item of the named type with every
// declared property at its initial value.
func (s *WorkItemService) NewTemplate(ctx context.Context, projectCode, workItemType string) (*workitem.WorkItem, error) {
	s.logger.InfoContext(ctx, "creating work item template",
		slog.String("project", projectCode),
		slog.String("work_item_type", workItemType),
	)

	t, err := s.descriptors.WorkItemType(ctx, workItemType)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to look up work item type",
			slog.String("operation", "NewTemplate"),
			slog.String("work_item_type", workItemType),
			slog.Any("error", err),
		)
		return nil, err
	}

	return t.NewWorkItem(projectCode, ""), nil
}

// ApplyChanges applies properties to a copy of item and validates the copy.
// A request that changes nothing still validates the item as it stands.
func (s *WorkItemService) ApplyChanges(ctx context.Context, item *workitem.WorkItem, properties []workitem.Property) (*ports.ApplyResult, error) {
	changes := workitem.Diff(item, properties)
	s.logger.InfoContext(ctx, "applying work item changes",
		slog.String("project", item.ProjectCode),
		slog.String("id", item.ID),
		slog.Int("changes", len(changes)),
	)

	next := item.Apply(changes)

	findings, err := s.validator.Validate(ctx, next, changes)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to validate work item changes",
			slog.String("operation", "ApplyChanges"),
			slog.String("id", item.ID),
			slog.Any("error", err),
		)
		return nil, err
	}

	return &ports.ApplyResult{
		Success:  len(findings) == 0,
		WorkItem: next,
		Changes:  changes,
		Errors:   findings,
	}, nil
}
