// Package cli implements the inbound adapter of the validate command: it
// decodes a JSON request, drives the work item service, and encodes the
// report or the failure as JSON.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/jsamuelsen11/workitems/internal/adapters/cli/dto"
	"github.com/jsamuelsen11/workitems/internal/domain"
	"github.com/jsamuelsen11/workitems/internal/domain/workitem"
	"github.com/jsamuelsen11/workitems/internal/platform/logging"
	"github.com/jsamuelsen11/workitems/internal/ports"
)

// Runner executes one validate request.
type Runner struct {
	svc    ports.WorkItemService
	logger *slog.Logger
}

// NewRunner creates a Runner backed by the given work item service.
func NewRunner(svc ports.WorkItemService, logger *slog.Logger) *Runner {
	return &Runner{svc: svc, logger: logging.OrDiscard(logger)}
}

// Run reads an ApplyRequest from in, applies and validates it, and writes
// either an ApplyResponse or an ErrorResponse to out. It returns the process
// exit code.
func (r *Runner) Run(ctx context.Context, in io.Reader, out io.Writer) int {
	resp, err := r.apply(ctx, in)
	if err != nil {
		r.logger.ErrorContext(ctx, "validate request failed",
			slog.String("operation", "Run"),
			slog.Any("error", err),
		)
		r.write(ctx, out, dto.NewErrorResponse(err))
		return dto.ExitCode(err)
	}

	r.write(ctx, out, resp)
	if !resp.Success {
		return dto.ExitInvalid
	}
	return dto.ExitValid
}

func (r *Runner) apply(ctx context.Context, in io.Reader) (dto.ApplyResponse, error) {
	var req dto.ApplyRequest
	dec := json.NewDecoder(in)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		return dto.ApplyResponse{}, fmt.Errorf("decoding request: %w", &domain.RequestError{
			Fields: map[string]string{"body": err.Error()},
		})
	}
	if err := req.Validate(); err != nil {
		return dto.ApplyResponse{}, err
	}

	var item *workitem.WorkItem
	if req.Template != nil {
		t, err := r.svc.NewTemplate(ctx, req.Template.ProjectCode, req.Template.WorkItemType)
		if err != nil {
			return dto.ApplyResponse{}, err
		}
		item = t
	} else {
		item = dto.ToWorkItem(req.WorkItem)
	}

	result, err := r.svc.ApplyChanges(ctx, item, dto.ToProperties(req.Properties))
	if err != nil {
		return dto.ApplyResponse{}, err
	}
	return dto.ToApplyResponse(result), nil
}

func (r *Runner) write(ctx context.Context, out io.Writer, v any) {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		r.logger.ErrorContext(ctx, "failed to encode response", slog.Any("error", err))
	}
}
