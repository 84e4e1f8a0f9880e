// Package dto provides the JSON request and response documents of the
// validate command, and the Problem Details document it writes on failure.
package dto

import (
	"github.com/jsamuelsen11/workitems/internal/domain/workitem"
	"github.com/jsamuelsen11/workitems/internal/ports"
)

// ApplyResponse is the JSON report written for a completed validation run.
// Errors is always present, and empty when Success is true.
type ApplyResponse struct {
	Success  bool              `json:"success"`
	WorkItem WorkItemDTO       `json:"work_item"`
	Changes  []ChangeDTO       `json:"changes"`
	Errors   []ErrorMessageDTO `json:"errors"`
}

// ChangeDTO is the JSON form of an applied property change.
type ChangeDTO struct {
	Name     string `json:"name"`
	OldValue string `json:"old_value"`
	Value    string `json:"value"`
}

// ErrorMessageDTO is the JSON form of a validation finding.
type ErrorMessageDTO struct {
	ProjectCode string `json:"project_code"`
	ID          string `json:"id"`
	Property    string `json:"property,omitempty"`
	Source      string `json:"source"`
	ErrorCode   string `json:"error_code"`
	Message     string `json:"message"`
}

// ToApplyResponse converts an application ApplyResult to its JSON report.
func ToApplyResponse(r *ports.ApplyResult) ApplyResponse {
	resp := ApplyResponse{
		Success:  r.Success,
		WorkItem: ToWorkItemDTO(r.WorkItem),
		Changes:  make([]ChangeDTO, len(r.Changes)),
		Errors:   make([]ErrorMessageDTO, len(r.Errors)),
	}
	for i, c := range r.Changes {
		resp.Changes[i] = ChangeDTO{Name: c.Name, OldValue: c.OldValue, Value: c.Value}
	}
	for i, e := range r.Errors {
		resp.Errors[i] = ErrorMessageDTO{
			ProjectCode: e.ProjectCode,
			ID:          e.ID,
			Property:    e.Property,
			Source:      e.Source,
			ErrorCode:   e.ErrorCode,
			Message:     e.Message,
		}
	}
	return resp
}

// ToWorkItemDTO converts a domain work item to its JSON form.
func ToWorkItemDTO(w *workitem.WorkItem) WorkItemDTO {
	props := make([]PropertyDTO, len(w.Properties))
	for i, p := range w.Properties {
		props[i] = PropertyDTO{Name: p.Name, DataType: p.DataType, Value: p.Value}
	}
	return WorkItemDTO{
		ProjectCode:  w.ProjectCode,
		ID:           w.ID,
		WorkItemType: w.WorkItemType,
		Properties:   props,
	}
}
