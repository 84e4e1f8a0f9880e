package dto

import (
	"fmt"
	"strings"

	"github.com/jsamuelsen11/workitems/internal/domain"
	"github.com/jsamuelsen11/workitems/internal/domain/workitem"
)

// ApplyRequest is the JSON document read by the validate command. Exactly one
// of WorkItem and Template must be set: WorkItem validates changes to an
// existing item, Template starts from a new item of the named type.
type ApplyRequest struct {
	WorkItem   *WorkItemDTO  `json:"work_item,omitempty"`
	Template   *TemplateDTO  `json:"template,omitempty"`
	Properties []PropertyDTO `json:"properties"`
}

// TemplateDTO names the work item type to create a template for.
type TemplateDTO struct {
	ProjectCode  string `json:"project_code"`
	WorkItemType string `json:"work_item_type"`
}

// WorkItemDTO is the JSON form of a work item.
type WorkItemDTO struct {
	ProjectCode  string        `json:"project_code"`
	ID           string        `json:"id"`
	WorkItemType string        `json:"work_item_type"`
	Properties   []PropertyDTO `json:"properties"`
}

// PropertyDTO is the JSON form of a property value.
type PropertyDTO struct {
	Name     string `json:"name"`
	DataType string `json:"data_type,omitempty"`
	Value    string `json:"value"`
}

// Validate checks that required fields are present.
// Returns a *domain.RequestError if any checks fail.
func (r *ApplyRequest) Validate() error {
	fields := make(map[string]string)

	switch {
	case r.WorkItem == nil && r.Template == nil:
		fields["work_item"] = "or template is required"
	case r.WorkItem != nil && r.Template != nil:
		fields["template"] = "must not be set together with work_item"
	case r.WorkItem != nil:
		requireField(fields, "work_item.project_code", r.WorkItem.ProjectCode)
		requireField(fields, "work_item.work_item_type", r.WorkItem.WorkItemType)
		for i, p := range r.WorkItem.Properties {
			requireField(fields, fmt.Sprintf("work_item.properties[%d].name", i), p.Name)
		}
	default:
		requireField(fields, "template.project_code", r.Template.ProjectCode)
		requireField(fields, "template.work_item_type", r.Template.WorkItemType)
	}

	for i, p := range r.Properties {
		requireField(fields, fmt.Sprintf("properties[%d].name", i), p.Name)
	}

	if len(fields) > 0 {
		return &domain.RequestError{Fields: fields}
	}
	return nil
}

func requireField(fields map[string]string, name, value string) {
	if strings.TrimSpace(value) == "" {
		fields[name] = domain.MsgRequired
	}
}

// ToWorkItem converts a WorkItemDTO to a domain work item.
func ToWorkItem(dto *WorkItemDTO) *workitem.WorkItem {
	return &workitem.WorkItem{
		ProjectCode:  dto.ProjectCode,
		ID:           dto.ID,
		WorkItemType: dto.WorkItemType,
		Properties:   ToProperties(dto.Properties),
	}
}

// ToProperties converts property DTOs to domain properties, in order.
func ToProperties(dtos []PropertyDTO) []workitem.Property {
	props := make([]workitem.Property, len(dtos))
	for i, p := range dtos {
		props[i] = workitem.Property{Name: p.Name, DataType: p.DataType, Value: p.Value}
	}
	return props
}
