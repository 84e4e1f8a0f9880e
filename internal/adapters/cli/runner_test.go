package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/workitems/internal/adapters/cli/dto"
	"github.com/jsamuelsen11/workitems/internal/domain"
	"github.com/jsamuelsen11/workitems/internal/domain/workitem"
	"github.com/jsamuelsen11/workitems/internal/ports"
	"github.com/jsamuelsen11/workitems/mocks"
)

func TestRunner_Run_WorkItem(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockWorkItemService(t)
	svc.EXPECT().
		ApplyChanges(mock.Anything, mock.MatchedBy(func(w *workitem.WorkItem) bool {
			return w.ID == "PRJ-1" && w.Value("Title") == "Crash"
		}), []workitem.Property{{Name: "Priority", Value: "P9"}}).
		RunAndReturn(func(_ context.Context, w *workitem.WorkItem, _ []workitem.Property) (*ports.ApplyResult, error) {
			return &ports.ApplyResult{
				Success:  false,
				WorkItem: w,
				Errors: []workitem.ErrorMessage{
					workitem.NewErrorMessage(w, "Priority", "ValueProviderValidator", "", "not allowed"),
				},
			}, nil
		})

	in := strings.NewReader(`{
		"work_item": {
			"project_code": "PRJ", "id": "PRJ-1", "work_item_type": "Bug",
			"properties": [{"name": "Title", "value": "Crash"}]
		},
		"properties": [{"name": "Priority", "value": "P9"}]
	}`)
	var out bytes.Buffer

	code := NewRunner(svc, nil).Run(context.Background(), in, &out)

	if code != dto.ExitInvalid {
		t.Errorf("Run() = %d, want %d", code, dto.ExitInvalid)
	}
	var resp dto.ApplyResponse
	if err := json.Unmarshal(out.Bytes(), &resp); err != nil {
		t.Fatalf("Unmarshal() error = %v\n%s", err, out.String())
	}
	if resp.Success || len(resp.Errors) != 1 || resp.Errors[0].Property != "Priority" {
		t.Errorf("response = %+v, want one finding on Priority", resp)
	}
}

func TestRunner_Run_Template(t *testing.T) {
	t.Parallel()

	template := &workitem.WorkItem{ProjectCode: "PRJ", WorkItemType: "Bug"}
	svc := mocks.NewMockWorkItemService(t)
	svc.EXPECT().NewTemplate(mock.Anything, "PRJ", "Bug").Return(template, nil)
	svc.EXPECT().ApplyChanges(mock.Anything, template, mock.Anything).
		Return(&ports.ApplyResult{Success: true, WorkItem: template}, nil)

	in := strings.NewReader(`{"template": {"project_code": "PRJ", "work_item_type": "Bug"}, "properties": []}`)
	var out bytes.Buffer

	if code := NewRunner(svc, nil).Run(context.Background(), in, &out); code != dto.ExitValid {
		t.Errorf("Run() = %d, want %d\n%s", code, dto.ExitValid, out.String())
	}
}

func TestRunner_Run_Failures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		body      string
		setup     func(svc *mocks.MockWorkItemService)
		wantCode  int
		wantTitle string
	}{
		{
			name:      "malformed JSON",
			body:      `{"work_item": `,
			wantCode:  dto.ExitBadRequest,
			wantTitle: "Invalid Request",
		},
		{
			name:      "unknown field",
			body:      `{"item": {}}`,
			wantCode:  dto.ExitBadRequest,
			wantTitle: "Invalid Request",
		},
		{
			name:      "missing work item",
			body:      `{"properties": []}`,
			wantCode:  dto.ExitBadRequest,
			wantTitle: "Invalid Request",
		},
		{
			name: "unknown type",
			body: `{"template": {"project_code": "PRJ", "work_item_type": "Saga"}}`,
			setup: func(svc *mocks.MockWorkItemService) {
				svc.EXPECT().NewTemplate(mock.Anything, "PRJ", "Saga").Return(nil, domain.ErrDescriptorNotFound)
			},
			wantCode:  dto.ExitDescriptor,
			wantTitle: "Unknown Work Item Type",
		},
		{
			name: "collaborator unavailable",
			body: `{"work_item": {"project_code": "PRJ", "work_item_type": "Bug"}}`,
			setup: func(svc *mocks.MockWorkItemService) {
				svc.EXPECT().ApplyChanges(mock.Anything, mock.Anything, mock.Anything).Return(nil, domain.ErrUnavailable)
			},
			wantCode:  dto.ExitUnavailable,
			wantTitle: "Collaborator Unavailable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := mocks.NewMockWorkItemService(t)
			if tt.setup != nil {
				tt.setup(svc)
			}
			var out bytes.Buffer

			code := NewRunner(svc, nil).Run(context.Background(), strings.NewReader(tt.body), &out)

			if code != tt.wantCode {
				t.Errorf("Run() = %d, want %d", code, tt.wantCode)
			}
			var resp dto.ErrorResponse
			if err := json.Unmarshal(out.Bytes(), &resp); err != nil {
				t.Fatalf("Unmarshal() error = %v\n%s", err, out.String())
			}
			if resp.Title != tt.wantTitle {
				t.Errorf("Title = %q, want %q", resp.Title, tt.wantTitle)
			}
		})
	}
}
