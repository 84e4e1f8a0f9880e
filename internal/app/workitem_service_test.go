package app

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/workitems/internal/domain"
	"github.com/jsamuelsen11/workitems/internal/domain/descriptor"
	"github.com/jsamuelsen11/workitems/internal/domain/workitem"
	"github.com/jsamuelsen11/workitems/mocks"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func bugItem() *workitem.WorkItem {
	return &workitem.WorkItem{
		ProjectCode:  "PRJ",
		ID:           "PRJ-7",
		WorkItemType: "Bug",
		Properties: []workitem.Property{
			{Name: "Title", DataType: "string", Value: "Crash on save"},
			{Name: "Priority", DataType: "string", Value: "P2"},
		},
	}
}

// --- NewWorkItemService ---

func TestNewWorkItemService_NilLogger(t *testing.T) {
	t.Parallel()

	svc := NewWorkItemService(mocks.NewMockDescriptorProvider(t), mocks.NewMockValidator(t), nil)
	if svc.logger == nil {
		t.Fatal("NewWorkItemService(nil logger) should create a no-op logger, got nil")
	}
}

// --- NewTemplate ---

func TestWorkItemService_NewTemplate(t *testing.T) {
	t.Parallel()

	t.Run("returns item with initial values", func(t *testing.T) {
		t.Parallel()
		descriptors := mocks.NewMockDescriptorProvider(t)
		svc := NewWorkItemService(descriptors, mocks.NewMockValidator(t), discardLogger())

		typ, err := descriptor.NewType("Bug", []descriptor.Property{
			descriptor.MustNewProperty("Title", "string"),
			descriptor.MustNewProperty("Status", "string", descriptor.WithInitialValue("Open")),
		}, nil)
		if err != nil {
			t.Fatalf("NewType() error = %v", err)
		}
		descriptors.EXPECT().WorkItemType(mock.Anything, "Bug").Return(typ, nil)

		got, err := svc.NewTemplate(context.Background(), "PRJ", "Bug")
		if err != nil {
			t.Fatalf("NewTemplate() error = %v, want nil", err)
		}
		if got.ProjectCode != "PRJ" || got.WorkItemType != "Bug" || got.ID != "" {
			t.Errorf("NewTemplate() = %+v, want unsaved PRJ Bug", got)
		}
		if v := got.Value("Status"); v != "Open" {
			t.Errorf("Status = %q, want %q", v, "Open")
		}
		if len(got.Properties) != 2 {
			t.Errorf("len(Properties) = %d, want 2", len(got.Properties))
		}
	})

	t.Run("propagates unknown type", func(t *testing.T) {
		t.Parallel()
		descriptors := mocks.NewMockDescriptorProvider(t)
		svc := NewWorkItemService(descriptors, mocks.NewMockValidator(t), discardLogger())

		descriptors.EXPECT().WorkItemType(mock.Anything, "Epic").Return(nil, domain.ErrDescriptorNotFound)

		_, err := svc.NewTemplate(context.Background(), "PRJ", "Epic")
		if !errors.Is(err, domain.ErrDescriptorNotFound) {
			t.Errorf("NewTemplate() error = %v, want %v", err, domain.ErrDescriptorNotFound)
		}
	})
}

// --- ApplyChanges ---

func TestWorkItemService_ApplyChanges(t *testing.T) {
	t.Parallel()

	t.Run("valid changes succeed", func(t *testing.T) {
		t.Parallel()
		validator := mocks.NewMockValidator(t)
		svc := NewWorkItemService(mocks.NewMockDescriptorProvider(t), validator, discardLogger())

		item := bugItem()
		wantChanges := []workitem.PropertyChange{{Name: "Priority", OldValue: "P2", Value: "P1"}}
		validator.EXPECT().
			Validate(mock.Anything, mock.MatchedBy(func(w *workitem.WorkItem) bool {
				return w.Value("Priority") == "P1"
			}), wantChanges).
			Return([]workitem.ErrorMessage{}, nil)

		got, err := svc.ApplyChanges(context.Background(), item, []workitem.Property{
			{Name: "Title", Value: "Crash on save"},
			{Name: "Priority", Value: "P1"},
		})
		if err != nil {
			t.Fatalf("ApplyChanges() error = %v, want nil", err)
		}
		if !got.Success {
			t.Error("Success = false, want true")
		}
		if len(got.Changes) != 1 {
			t.Errorf("len(Changes) = %d, want 1", len(got.Changes))
		}
		if item.Value("Priority") != "P2" {
			t.Errorf("input item modified: Priority = %q, want %q", item.Value("Priority"), "P2")
		}
		if got.WorkItem.Value("Priority") != "P1" {
			t.Errorf("result Priority = %q, want %q", got.WorkItem.Value("Priority"), "P1")
		}
	})

	t.Run("findings fail the result", func(t *testing.T) {
		t.Parallel()
		validator := mocks.NewMockValidator(t)
		svc := NewWorkItemService(mocks.NewMockDescriptorProvider(t), validator, discardLogger())

		finding := workitem.ErrorMessage{ProjectCode: "PRJ", ID: "PRJ-7", Property: "Priority", Source: "ValueProviderValidator"}
		validator.EXPECT().Validate(mock.Anything, mock.Anything, mock.Anything).
			Return([]workitem.ErrorMessage{finding}, nil)

		got, err := svc.ApplyChanges(context.Background(), bugItem(), []workitem.Property{{Name: "Priority", Value: "P9"}})
		if err != nil {
			t.Fatalf("ApplyChanges() error = %v, want nil", err)
		}
		if got.Success {
			t.Error("Success = true, want false")
		}
		if len(got.Errors) != 1 || got.Errors[0] != finding {
			t.Errorf("Errors = %v, want [%v]", got.Errors, finding)
		}
		if got.WorkItem.Value("Priority") != "P9" {
			t.Errorf("result Priority = %q, want %q", got.WorkItem.Value("Priority"), "P9")
		}
	})

	t.Run("structural failure is returned", func(t *testing.T) {
		t.Parallel()
		validator := mocks.NewMockValidator(t)
		svc := NewWorkItemService(mocks.NewMockDescriptorProvider(t), validator, discardLogger())

		validator.EXPECT().Validate(mock.Anything, mock.Anything, mock.Anything).
			Return(nil, domain.ErrUnavailable)

		got, err := svc.ApplyChanges(context.Background(), bugItem(), []workitem.Property{{Name: "Priority", Value: "P1"}})
		if !errors.Is(err, domain.ErrUnavailable) {
			t.Errorf("ApplyChanges() error = %v, want %v", err, domain.ErrUnavailable)
		}
		if got != nil {
			t.Errorf("ApplyChanges() = %+v, want nil", got)
		}
	})
}
