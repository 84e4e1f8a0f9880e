package workitem_test

import (
	"testing"

	"github.com/jsamuelsen11/workitems/internal/domain/workitem"
)

func sample() *workitem.WorkItem {
	return &workitem.WorkItem{
		ProjectCode:  "FOO",
		ID:           "1",
		WorkItemType: "BAR",
		Properties: []workitem.Property{
			{Name: "A", DataType: "String", Value: "a"},
			{Name: "B", DataType: "String", Value: ""},
		},
	}
}

func TestWorkItem_Apply(t *testing.T) {
	t.Parallel()

	item := sample()
	next := item.Apply([]workitem.PropertyChange{
		{Name: "B", Value: "d"},
		{Name: "C", Value: "new"},
	})

	if item.Value("B") != "" {
		t.Errorf("original B = %q, Apply must not mutate the receiver", item.Value("B"))
	}
	if len(item.Properties) != 2 {
		t.Errorf("original Properties len = %d, want 2", len(item.Properties))
	}
	if next.Value("B") != "d" {
		t.Errorf("B = %q, want %q", next.Value("B"), "d")
	}
	if next.Value("C") != "new" {
		t.Errorf("C = %q, want %q", next.Value("C"), "new")
	}
}

func TestWorkItem_Apply_CarriesDataType(t *testing.T) {
	t.Parallel()

	changes := workitem.Diff(sample(), []workitem.Property{
		{Name: "A", DataType: "Integer", Value: "z"},
		{Name: "Screenshot", DataType: "bytes", Value: "aGk="},
	})
	next := sample().Apply(changes)

	added, ok := next.Property("Screenshot")
	if !ok {
		t.Fatal("Apply() did not add Screenshot")
	}
	if added.DataType != "bytes" {
		t.Errorf("added DataType = %q, want %q", added.DataType, "bytes")
	}
	if got, _ := next.Property("A"); got.DataType != "String" {
		t.Errorf("existing DataType = %q, want it kept as %q", got.DataType, "String")
	}
}

func TestWorkItem_HasValue(t *testing.T) {
	t.Parallel()

	item := sample()
	item.Properties = append(item.Properties, workitem.Property{Name: "C", Value: "  "})

	tests := map[string]bool{"A": true, "B": false, "C": false, "missing": false}
	for name, want := range tests {
		if got := item.HasValue(name); got != want {
			t.Errorf("HasValue(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestDiff(t *testing.T) {
	t.Parallel()

	changes := workitem.Diff(sample(), []workitem.Property{
		{Name: "A", Value: "a"},
		{Name: "B", Value: "b"},
		{Name: "C", Value: "c"},
	})

	if len(changes) != 2 {
		t.Fatalf("Diff() len = %d, want 2 (unchanged A skipped)", len(changes))
	}
	if changes[0].Name != "B" || changes[0].OldValue != "" || changes[0].Value != "b" {
		t.Errorf("changes[0] = %+v", changes[0])
	}
	if changes[1].Name != "C" {
		t.Errorf("changes[1].Name = %q, want C", changes[1].Name)
	}
	if !workitem.Targets(changes, "C") || workitem.Targets(changes, "A") {
		t.Error("Targets() mismatch")
	}
}

func TestErrorMessage_String(t *testing.T) {
	t.Parallel()

	item := sample()
	em := workitem.NewErrorMessage(item, "B", "ValueProviderValidator", "", "not allowed")
	if got, want := em.String(), "FOO/1.B: ValueProviderValidator: not allowed"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	entity := workitem.NewErrorMessage(item, "", "Completeness", "PropertyUnknown", "x")
	if got, want := entity.String(), "FOO/1: Completeness: x"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
