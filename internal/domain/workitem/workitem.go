// Package workitem defines the work item entity being validated and the value
// types that describe a validation run: applied property changes and findings.
package workitem

import "strings"

// WorkItem is the business object being validated. Its shape is not fixed:
// the set of properties is declared by the descriptors of its WorkItemType.
type WorkItem struct {
	ProjectCode  string
	ID           string
	WorkItemType string
	Properties   []Property
}

// Property is a single named value carried by a work item.
type Property struct {
	Name     string
	DataType string
	Value    string
}

// Property returns the property with the given name.
func (w *WorkItem) Property(name string) (Property, bool) {
	for _, p := range w.Properties {
		if p.Name == name {
			return p, true
		}
	}
	return Property{}, false
}

// Value returns the value of the named property, or "" if the item has no
// such property.
func (w *WorkItem) Value(name string) string {
	p, _ := w.Property(name)
	return p.Value
}

// HasValue reports whether the named property exists and carries a
// non-blank value.
func (w *WorkItem) HasValue(name string) bool {
	return !IsBlank(w.Value(name))
}

// Clone returns a deep copy of the work item.
func (w *WorkItem) Clone() *WorkItem {
	clone := *w
	clone.Properties = make([]Property, len(w.Properties))
	copy(clone.Properties, w.Properties)
	return &clone
}

// Apply returns a copy of the work item with the given changes applied in
// order. Changes to unknown properties append a new property with the
// change's data type. The receiver is never modified.
func (w *WorkItem) Apply(changes []PropertyChange) *WorkItem {
	next := w.Clone()
	for _, c := range changes {
		next.set(c)
	}
	return next
}

func (w *WorkItem) set(c PropertyChange) {
	for i := range w.Properties {
		if w.Properties[i].Name == c.Name {
			w.Properties[i].Value = c.Value
			return
		}
	}
	w.Properties = append(w.Properties, Property{Name: c.Name, DataType: c.DataType, Value: c.Value})
}

// IsBlank reports whether a property value is empty or whitespace only.
func IsBlank(value string) bool {
	return strings.TrimSpace(value) == ""
}
