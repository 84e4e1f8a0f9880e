package workitem

// PropertyChange is a single observed mutation produced by the caller before
// validation begins. It is ephemeral and never persisted.
type PropertyChange struct {
	Name     string
	OldValue string
	Value    string

	// DataType is the requested data type. It is only used when the change
	// adds a property the item does not carry yet.
	DataType string
}

// Diff computes the changes needed to bring item to the requested property
// values. Properties whose value is unchanged produce no change. The order of
// requested is preserved.
func Diff(item *WorkItem, requested []Property) []PropertyChange {
	changes := make([]PropertyChange, 0, len(requested))
	for _, p := range requested {
		current, ok := item.Property(p.Name)
		if ok && current.Value == p.Value {
			continue
		}
		changes = append(changes, PropertyChange{
			Name:     p.Name,
			OldValue: current.Value,
			Value:    p.Value,
			DataType: p.DataType,
		})
	}
	return changes
}

// Targets reports whether any change in changes targets the named property.
func Targets(changes []PropertyChange, name string) bool {
	for _, c := range changes {
		if c.Name == name {
			return true
		}
	}
	return false
}
