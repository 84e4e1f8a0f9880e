package workitem

import "fmt"

// ErrorMessage is one validation finding, addressable by project, work item,
// and property. Property is empty for entity-level findings. ErrorCode is a
// machine-readable code and may be empty.
type ErrorMessage struct {
	ProjectCode string
	ID          string
	Property    string
	Source      string
	ErrorCode   string
	Message     string
}

// NewErrorMessage creates a finding for the given work item.
func NewErrorMessage(item *WorkItem, property, source, code, message string) ErrorMessage {
	return ErrorMessage{
		ProjectCode: item.ProjectCode,
		ID:          item.ID,
		Property:    property,
		Source:      source,
		ErrorCode:   code,
		Message:     message,
	}
}

// String implements fmt.Stringer.
func (e ErrorMessage) String() string {
	if e.Property == "" {
		return fmt.Sprintf("%s/%s: %s: %s", e.ProjectCode, e.ID, e.Source, e.Message)
	}
	return fmt.Sprintf("%s/%s.%s: %s: %s", e.ProjectCode, e.ID, e.Property, e.Source, e.Message)
}
