package dto

import (
	"context"
	"errors"
	"sort"

	"github.com/jsamuelsen11/workitems/internal/domain"
)

// Process exit codes written by the validate command.
const (
	ExitValid       = 0 // the work item passed validation
	ExitInvalid     = 1 // validation produced findings
	ExitBadRequest  = 2 // the request document was malformed
	ExitDescriptor  = 3 // the work item type is unknown or its descriptors are invalid
	ExitUnavailable = 4 // a collaborator could not answer
	ExitInternal    = 5
)

// ErrorResponse is a Problem Details style document describing why a
// validation run could not complete.
type ErrorResponse struct {
	Type   string        `json:"type"`
	Title  string        `json:"title"`
	Detail string        `json:"detail,omitempty"`
	Errors []ErrorDetail `json:"errors,omitempty"`
}

// ErrorDetail represents a single field-level problem within an
// ErrorResponse.
type ErrorDetail struct {
	Location string `json:"location"`
	Message  string `json:"message"`
}

// NewErrorResponse creates an ErrorResponse from a structural error.
func NewErrorResponse(err error) ErrorResponse {
	resp := ErrorResponse{
		Type:   "about:blank",
		Title:  errorTitle(err),
		Detail: err.Error(),
	}

	var rerr *domain.RequestError
	var serr *domain.SchemaError
	switch {
	case errors.As(err, &rerr):
		resp.Errors = fieldsToDetails(rerr.Fields)
	case errors.As(err, &serr):
		resp.Errors = fieldsToDetails(serr.Fields)
	}

	return resp
}

// ExitCode maps a structural error to the process exit code.
func ExitCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidRequest):
		return ExitBadRequest
	case errors.Is(err, domain.ErrDescriptorNotFound), errors.Is(err, domain.ErrInvalidDescriptor):
		return ExitDescriptor
	case errors.Is(err, domain.ErrUnavailable), errors.Is(err, domain.ErrForbidden), errors.Is(err, domain.ErrNotFound):
		return ExitUnavailable
	default:
		return ExitInternal
	}
}

func errorTitle(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidRequest):
		return "Invalid Request"
	case errors.Is(err, domain.ErrDescriptorNotFound):
		return "Unknown Work Item Type"
	case errors.Is(err, domain.ErrInvalidDescriptor):
		return "Invalid Descriptor"
	case errors.Is(err, domain.ErrUnavailable), errors.Is(err, domain.ErrForbidden), errors.Is(err, domain.ErrNotFound):
		return "Collaborator Unavailable"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "Validation Abandoned"
	default:
		return "Internal Error"
	}
}

// fieldsToDetails converts field messages to sorted ErrorDetail entries.
func fieldsToDetails(fields map[string]string) []ErrorDetail {
	details := make([]ErrorDetail, 0, len(fields))
	for field, msg := range fields {
		details = append(details, ErrorDetail{Location: field, Message: msg})
	}
	sort.Slice(details, func(i, j int) bool {
		return details[i].Location < details[j].Location
	})
	return details
}
