package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors for errors.Is() checking.
var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidDescriptor  = errors.New("invalid descriptor")
	ErrDescriptorNotFound = errors.New("descriptor not found")
	ErrUnavailable        = errors.New("unavailable")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidRequest     = errors.New("invalid request")
)

// MsgRequired is the field message used when a mandatory schema attribute is blank.
const MsgRequired = "is required"

// SchemaError provides programmatic access to field-level descriptor construction
// failures. Use errors.Is(err, ErrInvalidDescriptor) for simple checks, or
// errors.As(err, &serr) to access serr.Fields for per-field details.
//
// A SchemaError is a structural failure: it is never reported as a validation
// finding.
type SchemaError struct {
	Subject string
	Fields  map[string]string
}

func (e *SchemaError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		keys = append(keys, field)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, field := range keys {
		parts = append(parts, field+": "+e.Fields[field])
	}

	if e.Subject == "" {
		return fmt.Sprintf("%s: %s", ErrInvalidDescriptor.Error(), strings.Join(parts, "; "))
	}
	return fmt.Sprintf("%s %s: %s", ErrInvalidDescriptor.Error(), e.Subject, strings.Join(parts, "; "))
}

func (e *SchemaError) Unwrap() error {
	return ErrInvalidDescriptor
}

// RequestError reports field-level problems with a caller's request, such as
// a missing work item type. Use errors.Is(err, ErrInvalidRequest) for simple
// checks, or errors.As(err, &rerr) to access rerr.Fields.
type RequestError struct {
	Fields map[string]string
}

func (e *RequestError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		keys = append(keys, field)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, field := range keys {
		parts = append(parts, field+": "+e.Fields[field])
	}
	return fmt.Sprintf("%s: %s", ErrInvalidRequest.Error(), strings.Join(parts, "; "))
}

func (e *RequestError) Unwrap() error {
	return ErrInvalidRequest
}
