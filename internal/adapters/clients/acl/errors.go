// Package acl is the anti-corruption layer between the engine and the
// downstream value API. Wire shapes and their translation live in acl/values;
// this package owns transport and the mapping of HTTP failures onto domain
// errors.
package acl

import (
	"cmp"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/workitems/internal/domain"
)

// maxErrorBodySize limits how much of an error response is read.
const maxErrorBodySize = 1 << 20

// statusErrors maps downstream statuses onto domain sentinels. Any 5xx not
// listed is ErrUnavailable; anything else unlisted is unexpected.
var statusErrors = map[int]error{
	http.StatusNotFound:            domain.ErrNotFound,
	http.StatusBadRequest:          domain.ErrInvalidDescriptor,
	http.StatusUnprocessableEntity: domain.ErrInvalidDescriptor,
	http.StatusUnauthorized:        domain.ErrForbidden,
	http.StatusForbidden:           domain.ErrForbidden,
	http.StatusTooManyRequests:     domain.ErrUnavailable,
}

// problem is an RFC 7807 body as the value API sends it.
type problem struct {
	Title  string `json:"title"`
	Detail string `json:"detail"`
	Errors []struct {
		Location string `json:"location"`
		Message  string `json:"message"`
	} `json:"errors"`
}

// TranslateHTTPError maps a failed value API response onto a domain error.
//
// A 400 or 422 means the API rejected the value provider configuration, which
// is a descriptor problem: with field-level errors the result is a
// *domain.SchemaError naming the offending provider fields. The problem
// detail, when present, becomes the error message.
func TranslateHTTPError(resp *http.Response) error {
	p := readProblem(resp)
	detail := cmp.Or(p.Detail, p.Title, http.StatusText(resp.StatusCode))

	sentinel, ok := statusErrors[resp.StatusCode]
	if !ok && resp.StatusCode >= http.StatusInternalServerError {
		sentinel, ok = domain.ErrUnavailable, true
	}

	switch {
	case !ok:
		return fmt.Errorf("unexpected status %d from value API: %s", resp.StatusCode, detail)
	case errors.Is(sentinel, domain.ErrInvalidDescriptor) && len(p.Errors) > 0:
		return p.schemaError(detail)
	default:
		return fmt.Errorf("%s: %w", detail, sentinel)
	}
}

// readProblem decodes an application/problem+json body. Any other body,
// or one that fails to decode, yields the zero problem.
func readProblem(resp *http.Response) problem {
	var p problem
	if resp.Body == nil {
		return p
	}
	mediaType, _, err := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	if err != nil || mediaType != "application/problem+json" {
		return p
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxErrorBodySize)).Decode(&p); err != nil {
		return problem{}
	}
	return p
}

// schemaError keys field messages by location, without the "body." prefix
// the API puts on request fields.
func (p problem) schemaError(subject string) *domain.SchemaError {
	fields := make(map[string]string, len(p.Errors))
	for _, e := range p.Errors {
		fields[strings.TrimPrefix(e.Location, "body.")] = e.Message
	}
	return &domain.SchemaError{Subject: subject, Fields: fields}
}
