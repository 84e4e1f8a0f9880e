package acl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/workitems/internal/domain"
	"github.com/jsamuelsen11/workitems/internal/platform/httpclient"
	"github.com/jsamuelsen11/workitems/internal/platform/logging"
)

// Call describes one JSON exchange with the value API.
type Call struct {
	Method string
	Path   string

	// Want is the only status treated as success.
	Want int

	// In is marshaled as the request body. Nil sends no body.
	In any

	// Out receives the decoded response body. Nil discards it.
	Out any
}

// Requester runs Calls against the client's base URL and turns every failure
// into a domain error.
type Requester struct {
	client *httpclient.Client
	logger *slog.Logger
}

// NewRequester creates a Requester sending through client.
func NewRequester(client *httpclient.Client, logger *slog.Logger) *Requester {
	return &Requester{client: client, logger: logging.OrDiscard(logger)}
}

// Do performs c. A status other than c.Want goes through
// TranslateHTTPError. A transport failure, an open circuit breaker included,
// wraps domain.ErrUnavailable unless ctx ended first.
func (r *Requester) Do(ctx context.Context, c Call) error {
	req, err := r.newRequest(ctx, c)
	if err != nil {
		return err
	}

	resp, err := r.client.Do(ctx, req)
	if resp != nil {
		defer r.closeBody(ctx, resp)
	}

	switch {
	case resp != nil && resp.StatusCode != c.Want:
		// Exhausted retries return the last response together with an error;
		// the response says more than the error does.
		r.logger.ErrorContext(ctx, "unexpected status",
			slog.String("method", c.Method),
			slog.String("path", c.Path),
			slog.Int("status", resp.StatusCode),
			slog.Int("want_status", c.Want),
		)
		return TranslateHTTPError(resp)
	case err != nil && ctx.Err() != nil:
		return fmt.Errorf("%s %s: %w", c.Method, c.Path, err)
	case err != nil:
		r.logger.ErrorContext(ctx, "request failed",
			slog.String("method", c.Method),
			slog.String("path", c.Path),
			slog.Any("error", err),
		)
		return fmt.Errorf("%s %s: %w: %w", c.Method, c.Path, domain.ErrUnavailable, err)
	}

	if c.Out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(c.Out); err != nil {
		return fmt.Errorf("decoding response from %s %s: %w", c.Method, c.Path, err)
	}
	return nil
}

func (r *Requester) newRequest(ctx context.Context, c Call) (*http.Request, error) {
	var body io.Reader = http.NoBody
	if c.In != nil {
		b, err := json.Marshal(c.In)
		if err != nil {
			return nil, fmt.Errorf("marshaling %s %s body: %w", c.Method, c.Path, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, c.Method, r.client.BaseURL()+c.Path, body)
	if err != nil {
		return nil, fmt.Errorf("creating %s %s request: %w", c.Method, c.Path, err)
	}
	req.Header.Set("Accept", "application/json")
	if c.In != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

func (r *Requester) closeBody(ctx context.Context, resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		r.logger.WarnContext(ctx, "failed to close response body", slog.Any("error", err))
	}
}
