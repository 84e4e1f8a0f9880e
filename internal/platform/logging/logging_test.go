package logging_test

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/jsamuelsen11/workitems/internal/platform/logging"
)

func TestNew_Format(t *testing.T) {
	t.Parallel()

	tests := []struct {
		format string
		want   string
	}{
		{"json", `"msg":"hello"`},
		{"text", "msg=hello"},
		{"yaml", `"msg":"hello"`},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logging.New("info", tt.format, &buf).Info("hello")

			if out := buf.String(); !strings.Contains(out, tt.want) {
				t.Errorf("output = %q, want it to contain %q", out, tt.want)
			}
		})
	}
}

func TestNew_Level(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level     string
		logAt     slog.Level
		wantEmpty bool
	}{
		{"debug", slog.LevelDebug, false},
		{"info", slog.LevelDebug, true},
		{"INFO", slog.LevelInfo, false},
		{"warn", slog.LevelInfo, true},
		{"error", slog.LevelWarn, true},
		{"verbose", slog.LevelDebug, true},
		{"verbose", slog.LevelInfo, false},
	}

	for _, tt := range tests {
		var buf bytes.Buffer
		logger := logging.New(tt.level, "json", &buf)
		logger.Log(context.Background(), tt.logAt, "msg")

		if got := buf.Len() == 0; got != tt.wantEmpty {
			t.Errorf("New(%q) logging at %v: empty = %v, want %v", tt.level, tt.logAt, got, tt.wantEmpty)
		}
	}
}

func TestNew_DebugLevelIncludesSource(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logging.New("debug", "json", &buf).Debug("hello")

	if !strings.Contains(buf.String(), `"source"`) {
		t.Errorf("output = %q, want source location at debug level", buf.String())
	}
}

func TestFromContext(t *testing.T) {
	t.Parallel()

	if got := logging.FromContext(context.Background()); got != slog.Default() {
		t.Error("FromContext() without logger should return slog.Default()")
	}

	first := slog.New(slog.DiscardHandler)
	second := slog.New(slog.DiscardHandler)
	ctx := logging.WithLogger(logging.WithLogger(context.Background(), first), second)

	if got := logging.FromContext(ctx); got != second {
		t.Error("FromContext() did not return the most recently stored logger")
	}
}

func TestOrDiscard(t *testing.T) {
	t.Parallel()

	if logging.OrDiscard(nil) == nil {
		t.Fatal("OrDiscard(nil) = nil, want a discard logger")
	}

	logger := slog.New(slog.DiscardHandler)
	if got := logging.OrDiscard(logger); got != logger {
		t.Error("OrDiscard(logger) did not return logger unchanged")
	}
}

func TestNew_Redaction(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		attr   slog.Attr
		secret string
	}{
		{"authorization field", slog.String("authorization", "abc123"), "abc123"},
		{"api key header", slog.String("x-api-key", "k-9f8e7d"), "k-9f8e7d"},
		{"password field", slog.String("password", "hunter2"), "hunter2"},
		{"raw property content", slog.String("raw_value", "aGVsbG8gd29ybGQ="), "aGVsbG8gd29ybGQ="},
		{"bearer in free text", slog.String("detail", "sent Bearer eyJhbGciOi"), "eyJhbGciOi"},
		{"inline api key", slog.String("url", "http://x/?api_key=s3cr3t"), "s3cr3t"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logging.New("info", "json", &buf).Info("request", tt.attr)

			if strings.Contains(buf.String(), tt.secret) {
				t.Errorf("output = %q, want %q redacted", buf.String(), tt.secret)
			}
		})
	}
}

func TestNew_DoesNotRedactNonSensitiveFields(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logging.New("info", "json", &buf).Info("validated",
		slog.String("work_item", "FOO/1"),
		slog.String("property", "Title"),
	)

	out := buf.String()
	if !strings.Contains(out, "FOO/1") || !strings.Contains(out, "Title") {
		t.Errorf("output = %q, want non-sensitive fields preserved", out)
	}
}
