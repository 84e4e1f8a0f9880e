package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jsamuelsen11/workitems/internal/adapters/cli/dto"
)

// useRepo runs the command from the repository root with the local profile.
func useRepo(t *testing.T) {
	t.Helper()
	t.Chdir("../..")
	t.Setenv("APP_PROFILE", "local")
	t.Setenv("APP_LOG_LEVEL", "error")
}

func TestRun_ExitCodes(t *testing.T) {
	tests := []struct {
		name        string
		descriptors func(t *testing.T) string
		request     string
		wantCode    int
		wantErr     bool
	}{
		{
			name:        "valid template",
			descriptors: func(*testing.T) string { return "descriptors" },
			request:     `{"template":{"project_code":"PRJ","work_item_type":"Bug"},"properties":[{"name":"Title","value":"Crash on save"}]}`,
			wantCode:    dto.ExitValid,
		},
		{
			name:        "findings",
			descriptors: func(*testing.T) string { return "descriptors" },
			request:     `{"template":{"project_code":"PRJ","work_item_type":"Bug"},"properties":[{"name":"Priority","value":"P9"}]}`,
			wantCode:    dto.ExitInvalid,
		},
		{
			name:        "malformed request",
			descriptors: func(*testing.T) string { return "descriptors" },
			request:     `{"template":`,
			wantCode:    dto.ExitBadRequest,
		},
		{
			name: "unreadable descriptor directory",
			descriptors: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "missing")
			},
			wantCode: dto.ExitInternal,
			wantErr:  true,
		},
		{
			name: "invalid descriptor document",
			descriptors: func(t *testing.T) string {
				dir := t.TempDir()
				doc := "name: Broken\nproperties:\n  - name: Title\n"
				if err := os.WriteFile(filepath.Join(dir, "broken.yaml"), []byte(doc), 0o600); err != nil {
					t.Fatal(err)
				}
				return dir
			},
			wantCode: dto.ExitDescriptor,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			useRepo(t)
			t.Setenv("APP_DESCRIPTORS_DIR", tt.descriptors(t))

			var out bytes.Buffer
			code, err := run(nil, strings.NewReader(tt.request), &out)

			if code != tt.wantCode {
				t.Errorf("run() code = %d, want %d (err %v, output %s)", code, tt.wantCode, err, out.String())
			}
			if (err != nil) != tt.wantErr {
				t.Errorf("run() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && !json.Valid(out.Bytes()) {
				t.Errorf("output is not JSON: %s", out.String())
			}
		})
	}
}

func TestRun_MissingProfile(t *testing.T) {
	t.Setenv("APP_PROFILE", "")

	code, err := run(nil, strings.NewReader("{}"), &bytes.Buffer{})
	if code != dto.ExitInternal || err == nil {
		t.Errorf("run() = %d, %v, want %d and an error", code, err, dto.ExitInternal)
	}
}
