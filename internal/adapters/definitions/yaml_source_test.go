package definitions

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/AntonioJCosta/sitealias/internal/core/domain/alias"
)

func writeDefinition(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "aliases.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write definition: %v", err)
	}
	return path
}

func TestNewYAMLFileSource(t *testing.T) {
	if _, err := NewYAMLFileSource(""); err == nil {
		t.Errorf("NewYAMLFileSource(\"\") expected error, got nil")
	}

	src, err := NewYAMLFileSource("/tmp/aliases.yaml")
	if err != nil {
		t.Fatalf("NewYAMLFileSource() unexpected error = %v", err)
	}
	if _, ok := src.(*YAMLSource); !ok {
		t.Errorf("NewYAMLFileSource() did not return a *YAMLSource, got %T", src)
	}
	if got := src.Describe(); got != "/tmp/aliases.yaml" {
		t.Errorf("Describe() = %q, want %q", got, "/tmp/aliases.yaml")
	}
}

func TestYAMLSource_LoadRecords(t *testing.T) {
	validYAML := `
aliases:
  - name: dev
    parent: acme.dev
    uri: dev.SUBDOMAIN.acme.io
  - name: prod
    parent: acme.prod
    uri: SUBDOMAIN.acme.io
    command-specific:
      rsync:
        simulate: 1
`
	expectedValid := []alias.Record{
		{Name: "dev", Parent: "acme.dev", URI: "dev.SUBDOMAIN.acme.io"},
		{
			Name: "prod", Parent: "acme.prod", URI: "SUBDOMAIN.acme.io",
			CommandOverrides: map[string]map[string]string{"rsync": {"simulate": "1"}},
		},
	}

	tests := []struct {
		name                string
		content             string
		wantRecords         []alias.Record
		wantMalformed       bool
		wantErrorMsgSnippet string
	}{
		{
			name:        "valid definition",
			content:     validYAML,
			wantRecords: expectedValid,
		},
		{
			name:                "empty file",
			content:             "",
			wantMalformed:       true,
			wantErrorMsgSnippet: "definition is empty",
		},
		{
			name:                "comments only",
			content:             "# nothing here\n",
			wantMalformed:       true,
			wantErrorMsgSnippet: "definition is empty",
		},
		{
			name:                "missing aliases list",
			content:             "{}\n",
			wantMalformed:       true,
			wantErrorMsgSnippet: `missing "aliases" list`,
		},
		{
			name: "unknown field",
			content: `
aliases:
  - name: dev
    parent: acme.dev
    uri: dev.SUBDOMAIN.acme.io
    host: web1
`,
			wantMalformed:       true,
			wantErrorMsgSnippet: "host",
		},
		{
			name: "wrong value type",
			content: `
aliases:
  - name: dev
    parent: [acme, dev]
    uri: dev.SUBDOMAIN.acme.io
`,
			wantMalformed: true,
		},
		{
			name: "second document",
			content: `
aliases:
  - name: dev
    parent: acme.dev
    uri: dev.SUBDOMAIN.acme.io
---
aliases:
  - name: prod
    parent: acme.prod
    uri: SUBDOMAIN.acme.io
`,
			wantMalformed:       true,
			wantErrorMsgSnippet: "single YAML document",
		},
		{
			name:          "not a mapping",
			content:       "- name: dev\n",
			wantMalformed: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src, err := NewYAMLFileSource(writeDefinition(t, tt.content))
			if err != nil {
				t.Fatalf("NewYAMLFileSource() failed unexpectedly: %v", err)
			}

			records, err := src.LoadRecords()

			if tt.wantMalformed {
				if !errors.Is(err, alias.ErrMalformedDefinition) {
					t.Fatalf("LoadRecords() error = %v, want ErrMalformedDefinition", err)
				}
				if tt.wantErrorMsgSnippet != "" && !strings.Contains(err.Error(), tt.wantErrorMsgSnippet) {
					t.Errorf("LoadRecords() error = %q, want error to contain %q", err.Error(), tt.wantErrorMsgSnippet)
				}
				if records != nil {
					t.Errorf("LoadRecords() expected nil records on error, got %#v", records)
				}
				return
			}

			if err != nil {
				t.Fatalf("LoadRecords() unexpected error = %v", err)
			}
			if !reflect.DeepEqual(records, tt.wantRecords) {
				t.Errorf("LoadRecords() = %#v, want %#v", records, tt.wantRecords)
			}
		})
	}
}

func TestYAMLSource_MissingFile(t *testing.T) {
	src, err := NewYAMLFileSource(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("NewYAMLFileSource() failed unexpectedly: %v", err)
	}

	_, err = src.LoadRecords()
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("LoadRecords() error = %v, want os.ErrNotExist", err)
	}
}

func TestEmbeddedSource(t *testing.T) {
	src := NewEmbeddedSource()
	if got := src.Describe(); got != "embedded" {
		t.Errorf("Describe() = %q, want %q", got, "embedded")
	}

	records, err := src.LoadRecords()
	if err != nil {
		t.Fatalf("LoadRecords() unexpected error = %v", err)
	}
	want := Canonical("mysite", "mysite.com")
	if !reflect.DeepEqual(records, want) {
		t.Errorf("embedded records = %#v, want %#v", records, want)
	}
}

func TestDuplicateNamesInFileAreMalformed(t *testing.T) {
	content := `
aliases:
  - name: dev
    parent: acme.dev
    uri: dev.SUBDOMAIN.acme.io
  - name: dev
    parent: other.dev
    uri: dev.SUBDOMAIN.other.io
`
	src, err := NewYAMLFileSource(writeDefinition(t, content))
	if err != nil {
		t.Fatalf("NewYAMLFileSource() failed unexpectedly: %v", err)
	}
	records, err := src.LoadRecords()
	if err != nil {
		t.Fatalf("LoadRecords() unexpected error = %v", err)
	}

	if _, err := alias.NewTable(records); !errors.Is(err, alias.ErrMalformedDefinition) {
		t.Errorf("NewTable() error = %v, want ErrMalformedDefinition", err)
	}
}
