package alias

import (
	"fmt"
	"sort"
	"strings"
)

// Table is an immutable mapping from alias name to Record.
// It is safe for concurrent use once constructed.
type Table struct {
	records map[string]Record
	names   []string
}

// NewTable validates records and builds a Table from them.
// Any structural problem fails the whole load; a partial table is never returned.
func NewTable(records []Record) (*Table, error) {
	byName := make(map[string]Record, len(records))
	for i, r := range records {
		if err := validateRecord(r); err != nil {
			return nil, fmt.Errorf("%w: record %d: %v", ErrMalformedDefinition, i+1, err)
		}
		if _, exists := byName[r.Name]; exists {
			return nil, fmt.Errorf("%w: duplicate alias name %q", ErrMalformedDefinition, r.Name)
		}
		byName[r.Name] = r.clone()
	}

	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)

	return &Table{records: byName, names: names}, nil
}

func validateRecord(r Record) error {
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("missing required field %q", "name")
	}
	if strings.TrimSpace(r.Parent) == "" {
		return fmt.Errorf("alias %q: missing required field %q", r.Name, "parent")
	}
	if strings.TrimSpace(r.URI) == "" {
		return fmt.Errorf("alias %q: missing required field %q", r.Name, "uri")
	}
	if !strings.Contains(r.URI, Placeholder) {
		return fmt.Errorf("alias %q: uri %q does not contain %s", r.Name, r.URI, Placeholder)
	}
	for cmd, opts := range r.CommandOverrides {
		if strings.TrimSpace(cmd) == "" {
			return fmt.Errorf("alias %q: command override with empty command name", r.Name)
		}
		for opt := range opts {
			if strings.TrimSpace(opt) == "" {
				return fmt.Errorf("alias %q: command %q has an empty option name", r.Name, cmd)
			}
		}
	}
	return nil
}

// Len returns the number of aliases in the table.
func (t *Table) Len() int {
	return len(t.names)
}

// Names returns the alias names in sorted order.
func (t *Table) Names() []string {
	out := make([]string, len(t.names))
	copy(out, t.names)
	return out
}

// Records returns a copy of every record, sorted by name.
func (t *Table) Records() []Record {
	out := make([]Record, 0, len(t.names))
	for _, name := range t.names {
		out = append(out, t.records[name].clone())
	}
	return out
}

// Lookup returns the record registered under name.
// The URI is returned as the raw template; use ResolveURI to substitute the placeholder.
func (t *Table) Lookup(name string) (Record, error) {
	r, ok := t.records[name]
	if !ok {
		return Record{}, t.unknown(name)
	}
	return r.clone(), nil
}

// ResolveURI replaces the placeholder in the alias URI with subdomain.
func (t *Table) ResolveURI(name, subdomain string) (string, error) {
	r, ok := t.records[name]
	if !ok {
		return "", t.unknown(name)
	}
	return strings.ReplaceAll(r.URI, Placeholder, subdomain), nil
}

// CommandOptions returns the options forced onto command when it targets name.
// A command without overrides yields an empty, non-nil map.
func (t *Table) CommandOptions(name, command string) (map[string]string, error) {
	r, ok := t.records[name]
	if !ok {
		return nil, t.unknown(name)
	}
	out := make(map[string]string, len(r.CommandOverrides[command]))
	for k, v := range r.CommandOverrides[command] {
		out[k] = v
	}
	return out, nil
}

func (t *Table) unknown(name string) error {
	return fmt.Errorf("%w %q (available: %s)", ErrUnknownAlias, name, strings.Join(t.names, ", "))
}
