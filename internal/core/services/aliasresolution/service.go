package aliasresolution

import (
	"fmt"
	"log/slog"

	"github.com/AntonioJCosta/sitealias/internal/core/domain/alias"
	"github.com/AntonioJCosta/sitealias/internal/core/ports"
)

type service struct {
	table  *alias.Table
	source string
}

// NewService loads the alias table from src exactly once and returns a
// read-only service over it. It panics if src is nil.
func NewService(src ports.DefinitionSource) (ports.AliasResolutionService, error) {
	if src == nil {
		panic("definition source cannot be nil")
	}

	records, err := src.LoadRecords()
	if err != nil {
		return nil, fmt.Errorf("failed to load alias definition from %s: %w", src.Describe(), err)
	}

	table, err := alias.NewTable(records)
	if err != nil {
		return nil, fmt.Errorf("failed to build alias table from %s: %w", src.Describe(), err)
	}

	slog.Debug("alias table loaded", "source", src.Describe(), "aliases", table.Len())
	return &service{table: table, source: src.Describe()}, nil
}

// Lookup returns the record registered under name.
func (s *service) Lookup(name string) (alias.Record, error) {
	return s.table.Lookup(name)
}

// ResolveURI substitutes the placeholder in the URI of name with subdomain.
func (s *service) ResolveURI(name, subdomain string) (string, error) {
	uri, err := s.table.ResolveURI(name, subdomain)
	if err != nil {
		return "", err
	}
	if subdomain == "" {
		slog.Warn("resolving uri with empty subdomain", "alias", name, "uri", uri)
	}
	return uri, nil
}

// CommandOptions returns the forced options for command on name.
func (s *service) CommandOptions(name, command string) (map[string]string, error) {
	return s.table.CommandOptions(name, command)
}

func (s *service) Names() []string {
	return s.table.Names()
}

func (s *service) Records() []alias.Record {
	return s.table.Records()
}

func (s *service) Source() string {
	return s.source
}
