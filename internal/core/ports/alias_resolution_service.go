package ports

import "github.com/AntonioJCosta/sitealias/internal/core/domain/alias"

// AliasResolutionService defines the contract for querying a loaded alias table.
// Implementations are read-only and safe for concurrent use.
type AliasResolutionService interface {
	// Lookup returns the record for name, or an error wrapping alias.ErrUnknownAlias.
	Lookup(name string) (alias.Record, error)

	// ResolveURI returns the URI of name with the placeholder replaced by subdomain.
	ResolveURI(name, subdomain string) (string, error)

	// CommandOptions returns the options forced onto command when it runs against name.
	CommandOptions(name, command string) (map[string]string, error)

	// Names lists the available alias names in sorted order.
	Names() []string

	// Records lists every record, sorted by name.
	Records() []alias.Record

	// Source describes where the table was loaded from.
	Source() string
}
