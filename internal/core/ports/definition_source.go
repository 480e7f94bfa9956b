package ports

import "github.com/AntonioJCosta/sitealias/internal/core/domain/alias"

// DefinitionSource defines the interface for sourcing alias records
// from a static definition, like a YAML file.
type DefinitionSource interface {
	// LoadRecords reads every record from the definition.
	// A structurally invalid definition yields an error wrapping alias.ErrMalformedDefinition.
	LoadRecords() ([]alias.Record, error)

	// Describe returns a human readable identifier for the source, e.g. a file path.
	Describe() string
}
