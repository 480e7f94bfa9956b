package definitions

import (
	"bytes"
	"fmt"

	"github.com/AntonioJCosta/sitealias/internal/core/domain/alias"
	"gopkg.in/yaml.v3"
)

// simulatedCommands are forced into dry-run mode on production.
var simulatedCommands = []string{"sql-sync", "rsync"}

// Canonical builds the dev, stage and prod records for a hosted account.
// Production is read only: commands that transfer data to it only simulate.
func Canonical(account, domain string) []alias.Record {
	prodOverrides := make(map[string]map[string]string, len(simulatedCommands))
	for _, cmd := range simulatedCommands {
		prodOverrides[cmd] = map[string]string{"simulate": "1"}
	}

	return []alias.Record{
		{
			Name:   "dev",
			Parent: account + ".dev",
			URI:    "dev." + alias.Placeholder + "." + domain,
		},
		{
			Name:   "stage",
			Parent: account + ".stage",
			URI:    "stage." + alias.Placeholder + "." + domain,
		},
		{
			Name:             "prod",
			Parent:           account + ".prod",
			URI:              alias.Placeholder + "." + domain,
			CommandOverrides: prodOverrides,
		},
	}
}

// Marshal renders records in the definition file layout.
func Marshal(records []alias.Record) ([]byte, error) {
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(definitionFile{Aliases: records}); err != nil {
		return nil, fmt.Errorf("failed to marshal alias definition: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("failed to flush alias definition: %w", err)
	}
	return buf.Bytes(), nil
}
