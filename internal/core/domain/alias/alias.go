/*
Package alias defines the core domain entities for environment aliases:
the Record describing one remote target and the immutable Table built
from a set of records.
*/
package alias

import "errors"

// Placeholder is the literal token in a Record URI that callers replace
// with a concrete subdomain.
const Placeholder = "SUBDOMAIN"

var (
	// ErrMalformedDefinition is returned when a set of records cannot form a table.
	ErrMalformedDefinition = errors.New("malformed alias definition")

	// ErrUnknownAlias is returned when a name is not present in the table.
	ErrUnknownAlias = errors.New("unknown alias")
)

/*
Record represents a named remote target environment: the parent site it
belongs to, the URI template used to reach it, and options forced onto
specific commands whenever they run against it.
*/
type Record struct {
	Name             string                       `yaml:"name"`
	Parent           string                       `yaml:"parent"`
	URI              string                       `yaml:"uri"`
	CommandOverrides map[string]map[string]string `yaml:"command-specific,omitempty"`
}

// clone returns a deep copy so callers never share maps with the table.
func (r Record) clone() Record {
	out := r
	out.CommandOverrides = make(map[string]map[string]string, len(r.CommandOverrides))
	for cmd, opts := range r.CommandOverrides {
		copied := make(map[string]string, len(opts))
		for k, v := range opts {
			copied[k] = v
		}
		out.CommandOverrides[cmd] = copied
	}
	return out
}
