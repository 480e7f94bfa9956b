package definitions

import (
	"fmt"

	"github.com/AntonioJCosta/sitealias/internal/core/ports"
)

// SelectSource picks the definition source: the embedded definition, an
// explicit file, or the file located by finder, in that order.
func SelectSource(file string, embedded bool, finder ports.DefinitionFileFinder) (ports.DefinitionSource, error) {
	if embedded {
		return NewEmbeddedSource(), nil
	}
	if file != "" {
		return NewYAMLFileSource(file)
	}
	if finder == nil {
		return nil, fmt.Errorf("no definition file given and no finder configured")
	}
	path, err := finder.Find()
	if err != nil {
		return nil, fmt.Errorf("failed to locate definition file: %w", err)
	}
	return NewYAMLFileSource(path)
}
