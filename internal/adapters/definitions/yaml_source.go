package definitions

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/AntonioJCosta/sitealias/internal/core/domain/alias"
	"github.com/AntonioJCosta/sitealias/internal/core/ports"
	"gopkg.in/yaml.v3"
)

//go:embed default_aliases.yaml
var embeddedDefinition []byte

// definitionFile is the on-disk layout of a definition.
type definitionFile struct {
	Aliases []alias.Record `yaml:"aliases"`
}

// YAMLSource implements the DefinitionSource interface by decoding
// records from YAML, either read from a file or compiled into the binary.
type YAMLSource struct {
	filePath string
	data     []byte
}

// NewYAMLFileSource creates a YAMLSource reading from filePath.
func NewYAMLFileSource(filePath string) (ports.DefinitionSource, error) {
	if filePath == "" {
		return nil, fmt.Errorf("definition file path cannot be empty")
	}
	return &YAMLSource{filePath: filePath}, nil
}

// NewEmbeddedSource creates a YAMLSource over the compiled-in canonical definition.
func NewEmbeddedSource() ports.DefinitionSource {
	return &YAMLSource{data: embeddedDefinition}
}

// Describe returns the file path, or "embedded" for the compiled-in definition.
func (s *YAMLSource) Describe() string {
	if s.filePath == "" {
		return "embedded"
	}
	return s.filePath
}

// LoadRecords reads and decodes the definition.
// Unlike optional alias lists, a definition must exist and contain an aliases list.
func (s *YAMLSource) LoadRecords() ([]alias.Record, error) {
	data := s.data
	if s.filePath != "" {
		var err error
		data, err = os.ReadFile(s.filePath)
		if err != nil {
			return nil, fmt.Errorf("failed to read definition file %s: %w", s.filePath, err)
		}
	}
	return decode(data)
}

func decode(data []byte) ([]alias.Record, error) {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	var def definitionFile
	if err := decoder.Decode(&def); err != nil {
		if errors.Is(err, io.EOF) {
			// Empty file, or one holding only comments.
			return nil, fmt.Errorf("%w: definition is empty", alias.ErrMalformedDefinition)
		}
		return nil, fmt.Errorf("%w: %v", alias.ErrMalformedDefinition, err)
	}
	var extra yaml.Node
	if err := decoder.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: definition must be a single YAML document", alias.ErrMalformedDefinition)
	}
	if def.Aliases == nil {
		return nil, fmt.Errorf("%w: missing %q list", alias.ErrMalformedDefinition, "aliases")
	}
	return def.Aliases, nil
}
