package definitionfile

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/AntonioJCosta/sitealias/internal/core/ports"
)

const definitionDir = ".sitealias"
const definitionFilename = "aliases.yaml"

// DefaultPath returns $HOME/.sitealias/aliases.yaml for the current user.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, definitionDir, definitionFilename), nil
}

// DefaultFileFinder locates the definition file in the user's home directory.
type DefaultFileFinder struct{}

// Find implements the ports.DefinitionFileFinder interface.
func (d *DefaultFileFinder) Find() (string, error) {
	return DefaultPath()
}

// NewDefaultFileFinder creates a new DefaultFileFinder.
func NewDefaultFileFinder() ports.DefinitionFileFinder {
	return &DefaultFileFinder{}
}

// Writer persists a rendered definition to disk.
type Writer struct {
	path string
}

// NewWriter creates a Writer targeting path.
func NewWriter(path string) *Writer {
	return &Writer{path: path}
}

// Path returns the target path.
func (w *Writer) Path() string {
	return w.path
}

// Write stores data at the target path, creating parent directories as needed.
// It returns false without touching the file if it already exists and force is not set.
func (w *Writer) Write(data []byte, force bool) (bool, error) {
	if _, err := os.Stat(w.path); err == nil && !force {
		slog.Debug("definition file exists, skipping", "path", w.path)
		return false, nil
	} else if err != nil && !os.IsNotExist(err) {
		return false, fmt.Errorf("failed to stat definition file %s: %w", toUserFriendlyPath(w.path), err)
	}

	dirPath := filepath.Dir(w.path)
	if err := os.MkdirAll(dirPath, 0755); err != nil {
		return false, fmt.Errorf("failed to create directory %s: %w", toUserFriendlyPath(dirPath), err)
	}

	// Write through a temp file so readers never observe a half-written definition.
	tmp, err := os.CreateTemp(dirPath, "."+filepath.Base(w.path)+".*")
	if err != nil {
		return false, fmt.Errorf("failed to create temporary file in %s: %w", toUserFriendlyPath(dirPath), err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return false, fmt.Errorf("failed to write definition file %s: %w", toUserFriendlyPath(w.path), err)
	}
	if err := tmp.Close(); err != nil {
		return false, fmt.Errorf("failed to close definition file %s: %w", toUserFriendlyPath(w.path), err)
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return false, fmt.Errorf("failed to set permissions on %s: %w", toUserFriendlyPath(w.path), err)
	}
	if err := os.Rename(tmp.Name(), w.path); err != nil {
		return false, fmt.Errorf("failed to move definition into place at %s: %w", toUserFriendlyPath(w.path), err)
	}
	return true, nil
}

// toUserFriendlyPath replaces the home directory prefix with "~".
func toUserFriendlyPath(path string) string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return path
	}
	if path == home {
		return "~"
	}
	if strings.HasPrefix(path, home+string(filepath.Separator)) {
		return filepath.Join("~", strings.TrimPrefix(path, home+string(filepath.Separator)))
	}
	return path
}
