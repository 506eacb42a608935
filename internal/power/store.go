// Package power persists the platform network settings (DNS/HTTP/HTTPS ports,
// firewall rule and top-level domain) shared by the DNS responder and the
// reverse proxy.
package power

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrConfigExists is returned by Create when a settings document is already present.
var ErrConfigExists = errors.New("power config already exists")

const (
	dirName  = ".devproc"
	fileName = "config"
)

// DefaultDir returns the per-user directory holding devproc state.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, dirName), nil
}

// Store reads and writes the settings document at Path.
type Store struct {
	Path string
}

// NewStore returns a store for the document inside dir.
func NewStore(dir string) *Store {
	return &Store{Path: filepath.Join(dir, fileName)}
}

// DefaultStore returns the store at ~/.devproc/config.
func DefaultStore() (*Store, error) {
	dir, err := DefaultDir()
	if err != nil {
		return nil, err
	}
	return NewStore(dir), nil
}

// Exists reports whether the settings document is present.
func (s *Store) Exists() bool {
	_, err := os.Stat(s.Path)
	return err == nil
}

// Create persists a new settings document. It refuses to overwrite an existing one.
func (s *Store) Create(initial map[string]any) (*Settings, error) {
	if s.Exists() {
		return nil, fmt.Errorf("%w at %s", ErrConfigExists, s.Path)
	}
	settings := newSettings(s, initial)
	if err := s.Save(settings); err != nil {
		return nil, err
	}
	return settings, nil
}

// Load decodes the settings document.
func (s *Store) Load() (*Settings, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, err
	}
	values := make(map[string]any)
	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.Path, err)
	}
	return newSettings(s, values), nil
}

// Save writes settings to Path, replacing any previous content.
func (s *Store) Save(settings *Settings) error {
	if err := os.MkdirAll(filepath.Dir(s.Path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(settings.values)
	if err != nil {
		return err
	}
	return os.WriteFile(s.Path, data, 0o644)
}

// Delete removes the settings document if present.
func (s *Store) Delete() error {
	if err := os.Remove(s.Path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
