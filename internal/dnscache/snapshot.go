package dnscache

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"time"

	"devproc/internal/process"
)

// Snapshot schema versioning for forward-compatibility.
const snapshotVersion = 1

type snapshot struct {
	Version int              `json:"version"`
	Entries map[string]Entry `json:"entries"`
	Created int64            `json:"created_unix"`
}

// SaveSnapshot writes the current table to path atomically. Concurrent
// calls are serialized.
func (c *Cache) SaveSnapshot(path string) error {
	c.saveMu.Lock()
	defer c.saveMu.Unlock()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}
	s := snapshot{
		Version: snapshotVersion,
		Entries: c.Snapshot(),
		Created: time.Now().UTC().Unix(),
	}
	b, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// LoadSnapshot upserts entries from a snapshot written by SaveSnapshot and
// returns how many were applied. Labels already present keep their current
// port, so configured ports win over stale runtime ones. A missing file is
// not an error.
func (c *Cache) LoadSnapshot(path string) (int, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return 0, nil
		}
		return 0, err
	}
	var s snapshot
	if err := json.Unmarshal(b, &s); err != nil {
		return 0, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	applied := 0
	for label, e := range s.Entries {
		if _, ok := c.entries[label]; ok || e.Port <= 0 || e.Port > process.MaxPort {
			continue
		}
		c.entries[label] = e
		applied++
	}
	return applied, nil
}
