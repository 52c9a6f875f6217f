package config

import (
	"sync/atomic"

	"txnconsumer/pkg/models"
)

// MappingStore hands out read-only snapshots of the mapping
// configuration and lets the runtime swap them atomically. A request
// must capture one snapshot and use it for its whole lifetime.
type MappingStore struct {
	current atomic.Pointer[models.MappingConfig]
	path    string
}

// NewMappingStore creates a store for the given file. No load happens
// until Reload is called, so a broken file at startup leaves the
// snapshot nil and ingestion on the fallback path.
func NewMappingStore(path string) *MappingStore {
	return &MappingStore{path: path}
}

// NewStaticMappingStore wraps an already-built configuration, for
// tests and one-shot runs.
func NewStaticMappingStore(cfg *models.MappingConfig) *MappingStore {
	s := &MappingStore{}
	s.current.Store(cfg)
	return s
}

// Current returns the latest snapshot, which may be nil.
func (s *MappingStore) Current() *models.MappingConfig {
	return s.current.Load()
}

// Reload re-reads the mapping file and swaps the snapshot in. On error
// the previous snapshot stays in place.
func (s *MappingStore) Reload() error {
	cfg, err := LoadMapping(s.path)
	if err != nil {
		return err
	}
	s.current.Store(cfg)
	return nil
}
