package config

import (
	"fmt"
	"sync/atomic"
)

// Store holds the current Config snapshot. Readers never observe a partially
// applied change: Apply builds a new value and swaps it in whole.
type Store struct {
	current atomic.Pointer[Config]
}

// NewStore returns a Store seeded with cfg.
func NewStore(cfg Config) *Store {
	s := &Store{}
	s.current.Store(&cfg)

	return s
}

// Load returns the current snapshot. A zero Store yields Default().
func (s *Store) Load() Config {
	if s == nil {
		return Default()
	}

	if cfg := s.current.Load(); cfg != nil {
		return *cfg
	}

	return Default()
}

// Apply merges patch onto the current snapshot and replaces it. The merged config is
// validated first; on error the store is left untouched.
func (s *Store) Apply(patch Patch) (Config, error) {
	cfg, err := s.Update(func(current Config) Config { return Merge(current, patch) })
	if err != nil {
		return cfg, fmt.Errorf("apply config patch: %w", err)
	}

	return cfg, nil
}

// Update replaces the snapshot with fn applied to it, calling fn again when another
// writer swapped the snapshot in between. The result is validated first; on error
// the store is left untouched and the current snapshot is returned.
func (s *Store) Update(fn func(Config) Config) (Config, error) {
	for {
		old := s.current.Load()

		base := Default()
		if old != nil {
			base = *old
		}

		next := fn(base)
		if err := next.Validate(); err != nil {
			return base, err
		}

		if s.current.CompareAndSwap(old, &next) {
			return next, nil
		}
	}
}

// Replace swaps in cfg after validating it.
func (s *Store) Replace(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("replace config: %w", err)
	}

	s.current.Store(&cfg)

	return nil
}
