package decagrid

import "nickandperla.net/decagrid/internal/store"

// Option configures a Sheet.
type Option func(*Sheet)

// WithSQLiteStore configures SQLite persistence at the given path.
func WithSQLiteStore(path string) Option {
	return func(s *Sheet) {
		st, err := store.NewSQLite(path)
		if err != nil {
			if s.initErr == nil {
				s.initErr = err
			}
			return
		}
		s.store = st
	}
}

// WithMemoryStore configures an in-memory store (for testing).
func WithMemoryStore() Option {
	return func(s *Sheet) {
		s.store = store.NewMemory()
	}
}

// WithAutosave mirrors every edit into the store as it happens. Without it,
// persistence only happens on explicit Save calls.
func WithAutosave() Option {
	return func(s *Sheet) {
		s.autosave = true
	}
}
