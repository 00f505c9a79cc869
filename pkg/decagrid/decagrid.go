// Package decagrid provides the public API for the decagrid formula engine.
package decagrid

import (
	"fmt"
	"sort"
	"sync"

	"nickandperla.net/decagrid/internal/cell"
	"nickandperla.net/decagrid/internal/engine"
	"nickandperla.net/decagrid/internal/store"
)

// Record is the externally visible state of one cell.
type Record = cell.Record

// ID identifies a cell, "A1" through "J10".
type ID = cell.ID

// Sentinel display values.
const (
	SentinelError    = cell.SentinelError
	SentinelCircular = cell.SentinelCircular
)

// Sheet is a 10x10 grid of formula cells with optional persistence.
//
// The engine underneath is single-writer; the Sheet serializes access with
// a mutex so one value can back both a UI and autosave.
type Sheet struct {
	mu       sync.Mutex
	engine   *engine.Engine
	store    store.Store
	autosave bool

	initErr error // first option failure, surfaced by New
}

// New creates a sheet with the given options. If a store is configured, any
// persisted raw inputs are replayed into the engine before New returns.
func New(opts ...Option) (*Sheet, error) {
	s := &Sheet{engine: engine.New()}

	for _, opt := range opts {
		opt(s)
	}
	if s.initErr != nil {
		return nil, s.initErr
	}

	if s.store != nil {
		if err := s.load(); err != nil {
			s.store.Close()
			return nil, err
		}
	}

	return s, nil
}

// Update applies a raw input to one cell and recalculates its dependents.
// The only caller error is an invalid identifier; content failures land in
// the affected records.
func (s *Sheet) Update(id string, raw string) error {
	cid, err := cell.ParseID(id)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.engine.ApplyEdit(cid, raw); err != nil {
		return err
	}
	if s.autosave && s.store != nil {
		return s.persist(cid, raw)
	}
	return nil
}

// Cell returns a read-only snapshot of one cell.
func (s *Sheet) Cell(id string) (Record, error) {
	cid, err := cell.ParseID(id)
	if err != nil {
		return Record{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.engine.Cell(cid)
	if !ok {
		return Record{}, fmt.Errorf("unknown cell id %q", id)
	}
	return rec, nil
}

// Cells returns a snapshot of the whole grid, for full redraws.
func (s *Sheet) Cells() map[ID]Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.Cells()
}

// Save writes every non-empty cell's raw input to the configured store,
// replacing its previous contents.
func (s *Sheet) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.store == nil {
		return fmt.Errorf("no store configured")
	}
	if err := s.store.Clear(); err != nil {
		return err
	}

	// deterministic write order
	ids := make([]string, 0)
	cells := s.engine.Cells()
	for id, rec := range cells {
		if rec.RawInput != "" {
			ids = append(ids, string(id))
		}
	}
	sort.Strings(ids)

	for _, id := range ids {
		if err := s.store.Put(ID(id), cells[ID(id)].RawInput); err != nil {
			return err
		}
	}
	return nil
}

// Load resets the sheet and replays the store's raw inputs.
func (s *Sheet) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.store == nil {
		return fmt.Errorf("no store configured")
	}
	s.engine.Reset()
	return s.load()
}

// load replays stored raw inputs. Order does not matter: every apply
// recomputes its dependents, so the grid converges to the same fixed point.
// Caller holds the lock (or is New, before the sheet escapes).
func (s *Sheet) load() error {
	all, err := s.store.All()
	if err != nil {
		return err
	}

	ids := make([]string, 0, len(all))
	for id := range all {
		ids = append(ids, string(id))
	}
	sort.Strings(ids)

	for _, id := range ids {
		cid, err := cell.ParseID(id)
		if err != nil {
			// Skip rows that do not map to the grid rather than
			// failing the whole load.
			continue
		}
		if err := s.engine.ApplyEdit(cid, all[cid]); err != nil {
			return err
		}
	}
	return nil
}

// Reset returns every cell to empty. With autosave enabled the store is
// cleared as well.
func (s *Sheet) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.engine.Reset()
	if s.autosave && s.store != nil {
		return s.store.Clear()
	}
	return nil
}

// Close releases the store, if any.
func (s *Sheet) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.store != nil {
		return s.store.Close()
	}
	return nil
}

// persist mirrors one edit into the store. Empty raw input means the cell
// was cleared, so the stored row is deleted. Caller holds the lock.
func (s *Sheet) persist(id ID, raw string) error {
	if raw == "" {
		return s.store.Delete(id)
	}
	return s.store.Put(id, raw)
}
