// Package store provides persistence for decagrid sheets.
//
// Only raw inputs are persisted. Display values and error states are
// derived state: loading a sheet replays the raw inputs through the engine,
// which recomputes everything to the same fixed point.
package store

import "nickandperla.net/decagrid/internal/cell"

// Store is the interface for sheet persistence.
type Store interface {
	// Put stores the raw input for a cell, overwriting if it exists.
	Put(id cell.ID, raw string) error
	// Delete removes the stored raw input for a cell.
	Delete(id cell.ID) error
	// All returns every stored cell's raw input.
	All() (map[cell.ID]string, error)
	// Clear removes every stored cell.
	Clear() error
	// Close releases resources.
	Close() error
}

// MetadataStore extends Store with metadata operations.
type MetadataStore interface {
	Store
	GetMetadata(key string) (string, error)
	SetMetadata(key, value string) error
}
