package store

import (
	"sync"

	"nickandperla.net/decagrid/internal/cell"
)

// Memory is an in-memory store for testing.
type Memory struct {
	mu       sync.RWMutex
	data     map[cell.ID]string
	metadata map[string]string
}

// NewMemory creates a new in-memory store.
func NewMemory() *Memory {
	return &Memory{
		data:     make(map[cell.ID]string),
		metadata: make(map[string]string),
	}
}

// Put stores the raw input for a cell.
func (m *Memory) Put(id cell.ID, raw string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[id] = raw
	return nil
}

// Delete removes the stored raw input for a cell.
func (m *Memory) Delete(id cell.ID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, id)
	return nil
}

// All returns every stored cell's raw input.
func (m *Memory) All() (map[cell.ID]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make(map[cell.ID]string, len(m.data))
	for id, raw := range m.data {
		result[id] = raw
	}
	return result, nil
}

// Clear removes every stored cell.
func (m *Memory) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = make(map[cell.ID]string)
	return nil
}

// Close is a no-op for memory store.
func (m *Memory) Close() error {
	return nil
}

// GetMetadata retrieves a metadata value by key.
func (m *Memory) GetMetadata(key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.metadata[key], nil
}

// SetMetadata stores a metadata value by key.
func (m *Memory) SetMetadata(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.metadata[key] = value
	return nil
}
