// ABOUTME: In-memory Gateway used by tests and dry runs.
// ABOUTME: Can be told to fail writes to exercise persistence error paths.
package storage

import (
	"errors"
	"sync"
)

// ErrWriteFailed is returned by MemoryStore when FailWrites is set.
var ErrWriteFailed = errors.New("write failed")

// MemoryStore keeps raw values in a map.
type MemoryStore struct {
	kvGateway
	mu         sync.Mutex
	values     map[string][]byte
	writes     map[string]int
	failWrites bool
}

// Compile-time check that MemoryStore implements Gateway.
var _ Gateway = (*MemoryStore)(nil)

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	m := &MemoryStore{
		values: make(map[string][]byte),
		writes: make(map[string]int),
	}
	m.kvGateway = kvGateway{raw: m}
	return m
}

// FailWrites makes every subsequent set and delete return ErrWriteFailed.
func (m *MemoryStore) FailWrites(fail bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failWrites = fail
}

// Writes returns how many successful writes key has received.
func (m *MemoryStore) Writes(key string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes[key]
}

// Has reports whether key currently holds a value.
func (m *MemoryStore) Has(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.values[key]
	return ok
}

// Close is a no-op.
func (m *MemoryStore) Close() error {
	return nil
}

func (m *MemoryStore) get(key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

func (m *MemoryStore) set(key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWrites {
		return ErrWriteFailed
	}
	m.values[key] = append([]byte(nil), data...)
	m.writes[key]++
	return nil
}

func (m *MemoryStore) delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWrites {
		return ErrWriteFailed
	}
	if _, ok := m.values[key]; !ok {
		return ErrNotFound
	}
	delete(m.values, key)
	return nil
}
