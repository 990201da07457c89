package runlog

import (
	"fmt"
	"sync"
)

// MemoryStore implements Store using an in-memory map (not persistent)
type MemoryStore struct {
	runs map[string]Run
	mu   sync.RWMutex
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{runs: make(map[string]Run)}
}

// Save stores a copy of run
func (m *MemoryStore) Save(run *Run) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.runs[run.ID] = *run
	return nil
}

// Get returns a copy of the stored run
func (m *MemoryStore) Get(id string) (*Run, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	run, ok := m.runs[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrRunNotFound, id)
	}
	return &run, nil
}

// List returns copies of every run, oldest first
func (m *MemoryStore) List() ([]*Run, error) {
	m.mu.RLock()
	runs := make([]*Run, 0, len(m.runs))
	for _, run := range m.runs {
		runs = append(runs, &run)
	}
	m.mu.RUnlock()

	sortRuns(runs)
	return runs, nil
}

// Close is a no-op
func (m *MemoryStore) Close() error {
	return nil
}
