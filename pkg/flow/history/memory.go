package history

import (
	"sort"
	"sync"
	"time"
)

// MemoryStore keeps archived reports in memory. It is intended for tests
// and short-lived tooling; reports vanish with the process.
type MemoryStore struct {
	mu      sync.RWMutex
	reports map[string]memoryEntry
	closed  bool
}

type memoryEntry struct {
	data       []byte
	archivedAt time.Time
}

// NewMemoryStore creates an empty in-memory archive.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		reports: make(map[string]memoryEntry),
	}
}

// Save implements Store.
func (s *MemoryStore) Save(runID string, report []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrStoreClosed
	}
	stored := make([]byte, len(report))
	copy(stored, report)
	s.reports[runID] = memoryEntry{data: stored, archivedAt: time.Now().UTC()}
	return nil
}

// Load implements Store.
func (s *MemoryStore) Load(runID string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, ErrStoreClosed
	}
	entry, ok := s.reports[runID]
	if !ok {
		return nil, ErrNotFound
	}
	data := make([]byte, len(entry.data))
	copy(data, entry.data)
	return data, nil
}

// List implements Store.
func (s *MemoryStore) List() ([]Info, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, ErrStoreClosed
	}
	infos := make([]Info, 0, len(s.reports))
	for runID, entry := range s.reports {
		infos = append(infos, Info{
			RunID:      runID,
			ArchivedAt: entry.archivedAt,
			Size:       int64(len(entry.data)),
		})
	}
	sort.Slice(infos, func(i, j int) bool {
		return infos[i].ArchivedAt.After(infos[j].ArchivedAt)
	})
	return infos, nil
}

// Delete implements Store.
func (s *MemoryStore) Delete(runID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrStoreClosed
	}
	delete(s.reports, runID)
	return nil
}

// Close implements Store.
func (s *MemoryStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.reports = nil
	return nil
}
