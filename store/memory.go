package store

import (
	"context"
	"sync"
)

// MemoryHistory keeps history for the lifetime of the process
type MemoryHistory struct {
	mu      sync.Mutex
	entries []Entry
}

func NewMemoryHistory() *MemoryHistory {
	return &MemoryHistory{}
}

func (s *MemoryHistory) Record(ctx context.Context, e Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = append(s.entries, e)
	return nil
}

func (s *MemoryHistory) List(ctx context.Context, limit int) ([]Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(s.entries)
	if limit > 0 && limit < n {
		n = limit
	}
	result := make([]Entry, 0, n)
	for i := len(s.entries) - 1; i >= 0 && len(result) < n; i-- {
		result = append(result, s.entries[i])
	}
	return result, nil
}

func (s *MemoryHistory) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = nil
	return nil
}

func (s *MemoryHistory) Close() error {
	return nil
}
