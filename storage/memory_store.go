package storage

import (
	"context"
	"sync"
)

// MemorySnapshotStore is an in-memory SnapshotStore for tests and for
// servers that opt out of persistence.
type MemorySnapshotStore struct {
	mu   sync.Mutex
	data []byte
}

// NewMemorySnapshotStore creates an empty in-memory store.
func NewMemorySnapshotStore() *MemorySnapshotStore {
	return &MemorySnapshotStore{}
}

// Save stores a copy of the snapshot payload.
func (s *MemorySnapshotStore) Save(ctx context.Context, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = append([]byte(nil), data...)
	return nil
}

// Load returns a copy of the most recently saved payload.
func (s *MemorySnapshotStore) Load(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.data == nil {
		return nil, ErrNoSnapshot
	}
	return append([]byte(nil), s.data...), nil
}
