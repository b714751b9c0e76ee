package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/jathurchan/vaultlock/logger"
)

// FileSnapshotStore is a SnapshotStore backed by a single checksummed file.
// Saves go through a temp-file-and-rename sequence, so a crash mid-write
// never destroys the previous snapshot.
type FileSnapshotStore struct {
	mu sync.Mutex

	dir    string
	logger logger.Logger
}

// FileStoreOption configures a FileSnapshotStore.
type FileStoreOption func(*FileSnapshotStore)

// WithStoreLogger sets the logger for storage events.
func WithStoreLogger(l logger.Logger) FileStoreOption {
	return func(s *FileSnapshotStore) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewFileSnapshotStore creates a store rooted at dir, creating it if needed.
func NewFileSnapshotStore(dir string, opts ...FileStoreOption) (*FileSnapshotStore, error) {
	if dir == "" {
		return nil, fmt.Errorf("%w: snapshot directory must not be empty", ErrStorageIO)
	}
	if err := os.MkdirAll(dir, OwnRWXOthRX); err != nil {
		return nil, fmt.Errorf("%w: failed to create snapshot directory %q: %v", ErrStorageIO, dir, err)
	}

	s := &FileSnapshotStore{
		dir:    dir,
		logger: logger.NewNoOpLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.WithComponent("storage")
	return s, nil
}

func (s *FileSnapshotStore) snapshotFile() string {
	return filepath.Join(s.dir, SnapshotFileName)
}

// Save persists the snapshot payload atomically, replacing any previous one.
func (s *FileSnapshotStore) Save(ctx context.Context, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	if err := atomicWriteFile(s.snapshotFile(), encodeSnapshotFile(data), OwnRWOthR); err != nil {
		return err
	}

	s.logger.Debugw("Snapshot saved", "path", s.snapshotFile(), "payloadBytes", len(data))
	return nil
}

// Load reads and validates the most recently saved snapshot payload.
func (s *FileSnapshotStore) Load(ctx context.Context) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path := s.snapshotFile()
	exists, err := fileExists(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to stat snapshot file %q: %v", ErrStorageIO, path, err)
	}
	if !exists {
		return nil, ErrNoSnapshot
	}

	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read snapshot file %q: %v", ErrStorageIO, path, err)
	}

	payload, err := decodeSnapshotFile(buf)
	if err != nil {
		return nil, err
	}

	s.logger.Debugw("Snapshot loaded", "path", path, "payloadBytes", len(payload))
	return payload, nil
}
