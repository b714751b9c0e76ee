package storage

import "context"

// SnapshotStore persists serialized vault state so a restarted server can
// restore the ledger it was running before. Implementations keep only the
// most recent snapshot; saving replaces whatever was stored.
type SnapshotStore interface {
	// Save durably persists the snapshot payload, replacing any previous one.
	//
	// Returns ErrStorageIO on a low-level write failure. A failed Save leaves
	// the previously stored snapshot intact.
	Save(ctx context.Context, data []byte) error

	// Load returns the most recently saved snapshot payload.
	//
	// Returns:
	//   - ErrNoSnapshot if nothing has been saved yet.
	//   - ErrCorruptedSnapshot if the stored payload fails its integrity check.
	//   - ErrStorageIO on a low-level read failure.
	Load(ctx context.Context) ([]byte, error)
}
