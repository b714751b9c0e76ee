package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/jathurchan/vaultlock/testutil"
)

func TestFileSnapshotStoreRoundTrip(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileSnapshotStore(dir)
	testutil.RequireNoError(t, err, "NewFileSnapshotStore failed")
	ctx := context.Background()

	payload := []byte(`{"fee_rate_bps":10}`)
	testutil.RequireNoError(t, store.Save(ctx, payload), "Save failed")

	got, err := store.Load(ctx)
	testutil.RequireNoError(t, err, "Load failed")
	testutil.AssertEqual(t, string(payload), string(got))

	// A second save replaces the first.
	testutil.RequireNoError(t, store.Save(ctx, []byte("second")), "second Save failed")
	got, err = store.Load(ctx)
	testutil.RequireNoError(t, err, "second Load failed")
	testutil.AssertEqual(t, "second", string(got))
}

func TestFileSnapshotStoreEmptyPayload(t *testing.T) {
	store, err := NewFileSnapshotStore(t.TempDir())
	testutil.RequireNoError(t, err, "NewFileSnapshotStore failed")
	ctx := context.Background()

	testutil.RequireNoError(t, store.Save(ctx, nil), "Save of empty payload failed")
	got, err := store.Load(ctx)
	testutil.RequireNoError(t, err, "Load failed")
	testutil.AssertLen(t, got, 0)
}

func TestFileSnapshotStoreNoSnapshot(t *testing.T) {
	store, err := NewFileSnapshotStore(t.TempDir())
	testutil.RequireNoError(t, err, "NewFileSnapshotStore failed")

	_, err = store.Load(context.Background())
	testutil.AssertErrorIs(t, err, ErrNoSnapshot)
}

func TestFileSnapshotStoreEmptyDir(t *testing.T) {
	_, err := NewFileSnapshotStore("")
	testutil.AssertErrorIs(t, err, ErrStorageIO)
}

func TestFileSnapshotStoreCorruption(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileSnapshotStore(dir)
	testutil.RequireNoError(t, err, "NewFileSnapshotStore failed")
	ctx := context.Background()

	testutil.RequireNoError(t, store.Save(ctx, []byte("important state")), "Save failed")
	path := filepath.Join(dir, SnapshotFileName)

	t.Run("flipped byte", func(t *testing.T) {
		buf, err := os.ReadFile(path)
		testutil.RequireNoError(t, err, "ReadFile failed")
		buf[lengthSize] ^= 0xff
		testutil.RequireNoError(t, os.WriteFile(path, buf, OwnRWOthR), "WriteFile failed")

		_, err = store.Load(ctx)
		testutil.AssertErrorIs(t, err, ErrCorruptedSnapshot)
	})

	t.Run("truncated file", func(t *testing.T) {
		testutil.RequireNoError(t, os.WriteFile(path, []byte{0, 1, 2}, OwnRWOthR), "WriteFile failed")

		_, err := store.Load(ctx)
		testutil.AssertErrorIs(t, err, ErrCorruptedSnapshot)
	})
}

func TestFileSnapshotStoreFailedSaveKeepsPrevious(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileSnapshotStore(dir)
	testutil.RequireNoError(t, err, "NewFileSnapshotStore failed")
	ctx := context.Background()

	testutil.RequireNoError(t, store.Save(ctx, []byte("first")), "Save failed")

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	err = store.Save(cancelled, []byte("never"))
	testutil.AssertErrorIs(t, err, context.Canceled)

	got, err := store.Load(ctx)
	testutil.RequireNoError(t, err, "Load failed")
	testutil.AssertEqual(t, "first", string(got), "failed save must keep the previous snapshot")
}

func TestMemorySnapshotStore(t *testing.T) {
	store := NewMemorySnapshotStore()
	ctx := context.Background()

	_, err := store.Load(ctx)
	testutil.AssertErrorIs(t, err, ErrNoSnapshot)

	payload := []byte("state")
	testutil.RequireNoError(t, store.Save(ctx, payload), "Save failed")

	got, err := store.Load(ctx)
	testutil.RequireNoError(t, err, "Load failed")
	testutil.AssertEqual(t, "state", string(got))

	// Mutating the returned slice must not affect the stored copy.
	got[0] = 'X'
	again, err := store.Load(ctx)
	testutil.RequireNoError(t, err, "second Load failed")
	testutil.AssertEqual(t, "state", string(again))
}

func TestSnapshotFileFraming(t *testing.T) {
	payload := []byte("hello")
	buf := encodeSnapshotFile(payload)
	testutil.AssertLen(t, buf, lengthSize+len(payload)+ChecksumSize)

	got, err := decodeSnapshotFile(buf)
	testutil.RequireNoError(t, err, "decode failed")
	testutil.AssertEqual(t, string(payload), string(got))

	_, err = decodeSnapshotFile(buf[:lengthSize+ChecksumSize-1])
	testutil.AssertErrorIs(t, err, ErrCorruptedSnapshot, "short buffer")

	grown := append(append([]byte(nil), buf...), 0)
	_, err = decodeSnapshotFile(grown)
	testutil.AssertErrorIs(t, err, ErrCorruptedSnapshot, "length prefix mismatch")
}
