package storage

import (
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"os"
	"path/filepath"
)

// fileExists checks if a file exists.
func fileExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// atomicWriteFile writes data to a temporary file and then renames it.
func atomicWriteFile(targetPath string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(targetPath)
	if err := os.MkdirAll(dir, OwnRWXOthRX); err != nil {
		return fmt.Errorf("%w: failed to create directory %q: %v", ErrStorageIO, dir, err)
	}

	tmpPath := targetPath + ".tmp"
	if err := os.WriteFile(tmpPath, data, perm); err != nil {
		return handleErrorWithCleanup(
			fmt.Errorf("%w: failed to write temporary file %q: %v", ErrStorageIO, tmpPath, err),
			tmpPath,
		)
	}

	if err := os.Rename(tmpPath, targetPath); err != nil {
		return handleErrorWithCleanup(
			fmt.Errorf("%w: failed to rename temporary file %q to %q: %v", ErrStorageIO, tmpPath, targetPath, err),
			tmpPath,
		)
	}

	return nil
}

// handleErrorWithCleanup attempts to remove the temporary file and combines any
// cleanup error with the primary error.
func handleErrorWithCleanup(primaryErr error, tmpPath string) error {
	if rmErr := os.Remove(tmpPath); rmErr != nil {
		return fmt.Errorf("%w; additionally failed to clean up temp file: %v", primaryErr, rmErr)
	}
	return primaryErr
}

// encodeSnapshotFile frames a snapshot payload for storage.
//
// The serialized layout is:
// [Payload Length (8 bytes)][Payload][Checksum (4 bytes)]
//
// The checksum is calculated over the length prefix and the payload, so both
// truncation and bit rot are detected on read.
func encodeSnapshotFile(payload []byte) []byte {
	checksumOffset := lengthSize + len(payload)
	buf := make([]byte, checksumOffset+ChecksumSize)

	binary.BigEndian.PutUint64(buf[:lengthSize], uint64(len(payload)))
	copy(buf[lengthSize:], payload)
	binary.BigEndian.PutUint32(buf[checksumOffset:], crc32.ChecksumIEEE(buf[:checksumOffset]))

	return buf
}

// decodeSnapshotFile validates the framing written by encodeSnapshotFile and
// returns the enclosed payload.
func decodeSnapshotFile(buf []byte) ([]byte, error) {
	if len(buf) < lengthSize+ChecksumSize {
		return nil, fmt.Errorf("%w: file too short (%d bytes)", ErrCorruptedSnapshot, len(buf))
	}

	payloadLen := binary.BigEndian.Uint64(buf[:lengthSize])
	checksumOffset := len(buf) - ChecksumSize
	if payloadLen != uint64(checksumOffset-lengthSize) {
		return nil, fmt.Errorf("%w: payload length %d does not match file size %d",
			ErrCorruptedSnapshot, payloadLen, len(buf))
	}

	want := binary.BigEndian.Uint32(buf[checksumOffset:])
	if got := crc32.ChecksumIEEE(buf[:checksumOffset]); got != want {
		return nil, fmt.Errorf("%w: checksum mismatch (got %08x, want %08x)",
			ErrCorruptedSnapshot, got, want)
	}

	return buf[lengthSize:checksumOffset], nil
}
