package storage

import "os"

const (
	// SnapshotFileName is the on-disk name of the current snapshot.
	SnapshotFileName = "vault_snapshot.bin"

	// lengthSize is the byte width of the payload-length prefix.
	lengthSize = 8

	// ChecksumSize is the byte width of the trailing CRC32 checksum.
	ChecksumSize = 4

	// OwnRWOthR sets read/write for the owner and read for group and others.
	OwnRWOthR os.FileMode = 0o644

	// OwnRWXOthRX sets full access for the owner and read/execute for group and others.
	OwnRWXOthRX os.FileMode = 0o755
)
