package vault

// Fee computation
const (
	// FeeScale is the denominator of the fee rate: rates are expressed in
	// parts per thousand, so a rate of 10 on an amount of 100 yields 1.
	FeeScale = 1000

	// MaxFeeRateBps is the highest accepted fee rate. A rate above the scale
	// would credit the protocol more than a locker's pooled balance.
	MaxFeeRateBps = FeeScale
)

// Capacity
const (
	// DefaultMaxLockers is the default maximum number of lockers tracked by the vault.
	DefaultMaxLockers = 100000

	// DefaultMaxPlayersPerLocker is the default participant limit per locker.
	// Zero means unlimited.
	DefaultMaxPlayersPerLocker = 0
)

// SnapshotOperation represents a type of snapshot-related operation.
type SnapshotOperation string

const (
	// SnapshotCreate indicates a snapshot creation event.
	SnapshotCreate SnapshotOperation = "create"

	// SnapshotRestore indicates a snapshot restoration event.
	SnapshotRestore SnapshotOperation = "restore"
)
