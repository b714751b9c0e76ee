package types

import (
	"encoding/hex"
	"fmt"
	"time"
)

// AccountID uniquely identifies an account interacting with the vault:
// a locker creator, depositor, winner, or the vault owner.
// It should be globally unique and remain stable across restarts.
type AccountID string

// TokenID identifies a fungible token accepted by the vault.
// Only whitelisted tokens can denominate lockers.
type TokenID string

// LockerIDSize is the fixed byte length of a locker identifier.
const LockerIDSize = 32

// LockerID is the fixed-size opaque identifier of a locker.
// It is chosen by the locker's creator and must be unique within the vault.
type LockerID [LockerIDSize]byte

// String returns the hexadecimal form of the locker ID.
func (id LockerID) String() string {
	return hex.EncodeToString(id[:])
}

// IsZero reports whether the ID is all zero bytes.
func (id LockerID) IsZero() bool {
	return id == LockerID{}
}

// ParseLockerID decodes a 64-character hexadecimal string into a LockerID.
func ParseLockerID(s string) (LockerID, error) {
	var id LockerID
	b, err := hex.DecodeString(s)
	if err != nil {
		return id, fmt.Errorf("locker ID is not valid hex: %w", err)
	}
	if len(b) != LockerIDSize {
		return id, fmt.Errorf("locker ID must be %d bytes, got %d", LockerIDSize, len(b))
	}
	copy(id[:], b)
	return id, nil
}

// LockerIDFromBytes converts a raw byte slice into a LockerID.
func LockerIDFromBytes(b []byte) (LockerID, error) {
	var id LockerID
	if len(b) != LockerIDSize {
		return id, fmt.Errorf("locker ID must be %d bytes, got %d", LockerIDSize, len(b))
	}
	copy(id[:], b)
	return id, nil
}

// LockerState represents the lifecycle state of a locker.
type LockerState int

const (
	// StateUnspecified is the zero value; no valid locker carries it.
	StateUnspecified LockerState = iota

	// StateOpen is the initial state of a locker.
	// - New participants may deposit the locker's stake while Open.
	// - A depositor may withdraw its own stake (cancellation refund) while Open.
	// - The owner may close an Open locker to stop further deposits.
	StateOpen

	// StateClosed means the locker no longer accepts deposits and awaits resolution.
	// - Only the owner transitions a locker to Closed, and only from Open.
	// - The owner resolves a Closed locker by declaring a winner.
	StateClosed

	// StateResolved is the terminal state: a winner has been declared exactly once,
	// the pooled funds were split into the winner payout and the protocol fee, and
	// both were credited to the withdrawable ledger. The record persists for query.
	StateResolved
)

// LockerInfo is the queryable record of a locker. It is a value snapshot;
// mutating it has no effect on engine state.
type LockerInfo struct {
	// LockerID is the unique identifier chosen at creation.
	LockerID LockerID

	// Token denominates all stakes in this locker. Immutable after creation.
	Token TokenID

	// Stake is the fixed per-participant deposit amount, set by the creator's
	// initial deposit. Immutable thereafter.
	Stake uint64

	// TotalBalance is the sum of all deposits currently held for this locker.
	// Equals Stake * PlayersCount after every successful create or deposit.
	TotalBalance uint64

	// PlayersCount is the number of participants holding a stake. Starts at 1.
	PlayersCount uint32

	// State is the current lifecycle state.
	State LockerState

	// Winner is set exactly once, at resolution. Empty before that.
	Winner AccountID

	// Creator is the account that created the locker. Informational.
	Creator AccountID

	// CreatedAt is when the locker was created.
	CreatedAt time.Time

	// LastModified is when the locker state last changed.
	LastModified time.Time
}
