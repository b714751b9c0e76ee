package vault

import (
	"time"

	"github.com/jathurchan/vaultlock/types"
)

// lockerState encapsulates the current state of a single locker.
type lockerState struct {
	// Unique identifier of the locker.
	lockerID types.LockerID

	// Token denominating every stake in this locker. Immutable.
	token types.TokenID

	// Fixed per-participant deposit amount, set by the creator. Immutable.
	stake uint64

	// Sum of all deposits currently held. Invariant while the locker is
	// unresolved: totalBalance == stake * playersCount.
	totalBalance uint64

	// Number of participants currently holding a stake.
	playersCount uint32

	// Current lifecycle state.
	state types.LockerState

	// Account declared winner at resolution. Empty until then.
	winner types.AccountID

	// Account that created the locker.
	creator types.AccountID

	// depositors maps each participant to the number of stakes it currently
	// holds in this locker. Used to authorize cancellation refunds.
	depositors map[types.AccountID]uint32

	// Timestamp when the locker was created.
	createdAt time.Time

	// Timestamp of the last modification to the locker's state.
	lastModified time.Time
}

// info returns a value snapshot of the locker for queries.
func (ls *lockerState) info() *types.LockerInfo {
	return &types.LockerInfo{
		LockerID:     ls.lockerID,
		Token:        ls.token,
		Stake:        ls.stake,
		TotalBalance: ls.totalBalance,
		PlayersCount: ls.playersCount,
		State:        ls.state,
		Winner:       ls.winner,
		Creator:      ls.creator,
		CreatedAt:    ls.createdAt,
		LastModified: ls.lastModified,
	}
}
