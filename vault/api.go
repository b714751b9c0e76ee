package vault

import (
	"context"

	"github.com/jathurchan/vaultlock/types"
)

// VaultEngine is the escrow ledger state machine.
//
// Participants pool equal stakes of a whitelisted token into named lockers;
// the vault owner later closes a locker and resolves it by declaring a winner,
// splitting the pooled funds into a winner payout and a protocol fee. Winners
// and the protocol accrue withdrawable per-token balances.
//
// Every method is atomic: it either applies all of its state changes or none.
// Mutating methods apply internal state changes before issuing any outbound
// token transfer, and a failed transfer unwinds the whole operation.
//
// Notes:
//   - The caller identity is supplied by the surrounding environment and is
//     trusted; the engine performs authorization, not authentication.
//   - Locker records persist after resolution for query.
type VaultEngine interface {
	// CreateLocker creates a new locker denominated in token, pulling amount
	// from the caller into custody as the first stake.
	//
	// Returns:
	//   - The created locker.
	//   - ErrTokenNotValid if the token is not whitelisted.
	//   - ErrLockerExists if the ID is already in use.
	//   - ErrInvalidAmount if amount is zero.
	//   - ErrLockerLimit if the vault tracks its maximum number of lockers.
	//   - ErrTransferFailed if the inbound token transfer fails.
	CreateLocker(ctx context.Context, caller types.AccountID, id types.LockerID, tok types.TokenID, amount uint64) (*types.LockerInfo, error)

	// DepositLocker pulls exactly the locker's stake from the caller into
	// custody, adding the caller as a participant.
	//
	// Returns:
	//   - The updated locker.
	//   - ErrLockerNotFound if the ID is unknown.
	//   - ErrInvalidState if the locker is not Open.
	//   - ErrTransferFailed if the inbound token transfer fails.
	DepositLocker(ctx context.Context, caller types.AccountID, id types.LockerID) (*types.LockerInfo, error)

	// CloseLocker transitions an Open locker to Closed, stopping further
	// deposits. Owner only. No fund movement.
	//
	// Returns:
	//   - The updated locker.
	//   - ErrUnauthorized, ErrLockerNotFound, or ErrInvalidState.
	CloseLocker(ctx context.Context, caller types.AccountID, id types.LockerID) (*types.LockerInfo, error)

	// SetWinner resolves a Closed locker at most once: it computes the
	// protocol fee over the pooled balance, credits the remainder to the
	// winner's withdrawable balance, credits the fee balance, and transitions
	// the locker to Resolved. Owner only.
	//
	// Returns:
	//   - The resolution (locker, payout, fee); payout + fee always equals
	//     the pre-resolution pooled balance.
	//   - ErrUnauthorized, ErrLockerNotFound, or ErrInvalidState (including
	//     a second call on an already Resolved locker).
	SetWinner(ctx context.Context, caller types.AccountID, id types.LockerID, winner types.AccountID) (*Resolution, error)

	// WithdrawLocker refunds one of the caller's stakes from an Open locker
	// directly to the destination account, bypassing the ledger, and shrinks
	// the locker's bookkeeping accordingly.
	//
	// Returns:
	//   - The refunded amount and the updated locker.
	//   - ErrLockerNotFound, ErrInvalidState if the locker is not Open,
	//     ErrUnauthorized if the caller holds no stake in the locker, or
	//     ErrTransferFailed.
	WithdrawLocker(ctx context.Context, caller types.AccountID, id types.LockerID, to types.AccountID) (uint64, *types.LockerInfo, error)

	// Withdraw moves amount of the caller's withdrawable balance for token
	// out of the vault to the destination account. The balance debited is
	// always the caller's own, regardless of the destination.
	//
	// Returns:
	//   - The caller's remaining balance for the token.
	//   - ErrInvalidAmount, ErrInsufficientBalance, or ErrTransferFailed.
	Withdraw(ctx context.Context, caller, to types.AccountID, tok types.TokenID, amount uint64) (uint64, error)

	// WithdrawFee moves amount of the accrued protocol fee for token out of
	// the vault to the destination account. Owner only.
	//
	// Returns:
	//   - The remaining fee balance for the token.
	//   - ErrUnauthorized, ErrInvalidAmount, ErrInsufficientBalance, or
	//     ErrTransferFailed.
	WithdrawFee(ctx context.Context, caller, to types.AccountID, tok types.TokenID, amount uint64) (uint64, error)

	// AddTokens whitelists the given token IDs. Owner only. Idempotent:
	// re-adding a token has no additional effect.
	//
	// Returns the number of tokens newly added, or ErrUnauthorized.
	AddTokens(ctx context.Context, caller types.AccountID, tokens []types.TokenID) (int, error)

	// SetFeeRate stores a new protocol fee rate, expressed in parts per
	// thousand of a resolved locker's pooled balance. Owner only.
	//
	// Returns ErrUnauthorized or ErrInvalidAmount if the rate exceeds FeeScale.
	SetFeeRate(ctx context.Context, caller types.AccountID, rateBps uint32) error

	// FeeRate returns the current fee rate in parts per thousand.
	FeeRate() uint32

	// CalculateFee returns floor(amount * rate / FeeScale) for the current rate.
	// Pure query; no side effects.
	CalculateFee(amount uint64) uint64

	// IsTokenWhitelisted reports whether the token is accepted for new lockers.
	IsTokenWhitelisted(tok types.TokenID) bool

	// GetLocker retrieves the current record of a locker.
	//
	// Returns ErrLockerNotFound if the ID is unknown.
	GetLocker(ctx context.Context, id types.LockerID) (*types.LockerInfo, error)

	// GetLockers returns a paginated list of lockers matching an optional
	// filter, ordered by creation time. If limit <= 0, all items from offset
	// are returned. The second result is the total number of matches.
	GetLockers(ctx context.Context, filter LockerFilter, limit int, offset int) ([]*types.LockerInfo, int, error)

	// GetBalance returns the account's withdrawable balance for the token.
	GetBalance(ctx context.Context, account types.AccountID, tok types.TokenID) uint64

	// GetFeeBalance returns the accrued protocol fee balance for the token.
	GetFeeBalance(ctx context.Context, tok types.TokenID) uint64

	// Snapshot serializes the engine's full state for persistence.
	Snapshot(ctx context.Context) ([]byte, error)

	// RestoreSnapshot replaces the engine's state with a previously
	// serialized snapshot.
	RestoreSnapshot(ctx context.Context, data []byte) error

	// Close marks the engine as shut down; subsequent operations fail.
	Close() error
}

// Resolution describes the outcome of SetWinner.
type Resolution struct {
	// Locker is the resolved locker record.
	Locker *types.LockerInfo

	// Payout is the amount credited to the winner's withdrawable balance.
	Payout uint64

	// Fee is the amount credited to the protocol fee balance.
	// Payout + Fee equals the locker's pre-resolution pooled balance.
	Fee uint64
}
