package client

import (
	"time"

	pb "github.com/jathurchan/vaultlock/proto"
	"github.com/jathurchan/vaultlock/types"
)

// CreateLockerRequest contains parameters for creating a locker.
type CreateLockerRequest struct {
	// CallerID is the account creating the locker and staking the first deposit.
	CallerID types.AccountID

	// LockerID is the client-chosen unique identifier for the locker.
	LockerID types.LockerID

	// Token denominates all stakes in the locker. Must be whitelisted.
	Token types.TokenID

	// Amount is the fixed per-participant stake, set by this first deposit.
	Amount uint64
}

// DepositLockerRequest contains parameters for joining a locker.
type DepositLockerRequest struct {
	// CallerID is the account staking a deposit.
	CallerID types.AccountID

	// LockerID identifies the locker to join.
	LockerID types.LockerID
}

// WithdrawLockerRequest contains parameters for cancelling a stake.
type WithdrawLockerRequest struct {
	// CallerID is the account cancelling one of its stakes.
	CallerID types.AccountID

	// LockerID identifies the locker to withdraw from.
	LockerID types.LockerID

	// To is the account receiving the refunded stake.
	To types.AccountID
}

// WithdrawLockerResult is the outcome of a stake cancellation.
type WithdrawLockerResult struct {
	// Refunded is the amount sent to the destination account.
	Refunded uint64

	// Locker is the locker record after the withdrawal.
	Locker *types.LockerInfo
}

// WithdrawRequest contains parameters for paying out a withdrawable balance.
type WithdrawRequest struct {
	// CallerID is the account whose balance is debited.
	CallerID types.AccountID

	// To is the account receiving the funds.
	To types.AccountID

	// Token selects which per-token balance to draw from.
	Token types.TokenID

	// Amount is how much to withdraw. Must not exceed the balance.
	Amount uint64
}

// SetWinnerRequest contains parameters for resolving a closed locker.
type SetWinnerRequest struct {
	// CallerID must be the vault owner.
	CallerID types.AccountID

	// LockerID identifies the locker to resolve.
	LockerID types.LockerID

	// Winner is the account credited with the pooled funds minus the fee.
	Winner types.AccountID
}

// ResolveResult is the outcome of a locker resolution.
type ResolveResult struct {
	// Locker is the resolved locker record.
	Locker *types.LockerInfo

	// Payout is the amount credited to the winner's withdrawable balance.
	Payout uint64

	// Fee is the amount credited to the protocol fee balance.
	Fee uint64
}

// WithdrawFeeRequest contains parameters for paying out protocol fees.
type WithdrawFeeRequest struct {
	// CallerID must be the vault owner.
	CallerID types.AccountID

	// To is the account receiving the funds.
	To types.AccountID

	// Token selects which per-token fee balance to draw from.
	Token types.TokenID

	// Amount is how much to withdraw. Must not exceed the fee balance.
	Amount uint64
}

// LockerFilter narrows a locker listing. Zero-valued fields match everything.
type LockerFilter struct {
	// State, when not StateUnspecified, matches lockers in that state only.
	State types.LockerState

	// Token, when non-empty, matches lockers denominated in that token.
	Token types.TokenID

	// Creator, when non-empty, matches lockers created by that account.
	Creator types.AccountID
}

// GetLockersRequest contains parameters for listing lockers.
type GetLockersRequest struct {
	// Filter narrows the listing. Nil matches all lockers.
	Filter *LockerFilter

	// Limit caps the number of returned lockers. Zero uses the server default.
	Limit int

	// Offset skips that many matches before the first returned locker.
	Offset int
}

// GetLockersResult is a page of a locker listing.
type GetLockersResult struct {
	// Lockers is the page of matching locker records, ordered by creation time.
	Lockers []*types.LockerInfo

	// Total is the total number of matches across all pages.
	Total int
}

// HealthInfo describes the server's operational status.
type HealthInfo struct {
	// Serving is true when the server is accepting requests.
	Serving bool

	// Message is a human-readable status description.
	Message string

	// Timestamp is the server-side time of the check.
	Timestamp time.Time
}

// RetryPolicy controls how the client retries failed operations.
type RetryPolicy struct {
	// MaxRetries is the maximum number of retry attempts (0 = no retries).
	MaxRetries int

	// InitialBackoff is the initial delay before the first retry.
	InitialBackoff time.Duration

	// MaxBackoff is the maximum delay between retries.
	MaxBackoff time.Duration

	// BackoffMultiplier determines how backoff increases between retries.
	BackoffMultiplier float64

	// JitterFactor adds randomness to backoff timing (0.0 to 1.0).
	JitterFactor float64

	// RetryableErrors specifies which server error codes should trigger retries.
	RetryableErrors []pb.ErrorCode
}
