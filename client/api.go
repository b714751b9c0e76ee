package client

import (
	"context"

	"github.com/jathurchan/vaultlock/types"
)

// VaultLockClient is a high-level client for the participant-facing surface of
// a VaultLock server. It abstracts gRPC communication and provides typed
// methods with retries, endpoint failover, and backoff.
//
// All operations are context-aware and honor cancellation and timeouts.
type VaultLockClient interface {
	// CreateLocker creates a new locker and stakes the first deposit.
	//
	// Returns:
	//   - The created locker record.
	//   - ErrTokenNotValid, ErrLockerExists, ErrInvalidAmount, or
	//     ErrTransferFailed on vault rejection.
	CreateLocker(ctx context.Context, req *CreateLockerRequest) (*types.LockerInfo, error)

	// DepositLocker joins an open locker by staking its fixed deposit amount.
	//
	// Returns:
	//   - The updated locker record.
	//   - ErrLockerNotFound, ErrInvalidState, or ErrTransferFailed.
	DepositLocker(ctx context.Context, req *DepositLockerRequest) (*types.LockerInfo, error)

	// WithdrawLocker cancels one of the caller's stakes in an open locker,
	// refunding it directly to the destination account.
	//
	// Returns:
	//   - The refunded amount and updated locker record.
	//   - ErrLockerNotFound, ErrInvalidState, ErrUnauthorized, or
	//     ErrTransferFailed.
	WithdrawLocker(ctx context.Context, req *WithdrawLockerRequest) (*WithdrawLockerResult, error)

	// Withdraw pays out part of the caller's withdrawable balance.
	//
	// Returns:
	//   - The caller's remaining balance for the token.
	//   - ErrInvalidAmount, ErrInsufficientBalance, or ErrTransferFailed.
	Withdraw(ctx context.Context, req *WithdrawRequest) (uint64, error)

	// GetLocker fetches the current record of a locker.
	//
	// Returns ErrLockerNotFound if the ID is unknown.
	GetLocker(ctx context.Context, id types.LockerID) (*types.LockerInfo, error)

	// GetLockers fetches a filtered, paginated list of lockers.
	GetLockers(ctx context.Context, req *GetLockersRequest) (*GetLockersResult, error)

	// GetBalance fetches an account's withdrawable balance for a token.
	GetBalance(ctx context.Context, account types.AccountID, token types.TokenID) (uint64, error)

	// GetFee fetches the current protocol fee rate in parts per thousand.
	GetFee(ctx context.Context) (uint32, error)

	// CalculateFee asks the server what fee it would charge on amount.
	CalculateFee(ctx context.Context, amount uint64) (uint64, error)

	// IsTokenWhitelisted reports whether the token is accepted for new lockers.
	IsTokenWhitelisted(ctx context.Context, token types.TokenID) (bool, error)

	// Close shuts down the client, releasing all connections.
	// The client must not be used after Close is called.
	Close() error
}

// AdminClient exposes the owner-gated and operational surface of a VaultLock
// server. Intended for operator tooling, not participant applications.
type AdminClient interface {
	// CloseLocker stops further deposits into an open locker.
	//
	// Returns ErrUnauthorized, ErrLockerNotFound, or ErrInvalidState.
	CloseLocker(ctx context.Context, caller types.AccountID, id types.LockerID) (*types.LockerInfo, error)

	// SetWinner resolves a closed locker, crediting the winner's balance and
	// the protocol fee.
	//
	// Returns:
	//   - The resolution outcome with payout and fee amounts.
	//   - ErrUnauthorized, ErrLockerNotFound, or ErrInvalidState.
	SetWinner(ctx context.Context, req *SetWinnerRequest) (*ResolveResult, error)

	// WithdrawFee pays out part of the accrued protocol fee balance.
	//
	// Returns the remaining fee balance for the token, or ErrUnauthorized,
	// ErrInvalidAmount, ErrInsufficientBalance, ErrTransferFailed.
	WithdrawFee(ctx context.Context, req *WithdrawFeeRequest) (uint64, error)

	// AddTokens whitelists tokens for new lockers. Idempotent.
	//
	// Returns the number of tokens newly added, or ErrUnauthorized.
	AddTokens(ctx context.Context, caller types.AccountID, tokens []types.TokenID) (int, error)

	// SetFee updates the protocol fee rate in parts per thousand.
	//
	// Returns ErrUnauthorized or ErrInvalidAmount.
	SetFee(ctx context.Context, caller types.AccountID, rateBps uint32) error

	// GetFeeBalance fetches the accrued protocol fee balance for a token.
	GetFeeBalance(ctx context.Context, token types.TokenID) (uint64, error)

	// Health checks the health of the VaultLock service.
	Health(ctx context.Context) (*HealthInfo, error)

	// Close shuts down the client and releases associated resources.
	Close() error
}

// AdvancedClient exposes lower-level knobs shared by both client surfaces.
type AdvancedClient interface {
	// IsConnected reports whether the client has an active connection.
	IsConnected() bool

	// SetRetryPolicy replaces the client's retry behavior for failed operations.
	SetRetryPolicy(policy RetryPolicy)

	// GetMetrics returns client-side metrics for observability.
	GetMetrics() ClientMetrics

	// Close shuts down the client and releases resources.
	Close() error
}
