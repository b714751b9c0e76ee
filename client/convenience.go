package client

import (
	"context"
	"crypto/rand"
	"fmt"

	"github.com/jathurchan/vaultlock/types"
)

// RandomLockerID generates a cryptographically random locker ID, suitable for
// clients that do not derive IDs from application data.
func RandomLockerID() (types.LockerID, error) {
	var id types.LockerID
	if _, err := rand.Read(id[:]); err != nil {
		return types.LockerID{}, fmt.Errorf("failed to generate locker ID: %w", err)
	}
	if id.IsZero() {
		return types.LockerID{}, fmt.Errorf("generated an all-zero locker ID")
	}
	return id, nil
}

// WithdrawAll drains the caller's entire withdrawable balance for a token to
// the destination account. Returns the amount withdrawn; a zero balance is not
// an error.
func WithdrawAll(ctx context.Context, c VaultLockClient, caller, to types.AccountID, token types.TokenID) (uint64, error) {
	balance, err := c.GetBalance(ctx, caller, token)
	if err != nil {
		return 0, err
	}
	if balance == 0 {
		return 0, nil
	}

	if _, err := c.Withdraw(ctx, &WithdrawRequest{
		CallerID: caller,
		To:       to,
		Token:    token,
		Amount:   balance,
	}); err != nil {
		return 0, err
	}
	return balance, nil
}
