package token

import (
	"context"
	"errors"

	"github.com/jathurchan/vaultlock/types"
)

// Bank is the fungible-token collaborator the vault engine moves funds through.
// The engine never holds token state itself: deposits are pulled into the
// vault's custody with TransferFrom and payouts leave custody with Transfer.
//
// Any error returned from a Bank method aborts the enclosing vault operation.
// Implementations must be safe for concurrent use.
type Bank interface {
	// TransferFrom pulls amount of token from the given account into the
	// vault's custody. The account must have granted the vault a sufficient
	// allowance beforehand.
	TransferFrom(ctx context.Context, token types.TokenID, from types.AccountID, amount uint64) error

	// Transfer pays amount of token out of the vault's custody to the given
	// account.
	Transfer(ctx context.Context, token types.TokenID, to types.AccountID, amount uint64) error

	// BalanceOf returns the token balance held by the given account.
	BalanceOf(ctx context.Context, token types.TokenID, account types.AccountID) (uint64, error)
}

var (
	// ErrInsufficientFunds indicates the source account holds less than the transfer amount.
	ErrInsufficientFunds = errors.New("token: insufficient funds")

	// ErrInsufficientAllowance indicates the vault's spending allowance is below the transfer amount.
	ErrInsufficientAllowance = errors.New("token: insufficient allowance")

	// ErrUnknownToken indicates the token has never been minted in this bank.
	ErrUnknownToken = errors.New("token: unknown token")
)
