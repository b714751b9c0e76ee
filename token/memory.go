package token

import (
	"context"
	"sync"

	"github.com/jathurchan/vaultlock/types"
)

// MemoryBank is an in-memory Bank implementation used by the development
// server and by tests. It models per-token account balances plus the
// allowances accounts grant to the vault's custody account.
type MemoryBank struct {
	mu sync.RWMutex

	// vault is the custody account all TransferFrom pulls credit
	// and all Transfer payouts debit.
	vault types.AccountID

	// balances[token][account] is the amount of token held by account.
	balances map[types.TokenID]map[types.AccountID]uint64

	// allowances[token][account] is how much of token the vault may pull from account.
	allowances map[types.TokenID]map[types.AccountID]uint64
}

// NewMemoryBank creates an empty in-memory bank with the given vault custody account.
func NewMemoryBank(vault types.AccountID) *MemoryBank {
	return &MemoryBank{
		vault:      vault,
		balances:   make(map[types.TokenID]map[types.AccountID]uint64),
		allowances: make(map[types.TokenID]map[types.AccountID]uint64),
	}
}

// Mint credits amount of token to the given account, creating the token if needed.
func (b *MemoryBank) Mint(token types.TokenID, account types.AccountID, amount uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.balances[token] == nil {
		b.balances[token] = make(map[types.AccountID]uint64)
	}
	b.balances[token][account] += amount
}

// Approve sets the vault's spending allowance for account's holdings of token.
func (b *MemoryBank) Approve(token types.TokenID, account types.AccountID, amount uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.allowances[token] == nil {
		b.allowances[token] = make(map[types.AccountID]uint64)
	}
	b.allowances[token][account] = amount
}

// TransferFrom pulls amount of token from the given account into the vault's custody.
func (b *MemoryBank) TransferFrom(ctx context.Context, token types.TokenID, from types.AccountID, amount uint64) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	accounts, ok := b.balances[token]
	if !ok {
		return ErrUnknownToken
	}
	if b.allowances[token][from] < amount {
		return ErrInsufficientAllowance
	}
	if accounts[from] < amount {
		return ErrInsufficientFunds
	}

	b.allowances[token][from] -= amount
	accounts[from] -= amount
	accounts[b.vault] += amount
	return nil
}

// Transfer pays amount of token out of the vault's custody to the given account.
func (b *MemoryBank) Transfer(ctx context.Context, token types.TokenID, to types.AccountID, amount uint64) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	accounts, ok := b.balances[token]
	if !ok {
		return ErrUnknownToken
	}
	if accounts[b.vault] < amount {
		return ErrInsufficientFunds
	}

	accounts[b.vault] -= amount
	accounts[to] += amount
	return nil
}

// BalanceOf returns the token balance held by the given account.
func (b *MemoryBank) BalanceOf(ctx context.Context, token types.TokenID, account types.AccountID) (uint64, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	accounts, ok := b.balances[token]
	if !ok {
		return 0, ErrUnknownToken
	}
	return accounts[account], nil
}
