package vault

import "github.com/jathurchan/vaultlock/types"

// balanceLedger tracks withdrawable balances owed by the vault: per-(account,
// token) credits accrued from resolutions, and per-token protocol fees.
// Entries are created implicitly at zero and can never go negative.
type balanceLedger struct {
	// balances[account][token] is the withdrawable amount owed to account.
	balances map[types.AccountID]map[types.TokenID]uint64

	// feeBalances[token] is the protocol fee accrued in token.
	feeBalances map[types.TokenID]uint64
}

func newBalanceLedger() *balanceLedger {
	return &balanceLedger{
		balances:    make(map[types.AccountID]map[types.TokenID]uint64),
		feeBalances: make(map[types.TokenID]uint64),
	}
}

// credit increases the account's withdrawable balance for the token.
func (bl *balanceLedger) credit(account types.AccountID, tok types.TokenID, amount uint64) {
	if amount == 0 {
		return
	}
	if bl.balances[account] == nil {
		bl.balances[account] = make(map[types.TokenID]uint64)
	}
	bl.balances[account][tok] += amount
}

// debit decreases the account's withdrawable balance for the token.
// Returns ErrInsufficientBalance if the stored balance is below amount.
func (bl *balanceLedger) debit(account types.AccountID, tok types.TokenID, amount uint64) error {
	if bl.balances[account][tok] < amount {
		return ErrInsufficientBalance
	}
	bl.balances[account][tok] -= amount
	return nil
}

// balance returns the account's withdrawable balance for the token.
func (bl *balanceLedger) balance(account types.AccountID, tok types.TokenID) uint64 {
	return bl.balances[account][tok]
}

// creditFee increases the protocol fee balance for the token.
func (bl *balanceLedger) creditFee(tok types.TokenID, amount uint64) {
	if amount == 0 {
		return
	}
	bl.feeBalances[tok] += amount
}

// debitFee decreases the protocol fee balance for the token.
// Returns ErrInsufficientBalance if the fee balance is below amount.
func (bl *balanceLedger) debitFee(tok types.TokenID, amount uint64) error {
	if bl.feeBalances[tok] < amount {
		return ErrInsufficientBalance
	}
	bl.feeBalances[tok] -= amount
	return nil
}

// feeBalance returns the protocol fee balance for the token.
func (bl *balanceLedger) feeBalance(tok types.TokenID) uint64 {
	return bl.feeBalances[tok]
}
