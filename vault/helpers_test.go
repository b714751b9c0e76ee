package vault

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jathurchan/vaultlock/testutil"
	"github.com/jathurchan/vaultlock/token"
	"github.com/jathurchan/vaultlock/types"
)

const (
	testOwner types.AccountID = "owner"
	testAlice types.AccountID = "alice"
	testBob   types.AccountID = "bob"
	testCarol types.AccountID = "carol"
	testVault types.AccountID = "vault-custody"

	testUSDC types.TokenID = "usdc"
	testDAI  types.TokenID = "dai"
)

// mockClock is a controllable Clock for deterministic timestamps.
type mockClock struct {
	now time.Time
}

func newMockClock() *mockClock {
	return &mockClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *mockClock) Now() time.Time                  { return c.now }
func (c *mockClock) Since(t time.Time) time.Duration { return c.now.Sub(t) }
func (c *mockClock) advance(d time.Duration)         { c.now = c.now.Add(d) }

// flakyBank wraps a MemoryBank and fails on demand, for exercising the
// transfer-failure unwind paths.
type flakyBank struct {
	*token.MemoryBank

	failTransferFrom bool
	failTransfer     bool
}

var errBankDown = errors.New("bank unavailable")

func (b *flakyBank) TransferFrom(ctx context.Context, tok types.TokenID, from types.AccountID, amount uint64) error {
	if b.failTransferFrom {
		return errBankDown
	}
	return b.MemoryBank.TransferFrom(ctx, tok, from, amount)
}

func (b *flakyBank) Transfer(ctx context.Context, tok types.TokenID, to types.AccountID, amount uint64) error {
	if b.failTransfer {
		return errBankDown
	}
	return b.MemoryBank.Transfer(ctx, tok, to, amount)
}

// testEnv bundles an engine with its collaborators for scenario tests.
type testEnv struct {
	engine VaultEngine
	bank   *flakyBank
	clock  *mockClock
}

// newTestEnv builds an engine owned by testOwner with usdc and dai
// whitelisted, a 10/1000 fee rate, and funded, pre-approved accounts.
func newTestEnv(t *testing.T, opts ...EngineOption) *testEnv {
	t.Helper()

	bank := &flakyBank{MemoryBank: token.NewMemoryBank(testVault)}
	for _, account := range []types.AccountID{testAlice, testBob, testCarol} {
		bank.Mint(testUSDC, account, 1_000)
		bank.Approve(testUSDC, account, 1_000)
		bank.Mint(testDAI, account, 1_000)
		bank.Approve(testDAI, account, 1_000)
	}

	clock := newMockClock()
	base := []EngineOption{
		WithTokens(testUSDC, testDAI),
		WithFeeRate(10),
		WithClock(clock),
	}
	engine, err := NewVaultEngine(testOwner, bank, append(base, opts...)...)
	testutil.RequireNoError(t, err, "NewVaultEngine failed")

	return &testEnv{engine: engine, bank: bank, clock: clock}
}

// lockerID builds a deterministic LockerID from a single distinguishing byte.
func lockerID(b byte) types.LockerID {
	var id types.LockerID
	id[0] = b
	return id
}

// custodyBalance reads the vault custody account's bank balance.
func (env *testEnv) custodyBalance(t *testing.T, tok types.TokenID) uint64 {
	t.Helper()
	balance, err := env.bank.BalanceOf(context.Background(), tok, testVault)
	testutil.RequireNoError(t, err, "BalanceOf failed")
	return balance
}
