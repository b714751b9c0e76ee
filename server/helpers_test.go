package server

import (
	"testing"

	"github.com/jathurchan/vaultlock/testutil"
	"github.com/jathurchan/vaultlock/token"
	"github.com/jathurchan/vaultlock/types"
	"github.com/jathurchan/vaultlock/vault"
)

const (
	testOwner = "acct-owner"
	testAlice = "acct-alice"
	testBob   = "acct-bob"
	testVault = types.AccountID("acct-vault-custody")

	testUSDC = "tok-usdc"
	testDAI  = "tok-dai"
)

// lockerIDBytes returns a 32-byte locker ID whose first byte is b.
func lockerIDBytes(b byte) []byte {
	id := make([]byte, types.LockerIDSize)
	id[0] = b
	return id
}

// testServer bundles a handler-level server with its backing engine and bank.
type testServer struct {
	srv    *vaultLockServer
	engine vault.VaultEngine
	bank   *token.MemoryBank
}

// newTestServer builds a server around a fresh in-memory engine. The server is
// not started; tests exercise the RPC handlers directly.
func newTestServer(t *testing.T, mutate func(*VaultServerConfig)) *testServer {
	t.Helper()

	bank := token.NewMemoryBank(testVault)
	for _, tok := range []types.TokenID{testUSDC, testDAI} {
		for _, acct := range []types.AccountID{testOwner, testAlice, testBob} {
			bank.Mint(tok, acct, 1_000)
			bank.Approve(tok, acct, 1_000)
		}
	}

	engine, err := vault.NewVaultEngine(testOwner, bank,
		vault.WithTokens(testUSDC, testDAI),
		vault.WithFeeRate(10),
	)
	testutil.RequireNoError(t, err)

	config := DefaultVaultServerConfig()
	config.OwnerID = testOwner
	if mutate != nil {
		mutate(&config)
	}

	srv, err := NewVaultLockServer(engine, config)
	testutil.RequireNoError(t, err)

	return &testServer{
		srv:    srv.(*vaultLockServer),
		engine: engine,
		bank:   bank,
	}
}
