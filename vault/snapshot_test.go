package vault

import (
	"context"
	"testing"

	"github.com/jathurchan/vaultlock/testutil"
	"github.com/jathurchan/vaultlock/token"
	"github.com/jathurchan/vaultlock/types"
)

func TestSnapshotRoundTrip(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	id := lockerID(1)

	_, err := env.engine.CreateLocker(ctx, testAlice, id, testUSDC, 100)
	testutil.RequireNoError(t, err, "create failed")
	_, err = env.engine.DepositLocker(ctx, testBob, id)
	testutil.RequireNoError(t, err, "deposit failed")
	_, err = env.engine.CloseLocker(ctx, testOwner, id)
	testutil.RequireNoError(t, err, "close failed")
	_, err = env.engine.SetWinner(ctx, testOwner, id, testBob)
	testutil.RequireNoError(t, err, "resolve failed")

	_, err = env.engine.CreateLocker(ctx, testCarol, lockerID(2), testDAI, 50)
	testutil.RequireNoError(t, err, "second create failed")

	data, err := env.engine.Snapshot(ctx)
	testutil.RequireNoError(t, err, "Snapshot failed")

	// Restore into a fresh engine sharing the same bank.
	restored, err := NewVaultEngine(testOwner, env.bank, WithClock(env.clock))
	testutil.RequireNoError(t, err, "NewVaultEngine failed")
	testutil.RequireNoError(t, restored.RestoreSnapshot(ctx, data), "RestoreSnapshot failed")

	testutil.AssertEqual(t, uint32(10), restored.FeeRate())
	testutil.AssertTrue(t, restored.IsTokenWhitelisted(testUSDC))
	testutil.AssertTrue(t, restored.IsTokenWhitelisted(testDAI))
	testutil.AssertEqual(t, uint64(198), restored.GetBalance(ctx, testBob, testUSDC))
	testutil.AssertEqual(t, uint64(2), restored.GetFeeBalance(ctx, testUSDC))

	info, err := restored.GetLocker(ctx, id)
	testutil.RequireNoError(t, err, "GetLocker failed")
	testutil.AssertEqual(t, types.StateResolved, info.State)
	testutil.AssertEqual(t, testBob, info.Winner)
	testutil.AssertEqual(t, uint64(200), info.TotalBalance)

	// The restored engine carries full semantics, not just data: carol can
	// still cancel her open stake.
	refund, _, err := restored.WithdrawLocker(ctx, testCarol, lockerID(2), testCarol)
	testutil.RequireNoError(t, err, "WithdrawLocker on restored engine failed")
	testutil.AssertEqual(t, uint64(50), refund)
}

func TestSnapshotDeterministic(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	for i := byte(1); i <= 4; i++ {
		_, err := env.engine.CreateLocker(ctx, testAlice, lockerID(i), testUSDC, 10)
		testutil.RequireNoError(t, err, "create %d failed", i)
	}

	first, err := env.engine.Snapshot(ctx)
	testutil.RequireNoError(t, err, "first Snapshot failed")
	second, err := env.engine.Snapshot(ctx)
	testutil.RequireNoError(t, err, "second Snapshot failed")
	testutil.AssertEqual(t, string(first), string(second),
		"identical state must encode to identical bytes")
}

func TestRestoreSnapshot_Corrupt(t *testing.T) {
	ctx := context.Background()
	serializer := &JSONSerializer{}

	base := func() vaultSnapshot {
		return vaultSnapshot{
			FeeRateBps: 10,
			Tokens:     []types.TokenID{testUSDC},
			Lockers: []lockerSnapshot{{
				LockerID:     lockerID(1).String(),
				Token:        testUSDC,
				Stake:        100,
				TotalBalance: 200,
				PlayersCount: 2,
				State:        types.StateOpen,
				Creator:      testAlice,
				Depositors: []depositorSnapshot{
					{Account: testAlice, Stakes: 1},
					{Account: testBob, Stakes: 1},
				},
			}},
		}
	}

	tests := []struct {
		name   string
		mutate func(*vaultSnapshot)
	}{
		{"bad locker ID", func(s *vaultSnapshot) { s.Lockers[0].LockerID = "zz" }},
		{"invalid state", func(s *vaultSnapshot) { s.Lockers[0].State = types.LockerState(9) }},
		{"zero stake", func(s *vaultSnapshot) { s.Lockers[0].Stake = 0 }},
		{"balance mismatch", func(s *vaultSnapshot) { s.Lockers[0].TotalBalance = 150 }},
		{"depositor mismatch", func(s *vaultSnapshot) { s.Lockers[0].Depositors = s.Lockers[0].Depositors[:1] }},
		{"duplicate depositor", func(s *vaultSnapshot) {
			s.Lockers[0].Depositors = []depositorSnapshot{
				{Account: testAlice, Stakes: 1},
				{Account: testAlice, Stakes: 1},
			}
		}},
		{"resolved without winner", func(s *vaultSnapshot) {
			s.Lockers[0].State = types.StateResolved
		}},
		{"duplicate locker", func(s *vaultSnapshot) { s.Lockers = append(s.Lockers, s.Lockers[0]) }},
		{"fee rate over scale", func(s *vaultSnapshot) { s.FeeRateBps = FeeScale + 1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine, err := NewVaultEngine(testOwner, token.NewMemoryBank(testVault))
			testutil.RequireNoError(t, err, "NewVaultEngine failed")

			snap := base()
			tt.mutate(&snap)
			data, err := serializer.EncodeSnapshot(snap)
			testutil.RequireNoError(t, err, "EncodeSnapshot failed")

			err = engine.RestoreSnapshot(ctx, data)
			testutil.AssertErrorIs(t, err, ErrCorruptSnapshot)

			// A rejected snapshot must leave the engine untouched.
			_, _, err = engine.GetLockers(ctx, nil, 0, 0)
			testutil.AssertNoError(t, err, "engine unusable after rejected restore")
		})
	}
}

func TestRestoreSnapshot_BadPayload(t *testing.T) {
	engine, err := NewVaultEngine(testOwner, token.NewMemoryBank(testVault))
	testutil.RequireNoError(t, err, "NewVaultEngine failed")

	err = engine.RestoreSnapshot(context.Background(), []byte("{not json"))
	testutil.AssertErrorIs(t, err, ErrCorruptSnapshot)
}
