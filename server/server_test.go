package server

import (
	"context"
	"testing"

	pb "github.com/jathurchan/vaultlock/proto"
	"github.com/jathurchan/vaultlock/testutil"
	"github.com/jathurchan/vaultlock/token"
	"github.com/jathurchan/vaultlock/types"
	"github.com/jathurchan/vaultlock/vault"
)

func TestNewVaultLockServer_Validation(t *testing.T) {
	config := DefaultVaultServerConfig()
	config.OwnerID = testOwner

	_, err := NewVaultLockServer(nil, config)
	testutil.AssertError(t, err, "nil engine must be rejected")

	bank := token.NewMemoryBank(testVault)
	engine, err := vault.NewVaultEngine(testOwner, bank)
	testutil.RequireNoError(t, err)

	bad := DefaultVaultServerConfig()
	_, err = NewVaultLockServer(engine, bad)
	testutil.AssertError(t, err, "empty OwnerID must be rejected")

	_, err = NewVaultLockServer(engine, config)
	testutil.AssertNoError(t, err)
}

func TestCreateLockerRPC(t *testing.T) {
	ts := newTestServer(t, nil)
	ctx := context.Background()

	resp, err := ts.srv.CreateLocker(ctx, &pb.CreateLockerRequest{
		CallerId: testAlice,
		LockerId: lockerIDBytes(1),
		TokenId:  testUSDC,
		Amount:   100,
	})
	testutil.RequireNoError(t, err)
	testutil.AssertNil(t, resp.Error)
	testutil.RequireNotNil(t, resp.Locker)
	testutil.AssertEqual(t, lockerIDBytes(1), resp.Locker.LockerId)
	testutil.AssertEqual(t, uint64(100), resp.Locker.Stake)
	testutil.AssertEqual(t, uint64(100), resp.Locker.TotalBalance)
	testutil.AssertEqual(t, uint32(1), resp.Locker.PlayersCount)
	testutil.AssertEqual(t, pb.LockerState_LOCKER_STATE_OPEN, resp.Locker.State)
	testutil.AssertEqual(t, testAlice, resp.Locker.CreatorId)
}

func TestCreateLockerRPC_ValidationError(t *testing.T) {
	ts := newTestServer(t, nil)
	ctx := context.Background()

	tests := []struct {
		name string
		req  *pb.CreateLockerRequest
	}{
		{"empty caller", &pb.CreateLockerRequest{
			LockerId: lockerIDBytes(1), TokenId: testUSDC, Amount: 100}},
		{"short locker id", &pb.CreateLockerRequest{
			CallerId: testAlice, LockerId: []byte{1, 2, 3}, TokenId: testUSDC, Amount: 100}},
		{"zero locker id", &pb.CreateLockerRequest{
			CallerId: testAlice, LockerId: make([]byte, types.LockerIDSize), TokenId: testUSDC, Amount: 100}},
		{"empty token", &pb.CreateLockerRequest{
			CallerId: testAlice, LockerId: lockerIDBytes(1), Amount: 100}},
		{"zero amount", &pb.CreateLockerRequest{
			CallerId: testAlice, LockerId: lockerIDBytes(1), TokenId: testUSDC}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := ts.srv.CreateLocker(ctx, tt.req)
			testutil.RequireNoError(t, err)
			testutil.RequireNotNil(t, resp.Error)
			testutil.AssertEqual(t, pb.ErrorCode_INVALID_ARGUMENT, resp.Error.Code)
		})
	}
}

func TestCreateLockerRPC_EngineError(t *testing.T) {
	ts := newTestServer(t, nil)
	ctx := context.Background()

	resp, err := ts.srv.CreateLocker(ctx, &pb.CreateLockerRequest{
		CallerId: testAlice,
		LockerId: lockerIDBytes(1),
		TokenId:  "tok-unknown",
		Amount:   100,
	})
	testutil.RequireNoError(t, err)
	testutil.RequireNotNil(t, resp.Error)
	testutil.AssertEqual(t, pb.ErrorCode_TOKEN_NOT_VALID, resp.Error.Code)
}

func TestResolutionLifecycleRPC(t *testing.T) {
	ts := newTestServer(t, nil)
	ctx := context.Background()
	id := lockerIDBytes(7)

	_, err := ts.srv.CreateLocker(ctx, &pb.CreateLockerRequest{
		CallerId: testAlice, LockerId: id, TokenId: testUSDC, Amount: 100})
	testutil.RequireNoError(t, err)

	depResp, err := ts.srv.DepositLocker(ctx, &pb.DepositLockerRequest{
		CallerId: testBob, LockerId: id})
	testutil.RequireNoError(t, err)
	testutil.AssertNil(t, depResp.Error)
	testutil.AssertEqual(t, uint64(200), depResp.Locker.TotalBalance)
	testutil.AssertEqual(t, uint32(2), depResp.Locker.PlayersCount)

	closeResp, err := ts.srv.CloseLocker(ctx, &pb.CloseLockerRequest{
		CallerId: testOwner, LockerId: id})
	testutil.RequireNoError(t, err)
	testutil.AssertNil(t, closeResp.Error)
	testutil.AssertEqual(t, pb.LockerState_LOCKER_STATE_CLOSED, closeResp.Locker.State)

	winResp, err := ts.srv.SetWinner(ctx, &pb.SetWinnerRequest{
		CallerId: testOwner, LockerId: id, WinnerId: testBob})
	testutil.RequireNoError(t, err)
	testutil.AssertNil(t, winResp.Error)
	testutil.AssertEqual(t, uint64(2), winResp.Fee)
	testutil.AssertEqual(t, uint64(198), winResp.Payout)
	testutil.AssertEqual(t, pb.LockerState_LOCKER_STATE_RESOLVED, winResp.Locker.State)
	testutil.AssertEqual(t, testBob, winResp.Locker.WinnerId)

	balResp, err := ts.srv.GetBalance(ctx, &pb.GetBalanceRequest{
		AccountId: testBob, TokenId: testUSDC})
	testutil.RequireNoError(t, err)
	testutil.AssertEqual(t, uint64(198), balResp.Balance)

	feeResp, err := ts.srv.GetFeeBalance(ctx, &pb.GetFeeBalanceRequest{TokenId: testUSDC})
	testutil.RequireNoError(t, err)
	testutil.AssertEqual(t, uint64(2), feeResp.Balance)

	wdResp, err := ts.srv.Withdraw(ctx, &pb.WithdrawRequest{
		CallerId: testBob, ToId: testBob, TokenId: testUSDC, Amount: 198})
	testutil.RequireNoError(t, err)
	testutil.AssertNil(t, wdResp.Error)
	testutil.AssertEqual(t, uint64(0), wdResp.Remaining)

	feeWdResp, err := ts.srv.WithdrawFee(ctx, &pb.WithdrawFeeRequest{
		CallerId: testOwner, ToId: testOwner, TokenId: testUSDC, Amount: 2})
	testutil.RequireNoError(t, err)
	testutil.AssertNil(t, feeWdResp.Error)
	testutil.AssertEqual(t, uint64(0), feeWdResp.Remaining)
}

func TestSetWinnerRPC_Unauthorized(t *testing.T) {
	ts := newTestServer(t, nil)
	ctx := context.Background()
	id := lockerIDBytes(2)

	_, err := ts.srv.CreateLocker(ctx, &pb.CreateLockerRequest{
		CallerId: testAlice, LockerId: id, TokenId: testUSDC, Amount: 50})
	testutil.RequireNoError(t, err)

	resp, err := ts.srv.SetWinner(ctx, &pb.SetWinnerRequest{
		CallerId: testAlice, LockerId: id, WinnerId: testAlice})
	testutil.RequireNoError(t, err)
	testutil.RequireNotNil(t, resp.Error)
	testutil.AssertEqual(t, pb.ErrorCode_UNAUTHORIZED, resp.Error.Code)
}

func TestWithdrawLockerRPC(t *testing.T) {
	ts := newTestServer(t, nil)
	ctx := context.Background()
	id := lockerIDBytes(3)

	_, err := ts.srv.CreateLocker(ctx, &pb.CreateLockerRequest{
		CallerId: testAlice, LockerId: id, TokenId: testDAI, Amount: 60})
	testutil.RequireNoError(t, err)

	resp, err := ts.srv.WithdrawLocker(ctx, &pb.WithdrawLockerRequest{
		CallerId: testAlice, LockerId: id, ToId: testAlice})
	testutil.RequireNoError(t, err)
	testutil.AssertNil(t, resp.Error)
	testutil.AssertEqual(t, uint64(60), resp.Refunded)
	testutil.AssertEqual(t, uint64(0), resp.Locker.TotalBalance)
	testutil.AssertEqual(t, uint32(0), resp.Locker.PlayersCount)

	resp, err = ts.srv.WithdrawLocker(ctx, &pb.WithdrawLockerRequest{
		CallerId: testBob, LockerId: id, ToId: testBob})
	testutil.RequireNoError(t, err)
	testutil.RequireNotNil(t, resp.Error)
	testutil.AssertEqual(t, pb.ErrorCode_UNAUTHORIZED, resp.Error.Code)
}

func TestWithdrawRPC_InsufficientBalance(t *testing.T) {
	ts := newTestServer(t, nil)

	resp, err := ts.srv.Withdraw(context.Background(), &pb.WithdrawRequest{
		CallerId: testAlice, ToId: testAlice, TokenId: testUSDC, Amount: 1})
	testutil.RequireNoError(t, err)
	testutil.RequireNotNil(t, resp.Error)
	testutil.AssertEqual(t, pb.ErrorCode_INSUFFICIENT_BALANCE, resp.Error.Code)
}

func TestAddTokensRPC(t *testing.T) {
	ts := newTestServer(t, nil)
	ctx := context.Background()

	resp, err := ts.srv.AddTokens(ctx, &pb.AddTokensRequest{
		CallerId: testOwner, TokenIds: []string{"tok-new", testUSDC}})
	testutil.RequireNoError(t, err)
	testutil.AssertNil(t, resp.Error)
	testutil.AssertEqual(t, uint32(1), resp.Added, "already whitelisted token must not count")

	tokResp, err := ts.srv.GetToken(ctx, &pb.GetTokenRequest{TokenId: "tok-new"})
	testutil.RequireNoError(t, err)
	testutil.AssertTrue(t, tokResp.Whitelisted)

	resp, err = ts.srv.AddTokens(ctx, &pb.AddTokensRequest{
		CallerId: testAlice, TokenIds: []string{"tok-other"}})
	testutil.RequireNoError(t, err)
	testutil.RequireNotNil(t, resp.Error)
	testutil.AssertEqual(t, pb.ErrorCode_UNAUTHORIZED, resp.Error.Code)
}

func TestFeeRPCs(t *testing.T) {
	ts := newTestServer(t, nil)
	ctx := context.Background()

	feeResp, err := ts.srv.GetFee(ctx, &pb.GetFeeRequest{})
	testutil.RequireNoError(t, err)
	testutil.AssertEqual(t, uint32(10), feeResp.RateBps)

	calcResp, err := ts.srv.CalculateFee(ctx, &pb.CalculateFeeRequest{Amount: 199})
	testutil.RequireNoError(t, err)
	testutil.AssertEqual(t, uint64(1), calcResp.Fee)

	setResp, err := ts.srv.SetFee(ctx, &pb.SetFeeRequest{CallerId: testOwner, RateBps: 250})
	testutil.RequireNoError(t, err)
	testutil.AssertNil(t, setResp.Error)

	calcResp, err = ts.srv.CalculateFee(ctx, &pb.CalculateFeeRequest{Amount: 100})
	testutil.RequireNoError(t, err)
	testutil.AssertEqual(t, uint64(25), calcResp.Fee)

	setResp, err = ts.srv.SetFee(ctx, &pb.SetFeeRequest{CallerId: testOwner, RateBps: vault.FeeScale + 1})
	testutil.RequireNoError(t, err)
	testutil.RequireNotNil(t, setResp.Error)
	testutil.AssertEqual(t, pb.ErrorCode_INVALID_AMOUNT, setResp.Error.Code)
}

func TestGetLockerRPC_NotFound(t *testing.T) {
	ts := newTestServer(t, nil)

	resp, err := ts.srv.GetLocker(context.Background(), &pb.GetLockerRequest{
		LockerId: lockerIDBytes(9)})
	testutil.RequireNoError(t, err)
	testutil.RequireNotNil(t, resp.Error)
	testutil.AssertEqual(t, pb.ErrorCode_LOCKER_NOT_FOUND, resp.Error.Code)
}

func TestGetLockersRPC(t *testing.T) {
	ts := newTestServer(t, nil)
	ctx := context.Background()

	for i := byte(1); i <= 4; i++ {
		tok := testUSDC
		if i%2 == 0 {
			tok = testDAI
		}
		_, err := ts.srv.CreateLocker(ctx, &pb.CreateLockerRequest{
			CallerId: testAlice, LockerId: lockerIDBytes(i), TokenId: tok, Amount: 10})
		testutil.RequireNoError(t, err)
	}

	resp, err := ts.srv.GetLockers(ctx, &pb.GetLockersRequest{})
	testutil.RequireNoError(t, err)
	testutil.AssertNil(t, resp.Error)
	testutil.AssertEqual(t, int32(4), resp.Total)
	testutil.AssertLen(t, resp.Lockers, 4)

	resp, err = ts.srv.GetLockers(ctx, &pb.GetLockersRequest{
		Filter: &pb.LockerFilter{TokenId: testDAI}})
	testutil.RequireNoError(t, err)
	testutil.AssertEqual(t, int32(2), resp.Total)
	testutil.AssertLen(t, resp.Lockers, 2)

	resp, err = ts.srv.GetLockers(ctx, &pb.GetLockersRequest{Limit: 2, Offset: 3})
	testutil.RequireNoError(t, err)
	testutil.AssertEqual(t, int32(4), resp.Total)
	testutil.AssertLen(t, resp.Lockers, 1)

	resp, err = ts.srv.GetLockers(ctx, &pb.GetLockersRequest{Limit: -1})
	testutil.RequireNoError(t, err)
	testutil.RequireNotNil(t, resp.Error)
	testutil.AssertEqual(t, pb.ErrorCode_INVALID_ARGUMENT, resp.Error.Code)
}

func TestHealthRPC(t *testing.T) {
	ts := newTestServer(t, nil)

	resp, err := ts.srv.Health(context.Background(), &pb.HealthRequest{})
	testutil.RequireNoError(t, err)
	testutil.AssertEqual(t, pb.HealthStatus_HEALTH_STATUS_NOT_SERVING, resp.Status,
		"unstarted server must not report serving")

	ts.srv.setState(ServerStateRunning)
	resp, err = ts.srv.Health(context.Background(), &pb.HealthRequest{})
	testutil.RequireNoError(t, err)
	testutil.AssertEqual(t, pb.HealthStatus_HEALTH_STATUS_SERVING, resp.Status)
	testutil.AssertTrue(t, resp.TimestampMs > 0)
}

func TestSnapshotPersistenceRoundTrip(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	ts := newTestServer(t, func(c *VaultServerConfig) {
		c.EnablePersistence = true
		c.DataDir = dir
	})

	_, err := ts.srv.CreateLocker(ctx, &pb.CreateLockerRequest{
		CallerId: testAlice, LockerId: lockerIDBytes(5), TokenId: testUSDC, Amount: 75})
	testutil.RequireNoError(t, err)
	testutil.RequireNoError(t, ts.srv.persistSnapshot(ctx))

	// A second server over the same data dir and bank picks the state back up.
	restored := newTestServer(t, func(c *VaultServerConfig) {
		c.EnablePersistence = true
		c.DataDir = dir
	})
	testutil.RequireNoError(t, restored.srv.restoreState(ctx))

	resp, err := restored.srv.GetLocker(ctx, &pb.GetLockerRequest{LockerId: lockerIDBytes(5)})
	testutil.RequireNoError(t, err)
	testutil.AssertNil(t, resp.Error)
	testutil.AssertEqual(t, uint64(75), resp.Locker.Stake)
	testutil.AssertEqual(t, testAlice, resp.Locker.CreatorId)
}

func TestRestoreState_NoSnapshotIsFreshStart(t *testing.T) {
	ts := newTestServer(t, func(c *VaultServerConfig) {
		c.EnablePersistence = true
		c.DataDir = t.TempDir()
	})
	testutil.AssertNoError(t, ts.srv.restoreState(context.Background()))
}

func TestMethodName(t *testing.T) {
	testutil.AssertEqual(t, "CreateLocker", methodName("/vaultlock.VaultLock/CreateLocker"))
	testutil.AssertEqual(t, "Health", methodName("/vaultlock.VaultLock/Health"))
	testutil.AssertEqual(t, "bare", methodName("bare"))
}
