package client

import (
	"context"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "github.com/jathurchan/vaultlock/proto"
	"github.com/jathurchan/vaultlock/testutil"
	"github.com/jathurchan/vaultlock/types"
)

func TestNewVaultLockClient_RequiresEndpoints(t *testing.T) {
	_, err := NewVaultLockClient(DefaultClientConfig())
	testutil.AssertError(t, err)

	config := DefaultClientConfig()
	config.Endpoints = []string{"localhost:8080"}
	c, err := NewVaultLockClient(config)
	testutil.RequireNoError(t, err)
	testutil.AssertNoError(t, c.Close())
}

func TestCreateLocker(t *testing.T) {
	fake := &fakeServiceClient{
		lockerResp: &pb.LockerResponse{Locker: protoLocker(1, pb.LockerState_LOCKER_STATE_OPEN)},
	}
	c := newTestClient(t, fake)

	locker, err := c.CreateLocker(context.Background(), &CreateLockerRequest{
		CallerID: testAlice,
		LockerID: testLockerID(1),
		Token:    testUSDC,
		Amount:   100,
	})
	testutil.RequireNoError(t, err)
	testutil.RequireNotNil(t, locker)
	testutil.AssertEqual(t, testLockerID(1), locker.LockerID)
	testutil.AssertEqual(t, testUSDC, locker.Token)
	testutil.AssertEqual(t, uint64(100), locker.Stake)
	testutil.AssertEqual(t, types.StateOpen, locker.State)

	testutil.RequireNotNil(t, fake.lastCreateReq)
	testutil.AssertEqual(t, string(testAlice), fake.lastCreateReq.CallerId)
	testutil.AssertEqual(t, uint64(100), fake.lastCreateReq.Amount)
}

func TestCreateLocker_NilRequest(t *testing.T) {
	c := newTestClient(t, &fakeServiceClient{})
	_, err := c.CreateLocker(context.Background(), nil)
	testutil.AssertErrorIs(t, err, ErrInvalidArgument)
}

func TestCreateLocker_ServerRejection(t *testing.T) {
	fake := &fakeServiceClient{
		lockerResp: &pb.LockerResponse{
			Error: &pb.ErrorDetail{
				Code:    pb.ErrorCode_LOCKER_EXISTS,
				Message: "locker already exists",
			},
		},
	}
	c := newTestClient(t, fake)

	_, err := c.CreateLocker(context.Background(), &CreateLockerRequest{
		CallerID: testAlice, LockerID: testLockerID(1), Token: testUSDC, Amount: 100})
	testutil.RequireError(t, err)
	testutil.AssertErrorIs(t, err, ErrLockerExists)
	testutil.AssertEqual(t, 1, fake.calls, "definitive rejection must not be retried")
}

func TestCreateLocker_RetriesTransientFailure(t *testing.T) {
	fake := &fakeServiceClient{
		failUntil:  2,
		transport:  status.Error(codes.Unavailable, "server restarting"),
		lockerResp: &pb.LockerResponse{Locker: protoLocker(1, pb.LockerState_LOCKER_STATE_OPEN)},
	}
	c := newTestClient(t, fake)

	locker, err := c.CreateLocker(context.Background(), &CreateLockerRequest{
		CallerID: testAlice, LockerID: testLockerID(1), Token: testUSDC, Amount: 100})
	testutil.RequireNoError(t, err)
	testutil.RequireNotNil(t, locker)
	testutil.AssertEqual(t, 3, fake.calls)
	testutil.AssertEqual(t, uint64(2), c.base.getMetrics().GetRetryCount("CreateLocker"))
}

func TestCreateLocker_RetriesRateLimitedResponse(t *testing.T) {
	// The first response carries a RATE_LIMITED detail in the body; the
	// retry policy treats it as transient.
	calls := 0
	fake := &fakeServiceClient{}
	base := newTestBase(t, fake, nil)
	base.tryEndpointFunc = func(ctx context.Context, endpoint string, fn func(context.Context, pb.VaultLockClient) error) error {
		calls++
		if calls == 1 {
			return errorFromDetail("CreateLocker", &pb.ErrorDetail{Code: pb.ErrorCode_RATE_LIMITED})
		}
		fake.lockerResp = &pb.LockerResponse{Locker: protoLocker(1, pb.LockerState_LOCKER_STATE_OPEN)}
		return fn(ctx, fake)
	}
	c := &vaultLockClient{base: base}

	locker, err := c.CreateLocker(context.Background(), &CreateLockerRequest{
		CallerID: testAlice, LockerID: testLockerID(1), Token: testUSDC, Amount: 100})
	testutil.RequireNoError(t, err)
	testutil.RequireNotNil(t, locker)
	testutil.AssertEqual(t, 2, calls)
}

func TestWithdraw(t *testing.T) {
	fake := &fakeServiceClient{
		withdrawResp: &pb.WithdrawResponse{Remaining: 42},
	}
	c := newTestClient(t, fake)

	remaining, err := c.Withdraw(context.Background(), &WithdrawRequest{
		CallerID: testBob, To: testBob, Token: testUSDC, Amount: 158})
	testutil.RequireNoError(t, err)
	testutil.AssertEqual(t, uint64(42), remaining)
	testutil.AssertEqual(t, string(testBob), fake.lastWithdrawReq.ToId)
}

func TestWithdraw_InsufficientBalance(t *testing.T) {
	fake := &fakeServiceClient{
		withdrawResp: &pb.WithdrawResponse{
			Error: &pb.ErrorDetail{Code: pb.ErrorCode_INSUFFICIENT_BALANCE},
		},
	}
	c := newTestClient(t, fake)

	_, err := c.Withdraw(context.Background(), &WithdrawRequest{
		CallerID: testBob, To: testBob, Token: testUSDC, Amount: 1_000_000})
	testutil.AssertErrorIs(t, err, ErrInsufficientBalance)
}

func TestWithdrawLocker(t *testing.T) {
	fake := &fakeServiceClient{
		withdrawLockerResp: &pb.WithdrawLockerResponse{
			Refunded: 100,
			Locker:   protoLocker(1, pb.LockerState_LOCKER_STATE_OPEN),
		},
	}
	c := newTestClient(t, fake)

	result, err := c.WithdrawLocker(context.Background(), &WithdrawLockerRequest{
		CallerID: testAlice, LockerID: testLockerID(1), To: testAlice})
	testutil.RequireNoError(t, err)
	testutil.AssertEqual(t, uint64(100), result.Refunded)
	testutil.RequireNotNil(t, result.Locker)
}

func TestGetLocker_NotFound(t *testing.T) {
	fake := &fakeServiceClient{
		lockerResp: &pb.LockerResponse{
			Error: &pb.ErrorDetail{Code: pb.ErrorCode_LOCKER_NOT_FOUND},
		},
	}
	c := newTestClient(t, fake)

	_, err := c.GetLocker(context.Background(), testLockerID(9))
	testutil.AssertErrorIs(t, err, ErrLockerNotFound)
}

func TestGetLockers(t *testing.T) {
	fake := &fakeServiceClient{
		getLockersResp: &pb.GetLockersResponse{
			Lockers: []*pb.Locker{
				protoLocker(1, pb.LockerState_LOCKER_STATE_OPEN),
				protoLocker(2, pb.LockerState_LOCKER_STATE_RESOLVED),
			},
			Total: 7,
		},
	}
	c := newTestClient(t, fake)

	result, err := c.GetLockers(context.Background(), &GetLockersRequest{
		Filter: &LockerFilter{Token: testUSDC},
		Limit:  2,
	})
	testutil.RequireNoError(t, err)
	testutil.AssertEqual(t, 7, result.Total)
	testutil.AssertLen(t, result.Lockers, 2)
	testutil.AssertEqual(t, types.StateResolved, result.Lockers[1].State)

	// Nil request lists everything.
	result, err = c.GetLockers(context.Background(), nil)
	testutil.RequireNoError(t, err)
	testutil.AssertEqual(t, 7, result.Total)
}

func TestQueryHelpers(t *testing.T) {
	fake := &fakeServiceClient{
		balanceResp: &pb.BalanceResponse{Balance: 198},
		feeResp:     &pb.FeeResponse{RateBps: 10},
		calcFeeResp: &pb.CalculateFeeResponse{Fee: 2},
		tokenResp:   &pb.GetTokenResponse{Whitelisted: true},
	}
	c := newTestClient(t, fake)
	ctx := context.Background()

	balance, err := c.GetBalance(ctx, testBob, testUSDC)
	testutil.RequireNoError(t, err)
	testutil.AssertEqual(t, uint64(198), balance)

	rate, err := c.GetFee(ctx)
	testutil.RequireNoError(t, err)
	testutil.AssertEqual(t, uint32(10), rate)

	fee, err := c.CalculateFee(ctx, 200)
	testutil.RequireNoError(t, err)
	testutil.AssertEqual(t, uint64(2), fee)

	whitelisted, err := c.IsTokenWhitelisted(ctx, testUSDC)
	testutil.RequireNoError(t, err)
	testutil.AssertTrue(t, whitelisted)
}

func TestClientClosed(t *testing.T) {
	c := newTestClient(t, &fakeServiceClient{})
	testutil.RequireNoError(t, c.Close())

	_, err := c.GetFee(context.Background())
	testutil.AssertErrorIs(t, err, ErrClientClosed)

	testutil.AssertErrorIs(t, c.Close(), ErrClientClosed)
}
