package client

import (
	"context"
	"testing"

	pb "github.com/jathurchan/vaultlock/proto"
	"github.com/jathurchan/vaultlock/testutil"
)

func TestRandomLockerID(t *testing.T) {
	a, err := RandomLockerID()
	testutil.RequireNoError(t, err)
	testutil.AssertFalse(t, a.IsZero())

	b, err := RandomLockerID()
	testutil.RequireNoError(t, err)
	testutil.AssertNotEqual(t, a, b)
}

func TestWithdrawAll(t *testing.T) {
	fake := &fakeServiceClient{
		balanceResp:  &pb.BalanceResponse{Balance: 198},
		withdrawResp: &pb.WithdrawResponse{Remaining: 0},
	}
	c := newTestClient(t, fake)

	withdrawn, err := WithdrawAll(context.Background(), c, testBob, testBob, testUSDC)
	testutil.RequireNoError(t, err)
	testutil.AssertEqual(t, uint64(198), withdrawn)
	testutil.RequireNotNil(t, fake.lastWithdrawReq)
	testutil.AssertEqual(t, uint64(198), fake.lastWithdrawReq.Amount)
}

func TestWithdrawAll_ZeroBalance(t *testing.T) {
	fake := &fakeServiceClient{
		balanceResp: &pb.BalanceResponse{Balance: 0},
	}
	c := newTestClient(t, fake)

	withdrawn, err := WithdrawAll(context.Background(), c, testBob, testBob, testUSDC)
	testutil.RequireNoError(t, err)
	testutil.AssertEqual(t, uint64(0), withdrawn)
	testutil.AssertNil(t, fake.lastWithdrawReq, "no withdrawal should be issued for a zero balance")
}
