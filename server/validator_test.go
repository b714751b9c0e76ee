package server

import (
	"errors"
	"strings"
	"testing"

	"github.com/jathurchan/vaultlock/logger"
	pb "github.com/jathurchan/vaultlock/proto"
	"github.com/jathurchan/vaultlock/testutil"
	"github.com/jathurchan/vaultlock/types"
)

func newValidator() RequestValidator {
	return NewRequestValidator(logger.NewNoOpLogger())
}

func TestValidateCreateLockerRequest(t *testing.T) {
	v := newValidator()
	valid := func() *pb.CreateLockerRequest {
		return &pb.CreateLockerRequest{
			CallerId: testAlice,
			LockerId: lockerIDBytes(1),
			TokenId:  testUSDC,
			Amount:   10,
		}
	}

	testutil.AssertNoError(t, v.ValidateCreateLockerRequest(valid()))

	req := valid()
	req.CallerId = ""
	testutil.AssertError(t, v.ValidateCreateLockerRequest(req))

	req = valid()
	req.CallerId = strings.Repeat("x", MaxAccountIDLength+1)
	testutil.AssertError(t, v.ValidateCreateLockerRequest(req))

	req = valid()
	req.CallerId = "acct\x00evil"
	testutil.AssertError(t, v.ValidateCreateLockerRequest(req))

	req = valid()
	req.LockerId = lockerIDBytes(1)[:16]
	testutil.AssertError(t, v.ValidateCreateLockerRequest(req))

	req = valid()
	req.LockerId = make([]byte, types.LockerIDSize)
	testutil.AssertError(t, v.ValidateCreateLockerRequest(req), "all-zero locker ID")

	req = valid()
	req.TokenId = strings.Repeat("t", MaxTokenIDLength+1)
	testutil.AssertError(t, v.ValidateCreateLockerRequest(req))

	req = valid()
	req.Amount = 0
	testutil.AssertError(t, v.ValidateCreateLockerRequest(req))
}

func TestValidateSetWinnerRequest(t *testing.T) {
	v := newValidator()

	testutil.AssertNoError(t, v.ValidateSetWinnerRequest(&pb.SetWinnerRequest{
		CallerId: testOwner, LockerId: lockerIDBytes(1), WinnerId: testBob}))

	err := v.ValidateSetWinnerRequest(&pb.SetWinnerRequest{
		CallerId: testOwner, LockerId: lockerIDBytes(1)})
	testutil.RequireError(t, err, "empty winner must be rejected")

	var vErr *ValidationError
	testutil.AssertTrue(t, errors.As(err, &vErr))
	testutil.AssertEqual(t, "winner_id", vErr.Field)
}

func TestValidateAddTokensRequest(t *testing.T) {
	v := newValidator()

	testutil.AssertNoError(t, v.ValidateAddTokensRequest(&pb.AddTokensRequest{
		CallerId: testOwner, TokenIds: []string{testUSDC, testDAI}}))

	testutil.AssertError(t, v.ValidateAddTokensRequest(&pb.AddTokensRequest{
		CallerId: testOwner}), "empty token list")

	many := make([]string, MaxTokensPerRequest+1)
	for i := range many {
		many[i] = "tok"
	}
	testutil.AssertError(t, v.ValidateAddTokensRequest(&pb.AddTokensRequest{
		CallerId: testOwner, TokenIds: many}))

	testutil.AssertError(t, v.ValidateAddTokensRequest(&pb.AddTokensRequest{
		CallerId: testOwner, TokenIds: []string{""}}))
}

func TestValidateGetLockersRequest(t *testing.T) {
	v := newValidator()

	testutil.AssertNoError(t, v.ValidateGetLockersRequest(&pb.GetLockersRequest{}))
	testutil.AssertNoError(t, v.ValidateGetLockersRequest(&pb.GetLockersRequest{
		Limit: MaxPageLimit, Offset: 10,
		Filter: &pb.LockerFilter{State: pb.LockerState_LOCKER_STATE_OPEN, TokenId: testUSDC}}))

	testutil.AssertError(t, v.ValidateGetLockersRequest(&pb.GetLockersRequest{Limit: -1}))
	testutil.AssertError(t, v.ValidateGetLockersRequest(&pb.GetLockersRequest{Limit: MaxPageLimit + 1}))
	testutil.AssertError(t, v.ValidateGetLockersRequest(&pb.GetLockersRequest{Offset: -1}))
	testutil.AssertError(t, v.ValidateGetLockersRequest(&pb.GetLockersRequest{
		Filter: &pb.LockerFilter{State: pb.LockerState(99)}}))
	testutil.AssertError(t, v.ValidateGetLockersRequest(&pb.GetLockersRequest{
		Filter: &pb.LockerFilter{TokenId: strings.Repeat("t", MaxTokenIDLength+1)}}))
}

func TestValidateWithdrawRequest(t *testing.T) {
	v := newValidator()

	testutil.AssertNoError(t, v.ValidateWithdrawRequest(&pb.WithdrawRequest{
		CallerId: testAlice, ToId: testBob, TokenId: testUSDC, Amount: 5}))

	testutil.AssertError(t, v.ValidateWithdrawRequest(&pb.WithdrawRequest{
		CallerId: testAlice, TokenId: testUSDC, Amount: 5}), "empty to_id")
	testutil.AssertError(t, v.ValidateWithdrawRequest(&pb.WithdrawRequest{
		CallerId: testAlice, ToId: testBob, TokenId: testUSDC}), "zero amount")
}

func TestValidateQueryRequests(t *testing.T) {
	v := newValidator()

	testutil.AssertNoError(t, v.ValidateGetLockerRequest(&pb.GetLockerRequest{
		LockerId: lockerIDBytes(1)}))
	testutil.AssertError(t, v.ValidateGetLockerRequest(&pb.GetLockerRequest{}))

	testutil.AssertNoError(t, v.ValidateGetBalanceRequest(&pb.GetBalanceRequest{
		AccountId: testAlice, TokenId: testUSDC}))
	testutil.AssertError(t, v.ValidateGetBalanceRequest(&pb.GetBalanceRequest{
		TokenId: testUSDC}))

	testutil.AssertNoError(t, v.ValidateGetFeeBalanceRequest(&pb.GetFeeBalanceRequest{
		TokenId: testUSDC}))
	testutil.AssertError(t, v.ValidateGetFeeBalanceRequest(&pb.GetFeeBalanceRequest{}))

	testutil.AssertNoError(t, v.ValidateGetTokenRequest(&pb.GetTokenRequest{
		TokenId: testUSDC}))
	testutil.AssertError(t, v.ValidateGetTokenRequest(&pb.GetTokenRequest{}))

	testutil.AssertNoError(t, v.ValidateHealthRequest(&pb.HealthRequest{}))
}
