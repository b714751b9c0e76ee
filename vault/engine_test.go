package vault

import (
	"context"
	"testing"
	"time"

	"github.com/jathurchan/vaultlock/testutil"
	"github.com/jathurchan/vaultlock/types"
)

func TestNewVaultEngine_Validation(t *testing.T) {
	env := newTestEnv(t)

	_, err := NewVaultEngine("", env.bank)
	testutil.AssertError(t, err, "empty owner should be rejected")

	_, err = NewVaultEngine(testOwner, nil)
	testutil.AssertError(t, err, "nil bank should be rejected")
}

func TestCreateLocker(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	id := lockerID(1)

	info, err := env.engine.CreateLocker(ctx, testAlice, id, testUSDC, 100)
	testutil.RequireNoError(t, err, "CreateLocker failed")

	testutil.AssertEqual(t, id, info.LockerID)
	testutil.AssertEqual(t, testUSDC, info.Token)
	testutil.AssertEqual(t, uint64(100), info.Stake)
	testutil.AssertEqual(t, uint64(100), info.TotalBalance)
	testutil.AssertEqual(t, uint32(1), info.PlayersCount)
	testutil.AssertEqual(t, types.StateOpen, info.State)
	testutil.AssertEqual(t, testAlice, info.Creator)
	testutil.AssertEqual(t, types.AccountID(""), info.Winner)

	testutil.AssertEqual(t, uint64(100), env.custodyBalance(t, testUSDC),
		"stake should be in custody")
}

func TestCreateLocker_Errors(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	id := lockerID(1)

	_, err := env.engine.CreateLocker(ctx, testAlice, id, "doge", 100)
	testutil.AssertErrorIs(t, err, ErrTokenNotValid)

	_, err = env.engine.CreateLocker(ctx, testAlice, id, testUSDC, 0)
	testutil.AssertErrorIs(t, err, ErrInvalidAmount)

	_, err = env.engine.CreateLocker(ctx, testAlice, id, testUSDC, 100)
	testutil.RequireNoError(t, err, "first create failed")

	_, err = env.engine.CreateLocker(ctx, testBob, id, testUSDC, 50)
	testutil.AssertErrorIs(t, err, ErrLockerExists)
}

func TestCreateLocker_TransferFailureLeavesNoLocker(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	id := lockerID(1)

	env.bank.failTransferFrom = true
	_, err := env.engine.CreateLocker(ctx, testAlice, id, testUSDC, 100)
	testutil.AssertErrorIs(t, err, ErrTransferFailed)

	_, err = env.engine.GetLocker(ctx, id)
	testutil.AssertErrorIs(t, err, ErrLockerNotFound,
		"failed create must not leave a locker behind")
}

func TestCreateLocker_Limit(t *testing.T) {
	env := newTestEnv(t, WithMaxLockers(1))
	ctx := context.Background()

	_, err := env.engine.CreateLocker(ctx, testAlice, lockerID(1), testUSDC, 100)
	testutil.RequireNoError(t, err, "create under limit failed")

	_, err = env.engine.CreateLocker(ctx, testBob, lockerID(2), testUSDC, 100)
	testutil.AssertErrorIs(t, err, ErrLockerLimit)
}

func TestDepositLocker(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	id := lockerID(1)

	_, err := env.engine.CreateLocker(ctx, testAlice, id, testUSDC, 100)
	testutil.RequireNoError(t, err, "create failed")

	info, err := env.engine.DepositLocker(ctx, testBob, id)
	testutil.RequireNoError(t, err, "deposit failed")

	testutil.AssertEqual(t, uint64(200), info.TotalBalance)
	testutil.AssertEqual(t, uint32(2), info.PlayersCount)
	testutil.AssertEqual(t, uint64(200), env.custodyBalance(t, testUSDC))
}

func TestDepositLocker_Errors(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	id := lockerID(1)

	_, err := env.engine.DepositLocker(ctx, testBob, lockerID(9))
	testutil.AssertErrorIs(t, err, ErrLockerNotFound)

	_, err = env.engine.CreateLocker(ctx, testAlice, id, testUSDC, 100)
	testutil.RequireNoError(t, err, "create failed")

	_, err = env.engine.CloseLocker(ctx, testOwner, id)
	testutil.RequireNoError(t, err, "close failed")

	_, err = env.engine.DepositLocker(ctx, testBob, id)
	testutil.AssertErrorIs(t, err, ErrInvalidState, "deposit after close must fail")
}

func TestDepositLocker_PlayerLimit(t *testing.T) {
	env := newTestEnv(t, WithMaxPlayersPerLocker(2))
	ctx := context.Background()
	id := lockerID(1)

	_, err := env.engine.CreateLocker(ctx, testAlice, id, testUSDC, 100)
	testutil.RequireNoError(t, err, "create failed")
	_, err = env.engine.DepositLocker(ctx, testBob, id)
	testutil.RequireNoError(t, err, "second deposit failed")

	_, err = env.engine.DepositLocker(ctx, testCarol, id)
	testutil.AssertErrorIs(t, err, ErrLockerLimit)
}

func TestDepositLocker_TransferFailure(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	id := lockerID(1)

	_, err := env.engine.CreateLocker(ctx, testAlice, id, testUSDC, 100)
	testutil.RequireNoError(t, err, "create failed")

	env.bank.failTransferFrom = true
	_, err = env.engine.DepositLocker(ctx, testBob, id)
	testutil.AssertErrorIs(t, err, ErrTransferFailed)

	info, err := env.engine.GetLocker(ctx, id)
	testutil.RequireNoError(t, err, "GetLocker failed")
	testutil.AssertEqual(t, uint64(100), info.TotalBalance, "failed deposit must not change balance")
	testutil.AssertEqual(t, uint32(1), info.PlayersCount)
}

func TestCloseLocker(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	id := lockerID(1)

	_, err := env.engine.CreateLocker(ctx, testAlice, id, testUSDC, 100)
	testutil.RequireNoError(t, err, "create failed")

	env.clock.advance(time.Minute)
	info, err := env.engine.CloseLocker(ctx, testOwner, id)
	testutil.RequireNoError(t, err, "close failed")
	testutil.AssertEqual(t, types.StateClosed, info.State)
	testutil.AssertTrue(t, info.LastModified.After(info.CreatedAt),
		"close should advance lastModified")
}

func TestCloseLocker_Errors(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	id := lockerID(1)

	_, err := env.engine.CreateLocker(ctx, testAlice, id, testUSDC, 100)
	testutil.RequireNoError(t, err, "create failed")

	_, err = env.engine.CloseLocker(ctx, testAlice, id)
	testutil.AssertErrorIs(t, err, ErrUnauthorized, "only the owner may close")

	_, err = env.engine.CloseLocker(ctx, testOwner, lockerID(9))
	testutil.AssertErrorIs(t, err, ErrLockerNotFound)

	_, err = env.engine.CloseLocker(ctx, testOwner, id)
	testutil.RequireNoError(t, err, "close failed")
	_, err = env.engine.CloseLocker(ctx, testOwner, id)
	testutil.AssertErrorIs(t, err, ErrInvalidState, "double close must fail")
}

// TestResolutionLifecycle drives a full two-player round: create, deposit,
// close, resolve, then withdraw the payout and the fee.
func TestResolutionLifecycle(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	id := lockerID(1)

	_, err := env.engine.CreateLocker(ctx, testAlice, id, testUSDC, 100)
	testutil.RequireNoError(t, err, "create failed")
	_, err = env.engine.DepositLocker(ctx, testBob, id)
	testutil.RequireNoError(t, err, "deposit failed")
	_, err = env.engine.CloseLocker(ctx, testOwner, id)
	testutil.RequireNoError(t, err, "close failed")

	res, err := env.engine.SetWinner(ctx, testOwner, id, testBob)
	testutil.RequireNoError(t, err, "SetWinner failed")

	// 10/1000 of 200 is 2.
	testutil.AssertEqual(t, uint64(2), res.Fee)
	testutil.AssertEqual(t, uint64(198), res.Payout)
	testutil.AssertEqual(t, types.StateResolved, res.Locker.State)
	testutil.AssertEqual(t, testBob, res.Locker.Winner)
	testutil.AssertEqual(t, uint64(200), res.Locker.TotalBalance,
		"resolution does not zero the pooled balance")

	testutil.AssertEqual(t, uint64(198), env.engine.GetBalance(ctx, testBob, testUSDC))
	testutil.AssertEqual(t, uint64(2), env.engine.GetFeeBalance(ctx, testUSDC))

	remaining, err := env.engine.Withdraw(ctx, testBob, testBob, testUSDC, 198)
	testutil.RequireNoError(t, err, "Withdraw failed")
	testutil.AssertEqual(t, uint64(0), remaining)

	bobBalance, err := env.bank.BalanceOf(ctx, testUSDC, testBob)
	testutil.RequireNoError(t, err, "BalanceOf failed")
	testutil.AssertEqual(t, uint64(1_098), bobBalance, "bob paid 100 and won 198")

	remaining, err = env.engine.WithdrawFee(ctx, testOwner, testOwner, testUSDC, 2)
	testutil.RequireNoError(t, err, "WithdrawFee failed")
	testutil.AssertEqual(t, uint64(0), remaining)
	testutil.AssertEqual(t, uint64(0), env.custodyBalance(t, testUSDC),
		"custody should be drained after both withdrawals")
}

func TestSetWinner_Errors(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	id := lockerID(1)

	_, err := env.engine.CreateLocker(ctx, testAlice, id, testUSDC, 100)
	testutil.RequireNoError(t, err, "create failed")

	_, err = env.engine.SetWinner(ctx, testOwner, id, testAlice)
	testutil.AssertErrorIs(t, err, ErrInvalidState, "cannot resolve an Open locker")

	_, err = env.engine.CloseLocker(ctx, testOwner, id)
	testutil.RequireNoError(t, err, "close failed")

	_, err = env.engine.SetWinner(ctx, testAlice, id, testAlice)
	testutil.AssertErrorIs(t, err, ErrUnauthorized)

	_, err = env.engine.SetWinner(ctx, testOwner, lockerID(9), testAlice)
	testutil.AssertErrorIs(t, err, ErrLockerNotFound)

	_, err = env.engine.SetWinner(ctx, testOwner, id, testAlice)
	testutil.RequireNoError(t, err, "resolve failed")

	_, err = env.engine.SetWinner(ctx, testOwner, id, testBob)
	testutil.AssertErrorIs(t, err, ErrInvalidState, "a locker resolves at most once")

	testutil.AssertEqual(t, uint64(99), env.engine.GetBalance(ctx, testAlice, testUSDC),
		"second resolution must not credit again")
}

func TestSetWinner_NonParticipantWinner(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	id := lockerID(1)

	_, err := env.engine.CreateLocker(ctx, testAlice, id, testUSDC, 100)
	testutil.RequireNoError(t, err, "create failed")
	_, err = env.engine.CloseLocker(ctx, testOwner, id)
	testutil.RequireNoError(t, err, "close failed")

	// The winner does not have to hold a stake.
	res, err := env.engine.SetWinner(ctx, testOwner, id, testCarol)
	testutil.RequireNoError(t, err, "SetWinner failed")
	testutil.AssertEqual(t, uint64(99), res.Payout)
	testutil.AssertEqual(t, uint64(99), env.engine.GetBalance(ctx, testCarol, testUSDC))
}

func TestWithdrawLocker(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	id := lockerID(1)

	_, err := env.engine.CreateLocker(ctx, testAlice, id, testUSDC, 100)
	testutil.RequireNoError(t, err, "create failed")
	_, err = env.engine.DepositLocker(ctx, testBob, id)
	testutil.RequireNoError(t, err, "deposit failed")

	refund, info, err := env.engine.WithdrawLocker(ctx, testBob, id, testBob)
	testutil.RequireNoError(t, err, "WithdrawLocker failed")
	testutil.AssertEqual(t, uint64(100), refund)
	testutil.AssertEqual(t, uint64(100), info.TotalBalance)
	testutil.AssertEqual(t, uint32(1), info.PlayersCount)
	testutil.AssertEqual(t, types.StateOpen, info.State, "cancellation leaves the locker Open")

	bobBalance, err := env.bank.BalanceOf(ctx, testUSDC, testBob)
	testutil.RequireNoError(t, err, "BalanceOf failed")
	testutil.AssertEqual(t, uint64(1_000), bobBalance, "bob should be made whole")

	// Bob no longer holds a stake to cancel.
	_, _, err = env.engine.WithdrawLocker(ctx, testBob, id, testBob)
	testutil.AssertErrorIs(t, err, ErrUnauthorized)
}

func TestWithdrawLocker_Errors(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	id := lockerID(1)

	_, _, err := env.engine.WithdrawLocker(ctx, testAlice, lockerID(9), testAlice)
	testutil.AssertErrorIs(t, err, ErrLockerNotFound)

	_, err = env.engine.CreateLocker(ctx, testAlice, id, testUSDC, 100)
	testutil.RequireNoError(t, err, "create failed")

	_, _, err = env.engine.WithdrawLocker(ctx, testBob, id, testBob)
	testutil.AssertErrorIs(t, err, ErrUnauthorized, "non-depositor cannot cancel")

	_, err = env.engine.CloseLocker(ctx, testOwner, id)
	testutil.RequireNoError(t, err, "close failed")

	_, _, err = env.engine.WithdrawLocker(ctx, testAlice, id, testAlice)
	testutil.AssertErrorIs(t, err, ErrInvalidState, "cannot cancel once Closed")
}

func TestWithdrawLocker_TransferFailureUnwinds(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	id := lockerID(1)

	_, err := env.engine.CreateLocker(ctx, testAlice, id, testUSDC, 100)
	testutil.RequireNoError(t, err, "create failed")

	env.bank.failTransfer = true
	_, _, err = env.engine.WithdrawLocker(ctx, testAlice, id, testAlice)
	testutil.AssertErrorIs(t, err, ErrTransferFailed)

	info, err := env.engine.GetLocker(ctx, id)
	testutil.RequireNoError(t, err, "GetLocker failed")
	testutil.AssertEqual(t, uint64(100), info.TotalBalance, "failed refund must be unwound")
	testutil.AssertEqual(t, uint32(1), info.PlayersCount)

	// The stake survives the failure and can be cancelled once the bank recovers.
	env.bank.failTransfer = false
	refund, _, err := env.engine.WithdrawLocker(ctx, testAlice, id, testAlice)
	testutil.RequireNoError(t, err, "retry failed")
	testutil.AssertEqual(t, uint64(100), refund)
}

func TestWithdraw_Errors(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.engine.Withdraw(ctx, testAlice, testAlice, testUSDC, 0)
	testutil.AssertErrorIs(t, err, ErrInvalidAmount)

	_, err = env.engine.Withdraw(ctx, testAlice, testAlice, testUSDC, 1)
	testutil.AssertErrorIs(t, err, ErrInsufficientBalance)
}

func TestWithdraw_TransferFailureRestoresBalance(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	id := lockerID(1)

	_, err := env.engine.CreateLocker(ctx, testAlice, id, testUSDC, 100)
	testutil.RequireNoError(t, err, "create failed")
	_, err = env.engine.CloseLocker(ctx, testOwner, id)
	testutil.RequireNoError(t, err, "close failed")
	_, err = env.engine.SetWinner(ctx, testOwner, id, testAlice)
	testutil.RequireNoError(t, err, "resolve failed")

	env.bank.failTransfer = true
	_, err = env.engine.Withdraw(ctx, testAlice, testAlice, testUSDC, 99)
	testutil.AssertErrorIs(t, err, ErrTransferFailed)
	testutil.AssertEqual(t, uint64(99), env.engine.GetBalance(ctx, testAlice, testUSDC),
		"failed withdrawal must restore the ledger balance")
}

func TestWithdraw_PartialAndToThirdParty(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	id := lockerID(1)

	_, err := env.engine.CreateLocker(ctx, testAlice, id, testUSDC, 100)
	testutil.RequireNoError(t, err, "create failed")
	_, err = env.engine.CloseLocker(ctx, testOwner, id)
	testutil.RequireNoError(t, err, "close failed")
	_, err = env.engine.SetWinner(ctx, testOwner, id, testAlice)
	testutil.RequireNoError(t, err, "resolve failed")

	// Alice directs part of her balance to carol; alice's own ledger is debited.
	remaining, err := env.engine.Withdraw(ctx, testAlice, testCarol, testUSDC, 40)
	testutil.RequireNoError(t, err, "Withdraw failed")
	testutil.AssertEqual(t, uint64(59), remaining)

	carolBalance, err := env.bank.BalanceOf(ctx, testUSDC, testCarol)
	testutil.RequireNoError(t, err, "BalanceOf failed")
	testutil.AssertEqual(t, uint64(1_040), carolBalance)
	testutil.AssertEqual(t, uint64(0), env.engine.GetBalance(ctx, testCarol, testUSDC),
		"destination account accrues no ledger balance")
}

func TestWithdrawFee_Errors(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.engine.WithdrawFee(ctx, testAlice, testAlice, testUSDC, 1)
	testutil.AssertErrorIs(t, err, ErrUnauthorized)

	_, err = env.engine.WithdrawFee(ctx, testOwner, testOwner, testUSDC, 0)
	testutil.AssertErrorIs(t, err, ErrInvalidAmount)

	_, err = env.engine.WithdrawFee(ctx, testOwner, testOwner, testUSDC, 1)
	testutil.AssertErrorIs(t, err, ErrInsufficientBalance)
}

func TestAddTokens(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	added, err := env.engine.AddTokens(ctx, testOwner, []types.TokenID{"weth", testUSDC, "weth"})
	testutil.RequireNoError(t, err, "AddTokens failed")
	testutil.AssertEqual(t, 1, added, "only weth is new")
	testutil.AssertTrue(t, env.engine.IsTokenWhitelisted("weth"))

	_, err = env.engine.AddTokens(ctx, testAlice, []types.TokenID{"doge"})
	testutil.AssertErrorIs(t, err, ErrUnauthorized)
	testutil.AssertFalse(t, env.engine.IsTokenWhitelisted("doge"))
}

func TestSetFeeRate(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	testutil.AssertEqual(t, uint32(10), env.engine.FeeRate())

	err := env.engine.SetFeeRate(ctx, testOwner, 250)
	testutil.RequireNoError(t, err, "SetFeeRate failed")
	testutil.AssertEqual(t, uint32(250), env.engine.FeeRate())
	testutil.AssertEqual(t, uint64(25), env.engine.CalculateFee(100))

	err = env.engine.SetFeeRate(ctx, testAlice, 5)
	testutil.AssertErrorIs(t, err, ErrUnauthorized)

	err = env.engine.SetFeeRate(ctx, testOwner, FeeScale+1)
	testutil.AssertErrorIs(t, err, ErrInvalidAmount)
	testutil.AssertEqual(t, uint32(250), env.engine.FeeRate(), "rejected rate must not stick")
}

func TestGetLockers(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	for i := byte(1); i <= 5; i++ {
		tok := testUSDC
		if i%2 == 0 {
			tok = testDAI
		}
		_, err := env.engine.CreateLocker(ctx, testAlice, lockerID(i), tok, 100)
		testutil.RequireNoError(t, err, "create %d failed", i)
		env.clock.advance(time.Second)
	}

	all, total, err := env.engine.GetLockers(ctx, nil, 0, 0)
	testutil.RequireNoError(t, err, "GetLockers failed")
	testutil.AssertEqual(t, 5, total)
	testutil.AssertLen(t, all, 5)
	for i := 1; i < len(all); i++ {
		testutil.AssertTrue(t, all[i-1].CreatedAt.Before(all[i].CreatedAt),
			"results must be ordered by creation time")
	}

	dai, total, err := env.engine.GetLockers(ctx, FilterByToken(testDAI), 0, 0)
	testutil.RequireNoError(t, err, "filtered GetLockers failed")
	testutil.AssertEqual(t, 2, total)
	testutil.AssertLen(t, dai, 2)

	page, total, err := env.engine.GetLockers(ctx, nil, 2, 3)
	testutil.RequireNoError(t, err, "paginated GetLockers failed")
	testutil.AssertEqual(t, 5, total, "total counts all matches, not the page")
	testutil.AssertLen(t, page, 2)
	testutil.AssertEqual(t, lockerID(4), page[0].LockerID)

	empty, total, err := env.engine.GetLockers(ctx, nil, 10, 99)
	testutil.RequireNoError(t, err, "out-of-range offset failed")
	testutil.AssertEqual(t, 5, total)
	testutil.AssertLen(t, empty, 0)
}

func TestGetLockers_FilterByState(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.engine.CreateLocker(ctx, testAlice, lockerID(1), testUSDC, 100)
	testutil.RequireNoError(t, err, "create failed")
	_, err = env.engine.CreateLocker(ctx, testBob, lockerID(2), testUSDC, 100)
	testutil.RequireNoError(t, err, "create failed")
	_, err = env.engine.CloseLocker(ctx, testOwner, lockerID(1))
	testutil.RequireNoError(t, err, "close failed")

	open, total, err := env.engine.GetLockers(ctx, FilterByState(types.StateOpen), 0, 0)
	testutil.RequireNoError(t, err, "GetLockers failed")
	testutil.AssertEqual(t, 1, total)
	testutil.AssertEqual(t, lockerID(2), open[0].LockerID)
}

func TestEngineClosed(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	testutil.RequireNoError(t, env.engine.Close(), "Close failed")
	testutil.RequireNoError(t, env.engine.Close(), "Close must be idempotent")

	_, err := env.engine.CreateLocker(ctx, testAlice, lockerID(1), testUSDC, 100)
	testutil.AssertErrorIs(t, err, ErrEngineClosed)

	_, err = env.engine.Withdraw(ctx, testAlice, testAlice, testUSDC, 1)
	testutil.AssertErrorIs(t, err, ErrEngineClosed)

	err = env.engine.SetFeeRate(ctx, testOwner, 5)
	testutil.AssertErrorIs(t, err, ErrEngineClosed)
}
