package vault

import (
	"testing"

	"github.com/jathurchan/vaultlock/testutil"
)

func TestBalanceLedgerCreditDebit(t *testing.T) {
	bl := newBalanceLedger()

	testutil.AssertEqual(t, uint64(0), bl.balance(testAlice, testUSDC),
		"missing entries read as zero")

	bl.credit(testAlice, testUSDC, 100)
	bl.credit(testAlice, testUSDC, 50)
	bl.credit(testAlice, testDAI, 7)
	testutil.AssertEqual(t, uint64(150), bl.balance(testAlice, testUSDC))
	testutil.AssertEqual(t, uint64(7), bl.balance(testAlice, testDAI))
	testutil.AssertEqual(t, uint64(0), bl.balance(testBob, testUSDC))

	testutil.AssertNoError(t, bl.debit(testAlice, testUSDC, 150))
	testutil.AssertEqual(t, uint64(0), bl.balance(testAlice, testUSDC))

	err := bl.debit(testAlice, testUSDC, 1)
	testutil.AssertErrorIs(t, err, ErrInsufficientBalance)

	err = bl.debit(testBob, testUSDC, 1)
	testutil.AssertErrorIs(t, err, ErrInsufficientBalance, "debit of unknown account")
}

func TestBalanceLedgerFees(t *testing.T) {
	bl := newBalanceLedger()

	bl.creditFee(testUSDC, 2)
	bl.creditFee(testUSDC, 3)
	testutil.AssertEqual(t, uint64(5), bl.feeBalance(testUSDC))
	testutil.AssertEqual(t, uint64(0), bl.feeBalance(testDAI))

	testutil.AssertNoError(t, bl.debitFee(testUSDC, 5))
	err := bl.debitFee(testUSDC, 1)
	testutil.AssertErrorIs(t, err, ErrInsufficientBalance)
}
