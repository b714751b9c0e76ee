package vault

import "github.com/jathurchan/vaultlock/types"

// Metrics defines the interface for recording metrics related to vault
// operations. All methods must be safe for concurrent use.
type Metrics interface {
	// IncrCreateRequest increments counters for locker creation attempts.
	IncrCreateRequest(lockerID types.LockerID, success bool)

	// IncrDepositRequest increments counters for deposit attempts.
	IncrDepositRequest(lockerID types.LockerID, success bool)

	// IncrCloseRequest increments counters for locker close attempts.
	IncrCloseRequest(lockerID types.LockerID, success bool)

	// IncrResolveRequest increments counters for winner resolution attempts.
	IncrResolveRequest(lockerID types.LockerID, success bool)

	// IncrRefundRequest increments counters for cancellation refund attempts.
	IncrRefundRequest(lockerID types.LockerID, success bool)

	// IncrWithdrawRequest increments counters for ledger withdrawals.
	IncrWithdrawRequest(account types.AccountID, success bool)

	// IncrFeeWithdrawRequest increments counters for protocol fee withdrawals.
	IncrFeeWithdrawRequest(tok types.TokenID, success bool)

	// ObserveResolutionSplit records the payout/fee split of a resolution.
	ObserveResolutionSplit(lockerID types.LockerID, payout, fee uint64)

	// IncrSnapshotEvent increments counters for snapshot create/restore events.
	IncrSnapshotEvent(operation SnapshotOperation, success bool)

	// ObserveSnapshotSize records the byte size of a snapshot.
	ObserveSnapshotSize(bytes int)

	// SetOpenLockers sets the current number of Open lockers.
	SetOpenLockers(count int)

	// Reset clears all metrics.
	Reset()
}

// NoOpMetrics is a Metrics implementation that discards all observations.
type NoOpMetrics struct{}

// NewNoOpMetrics returns a Metrics implementation that does nothing.
func NewNoOpMetrics() Metrics {
	return &NoOpMetrics{}
}

func (*NoOpMetrics) IncrCreateRequest(types.LockerID, bool)     {}
func (*NoOpMetrics) IncrDepositRequest(types.LockerID, bool)    {}
func (*NoOpMetrics) IncrCloseRequest(types.LockerID, bool)      {}
func (*NoOpMetrics) IncrResolveRequest(types.LockerID, bool)    {}
func (*NoOpMetrics) IncrRefundRequest(types.LockerID, bool)     {}
func (*NoOpMetrics) IncrWithdrawRequest(types.AccountID, bool)  {}
func (*NoOpMetrics) IncrFeeWithdrawRequest(types.TokenID, bool) {}
func (*NoOpMetrics) ObserveResolutionSplit(types.LockerID, uint64, uint64) {
}
func (*NoOpMetrics) IncrSnapshotEvent(SnapshotOperation, bool) {}
func (*NoOpMetrics) ObserveSnapshotSize(int)                   {}
func (*NoOpMetrics) SetOpenLockers(int)                        {}
func (*NoOpMetrics) Reset()                                    {}
