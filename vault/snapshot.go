package vault

import (
	"context"
	"fmt"
	"sort"

	"github.com/jathurchan/vaultlock/types"
)

// Snapshot captures the engine's full state as a deterministic byte slice.
// Map iteration order is erased by sorting every section, so identical state
// always encodes to identical bytes.
func (e *vaultEngine) Snapshot(ctx context.Context) ([]byte, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	success := false
	defer func() { e.metrics.IncrSnapshotEvent(SnapshotCreate, success) }()

	if e.closed {
		return nil, ErrEngineClosed
	}

	snap := vaultSnapshot{
		FeeRateBps: e.fees.rate(),
		Tokens:     e.registry.list(),
	}
	sort.Slice(snap.Tokens, func(i, j int) bool { return snap.Tokens[i] < snap.Tokens[j] })

	snap.Lockers = make([]lockerSnapshot, 0, len(e.lockers))
	for _, ls := range e.lockers {
		snap.Lockers = append(snap.Lockers, encodeLockerState(ls))
	}
	sort.Slice(snap.Lockers, func(i, j int) bool {
		return snap.Lockers[i].LockerID < snap.Lockers[j].LockerID
	})

	snap.Balances = make([]balanceSnapshot, 0)
	for account, perToken := range e.ledger.balances {
		for tok, amount := range perToken {
			if amount == 0 {
				continue
			}
			snap.Balances = append(snap.Balances, balanceSnapshot{
				Account: account,
				Token:   tok,
				Amount:  amount,
			})
		}
	}
	sort.Slice(snap.Balances, func(i, j int) bool {
		if snap.Balances[i].Account != snap.Balances[j].Account {
			return snap.Balances[i].Account < snap.Balances[j].Account
		}
		return snap.Balances[i].Token < snap.Balances[j].Token
	})

	snap.FeeBalances = make([]feeBalanceSnapshot, 0, len(e.ledger.feeBalances))
	for tok, amount := range e.ledger.feeBalances {
		if amount == 0 {
			continue
		}
		snap.FeeBalances = append(snap.FeeBalances, feeBalanceSnapshot{Token: tok, Amount: amount})
	}
	sort.Slice(snap.FeeBalances, func(i, j int) bool {
		return snap.FeeBalances[i].Token < snap.FeeBalances[j].Token
	})

	data, err := e.serializer.EncodeSnapshot(snap)
	if err != nil {
		return nil, fmt.Errorf("vault: failed to encode snapshot: %w", err)
	}

	success = true
	e.metrics.ObserveSnapshotSize(len(data))
	e.logger.Debugw("Snapshot captured",
		"lockers", len(snap.Lockers), "balances", len(snap.Balances), "bytes", len(data))
	return data, nil
}

// RestoreSnapshot replaces the engine's entire state with the decoded
// snapshot. Every restored record is validated before any state is touched;
// a snapshot that violates an invariant is rejected whole.
func (e *vaultEngine) RestoreSnapshot(ctx context.Context, data []byte) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	success := false
	defer func() { e.metrics.IncrSnapshotEvent(SnapshotRestore, success) }()

	if e.closed {
		return ErrEngineClosed
	}

	snap, err := e.serializer.DecodeSnapshot(data)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrCorruptSnapshot, err)
	}
	if snap.FeeRateBps > MaxFeeRateBps {
		return fmt.Errorf("%w: fee rate %d exceeds %d", ErrCorruptSnapshot, snap.FeeRateBps, MaxFeeRateBps)
	}

	lockers := make(map[types.LockerID]*lockerState, len(snap.Lockers))
	openCount := 0
	for _, ls := range snap.Lockers {
		restored, err := decodeLockerState(ls)
		if err != nil {
			return err
		}
		if _, dup := lockers[restored.lockerID]; dup {
			return fmt.Errorf("%w: duplicate locker %s", ErrCorruptSnapshot, restored.lockerID)
		}
		lockers[restored.lockerID] = restored
		if restored.state == types.StateOpen {
			openCount++
		}
	}

	ledger := newBalanceLedger()
	for _, b := range snap.Balances {
		if b.Account == "" || b.Token == "" {
			return fmt.Errorf("%w: balance entry missing account or token", ErrCorruptSnapshot)
		}
		ledger.credit(b.Account, b.Token, b.Amount)
	}
	for _, fb := range snap.FeeBalances {
		if fb.Token == "" {
			return fmt.Errorf("%w: fee balance entry missing token", ErrCorruptSnapshot)
		}
		ledger.creditFee(fb.Token, fb.Amount)
	}

	registry := newTokenRegistry()
	registry.add(snap.Tokens)

	e.lockers = lockers
	e.ledger = ledger
	e.registry = registry
	e.fees.rateBps = snap.FeeRateBps
	e.openCount = openCount
	e.metrics.SetOpenLockers(openCount)

	success = true
	e.logger.Infow("Snapshot restored",
		"lockers", len(lockers), "tokens", len(snap.Tokens), "feeRateBps", snap.FeeRateBps)
	return nil
}

// encodeLockerState converts the in-memory record to its serialized form.
func encodeLockerState(ls *lockerState) lockerSnapshot {
	deps := make([]depositorSnapshot, 0, len(ls.depositors))
	for account, stakes := range ls.depositors {
		deps = append(deps, depositorSnapshot{Account: account, Stakes: stakes})
	}
	sort.Slice(deps, func(i, j int) bool { return deps[i].Account < deps[j].Account })

	return lockerSnapshot{
		LockerID:     ls.lockerID.String(),
		Token:        ls.token,
		Stake:        ls.stake,
		TotalBalance: ls.totalBalance,
		PlayersCount: ls.playersCount,
		State:        ls.state,
		Winner:       ls.winner,
		Creator:      ls.creator,
		Depositors:   deps,
		CreatedAt:    ls.createdAt,
		LastModified: ls.lastModified,
	}
}

// decodeLockerState validates and converts a serialized locker record back
// to its in-memory form.
func decodeLockerState(ls lockerSnapshot) (*lockerState, error) {
	id, err := types.ParseLockerID(ls.LockerID)
	if err != nil {
		return nil, fmt.Errorf("%w: bad locker ID %q: %v", ErrCorruptSnapshot, ls.LockerID, err)
	}
	if !ls.State.IsValid() || ls.State == types.StateUnspecified {
		return nil, fmt.Errorf("%w: locker %s has invalid state %d", ErrCorruptSnapshot, ls.LockerID, ls.State)
	}
	if ls.Token == "" {
		return nil, fmt.Errorf("%w: locker %s has no token", ErrCorruptSnapshot, ls.LockerID)
	}
	if ls.Stake == 0 {
		return nil, fmt.Errorf("%w: locker %s has zero stake", ErrCorruptSnapshot, ls.LockerID)
	}
	if ls.TotalBalance != ls.Stake*uint64(ls.PlayersCount) {
		return nil, fmt.Errorf("%w: locker %s balance %d does not equal stake %d x players %d",
			ErrCorruptSnapshot, ls.LockerID, ls.TotalBalance, ls.Stake, ls.PlayersCount)
	}
	if ls.State == types.StateResolved && ls.Winner == "" {
		return nil, fmt.Errorf("%w: resolved locker %s has no winner", ErrCorruptSnapshot, ls.LockerID)
	}

	var stakes uint32
	depositors := make(map[types.AccountID]uint32, len(ls.Depositors))
	for _, d := range ls.Depositors {
		if d.Account == "" || d.Stakes == 0 {
			return nil, fmt.Errorf("%w: locker %s has malformed depositor entry", ErrCorruptSnapshot, ls.LockerID)
		}
		if _, dup := depositors[d.Account]; dup {
			return nil, fmt.Errorf("%w: locker %s lists depositor %s twice", ErrCorruptSnapshot, ls.LockerID, d.Account)
		}
		depositors[d.Account] = d.Stakes
		stakes += d.Stakes
	}
	if stakes != ls.PlayersCount {
		return nil, fmt.Errorf("%w: locker %s depositor stakes %d do not match players %d",
			ErrCorruptSnapshot, ls.LockerID, stakes, ls.PlayersCount)
	}

	return &lockerState{
		lockerID:     id,
		token:        ls.Token,
		stake:        ls.Stake,
		totalBalance: ls.TotalBalance,
		playersCount: ls.PlayersCount,
		state:        ls.State,
		winner:       ls.Winner,
		creator:      ls.Creator,
		depositors:   depositors,
		createdAt:    ls.CreatedAt,
		lastModified: ls.LastModified,
	}, nil
}
