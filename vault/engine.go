package vault

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/jathurchan/vaultlock/logger"
	"github.com/jathurchan/vaultlock/token"
	"github.com/jathurchan/vaultlock/types"
)

// vaultEngine provides a concrete implementation of the VaultEngine interface.
// A single RWMutex serializes every operation, reproducing the atomic,
// one-call-at-a-time execution contract the ledger semantics assume. All
// internal state mutations are applied before any outbound token transfer is
// issued, and a failed transfer unwinds the mutation before returning.
type vaultEngine struct {
	mu sync.RWMutex // Protects all shared state within the engine.

	access   *accessControl                  // Owner identity and permission guard.
	registry *tokenRegistry                  // Whitelist of accepted tokens.
	fees     *feeCalculator                  // Fee rate storage and computation.
	ledger   *balanceLedger                  // Withdrawable balances and fee balances.
	lockers  map[types.LockerID]*lockerState // Tracks every locker by its ID.

	bank token.Bank // External fungible-token collaborator.

	openCount int  // Number of lockers currently in the Open state.
	closed    bool // Set once Close() is called.

	config     EngineConfig
	serializer Serializer
	clock      Clock
	logger     logger.Logger
	metrics    Metrics
}

// NewVaultEngine creates a new engine owned by the given account, moving
// funds through the given token bank.
func NewVaultEngine(owner types.AccountID, bank token.Bank, opts ...EngineOption) (VaultEngine, error) {
	if owner == "" {
		return nil, fmt.Errorf("vault: owner must not be empty")
	}
	if bank == nil {
		return nil, fmt.Errorf("vault: token bank must not be nil")
	}

	config := DefaultEngineConfig()
	for _, opt := range opts {
		opt(&config)
	}

	if config.Serializer == nil {
		config.Serializer = &JSONSerializer{}
	}
	if config.Clock == nil {
		config.Clock = NewStandardClock()
	}
	if config.Logger == nil {
		config.Logger = logger.NewNoOpLogger()
	}
	if config.Metrics == nil {
		config.Metrics = NewNoOpMetrics()
	}

	e := &vaultEngine{
		access:     &accessControl{owner: owner},
		registry:   newTokenRegistry(),
		fees:       &feeCalculator{},
		ledger:     newBalanceLedger(),
		lockers:    make(map[types.LockerID]*lockerState),
		bank:       bank,
		config:     config,
		serializer: config.Serializer,
		clock:      config.Clock,
		logger:     config.Logger.WithComponent("vault"),
		metrics:    config.Metrics,
	}

	if err := e.fees.setRate(config.InitialFeeRateBps); err != nil {
		return nil, fmt.Errorf("vault: invalid initial fee rate %d", config.InitialFeeRateBps)
	}
	e.registry.add(config.InitialTokens)

	return e, nil
}

// CreateLocker creates a new locker with the caller's deposit as the first stake.
func (e *vaultEngine) CreateLocker(ctx context.Context, caller types.AccountID, id types.LockerID, tok types.TokenID, amount uint64) (*types.LockerInfo, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	success := false
	defer func() { e.metrics.IncrCreateRequest(id, success) }()

	if e.closed {
		return nil, ErrEngineClosed
	}
	if !e.registry.isWhitelisted(tok) {
		return nil, ErrTokenNotValid
	}
	if _, exists := e.lockers[id]; exists {
		return nil, ErrLockerExists
	}
	if amount == 0 {
		return nil, ErrInvalidAmount
	}
	if len(e.lockers) >= e.config.MaxLockers {
		return nil, ErrLockerLimit
	}

	if err := e.bank.TransferFrom(ctx, tok, caller, amount); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransferFailed, err)
	}

	now := e.clock.Now()
	ls := &lockerState{
		lockerID:     id,
		token:        tok,
		stake:        amount,
		totalBalance: amount,
		playersCount: 1,
		state:        types.StateOpen,
		creator:      caller,
		depositors:   map[types.AccountID]uint32{caller: 1},
		createdAt:    now,
		lastModified: now,
	}
	e.lockers[id] = ls
	e.openCount++
	e.metrics.SetOpenLockers(e.openCount)

	success = true
	e.logger.Infow("Locker created",
		"lockerID", id, "token", tok, "stake", amount, "creator", caller)
	return ls.info(), nil
}

// DepositLocker adds the caller as a participant, pulling exactly one stake into custody.
func (e *vaultEngine) DepositLocker(ctx context.Context, caller types.AccountID, id types.LockerID) (*types.LockerInfo, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	success := false
	defer func() { e.metrics.IncrDepositRequest(id, success) }()

	if e.closed {
		return nil, ErrEngineClosed
	}
	ls, exists := e.lockers[id]
	if !exists {
		return nil, ErrLockerNotFound
	}
	if ls.state != types.StateOpen {
		return nil, ErrInvalidState
	}
	if max := e.config.MaxPlayersPerLocker; max > 0 && int(ls.playersCount) >= max {
		return nil, ErrLockerLimit
	}
	if ls.totalBalance+ls.stake < ls.totalBalance {
		return nil, ErrInvalidAmount
	}

	if err := e.bank.TransferFrom(ctx, ls.token, caller, ls.stake); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransferFailed, err)
	}

	ls.totalBalance += ls.stake
	ls.playersCount++
	ls.depositors[caller]++
	ls.lastModified = e.clock.Now()

	success = true
	e.logger.Infow("Deposit accepted",
		"lockerID", id, "depositor", caller,
		"players", ls.playersCount, "totalBalance", ls.totalBalance)
	return ls.info(), nil
}

// CloseLocker transitions an Open locker to Closed. Owner only; no fund movement.
func (e *vaultEngine) CloseLocker(ctx context.Context, caller types.AccountID, id types.LockerID) (*types.LockerInfo, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	success := false
	defer func() { e.metrics.IncrCloseRequest(id, success) }()

	if e.closed {
		return nil, ErrEngineClosed
	}
	if err := e.access.guard(caller); err != nil {
		return nil, err
	}
	ls, exists := e.lockers[id]
	if !exists {
		return nil, ErrLockerNotFound
	}
	if !ls.state.CanTransitionTo(types.StateClosed) {
		return nil, ErrInvalidState
	}

	ls.state = types.StateClosed
	ls.lastModified = e.clock.Now()
	e.openCount--
	e.metrics.SetOpenLockers(e.openCount)

	success = true
	e.logger.Infow("Locker closed", "lockerID", id, "players", ls.playersCount)
	return ls.info(), nil
}

// SetWinner resolves a Closed locker exactly once, splitting the pooled
// balance into the winner payout and the protocol fee.
func (e *vaultEngine) SetWinner(ctx context.Context, caller types.AccountID, id types.LockerID, winner types.AccountID) (*Resolution, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	success := false
	defer func() { e.metrics.IncrResolveRequest(id, success) }()

	if e.closed {
		return nil, ErrEngineClosed
	}
	if err := e.access.guard(caller); err != nil {
		return nil, err
	}
	ls, exists := e.lockers[id]
	if !exists {
		return nil, ErrLockerNotFound
	}
	if !ls.state.CanTransitionTo(types.StateResolved) {
		// Also rejects a second resolution: Resolved has no outgoing transitions.
		return nil, ErrInvalidState
	}

	fee := e.fees.calculate(ls.totalBalance)
	payout := ls.totalBalance - fee

	e.ledger.credit(winner, ls.token, payout)
	e.ledger.creditFee(ls.token, fee)
	ls.winner = winner
	ls.state = types.StateResolved
	ls.lastModified = e.clock.Now()

	success = true
	e.metrics.ObserveResolutionSplit(id, payout, fee)
	e.logger.Infow("Locker resolved",
		"lockerID", id, "winner", winner, "payout", payout, "fee", fee)
	return &Resolution{Locker: ls.info(), Payout: payout, Fee: fee}, nil
}

// WithdrawLocker refunds one of the caller's stakes from an Open locker
// directly to the destination, bypassing the withdrawable ledger.
func (e *vaultEngine) WithdrawLocker(ctx context.Context, caller types.AccountID, id types.LockerID, to types.AccountID) (uint64, *types.LockerInfo, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	success := false
	defer func() { e.metrics.IncrRefundRequest(id, success) }()

	if e.closed {
		return 0, nil, ErrEngineClosed
	}
	ls, exists := e.lockers[id]
	if !exists {
		return 0, nil, ErrLockerNotFound
	}
	if ls.state != types.StateOpen {
		return 0, nil, ErrInvalidState
	}
	if ls.depositors[caller] == 0 {
		return 0, nil, ErrUnauthorized
	}

	prevModified := ls.lastModified
	refund := ls.stake

	// Effects first, then the outbound transfer; unwind on failure.
	ls.depositors[caller]--
	if ls.depositors[caller] == 0 {
		delete(ls.depositors, caller)
	}
	ls.playersCount--
	ls.totalBalance -= refund
	ls.lastModified = e.clock.Now()

	if err := e.bank.Transfer(ctx, ls.token, to, refund); err != nil {
		ls.depositors[caller]++
		ls.playersCount++
		ls.totalBalance += refund
		ls.lastModified = prevModified
		return 0, nil, fmt.Errorf("%w: %v", ErrTransferFailed, err)
	}

	success = true
	e.logger.Infow("Stake refunded",
		"lockerID", id, "depositor", caller, "to", to, "refund", refund,
		"players", ls.playersCount)
	return refund, ls.info(), nil
}

// Withdraw debits the caller's own withdrawable balance and pays the
// destination account through the token bank.
func (e *vaultEngine) Withdraw(ctx context.Context, caller, to types.AccountID, tok types.TokenID, amount uint64) (uint64, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	success := false
	defer func() { e.metrics.IncrWithdrawRequest(caller, success) }()

	if e.closed {
		return 0, ErrEngineClosed
	}
	if amount == 0 {
		return 0, ErrInvalidAmount
	}
	if err := e.ledger.debit(caller, tok, amount); err != nil {
		return 0, err
	}

	if err := e.bank.Transfer(ctx, tok, to, amount); err != nil {
		e.ledger.credit(caller, tok, amount)
		return 0, fmt.Errorf("%w: %v", ErrTransferFailed, err)
	}

	remaining := e.ledger.balance(caller, tok)
	success = true
	e.logger.Infow("Balance withdrawn",
		"account", caller, "to", to, "token", tok, "amount", amount, "remaining", remaining)
	return remaining, nil
}

// WithdrawFee debits the protocol fee balance and pays the destination
// account through the token bank. Owner only.
func (e *vaultEngine) WithdrawFee(ctx context.Context, caller, to types.AccountID, tok types.TokenID, amount uint64) (uint64, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	success := false
	defer func() { e.metrics.IncrFeeWithdrawRequest(tok, success) }()

	if e.closed {
		return 0, ErrEngineClosed
	}
	if err := e.access.guard(caller); err != nil {
		return 0, err
	}
	if amount == 0 {
		return 0, ErrInvalidAmount
	}
	if err := e.ledger.debitFee(tok, amount); err != nil {
		return 0, err
	}

	if err := e.bank.Transfer(ctx, tok, to, amount); err != nil {
		e.ledger.creditFee(tok, amount)
		return 0, fmt.Errorf("%w: %v", ErrTransferFailed, err)
	}

	remaining := e.ledger.feeBalance(tok)
	success = true
	e.logger.Infow("Fee withdrawn",
		"to", to, "token", tok, "amount", amount, "remaining", remaining)
	return remaining, nil
}

// AddTokens whitelists the given tokens. Owner only; idempotent.
func (e *vaultEngine) AddTokens(ctx context.Context, caller types.AccountID, tokens []types.TokenID) (int, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return 0, ErrEngineClosed
	}
	if err := e.access.guard(caller); err != nil {
		return 0, err
	}

	added := e.registry.add(tokens)
	if added > 0 {
		e.logger.Infow("Tokens whitelisted", "added", added, "total", len(e.registry.tokens))
	}
	return added, nil
}

// SetFeeRate stores a new fee rate. Owner only.
func (e *vaultEngine) SetFeeRate(ctx context.Context, caller types.AccountID, rateBps uint32) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return ErrEngineClosed
	}
	if err := e.access.guard(caller); err != nil {
		return err
	}
	if err := e.fees.setRate(rateBps); err != nil {
		return err
	}

	e.logger.Infow("Fee rate updated", "rateBps", rateBps)
	return nil
}

// FeeRate returns the current fee rate in parts per thousand.
func (e *vaultEngine) FeeRate() uint32 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.fees.rate()
}

// CalculateFee returns the fee the current rate yields for the given amount.
func (e *vaultEngine) CalculateFee(amount uint64) uint64 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.fees.calculate(amount)
}

// IsTokenWhitelisted reports whether the token is accepted for new lockers.
func (e *vaultEngine) IsTokenWhitelisted(tok types.TokenID) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.registry.isWhitelisted(tok)
}

// GetLocker retrieves the current record of a locker.
func (e *vaultEngine) GetLocker(ctx context.Context, id types.LockerID) (*types.LockerInfo, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	ls, exists := e.lockers[id]
	if !exists {
		return nil, ErrLockerNotFound
	}
	return ls.info(), nil
}

// GetLockers returns a paginated list of lockers matching an optional filter,
// ordered by creation time (ties broken by ID) for stable pagination.
func (e *vaultEngine) GetLockers(ctx context.Context, filter LockerFilter, limit int, offset int) ([]*types.LockerInfo, int, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if filter == nil {
		filter = FilterAll
	}
	if offset < 0 {
		offset = 0
	}

	matched := make([]*types.LockerInfo, 0, len(e.lockers))
	for _, ls := range e.lockers {
		info := ls.info()
		if filter(info) {
			matched = append(matched, info)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].CreatedAt.Before(matched[j].CreatedAt)
		}
		return bytes.Compare(matched[i].LockerID[:], matched[j].LockerID[:]) < 0
	})

	total := len(matched)
	if offset >= total {
		return []*types.LockerInfo{}, total, nil
	}
	matched = matched[offset:]
	if limit > 0 && limit < len(matched) {
		matched = matched[:limit]
	}
	return matched, total, nil
}

// GetBalance returns the account's withdrawable balance for the token.
func (e *vaultEngine) GetBalance(ctx context.Context, account types.AccountID, tok types.TokenID) uint64 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.ledger.balance(account, tok)
}

// GetFeeBalance returns the accrued protocol fee balance for the token.
func (e *vaultEngine) GetFeeBalance(ctx context.Context, tok types.TokenID) uint64 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.ledger.feeBalance(tok)
}

// Close marks the engine as shut down. Idempotent.
func (e *vaultEngine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.closed = true
	return nil
}
