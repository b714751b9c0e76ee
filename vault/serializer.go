package vault

import (
	"encoding/json"
	"time"

	"github.com/jathurchan/vaultlock/types"
)

// vaultSnapshot is the serialized form of the engine's full state.
// All slices are sorted before encoding so snapshots are deterministic.
type vaultSnapshot struct {
	FeeRateBps  uint32               `json:"fee_rate_bps"`
	Tokens      []types.TokenID      `json:"tokens"`
	Lockers     []lockerSnapshot     `json:"lockers"`
	Balances    []balanceSnapshot    `json:"balances"`
	FeeBalances []feeBalanceSnapshot `json:"fee_balances"`
}

// lockerSnapshot is the serialized form of a single locker record.
type lockerSnapshot struct {
	LockerID     string              `json:"locker_id"`
	Token        types.TokenID       `json:"token"`
	Stake        uint64              `json:"stake"`
	TotalBalance uint64              `json:"total_balance"`
	PlayersCount uint32              `json:"players_count"`
	State        types.LockerState   `json:"state"`
	Winner       types.AccountID     `json:"winner,omitempty"`
	Creator      types.AccountID     `json:"creator"`
	Depositors   []depositorSnapshot `json:"depositors"`
	CreatedAt    time.Time           `json:"created_at"`
	LastModified time.Time           `json:"last_modified"`
}

// depositorSnapshot records how many stakes one account holds in a locker.
type depositorSnapshot struct {
	Account types.AccountID `json:"account"`
	Stakes  uint32          `json:"stakes"`
}

// balanceSnapshot records one (account, token) withdrawable balance entry.
type balanceSnapshot struct {
	Account types.AccountID `json:"account"`
	Token   types.TokenID   `json:"token"`
	Amount  uint64          `json:"amount"`
}

// feeBalanceSnapshot records one per-token protocol fee balance entry.
type feeBalanceSnapshot struct {
	Token  types.TokenID `json:"token"`
	Amount uint64        `json:"amount"`
}

// Serializer defines the interface for encoding and decoding engine snapshots.
type Serializer interface {
	// EncodeSnapshot serializes a vaultSnapshot into a byte slice.
	EncodeSnapshot(snapshot vaultSnapshot) ([]byte, error)

	// DecodeSnapshot deserializes a byte slice into a vaultSnapshot.
	DecodeSnapshot(data []byte) (vaultSnapshot, error)
}

// JSONSerializer implements the Serializer interface using JSON encoding.
type JSONSerializer struct{}

// EncodeSnapshot marshals a snapshot of the engine state.
func (s *JSONSerializer) EncodeSnapshot(snapshot vaultSnapshot) ([]byte, error) {
	return json.Marshal(snapshot)
}

// DecodeSnapshot deserializes a byte slice into a vaultSnapshot.
func (s *JSONSerializer) DecodeSnapshot(data []byte) (vaultSnapshot, error) {
	var snapshot vaultSnapshot
	err := json.Unmarshal(data, &snapshot)
	return snapshot, err
}
