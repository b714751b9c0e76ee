package client

import (
	"fmt"
	"time"

	pb "github.com/jathurchan/vaultlock/proto"
	"github.com/jathurchan/vaultlock/types"
)

// lockerFromProto converts a wire locker into its client-side record.
func lockerFromProto(msg *pb.Locker) (*types.LockerInfo, error) {
	if msg == nil {
		return nil, nil
	}
	id, err := types.LockerIDFromBytes(msg.LockerId)
	if err != nil {
		return nil, fmt.Errorf("malformed locker in response: %w", err)
	}
	return &types.LockerInfo{
		LockerID:     id,
		Token:        types.TokenID(msg.TokenId),
		Stake:        msg.Stake,
		TotalBalance: msg.TotalBalance,
		PlayersCount: msg.PlayersCount,
		State:        stateFromProto(msg.State),
		Winner:       types.AccountID(msg.WinnerId),
		Creator:      types.AccountID(msg.CreatorId),
		CreatedAt:    time.UnixMilli(msg.CreatedAtMs).UTC(),
		LastModified: time.UnixMilli(msg.LastModifiedMs).UTC(),
	}, nil
}

// stateFromProto maps a wire locker state to the client enum.
func stateFromProto(state pb.LockerState) types.LockerState {
	switch state {
	case pb.LockerState_LOCKER_STATE_OPEN:
		return types.StateOpen
	case pb.LockerState_LOCKER_STATE_CLOSED:
		return types.StateClosed
	case pb.LockerState_LOCKER_STATE_RESOLVED:
		return types.StateResolved
	default:
		return types.StateUnspecified
	}
}

// stateToProto maps a client locker state to its wire enum.
func stateToProto(state types.LockerState) pb.LockerState {
	switch state {
	case types.StateOpen:
		return pb.LockerState_LOCKER_STATE_OPEN
	case types.StateClosed:
		return pb.LockerState_LOCKER_STATE_CLOSED
	case types.StateResolved:
		return pb.LockerState_LOCKER_STATE_RESOLVED
	default:
		return pb.LockerState_LOCKER_STATE_UNSPECIFIED
	}
}

// filterToProto converts a client filter to its wire form.
func filterToProto(filter *LockerFilter) *pb.LockerFilter {
	if filter == nil {
		return nil
	}
	return &pb.LockerFilter{
		State:     stateToProto(filter.State),
		TokenId:   string(filter.Token),
		CreatorId: string(filter.Creator),
	}
}
