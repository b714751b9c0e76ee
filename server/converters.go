package server

import (
	pb "github.com/jathurchan/vaultlock/proto"
	"github.com/jathurchan/vaultlock/types"
	"github.com/jathurchan/vaultlock/vault"
)

// lockerToProto converts an engine locker record to its wire form.
func lockerToProto(info *types.LockerInfo) *pb.Locker {
	if info == nil {
		return nil
	}
	return &pb.Locker{
		LockerId:       info.LockerID[:],
		TokenId:        string(info.Token),
		Stake:          info.Stake,
		TotalBalance:   info.TotalBalance,
		PlayersCount:   info.PlayersCount,
		State:          stateToProto(info.State),
		WinnerId:       string(info.Winner),
		CreatorId:      string(info.Creator),
		CreatedAtMs:    info.CreatedAt.UnixMilli(),
		LastModifiedMs: info.LastModified.UnixMilli(),
	}
}

// stateToProto maps an engine locker state to its wire enum.
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

// stateFromProto maps a wire locker state to the engine enum.
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

// filterFromProto builds an engine LockerFilter from the wire filter.
// A nil or all-zero filter matches every locker.
func filterFromProto(filter *pb.LockerFilter) vault.LockerFilter {
	if filter == nil {
		return vault.FilterAll
	}

	var predicates []vault.LockerFilter
	if filter.State != pb.LockerState_LOCKER_STATE_UNSPECIFIED {
		predicates = append(predicates, vault.FilterByState(stateFromProto(filter.State)))
	}
	if filter.TokenId != "" {
		predicates = append(predicates, vault.FilterByToken(types.TokenID(filter.TokenId)))
	}
	if filter.CreatorId != "" {
		predicates = append(predicates, vault.FilterByCreator(types.AccountID(filter.CreatorId)))
	}
	if len(predicates) == 0 {
		return vault.FilterAll
	}

	return func(l *types.LockerInfo) bool {
		for _, p := range predicates {
			if !p(l) {
				return false
			}
		}
		return true
	}
}
