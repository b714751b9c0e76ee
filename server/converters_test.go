package server

import (
	"testing"
	"time"

	pb "github.com/jathurchan/vaultlock/proto"
	"github.com/jathurchan/vaultlock/testutil"
	"github.com/jathurchan/vaultlock/types"
)

func TestLockerToProto(t *testing.T) {
	testutil.AssertNil(t, lockerToProto(nil))

	created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	modified := created.Add(90 * time.Second)

	var id types.LockerID
	id[0] = 0xab

	info := &types.LockerInfo{
		LockerID:     id,
		Token:        testUSDC,
		Stake:        100,
		TotalBalance: 300,
		PlayersCount: 3,
		State:        types.StateResolved,
		Winner:       testBob,
		Creator:      testAlice,
		CreatedAt:    created,
		LastModified: modified,
	}

	msg := lockerToProto(info)
	testutil.RequireNotNil(t, msg)
	testutil.AssertEqual(t, id[:], msg.LockerId)
	testutil.AssertEqual(t, testUSDC, msg.TokenId)
	testutil.AssertEqual(t, uint64(100), msg.Stake)
	testutil.AssertEqual(t, uint64(300), msg.TotalBalance)
	testutil.AssertEqual(t, uint32(3), msg.PlayersCount)
	testutil.AssertEqual(t, pb.LockerState_LOCKER_STATE_RESOLVED, msg.State)
	testutil.AssertEqual(t, testBob, msg.WinnerId)
	testutil.AssertEqual(t, testAlice, msg.CreatorId)
	testutil.AssertEqual(t, created.UnixMilli(), msg.CreatedAtMs)
	testutil.AssertEqual(t, modified.UnixMilli(), msg.LastModifiedMs)
}

func TestStateConversionsRoundTrip(t *testing.T) {
	states := []types.LockerState{types.StateOpen, types.StateClosed, types.StateResolved}
	for _, s := range states {
		testutil.AssertEqual(t, s, stateFromProto(stateToProto(s)))
	}
	testutil.AssertEqual(t, pb.LockerState_LOCKER_STATE_UNSPECIFIED, stateToProto(types.StateUnspecified))
	testutil.AssertEqual(t, types.StateUnspecified, stateFromProto(pb.LockerState(42)))
}

func TestFilterFromProto(t *testing.T) {
	open := &types.LockerInfo{State: types.StateOpen, Token: testUSDC, Creator: testAlice}
	closed := &types.LockerInfo{State: types.StateClosed, Token: testDAI, Creator: testBob}

	all := filterFromProto(nil)
	testutil.AssertTrue(t, all(open))
	testutil.AssertTrue(t, all(closed))

	empty := filterFromProto(&pb.LockerFilter{})
	testutil.AssertTrue(t, empty(open))
	testutil.AssertTrue(t, empty(closed))

	byState := filterFromProto(&pb.LockerFilter{State: pb.LockerState_LOCKER_STATE_OPEN})
	testutil.AssertTrue(t, byState(open))
	testutil.AssertFalse(t, byState(closed))

	combined := filterFromProto(&pb.LockerFilter{
		State:     pb.LockerState_LOCKER_STATE_OPEN,
		TokenId:   testUSDC,
		CreatorId: testAlice,
	})
	testutil.AssertTrue(t, combined(open))
	testutil.AssertFalse(t, combined(closed))
	testutil.AssertFalse(t, combined(&types.LockerInfo{
		State: types.StateOpen, Token: testUSDC, Creator: testBob}))
}
