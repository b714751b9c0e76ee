package vault

import "github.com/jathurchan/vaultlock/types"

// LockerFilter defines a function that determines whether a given locker
// satisfies specific criteria. Used in GetLockers queries.
type LockerFilter func(*types.LockerInfo) bool

var (
	// FilterByState returns a LockerFilter matching lockers in the given state.
	FilterByState = func(state types.LockerState) LockerFilter {
		return func(l *types.LockerInfo) bool {
			return l.State == state
		}
	}

	// FilterByToken returns a LockerFilter matching lockers denominated in the given token.
	FilterByToken = func(tok types.TokenID) LockerFilter {
		return func(l *types.LockerInfo) bool {
			return l.Token == tok
		}
	}

	// FilterByCreator returns a LockerFilter matching lockers created by the given account.
	FilterByCreator = func(creator types.AccountID) LockerFilter {
		return func(l *types.LockerInfo) bool {
			return l.Creator == creator
		}
	}

	// FilterAll is a LockerFilter that matches all lockers unconditionally.
	FilterAll LockerFilter = func(*types.LockerInfo) bool {
		return true
	}
)
