package types

import "slices"

// String helps with making state values more readable in logs and debug output.
func (s LockerState) String() string {
	switch s {
	case StateOpen:
		return "Open"
	case StateClosed:
		return "Closed"
	case StateResolved:
		return "Resolved"
	default:
		return "Unspecified"
	}
}

// IsValid checks if the state is one of the valid locker lifecycle states.
func (s LockerState) IsValid() bool {
	return s == StateOpen || s == StateClosed || s == StateResolved
}

// transitions maps the valid one-way locker state transitions.
// Resolved is terminal; the Open-state cancellation refund does not
// change the state, so it does not appear here.
var transitions = map[LockerState][]LockerState{
	StateOpen:     {StateClosed},
	StateClosed:   {StateResolved},
	StateResolved: {},
}

// CanTransitionTo checks if a transition from the current state to the target state is valid.
func (s LockerState) CanTransitionTo(target LockerState) bool {
	validTargets, exists := transitions[s]
	if !exists {
		return false
	}

	return slices.Contains(validTargets, target)
}
