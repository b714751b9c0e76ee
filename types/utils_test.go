package types

import (
	"strings"
	"testing"
)

func TestLockerState_String(t *testing.T) {
	cases := []struct {
		state LockerState
		want  string
	}{
		{StateOpen, "Open"},
		{StateClosed, "Closed"},
		{StateResolved, "Resolved"},
		{StateUnspecified, "Unspecified"},
		{LockerState(42), "Unspecified"},
	}

	for _, tc := range cases {
		if got := tc.state.String(); got != tc.want {
			t.Errorf("LockerState(%d).String() = %q, want %q", tc.state, got, tc.want)
		}
	}
}

func TestLockerState_IsValid(t *testing.T) {
	valid := []LockerState{StateOpen, StateClosed, StateResolved}
	for _, s := range valid {
		if !s.IsValid() {
			t.Errorf("expected %v to be valid", s)
		}
	}

	invalid := []LockerState{StateUnspecified, LockerState(-1), LockerState(99)}
	for _, s := range invalid {
		if s.IsValid() {
			t.Errorf("expected %v to be invalid", s)
		}
	}
}

func TestLockerState_CanTransitionTo(t *testing.T) {
	cases := []struct {
		from, to LockerState
		want     bool
	}{
		{StateOpen, StateClosed, true},
		{StateClosed, StateResolved, true},
		{StateOpen, StateResolved, false},
		{StateClosed, StateOpen, false},
		{StateResolved, StateOpen, false},
		{StateResolved, StateClosed, false},
		{StateResolved, StateResolved, false},
		{StateUnspecified, StateOpen, false},
	}

	for _, tc := range cases {
		if got := tc.from.CanTransitionTo(tc.to); got != tc.want {
			t.Errorf("%v.CanTransitionTo(%v) = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestParseLockerID_RoundTrip(t *testing.T) {
	raw := strings.Repeat("ab", LockerIDSize)
	id, err := ParseLockerID(raw)
	if err != nil {
		t.Fatalf("ParseLockerID(%q) returned error: %v", raw, err)
	}
	if id.String() != raw {
		t.Errorf("round trip mismatch: got %q, want %q", id.String(), raw)
	}
	if id.IsZero() {
		t.Error("expected non-zero locker ID")
	}
}

func TestParseLockerID_Invalid(t *testing.T) {
	cases := []string{
		"",
		"zz",
		strings.Repeat("ab", LockerIDSize-1),
		strings.Repeat("ab", LockerIDSize+1),
		strings.Repeat("g", 2*LockerIDSize),
	}

	for _, raw := range cases {
		if _, err := ParseLockerID(raw); err == nil {
			t.Errorf("ParseLockerID(%q) succeeded, want error", raw)
		}
	}
}

func TestLockerIDFromBytes(t *testing.T) {
	b := make([]byte, LockerIDSize)
	b[0] = 0x01
	b[LockerIDSize-1] = 0xff

	id, err := LockerIDFromBytes(b)
	if err != nil {
		t.Fatalf("LockerIDFromBytes returned error: %v", err)
	}
	if id[0] != 0x01 || id[LockerIDSize-1] != 0xff {
		t.Error("byte content not preserved")
	}

	if _, err := LockerIDFromBytes(b[:LockerIDSize-1]); err == nil {
		t.Error("expected error for short byte slice")
	}
	if _, err := LockerIDFromBytes(nil); err == nil {
		t.Error("expected error for nil byte slice")
	}
}

func TestLockerID_IsZero(t *testing.T) {
	var zero LockerID
	if !zero.IsZero() {
		t.Error("zero value should be zero")
	}
}
