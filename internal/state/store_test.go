package state

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/five82/roster/internal/roster"
)

func TestStore_BeginOnlyOnce(t *testing.T) {
	var s Store

	if got := s.Snapshot().Phase; got != PhaseIdle {
		t.Fatalf("initial phase = %v, want idle", got)
	}
	if !s.Begin() {
		t.Fatalf("first Begin returned false")
	}
	if got := s.Snapshot().Phase; got != PhaseLoading {
		t.Fatalf("phase after Begin = %v, want loading", got)
	}
	if s.Begin() {
		t.Fatalf("second Begin returned true, want false")
	}

	s.Complete(roster.Roster{}, 0, nil)
	if s.Begin() {
		t.Fatalf("Begin after completion returned true, want false")
	}
}

func TestStore_CompleteSuccess(t *testing.T) {
	var s Store
	s.Begin()

	r := roster.Build([]roster.Record{{Name: "A", Role: "leader"}, {Name: "B", Role: "guest"}}, roster.DefaultOptions())
	before := time.Now()
	s.Complete(r, 2, nil)

	snap := s.Snapshot()
	if !snap.HasRoster() || snap.Phase != PhaseReady {
		t.Fatalf("snapshot phase = %v, want ready", snap.Phase)
	}
	if snap.Roster.LeaderCount() != 1 || snap.RecordCount != 2 {
		t.Fatalf("snapshot = %#v, want 1 leader and 2 records", snap)
	}
	if snap.LastUpdated.Before(before) {
		t.Fatalf("LastUpdated = %v, want >= %v", snap.LastUpdated, before)
	}
	if snap.LastError != nil {
		t.Fatalf("LastError = %v, want nil", snap.LastError)
	}
}

func TestStore_CompleteFailureKeepsNoRoster(t *testing.T) {
	var s Store
	s.Begin()

	origErr := errors.New("boom")
	r := roster.Build([]roster.Record{{Name: "A", Role: "leader"}}, roster.DefaultOptions())
	s.Complete(r, 1, origErr)

	snap := s.Snapshot()
	if snap.HasRoster() || snap.Phase != PhaseFailed {
		t.Fatalf("phase = %v, want failed", snap.Phase)
	}
	if !snap.Roster.Empty() || snap.RecordCount != 0 {
		t.Fatalf("failed snapshot kept roster data: %#v", snap)
	}
	if snap.LastError == nil || snap.LastError.Error() != "boom" {
		t.Fatalf("LastError = %v, want boom", snap.LastError)
	}
	if reflect.ValueOf(snap.LastError).Pointer() == reflect.ValueOf(origErr).Pointer() {
		t.Fatalf("Snapshot should clone error instance")
	}
	if !errors.Is(snap.LastError, origErr) {
		t.Fatalf("cloned error should wrap the original")
	}
}

func TestPhaseString(t *testing.T) {
	for phase, want := range map[Phase]string{
		PhaseIdle:    "idle",
		PhaseLoading: "loading",
		PhaseReady:   "ready",
		PhaseFailed:  "failed",
	} {
		if got := phase.String(); got != want {
			t.Errorf("Phase(%d).String() = %q, want %q", phase, got, want)
		}
	}
}
