package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/five82/roster/internal/roster"
)

// Phase is the load lifecycle of the roster.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseReady
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseReady:
		return "ready"
	case PhaseFailed:
		return "failed"
	default:
		return "idle"
	}
}

// Snapshot represents the latest load result available to the UI.
type Snapshot struct {
	Phase       Phase
	Roster      roster.Roster
	RecordCount int // parsed rows, including ones with unrecognized roles
	LastUpdated time.Time
	LastError   error
}

// HasRoster reports whether a successful fetch produced a roster.
func (s Snapshot) HasRoster() bool {
	return s.Phase == PhaseReady
}

// Store coordinates the single fetch between the fetch command and the UI.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Begin marks the fetch as started. It returns false if a fetch has already
// been started, so at most one fetch runs per Store.
func (s *Store) Begin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.snapshot.Phase != PhaseIdle {
		return false
	}
	s.snapshot.Phase = PhaseLoading
	s.snapshot.LastUpdated = time.Now()
	return true
}

// Complete records the fetch result. When err is non-nil no roster is kept.
func (s *Store) Complete(r roster.Roster, records int, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.LastUpdated = time.Now()
	if err != nil {
		s.snapshot.Phase = PhaseFailed
		s.snapshot.Roster = roster.Roster{}
		s.snapshot.RecordCount = 0
		s.snapshot.LastError = err
		return
	}
	s.snapshot.Phase = PhaseReady
	s.snapshot.Roster = r
	s.snapshot.RecordCount = records
	s.snapshot.LastError = nil
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}
