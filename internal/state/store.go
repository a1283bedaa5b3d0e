// Package state holds the snapshot store shared by the Bubble Tea views.
package state

import (
	"sync"

	"github.com/privlock/privlock-tui/internal/identity"
	"github.com/privlock/privlock-tui/internal/reconcile"
)

// Store guards the shared snapshot. Commands run on Bubble Tea's command
// goroutines, so access is mutex-protected even though the UI itself is
// single-threaded.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// NewStore creates a store seeded with defaults.
func NewStore() *Store {
	return &Store{snapshot: Snapshot{ActiveView: ViewMenu}}
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Outcomes = cloneOutcomes(s.snapshot.Outcomes)
	if s.snapshot.Identity != nil {
		report := *s.snapshot.Identity
		snap.Identity = &report
	}
	return snap
}

// SetActiveView updates the router's active view.
func (s *Store) SetActiveView(kind ViewKind) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.ActiveView = kind
}

// ActiveView returns the currently selected view.
func (s *Store) ActiveView() ViewKind {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.snapshot.ActiveView
}

// BeginRun marks a command as in flight.
func (s *Store) BeginRun(label string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.Busy = true
	s.snapshot.Running = label
	s.snapshot.LastError = ""
}

// FinishPass records the outcomes of a reconciliation pass and clears the
// busy flag.
func (s *Store) FinishPass(title string, outcomes []reconcile.Outcome) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.Busy = false
	s.snapshot.Running = ""
	s.snapshot.ReportTitle = title
	s.snapshot.Outcomes = cloneOutcomes(outcomes)
	s.snapshot.Identity = nil
	s.snapshot.IdentityErr = ""
}

// FinishIdentity records an egress-identity result and clears the busy
// flag. report may be partial; errMsg explains which stage failed.
func (s *Store) FinishIdentity(report identity.Report, errMsg string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.Busy = false
	s.snapshot.Running = ""
	s.snapshot.ReportTitle = "Network identity"
	s.snapshot.Outcomes = nil
	s.snapshot.Identity = &report
	s.snapshot.IdentityErr = errMsg
}

// SetError records a user-visible error message.
func (s *Store) SetError(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.Busy = false
	s.snapshot.Running = ""
	s.snapshot.LastError = msg
}

func cloneOutcomes(outcomes []reconcile.Outcome) []reconcile.Outcome {
	if len(outcomes) == 0 {
		return nil
	}
	copied := make([]reconcile.Outcome, len(outcomes))
	copy(copied, outcomes)
	return copied
}
