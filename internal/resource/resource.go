// Package resource models the three kinds of system objects the console
// manages (background services, wireless adapters, policy registry values)
// behind one probe/apply contract, plus the subsystem interfaces their
// implementations call into.
package resource

import (
	"context"
	"errors"
)

// Kind identifies which subsystem owns a managed resource.
type Kind string

const (
	KindService   Kind = "service"
	KindAdapter   Kind = "adapter"
	KindPolicyKey Kind = "policy key"
)

// Mode selects the desired state a resource converges toward. Restore is
// the exact inverse of Lockdown; both derive from the same policy table.
type Mode string

const (
	ModeLockdown Mode = "lockdown"
	ModeRestore  Mode = "restore"
)

// State is the observable condition of a resource at probe time. A
// resource the owning subsystem does not know about is State{Found: false},
// never an error: absence is a normal, reportable outcome.
type State struct {
	Found   bool
	Summary string
}

// Resource couples one named system object with the probe and mutate
// operations of its owning subsystem.
type Resource interface {
	Name() string
	Kind() Kind

	// Probe reads current state. It has no side effects and may be called
	// repeatedly without changing anything.
	Probe(ctx context.Context) (State, error)

	// Apply converges the resource toward mode in a single pass. Subsystem
	// failures come back as errors; callers decide whether the batch
	// continues (it always does).
	Apply(ctx context.Context, mode Mode) error
}

var (
	// ErrNotFound reports that the named resource is unknown to its subsystem.
	ErrNotFound = errors.New("resource not found")
	// ErrUnconfigured reports that a policy value or its container path is absent.
	ErrUnconfigured = errors.New("policy value not configured")
	// ErrUnsupported reports that the running platform has no control surface.
	ErrUnsupported = errors.New("platform not supported")
)
