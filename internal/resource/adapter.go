package resource

import (
	"context"
	"errors"
	"fmt"
)

// AdapterStatus is the coarse operational state of a network adapter.
type AdapterStatus string

const (
	AdapterUp           AdapterStatus = "up"
	AdapterDisabled     AdapterStatus = "disabled"
	AdapterDisconnected AdapterStatus = "disconnected"
	AdapterOther        AdapterStatus = "other"
)

// Adapter is one physical network adapter as enumerated by the OS.
type Adapter struct {
	Name        string
	Description string
	Status      AdapterStatus
}

// AdapterManager is the network-adapter subsystem. List enumerates
// physical adapters fresh on every call; hardware can appear and
// disappear between passes.
type AdapterManager interface {
	List(ctx context.Context) ([]Adapter, error)
	SetEnabled(ctx context.Context, name string, enabled bool) error
}

// AdapterResource manages one named network adapter. Adapters are
// discovered dynamically, never declared in the policy table.
type AdapterResource struct {
	name string
	mgr  AdapterManager
}

// NewAdapter wraps an adapter name with its control subsystem.
func NewAdapter(name string, mgr AdapterManager) *AdapterResource {
	return &AdapterResource{name: name, mgr: mgr}
}

func (r *AdapterResource) Name() string { return r.name }
func (r *AdapterResource) Kind() Kind   { return KindAdapter }

// Probe re-runs the enumeration and resolves the adapter by name. A name
// that no longer resolves is Found=false.
func (r *AdapterResource) Probe(ctx context.Context) (State, error) {
	adapters, err := r.mgr.List(ctx)
	if err != nil {
		return State{}, fmt.Errorf("list adapters: %w", err)
	}
	for _, a := range adapters {
		if a.Name == r.name {
			return State{Found: true, Summary: string(a.Status)}, nil
		}
	}
	return State{Found: false, Summary: "no longer present"}, nil
}

// Apply enables or disables the adapter. An adapter that vanished since
// enumeration no-ops: the desired "off" state is trivially satisfied, and
// there is nothing left to switch back on.
func (r *AdapterResource) Apply(ctx context.Context, mode Mode) error {
	err := r.mgr.SetEnabled(ctx, r.name, mode == ModeRestore)
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("set adapter enabled=%t: %w", mode == ModeRestore, err)
	}
	return nil
}
