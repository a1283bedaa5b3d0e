package resource

import (
	"context"
	"errors"
	"fmt"
)

// StartupMode is a service's configured start behavior.
type StartupMode string

const (
	StartupAutomatic StartupMode = "automatic"
	StartupManual    StartupMode = "manual"
	StartupDisabled  StartupMode = "disabled"
	StartupUnknown   StartupMode = "unknown"
)

// RunState is a service's current execution state.
type RunState string

const (
	RunRunning RunState = "running"
	RunStopped RunState = "stopped"
	RunPending RunState = "pending"
	RunUnknown RunState = "unknown"
)

// ServiceState is the probed condition of one background service.
type ServiceState struct {
	Startup StartupMode
	Run     RunState
}

// ServiceManager is the service-control subsystem consumed by
// ServiceResource. Query returns ErrNotFound for unknown identifiers.
type ServiceManager interface {
	Query(ctx context.Context, name string) (ServiceState, error)
	SetStartupMode(ctx context.Context, name string, mode StartupMode) error
	Start(ctx context.Context, name string) error
	Stop(ctx context.Context, name string) error
}

// ServiceResource manages one OS background service by its stable
// identifier (not its display name).
type ServiceResource struct {
	name string
	mgr  ServiceManager
}

// NewService wraps a service identifier with its control subsystem.
func NewService(name string, mgr ServiceManager) *ServiceResource {
	return &ServiceResource{name: name, mgr: mgr}
}

func (r *ServiceResource) Name() string { return r.name }
func (r *ServiceResource) Kind() Kind   { return KindService }

// Probe reports the service's startup mode and run state, or Found=false
// when the identifier is unknown to the OS.
func (r *ServiceResource) Probe(ctx context.Context) (State, error) {
	st, err := r.mgr.Query(ctx, r.name)
	if errors.Is(err, ErrNotFound) {
		return State{Found: false, Summary: "not installed"}, nil
	}
	if err != nil {
		return State{}, fmt.Errorf("query service %s: %w", r.name, err)
	}
	return State{
		Found:   true,
		Summary: fmt.Sprintf("startup=%s run=%s", st.Startup, st.Run),
	}, nil
}

// Apply converges the service in two sequential operations: startup mode
// first, then run state. If the second fails after the first succeeded the
// service is left partially converged and the error reported; there is no
// retry and no rollback.
func (r *ServiceResource) Apply(ctx context.Context, mode Mode) error {
	if mode == ModeRestore {
		if err := r.mgr.SetStartupMode(ctx, r.name, StartupAutomatic); err != nil {
			return fmt.Errorf("set startup automatic: %w", err)
		}
		if err := r.mgr.Start(ctx, r.name); err != nil {
			return fmt.Errorf("start: %w", err)
		}
		return nil
	}
	if err := r.mgr.SetStartupMode(ctx, r.name, StartupDisabled); err != nil {
		return fmt.Errorf("set startup disabled: %w", err)
	}
	if err := r.mgr.Stop(ctx, r.name); err != nil {
		return fmt.Errorf("stop: %w", err)
	}
	return nil
}
