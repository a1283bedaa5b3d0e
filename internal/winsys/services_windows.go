//go:build windows

package winsys

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sys/windows"
	"golang.org/x/sys/windows/svc"
	"golang.org/x/sys/windows/svc/mgr"

	"github.com/privlock/privlock-tui/internal/resource"
)

const stopWait = 10 * time.Second

// ServiceControl drives the Windows service control manager. It
// implements resource.ServiceManager.
type ServiceControl struct {
	log *zap.Logger
}

// NewServiceControl returns a service controller.
func NewServiceControl(log *zap.Logger) *ServiceControl {
	if log == nil {
		log = zap.NewNop()
	}
	return &ServiceControl{log: log}
}

// Query reads the startup mode and run state of a service, or
// resource.ErrNotFound for identifiers unknown to the SCM.
func (s *ServiceControl) Query(ctx context.Context, name string) (resource.ServiceState, error) {
	var state resource.ServiceState
	err := s.withService(name, func(srv *mgr.Service) error {
		cfg, err := srv.Config()
		if err != nil {
			return fmt.Errorf("read config: %w", err)
		}
		status, err := srv.Query()
		if err != nil {
			return fmt.Errorf("query status: %w", err)
		}
		state = resource.ServiceState{
			Startup: startupFromType(cfg.StartType),
			Run:     runFromState(status.State),
		}
		return nil
	})
	return state, err
}

// SetStartupMode rewrites only the start type of the service config.
func (s *ServiceControl) SetStartupMode(ctx context.Context, name string, mode resource.StartupMode) error {
	return s.withService(name, func(srv *mgr.Service) error {
		cfg, err := srv.Config()
		if err != nil {
			return fmt.Errorf("read config: %w", err)
		}
		cfg.StartType = typeFromStartup(mode)
		if err := srv.UpdateConfig(cfg); err != nil {
			return fmt.Errorf("update config: %w", err)
		}
		s.log.Info("service startup mode set", zap.String("service", name), zap.String("mode", string(mode)))
		return nil
	})
}

// Start launches the service. A service that is already running counts
// as started.
func (s *ServiceControl) Start(ctx context.Context, name string) error {
	return s.withService(name, func(srv *mgr.Service) error {
		err := srv.Start()
		if errors.Is(err, windows.ERROR_SERVICE_ALREADY_RUNNING) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("start: %w", err)
		}
		return nil
	})
}

// Stop sends a stop control and waits for the service to leave the
// running state, bounded by stopWait and the caller's context.
func (s *ServiceControl) Stop(ctx context.Context, name string) error {
	return s.withService(name, func(srv *mgr.Service) error {
		status, err := srv.Query()
		if err != nil {
			return fmt.Errorf("query status: %w", err)
		}
		if status.State == svc.Stopped {
			return nil
		}
		if _, err := srv.Control(svc.Stop); err != nil {
			return fmt.Errorf("send stop: %w", err)
		}

		deadline := time.Now().Add(stopWait)
		for {
			status, err = srv.Query()
			if err != nil {
				return fmt.Errorf("query status: %w", err)
			}
			if status.State == svc.Stopped {
				return nil
			}
			if time.Now().After(deadline) {
				return fmt.Errorf("timed out waiting for stop (state %d)", status.State)
			}
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(300 * time.Millisecond):
			}
		}
	})
}

func (s *ServiceControl) withService(name string, fn func(*mgr.Service) error) error {
	m, err := mgr.Connect()
	if err != nil {
		return fmt.Errorf("connect service manager: %w", err)
	}
	defer m.Disconnect()

	srv, err := m.OpenService(name)
	if errors.Is(err, windows.ERROR_SERVICE_DOES_NOT_EXIST) {
		return resource.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("open service %s: %w", name, err)
	}
	defer srv.Close()

	return fn(srv)
}

func startupFromType(startType uint32) resource.StartupMode {
	switch startType {
	case mgr.StartAutomatic:
		return resource.StartupAutomatic
	case mgr.StartManual:
		return resource.StartupManual
	case mgr.StartDisabled:
		return resource.StartupDisabled
	default:
		return resource.StartupUnknown
	}
}

func typeFromStartup(mode resource.StartupMode) uint32 {
	switch mode {
	case resource.StartupAutomatic:
		return mgr.StartAutomatic
	case resource.StartupManual:
		return mgr.StartManual
	case resource.StartupDisabled:
		return mgr.StartDisabled
	default:
		return mgr.StartManual
	}
}

func runFromState(state svc.State) resource.RunState {
	switch state {
	case svc.Running:
		return resource.RunRunning
	case svc.Stopped:
		return resource.RunStopped
	case svc.StartPending, svc.StopPending, svc.ContinuePending, svc.PausePending:
		return resource.RunPending
	default:
		return resource.RunUnknown
	}
}
