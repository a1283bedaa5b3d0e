//go:build !windows

package winsys

import (
	"context"

	"go.uber.org/zap"

	"github.com/privlock/privlock-tui/internal/resource"
)

// Non-Windows builds exist so the module compiles and its core packages
// stay unit-testable anywhere. Every subsystem call fails with
// resource.ErrUnsupported and surfaces as a failed outcome line.

// ServiceControl is the non-Windows stub of the service subsystem.
type ServiceControl struct{}

// NewServiceControl returns a stub service controller.
func NewServiceControl(_ *zap.Logger) *ServiceControl { return &ServiceControl{} }

func (*ServiceControl) Query(context.Context, string) (resource.ServiceState, error) {
	return resource.ServiceState{}, resource.ErrUnsupported
}

func (*ServiceControl) SetStartupMode(context.Context, string, resource.StartupMode) error {
	return resource.ErrUnsupported
}

func (*ServiceControl) Start(context.Context, string) error { return resource.ErrUnsupported }
func (*ServiceControl) Stop(context.Context, string) error  { return resource.ErrUnsupported }

// AdapterControl is the non-Windows stub of the adapter subsystem.
type AdapterControl struct{}

// NewAdapterControl returns a stub adapter controller.
func NewAdapterControl(_ *zap.Logger) *AdapterControl { return &AdapterControl{} }

func (*AdapterControl) List(context.Context) ([]resource.Adapter, error) {
	return nil, resource.ErrUnsupported
}

func (*AdapterControl) SetEnabled(context.Context, string, bool) error {
	return resource.ErrUnsupported
}

// RegistryPolicyStore is the non-Windows stub of the policy store.
type RegistryPolicyStore struct{}

// NewRegistryPolicyStore returns a stub policy store.
func NewRegistryPolicyStore(_ *zap.Logger) *RegistryPolicyStore { return &RegistryPolicyStore{} }

func (*RegistryPolicyStore) EnsurePath(string) error               { return resource.ErrUnsupported }
func (*RegistryPolicyStore) SetValue(string, string, uint32) error { return resource.ErrUnsupported }
func (*RegistryPolicyStore) Value(string, string) (uint32, error) {
	return 0, resource.ErrUnsupported
}
func (*RegistryPolicyStore) DeleteValue(string, string) error { return resource.ErrUnsupported }
func (*RegistryPolicyStore) DeletePath(string) error          { return resource.ErrUnsupported }
func (*RegistryPolicyStore) PathExists(string) (bool, error) {
	return false, resource.ErrUnsupported
}

// IsElevated is always true off Windows; the stubs above fail loudly
// enough on their own.
func IsElevated() bool { return true }
