//go:build windows

package winsys

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sys/windows/registry"

	"github.com/privlock/privlock-tui/internal/resource"
)

// RegistryPolicyStore keeps policy values as DWORDs under HKLM. It
// implements resource.PolicyStore.
type RegistryPolicyStore struct {
	log *zap.Logger
}

// NewRegistryPolicyStore returns a policy store rooted at HKLM.
func NewRegistryPolicyStore(log *zap.Logger) *RegistryPolicyStore {
	if log == nil {
		log = zap.NewNop()
	}
	return &RegistryPolicyStore{log: log}
}

// EnsurePath creates the container key if absent. Creating an existing
// key is a no-op.
func (r *RegistryPolicyStore) EnsurePath(path string) error {
	key, _, err := registry.CreateKey(registry.LOCAL_MACHINE, path, registry.CREATE_SUB_KEY|registry.SET_VALUE)
	if err != nil {
		return fmt.Errorf("create key %s: %w", path, err)
	}
	return key.Close()
}

// SetValue writes a DWORD, overwriting any prior value.
func (r *RegistryPolicyStore) SetValue(path, name string, value uint32) error {
	key, err := registry.OpenKey(registry.LOCAL_MACHINE, path, registry.SET_VALUE)
	if errors.Is(err, registry.ErrNotExist) {
		return resource.ErrUnconfigured
	}
	if err != nil {
		return fmt.Errorf("open key %s: %w", path, err)
	}
	defer key.Close()

	if err := key.SetDWordValue(name, value); err != nil {
		return fmt.Errorf("set %s=%d: %w", name, value, err)
	}
	r.log.Info("policy value set", zap.String("path", path), zap.String("name", name), zap.Uint32("value", value))
	return nil
}

// Value reads a DWORD, or resource.ErrUnconfigured when the value or its
// container key does not exist.
func (r *RegistryPolicyStore) Value(path, name string) (uint32, error) {
	key, err := registry.OpenKey(registry.LOCAL_MACHINE, path, registry.QUERY_VALUE)
	if errors.Is(err, registry.ErrNotExist) {
		return 0, resource.ErrUnconfigured
	}
	if err != nil {
		return 0, fmt.Errorf("open key %s: %w", path, err)
	}
	defer key.Close()

	v, _, err := key.GetIntegerValue(name)
	if errors.Is(err, registry.ErrNotExist) {
		return 0, resource.ErrUnconfigured
	}
	if err != nil {
		return 0, fmt.Errorf("read %s: %w", name, err)
	}
	return uint32(v), nil
}

// DeleteValue removes a named value; a value that is already gone maps to
// resource.ErrUnconfigured so callers can treat it as satisfied.
func (r *RegistryPolicyStore) DeleteValue(path, name string) error {
	key, err := registry.OpenKey(registry.LOCAL_MACHINE, path, registry.SET_VALUE)
	if errors.Is(err, registry.ErrNotExist) {
		return resource.ErrUnconfigured
	}
	if err != nil {
		return fmt.Errorf("open key %s: %w", path, err)
	}
	defer key.Close()

	err = key.DeleteValue(name)
	if errors.Is(err, registry.ErrNotExist) {
		return resource.ErrUnconfigured
	}
	if err != nil {
		return fmt.Errorf("delete %s: %w", name, err)
	}
	r.log.Info("policy value deleted", zap.String("path", path), zap.String("name", name))
	return nil
}

// PathExists reports whether the container key is present.
func (r *RegistryPolicyStore) PathExists(path string) (bool, error) {
	key, err := registry.OpenKey(registry.LOCAL_MACHINE, path, registry.QUERY_VALUE)
	if errors.Is(err, registry.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("open key %s: %w", path, err)
	}
	return true, key.Close()
}

// DeletePath removes the container key. A missing key is fine.
func (r *RegistryPolicyStore) DeletePath(path string) error {
	err := registry.DeleteKey(registry.LOCAL_MACHINE, path)
	if errors.Is(err, registry.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("delete key %s: %w", path, err)
	}
	r.log.Info("policy path deleted", zap.String("path", path))
	return nil
}
