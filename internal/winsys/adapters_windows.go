//go:build windows

package winsys

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/yusufpapurcu/wmi"
	"go.uber.org/zap"

	"github.com/privlock/privlock-tui/internal/resource"
)

// Win32_NetworkAdapter mirrors the WMI class of the same name. Nullable
// columns map to pointers.
type Win32_NetworkAdapter struct {
	Name                   string
	Description            *string
	NetConnectionID        *string
	NetConnectionStatus    *uint16
	ConfigManagerErrorCode *uint32
}

// WMI NetConnectionStatus values this tool cares about.
const (
	netStatusConnected         = 2
	netStatusMediaDisconnected = 7
)

// ConfigManagerErrorCode 22 means the device is disabled.
const cmDeviceDisabled = 22

// AdapterControl enumerates physical adapters through WMI and toggles
// them through netsh. It implements resource.AdapterManager.
type AdapterControl struct {
	log *zap.Logger
}

// NewAdapterControl returns an adapter controller.
func NewAdapterControl(log *zap.Logger) *AdapterControl {
	if log == nil {
		log = zap.NewNop()
	}
	return &AdapterControl{log: log}
}

// List enumerates physical network adapters fresh on every call.
func (a *AdapterControl) List(ctx context.Context) ([]resource.Adapter, error) {
	var rows []Win32_NetworkAdapter
	query := wmi.CreateQuery(&rows, "WHERE PhysicalAdapter = TRUE")
	if err := wmi.Query(query, &rows); err != nil {
		return nil, fmt.Errorf("query network adapters: %w", err)
	}

	adapters := make([]resource.Adapter, 0, len(rows))
	for _, row := range rows {
		// Adapters without a connection name cannot be addressed by netsh.
		if row.NetConnectionID == nil || *row.NetConnectionID == "" {
			continue
		}
		adapters = append(adapters, resource.Adapter{
			Name:        *row.NetConnectionID,
			Description: deref(row.Description, row.Name),
			Status:      statusFromRow(row),
		})
	}
	return adapters, nil
}

// SetEnabled toggles the administrative state of a named adapter. A name
// absent from a fresh enumeration returns resource.ErrNotFound.
func (a *AdapterControl) SetEnabled(ctx context.Context, name string, enabled bool) error {
	adapters, err := a.List(ctx)
	if err != nil {
		return err
	}
	found := false
	for _, adapter := range adapters {
		if adapter.Name == name {
			found = true
			break
		}
	}
	if !found {
		return resource.ErrNotFound
	}

	admin := "disabled"
	if enabled {
		admin = "enabled"
	}
	cmd := exec.CommandContext(ctx, "netsh", "interface", "set", "interface",
		"name="+name, "admin="+admin)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("netsh set interface %s admin=%s: %s: %w",
			name, admin, strings.TrimSpace(string(out)), err)
	}
	a.log.Info("adapter state set", zap.String("adapter", name), zap.Bool("enabled", enabled))
	return nil
}

func statusFromRow(row Win32_NetworkAdapter) resource.AdapterStatus {
	if row.ConfigManagerErrorCode != nil && *row.ConfigManagerErrorCode == cmDeviceDisabled {
		return resource.AdapterDisabled
	}
	if row.NetConnectionStatus == nil {
		return resource.AdapterOther
	}
	switch *row.NetConnectionStatus {
	case netStatusConnected:
		return resource.AdapterUp
	case netStatusMediaDisconnected:
		return resource.AdapterDisconnected
	default:
		return resource.AdapterOther
	}
}

func deref(value *string, fallback string) string {
	if value != nil && *value != "" {
		return *value
	}
	return fallback
}
