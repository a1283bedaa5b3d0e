// Package policy holds the lockdown table: the one definition of which
// services, adapters, and policy values "lockdown" converges. Both the
// lockdown and revert passes derive their sets from this value, so the
// two can never drift apart.
package policy

import "strings"

// KeyValue is one named integer policy entry.
type KeyValue struct {
	Name  string
	Value uint32
}

// Lockdown is the immutable lockdown configuration, constructed once at
// startup and passed explicitly to whoever needs it.
type Lockdown struct {
	// Services are stable OS service identifiers, processed in order.
	Services []string
	// KeyPath is the container path all policy values live under. It is
	// created on first write and removed on revert.
	KeyPath string
	// Keys are the policy values lockdown writes and revert deletes.
	Keys []KeyValue
}

// Default returns the built-in privacy lockdown table: location and
// sensor plumbing, telemetry, and the LocationAndSensors policy values.
func Default() Lockdown {
	return Lockdown{
		Services: []string{
			"lfsvc",
			"SensorService",
			"SensorDataService",
			"SensrSvc",
			"DiagTrack",
			"dmwappushservice",
			"WerSvc",
		},
		KeyPath: `SOFTWARE\Policies\Microsoft\Windows\LocationAndSensors`,
		Keys: []KeyValue{
			{Name: "DisableLocation", Value: 1},
			{Name: "DisableLocationScripting", Value: 1},
			{Name: "DisableSensors", Value: 1},
			{Name: "DisableWindowsLocationProvider", Value: 1},
		},
	}
}

var wirelessMarkers = []string{"wireless", "wi-fi", "wifi"}

// IsWireless reports whether an adapter description identifies a wireless
// radio. Matching is a case-insensitive substring check; adapters are
// discovered fresh per pass, never declared in the table.
func IsWireless(description string) bool {
	desc := strings.ToLower(description)
	for _, marker := range wirelessMarkers {
		if strings.Contains(desc, marker) {
			return true
		}
	}
	return false
}
