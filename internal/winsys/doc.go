// Package winsys implements the subsystem interfaces of
// internal/resource against the Windows control surfaces: the service
// control manager, WMI/netsh for network adapters, and the HKLM registry
// for policy values. Non-Windows builds get stubs that compile everywhere
// and fail visibly at call time, keeping the rest of the module
// unit-testable on any platform.
package winsys
