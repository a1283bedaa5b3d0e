//go:build windows

package winsys

import "golang.org/x/sys/windows"

// IsElevated reports whether the process token carries administrative
// rights. Every control surface this tool touches requires them.
func IsElevated() bool {
	return windows.GetCurrentProcessToken().IsElevated()
}
