//go:build !windows

package platform

import "os/exec"

// HideConsole is a no-op outside Windows: child processes never get a window
func HideConsole(cmd *exec.Cmd) {}
