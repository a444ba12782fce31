//go:build !windows

package pdf

import "syscall"

// killProcessGroup sends SIGKILL to the browser's process group so GPU and
// renderer children go with it.
func killProcessGroup(pid int) {
	// Errors ignored; launcher.Kill follows.
	_ = syscall.Kill(-pid, syscall.SIGKILL)
}
