//go:build windows

package pdf

import (
	"os/exec"
	"strconv"
)

// killProcessGroup terminates the browser process tree with taskkill.
func killProcessGroup(pid int) {
	// Errors ignored; launcher.Kill follows.
	_ = exec.Command("taskkill", "/F", "/T", "/PID", strconv.Itoa(pid)).Run() // #nosec G204 -- pid from launcher
}
