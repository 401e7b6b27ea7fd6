//go:build !windows

package launcher

import (
	"syscall"
)

// replaceProcess substitutes the current process image with the given
// command via execve(2). The PID is preserved and the call does not
// return on success; a returned error means the exec itself failed
// (e.g. the path is not executable).
func replaceProcess(path string, argv []string, env []string) error {
	return syscall.Exec(path, argv, env)
}
