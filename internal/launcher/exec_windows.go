//go:build windows

package launcher

import (
	"errors"
	"os"
	"os/exec"
)

// replaceProcess emulates process replacement on Windows, which has no
// execve equivalent. The child runs with inherited stdio and the
// launcher's (possibly activated) environment; when it exits, the
// launcher exits with the child's status. Externally this preserves the
// same contract as a true exec: exit code propagation and no lingering
// launcher process doing work of its own.
func replaceProcess(path string, argv []string, env []string) error {
	cmd := exec.Command(path, argv[1:]...)
	cmd.Env = env
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	err := cmd.Run()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			// The child ran and exited non-zero: propagate its status.
			os.Exit(exitErr.ExitCode())
		}
		// The child could not be started at all.
		return err
	}

	os.Exit(0)
	return nil
}
