package launcher

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/mmizuno/devlaunch/internal/model"
)

// venvDirNames are the conventional virtualenv directory names probed
// under the backend directory when no explicit venv is configured,
// in priority order.
var venvDirNames = []string{"venv", ".venv"}

// activationScriptPath returns the path of the activation artifact
// inside a virtualenv directory. POSIX virtualenvs place it in bin/,
// Windows virtualenvs in Scripts\.
func activationScriptPath(venvDir string) string {
	if runtime.GOOS == "windows" {
		return filepath.Join(venvDir, "Scripts", "activate")
	}
	return filepath.Join(venvDir, "bin", "activate")
}

// FindActivationScript locates the backend's virtualenv activation
// script.
//
// With an explicit venv configured (relative to serviceDir, or
// absolute), only that location is checked and its activation path is
// reported on failure. Otherwise the conventional directories (venv,
// .venv) are probed and the first candidate's path is named in the
// error, since that is where a fresh "python -m venv venv" would put it.
func FindActivationScript(serviceDir, configuredVenv string) (string, error) {
	var candidates []string
	if configuredVenv != "" {
		venvDir := configuredVenv
		if !filepath.IsAbs(venvDir) {
			venvDir = filepath.Join(serviceDir, venvDir)
		}
		candidates = []string{activationScriptPath(venvDir)}
	} else {
		for _, name := range venvDirNames {
			candidates = append(candidates, activationScriptPath(filepath.Join(serviceDir, name)))
		}
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	return "", model.NewCLIError(model.ExitGeneralError,
		fmt.Sprintf("virtualenv activation script not found: %s (create the virtualenv before launching the backend)", candidates[0]))
}

// ActivateVirtualenv applies the effect of sourcing an activation
// script to the launcher's own environment, so the command exec'd next
// resolves the virtualenv's interpreter and tools.
//
// The activation script itself is not executed — it is a shell script
// whose observable effect on the environment is well defined and small:
//
//	VIRTUAL_ENV is set to the virtualenv directory,
//	the virtualenv's bin (or Scripts) directory is prepended to PATH,
//	PYTHONHOME is unset.
//
// scriptPath must be the activation script path as returned by
// FindActivationScript; the virtualenv root is its grandparent.
func ActivateVirtualenv(scriptPath string) error {
	binDir := filepath.Dir(scriptPath)
	venvRoot := filepath.Dir(binDir)

	if err := os.Setenv("VIRTUAL_ENV", venvRoot); err != nil {
		return fmt.Errorf("cannot set VIRTUAL_ENV: %w", err)
	}

	path := os.Getenv("PATH")
	newPath := binDir
	if path != "" {
		newPath = binDir + string(os.PathListSeparator) + path
	}
	if err := os.Setenv("PATH", newPath); err != nil {
		return fmt.Errorf("cannot prepend %s to PATH: %w", binDir, err)
	}

	// A stray PYTHONHOME overrides the venv's prefix and breaks imports.
	if err := os.Unsetenv("PYTHONHOME"); err != nil {
		return fmt.Errorf("cannot unset PYTHONHOME: %w", err)
	}

	return nil
}

// VirtualenvBinDir returns the directory that activation prepends to
// PATH for a given activation script path. Exposed for the doctor
// command, which reports it without activating.
func VirtualenvBinDir(scriptPath string) string {
	return filepath.Dir(scriptPath)
}
