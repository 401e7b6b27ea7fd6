package launcher

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/mmizuno/devlaunch/internal/config"
	"github.com/mmizuno/devlaunch/internal/model"
	"github.com/mmizuno/devlaunch/internal/project"
)

// Launcher hands an invocation off to exactly one service's start
// command. On success the call never returns: the launcher process is
// replaced by (or, on Windows, exits with the status of) the service.
//
// The process-level primitives (chdir, PATH lookup, exec) are held as
// function fields so tests can observe the launch sequence without
// actually replacing the test process.
type Launcher struct {
	project *project.Project
	config  *config.Config

	// chdirFn changes the working directory. Defaults to os.Chdir.
	chdirFn func(dir string) error

	// lookPathFn resolves a command name against PATH. Defaults to
	// exec.LookPath. It runs after virtualenv activation, so for the
	// backend "python" resolves inside the venv.
	lookPathFn func(file string) (string, error)

	// execFn replaces the process image. Defaults to the
	// platform-specific replaceProcess. Never returns on success.
	execFn func(path string, argv []string, env []string) error
}

// New creates a Launcher for the given project layout and configuration.
func New(proj *project.Project, cfg *config.Config) *Launcher {
	return &Launcher{
		project:    proj,
		config:     cfg,
		chdirFn:    os.Chdir,
		lookPathFn: exec.LookPath,
		execFn:     replaceProcess,
	}
}

// Launch runs the selected service. It returns only on failure; on
// success the process image has been replaced.
func (l *Launcher) Launch(target model.ServiceTarget) error {
	switch target {
	case model.TargetBackend:
		return l.launchBackend()
	case model.TargetFrontend:
		return l.launchFrontend()
	default:
		return model.NewCLIError(model.ExitGeneralError,
			fmt.Sprintf("cannot launch unknown service target %q", target))
	}
}

// launchBackend changes into the backend directory, activates the
// virtualenv, and execs the backend start command.
//
// The ordering is load-bearing: the activation check happens after the
// directory change (so the failure message reflects the directory that
// was actually selected) and before the exec (a missing virtualenv must
// never reach the replacement step).
func (l *Launcher) launchBackend() error {
	dir := l.project.BackendDir
	if err := l.chdirFn(dir); err != nil {
		return model.WrapCLIError(model.ExitGeneralError,
			fmt.Sprintf("cannot enter backend directory %s", dir), err)
	}

	script, err := FindActivationScript(dir, l.config.Backend.Venv)
	if err != nil {
		return err
	}
	if err := ActivateVirtualenv(script); err != nil {
		return model.WrapCLIError(model.ExitGeneralError,
			"cannot activate virtualenv", err)
	}

	return l.exec(l.config.Backend.Command)
}

// launchFrontend changes into the frontend directory and execs the
// frontend start command. No environment activation is performed.
func (l *Launcher) launchFrontend() error {
	dir := l.project.FrontendDir
	if err := l.chdirFn(dir); err != nil {
		return model.WrapCLIError(model.ExitGeneralError,
			fmt.Sprintf("cannot enter frontend directory %s", dir), err)
	}

	return l.exec(l.config.Frontend.Command)
}

// exec resolves the command's binary and replaces the process image.
// The environment passed to the replacement is the launcher's own at
// this point, including any virtualenv activation applied earlier.
func (l *Launcher) exec(command []string) error {
	if len(command) == 0 {
		return model.NewCLIError(model.ExitGeneralError,
			"service start command is empty (check the launch configuration)")
	}

	path, err := l.lookPathFn(command[0])
	if err != nil {
		return model.WrapCLIError(model.ExitGeneralError,
			fmt.Sprintf("start command %q not found in PATH", command[0]), err)
	}

	// Exec requires an absolute path; LookPath returns a relative one
	// when the command names a file in the working directory.
	absPath, err := filepath.Abs(path)
	if err != nil {
		return model.WrapCLIError(model.ExitGeneralError,
			fmt.Sprintf("cannot resolve start command path %q", path), err)
	}

	if err := l.execFn(absPath, command, os.Environ()); err != nil {
		return model.WrapCLIError(model.ExitGeneralError,
			fmt.Sprintf("failed to start %v", command), err)
	}

	// Unreachable on Unix (exec either replaced the image or errored)
	// and on Windows (replaceProcess exits the process after waiting).
	return nil
}
