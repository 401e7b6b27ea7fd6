// Package cli — doctor.go implements the "devlaunch doctor" command.
//
// Doctor runs the prerequisite checks a launch depends on — service
// directories, the backend virtualenv, and the external toolchain
// (python, yarn, node, git) — and reports each as pass or fail. It
// exits non-zero when any check fails, so it can gate setup scripts.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mmizuno/devlaunch/internal/config"
	"github.com/mmizuno/devlaunch/internal/launcher"
	"github.com/mmizuno/devlaunch/internal/model"
	"github.com/mmizuno/devlaunch/internal/project"
	"github.com/mmizuno/devlaunch/internal/toolchain"
)

// doctorCheck is one named pass/fail result with human-readable detail
// (a path, a version string, or the failure reason).
type doctorCheck struct {
	Name   string `json:"name"`
	OK     bool   `json:"ok"`
	Detail string `json:"detail"`
}

// NewDoctorCommand creates the "doctor" cobra command.
// It is called from NewRootCommand to register as a subcommand.
func NewDoctorCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check that everything a launch needs is in place",
		Long: `Check the prerequisites for launching the dev servers:

  - the backend and frontend directories exist under the project root
  - the backend virtualenv activation script is present
  - the start commands and supporting tools resolve in PATH

Examples:
  devlaunch doctor
  devlaunch doctor --json`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runDoctor()
		},
	}

	return cmd
}

// runDoctor gathers all checks, prints them, and fails if any failed.
func runDoctor() error {
	proj, cfg, err := loadProjectContext()
	if err != nil {
		return err
	}

	runner := toolchain.NewRunner()

	checks := []doctorCheck{
		dirCheck("backend directory", proj.BackendDir),
		dirCheck("frontend directory", proj.FrontendDir),
		venvCheck(proj.BackendDir, cfg.Backend.Venv),
	}

	// The two start commands come first: a launch fails without them.
	// node and git round out the dev workflow (yarn needs node, and
	// both servers live in a git checkout).
	for _, binary := range toolBinaries(cfg) {
		checks = append(checks, toolCheck(runner, binary))
	}

	printDoctorResult(os.Stdout, checks)

	if failed := failedCount(checks); failed > 0 {
		return model.NewCLIError(model.ExitGeneralError,
			fmt.Sprintf("%d of %d checks failed", failed, len(checks)))
	}
	return nil
}

// toolBinaries returns the external binaries to check: the first word
// of each service's start command, plus node and git, deduplicated in
// order.
func toolBinaries(cfg *config.Config) []string {
	candidates := []string{}
	if len(cfg.Backend.Command) > 0 {
		candidates = append(candidates, cfg.Backend.Command[0])
	}
	if len(cfg.Frontend.Command) > 0 {
		candidates = append(candidates, cfg.Frontend.Command[0])
	}
	candidates = append(candidates, "node", "git")

	seen := make(map[string]bool, len(candidates))
	binaries := make([]string, 0, len(candidates))
	for _, b := range candidates {
		if seen[b] {
			continue
		}
		seen[b] = true
		binaries = append(binaries, b)
	}
	return binaries
}

// dirCheck verifies that a service directory exists.
func dirCheck(name, dir string) doctorCheck {
	if !project.DirExists(dir) {
		return doctorCheck{Name: name, OK: false, Detail: fmt.Sprintf("%s does not exist", dir)}
	}
	return doctorCheck{Name: name, OK: true, Detail: dir}
}

// venvCheck verifies that the backend's virtualenv activation script
// can be located, without activating it.
func venvCheck(backendDir, configuredVenv string) doctorCheck {
	script, err := launcher.FindActivationScript(backendDir, configuredVenv)
	if err != nil {
		return doctorCheck{Name: "backend virtualenv", OK: false, Detail: err.Error()}
	}
	return doctorCheck{Name: "backend virtualenv", OK: true, Detail: launcher.VirtualenvBinDir(script)}
}

// toolCheck verifies that a binary resolves in PATH and reports its
// version when it does.
func toolCheck(runner *toolchain.Runner, binary string) doctorCheck {
	path, err := runner.LookPath(binary)
	if err != nil {
		return doctorCheck{Name: binary, OK: false, Detail: err.Error()}
	}

	version, err := runner.Version(binary)
	if err != nil {
		// Resolvable but not runnable is still a pass for presence,
		// with the version marked unknown. Some minimal containers
		// ship tools that reject --version.
		return doctorCheck{Name: binary, OK: true, Detail: fmt.Sprintf("%s (version unknown)", path)}
	}
	return doctorCheck{Name: binary, OK: true, Detail: version}
}

// failedCount returns how many checks did not pass.
func failedCount(checks []doctorCheck) int {
	failed := 0
	for _, c := range checks {
		if !c.OK {
			failed++
		}
	}
	return failed
}

// printDoctorResult outputs the checks in text or JSON format,
// depending on the global --json flag.
func printDoctorResult(w io.Writer, checks []doctorCheck) {
	if IsJSONOutput() {
		printDoctorJSON(w, checks)
	} else {
		printDoctorText(w, checks)
	}
}

// printDoctorJSON outputs the checks as structured JSON under a
// top-level "checks" key.
func printDoctorJSON(w io.Writer, checks []doctorCheck) {
	type resultJSON struct {
		Checks []doctorCheck `json:"checks"`
	}

	result := resultJSON{Checks: make([]doctorCheck, 0, len(checks))}
	result.Checks = append(result.Checks, checks...)

	data, _ := json.MarshalIndent(result, "", "  ")
	fmt.Fprintln(w, string(data))
}

// printDoctorText outputs one line per check:
//
//	ok    backend directory     /home/dev/project/backend
//	FAIL  backend virtualenv    virtualenv activation script not found: ...
func printDoctorText(w io.Writer, checks []doctorCheck) {
	for _, c := range checks {
		mark := "ok  "
		if !c.OK {
			mark = "FAIL"
		}
		fmt.Fprintf(w, "%s  %-20s %s\n", mark, c.Name, c.Detail)
	}
}
