package toolchain

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/mmizuno/devlaunch/internal/model"
)

// Runner inspects external binaries by invoking them.
//
// It is currently stateless but defined as a struct receiver so future
// options (custom PATH, per-tool overrides) can be added without
// breaking callers, and so it can be injected as a dependency in tests.
type Runner struct{}

// NewRunner creates a new toolchain Runner.
func NewRunner() *Runner {
	return &Runner{}
}

// LookPath resolves a binary name against the current PATH and returns
// its absolute location. The current PATH includes any virtualenv
// activation previously applied to this process.
func (r *Runner) LookPath(binary string) (string, error) {
	path, err := exec.LookPath(binary)
	if err != nil {
		return "", model.WrapCLIError(model.ExitGeneralError,
			fmt.Sprintf("%s not found in PATH", binary), err)
	}
	return path, nil
}

// Version invokes `<binary> --version` and returns the first line of
// its output.
//
// Output is collected from both stdout and stderr: most tools print the
// version to stdout, but Python 2 historically printed it to stderr,
// and a doctor that misreports an installed interpreter as broken is
// worse than no doctor at all.
func (r *Runner) Version(binary string) (string, error) {
	stdout, stderr, err := runTool(binary, "--version")
	if err != nil {
		return "", err
	}

	out := strings.TrimSpace(stdout)
	if out == "" {
		out = strings.TrimSpace(stderr)
	}
	return firstLine(out), nil
}

// runTool executes a binary with the given arguments and captures
// stdout and stderr separately. On failure it returns a model.CLIError
// whose message includes the stderr output for diagnostics.
func runTool(binary string, args ...string) (string, string, error) {
	// #nosec G204 — binary names come from the built-in check list or
	// the launch configuration, not from untrusted input
	cmd := exec.Command(binary, args...)

	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		stderrStr := strings.TrimSpace(stderr.String())
		message := fmt.Sprintf("%s %s failed", binary, strings.Join(args, " "))
		if stderrStr != "" {
			message = fmt.Sprintf("%s: %s", message, stderrStr)
		}
		return "", "", model.WrapCLIError(model.ExitGeneralError, message, err)
	}

	return stdout.String(), stderr.String(), nil
}

// firstLine returns the text up to the first newline. Version output is
// usually a single line, but some tools append build metadata lines.
func firstLine(s string) string {
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		return strings.TrimSpace(s[:idx])
	}
	return s
}
