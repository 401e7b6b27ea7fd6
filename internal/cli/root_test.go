package cli

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmizuno/devlaunch/internal/model"
)

// setFlagRoot points the CLI at a root directory for the duration of
// one test, restoring the previous value afterwards.
func setFlagRoot(t *testing.T, root string) {
	t.Helper()
	prev := flagRoot
	flagRoot = root
	t.Cleanup(func() { flagRoot = prev })
}

// TestRunRoot_InvalidArgument verifies that an unrecognized service
// argument is a usage error raised before anything else runs. The
// project root deliberately carries a malformed config file: if
// dispatch loaded the project context before parsing the argument, the
// config error would surface instead of the usage error.
func TestRunRoot_InvalidArgument(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, ".devlaunch.yaml"), []byte("backend: [broken\n"), 0o644))
	setFlagRoot(t, dir)

	err := runRoot([]string{"database"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown service")
	assert.NotContains(t, err.Error(), "invalid YAML")

	var cliErr *model.CLIError
	require.True(t, errors.As(err, &cliErr))
	assert.Equal(t, model.ExitGeneralError, cliErr.Code)
}

// TestRunRoot_BadConfigSurfaces verifies that with a valid (or absent)
// argument, a broken config file is reported.
func TestRunRoot_BadConfigSurfaces(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, ".devlaunch.yaml"), []byte("backend: [broken\n"), 0o644))
	setFlagRoot(t, dir)

	err := runRoot([]string{"frontend"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid YAML")
}

// TestNewRootCommand verifies command wiring: subcommands registered,
// global flags present, and the one-argument ceiling enforced.
func TestNewRootCommand(t *testing.T) {
	cmd := NewRootCommand()

	names := make([]string, 0, len(cmd.Commands()))
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.Contains(t, names, "status")
	assert.Contains(t, names, "doctor")

	for _, flag := range []string{"json", "verbose", "root", "config"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(flag), "missing persistent flag %q", flag)
	}

	require.NotNil(t, cmd.Args)
	assert.NoError(t, cmd.Args(cmd, []string{"backend"}))
	assert.Error(t, cmd.Args(cmd, []string{"backend", "frontend"}),
		"two service arguments must be rejected")
}
