package launcher

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// makeVenv creates a minimal virtualenv skeleton (just the activation
// script) under dir with the given venv directory name, and returns the
// activation script path.
func makeVenv(t *testing.T, dir, name string) string {
	t.Helper()
	script := activationScriptPath(filepath.Join(dir, name))
	require.NoError(t, os.MkdirAll(filepath.Dir(script), 0o755))
	require.NoError(t, os.WriteFile(script, []byte("# activate\n"), 0o644))
	return script
}

// TestFindActivationScript_Conventional verifies probing of the
// conventional venv directory names, in priority order.
func TestFindActivationScript_Conventional(t *testing.T) {
	dir := t.TempDir()
	script := makeVenv(t, dir, "venv")

	found, err := FindActivationScript(dir, "")
	require.NoError(t, err)
	assert.Equal(t, script, found)
}

// TestFindActivationScript_DotVenvFallback verifies that .venv is found
// when venv does not exist.
func TestFindActivationScript_DotVenvFallback(t *testing.T) {
	dir := t.TempDir()
	script := makeVenv(t, dir, ".venv")

	found, err := FindActivationScript(dir, "")
	require.NoError(t, err)
	assert.Equal(t, script, found)
}

// TestFindActivationScript_Configured verifies that an explicitly
// configured venv directory is the only location checked.
func TestFindActivationScript_Configured(t *testing.T) {
	dir := t.TempDir()
	// A conventional venv exists, but the config names another one.
	makeVenv(t, dir, "venv")
	script := makeVenv(t, dir, "env310")

	found, err := FindActivationScript(dir, "env310")
	require.NoError(t, err)
	assert.Equal(t, script, found)

	// Configured-but-absent is an error even though venv/ exists.
	_, err = FindActivationScript(dir, "missing-venv")
	require.Error(t, err)
}

// TestFindActivationScript_Missing verifies that the error names the
// expected activation path, so the user knows where to create the venv.
func TestFindActivationScript_Missing(t *testing.T) {
	dir := t.TempDir()

	_, err := FindActivationScript(dir, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "virtualenv activation script not found")
	assert.Contains(t, err.Error(), activationScriptPath(filepath.Join(dir, "venv")),
		"the error should name the first probed location")
}

// TestActivateVirtualenv verifies the three environment effects of
// activation: VIRTUAL_ENV set, the venv bin dir prepended to PATH, and
// PYTHONHOME cleared.
func TestActivateVirtualenv(t *testing.T) {
	dir := t.TempDir()
	script := makeVenv(t, dir, "venv")
	binDir := filepath.Dir(script)
	venvRoot := filepath.Dir(binDir)

	// t.Setenv registers automatic restoration of the original values.
	t.Setenv("PATH", "/usr/bin")
	t.Setenv("PYTHONHOME", "/opt/python")
	t.Setenv("VIRTUAL_ENV", "")

	require.NoError(t, ActivateVirtualenv(script))

	assert.Equal(t, venvRoot, os.Getenv("VIRTUAL_ENV"))
	assert.True(t, strings.HasPrefix(os.Getenv("PATH"), binDir+string(os.PathListSeparator)),
		"venv bin dir must be the first PATH entry")
	assert.Contains(t, os.Getenv("PATH"), "/usr/bin", "previous PATH entries must survive")

	_, pythonHomeSet := os.LookupEnv("PYTHONHOME")
	assert.False(t, pythonHomeSet, "PYTHONHOME must be unset after activation")
}

// TestVirtualenvBinDir verifies the bin dir derivation used by doctor.
func TestVirtualenvBinDir(t *testing.T) {
	dir := t.TempDir()
	script := makeVenv(t, dir, "venv")

	assert.Equal(t, filepath.Dir(script), VirtualenvBinDir(script))
}
