package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmizuno/devlaunch/internal/config"
	"github.com/mmizuno/devlaunch/internal/toolchain"
)

// TestDirCheck verifies pass and fail outcomes for directory checks.
func TestDirCheck(t *testing.T) {
	dir := t.TempDir()

	pass := dirCheck("backend directory", dir)
	assert.True(t, pass.OK)
	assert.Equal(t, dir, pass.Detail)

	missing := filepath.Join(dir, "nope")
	fail := dirCheck("frontend directory", missing)
	assert.False(t, fail.OK)
	assert.Contains(t, fail.Detail, "does not exist")
}

// TestVenvCheck verifies that the virtualenv check reports the venv bin
// directory on success and the locating error on failure.
func TestVenvCheck(t *testing.T) {
	backendDir := t.TempDir()

	fail := venvCheck(backendDir, "")
	assert.False(t, fail.OK)
	assert.Contains(t, fail.Detail, "virtualenv activation script not found")

	// Create the conventional venv skeleton and re-check.
	binDir := filepath.Join(backendDir, "venv", "bin")
	require.NoError(t, os.MkdirAll(binDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(binDir, "activate"), []byte("# activate\n"), 0o644))

	pass := venvCheck(backendDir, "")
	assert.True(t, pass.OK)
}

// TestToolCheck_MissingBinary verifies that an unresolvable binary is a
// failing check with the lookup error as detail.
func TestToolCheck_MissingBinary(t *testing.T) {
	got := toolCheck(toolchain.NewRunner(), "devlaunch-no-such-binary-xyzzy")
	assert.False(t, got.OK)
	assert.Contains(t, got.Detail, "not found in PATH")
}

// TestToolBinaries verifies the check list: start commands first, then
// node and git, with duplicates collapsed.
func TestToolBinaries(t *testing.T) {
	cfg := config.Default()
	assert.Equal(t, []string{"python", "yarn", "node", "git"}, toolBinaries(cfg))

	// A frontend switched to node directly must not produce node twice.
	cfg.Frontend.Command = []string{"node", "server.js"}
	assert.Equal(t, []string{"python", "node", "git"}, toolBinaries(cfg))

	// Empty commands contribute nothing.
	cfg.Backend.Command = nil
	assert.Equal(t, []string{"node", "git"}, toolBinaries(cfg))
}

// TestFailedCount counts only failing checks.
func TestFailedCount(t *testing.T) {
	checks := []doctorCheck{
		{Name: "a", OK: true},
		{Name: "b", OK: false},
		{Name: "c", OK: false},
	}
	assert.Equal(t, 2, failedCount(checks))
	assert.Equal(t, 0, failedCount(nil))
}

// TestPrintDoctorText verifies the pass/fail markers in text output.
func TestPrintDoctorText(t *testing.T) {
	checks := []doctorCheck{
		{Name: "backend directory", OK: true, Detail: "/p/backend"},
		{Name: "yarn", OK: false, Detail: "yarn not found in PATH"},
	}

	var out bytes.Buffer
	printDoctorText(&out, checks)

	assert.Contains(t, out.String(), "ok    backend directory")
	assert.Contains(t, out.String(), "FAIL  yarn")
}
