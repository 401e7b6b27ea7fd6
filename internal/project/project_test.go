package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmizuno/devlaunch/internal/config"
)

// TestResolve_DefaultLayout verifies that the default configuration
// produces backend/ and frontend/ directly under the root.
func TestResolve_DefaultLayout(t *testing.T) {
	root := t.TempDir()

	proj, err := Resolve(root, config.Default())
	require.NoError(t, err)

	assert.Equal(t, root, proj.Root)
	assert.Equal(t, filepath.Join(root, "backend"), proj.BackendDir)
	assert.Equal(t, filepath.Join(root, "frontend"), proj.FrontendDir)
}

// TestResolve_ConfiguredDirs verifies that relative config entries are
// joined onto the root while absolute entries pass through untouched.
func TestResolve_ConfiguredDirs(t *testing.T) {
	root := t.TempDir()
	absFrontend := t.TempDir()

	cfg := config.Default()
	cfg.Backend.Dir = "services/api"
	cfg.Frontend.Dir = absFrontend

	proj, err := Resolve(root, cfg)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(root, "services", "api"), proj.BackendDir)
	assert.Equal(t, absFrontend, proj.FrontendDir)
}

// TestResolve_RelativeRoot verifies that a relative root is made
// absolute so later chdir calls don't depend on the starting directory.
func TestResolve_RelativeRoot(t *testing.T) {
	proj, err := Resolve(".", config.Default())
	require.NoError(t, err)

	assert.True(t, filepath.IsAbs(proj.Root))
	assert.True(t, filepath.IsAbs(proj.BackendDir))
}

// TestProject_Dir verifies service name lookup.
func TestProject_Dir(t *testing.T) {
	proj, err := Resolve(t.TempDir(), config.Default())
	require.NoError(t, err)

	assert.Equal(t, proj.BackendDir, proj.Dir("backend"))
	assert.Equal(t, proj.FrontendDir, proj.Dir("frontend"))
	assert.Empty(t, proj.Dir("database"))
}

// TestDirExists distinguishes directories from files and from nothing.
func TestDirExists(t *testing.T) {
	dir := t.TempDir()
	assert.True(t, DirExists(dir))

	file := filepath.Join(dir, "plain-file")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))
	assert.False(t, DirExists(file), "a plain file is not a service directory")

	assert.False(t, DirExists(filepath.Join(dir, "nope")))
}

// TestDefaultRoot verifies that the default root is the directory of the
// running executable — for tests, the compiled test binary.
func TestDefaultRoot(t *testing.T) {
	root, err := DefaultRoot()
	require.NoError(t, err)

	exe, err := os.Executable()
	require.NoError(t, err)
	resolved, err := filepath.EvalSymlinks(exe)
	require.NoError(t, err)

	assert.Equal(t, filepath.Dir(resolved), root)
}
