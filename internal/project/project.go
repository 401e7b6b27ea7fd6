package project

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mmizuno/devlaunch/internal/config"
)

// Project holds the resolved absolute paths of the launcher's world.
// It is computed once per invocation and never mutated afterwards.
type Project struct {
	// Root is the absolute project root directory.
	Root string

	// BackendDir is the absolute path to the backend service directory.
	BackendDir string

	// FrontendDir is the absolute path to the frontend service directory.
	FrontendDir string
}

// DefaultRoot computes the project root from the launcher's own
// location: the directory containing the devlaunch executable, with
// symlinks resolved so an installation like /usr/local/bin/devlaunch →
// ~/project/devlaunch still finds the project checkout.
func DefaultRoot() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("cannot determine launcher executable path: %w", err)
	}

	// Resolve symlinks so the root is the directory of the real binary,
	// not of a symlink pointing at it.
	resolved, err := filepath.EvalSymlinks(exe)
	if err != nil {
		return "", fmt.Errorf("cannot resolve launcher executable path: %w", err)
	}

	return filepath.Dir(resolved), nil
}

// Resolve derives the service directories from the project root and the
// launch configuration. Relative directory entries are joined onto the
// root; absolute entries are used as-is.
//
// No validation happens here — the paths are concatenations. Callers
// that need the directories to exist check for themselves.
func Resolve(root string, cfg *config.Config) (*Project, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve project root %q: %w", root, err)
	}

	return &Project{
		Root:        absRoot,
		BackendDir:  joinDir(absRoot, cfg.Backend.Dir),
		FrontendDir: joinDir(absRoot, cfg.Frontend.Dir),
	}, nil
}

// Dir returns the directory for a service by name. The name must be one
// of the two known services; anything else yields the empty string.
func (p *Project) Dir(service string) string {
	switch service {
	case "backend":
		return p.BackendDir
	case "frontend":
		return p.FrontendDir
	default:
		return ""
	}
}

// DirExists reports whether the given path exists and is a directory.
// A file at the path counts as missing: services live in directories.
func DirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// joinDir joins a configured directory onto the root unless it is
// already absolute.
func joinDir(root, dir string) string {
	if filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(root, dir)
}
