package session

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/GriffinCanCode/fileshell/internal/shared/errs"
	"github.com/GriffinCanCode/fileshell/internal/shared/paths"
)

// Directory tracks the current working directory
type Directory struct {
	cwd string
}

// NewDirectory creates a Directory starting at start, which must be an
// existing directory.
func NewDirectory(start string) (*Directory, error) {
	abs, err := filepath.Abs(start)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path: %w", err)
	}
	if err := checkDir(abs); err != nil {
		return nil, err
	}
	return &Directory{cwd: abs}, nil
}

// Cwd returns the current working directory
func (d *Directory) Cwd() string {
	return d.cwd
}

// Resolve resolves an operand against the current working directory
func (d *Directory) Resolve(raw string) string {
	return paths.Resolve(d.cwd, raw)
}

// Up moves to the parent directory. It reports false, leaving the state
// untouched, when already at a filesystem root.
func (d *Directory) Up() bool {
	parent, ok := paths.Parent(d.cwd)
	if !ok {
		return false
	}
	d.cwd = parent
	return true
}

// Change switches to target, resolved against the current directory.
// The stored path is cleaned but symlinks are kept as typed, so up after
// cd into a link returns to the directory holding the link. On error the
// working directory is unchanged.
func (d *Directory) Change(target string) error {
	if target == "" {
		return errs.Missing("cd", "path_to_directory")
	}
	resolved := d.Resolve(target)
	if err := checkDir(resolved); err != nil {
		return err
	}
	d.cwd = resolved
	return nil
}

func checkDir(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return errs.FromOS("stat", path, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s: %w", path, errs.ErrNotADirectory)
	}
	return nil
}
