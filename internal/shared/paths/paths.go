package paths

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Resolve returns the absolute, cleaned form of raw. Absolute operands are
// only normalized; relative ones are joined onto cwd first.
func Resolve(cwd, raw string) string {
	if filepath.IsAbs(raw) {
		return filepath.Clean(raw)
	}
	return filepath.Join(cwd, raw)
}

// ResolveHome behaves like Resolve but first expands a leading "~" segment
// to home.
func ResolveHome(cwd, home, raw string) string {
	if raw == "~" {
		return filepath.Clean(home)
	}
	if strings.HasPrefix(raw, "~/") || strings.HasPrefix(raw, "~"+string(filepath.Separator)) {
		return filepath.Join(home, raw[2:])
	}
	return Resolve(cwd, raw)
}

// Parent returns the parent of dir. The boolean is false when dir is a
// filesystem root, in which case dir itself is returned.
func Parent(dir string) (string, bool) {
	clean := filepath.Clean(dir)
	parent := filepath.Dir(clean)
	if parent == clean {
		return clean, false
	}
	return parent, true
}

// JoinName places a bare file name inside cwd
func JoinName(cwd, name string) string {
	return filepath.Join(cwd, name)
}

// ValidateName checks that name is a single path element, so it always
// lands directly inside the working directory.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("name cannot be empty")
	}
	if filepath.IsAbs(name) {
		return fmt.Errorf("name cannot be an absolute path")
	}
	if name == "." || name == ".." {
		return fmt.Errorf("name cannot be %q", name)
	}
	if strings.ContainsRune(name, filepath.Separator) || strings.ContainsRune(name, '/') {
		return fmt.Errorf("name cannot contain path separators")
	}
	return nil
}
