package session

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/GriffinCanCode/fileshell/internal/shared/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDirectory(t *testing.T) {
	root := t.TempDir()

	dir, err := NewDirectory(root)

	require.NoError(t, err)
	assert.Equal(t, root, dir.Cwd())
}

func TestNewDirectoryRejectsFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "f.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	_, err := NewDirectory(file)

	assert.ErrorIs(t, err, errs.ErrNotADirectory)
}

func TestNewDirectoryRejectsMissing(t *testing.T) {
	_, err := NewDirectory(filepath.Join(t.TempDir(), "nope"))
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestChange(t *testing.T) {
	root := t.TempDir()
	sub := filepath.Join(root, "sub")
	require.NoError(t, os.Mkdir(sub, 0o755))
	dir, err := NewDirectory(root)
	require.NoError(t, err)

	require.NoError(t, dir.Change("sub"))
	assert.Equal(t, sub, dir.Cwd())

	require.NoError(t, dir.Change(".."))
	assert.Equal(t, root, dir.Cwd())

	require.NoError(t, dir.Change(sub))
	assert.Equal(t, sub, dir.Cwd())
}

func TestChangeFailuresKeepCwd(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, "note.txt")
	require.NoError(t, os.WriteFile(file, nil, 0o644))
	dir, err := NewDirectory(root)
	require.NoError(t, err)

	assert.ErrorIs(t, dir.Change("missing"), errs.ErrNotFound)
	assert.Equal(t, root, dir.Cwd())

	assert.ErrorIs(t, dir.Change("note.txt"), errs.ErrNotADirectory)
	assert.Equal(t, root, dir.Cwd())

	assert.ErrorIs(t, dir.Change(""), errs.ErrMissingArgument)
	assert.Equal(t, root, dir.Cwd())
}

func TestChangeKeepsSymlinkPath(t *testing.T) {
	root := t.TempDir()
	target := filepath.Join(root, "real", "deep")
	require.NoError(t, os.MkdirAll(target, 0o755))
	link := filepath.Join(root, "link")
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}
	dir, err := NewDirectory(root)
	require.NoError(t, err)

	require.NoError(t, dir.Change("link"))
	assert.Equal(t, link, dir.Cwd())

	assert.True(t, dir.Up())
	assert.Equal(t, root, dir.Cwd())
}

func TestUp(t *testing.T) {
	root := t.TempDir()
	sub := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(sub, 0o755))
	dir, err := NewDirectory(sub)
	require.NoError(t, err)

	assert.True(t, dir.Up())
	assert.Equal(t, filepath.Join(root, "a"), dir.Cwd())
}

func TestUpAtRootIsNoop(t *testing.T) {
	root := filepath.VolumeName(t.TempDir()) + string(filepath.Separator)
	dir, err := NewDirectory(root)
	require.NoError(t, err)

	assert.False(t, dir.Up())
	assert.Equal(t, root, dir.Cwd())
	assert.False(t, dir.Up())
	assert.Equal(t, root, dir.Cwd())
}

func TestNavigationAlwaysLandsOnDirectory(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "x", "y"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "x", "f"), nil, 0o644))
	dir, err := NewDirectory(root)
	require.NoError(t, err)

	steps := []string{"x", "f", "y", "..", "missing", "/", "up", root, "x/y", "up", "up"}
	for _, step := range steps {
		if step == "up" {
			dir.Up()
		} else {
			_ = dir.Change(step)
		}
		info, err := os.Stat(dir.Cwd())
		require.NoError(t, err, step)
		assert.True(t, info.IsDir(), step)
	}
}

func TestNewSession(t *testing.T) {
	dir, err := NewDirectory(t.TempDir())
	require.NoError(t, err)
	var out bytes.Buffer

	sess := New("", dir, &out)

	assert.Equal(t, DefaultUsername, sess.Username)
	assert.True(t, strings.HasPrefix(sess.ID.String(), "sess_"))
	assert.Same(t, dir, sess.Dir)
	assert.Equal(t, "alice", New("alice", dir, &out).Username)
}
