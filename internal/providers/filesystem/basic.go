package filesystem

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/GriffinCanCode/fileshell/internal/domain/session"
	"github.com/GriffinCanCode/fileshell/internal/shared/errs"
	"github.com/GriffinCanCode/fileshell/internal/shared/types"
)

// BasicOps handles basic file operations
type BasicOps struct {
	*FilesystemOps
}

// GetTools returns basic file operation tool definitions
func (b *BasicOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			Verb:        "cat",
			Description: "Print a file's contents",
			Parameters: []types.Parameter{
				{Name: "path_to_file", Description: "File to read", Required: true},
			},
		},
		{
			Verb:        "add",
			Description: "Create an empty file in the current directory",
			Parameters: []types.Parameter{
				{Name: "new_file_name", Description: "Name of the new file", Required: true},
			},
		},
		{
			Verb:        "rn",
			Description: "Rename a file; the new name stays in the current directory",
			Parameters: []types.Parameter{
				{Name: "path_to_file", Description: "File to rename", Required: true},
				{Name: "new_filename", Description: "New file name", Required: true},
			},
		},
		{
			Verb:        "rm",
			Description: "Delete a file",
			Parameters: []types.Parameter{
				{Name: "path_to_file", Description: "File to delete", Required: true},
			},
		},
	}
}

// Cat streams a file to the session output
func (b *BasicOps) Cat(ctx context.Context, cmd types.Command, sess *session.Session) error {
	path := b.resolvePath(sess, cmd.Arg(0))

	out := &lineEndWriter{w: sess.Out}
	n, err := b.Engine.Cat(ctx, path, out)
	b.record("cat", n)

	// keep the next prompt line off the file's last line
	if termErr := out.terminate(); err == nil {
		err = termErr
	}
	return err
}

// Add creates an empty file without touching existing ones
func (b *BasicOps) Add(ctx context.Context, cmd types.Command, sess *session.Session) error {
	path, err := nameInCwd("add", sess, cmd.Arg(0))
	if err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return errs.FromOS("add", path, err)
	}
	if err := f.Close(); err != nil {
		return errs.FromOS("add", path, err)
	}
	return nil
}

// Rename renames a file. The new name is always taken relative to the
// working directory, whatever directory the source lives in.
func (b *BasicOps) Rename(ctx context.Context, cmd types.Command, sess *session.Session) error {
	oldPath := b.resolvePath(sess, cmd.Arg(0))
	newPath, err := nameInCwd("rn", sess, cmd.Arg(1))
	if err != nil {
		return err
	}

	if _, err := os.Lstat(oldPath); err != nil {
		return errs.FromOS("rn", oldPath, err)
	}
	if _, err := os.Lstat(newPath); err == nil {
		return fmt.Errorf("rn %s: %w", newPath, errs.ErrAlreadyExists)
	} else if !os.IsNotExist(err) {
		return errs.FromOS("rn", newPath, err)
	}

	if err := os.Rename(oldPath, newPath); err != nil {
		return errs.FromOS("rn", oldPath, err)
	}
	return nil
}

// Delete removes a single file; directories are refused
func (b *BasicOps) Delete(ctx context.Context, cmd types.Command, sess *session.Session) error {
	path := b.resolvePath(sess, cmd.Arg(0))

	info, err := os.Lstat(path)
	if err != nil {
		return errs.FromOS("rm", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("rm %s: %w", path, errs.ErrIsADirectory)
	}

	if err := os.Remove(path); err != nil {
		return errs.FromOS("rm", path, err)
	}
	return nil
}

// lineEndWriter remembers whether the output ended with a newline
type lineEndWriter struct {
	w    io.Writer
	n    int64
	last byte
}

func (l *lineEndWriter) Write(p []byte) (int, error) {
	n, err := l.w.Write(p)
	if n > 0 {
		l.n += int64(n)
		l.last = p[n-1]
	}
	return n, err
}

func (l *lineEndWriter) terminate() error {
	if l.n == 0 || l.last == '\n' {
		return nil
	}
	_, err := io.WriteString(l.w, "\n")
	return err
}
