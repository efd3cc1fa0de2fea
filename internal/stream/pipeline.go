package stream

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/GriffinCanCode/fileshell/internal/shared/errs"
)

// Chunk size limits
const (
	DefaultChunkSize = 64 * 1024
	MinChunkSize     = 4 * 1024
	MaxChunkSize     = 8 * 1024 * 1024
)

// Options configures a Pipeline
type Options struct {
	ChunkSize int
}

// Result describes a finished (or partially finished) transfer
type Result struct {
	Source      string
	Destination string
	Bytes       int64
	// Partial is set when a move copied the data but could not remove the
	// source, leaving both files in place.
	Partial bool
}

// Pipeline runs chunked file transfers
type Pipeline struct {
	chunkSize int
}

// New creates a pipeline, clamping the chunk size into the supported range
func New(opts Options) *Pipeline {
	size := opts.ChunkSize
	switch {
	case size <= 0:
		size = DefaultChunkSize
	case size < MinChunkSize:
		size = MinChunkSize
	case size > MaxChunkSize:
		size = MaxChunkSize
	}
	return &Pipeline{chunkSize: size}
}

// ChunkSize returns the buffer size used per read
func (p *Pipeline) ChunkSize() int {
	return p.chunkSize
}

// pump copies src to dst one chunk at a time until src is drained
func (p *Pipeline) pump(ctx context.Context, dst io.Writer, src io.Reader) (int64, error) {
	buf := make([]byte, p.chunkSize)
	var total int64
	for {
		if err := ctx.Err(); err != nil {
			return total, err
		}
		n, rerr := src.Read(buf)
		if n > 0 {
			w, werr := dst.Write(buf[:n])
			total += int64(w)
			if werr != nil {
				return total, werr
			}
			if w != n {
				return total, io.ErrShortWrite
			}
		}
		if rerr == io.EOF {
			return total, nil
		}
		if rerr != nil {
			return total, rerr
		}
	}
}

// trackedReader remembers the first error returned by the wrapped reader
type trackedReader struct {
	r   io.Reader
	err error
}

func (t *trackedReader) Read(p []byte) (int, error) {
	n, err := t.r.Read(p)
	if err != nil && err != io.EOF && t.err == nil {
		t.err = err
	}
	return n, err
}

// trackedWriter remembers the first error returned by the wrapped writer
type trackedWriter struct {
	w   io.Writer
	err error
}

func (t *trackedWriter) Write(p []byte) (int, error) {
	n, err := t.w.Write(p)
	if err != nil && t.err == nil {
		t.err = err
	}
	return n, err
}

// openSource opens a regular file for reading
func openSource(op, path string) (*os.File, os.FileInfo, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, nil, errs.FromOS(op, path, err)
	}
	if info.IsDir() {
		return nil, nil, fmt.Errorf("%s %s: %w", op, path, errs.ErrIsADirectory)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, errs.FromOS(op, path, err)
	}
	return f, info, nil
}

// requireDir checks that path exists and is a directory
func requireDir(op, path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return errs.FromOS(op, path, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s %s: %w", op, path, errs.ErrNotADirectory)
	}
	return nil
}

// createExclusive creates path, failing if anything already exists there
func createExclusive(op, path string, perm os.FileMode) (*os.File, error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm.Perm())
	if err != nil {
		return nil, errs.FromOS(op, path, err)
	}
	return f, nil
}

// finish closes a destination this pipeline created. When the transfer
// failed, or closing fails, the destination is removed.
func finish(op string, dst *os.File, transferErr error) error {
	name := dst.Name()
	closeErr := dst.Close()
	if transferErr == nil && closeErr == nil {
		return nil
	}
	_ = os.Remove(name)
	if transferErr != nil {
		return transferErr
	}
	return errs.FromOS(op, name, closeErr)
}

// classify turns a pump failure into an error kind
func classify(ctx context.Context, op, path string, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, ctxErr) {
		return fmt.Errorf("%s %s: %w: %w", op, path, errs.ErrOperationFailed, ctxErr)
	}
	return errs.FromOS(op, path, err)
}
