package stream

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/GriffinCanCode/fileshell/internal/shared/errs"
)

// Mode selects between copy and move semantics
type Mode int

const (
	ModeCopy Mode = iota
	ModeMove
)

func (m Mode) String() string {
	if m == ModeMove {
		return "move"
	}
	return "copy"
}

// ErrPartialMove marks a move whose copy succeeded but whose source could
// not be removed. Both files exist afterwards.
var ErrPartialMove = errors.New("source kept after copy")

// Copy streams src into dstDir under the same base name
func (p *Pipeline) Copy(ctx context.Context, src, dstDir string) (Result, error) {
	return p.Transfer(ctx, src, dstDir, ModeCopy)
}

// Move copies src into dstDir and removes src once the copy is complete
func (p *Pipeline) Move(ctx context.Context, src, dstDir string) (Result, error) {
	return p.Transfer(ctx, src, dstDir, ModeMove)
}

// Transfer streams the file at src into dstDir. Both paths must already be
// absolute. In ModeMove the source is removed strictly after the
// destination has been fully written and closed.
func (p *Pipeline) Transfer(ctx context.Context, src, dstDir string, mode Mode) (Result, error) {
	op := mode.String()

	if err := requireDir(op, dstDir); err != nil {
		return Result{}, err
	}

	in, info, err := openSource(op, src)
	if err != nil {
		return Result{}, err
	}
	defer in.Close()

	res := Result{
		Source:      src,
		Destination: filepath.Join(dstDir, filepath.Base(src)),
	}

	out, err := createExclusive(op, res.Destination, info.Mode())
	if err != nil {
		return Result{}, err
	}

	tw := &trackedWriter{w: out}
	n, pumpErr := p.pump(ctx, tw, in)
	res.Bytes = n
	if pumpErr != nil {
		path := src
		if tw.err != nil {
			path = res.Destination
		}
		pumpErr = classify(ctx, op, path, pumpErr)
	} else if syncErr := out.Sync(); syncErr != nil {
		pumpErr = errs.FromOS(op, res.Destination, syncErr)
	}
	if err := finish(op, out, pumpErr); err != nil {
		return Result{Source: src, Bytes: n}, err
	}

	if mode == ModeMove {
		in.Close()
		if err := removeSource(src); err != nil {
			res.Partial = true
			return res, fmt.Errorf("move %s: %w: %w", src, ErrPartialMove, err)
		}
	}
	return res, nil
}
