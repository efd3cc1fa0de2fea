package stream

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/GriffinCanCode/fileshell/internal/codec"
	"github.com/GriffinCanCode/fileshell/internal/shared/errs"
)

// Direction selects compression or decompression
type Direction int

const (
	Compress Direction = iota
	Decompress
)

func (d Direction) String() string {
	if d == Decompress {
		return "decompress"
	}
	return "compress"
}

// TransformTarget works out where a transform writes. When dst names an
// existing directory the output goes inside it: compression appends the
// codec extension to the source name, decompression strips it.
func TransformTarget(src, dst string, c codec.Codec, dir Direction) string {
	info, err := os.Stat(dst)
	if err != nil || !info.IsDir() {
		return dst
	}
	name := filepath.Base(src)
	if dir == Compress {
		return filepath.Join(dst, name+c.Extension())
	}
	if trimmed := strings.TrimSuffix(name, c.Extension()); trimmed != "" && trimmed != name {
		return filepath.Join(dst, trimmed)
	}
	return filepath.Join(dst, name+".out")
}

// Transform streams src through the codec into dst. Malformed input on
// decompression is reported as errs.ErrCorruptData.
func (p *Pipeline) Transform(ctx context.Context, src, dst string, c codec.Codec, dir Direction) (Result, error) {
	op := dir.String()
	if c == nil {
		c = codec.Default()
	}

	in, info, err := openSource(op, src)
	if err != nil {
		return Result{}, err
	}
	defer in.Close()

	res := Result{
		Source:      src,
		Destination: TransformTarget(src, dst, c, dir),
	}

	out, err := createExclusive(op, res.Destination, info.Mode())
	if err != nil {
		return Result{}, err
	}

	var n int64
	if dir == Compress {
		n, err = p.compress(ctx, out, in, c, src, res.Destination)
	} else {
		n, err = p.decompress(ctx, out, in, c, src, res.Destination)
	}
	res.Bytes = n
	if err == nil {
		if syncErr := out.Sync(); syncErr != nil {
			err = errs.FromOS(op, res.Destination, syncErr)
		}
	}
	if err := finish(op, out, err); err != nil {
		return Result{Source: src, Bytes: n}, err
	}
	return res, nil
}

func (p *Pipeline) compress(ctx context.Context, out io.Writer, in io.Reader, c codec.Codec, src, dst string) (int64, error) {
	tw := &trackedWriter{w: out}
	enc, err := c.NewWriter(tw)
	if err != nil {
		return 0, fmt.Errorf("compress %s: %w: %w", src, errs.ErrOperationFailed, err)
	}

	n, err := p.pump(ctx, enc, in)
	closeErr := enc.Close()
	if err == nil {
		err = closeErr
	}
	if err != nil {
		path := src
		if tw.err != nil {
			path = dst
		}
		return n, classify(ctx, "compress", path, err)
	}
	return n, nil
}

func (p *Pipeline) decompress(ctx context.Context, out io.Writer, in io.Reader, c codec.Codec, src, dst string) (int64, error) {
	tr := &trackedReader{r: in}
	tw := &trackedWriter{w: out}

	dec, err := c.NewReader(tr)
	if err != nil {
		if tr.err != nil {
			return 0, errs.FromOS("decompress", src, tr.err)
		}
		return 0, fmt.Errorf("decompress %s: %w: %w", src, errs.ErrCorruptData, err)
	}
	defer dec.Close()

	n, err := p.pump(ctx, tw, dec)
	if err == nil {
		return n, nil
	}
	switch {
	case ctx.Err() != nil:
		return n, classify(ctx, "decompress", src, err)
	case tw.err != nil:
		return n, errs.FromOS("decompress", dst, tw.err)
	case tr.err != nil:
		return n, errs.FromOS("decompress", src, tr.err)
	default:
		return n, fmt.Errorf("decompress %s: %w: %w", src, errs.ErrCorruptData, err)
	}
}
