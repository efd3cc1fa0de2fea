package stream

import (
	"context"
	"io"
)

// Cat streams the file at path to w chunk by chunk
func (p *Pipeline) Cat(ctx context.Context, path string, w io.Writer) (int64, error) {
	in, _, err := openSource("read", path)
	if err != nil {
		return 0, err
	}
	defer in.Close()

	n, err := p.pump(ctx, w, in)
	if err != nil {
		return n, classify(ctx, "read", path, err)
	}
	return n, nil
}
