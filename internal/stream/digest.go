package stream

import (
	"context"

	"github.com/GriffinCanCode/fileshell/internal/shared/utils"
)

// Digest hashes the file at path incrementally and returns the lowercase
// hex digest. Nothing is returned unless the whole file was read.
func (p *Pipeline) Digest(ctx context.Context, path string, hasher *utils.Hasher) (string, error) {
	if hasher == nil {
		hasher = utils.DefaultHasher()
	}

	in, _, err := openSource("hash", path)
	if err != nil {
		return "", err
	}
	defer in.Close()

	d := hasher.New()
	if _, err := p.pump(ctx, d, in); err != nil {
		return "", classify(ctx, "hash", path, err)
	}
	return utils.Hex(d), nil
}
