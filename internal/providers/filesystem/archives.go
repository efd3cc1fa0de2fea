package filesystem

import (
	"context"

	"github.com/GriffinCanCode/fileshell/internal/domain/session"
	"github.com/GriffinCanCode/fileshell/internal/shared/types"
	"github.com/GriffinCanCode/fileshell/internal/stream"
)

// ArchivesOps handles compression
type ArchivesOps struct {
	*FilesystemOps
}

// GetTools returns archive tool definitions
func (a *ArchivesOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			Verb:        "compress",
			Description: "Compress a file (" + a.Codec.Name() + ")",
			Parameters: []types.Parameter{
				{Name: "path_to_file", Description: "File to compress", Required: true},
				{Name: "path_to_destination", Description: "Output file or directory", Required: true},
			},
		},
		{
			Verb:        "decompress",
			Description: "Decompress a file (" + a.Codec.Name() + ")",
			Parameters: []types.Parameter{
				{Name: "path_to_file", Description: "File to decompress", Required: true},
				{Name: "path_to_destination", Description: "Output file or directory", Required: true},
			},
		},
	}
}

// Compress writes a compressed copy of a file
func (a *ArchivesOps) Compress(ctx context.Context, cmd types.Command, sess *session.Session) error {
	return a.transform(ctx, cmd, sess, stream.Compress)
}

// Decompress restores a file written by Compress. Malformed input fails
// with errs.ErrCorruptData.
func (a *ArchivesOps) Decompress(ctx context.Context, cmd types.Command, sess *session.Session) error {
	return a.transform(ctx, cmd, sess, stream.Decompress)
}

func (a *ArchivesOps) transform(ctx context.Context, cmd types.Command, sess *session.Session, dir stream.Direction) error {
	src := a.resolvePath(sess, cmd.Arg(0))
	dst := a.resolvePath(sess, cmd.Arg(1))

	res, err := a.Engine.Transform(ctx, src, dst, a.Codec, dir)
	a.record(cmd.Name, res.Bytes)
	return err
}
