package filesystem

import (
	"context"

	"github.com/GriffinCanCode/fileshell/internal/domain/session"
	"github.com/GriffinCanCode/fileshell/internal/shared/types"
	"github.com/GriffinCanCode/fileshell/internal/stream"
)

// OperationsOps handles streamed copy and move
type OperationsOps struct {
	*FilesystemOps
}

// GetTools returns file operation tool definitions
func (o *OperationsOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			Verb:        "cp",
			Description: "Copy a file into a directory",
			Parameters: []types.Parameter{
				{Name: "path_to_file", Description: "File to copy", Required: true},
				{Name: "path_to_new_directory", Description: "Destination directory", Required: true},
			},
		},
		{
			Verb:        "mv",
			Description: "Move a file into a directory",
			Parameters: []types.Parameter{
				{Name: "path_to_file", Description: "File to move", Required: true},
				{Name: "path_to_new_directory", Description: "Destination directory", Required: true},
			},
		},
	}
}

// Copy copies a file into a directory, keeping its name
func (o *OperationsOps) Copy(ctx context.Context, cmd types.Command, sess *session.Session) error {
	return o.transfer(ctx, cmd, sess, stream.ModeCopy)
}

// Move moves a file into a directory. The source is removed only after
// the copy completed; if that removal fails both files remain and the
// error wraps stream.ErrPartialMove.
func (o *OperationsOps) Move(ctx context.Context, cmd types.Command, sess *session.Session) error {
	return o.transfer(ctx, cmd, sess, stream.ModeMove)
}

func (o *OperationsOps) transfer(ctx context.Context, cmd types.Command, sess *session.Session, mode stream.Mode) error {
	src := o.resolvePath(sess, cmd.Arg(0))
	dstDir := o.resolvePath(sess, cmd.Arg(1))

	res, err := o.Engine.Transfer(ctx, src, dstDir, mode)
	o.record(cmd.Name, res.Bytes)
	return err
}
