package filesystem

import (
	"github.com/GriffinCanCode/fileshell/internal/codec"
	"github.com/GriffinCanCode/fileshell/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/fileshell/internal/shared/utils"
	"github.com/GriffinCanCode/fileshell/internal/stream"
)

// EntryType classifies a directory entry in listings
type EntryType string

const (
	TypeDirectory EntryType = "directory"
	TypeFile      EntryType = "file"
	TypeSymlink   EntryType = "symlink"
	TypeOther     EntryType = "other"
)

// rank orders listing groups: directories, then files, then the rest
func (t EntryType) rank() int {
	switch t {
	case TypeDirectory:
		return 0
	case TypeFile:
		return 1
	default:
		return 2
	}
}

// FilesystemOps provides the dependencies shared by every operation group
type FilesystemOps struct {
	Engine  *stream.Pipeline
	Codec   codec.Codec
	Hasher  *utils.Hasher
	Metrics *monitoring.Metrics
	// Home is substituted for a leading "~" in operands; empty disables it
	Home string
}

// record adds processed bytes to the metrics of op
func (ops *FilesystemOps) record(op string, n int64) {
	ops.Metrics.AddBytes(op, n)
}
