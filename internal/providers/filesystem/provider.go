package filesystem

import (
	"context"
	"fmt"

	"github.com/GriffinCanCode/fileshell/internal/codec"
	"github.com/GriffinCanCode/fileshell/internal/domain/session"
	"github.com/GriffinCanCode/fileshell/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/fileshell/internal/shared/errs"
	"github.com/GriffinCanCode/fileshell/internal/shared/types"
	"github.com/GriffinCanCode/fileshell/internal/shared/utils"
	"github.com/GriffinCanCode/fileshell/internal/stream"
)

// Provider serves every file and directory verb
type Provider struct {
	basic     *BasicOps
	directory *DirectoryOps
	transfer  *OperationsOps
	metadata  *MetadataOps
	archives  *ArchivesOps
}

// Option configures a Provider
type Option func(*FilesystemOps)

// WithCodec sets the compression codec
func WithCodec(c codec.Codec) Option {
	return func(ops *FilesystemOps) { ops.Codec = c }
}

// WithHasher sets the default digest algorithm of hash
func WithHasher(h *utils.Hasher) Option {
	return func(ops *FilesystemOps) { ops.Hasher = h }
}

// WithMetrics records processed bytes on m
func WithMetrics(m *monitoring.Metrics) Option {
	return func(ops *FilesystemOps) { ops.Metrics = m }
}

// WithHome enables "~" expansion in operands
func WithHome(home string) Option {
	return func(ops *FilesystemOps) { ops.Home = home }
}

// NewProvider creates a filesystem provider on engine
func NewProvider(engine *stream.Pipeline, opts ...Option) *Provider {
	if engine == nil {
		engine = stream.New(stream.Options{})
	}
	ops := &FilesystemOps{
		Engine: engine,
		Codec:  codec.Default(),
		Hasher: utils.DefaultHasher(),
	}
	for _, opt := range opts {
		opt(ops)
	}
	if ops.Codec == nil {
		ops.Codec = codec.Default()
	}
	if ops.Hasher == nil {
		ops.Hasher = utils.DefaultHasher()
	}

	return &Provider{
		basic:     &BasicOps{FilesystemOps: ops},
		directory: &DirectoryOps{FilesystemOps: ops},
		transfer:  &OperationsOps{FilesystemOps: ops},
		metadata:  &MetadataOps{FilesystemOps: ops},
		archives:  &ArchivesOps{FilesystemOps: ops},
	}
}

// Definition returns service metadata
func (p *Provider) Definition() types.Service {
	var tools []types.Tool
	tools = append(tools, p.directory.GetTools()...)
	tools = append(tools, p.basic.GetTools()...)
	tools = append(tools, p.transfer.GetTools()...)
	tools = append(tools, p.metadata.GetTools()...)
	tools = append(tools, p.archives.GetTools()...)

	return types.Service{
		ID:          "filesystem",
		Name:        "Filesystem Service",
		Description: "File and directory operations relative to the working directory",
		Category:    types.CategoryFilesystem,
		Tools:       tools,
	}
}

// Execute runs a filesystem operation
func (p *Provider) Execute(ctx context.Context, cmd types.Command, sess *session.Session) error {
	switch cmd.Name {
	// Directory operations
	case "up":
		return p.directory.Up(ctx, cmd, sess)
	case "cd":
		return p.directory.Change(ctx, cmd, sess)
	case "ls":
		return p.directory.List(ctx, cmd, sess)

	// Basic operations
	case "cat":
		return p.basic.Cat(ctx, cmd, sess)
	case "add":
		return p.basic.Add(ctx, cmd, sess)
	case "rn":
		return p.basic.Rename(ctx, cmd, sess)
	case "rm":
		return p.basic.Delete(ctx, cmd, sess)

	// Transfers
	case "cp":
		return p.transfer.Copy(ctx, cmd, sess)
	case "mv":
		return p.transfer.Move(ctx, cmd, sess)

	// Metadata
	case "hash":
		return p.metadata.Hash(ctx, cmd, sess)

	// Archives
	case "compress":
		return p.archives.Compress(ctx, cmd, sess)
	case "decompress":
		return p.archives.Decompress(ctx, cmd, sess)

	default:
		return fmt.Errorf("%w: %s", errs.ErrInvalidCommand, cmd.Name)
	}
}
