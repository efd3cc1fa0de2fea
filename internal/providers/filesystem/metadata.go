package filesystem

import (
	"context"
	"fmt"
	"strings"

	"github.com/GriffinCanCode/fileshell/internal/domain/session"
	"github.com/GriffinCanCode/fileshell/internal/shared/errs"
	"github.com/GriffinCanCode/fileshell/internal/shared/types"
	"github.com/GriffinCanCode/fileshell/internal/shared/utils"
)

const algorithmFlag = "--algorithm="

// MetadataOps handles file digests
type MetadataOps struct {
	*FilesystemOps
}

// GetTools returns metadata tool definitions
func (m *MetadataOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			Verb:        "hash",
			Description: "Print the hex digest of a file (sha256 unless configured)",
			Parameters: []types.Parameter{
				{Name: "path_to_file", Description: "File to hash", Required: true},
				{Name: algorithmFlag + "<" + strings.Join(utils.HashAlgorithms(), "|") + ">", Description: "Digest algorithm"},
			},
		},
	}
}

// Hash prints the digest of a file. The digest is printed only once the
// whole file was read.
func (m *MetadataOps) Hash(ctx context.Context, cmd types.Command, sess *session.Session) error {
	hasher, err := m.hasherFor(cmd.Arg(1))
	if err != nil {
		return err
	}

	path := m.resolvePath(sess, cmd.Arg(0))
	sum, err := m.Engine.Digest(ctx, path, hasher)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(sess.Out, sum)
	return err
}

func (m *MetadataOps) hasherFor(option string) (*utils.Hasher, error) {
	if option == "" {
		if m.Hasher != nil {
			return m.Hasher, nil
		}
		return utils.DefaultHasher(), nil
	}
	name, ok := strings.CutPrefix(option, algorithmFlag)
	if !ok {
		return nil, fmt.Errorf("hash %s: %w", option, errs.ErrInvalidCommand)
	}
	hasher, err := utils.NewHasher(utils.HashAlgorithm(name))
	if err != nil {
		return nil, fmt.Errorf("hash: %w: %v", errs.ErrInvalidSubcommand, err)
	}
	return hasher, nil
}
