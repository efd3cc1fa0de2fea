package filesystem

import (
	"fmt"

	"github.com/GriffinCanCode/fileshell/internal/domain/session"
	"github.com/GriffinCanCode/fileshell/internal/shared/errs"
	"github.com/GriffinCanCode/fileshell/internal/shared/paths"
)

// resolvePath resolves an operand against the session's working directory
func (ops *FilesystemOps) resolvePath(sess *session.Session, raw string) string {
	if ops.Home != "" {
		return paths.ResolveHome(sess.Dir.Cwd(), ops.Home, raw)
	}
	return sess.Dir.Resolve(raw)
}

// nameInCwd validates a bare file name and places it in the working directory
func nameInCwd(verb string, sess *session.Session, name string) (string, error) {
	if err := paths.ValidateName(name); err != nil {
		return "", fmt.Errorf("%s %q: %w: %v", verb, name, errs.ErrInvalidCommand, err)
	}
	return paths.JoinName(sess.Dir.Cwd(), name), nil
}
