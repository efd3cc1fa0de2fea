package shell

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/GriffinCanCode/fileshell/internal/domain/session"
	"github.com/GriffinCanCode/fileshell/internal/logging"
	"github.com/GriffinCanCode/fileshell/internal/service"
	"github.com/GriffinCanCode/fileshell/internal/shared/errs"
	"github.com/GriffinCanCode/fileshell/internal/shared/id"
	"github.com/GriffinCanCode/fileshell/internal/shared/types"
)

// LogMiddleware logs every dispatched command at debug level, and failed
// ones with their full error.
func LogMiddleware(log *logging.Logger) service.Middleware {
	return func(verb string, next service.Handler) service.Handler {
		return func(ctx context.Context, cmd types.Command, sess *session.Session) error {
			start := time.Now()
			err := next(ctx, cmd, sess)

			fields := []zap.Field{
				zap.String("command_id", id.NewCommandID().String()),
				zap.String("verb", verb),
				zap.Strings("args", cmd.Args),
				zap.Duration("duration", time.Since(start)),
			}
			if sess != nil {
				fields = append(fields, zap.String("session_id", sess.ID.String()))
			}
			if err != nil {
				fields = append(fields, zap.String("kind", errs.Kind(err)), zap.Error(err))
				log.Debug("command failed", fields...)
				return err
			}
			log.Debug("command completed", fields...)
			return nil
		}
	}
}
