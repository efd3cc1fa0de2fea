package monitoring

import (
	"context"
	"time"

	"github.com/GriffinCanCode/fileshell/internal/domain/session"
	"github.com/GriffinCanCode/fileshell/internal/service"
	"github.com/GriffinCanCode/fileshell/internal/shared/errs"
	"github.com/GriffinCanCode/fileshell/internal/shared/types"
)

// Middleware creates a registry middleware for metrics collection
func Middleware(metrics *Metrics) service.Middleware {
	return func(verb string, next service.Handler) service.Handler {
		return func(ctx context.Context, cmd types.Command, sess *session.Session) error {
			timer := NewTimer(metrics, verb)
			err := next(ctx, cmd, sess)
			timer.Stop(Status(err))
			return err
		}
	}
}

// Status returns the metrics label for a command outcome
func Status(err error) string {
	if err == nil {
		return StatusOK
	}
	return errs.Kind(err)
}

// Timer measures command duration
type Timer struct {
	start   time.Time
	metrics *Metrics
	verb    string
}

// NewTimer creates a new timer
func NewTimer(metrics *Metrics, verb string) *Timer {
	return &Timer{
		start:   time.Now(),
		metrics: metrics,
		verb:    verb,
	}
}

// Stop stops the timer and records the duration
func (t *Timer) Stop(status string) time.Duration {
	duration := time.Since(t.start)
	t.metrics.RecordCommand(t.verb, status, duration)
	return duration
}
